package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getAgendaHandler "github.com/sessojunior/agendamento/internal/api/handlers/get_agenda"
	getAvailableProfessionalsHandler "github.com/sessojunior/agendamento/internal/api/handlers/get_available_professionals"
	getBusinessHandler "github.com/sessojunior/agendamento/internal/api/handlers/get_business"
	getDatesHandler "github.com/sessojunior/agendamento/internal/api/handlers/get_dates"
	getProfessionalsHandler "github.com/sessojunior/agendamento/internal/api/handlers/get_professionals"
	getServiceProfessionalsHandler "github.com/sessojunior/agendamento/internal/api/handlers/get_service_professionals"
	getServicesHandler "github.com/sessojunior/agendamento/internal/api/handlers/get_services"
	getTimeSlotsHandler "github.com/sessojunior/agendamento/internal/api/handlers/get_time_slots"
	"github.com/sessojunior/agendamento/internal/api/middleware"
	"github.com/sessojunior/agendamento/internal/config"
	"github.com/sessojunior/agendamento/internal/domain"
	recordsRepo "github.com/sessojunior/agendamento/internal/infra/storage/records"
	recordstoreClient "github.com/sessojunior/agendamento/internal/integrations/recordstore"
	catalogService "github.com/sessojunior/agendamento/internal/service/catalog"
	availableProfessionalsUC "github.com/sessojunior/agendamento/internal/usecase/available_professionals"
	buildAgendaUC "github.com/sessojunior/agendamento/internal/usecase/build_agenda"
	generateDatesUC "github.com/sessojunior/agendamento/internal/usecase/generate_dates"
	resolveSlotsUC "github.com/sessojunior/agendamento/internal/usecase/resolve_slots"
	"github.com/sessojunior/agendamento/pkg/dbmetrics"
	"github.com/sessojunior/agendamento/pkg/logger"
	"github.com/sessojunior/agendamento/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting agendamento availability service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Query surface every use case and service reads records through.
	// Both the HTTP record store client and the Postgres repository
	// implement it; the configuration selects which one is wired.
	type recordSource interface {
		GetBusinessBySlug(ctx context.Context, slug string) (*domain.Business, error)
		ListServices(ctx context.Context, filter domain.ServiceFilter) ([]*domain.Service, error)
		ListEmployees(ctx context.Context, filter domain.EmployeeFilter) ([]*domain.Employee, error)
		ListAppointments(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
		GetServiceByID(ctx context.Context, id string) (*domain.Service, error)
		GetCustomerByID(ctx context.Context, id string) (*domain.Customer, error)
	}
	var records recordSource

	switch cfg.RecordSource.Type {
	case config.RecordSourceHTTP:
		records = recordstoreClient.NewClient(
			cfg.RecordStore.URL,
			time.Duration(cfg.RecordStore.Timeout)*time.Second,
			log,
		)
		log.Info("Record source: HTTP store at %s (timeout=%ds)", cfg.RecordStore.URL, cfg.RecordStore.Timeout)

	case config.RecordSourcePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Record source: Postgres (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
			records = recordsRepo.NewRepository(wrappedDB)
			log.Info("Database metrics collection started")
		} else {
			records = recordsRepo.NewRepository(db)
		}

	default:
		log.Fatal("Unknown record source type: %s", cfg.RecordSource.Type)
	}

	// Services and use cases
	catalogSvc := catalogService.NewService(records, log)

	resolveSlotsUseCase := resolveSlotsUC.NewUseCase(records, log)
	availableProfessionalsUseCase := availableProfessionalsUC.NewUseCase(records, log)
	generateDatesUseCase := generateDatesUC.NewUseCase()
	buildAgendaUseCase := buildAgendaUC.NewUseCase(records, log)

	// Handlers
	getBusiness := getBusinessHandler.NewHandler(catalogSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getServiceProfessionals := getServiceProfessionalsHandler.NewHandler(catalogSvc, log)
	getProfessionals := getProfessionalsHandler.NewHandler(catalogSvc, log)
	getDates := getDatesHandler.NewHandler(generateDatesUseCase, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(resolveSlotsUseCase, log)
	getAvailableProfessionals := getAvailableProfessionalsHandler.NewHandler(availableProfessionalsUseCase, log)
	getAgenda := getAgendaHandler.NewHandler(buildAgendaUseCase, log)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public booking page
	api.HandleFunc("/business/{slug}", getBusiness.Handle).Methods(http.MethodGet)
	api.HandleFunc("/business/{slug}/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/business/{slug}/services/{serviceId}/professionals", getServiceProfessionals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/business/{slug}/dates", getDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/business/{slug}/time-slots", getTimeSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/business/{slug}/available-professionals", getAvailableProfessionals.Handle).Methods(http.MethodGet)

	// Manager calendar
	api.HandleFunc("/business/{slug}/professionals", getProfessionals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/business/{slug}/professionals/{professionalId}/agenda", getAgenda.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
