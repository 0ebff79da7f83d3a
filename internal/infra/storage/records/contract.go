package records

import "github.com/sessojunior/agendamento/pkg/dbmetrics"

// DBExecutor is the read-only query surface used by the repository.
// Satisfied by *sql.DB and the dbmetrics wrapper.
type DBExecutor = dbmetrics.DBExecutor
