package build_agenda

import "context"

// nameCache memoizes customer and service display names for the duration
// of one timeline build, so a customer with several appointments in the
// day costs a single lookup. Constructed fresh per call and discarded
// after; nothing is shared across requests.
type nameCache struct {
	records   RecordSource
	logger    Logger
	customers map[string]string
	services  map[string]string
}

func newNameCache(records RecordSource, logger Logger) *nameCache {
	return &nameCache{
		records:   records,
		logger:    logger,
		customers: make(map[string]string),
		services:  make(map[string]string),
	}
}

// customerName resolves a customer's display name. Failures degrade to an
// empty name and are cached too, so a broken record is not refetched for
// every slot.
func (c *nameCache) customerName(ctx context.Context, id string) string {
	if name, ok := c.customers[id]; ok {
		return name
	}

	name := ""
	customer, err := c.records.GetCustomerByID(ctx, id)
	if err != nil {
		c.logger.Warn("BuildAgenda: failed to resolve customer id=%s: %v", id, err)
	} else {
		name = customer.Name
	}

	c.customers[id] = name
	return name
}

// serviceName resolves a service's display name with the same degradation
// rules as customerName
func (c *nameCache) serviceName(ctx context.Context, id string) string {
	if name, ok := c.services[id]; ok {
		return name
	}

	name := ""
	service, err := c.records.GetServiceByID(ctx, id)
	if err != nil {
		c.logger.Warn("BuildAgenda: failed to resolve service id=%s: %v", id, err)
	} else {
		name = service.Name
	}

	c.services[id] = name
	return name
}
