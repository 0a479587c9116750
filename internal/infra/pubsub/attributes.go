package pubsub

import (
	"strconv"

	"locator/internal/domain/constants"
	"locator/internal/domain/service"
)

// availabilityAttributes builds the message attributes subscriptions filter on.
func availabilityAttributes(event *service.AvailabilityChangedEvent) map[string]string {
	attributes := map[string]string{
		"event_type":  constants.EventTypeAvailabilityChanged,
		"event_id":    event.EventID,
		"store_id":    strconv.FormatInt(event.StoreID, 10),
		"flavor_name": event.FlavorName,
		"available":   strconv.Itoa(int(event.Available)),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
