package pubsub

import (
	"encoding/json"

	"guardian/internal/domain/service"

	"github.com/pkg/errors"
)

// alertMessage is the wire form shared by both publishers. Events of one alert
// share an ordering key so subscribers see triggered before resolved.
type alertMessage struct {
	Data        []byte
	Attributes  map[string]string
	OrderingKey string
}

func newAlertMessage(event *service.AlertEvent) (*alertMessage, error) {
	if event == nil || event.AlertID == "" {
		return nil, errors.New("alert event without alert id")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"event_type": event.Type,
		"alert_id":   event.AlertID,
		"user_id":    event.UserID,
		"alert_type": event.AlertType,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &alertMessage{
		Data:        data,
		Attributes:  attributes,
		OrderingKey: event.AlertID,
	}, nil
}
