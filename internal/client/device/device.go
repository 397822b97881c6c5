// Package device turns a registration payload issued by the server into a
// models.Device.
package device

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/pocket/internal/client/models"
	"github.com/dmitrijs2005/pocket/internal/common"
)

// Payload keys, in the order they are checked.
const (
	KeyUUID       = "uuid"
	KeyUserUUID   = "user_uuid"
	KeyHost       = "host"
	KeyHostPubKey = "host_pub_key"
)

var requiredKeys = []string{KeyUUID, KeyUserUUID, KeyHost, KeyHostPubKey}

// Parse decodes a registration payload. The payload must be a JSON object
// carrying string values for every required key; the first key that is absent
// or not a string is reported as *common.MissingFieldError. Values are taken
// verbatim and unknown keys are ignored.
func Parse(payload []byte) (models.Device, error) {
	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return models.Device{}, fmt.Errorf("%w: %w", common.ErrMalformedPayload, err)
	}
	if raw == nil {
		return models.Device{}, fmt.Errorf("%w: payload is not an object", common.ErrMalformedPayload)
	}

	values := make(map[string]string, len(requiredKeys))
	for _, key := range requiredKeys {
		s, ok := raw[key].(string)
		if !ok {
			return models.Device{}, &common.MissingFieldError{Field: key}
		}
		values[key] = s
	}

	return models.Device{
		UUID:       values[KeyUUID],
		UserUUID:   values[KeyUserUUID],
		Host:       values[KeyHost],
		HostPubKey: values[KeyHostPubKey],
		Status:     models.DeviceActive,
	}, nil
}

// Payload renders d as a registration payload accepted by Parse.
func Payload(d models.Device) ([]byte, error) {
	return json.MarshalIndent(map[string]string{
		KeyUUID:       d.UUID,
		KeyUserUUID:   d.UserUUID,
		KeyHost:       d.Host,
		KeyHostPubKey: d.HostPubKey,
	}, "", "  ")
}
