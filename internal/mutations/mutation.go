package mutations

import (
	"bytes"

	json "github.com/goccy/go-json"

	"allowance-engine/internal/model"
)

// UpdateHandler applies one named field-group update to a trip snapshot.
// Validate reports problems without touching the snapshot; a CRITICAL
// message stops the update from being applied. Apply returns a new
// snapshot and leaves state untouched.
type UpdateHandler interface {
	Validate(state *model.TripSnapshot, update *model.Update) []model.CalculationMessage
	Apply(state *model.TripSnapshot, update *model.Update) model.TripSnapshot
}

// decodeOnto unmarshals update properties over dst, so that fields missing
// from the payload keep their current values.
func decodeOnto(props json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(props)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return json.Unmarshal(trimmed, dst)
}

func invalidProperties(err error) []model.CalculationMessage {
	return []model.CalculationMessage{
		model.Critical("INVALID_PROPERTIES", "Update properties could not be decoded: "+err.Error()),
	}
}
