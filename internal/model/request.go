package model

import json "github.com/goccy/go-json"

// CalculationRequest carries the wizard's current snapshot and the field
// group updates to apply to it, in order.
type CalculationRequest struct {
	TenantID string       `json:"tenant_id"`
	Snapshot TripSnapshot `json:"snapshot"`
	Updates  []Update     `json:"updates"`
}

type Update struct {
	UpdateID   string          `json:"update_id"`
	UpdateName string          `json:"update_name"`
	Properties json.RawMessage `json:"properties"`
}
