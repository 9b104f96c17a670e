package model

import json "github.com/goccy/go-json"

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	TenantID               string `json:"tenant_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages        []CalculationMessage `json:"messages"`
	Updates         []ProcessedUpdate    `json:"updates"`
	InitialSnapshot TripSnapshot         `json:"initial_snapshot"`
	EndSnapshot     SnapshotEnvelope     `json:"end_snapshot"`
}

// ProcessedUpdate echoes an update with the messages it raised and the JSON
// Patch it caused on the calculated allowances.
type ProcessedUpdate struct {
	Update                    Update          `json:"update"`
	CalculationMessageIndexes []int           `json:"calculation_message_indexes,omitempty"`
	CalculatedPatch           json.RawMessage `json:"calculated_patch,omitempty"`
}

type SnapshotEnvelope struct {
	UpdateID    string       `json:"update_id,omitempty"`
	UpdateIndex int          `json:"update_index"`
	Snapshot    TripSnapshot `json:"snapshot"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
