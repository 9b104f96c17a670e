package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"allowance-engine/internal/allowance"
	"allowance-engine/internal/jsonpatch"
	"allowance-engine/internal/model"
	"allowance-engine/internal/mutations"
)

// Process recalculates the request snapshot, then validates, applies and
// recalculates each update in order. A CRITICAL message stops processing;
// the end snapshot reflects the last update that was applied.
func Process(calc *allowance.Calculator, req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	initial := calc.Recalculate(req.Snapshot)
	state := initial

	var allMessages []model.CalculationMessage
	var processed []model.ProcessedUpdate
	outcome := model.OutcomeSuccess

	lastUpdateID := ""
	lastUpdateIndex := -1

	record := func(msgs []model.CalculationMessage) (indexes []int, critical bool) {
		for _, m := range msgs {
			m.ID = len(allMessages)
			allMessages = append(allMessages, m)
			indexes = append(indexes, m.ID)
			if m.Level == model.LevelCritical {
				critical = true
			}
		}
		return indexes, critical
	}

	for i := range req.Updates {
		upd := req.Updates[i]

		handler, ok := mutations.Get(upd.UpdateName)
		if !ok {
			indexes, _ := record([]model.CalculationMessage{
				model.Critical("UNKNOWN_UPDATE", fmt.Sprintf("Unknown update: %s", upd.UpdateName)),
			})
			processed = append(processed, model.ProcessedUpdate{Update: upd, CalculationMessageIndexes: indexes})
			outcome = model.OutcomeFailure
			break
		}

		indexes, critical := record(handler.Validate(&state, &upd))
		if critical {
			processed = append(processed, model.ProcessedUpdate{Update: upd, CalculationMessageIndexes: indexes})
			outcome = model.OutcomeFailure
			break
		}

		next := calc.Recalculate(handler.Apply(&state, &upd))

		entry := model.ProcessedUpdate{Update: upd}
		patch, err := calculatedPatch(state, next)
		if err != nil {
			more, _ := record([]model.CalculationMessage{
				model.Warning("PATCH_UNAVAILABLE", "Calculated patch could not be produced: "+err.Error()),
			})
			indexes = append(indexes, more...)
		} else {
			entry.CalculatedPatch = patch
		}
		entry.CalculationMessageIndexes = indexes
		processed = append(processed, entry)

		state = next
		lastUpdateID = upd.UpdateID
		lastUpdateIndex = i
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}
	if processed == nil {
		processed = []model.ProcessedUpdate{}
	}

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			TenantID:               req.TenantID,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages:        allMessages,
			Updates:         processed,
			InitialSnapshot: initial,
			EndSnapshot: model.SnapshotEnvelope{
				UpdateID:    lastUpdateID,
				UpdateIndex: lastUpdateIndex,
				Snapshot:    state,
			},
		},
	}
}

func calculatedPatch(before, after model.TripSnapshot) ([]byte, error) {
	ops, err := jsonpatch.Between(before.Calculated, after.Calculated)
	if err != nil {
		return nil, err
	}
	return jsonpatch.Marshal(ops)
}
