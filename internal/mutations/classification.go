package mutations

import (
	"allowance-engine/internal/model"
)

type classificationProps struct {
	CumulativeDays   int  `json:"cumulative_days"`
	IsAboriginalLand bool `json:"is_aboriginal_land"`
}

type ClassificationHandler struct{}

func (h *ClassificationHandler) props(state *model.TripSnapshot, update *model.Update) (classificationProps, error) {
	props := classificationProps{
		CumulativeDays:   state.CumulativeDays,
		IsAboriginalLand: state.IsAboriginalLand,
	}
	err := decodeOnto(update.Properties, &props)
	return props, err
}

func (h *ClassificationHandler) Validate(state *model.TripSnapshot, update *model.Update) []model.CalculationMessage {
	props, err := h.props(state, update)
	if err != nil {
		return invalidProperties(err)
	}

	if props.CumulativeDays < 0 {
		return []model.CalculationMessage{
			model.Warning("NEGATIVE_CUMULATIVE_DAYS_CLAMPED", "Cumulative days cannot be negative and were set to 0"),
		}
	}
	return nil
}

func (h *ClassificationHandler) Apply(state *model.TripSnapshot, update *model.Update) model.TripSnapshot {
	props, _ := h.props(state, update)
	return state.WithClassification(max(props.CumulativeDays, 0), props.IsAboriginalLand)
}
