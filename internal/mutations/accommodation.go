package mutations

import (
	"fmt"

	"allowance-engine/internal/model"
)

type AccommodationHandler struct{}

func (h *AccommodationHandler) Validate(state *model.TripSnapshot, update *model.Update) []model.CalculationMessage {
	spec := state.Accommodation
	if err := decodeOnto(update.Properties, &spec); err != nil {
		return invalidProperties(err)
	}

	var msgs []model.CalculationMessage
	if !spec.Type.Known() {
		msgs = append(msgs, model.Warning("UNKNOWN_ACCOMMODATION_TYPE",
			fmt.Sprintf("Accommodation type %q is not recognised and attracts no allowance", spec.Type)))
	}
	if spec.Required && (spec.Type == "" || spec.Type == model.AccommodationNone) {
		msgs = append(msgs, model.Warning("ACCOMMODATION_TYPE_MISSING", "Please select accommodation type"))
	}
	if spec.Type == model.AccommodationSelfBooked && !spec.Approved {
		msgs = append(msgs, model.Warning("SELF_BOOKED_NOT_APPROVED", "Self-booked accommodation requires approval"))
	}
	return msgs
}

func (h *AccommodationHandler) Apply(state *model.TripSnapshot, update *model.Update) model.TripSnapshot {
	spec := state.Accommodation
	decodeOnto(update.Properties, &spec)
	if spec.Type == "" {
		spec.Type = model.AccommodationNone
	}
	return state.WithAccommodation(spec)
}
