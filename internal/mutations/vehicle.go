package mutations

import (
	"allowance-engine/internal/model"
)

type VehicleHandler struct{}

func (h *VehicleHandler) Validate(state *model.TripSnapshot, update *model.Update) []model.CalculationMessage {
	v := state.Vehicle
	if err := decodeOnto(update.Properties, &v); err != nil {
		return invalidProperties(err)
	}

	var msgs []model.CalculationMessage
	if v.EstimatedKm < 0 {
		msgs = append(msgs, model.Warning("NEGATIVE_KM_CLAMPED", "Estimated kilometres cannot be negative and were set to 0"))
	}
	if v.UsePrivateVehicle && !v.DepartingFromApprovedLocation {
		msgs = append(msgs, model.Warning("VEHICLE_NOT_FROM_APPROVED_LOCATION",
			"Private vehicle must depart from an approved location per EA 7.4.1; no vehicle allowance is payable"))
	}
	return msgs
}

func (h *VehicleHandler) Apply(state *model.TripSnapshot, update *model.Update) model.TripSnapshot {
	v := state.Vehicle
	decodeOnto(update.Properties, &v)
	v.EstimatedKm = max(v.EstimatedKm, 0)
	return state.WithVehicle(v)
}
