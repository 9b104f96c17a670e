package mutations

import (
	"fmt"
	"slices"

	"allowance-engine/internal/model"
)

type transportProps struct {
	TransportOptions []model.TransportOption `json:"transport_options"`
}

type TransportOptionsHandler struct{}

func (h *TransportOptionsHandler) props(state *model.TripSnapshot, update *model.Update) (transportProps, error) {
	props := transportProps{TransportOptions: state.Clone().TransportOptions}
	err := decodeOnto(update.Properties, &props)
	return props, err
}

func (h *TransportOptionsHandler) Validate(state *model.TripSnapshot, update *model.Update) []model.CalculationMessage {
	props, err := h.props(state, update)
	if err != nil {
		return invalidProperties(err)
	}

	var msgs []model.CalculationMessage
	for _, o := range props.TransportOptions {
		if !o.Known() {
			msgs = append(msgs, model.Critical("UNKNOWN_TRANSPORT_OPTION", fmt.Sprintf("Transport option %q is not supported", o)))
		}
	}
	return msgs
}

// Apply keeps the private vehicle flag in step with the selected options.
func (h *TransportOptionsHandler) Apply(state *model.TripSnapshot, update *model.Update) model.TripSnapshot {
	props, _ := h.props(state, update)

	var opts []model.TransportOption
	for _, o := range props.TransportOptions {
		if !slices.Contains(opts, o) {
			opts = append(opts, o)
		}
	}

	out := state.WithTransportOptions(opts)
	v := out.Vehicle
	v.UsePrivateVehicle = slices.Contains(opts, model.TransportPrivateVehicle)
	return out.WithVehicle(v)
}
