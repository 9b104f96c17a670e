package mutations

import (
	"fmt"

	"allowance-engine/internal/allowance"
	"allowance-engine/internal/model"
)

type TripWindowHandler struct{}

func (h *TripWindowHandler) Validate(state *model.TripSnapshot, update *model.Update) []model.CalculationMessage {
	w := state.Clone().Trip
	if err := decodeOnto(update.Properties, &w); err != nil {
		return invalidProperties(err)
	}

	var msgs []model.CalculationMessage
	for _, f := range []struct{ name, value string }{
		{"departure_date", w.DepartureDate},
		{"return_date", w.ReturnDate},
	} {
		if _, ok := allowance.ParseDate(f.value); f.value != "" && !ok {
			msgs = append(msgs, model.Critical("INVALID_DATE", fmt.Sprintf("%s %q is not a YYYY-MM-DD date", f.name, f.value)))
		}
	}
	for _, f := range []struct{ name, value string }{
		{"departure_time", w.DepartureTime},
		{"return_time", w.ReturnTime},
	} {
		if _, ok := allowance.ParseClock(f.value); f.value != "" && !ok {
			msgs = append(msgs, model.Critical("INVALID_DATE", fmt.Sprintf("%s %q is not an HH:MM time", f.name, f.value)))
		}
	}
	if len(msgs) > 0 {
		return msgs
	}

	dep, depOK := allowance.ParseDate(w.DepartureDate)
	ret, retOK := allowance.ParseDate(w.ReturnDate)
	if !depOK || !retOK {
		return nil
	}

	if ret.Before(dep) {
		msgs = append(msgs, model.Warning("RETURN_BEFORE_DEPARTURE", "Return date cannot be before departure date"))
		return msgs
	}

	for _, d := range w.PersonalTravelDates {
		pd, ok := allowance.ParseDate(d)
		if !ok || pd.Before(dep) || pd.After(ret) {
			msgs = append(msgs, model.Warning("PERSONAL_DATE_IGNORED",
				fmt.Sprintf("Personal travel date %s is outside the trip and will be ignored", d)))
		}
	}

	return msgs
}

func (h *TripWindowHandler) Apply(state *model.TripSnapshot, update *model.Update) model.TripSnapshot {
	w := state.Clone().Trip
	decodeOnto(update.Properties, &w)
	return state.WithTripWindow(w)
}
