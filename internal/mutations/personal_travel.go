package mutations

import (
	"fmt"
	"slices"

	"allowance-engine/internal/allowance"
	"allowance-engine/internal/model"
)

type personalDateProps struct {
	Date string `json:"date"`
}

func decodePersonalDate(update *model.Update) (string, error) {
	var props personalDateProps
	if err := decodeOnto(update.Properties, &props); err != nil {
		return "", err
	}
	return props.Date, nil
}

type AddPersonalTravelDateHandler struct{}

func (h *AddPersonalTravelDateHandler) Validate(state *model.TripSnapshot, update *model.Update) []model.CalculationMessage {
	date, err := decodePersonalDate(update)
	if err != nil {
		return invalidProperties(err)
	}

	pd, ok := allowance.ParseDate(date)
	if !ok {
		return []model.CalculationMessage{
			model.Critical("INVALID_DATE", fmt.Sprintf("Personal travel date %q is not a YYYY-MM-DD date", date)),
		}
	}

	dep, depOK := allowance.ParseDate(state.Trip.DepartureDate)
	ret, retOK := allowance.ParseDate(state.Trip.ReturnDate)
	if !depOK || !retOK || pd.Before(dep) || pd.After(ret) {
		return []model.CalculationMessage{
			model.Critical("PERSONAL_DATE_OUTSIDE_TRIP", "Personal travel date must be within the trip duration."),
		}
	}

	if slices.Contains(state.Trip.PersonalTravelDates, date) {
		return []model.CalculationMessage{
			model.Warning("DUPLICATE_PERSONAL_DATE", fmt.Sprintf("Personal travel date %s is already declared", date)),
		}
	}
	return nil
}

func (h *AddPersonalTravelDateHandler) Apply(state *model.TripSnapshot, update *model.Update) model.TripSnapshot {
	date, _ := decodePersonalDate(update)
	return state.AddPersonalTravelDate(date)
}

type RemovePersonalTravelDateHandler struct{}

func (h *RemovePersonalTravelDateHandler) Validate(state *model.TripSnapshot, update *model.Update) []model.CalculationMessage {
	date, err := decodePersonalDate(update)
	if err != nil {
		return invalidProperties(err)
	}

	if !slices.Contains(state.Trip.PersonalTravelDates, date) {
		return []model.CalculationMessage{
			model.Warning("PERSONAL_DATE_NOT_FOUND", fmt.Sprintf("Personal travel date %s was not declared", date)),
		}
	}
	return nil
}

func (h *RemovePersonalTravelDateHandler) Apply(state *model.TripSnapshot, update *model.Update) model.TripSnapshot {
	date, _ := decodePersonalDate(update)
	return state.RemovePersonalTravelDate(date)
}
