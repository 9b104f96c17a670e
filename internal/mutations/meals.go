package mutations

import (
	"fmt"

	"allowance-engine/internal/model"
)

type mealsProps struct {
	ProvidedMeals []model.MealType `json:"provided_meals"`
}

type MealsHandler struct{}

func (h *MealsHandler) props(state *model.TripSnapshot, update *model.Update) (mealsProps, error) {
	props := mealsProps{ProvidedMeals: state.Clone().Meals.ProvidedMeals}
	err := decodeOnto(update.Properties, &props)
	return props, err
}

func (h *MealsHandler) Validate(state *model.TripSnapshot, update *model.Update) []model.CalculationMessage {
	props, err := h.props(state, update)
	if err != nil {
		return invalidProperties(err)
	}

	var msgs []model.CalculationMessage
	for _, m := range props.ProvidedMeals {
		if !m.Known() {
			msgs = append(msgs, model.Critical("UNKNOWN_MEAL_TYPE", fmt.Sprintf("Meal %q is not breakfast, lunch or dinner", m)))
		}
	}
	return msgs
}

func (h *MealsHandler) Apply(state *model.TripSnapshot, update *model.Update) model.TripSnapshot {
	props, _ := h.props(state, update)
	return state.WithProvidedMeals(props.ProvidedMeals)
}
