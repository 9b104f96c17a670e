package allowance

import (
	"strings"

	"github.com/shopspring/decimal"

	"allowance-engine/internal/model"
)

// MealsEligible reports whether the trip runs strictly longer than the
// minimum trip hours and the work location is away from the usual
// workplace.
func (c *Calculator) MealsEligible(w model.TripWindow) bool {
	dep, ok := parseDateTime(w.DepartureDate, w.DepartureTime)
	if !ok {
		return false
	}
	ret, ok := parseDateTime(w.ReturnDate, w.ReturnTime)
	if !ok {
		return false
	}

	if ret.Sub(dep).Hours() <= c.table.Meals.MinTripHours {
		return false
	}
	return c.isDistant(w.WorkLocation)
}

func (c *Calculator) isDistant(location string) bool {
	loc := strings.ToLower(location)
	for _, kw := range c.table.Meals.LocalKeywords {
		if kw != "" && strings.Contains(loc, strings.ToLower(kw)) {
			return false
		}
	}
	return true
}

// BreakfastEligible reports whether departure is at least the lead hours
// before the usual start time.
func (c *Calculator) BreakfastEligible(departureTime string) bool {
	mins, ok := ParseClock(departureTime)
	if !ok {
		return false
	}
	return mins <= c.table.BreakfastCutoff()
}

// MealsAllowance is the daily meal rate less a fixed deduction per provided
// meal, per business day. Breakfast is only deducted when the traveller was
// entitled to it. Aboriginal Land bundles meals into its daily rate.
func (c *Calculator) MealsAllowance(eligible bool, businessDays int, provided []model.MealType, breakfastEligible, isAboriginalLand bool) decimal.Decimal {
	if isAboriginalLand || !eligible || businessDays <= 0 {
		return decimal.Zero
	}

	rates := c.table.Meals
	deductions := 0
	seen := make(map[model.MealType]struct{}, len(provided))
	for _, m := range provided {
		if !m.Known() {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		if m == model.MealBreakfast && !breakfastEligible {
			continue
		}
		deductions++
	}

	days := decimal.NewFromInt(int64(businessDays))
	perDay := rates.DailyRate.Sub(rates.DeductionPerMeal.Mul(decimal.NewFromInt(int64(deductions))))
	total := days.Mul(perDay)
	if total.IsNegative() {
		return decimal.Zero
	}
	return roundCents(total)
}
