// Package allowance classifies business trips and prices their travel
// allowances. Every function here is pure: results depend only on the
// arguments and the calculator's rate table.
package allowance

import (
	"github.com/shopspring/decimal"

	"allowance-engine/internal/model"
	"allowance-engine/internal/ratetable"
)

type Calculator struct {
	table ratetable.Table
}

// NewCalculator returns a calculator bound to table. The table is copied by
// value; callers must not mutate its slices afterwards.
func NewCalculator(table ratetable.Table) *Calculator {
	return &Calculator{table: table}
}

var defaultCalculator = NewCalculator(ratetable.Default())

// Default returns the calculator for the EA 2024 rate table.
func Default() *Calculator {
	return defaultCalculator
}

func (c *Calculator) Table() ratetable.Table {
	return c.table
}

// Recalculate recomputes every derived field of s with the default rate
// table.
func Recalculate(s model.TripSnapshot) model.TripSnapshot {
	return defaultCalculator.Recalculate(s)
}

// Classify uses the default classification thresholds.
func Classify(nights, cumulativeDays int, isAboriginalLand bool) model.TravelType {
	return defaultCalculator.Classify(nights, cumulativeDays, isAboriginalLand)
}

// Recalculate returns a copy of s with every derived field recomputed from
// the raw inputs. Previously derived values in s are ignored, so the call is
// idempotent.
func (c *Calculator) Recalculate(s model.TripSnapshot) model.TripSnapshot {
	out := s.Clone()

	nights := BusinessNights(out.Trip)
	out.BusinessNights = nights
	out.TravelType = c.Classify(nights, max(out.CumulativeDays, 0)+nights, out.IsAboriginalLand)

	out.Accommodation.Nights = 0
	if out.Accommodation.Required {
		out.Accommodation.Nights = nights
	}
	_, nightlyRate := c.NightlyRates(out.TravelType, out.Accommodation)

	out.Meals.Eligible = c.MealsEligible(out.Trip)
	out.Meals.BreakfastEligible = c.BreakfastEligible(out.Trip.DepartureTime)

	vehicle := c.VehicleAllowance(
		out.Vehicle.UsePrivateVehicle,
		out.Vehicle.EstimatedKm,
		out.Vehicle.DepartingFromApprovedLocation,
	)
	out.Vehicle.CalculatedAllowance = vehicle

	accommodation := c.AccommodationTotal(out.TravelType, out.Accommodation, nights)
	meals := c.MealsAllowance(
		out.Meals.Eligible,
		nights+1,
		out.Meals.ProvidedMeals,
		out.Meals.BreakfastEligible,
		out.IsAboriginalLand,
	)

	codes := c.SAPCodes(SAPInput{
		TravelType:        out.TravelType,
		IsAboriginalLand:  out.IsAboriginalLand,
		Meals:             meals,
		BreakfastEligible: out.Meals.BreakfastEligible,
		IsRemote:          out.Accommodation.IsRemote,
		Vehicle:           vehicle,
	})

	// Uplifts are folded into the nightly rate; nothing is paid on this line.
	uplifts := decimal.Zero
	total := accommodation.Add(meals).Add(vehicle).Add(uplifts)

	out.Calculated = model.CalculatedAllowances{
		TravelType:        out.TravelType,
		SAPCodes:          codes,
		TotalNights:       nights,
		TotalDays:         nights + 1,
		FBTApplicable:     FBTApplicable(out.TravelType, out.IsAboriginalLand),
		AccommodationRate: nightlyRate,
		Accommodation:     accommodation,
		Meals:             meals,
		Vehicle:           vehicle,
		Uplifts:           uplifts,
		Total:             total,
		ReceiptRequired:   c.ReceiptRequired(out.Accommodation.Type, total),
	}
	return out
}
