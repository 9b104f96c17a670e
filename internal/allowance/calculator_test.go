package allowance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allowance-engine/internal/model"
)

func TestRecalculateFieldTrip(t *testing.T) {
	out := Recalculate(fieldTrip())

	assert.Equal(t, 3, out.BusinessNights)
	assert.Equal(t, model.TravelShortStay, out.TravelType)
	assert.Equal(t, 3, out.Accommodation.Nights)
	assert.True(t, out.Meals.Eligible)
	assert.True(t, out.Meals.BreakfastEligible)

	calc := out.Calculated
	assert.Equal(t, model.TravelShortStay, calc.TravelType)
	assert.Equal(t, 3, calc.TotalNights)
	assert.Equal(t, 4, calc.TotalDays)
	assertAmount(t, "148.70", calc.AccommodationRate)
	assertAmount(t, "446.10", calc.Accommodation)
	assertAmount(t, "300.00", calc.Meals)
	assertAmount(t, "0", calc.Vehicle)
	assertAmount(t, "0", calc.Uplifts)
	assertAmount(t, "746.10", calc.Total)
	assert.Equal(t, []model.SAPCode{"OR03", "0A53", "0A50"}, calc.SAPCodes)
	assert.False(t, calc.FBTApplicable)
	assert.True(t, calc.ReceiptRequired)
}

func TestRecalculateAboriginalLand(t *testing.T) {
	in := fieldTrip()
	in.IsAboriginalLand = true
	in.CumulativeDays = 400
	in.Accommodation.IsRemote = true
	in.Vehicle = model.VehicleSpec{UsePrivateVehicle: true, EstimatedKm: 100, DepartingFromApprovedLocation: true}

	calc := Recalculate(in).Calculated

	assert.Equal(t, model.TravelAboriginalLand, calc.TravelType)
	assertAmount(t, "280.00", calc.AccommodationRate)
	assertAmount(t, "1120.00", calc.Accommodation)
	assertAmount(t, "0", calc.Meals)
	assertAmount(t, "96.00", calc.Vehicle)
	assertAmount(t, "1216.00", calc.Total)
	assert.Equal(t, []model.SAPCode{"OR12", "OR13"}, calc.SAPCodes)
	assert.False(t, calc.FBTApplicable)
}

func TestRecalculateCumulativeDaysIncludeCurrentTrip(t *testing.T) {
	in := fieldTrip()
	in.CumulativeDays = 87

	calc := Recalculate(in).Calculated
	assert.Equal(t, model.TravelLongStay, calc.TravelType)
	assertAmount(t, "805.02", calc.Accommodation)
	assert.Equal(t, []model.SAPCode{"OR23", "0A53", "0A50"}, calc.SAPCodes)
	assert.True(t, calc.FBTApplicable)

	in.CumulativeDays = 86
	assert.Equal(t, model.TravelShortStay, Recalculate(in).TravelType)
}

func TestRecalculatePersonalTravel(t *testing.T) {
	in := fieldTrip().AddPersonalTravelDate("2025-03-04")

	out := Recalculate(in)
	assert.Equal(t, 2, out.BusinessNights)
	assertAmount(t, "297.40", out.Calculated.Accommodation)
	assertAmount(t, "225.00", out.Calculated.Meals)
}

func TestRecalculateSelfBookedAlwaysNeedsReceipts(t *testing.T) {
	in := model.TripSnapshot{
		Accommodation: model.AccommodationSpec{Type: model.AccommodationSelfBooked},
	}

	calc := Recalculate(in).Calculated
	assertAmount(t, "0", calc.Total)
	assert.True(t, calc.ReceiptRequired)
}

func TestRecalculateVehicleNeedsApprovedLocation(t *testing.T) {
	in := fieldTrip()
	in.Vehicle = model.VehicleSpec{UsePrivateVehicle: true, EstimatedKm: 100}

	out := Recalculate(in)
	assertAmount(t, "0", out.Vehicle.CalculatedAllowance)
	assertAmount(t, "0", out.Calculated.Vehicle)
	assert.NotContains(t, out.Calculated.SAPCodes, model.SAPVehicleAllowance)

	in.Vehicle.DepartingFromApprovedLocation = true
	out = Recalculate(in)
	assertAmount(t, "96.00", out.Calculated.Vehicle)
	assert.Contains(t, out.Calculated.SAPCodes, model.SAPVehicleAllowance)
}

func TestRecalculateEmptySnapshot(t *testing.T) {
	out := Recalculate(model.TripSnapshot{})

	assert.Equal(t, 0, out.BusinessNights)
	assert.Equal(t, model.TravelShortStay, out.TravelType)
	assert.Equal(t, 1, out.Calculated.TotalDays)
	assertAmount(t, "0", out.Calculated.Total)
	assert.Equal(t, []model.SAPCode{"OR03"}, out.Calculated.SAPCodes)
	assert.False(t, out.Calculated.ReceiptRequired)
}

func TestRecalculateIgnoresStaleDerivedFields(t *testing.T) {
	in := fieldTrip()
	in.BusinessNights = 99
	in.TravelType = model.TravelReportableLAFHA
	in.Accommodation.Nights = 42
	in.Meals.Eligible = false
	in.Calculated.SAPCodes = []model.SAPCode{"OR24"}

	assert.Equal(t, Recalculate(fieldTrip()), Recalculate(in))
}

func TestRecalculateTotalsReconcile(t *testing.T) {
	scenarios := map[string]func(*model.TripSnapshot){
		"plain": func(*model.TripSnapshot) {},
		"remote short notice": func(s *model.TripSnapshot) {
			s.Accommodation.IsRemote = true
			s.Accommodation.IsShortNotice = true
			s.Accommodation.ShortNoticeFirstNightOnly = true
		},
		"private with vehicle": func(s *model.TripSnapshot) {
			s.Accommodation.Type = model.AccommodationPrivate
			s.Vehicle = model.VehicleSpec{UsePrivateVehicle: true, EstimatedKm: 333.3, DepartingFromApprovedLocation: true}
		},
		"aboriginal land": func(s *model.TripSnapshot) { s.IsAboriginalLand = true },
		"meals provided": func(s *model.TripSnapshot) {
			s.Meals.ProvidedMeals = []model.MealType{model.MealBreakfast, model.MealDinner}
		},
	}

	for name, mutate := range scenarios {
		t.Run(name, func(t *testing.T) {
			in := fieldTrip()
			mutate(&in)

			once := Recalculate(in)
			calc := once.Calculated
			sum := calc.Accommodation.Add(calc.Meals).Add(calc.Vehicle).Add(calc.Uplifts)
			assert.True(t, sum.Equal(calc.Total), "sum %s total %s", sum, calc.Total)

			assert.Equal(t, once, Recalculate(once), "recalculation must be idempotent")
		})
	}
}

func TestRecalculateDoesNotModifyInput(t *testing.T) {
	in := fieldTrip()
	in.Meals.ProvidedMeals = []model.MealType{model.MealLunch}
	in.Trip.PersonalTravelDates = []string{"2025-03-04"}

	out := Recalculate(in)
	require.Len(t, out.Meals.ProvidedMeals, 1)
	out.Meals.ProvidedMeals[0] = model.MealDinner
	out.Trip.PersonalTravelDates[0] = "2025-03-05"

	assert.Equal(t, model.MealLunch, in.Meals.ProvidedMeals[0])
	assert.Equal(t, "2025-03-04", in.Trip.PersonalTravelDates[0])
	assert.Equal(t, 0, in.BusinessNights)
}
