package allowance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"allowance-engine/internal/model"
	"allowance-engine/internal/ratetable"
)

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.StringFixed(2))
}

// flatRateCalculator prices every CTM stay at rate, which keeps uplift
// arithmetic easy to follow.
func flatRateCalculator(rate string) *Calculator {
	table := ratetable.Default()
	r := decimal.RequireFromString(rate)
	table.Accommodation.CTM = ratetable.StayRates{ShortStay: r, LongStay: r, ReportableLAFHA: r}
	return NewCalculator(table)
}

func fieldTrip() model.TripSnapshot {
	return model.TripSnapshot{
		Trip: model.TripWindow{
			DepartureDate: "2025-03-03",
			DepartureTime: "06:30",
			ReturnDate:    "2025-03-06",
			ReturnTime:    "18:00",
			WorkLocation:  "Alice Springs depot",
		},
		Accommodation: model.AccommodationSpec{
			Required: true,
			Type:     model.AccommodationCTM,
		},
	}
}
