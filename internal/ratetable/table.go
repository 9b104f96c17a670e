package ratetable

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"allowance-engine/internal/model"
)

// ErrInvalidTable is returned when a table fails validation.
var ErrInvalidTable = errors.New("invalid rate table")

// Table holds every EA constant the allowance engine depends on. A Table is
// treated as immutable once built.
type Table struct {
	Accommodation           AccommodationRates `yaml:"accommodation" json:"accommodation"`
	AboriginalLandDailyRate decimal.Decimal    `yaml:"aboriginal_land_daily_rate" json:"aboriginal_land_daily_rate"`
	Uplifts                 Uplifts            `yaml:"uplifts" json:"uplifts"`
	Meals                   MealRates          `yaml:"meals" json:"meals"`
	VehicleKmRate           decimal.Decimal    `yaml:"vehicle_km_rate" json:"vehicle_km_rate"`
	ReceiptThreshold        decimal.Decimal    `yaml:"receipt_threshold" json:"receipt_threshold"`
	Classification          Thresholds         `yaml:"classification" json:"classification"`
}

// StayRates is a per-night rate for each duration based travel type.
type StayRates struct {
	ShortStay       decimal.Decimal `yaml:"short_stay" json:"short_stay"`
	LongStay        decimal.Decimal `yaml:"long_stay" json:"long_stay"`
	ReportableLAFHA decimal.Decimal `yaml:"reportable_lafha" json:"reportable_lafha"`
}

// For returns the rate for t, or zero for types without a stay rate.
func (r StayRates) For(t model.TravelType) decimal.Decimal {
	switch t {
	case model.TravelShortStay:
		return r.ShortStay
	case model.TravelLongStay:
		return r.LongStay
	case model.TravelReportableLAFHA:
		return r.ReportableLAFHA
	default:
		return decimal.Zero
	}
}

type AccommodationRates struct {
	CTM                  StayRates `yaml:"ctm" json:"ctm"`
	Private              StayRates `yaml:"private" json:"private"`
	SelfBookedApproved   StayRates `yaml:"self_booked_approved" json:"self_booked_approved"`
	SelfBookedUnapproved StayRates `yaml:"self_booked_unapproved" json:"self_booked_unapproved"`
}

type Uplifts struct {
	Remote      decimal.Decimal `yaml:"remote" json:"remote"`
	Substandard decimal.Decimal `yaml:"substandard" json:"substandard"`
	ShortNotice decimal.Decimal `yaml:"short_notice" json:"short_notice"`
}

type MealRates struct {
	DailyRate          decimal.Decimal `yaml:"daily_rate" json:"daily_rate"`
	DeductionPerMeal   decimal.Decimal `yaml:"deduction_per_meal" json:"deduction_per_meal"`
	MinTripHours       float64         `yaml:"min_trip_hours" json:"min_trip_hours"`
	UsualStartTime     string          `yaml:"usual_start_time" json:"usual_start_time"`
	BreakfastLeadHours int             `yaml:"breakfast_lead_hours" json:"breakfast_lead_hours"`
	LocalKeywords      []string        `yaml:"local_keywords" json:"local_keywords"`
	// RemoteSupplement controls whether 0A57 is paid alongside 0A53/0A50
	// for remote trips.
	RemoteSupplement bool `yaml:"remote_supplement" json:"remote_supplement"`
}

type Thresholds struct {
	LongStayNights         int `yaml:"long_stay_nights" json:"long_stay_nights"`
	LongStayCumulativeDays int `yaml:"long_stay_cumulative_days" json:"long_stay_cumulative_days"`
	ReportableNights       int `yaml:"reportable_nights" json:"reportable_nights"`
}

// Default returns the EA 2024 rate table.
func Default() Table {
	standard := StayRates{
		ShortStay:       decimal.RequireFromString("148.70"),
		LongStay:        decimal.RequireFromString("268.34"),
		ReportableLAFHA: decimal.RequireFromString("289.70"),
	}
	private := decimal.RequireFromString("95.00")

	return Table{
		Accommodation: AccommodationRates{
			CTM:     standard,
			Private: StayRates{ShortStay: private, LongStay: private, ReportableLAFHA: private},
			SelfBookedApproved: StayRates{
				ShortStay:       decimal.RequireFromString("159.50"),
				LongStay:        decimal.RequireFromString("285.00"),
				ReportableLAFHA: decimal.RequireFromString("285.00"),
			},
			SelfBookedUnapproved: standard,
		},
		AboriginalLandDailyRate: decimal.RequireFromString("280.00"),
		Uplifts: Uplifts{
			Remote:      decimal.RequireFromString("1.20"),
			Substandard: decimal.RequireFromString("1.15"),
			ShortNotice: decimal.RequireFromString("1.10"),
		},
		Meals: MealRates{
			DailyRate:          decimal.RequireFromString("75.00"),
			DeductionPerMeal:   decimal.RequireFromString("25.00"),
			MinTripHours:       10,
			UsualStartTime:     "09:00",
			BreakfastLeadHours: 2,
			LocalKeywords:      []string{"office", "headquarters"},
			RemoteSupplement:   true,
		},
		VehicleKmRate:    decimal.RequireFromString("0.96"),
		ReceiptThreshold: decimal.RequireFromString("300.00"),
		Classification: Thresholds{
			LongStayNights:         21,
			LongStayCumulativeDays: 90,
			ReportableNights:       365,
		},
	}
}

// Validate checks that rates are non-negative and thresholds are ordered.
func (t Table) Validate() error {
	amounts := map[string]decimal.Decimal{
		"aboriginal_land_daily_rate": t.AboriginalLandDailyRate,
		"uplifts.remote":             t.Uplifts.Remote,
		"uplifts.substandard":        t.Uplifts.Substandard,
		"uplifts.short_notice":       t.Uplifts.ShortNotice,
		"meals.daily_rate":           t.Meals.DailyRate,
		"meals.deduction_per_meal":   t.Meals.DeductionPerMeal,
		"vehicle_km_rate":            t.VehicleKmRate,
		"receipt_threshold":          t.ReceiptThreshold,
	}
	for name, rates := range map[string]StayRates{
		"ctm":                    t.Accommodation.CTM,
		"private":                t.Accommodation.Private,
		"self_booked_approved":   t.Accommodation.SelfBookedApproved,
		"self_booked_unapproved": t.Accommodation.SelfBookedUnapproved,
	} {
		amounts["accommodation."+name+".short_stay"] = rates.ShortStay
		amounts["accommodation."+name+".long_stay"] = rates.LongStay
		amounts["accommodation."+name+".reportable_lafha"] = rates.ReportableLAFHA
	}
	for name, v := range amounts {
		if v.IsNegative() {
			return fmt.Errorf("%w: %s is negative", ErrInvalidTable, name)
		}
	}

	c := t.Classification
	if c.LongStayNights <= 0 || c.LongStayCumulativeDays <= 0 {
		return fmt.Errorf("%w: long stay thresholds must be positive", ErrInvalidTable)
	}
	if c.ReportableNights <= c.LongStayNights {
		return fmt.Errorf("%w: reportable_nights must exceed long_stay_nights", ErrInvalidTable)
	}
	if t.Meals.MinTripHours < 0 || t.Meals.BreakfastLeadHours < 0 {
		return fmt.Errorf("%w: meal hour thresholds must not be negative", ErrInvalidTable)
	}
	if _, err := time.Parse("15:04", t.Meals.UsualStartTime); err != nil {
		return fmt.Errorf("%w: usual_start_time %q: %v", ErrInvalidTable, t.Meals.UsualStartTime, err)
	}
	return nil
}

// BreakfastCutoff returns the latest departure, in minutes after midnight,
// that still earns a breakfast allowance.
func (t Table) BreakfastCutoff() int {
	start, err := time.Parse("15:04", t.Meals.UsualStartTime)
	if err != nil {
		return -1
	}
	return start.Hour()*60 + start.Minute() - t.Meals.BreakfastLeadHours*60
}
