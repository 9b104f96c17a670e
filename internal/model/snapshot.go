package model

import "github.com/shopspring/decimal"

// TripSnapshot is the wizard's view of one trip. The raw fields are owned by
// the caller; the derived fields are overwritten on every recalculation.
type TripSnapshot struct {
	Trip             TripWindow        `json:"trip"`
	CumulativeDays   int               `json:"cumulative_days"`
	IsAboriginalLand bool              `json:"is_aboriginal_land"`
	Accommodation    AccommodationSpec `json:"accommodation"`
	Meals            MealsSpec         `json:"meals"`
	TransportOptions []TransportOption `json:"transport_options"`
	Vehicle          VehicleSpec       `json:"vehicle"`

	// Derived
	BusinessNights int                  `json:"business_nights"`
	TravelType     TravelType           `json:"travel_type"`
	Calculated     CalculatedAllowances `json:"calculated_allowances"`
}

type TripWindow struct {
	DepartureDate       string   `json:"departure_date"`
	DepartureTime       string   `json:"departure_time"`
	ReturnDate          string   `json:"return_date"`
	ReturnTime          string   `json:"return_time"`
	PersonalTravelDates []string `json:"personal_travel_dates"`
	WorkLocation        string   `json:"work_location"`
}

type AccommodationSpec struct {
	Required                  bool              `json:"required"`
	Type                      AccommodationType `json:"type"`
	Approved                  bool              `json:"approved"`
	IsRemote                  bool              `json:"is_remote"`
	IsSubstandard             bool              `json:"is_substandard"`
	IsShortNotice             bool              `json:"is_short_notice"`
	ShortNoticeFirstNightOnly bool              `json:"short_notice_first_night_only"`

	// Derived: mirrors BusinessNights while Required is set.
	Nights int `json:"nights"`
}

type MealsSpec struct {
	ProvidedMeals []MealType `json:"provided_meals"`

	// Derived from the trip window.
	Eligible          bool `json:"eligible"`
	BreakfastEligible bool `json:"breakfast_eligible"`
}

type VehicleSpec struct {
	UsePrivateVehicle             bool    `json:"use_private_vehicle"`
	EstimatedKm                   float64 `json:"estimated_km"`
	DepartingFromApprovedLocation bool    `json:"departing_from_approved_location"`
	StartLocation                 string  `json:"start_location,omitempty"`
	EndLocation                   string  `json:"end_location,omitempty"`

	CalculatedAllowance decimal.Decimal `json:"calculated_allowance"`
}

// CalculatedAllowances is a full projection of the raw inputs. It is never
// patched field by field. Amounts are encoded as Money.
type CalculatedAllowances struct {
	TravelType        TravelType      `json:"travel_type"`
	SAPCodes          []SAPCode       `json:"sap_codes"`
	TotalNights       int             `json:"total_nights"`
	TotalDays         int             `json:"total_days"`
	FBTApplicable     bool            `json:"fbt_applicable"`
	AccommodationRate decimal.Decimal `json:"accommodation_rate"`
	Accommodation     decimal.Decimal `json:"accommodation"`
	Meals             decimal.Decimal `json:"meals"`
	Vehicle           decimal.Decimal `json:"vehicle"`
	Uplifts           decimal.Decimal `json:"uplifts"`
	Total             decimal.Decimal `json:"total"`
	ReceiptRequired   bool            `json:"receipt_required"`
}

// Clone returns a deep copy so that callers can derive a new snapshot
// without aliasing the slices of the original.
func (s TripSnapshot) Clone() TripSnapshot {
	out := s
	out.Trip.PersonalTravelDates = cloneSlice(s.Trip.PersonalTravelDates)
	out.Meals.ProvidedMeals = cloneSlice(s.Meals.ProvidedMeals)
	out.TransportOptions = cloneSlice(s.TransportOptions)
	out.Calculated.SAPCodes = cloneSlice(s.Calculated.SAPCodes)
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
