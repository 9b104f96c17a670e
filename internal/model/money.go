package model

import (
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Money renders an amount the way payroll shows it: always two decimal
// places, quoted.
type Money struct {
	decimal.Decimal
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}

func (c CalculatedAllowances) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TravelType        TravelType `json:"travel_type"`
		SAPCodes          []SAPCode  `json:"sap_codes"`
		TotalNights       int        `json:"total_nights"`
		TotalDays         int        `json:"total_days"`
		FBTApplicable     bool       `json:"fbt_applicable"`
		AccommodationRate Money      `json:"accommodation_rate"`
		Accommodation     Money      `json:"accommodation"`
		Meals             Money      `json:"meals"`
		Vehicle           Money      `json:"vehicle"`
		Uplifts           Money      `json:"uplifts"`
		Total             Money      `json:"total"`
		ReceiptRequired   bool       `json:"receipt_required"`
	}{
		TravelType:        c.TravelType,
		SAPCodes:          c.SAPCodes,
		TotalNights:       c.TotalNights,
		TotalDays:         c.TotalDays,
		FBTApplicable:     c.FBTApplicable,
		AccommodationRate: Money{c.AccommodationRate},
		Accommodation:     Money{c.Accommodation},
		Meals:             Money{c.Meals},
		Vehicle:           Money{c.Vehicle},
		Uplifts:           Money{c.Uplifts},
		Total:             Money{c.Total},
		ReceiptRequired:   c.ReceiptRequired,
	})
}

func (v VehicleSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		UsePrivateVehicle             bool    `json:"use_private_vehicle"`
		EstimatedKm                   float64 `json:"estimated_km"`
		DepartingFromApprovedLocation bool    `json:"departing_from_approved_location"`
		StartLocation                 string  `json:"start_location,omitempty"`
		EndLocation                   string  `json:"end_location,omitempty"`
		CalculatedAllowance           Money   `json:"calculated_allowance"`
	}{
		UsePrivateVehicle:             v.UsePrivateVehicle,
		EstimatedKm:                   v.EstimatedKm,
		DepartingFromApprovedLocation: v.DepartingFromApprovedLocation,
		StartLocation:                 v.StartLocation,
		EndLocation:                   v.EndLocation,
		CalculatedAllowance:           Money{v.CalculatedAllowance},
	})
}
