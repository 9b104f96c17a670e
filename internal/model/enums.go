package model

// TravelType is the allowance classification of a trip.
type TravelType string

const (
	TravelShortStay       TravelType = "short_stay"
	TravelLongStay        TravelType = "long_stay"
	TravelReportableLAFHA TravelType = "reportable_lafha"
	TravelAboriginalLand  TravelType = "aboriginal_land"
)

// TravelTypes lists every classification in order of precedence.
func TravelTypes() []TravelType {
	return []TravelType{TravelAboriginalLand, TravelReportableLAFHA, TravelLongStay, TravelShortStay}
}

// Label is the name payroll and travellers know the classification by.
func (t TravelType) Label() string {
	switch t {
	case TravelShortStay:
		return "Travel Allowance"
	case TravelLongStay:
		return "LAFHA"
	case TravelReportableLAFHA:
		return "Reportable LAFHA"
	case TravelAboriginalLand:
		return "Aboriginal Land Allowance"
	default:
		return "Unknown"
	}
}

type AccommodationType string

const (
	AccommodationNone       AccommodationType = "none"
	AccommodationCTM        AccommodationType = "ctm"
	AccommodationPrivate    AccommodationType = "private"
	AccommodationSelfBooked AccommodationType = "self_booked"
)

// Known reports whether t is one of the modelled accommodation types.
// The empty string counts as none.
func (t AccommodationType) Known() bool {
	switch t {
	case "", AccommodationNone, AccommodationCTM, AccommodationPrivate, AccommodationSelfBooked:
		return true
	}
	return false
}

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

func (m MealType) Known() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

type TransportOption string

const (
	TransportFlights        TransportOption = "flights"
	TransportCarHire        TransportOption = "car_hire"
	TransportFerry          TransportOption = "ferry"
	TransportPrivateVehicle TransportOption = "private_vehicle"
)

func (o TransportOption) Known() bool {
	switch o {
	case TransportFlights, TransportCarHire, TransportFerry, TransportPrivateVehicle:
		return true
	}
	return false
}

// SAPCode identifies a payroll line item.
type SAPCode string

const (
	SAPTravelAllowance          SAPCode = "OR03"
	SAPLAFHAStandard            SAPCode = "OR23"
	SAPReportableLAFHA          SAPCode = "OR24"
	SAPAboriginalLandsAllowance SAPCode = "OR12"
	SAPAboriginalLandsBonus     SAPCode = "OR13"
	SAPVehicleAllowance         SAPCode = "0R04"
	SAPStandardMeals            SAPCode = "0A53"
	SAPBreakfastSupplement      SAPCode = "0A50"
	SAPRemoteMealSupplement     SAPCode = "0A57"
)

func SAPCodes() []SAPCode {
	return []SAPCode{
		SAPTravelAllowance,
		SAPLAFHAStandard,
		SAPReportableLAFHA,
		SAPAboriginalLandsAllowance,
		SAPAboriginalLandsBonus,
		SAPVehicleAllowance,
		SAPStandardMeals,
		SAPBreakfastSupplement,
		SAPRemoteMealSupplement,
	}
}

func (c SAPCode) Description() string {
	switch c {
	case SAPTravelAllowance:
		return "Standard Travel Allowance"
	case SAPLAFHAStandard:
		return "LAFHA Standard"
	case SAPReportableLAFHA:
		return "Reportable LAFHA"
	case SAPAboriginalLandsAllowance:
		return "Aboriginal Lands Allowance"
	case SAPAboriginalLandsBonus:
		return "Aboriginal Lands Bonus"
	case SAPVehicleAllowance:
		return "Vehicle Allowance"
	case SAPStandardMeals:
		return "Standard Meals"
	case SAPBreakfastSupplement:
		return "Breakfast Supplement"
	case SAPRemoteMealSupplement:
		return "Remote Meal Supplement"
	default:
		return "Unknown"
	}
}
