package model

import "slices"

// The setters below replace one logical field group and return a new
// snapshot. Derived fields are left untouched; callers run the allowance
// recalculation afterwards.

func (s TripSnapshot) WithTripWindow(w TripWindow) TripSnapshot {
	out := s.Clone()
	out.Trip = w
	out.Trip.PersonalTravelDates = cloneSlice(w.PersonalTravelDates)
	return out
}

func (s TripSnapshot) WithClassification(cumulativeDays int, isAboriginalLand bool) TripSnapshot {
	out := s.Clone()
	out.CumulativeDays = cumulativeDays
	out.IsAboriginalLand = isAboriginalLand
	return out
}

func (s TripSnapshot) WithAccommodation(a AccommodationSpec) TripSnapshot {
	out := s.Clone()
	nights := out.Accommodation.Nights
	out.Accommodation = a
	out.Accommodation.Nights = nights
	return out
}

func (s TripSnapshot) WithProvidedMeals(meals []MealType) TripSnapshot {
	out := s.Clone()
	out.Meals.ProvidedMeals = cloneSlice(meals)
	return out
}

func (s TripSnapshot) WithVehicle(v VehicleSpec) TripSnapshot {
	out := s.Clone()
	allowance := out.Vehicle.CalculatedAllowance
	out.Vehicle = v
	out.Vehicle.CalculatedAllowance = allowance
	return out
}

func (s TripSnapshot) WithTransportOptions(opts []TransportOption) TripSnapshot {
	out := s.Clone()
	out.TransportOptions = cloneSlice(opts)
	return out
}

// AddPersonalTravelDate appends date unless it is already declared.
func (s TripSnapshot) AddPersonalTravelDate(date string) TripSnapshot {
	out := s.Clone()
	if !slices.Contains(out.Trip.PersonalTravelDates, date) {
		out.Trip.PersonalTravelDates = append(out.Trip.PersonalTravelDates, date)
	}
	return out
}

func (s TripSnapshot) RemovePersonalTravelDate(date string) TripSnapshot {
	out := s.Clone()
	out.Trip.PersonalTravelDates = slices.DeleteFunc(out.Trip.PersonalTravelDates, func(d string) bool {
		return d == date
	})
	return out
}
