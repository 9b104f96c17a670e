package mutations

var registry = map[string]UpdateHandler{
	"update_trip_window":          &TripWindowHandler{},
	"update_classification":       &ClassificationHandler{},
	"update_accommodation":        &AccommodationHandler{},
	"update_meals":                &MealsHandler{},
	"update_vehicle":              &VehicleHandler{},
	"update_transport_options":    &TransportOptionsHandler{},
	"add_personal_travel_date":    &AddPersonalTravelDateHandler{},
	"remove_personal_travel_date": &RemovePersonalTravelDateHandler{},
}

func Get(name string) (UpdateHandler, bool) {
	h, ok := registry[name]
	return h, ok
}
