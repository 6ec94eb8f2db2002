package api

import (
	"dmv/internal/auth"
	"net/http"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Facility   *FacilityHandler
	Vehicle    *VehicleHandler
	Registrant *RegistrantHandler
	AdminAuth  *AdminAuthHandler
	Metrics    http.Handler
}

func NewRouter(h Handlers, validator auth.TokenValidator) *mux.Router {
	r := mux.NewRouter()

	// Public endpoints
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/fees", h.Facility.GetFeeSchedule).Methods("GET")
	api.HandleFunc("/facilities", h.Facility.ListFacilities).Methods("GET")
	api.HandleFunc("/facilities/{id}", h.Facility.GetFacility).Methods("GET")
	api.HandleFunc("/facilities/{id}/registrations", h.Vehicle.RegisterVehicle).Methods("POST")
	api.HandleFunc("/facilities/{id}/written-tests", h.Registrant.AdministerWrittenTest).Methods("POST")
	api.HandleFunc("/facilities/{id}/road-tests", h.Registrant.AdministerRoadTest).Methods("POST")
	api.HandleFunc("/facilities/{id}/renewals", h.Registrant.RenewDriversLicense).Methods("POST")
	api.HandleFunc("/vehicles", h.Vehicle.CreateVehicle).Methods("POST")
	api.HandleFunc("/vehicles/{vin}", h.Vehicle.GetVehicle).Methods("GET")
	api.HandleFunc("/registrants", h.Registrant.CreateRegistrant).Methods("POST")
	api.HandleFunc("/registrants/{id}", h.Registrant.GetRegistrant).Methods("GET")
	api.HandleFunc("/registrants/{id}/permit", h.Registrant.EarnPermit).Methods("PUT")
	api.HandleFunc("/registrants/{id}/permit", h.Registrant.UnearnPermit).Methods("DELETE")

	r.HandleFunc("/admin/login", h.AdminAuth.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware(validator))
	admin.HandleFunc("/users", h.AdminAuth.CreateUserAdmin).Methods("POST")
	admin.HandleFunc("/facilities", h.Facility.CreateFacility).Methods("POST")
	admin.HandleFunc("/facilities/{id}/services", h.Facility.AddService).Methods("POST")

	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics).Methods("GET")
	}
	return r
}
