package api

// Facilities
type CreateFacilityRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type AddServiceRequest struct {
	Service string `json:"service"`
}

// Vehicles
type CreateVehicleRequest struct {
	VIN    string `json:"vin"`
	Year   int    `json:"year"`
	Make   string `json:"make"`
	Model  string `json:"model"`
	Engine string `json:"engine"`
}

type RegisterVehicleRequest struct {
	VIN   string `json:"vin"`
	Email string `json:"email,omitempty"`
}

// Registrants
type CreateRegistrantRequest struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Permit bool   `json:"permit"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

type LicensingRequest struct {
	RegistrantID string `json:"registrant_id"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}
