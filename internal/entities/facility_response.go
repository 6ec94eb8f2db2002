package entities

type FacilityResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Services           []string `json:"services"`
	CollectedFees      int      `json:"collected_fees"`
	RegisteredVehicles int      `json:"registered_vehicles"`
}

type FacilitiesList struct {
	Total      int                `json:"total"`
	Facilities []FacilityResponse `json:"facilities"`
}
