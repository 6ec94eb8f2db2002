package entities

import "time"

type FacilityFeeLine struct {
	FacilityID         string `json:"facility_id"`
	Name               string `json:"name"`
	CollectedFees      int    `json:"collected_fees"`
	RegisteredVehicles int    `json:"registered_vehicles"`
}

type FeeReport struct {
	GeneratedAt        time.Time         `json:"generated_at"`
	Facilities         []FacilityFeeLine `json:"facilities"`
	TotalFees          int               `json:"total_fees"`
	RegisteredVehicles int               `json:"registered_vehicles"`
}
