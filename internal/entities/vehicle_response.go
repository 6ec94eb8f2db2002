package entities

import "time"

type VehicleResponse struct {
	VIN              string     `json:"vin"`
	Year             int        `json:"year"`
	Make             string     `json:"make"`
	Model            string     `json:"model"`
	Engine           string     `json:"engine"`
	PlateType        string     `json:"plate_type,omitempty"`
	RegistrationDate *time.Time `json:"registration_date,omitempty"`
}

// RegistrationReceipt is returned after a facility registers a vehicle. CheckoutURL is only set
// when online fee payment is enabled.
type RegistrationReceipt struct {
	FacilityID       string    `json:"facility_id"`
	VIN              string    `json:"vin"`
	PlateType        string    `json:"plate_type"`
	Fee              int       `json:"fee"`
	RegistrationDate time.Time `json:"registration_date"`
	CollectedFees    int       `json:"collected_fees"`
	CheckoutURL      string    `json:"checkout_url,omitempty"`
	CheckoutID       string    `json:"checkout_session_id,omitempty"`
}
