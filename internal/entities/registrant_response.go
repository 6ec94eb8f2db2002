package entities

import "dmv/internal/db"

type RegistrantResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Age         int            `json:"age"`
	Permit      bool           `json:"permit"`
	LicenseData db.LicenseData `json:"license_data"`
}
