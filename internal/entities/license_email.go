package entities

type LicenseEmailData struct {
	RegistrantName string
	FacilityName   string
	Event          string
	DateFormatted  string
	CurrentYear    int
}
