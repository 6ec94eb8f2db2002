package entities

type FeeScheduleEntry struct {
	PlateType string `json:"plate_type"`
	Rule      string `json:"rule"`
	Fee       int    `json:"fee"`
}
