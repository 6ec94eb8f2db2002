package utils

import "dmv/internal/db"

// Registration fees in whole dollars.
const (
	FeeEV      = 200
	FeeAntique = 25
	FeeRegular = 100
)

// AntiqueAgeYears is the age a vehicle must exceed, in calendar years, to get antique plates.
const AntiqueAgeYears = 25

// PlateTypeFor picks the plate for a vehicle. Electric wins over age, and age is compared as
// whole calendar years.
func PlateTypeFor(engine db.Engine, modelYear, currentYear int) db.PlateType {
	if engine == db.EngineEV {
		return db.PlateEV
	}
	if currentYear-modelYear > AntiqueAgeYears {
		return db.PlateAntique
	}
	return db.PlateRegular
}

// RegistrationFee returns the fee charged for a plate type.
func RegistrationFee(plate db.PlateType) int {
	switch plate {
	case db.PlateEV:
		return FeeEV
	case db.PlateAntique:
		return FeeAntique
	default:
		return FeeRegular
	}
}
