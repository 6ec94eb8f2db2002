package db

import (
	apperrors "dmv/internal/errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

type Engine string

const (
	EngineICE Engine = "ice"
	EngineEV  Engine = "ev"
)

// ParseEngine maps a request value to an Engine. Anything other than "ev" is treated as "ice".
func ParseEngine(s string) Engine {
	if strings.EqualFold(strings.TrimSpace(s), string(EngineEV)) {
		return EngineEV
	}
	return EngineICE
}

type PlateType string

const (
	PlateRegular PlateType = "regular"
	PlateAntique PlateType = "antique"
	PlateEV      PlateType = "ev"
)

// Vehicle is shared between facilities by pointer. Plate type and registration date are
// written once, together, by Register.
type Vehicle struct {
	VIN    string
	Year   int
	Make   string
	Model  string
	Engine Engine

	mu               sync.Mutex
	plateType        PlateType
	registrationDate time.Time
}

func NewVehicle(vin string, year int, vehicleMake, model string, engine Engine) *Vehicle {
	return &Vehicle{
		VIN:    vin,
		Year:   year,
		Make:   vehicleMake,
		Model:  model,
		Engine: engine,
	}
}

// PlateType returns the assigned plate type, empty until the vehicle is registered.
func (v *Vehicle) PlateType() PlateType {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.plateType
}

// RegistrationDate returns the registration date, zero until the vehicle is registered.
func (v *Vehicle) RegistrationDate() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.registrationDate
}

func (v *Vehicle) Registered() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.plateType != ""
}

// Register assigns the plate type and registration date. It fails if either is already set.
func (v *Vehicle) Register(plate PlateType, date time.Time) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.plateType != "" {
		return fmt.Errorf("vehicle %s registered on %s: %w", v.VIN, v.registrationDate.Format(time.DateOnly), apperrors.ErrAlreadyRegistered)
	}
	v.plateType = plate
	v.registrationDate = date
	return nil
}

// LicenseData tracks how far a registrant has progressed through licensing.
type LicenseData struct {
	Written bool `json:"written"`
	License bool `json:"license"`
	Renewed bool `json:"renewed"`
}

type Registrant struct {
	Name  string
	Age   int
	Email string
	Phone string

	mu          sync.Mutex
	permit      bool
	licenseData LicenseData
}

func NewRegistrant(name string, age int, permit bool) *Registrant {
	return &Registrant{
		Name:   name,
		Age:    age,
		permit: permit,
	}
}

func (r *Registrant) Permit() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.permit
}

func (r *Registrant) EarnPermit() {
	r.mu.Lock()
	r.permit = true
	r.mu.Unlock()
}

func (r *Registrant) UnearnPermit() {
	r.mu.Lock()
	r.permit = false
	r.mu.Unlock()
}

// LicenseData returns a copy of the current licensing record.
func (r *Registrant) LicenseData() LicenseData {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.licenseData
}

// UpdateLicense runs fn against a copy of the licensing record while holding the registrant
// lock. The copy is committed only when fn returns nil.
func (r *Registrant) UpdateLicense(fn func(permit bool, data *LicenseData) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.licenseData
	if err := fn(r.permit, &next); err != nil {
		return err
	}
	r.licenseData = next
	return nil
}
