package facility

import (
	"dmv/internal/db"
	apperrors "dmv/internal/errors"
	"dmv/internal/logging"
	"dmv/internal/utils"
	"fmt"
	"sync"
	"time"
)

// Services a facility can offer. Gated operations look for these exact names.
const (
	ServiceVehicleRegistration = "Vehicle Registration"
	ServiceWrittenTest         = "Written Test"
	ServiceRoadTest            = "Road Test"
	ServiceRenewLicense        = "Renew License"
)

// MinimumWrittenTestAge is the youngest age allowed to sit the written test.
const MinimumWrittenTestAge = 16

// Clock supplies the current time. Facilities read it on every call.
type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the local wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Registration is the outcome of a successful vehicle registration.
type Registration struct {
	VIN              string
	PlateType        db.PlateType
	Fee              int
	RegistrationDate time.Time
	CollectedFees    int
}

// Facility offers a set of services and applies the agency rules to the vehicles and
// registrants passed to it. It never owns them.
type Facility struct {
	name    string
	address string
	phone   string
	clock   Clock

	mu                 sync.Mutex
	services           []string
	collectedFees      int
	registeredVehicles []*db.Vehicle
}

type Option func(*Facility)

func WithClock(c Clock) Option {
	return func(f *Facility) { f.clock = c }
}

func New(name, address, phone string, opts ...Option) *Facility {
	f := &Facility{
		name:    name,
		address: address,
		phone:   phone,
		clock:   SystemClock,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Facility) Name() string    { return f.name }
func (f *Facility) Address() string { return f.address }
func (f *Facility) Phone() string   { return f.phone }

// Services returns the offered services in the order they were added.
func (f *Facility) Services() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.services...)
}

func (f *Facility) CollectedFees() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.collectedFees
}

// RegisteredVehicles returns the vehicles registered here, in registration order.
func (f *Facility) RegisteredVehicles() []*db.Vehicle {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*db.Vehicle{}, f.registeredVehicles...)
}

// AddService appends a service. Duplicates are kept.
func (f *Facility) AddService(name string) {
	f.mu.Lock()
	f.services = append(f.services, name)
	f.mu.Unlock()
	logging.Debug().Str("facility", f.name).Str("service", name).Msg("service added")
}

func (f *Facility) Offers(service string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.offersLocked(service)
}

func (f *Facility) offersLocked(service string) bool {
	for _, s := range f.services {
		if s == service {
			return true
		}
	}
	return false
}

// RegisterVehicle assigns a plate type and registration date to v and charges the fee.
// Nothing changes when the facility does not offer registration or v is already registered.
func (f *Facility) RegisterVehicle(v *db.Vehicle) (Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.offersLocked(ServiceVehicleRegistration) {
		f.logRejected("vehicle registration", apperrors.ErrServiceNotOffered)
		return Registration{}, fmt.Errorf("register %s at %s: %w", v.VIN, f.name, apperrors.ErrServiceNotOffered)
	}

	now := f.clock.Now()
	plate := utils.PlateTypeFor(v.Engine, v.Year, now.Year())
	fee := utils.RegistrationFee(plate)
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if err := v.Register(plate, date); err != nil {
		f.logRejected("vehicle registration", err)
		return Registration{}, fmt.Errorf("register %s at %s: %w", v.VIN, f.name, err)
	}
	f.collectedFees += fee
	f.registeredVehicles = append(f.registeredVehicles, v)

	logging.Debug().
		Str("facility", f.name).
		Str("vin", v.VIN).
		Str("plate_type", string(plate)).
		Int("fee", fee).
		Int("collected_fees", f.collectedFees).
		Msg("vehicle registered")

	return Registration{
		VIN:              v.VIN,
		PlateType:        plate,
		Fee:              fee,
		RegistrationDate: date,
		CollectedFees:    f.collectedFees,
	}, nil
}

// AdministerWrittenTest marks the written test passed for a permitted registrant of age.
func (f *Facility) AdministerWrittenTest(r *db.Registrant) error {
	return f.administer("written test", ServiceWrittenTest, r, func(permit bool, data *db.LicenseData) error {
		if r.Age < MinimumWrittenTestAge {
			return apperrors.ErrUnderage
		}
		if !permit {
			return apperrors.ErrNoPermit
		}
		data.Written = true
		return nil
	})
}

// AdministerRoadTest licenses a permitted registrant who has passed the written test.
func (f *Facility) AdministerRoadTest(r *db.Registrant) error {
	return f.administer("road test", ServiceRoadTest, r, func(permit bool, data *db.LicenseData) error {
		if !permit {
			return apperrors.ErrNoPermit
		}
		if !data.Written {
			return apperrors.ErrWrittenTestNotPassed
		}
		data.License = true
		return nil
	})
}

// RenewDriversLicense renews the license of an already licensed registrant.
func (f *Facility) RenewDriversLicense(r *db.Registrant) error {
	return f.administer("license renewal", ServiceRenewLicense, r, func(_ bool, data *db.LicenseData) error {
		if !data.License {
			return apperrors.ErrNotLicensed
		}
		data.Renewed = true
		return nil
	})
}

func (f *Facility) administer(step, service string, r *db.Registrant, rule func(bool, *db.LicenseData) error) error {
	if !f.Offers(service) {
		f.logRejected(step, apperrors.ErrServiceNotOffered)
		return fmt.Errorf("%s for %s at %s: %w", step, r.Name, f.name, apperrors.ErrServiceNotOffered)
	}
	if err := r.UpdateLicense(rule); err != nil {
		f.logRejected(step, err)
		return fmt.Errorf("%s for %s at %s: %w", step, r.Name, f.name, err)
	}
	logging.Debug().Str("facility", f.name).Str("registrant", r.Name).Msgf("%s passed", step)
	return nil
}

func (f *Facility) logRejected(step string, reason error) {
	logging.Debug().Str("facility", f.name).Err(reason).Msgf("%s rejected", step)
}
