package service

import (
	"dmv/internal/db"
	"dmv/internal/entities"
	"dmv/internal/facility"
	"dmv/internal/logging"
	"dmv/internal/metrics"
	"dmv/internal/repository"
	"dmv/internal/utils"
	"fmt"
)

// Licensing steps, used as metric labels.
const (
	StepWrittenTest = "written_test"
	StepRoadTest    = "road_test"
	StepRenewal     = "renewal"
)

// LicenseNotifier is told when a registrant is licensed or renewed.
type LicenseNotifier interface {
	NotifyLicenseEvent(r *db.Registrant, facilityName, event string)
}

type AgencyService struct {
	facilities  *repository.FacilityRepository
	vehicles    *repository.VehicleRepository
	registrants *repository.RegistrantRepository
	metrics     *metrics.Metrics
	notifier    LicenseNotifier
	checkout    FeeCheckout
}

type AgencyOption func(*AgencyService)

func WithNotifier(n LicenseNotifier) AgencyOption {
	return func(s *AgencyService) { s.notifier = n }
}

// WithFeeCheckout enables online payment of registration fees.
func WithFeeCheckout(c FeeCheckout) AgencyOption {
	return func(s *AgencyService) { s.checkout = c }
}

func NewAgencyService(
	facilities *repository.FacilityRepository,
	vehicles *repository.VehicleRepository,
	registrants *repository.RegistrantRepository,
	m *metrics.Metrics,
	opts ...AgencyOption,
) *AgencyService {
	s := &AgencyService{
		facilities:  facilities,
		vehicles:    vehicles,
		registrants: registrants,
		metrics:     m,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AgencyService) ListFacilities() entities.FacilitiesList {
	records := s.facilities.ListFacilities()
	list := entities.FacilitiesList{Total: len(records), Facilities: make([]entities.FacilityResponse, 0, len(records))}
	for _, rec := range records {
		list.Facilities = append(list.Facilities, facilityResponse(rec.ID, rec.Facility))
	}
	return list
}

func (s *AgencyService) GetFacility(id string) (entities.FacilityResponse, error) {
	f, err := s.facilities.GetFacility(id)
	if err != nil {
		return entities.FacilityResponse{}, err
	}
	return facilityResponse(id, f), nil
}

// FeeSchedule lists the plate types in the order the rules are applied.
func (s *AgencyService) FeeSchedule() []entities.FeeScheduleEntry {
	return []entities.FeeScheduleEntry{
		{PlateType: string(db.PlateEV), Rule: "electric engine", Fee: utils.FeeEV},
		{PlateType: string(db.PlateAntique), Rule: fmt.Sprintf("older than %d years", utils.AntiqueAgeYears), Fee: utils.FeeAntique},
		{PlateType: string(db.PlateRegular), Rule: "everything else", Fee: utils.FeeRegular},
	}
}

func (s *AgencyService) CreateVehicle(vin string, year int, vehicleMake, model, engine string) (entities.VehicleResponse, error) {
	v := db.NewVehicle(vin, year, vehicleMake, model, db.ParseEngine(engine))
	if err := s.vehicles.SaveVehicle(v); err != nil {
		return entities.VehicleResponse{}, err
	}
	return vehicleResponse(v), nil
}

func (s *AgencyService) GetVehicle(vin string) (entities.VehicleResponse, error) {
	v, err := s.vehicles.GetVehicle(vin)
	if err != nil {
		return entities.VehicleResponse{}, err
	}
	return vehicleResponse(v), nil
}

// RegisterVehicle registers a known vehicle at a facility. When online payment is enabled a
// checkout session is opened for the fee; a checkout failure is logged and does not undo the
// registration.
func (s *AgencyService) RegisterVehicle(facilityID, vin, customerEmail string) (entities.RegistrationReceipt, error) {
	f, err := s.facilities.GetFacility(facilityID)
	if err != nil {
		return entities.RegistrationReceipt{}, err
	}
	v, err := s.vehicles.GetVehicle(vin)
	if err != nil {
		return entities.RegistrationReceipt{}, err
	}

	reg, err := f.RegisterVehicle(v)
	if err != nil {
		return entities.RegistrationReceipt{}, err
	}
	s.metrics.ObserveRegistration(string(reg.PlateType), reg.Fee)
	logging.Info().
		Str("facility_id", facilityID).
		Str("vin", vin).
		Str("plate_type", string(reg.PlateType)).
		Int("fee", reg.Fee).
		Msg("vehicle registered")

	receipt := entities.RegistrationReceipt{
		FacilityID:       facilityID,
		VIN:              reg.VIN,
		PlateType:        string(reg.PlateType),
		Fee:              reg.Fee,
		RegistrationDate: reg.RegistrationDate,
		CollectedFees:    reg.CollectedFees,
	}

	if s.checkout != nil {
		description := fmt.Sprintf("%s plate registration %d %s %s (%s)", reg.PlateType, v.Year, v.Make, v.Model, v.VIN)
		url, sessionID, err := s.checkout.CreateCheckoutSession(int64(reg.Fee)*100, description, customerEmail)
		if err != nil {
			logging.Error().Err(err).Str("vin", vin).Msg("could not open fee checkout")
		} else {
			receipt.CheckoutURL = url
			receipt.CheckoutID = sessionID
		}
	}
	return receipt, nil
}

func (s *AgencyService) CreateRegistrant(name string, age int, permit bool, email, phone string) entities.RegistrantResponse {
	r := db.NewRegistrant(name, age, permit)
	r.Email = email
	r.Phone = phone
	id := s.registrants.CreateRegistrant(r)
	return registrantResponse(id, r)
}

func (s *AgencyService) GetRegistrant(id string) (entities.RegistrantResponse, error) {
	r, err := s.registrants.GetRegistrant(id)
	if err != nil {
		return entities.RegistrantResponse{}, err
	}
	return registrantResponse(id, r), nil
}

func (s *AgencyService) EarnPermit(id string) (entities.RegistrantResponse, error) {
	r, err := s.registrants.GetRegistrant(id)
	if err != nil {
		return entities.RegistrantResponse{}, err
	}
	r.EarnPermit()
	return registrantResponse(id, r), nil
}

func (s *AgencyService) UnearnPermit(id string) (entities.RegistrantResponse, error) {
	r, err := s.registrants.GetRegistrant(id)
	if err != nil {
		return entities.RegistrantResponse{}, err
	}
	r.UnearnPermit()
	return registrantResponse(id, r), nil
}

func (s *AgencyService) AdministerWrittenTest(facilityID, registrantID string) (entities.RegistrantResponse, error) {
	return s.licensingStep(StepWrittenTest, facilityID, registrantID, (*facility.Facility).AdministerWrittenTest, "")
}

func (s *AgencyService) AdministerRoadTest(facilityID, registrantID string) (entities.RegistrantResponse, error) {
	return s.licensingStep(StepRoadTest, facilityID, registrantID, (*facility.Facility).AdministerRoadTest, EventLicenseIssued)
}

func (s *AgencyService) RenewDriversLicense(facilityID, registrantID string) (entities.RegistrantResponse, error) {
	return s.licensingStep(StepRenewal, facilityID, registrantID, (*facility.Facility).RenewDriversLicense, EventLicenseRenewed)
}

func (s *AgencyService) licensingStep(
	step, facilityID, registrantID string,
	administer func(*facility.Facility, *db.Registrant) error,
	event string,
) (entities.RegistrantResponse, error) {
	f, err := s.facilities.GetFacility(facilityID)
	if err != nil {
		return entities.RegistrantResponse{}, err
	}
	r, err := s.registrants.GetRegistrant(registrantID)
	if err != nil {
		return entities.RegistrantResponse{}, err
	}

	err = administer(f, r)
	s.metrics.ObserveLicensingStep(step, err)
	if err != nil {
		logging.Info().Err(err).Str("step", step).Str("facility_id", facilityID).Str("registrant_id", registrantID).Msg("licensing step rejected")
		return registrantResponse(registrantID, r), err
	}
	logging.Info().Str("step", step).Str("facility_id", facilityID).Str("registrant_id", registrantID).Msg("licensing step passed")

	if event != "" && s.notifier != nil {
		s.notifier.NotifyLicenseEvent(r, f.Name(), event)
	}
	return registrantResponse(registrantID, r), nil
}

func vehicleResponse(v *db.Vehicle) entities.VehicleResponse {
	resp := entities.VehicleResponse{
		VIN:    v.VIN,
		Year:   v.Year,
		Make:   v.Make,
		Model:  v.Model,
		Engine: string(v.Engine),
	}
	if v.Registered() {
		date := v.RegistrationDate()
		resp.PlateType = string(v.PlateType())
		resp.RegistrationDate = &date
	}
	return resp
}

func registrantResponse(id string, r *db.Registrant) entities.RegistrantResponse {
	return entities.RegistrantResponse{
		ID:          id,
		Name:        r.Name,
		Age:         r.Age,
		Permit:      r.Permit(),
		LicenseData: r.LicenseData(),
	}
}
