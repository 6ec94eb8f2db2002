package service

import (
	"dmv/internal/entities"
	"dmv/internal/facility"
	"dmv/internal/logging"
	"dmv/internal/repository"
	"fmt"
)

// AdminService covers facility setup: opening facilities and choosing what they offer.
type AdminService struct {
	facilityRepo *repository.FacilityRepository
	clock        facility.Clock
}

func NewAdminService(facilityRepo *repository.FacilityRepository, clock facility.Clock) *AdminService {
	return &AdminService{facilityRepo: facilityRepo, clock: clock}
}

func (s *AdminService) CreateFacility(name, address, phone string) entities.FacilityResponse {
	record := s.facilityRepo.CreateFacility(facility.New(name, address, phone, facility.WithClock(s.clock)))
	logging.Info().Str("facility_id", record.ID).Str("name", name).Msg("facility created")
	return facilityResponse(record.ID, record.Facility)
}

func (s *AdminService) AddService(facilityID, serviceName string) (entities.FacilityResponse, error) {
	f, err := s.facilityRepo.GetFacility(facilityID)
	if err != nil {
		return entities.FacilityResponse{}, fmt.Errorf("add service: %w", err)
	}
	f.AddService(serviceName)
	logging.Info().Str("facility_id", facilityID).Str("service", serviceName).Msg("service added")
	return facilityResponse(facilityID, f), nil
}

func facilityResponse(id string, f *facility.Facility) entities.FacilityResponse {
	return entities.FacilityResponse{
		ID:                 id,
		Name:               f.Name(),
		Address:            f.Address(),
		Phone:              f.Phone(),
		Services:           f.Services(),
		CollectedFees:      f.CollectedFees(),
		RegisteredVehicles: len(f.RegisteredVehicles()),
	}
}
