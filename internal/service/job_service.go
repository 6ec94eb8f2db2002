package service

import (
	"dmv/internal/entities"
	"dmv/internal/facility"
	"dmv/internal/logging"
	"dmv/internal/repository"
	"fmt"

	"github.com/robfig/cron/v3"
)

type JobService struct {
	facilities *repository.FacilityRepository
	clock      facility.Clock
}

func NewJobService(facilities *repository.FacilityRepository, clock facility.Clock) *JobService {
	return &JobService{facilities: facilities, clock: clock}
}

// BuildFeeReport totals collected fees and registrations per facility.
func (s *JobService) BuildFeeReport() entities.FeeReport {
	report := entities.FeeReport{GeneratedAt: s.clock.Now()}
	for _, rec := range s.facilities.ListFacilitiesByName() {
		line := entities.FacilityFeeLine{
			FacilityID:         rec.ID,
			Name:               rec.Facility.Name(),
			CollectedFees:      rec.Facility.CollectedFees(),
			RegisteredVehicles: len(rec.Facility.RegisteredVehicles()),
		}
		report.Facilities = append(report.Facilities, line)
		report.TotalFees += line.CollectedFees
		report.RegisteredVehicles += line.RegisteredVehicles
	}
	return report
}

// ReportCollectedFees logs the current fee report.
func (s *JobService) ReportCollectedFees() {
	report := s.BuildFeeReport()
	for _, line := range report.Facilities {
		logging.Info().
			Str("facility_id", line.FacilityID).
			Str("facility", line.Name).
			Int("collected_fees", line.CollectedFees).
			Int("registered_vehicles", line.RegisteredVehicles).
			Msg("fee report")
	}
	logging.Info().
		Int("facilities", len(report.Facilities)).
		Int("total_fees", report.TotalFees).
		Int("registered_vehicles", report.RegisteredVehicles).
		Msg("fee report total")
}

// Schedule registers the fee report on c using a standard cron spec or descriptor.
func (s *JobService) Schedule(c *cron.Cron, spec string) error {
	if _, err := c.AddFunc(spec, s.ReportCollectedFees); err != nil {
		return fmt.Errorf("schedule fee report %q: %w", spec, err)
	}
	return nil
}
