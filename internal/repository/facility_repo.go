package repository

import (
	apperrors "dmv/internal/errors"
	"dmv/internal/facility"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type FacilityRecord struct {
	ID       string
	Facility *facility.Facility
}

// FacilityRepository keeps facilities in memory for the life of the process.
type FacilityRepository struct {
	mu         sync.RWMutex
	facilities map[string]*facility.Facility
	order      []string
}

func NewFacilityRepository() *FacilityRepository {
	return &FacilityRepository{facilities: make(map[string]*facility.Facility)}
}

func (r *FacilityRepository) CreateFacility(f *facility.Facility) FacilityRecord {
	id := uuid.NewString()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.facilities[id] = f
	r.order = append(r.order, id)
	return FacilityRecord{ID: id, Facility: f}
}

func (r *FacilityRepository) GetFacility(id string) (*facility.Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.facilities[id]
	if !ok {
		return nil, fmt.Errorf("facility %q: %w", id, apperrors.ErrRecordNotFound)
	}
	return f, nil
}

// ListFacilities returns facilities in creation order.
func (r *FacilityRepository) ListFacilities() []FacilityRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]FacilityRecord, 0, len(r.order))
	for _, id := range r.order {
		records = append(records, FacilityRecord{ID: id, Facility: r.facilities[id]})
	}
	return records
}

// ListFacilitiesByName is used by reports that want a stable alphabetical order.
func (r *FacilityRepository) ListFacilitiesByName() []FacilityRecord {
	records := r.ListFacilities()
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Facility.Name() < records[j].Facility.Name()
	})
	return records
}
