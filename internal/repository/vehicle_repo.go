package repository

import (
	"dmv/internal/db"
	apperrors "dmv/internal/errors"
	"fmt"
	"sync"
)

// VehicleRepository indexes vehicles by VIN.
type VehicleRepository struct {
	mu       sync.RWMutex
	vehicles map[string]*db.Vehicle
}

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{vehicles: make(map[string]*db.Vehicle)}
}

// SaveVehicle stores v, replacing an unregistered vehicle with the same VIN. A registered
// vehicle is never replaced.
func (r *VehicleRepository) SaveVehicle(v *db.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.vehicles[v.VIN]; ok && existing.Registered() {
		return fmt.Errorf("vehicle %q: %w", v.VIN, apperrors.ErrAlreadyRegistered)
	}
	r.vehicles[v.VIN] = v
	return nil
}

func (r *VehicleRepository) GetVehicle(vin string) (*db.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vehicles[vin]
	if !ok {
		return nil, fmt.Errorf("vehicle %q: %w", vin, apperrors.ErrRecordNotFound)
	}
	return v, nil
}
