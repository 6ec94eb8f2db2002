package api

import (
	"dmv/internal/service"
	"net/http"

	"github.com/gorilla/mux"
)

type VehicleHandler struct {
	Service *service.AgencyService
}

func NewVehicleHandler(svc *service.AgencyService) *VehicleHandler {
	return &VehicleHandler{Service: svc}
}

func (h *VehicleHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req CreateVehicleRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.Service.CreateVehicle(req.VIN, req.Year, req.Make, req.Model, req.Engine)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *VehicleHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.GetVehicle(mux.Vars(r)["vin"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *VehicleHandler) RegisterVehicle(w http.ResponseWriter, r *http.Request) {
	var req RegisterVehicleRequest
	if !decode(w, r, &req) {
		return
	}
	receipt, err := h.Service.RegisterVehicle(mux.Vars(r)["id"], req.VIN, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}
