package api

import (
	"dmv/internal/auth"
	apperrors "dmv/internal/errors"
	"dmv/internal/logging"
	"dmv/internal/service"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type FacilityHandler struct {
	Agency *service.AgencyService
	Admin  *service.AdminService
}

func NewFacilityHandler(agency *service.AgencyService, admin *service.AdminService) *FacilityHandler {
	return &FacilityHandler{Agency: agency, Admin: admin}
}

func (h *FacilityHandler) ListFacilities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Agency.ListFacilities())
}

func (h *FacilityHandler) GetFacility(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Agency.GetFacility(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FacilityHandler) GetFeeSchedule(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Agency.FeeSchedule())
}

func (h *FacilityHandler) CreateFacility(w http.ResponseWriter, r *http.Request) {
	var req CreateFacilityRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, apperrors.ErrBadRequest("name is required"))
		return
	}
	resp := h.Admin.CreateFacility(req.Name, req.Address, req.Phone)
	logging.Info().Str("admin", auth.AdminEmail(r.Context())).Str("facility_id", resp.ID).Msg("admin created facility")
	writeJSON(w, http.StatusCreated, resp)
}

func (h *FacilityHandler) AddService(w http.ResponseWriter, r *http.Request) {
	var req AddServiceRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.Admin.AddService(mux.Vars(r)["id"], req.Service)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
