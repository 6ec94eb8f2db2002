package api

import (
	"dmv/internal/entities"
	"dmv/internal/service"
	"net/http"

	"github.com/gorilla/mux"
)

type RegistrantHandler struct {
	Service *service.AgencyService
}

func NewRegistrantHandler(svc *service.AgencyService) *RegistrantHandler {
	return &RegistrantHandler{Service: svc}
}

func (h *RegistrantHandler) CreateRegistrant(w http.ResponseWriter, r *http.Request) {
	var req CreateRegistrantRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusCreated, h.Service.CreateRegistrant(req.Name, req.Age, req.Permit, req.Email, req.Phone))
}

func (h *RegistrantHandler) GetRegistrant(w http.ResponseWriter, r *http.Request) {
	h.respond(w)(h.Service.GetRegistrant(mux.Vars(r)["id"]))
}

func (h *RegistrantHandler) EarnPermit(w http.ResponseWriter, r *http.Request) {
	h.respond(w)(h.Service.EarnPermit(mux.Vars(r)["id"]))
}

func (h *RegistrantHandler) UnearnPermit(w http.ResponseWriter, r *http.Request) {
	h.respond(w)(h.Service.UnearnPermit(mux.Vars(r)["id"]))
}

func (h *RegistrantHandler) AdministerWrittenTest(w http.ResponseWriter, r *http.Request) {
	h.licensing(w, r, h.Service.AdministerWrittenTest)
}

func (h *RegistrantHandler) AdministerRoadTest(w http.ResponseWriter, r *http.Request) {
	h.licensing(w, r, h.Service.AdministerRoadTest)
}

func (h *RegistrantHandler) RenewDriversLicense(w http.ResponseWriter, r *http.Request) {
	h.licensing(w, r, h.Service.RenewDriversLicense)
}

func (h *RegistrantHandler) licensing(w http.ResponseWriter, r *http.Request, step func(facilityID, registrantID string) (entities.RegistrantResponse, error)) {
	var req LicensingRequest
	if !decode(w, r, &req) {
		return
	}
	h.respond(w)(step(mux.Vars(r)["id"], req.RegistrantID))
}

func (h *RegistrantHandler) respond(w http.ResponseWriter) func(entities.RegistrantResponse, error) {
	return func(resp entities.RegistrantResponse, err error) {
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
