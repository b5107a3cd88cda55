package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"waste_tracker/internal/api/middleware"
	"waste_tracker/internal/app/service"
	"waste_tracker/internal/common"

	"github.com/go-chi/chi/v5"
)

type WasteHandler struct {
	wasteService *service.WasteService
}

func NewWasteHandler(ws *service.WasteService) *WasteHandler {
	return &WasteHandler{wasteService: ws}
}

func (h *WasteHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator) // All waste routes require auth
	r.Post("/", h.createRecord)
	r.Get("/", h.listRecords)

	r.Group(func(adminRouter chi.Router) {
		adminRouter.Use(middleware.AdminOnly)
		adminRouter.Delete("/{recordID}", h.deleteRecord)
	})
}

// RegisterCatalogRoutes mounts the reference catalog listings the capture
// form uses to populate its dropdowns.
func (h *WasteHandler) RegisterCatalogRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)
	r.Get("/waste-categories", h.listCategories)
	r.Get("/locations", h.listLocations)
}

func (h *WasteHandler) createRecord(w http.ResponseWriter, r *http.Request) {
	var req service.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	id, err := h.wasteService.CreateRecord(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, common.CreatedResponse{Message: "Record saved", ID: id})
}

func (h *WasteHandler) listRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.wasteService.ListRecords(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, records)
}

func (h *WasteHandler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "recordID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid record id")
		return
	}

	if err := h.wasteService.DeleteRecord(r.Context(), id); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Record deleted"})
}

func (h *WasteHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.wasteService.ListCategories(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, categories)
}

func (h *WasteHandler) listLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.wasteService.ListLocations(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, locations)
}
