package handlers

import (
	"net/http"

	"github.com/gns-club/quiz-battle-system/services"
)

type AdminHandler struct {
	adminService services.AdminService
}

func NewAdminHandler(as services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: as}
}

// ResetAll wipes teams, questions and matches. No undo; the UI prompts
// for confirmation before calling.
func (h *AdminHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.ResetAll(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"reset": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AdminHandler) SeedDemo(w http.ResponseWriter, r *http.Request) {
	result, err := h.adminService.SeedDemo(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
