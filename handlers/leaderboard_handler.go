package handlers

import (
	"net/http"

	"github.com/gns-club/quiz-battle-system/services"
)

type LeaderboardHandler struct {
	leaderboardService services.LeaderboardService
}

func NewLeaderboardHandler(ls services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: ls}
}

func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ranked, err := h.leaderboardService.Rank(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"leaderboard": ranked}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *LeaderboardHandler) AllComplete(w http.ResponseWriter, r *http.Request) {
	complete, err := h.leaderboardService.AllComplete(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"allComplete": complete}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
