package handlers

import (
	"net/http"

	"github.com/gns-club/quiz-battle-system/services"
)

type MatchHandler struct {
	bracketService     services.BracketService
	leaderboardService services.LeaderboardService
}

func NewMatchHandler(bs services.BracketService, ls services.LeaderboardService) *MatchHandler {
	return &MatchHandler{bracketService: bs, leaderboardService: ls}
}

func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.bracketService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GenerateBracket discards any existing bracket and zeroes team scores.
// The UI confirms with the operator before calling.
func (h *MatchHandler) GenerateBracket(w http.ResponseWriter, r *http.Request) {
	var input struct {
		QuestionsPerTeam int `json:"questionsPerTeam"`
	}
	if r.ContentLength > 0 {
		if err := readJSON(w, r, &input); err != nil {
			badRequestResponse(w, r, err)
			return
		}
	}

	result, err := h.bracketService.Generate(r.Context(), input.QuestionsPerTeam)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) GetMatchHistory(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	history, err := h.leaderboardService.MatchHistory(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"history": history}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
