package handlers

import (
	"net/http"

	"github.com/gns-club/quiz-battle-system/services"
)

type BattleHandler struct {
	battleService services.BattleService
}

func NewBattleHandler(bs services.BattleService) *BattleHandler {
	return &BattleHandler{battleService: bs}
}

func (h *BattleHandler) StartMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	state, err := h.battleService.Start(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"battleState": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BattleHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		SelectedAnswer *string `json:"selectedAnswer"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.battleService.SubmitAnswer(r.Context(), matchID, input.SelectedAnswer, false)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Timeout is the external timer collaborator's entry point: the side on
// turn forfeits the current question.
func (h *BattleHandler) Timeout(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.battleService.SubmitAnswer(r.Context(), matchID, nil, true)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BattleHandler) GetBattleState(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	state, err := h.battleService.GetBattleState(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"battleState": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BattleHandler) GetActiveMatch(w http.ResponseWriter, r *http.Request) {
	state, err := h.battleService.GetActiveMatch(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"battleState": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
