package handlers

import (
	"net/http"

	"github.com/gns-club/quiz-battle-system/importer"
	"github.com/gns-club/quiz-battle-system/services"
)

type QuestionHandler struct {
	questionService services.QuestionService
}

func NewQuestionHandler(qs services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: qs}
}

func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questionService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"questions": questions}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var input services.AddQuestionInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	question, err := h.questionService.Add(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"question": question}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, err := getIDFromURL(r, "questionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateQuestionInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	question, err := h.questionService.Update(r.Context(), questionID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"question": question}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, err := getIDFromURL(r, "questionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.questionService.Delete(r.Context(), questionID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ImportQuestions accepts a multipart upload (field "file") in JSON, CSV
// or XLSX form, normalizes the rows and reports how many were accepted.
func (h *QuestionHandler) ImportQuestions(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	records, err := importer.Parse(header.Filename, file)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	added, err := h.questionService.BulkImport(r.Context(), records)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"added": len(added)}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ExportQuestions serializes the full bank verbatim, answer keys included.
// This endpoint is for operators; the battle UI never calls it.
func (h *QuestionHandler) ExportQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questionService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	headers := http.Header{}
	headers.Set("Content-Disposition", `attachment; filename="gns-questions.json"`)
	if err := writeJSON(w, http.StatusOK, questions, headers); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *QuestionHandler) ResetUsed(w http.ResponseWriter, r *http.Request) {
	if err := h.questionService.ResetUsed(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"reset": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
