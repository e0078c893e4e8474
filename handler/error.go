package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tieubaoca/paper-notes-be/types"
)

// statusForError maps the error taxonomy onto HTTP statuses so failures
// reach the client as something better than a bare 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, types.ErrNotPDF),
		errors.Is(err, types.ErrInvalidPDF),
		errors.Is(err, types.ErrPageOutOfRange),
		errors.Is(err, types.ErrPagesNotAscending):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrPaperNotFound),
		errors.Is(err, types.ErrMissingDocuments),
		errors.Is(err, types.ErrMissingNotes):
		return http.StatusNotFound
	case errors.Is(err, types.ErrPaperExists):
		return http.StatusConflict
	case errors.Is(err, types.ErrMissingToolCall),
		errors.Is(err, types.ErrToolCallParse):
		return http.StatusUnprocessableEntity
	case errors.Is(err, types.ErrExtraction):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func sendError(w http.ResponseWriter, message string, status int) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(types.ErrorResponse{
		Status: "error",
		Error:  message,
	})
}

func sendJSON(w http.ResponseWriter, data interface{}) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(data)
}
