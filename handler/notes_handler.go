package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tieubaoca/paper-notes-be/service"
	"github.com/tieubaoca/paper-notes-be/types"
	"github.com/tieubaoca/paper-notes-be/utils"
)

type NotesHandler struct {
	notes service.NoteTaker
}

func NewNotesHandler(notes service.NoteTaker) *NotesHandler {
	return &NotesHandler{
		notes: notes,
	}
}

// HandleTakeNotes ingests a paper and responds with the generated note
// list as a bare JSON array.
func (h *NotesHandler) HandleTakeNotes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req types.TakeNotesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			sendError(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.PaperURL == "" || req.Name == "" {
			sendError(w, "paperUrl and name are required", http.StatusBadRequest)
			return
		}

		pagesToDelete, err := utils.ParsePageNumbers(req.PagesToDelete)
		if err != nil {
			sendError(w, err.Error(), http.StatusBadRequest)
			return
		}

		notes, err := h.notes.TakeNotes(r.Context(), req.PaperURL, req.Name, pagesToDelete)
		if err != nil {
			sendError(w, err.Error(), statusForError(err))
			return
		}

		sendJSON(w, notes)
	}
}
