package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tieubaoca/paper-notes-be/service"
	"github.com/tieubaoca/paper-notes-be/types"
)

type QAHandler struct {
	qa service.Answerer
}

func NewQAHandler(qa service.Answerer) *QAHandler {
	return &QAHandler{
		qa: qa,
	}
}

// HandleQA answers a question about a stored paper and responds with the
// QA-pair list as a bare JSON array.
func (h *QAHandler) HandleQA() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req types.QARequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			sendError(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.PaperURL == "" || req.Question == "" {
			sendError(w, "paperUrl and question are required", http.StatusBadRequest)
			return
		}

		pairs, err := h.qa.Answer(r.Context(), req.PaperURL, req.Question)
		if err != nil {
			sendError(w, err.Error(), statusForError(err))
			return
		}

		sendJSON(w, pairs)
	}
}
