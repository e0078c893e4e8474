package types

type TakeNotesRequest struct {
	PaperURL string `json:"paperUrl"`
	Name     string `json:"name"`
	// Comma-separated 1-based page numbers, e.g. "1,2,10".
	PagesToDelete string `json:"pagesToDelete,omitempty"`
}

type QARequest struct {
	PaperURL string `json:"paperUrl"`
	Question string `json:"question"`
}
