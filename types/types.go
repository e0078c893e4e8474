package types

// Note is a single note the model took on a paper, together with the
// pages it was taken from.
type Note struct {
	Note        string `bson:"note" json:"note"`
	PageNumbers []int  `bson:"page_numbers" json:"pageNumbers"`
}

// Paper is one ingested paper. The arxiv URL is the unique key; a paper
// is written once at ingestion time and never updated.
type Paper struct {
	Paper     string `bson:"paper" json:"paper"`
	ArxivURL  string `bson:"arxiv_url" json:"arxiv_url"`
	Notes     []Note `bson:"notes" json:"notes"`
	Name      string `bson:"name" json:"name"`
	CreatedAt int64  `bson:"created_at" json:"created_at"`
}

// Document is one text fragment extracted from a paper.
type Document struct {
	PageContent string           `json:"pageContent"`
	Metadata    DocumentMetadata `json:"metadata"`
}

// DocumentMetadata carries the fragment's provenance. URL links the
// fragment back to the paper it was extracted from.
type DocumentMetadata struct {
	URL        string `json:"url"`
	PageNumber int    `json:"pageNumber,omitempty"`
}

// QAPair is one answer the model produced for a question, with the
// follow-up questions it suggested.
type QAPair struct {
	Answer            string   `json:"answer"`
	FollowupQuestions []string `json:"followupQuestions"`
}

// QARecord is one row of the append-only question/answer audit log.
type QARecord struct {
	Question          string   `bson:"question" json:"question"`
	Answer            string   `bson:"answer" json:"answer"`
	Context           string   `bson:"context" json:"context"`
	FollowupQuestions []string `bson:"followup_questions" json:"followup_questions"`
	CreatedAt         int64    `bson:"created_at" json:"created_at"`
}
