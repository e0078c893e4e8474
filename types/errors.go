package types

import "errors"

// Sentinel errors for every failure class in the pipelines. Components
// wrap these with fmt.Errorf("...: %w", ...) so callers can classify
// with errors.Is while keeping the underlying detail.
var (
	// ErrNotPDF means the submitted paper URL does not point at a PDF.
	ErrNotPDF = errors.New("url does not point to a pdf")

	// ErrMissingEnv means a required configuration value is absent.
	ErrMissingEnv = errors.New("missing required configuration")

	// ErrMissingCredential means the extraction service API key is not set.
	ErrMissingCredential = errors.New("missing extraction service api key")

	// ErrInvalidPDF means the fetched bytes could not be decoded as a PDF.
	ErrInvalidPDF = errors.New("invalid pdf")

	// ErrPageOutOfRange means a page number to delete is not within the
	// document.
	ErrPageOutOfRange = errors.New("page number out of range")

	// ErrPagesNotAscending means the pages to delete are not strictly
	// ascending. Page numbers always refer to the original document
	// numbering, so unsorted or duplicated input is rejected instead of
	// silently removing the wrong pages.
	ErrPagesNotAscending = errors.New("pages to delete must be strictly ascending")

	// ErrExtraction means the document extraction service failed.
	ErrExtraction = errors.New("extraction service failed")

	// ErrMissingToolCall means the model response carried no tool call.
	ErrMissingToolCall = errors.New("model response contains no tool call")

	// ErrToolCallParse means a tool call's arguments did not match the
	// expected schema.
	ErrToolCallParse = errors.New("tool call arguments do not match schema")

	// ErrMissingDocuments means no fragments were retrieved for a question.
	ErrMissingDocuments = errors.New("no documents found")

	// ErrMissingNotes means the stored paper has no notes to answer from.
	ErrMissingNotes = errors.New("no notes found")

	// ErrPaperNotFound means no paper row exists for the given URL.
	ErrPaperNotFound = errors.New("paper not found")

	// ErrPaperExists means a paper row for the URL was already ingested.
	ErrPaperExists = errors.New("paper already exists")

	// ErrInsert wraps row store insert failures.
	ErrInsert = errors.New("insert failed")

	// ErrLookup wraps row store query failures, as opposed to "no row
	// found" which is not an error.
	ErrLookup = errors.New("lookup failed")
)
