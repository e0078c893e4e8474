package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/tieubaoca/paper-notes-be/config"
	"github.com/tieubaoca/paper-notes-be/types"
)

// ExtractService turns PDF bytes into text fragments through the
// Unstructured partition API.
type ExtractService struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewExtractService(cfg *config.Config) *ExtractService {
	return &ExtractService{
		apiURL: cfg.UnstructuredAPIURL,
		apiKey: cfg.UnstructuredAPIKey,
		client: &http.Client{},
	}
}

// unstructuredElement is the part of the partition response we keep.
type unstructuredElement struct {
	Text     string `json:"text"`
	Metadata struct {
		PageNumber int `json:"page_number"`
	} `json:"metadata"`
}

// Extract writes the PDF to a uniquely named temporary file, submits it
// to the extraction service and returns the text fragments in document
// order. The temporary file is removed on every exit path; a failed
// removal is logged, not surfaced.
func (s *ExtractService) Extract(ctx context.Context, pdf []byte) ([]types.Document, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("%w: UNSTRUCTURED_API_KEY", types.ErrMissingCredential)
	}

	pdfPath := filepath.Join(os.TempDir(), uuid.NewString()+".pdf")
	if err := os.WriteFile(pdfPath, pdf, 0600); err != nil {
		return nil, fmt.Errorf("writing temporary pdf: %w", err)
	}
	defer func() {
		if err := os.Remove(pdfPath); err != nil {
			log.Printf("Failed to remove temporary pdf %s: %v", pdfPath, err)
		}
	}()

	elements, err := s.partition(ctx, pdfPath)
	if err != nil {
		return nil, err
	}

	var docs []types.Document
	for _, element := range elements {
		if element.Text == "" {
			continue
		}
		docs = append(docs, types.Document{
			PageContent: element.Text,
			Metadata: types.DocumentMetadata{
				PageNumber: element.Metadata.PageNumber,
			},
		})
	}
	return docs, nil
}

func (s *ExtractService) partition(ctx context.Context, pdfPath string) ([]unstructuredElement, error) {
	file, err := os.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening temporary pdf: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("files", filepath.Base(pdfPath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("unstructured-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrExtraction, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", types.ErrExtraction, resp.StatusCode, detail)
	}

	var elements []unstructuredElement
	if err := json.NewDecoder(resp.Body).Decode(&elements); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", types.ErrExtraction, err)
	}
	return elements, nil
}
