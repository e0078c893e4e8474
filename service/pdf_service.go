package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/tieubaoca/paper-notes-be/types"
)

// PDFService downloads papers and removes unwanted pages before they
// reach the extraction service.
type PDFService struct {
	client *http.Client
}

func NewPDFService() *PDFService {
	return &PDFService{
		client: &http.Client{},
	}
}

// LoadFromURL downloads the raw PDF bytes. Transport failures and non-2xx
// statuses surface unchanged; there is no retry.
func (s *PDFService) LoadFromURL(ctx context.Context, paperURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, paperURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", paperURL, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// DeletePages returns a new PDF with the given 1-based pages removed.
// Page numbers refer to the original document numbering and must be
// strictly ascending and in range; unsorted or duplicated input is
// rejected rather than silently removing the wrong pages.
func (s *PDFService) DeletePages(pdf []byte, pagesToDelete []int) ([]byte, error) {
	if len(pagesToDelete) == 0 {
		return pdf, nil
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pageCount, err := api.PageCount(bytes.NewReader(pdf), conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidPDF, err)
	}

	selected := make([]string, 0, len(pagesToDelete))
	prev := 0
	for _, page := range pagesToDelete {
		if page < 1 || page > pageCount {
			return nil, fmt.Errorf("%w: page %d of %d", types.ErrPageOutOfRange, page, pageCount)
		}
		if page <= prev {
			return nil, fmt.Errorf("%w: got %v", types.ErrPagesNotAscending, pagesToDelete)
		}
		prev = page
		selected = append(selected, strconv.Itoa(page))
	}
	if len(selected) == pageCount {
		return nil, fmt.Errorf("%w: cannot delete every page", types.ErrPageOutOfRange)
	}

	var buf bytes.Buffer
	if err := api.RemovePages(bytes.NewReader(pdf), &buf, selected, conf); err != nil {
		return nil, fmt.Errorf("removing pages: %w", err)
	}
	return buf.Bytes(), nil
}
