package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePageNumbers parses a comma-separated list of page numbers, e.g.
// "1, 2,10". An empty string yields no pages.
func ParsePageNumbers(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	pages := make([]int, 0, len(parts))
	for _, part := range parts {
		page, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid page number %q", part)
		}
		pages = append(pages, page)
	}
	return pages, nil
}
