// Package pdfx cuts page subsets out of PDF documents fetched from URLs.
package pdfx

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrNoValidPages is returned when none of the requested pages exist
var ErrNoValidPages = errors.New("no valid pages")

// NoValidPagesError reports the document size alongside the rejected request
type NoValidPagesError struct {
	TotalPages int
	Requested  []int
}

func (e *NoValidPagesError) Error() string {
	return fmt.Sprintf("No valid pages found. PDF has %d pages. Requested: %s", e.TotalPages, joinInts(e.Requested, ", "))
}

func (e *NoValidPagesError) Unwrap() error { return ErrNoValidPages }

// NormalizePages drops pages outside [1, total], removes duplicates and sorts
// the rest ascending.
func NormalizePages(pages []int, total int) []int {
	seen := make(map[int]bool, len(pages))
	out := make([]int, 0, len(pages))
	for _, p := range pages {
		if p < 1 || p > total || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// DefaultFilename names an extraction when the caller gave no filename
func DefaultFilename(pages []int) string {
	return "extracted_pages_" + joinInts(pages, "-") + ".pdf"
}

func joinInts(xs []int, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, sep)
}
