package viewmodel

import (
	"regexp"
	"strconv"
)

var pageSepRx = regexp.MustCompile(`[,\s]+`)

// ParsePages reads a page list such as "1,3,5" or "1 3 5". Tokens that are
// not positive integers are skipped; order and duplicates are kept.
func ParsePages(input string) []int {
	var pages []int
	for _, tok := range pageSepRx.Split(input, -1) {
		n, err := strconv.Atoi(tok)
		if err != nil || n <= 0 {
			continue
		}
		pages = append(pages, n)
	}
	return pages
}
