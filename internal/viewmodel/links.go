// Package viewmodel turns a raw vendor order into the read-only view the
// sidebar renders, and composes vendor order emails from it. Nothing here
// performs I/O or mutates its inputs.
package viewmodel

import (
	"strings"

	"github.com/ashendes/order-sidebar/internal/models"
)

// DefaultLinkDescriptor labels a link that has no preceding word
const DefaultLinkDescriptor = "Drive Link"

var drivePrefixes = []string{
	"https://drive.google.com/drive/",
	"https://docs.google.com/",
}

// DriveLink is a document-sharing URL found in note text
type DriveLink struct {
	Descriptor string `json:"descriptor"`
	URL        string `json:"url"`
}

// ExtractLinks finds document-sharing URLs in content, labelling each with
// the word before it.
func ExtractLinks(content string) []DriveLink {
	tokens := strings.Fields(content)
	var links []DriveLink
	for i, tok := range tokens {
		if !isDriveURL(tok) {
			continue
		}
		descriptor := DefaultLinkDescriptor
		if i > 0 {
			descriptor = strings.TrimSuffix(tokens[i-1], ":")
		}
		links = append(links, DriveLink{Descriptor: descriptor, URL: tok})
	}
	return links
}

// NoteLinks flattens the links of every note, in note order
func NoteLinks(notes []models.Note) []DriveLink {
	var links []DriveLink
	for _, n := range notes {
		links = append(links, ExtractLinks(n.Content)...)
	}
	return links
}

func isDriveURL(tok string) bool {
	for _, p := range drivePrefixes {
		if strings.HasPrefix(tok, p) {
			return true
		}
	}
	return false
}
