package viewmodel

import (
	"fmt"
	"strings"

	"github.com/ashendes/order-sidebar/internal/models"
)

// NoProductsSelected is returned by Compose when no selectable line was chosen
const NoProductsSelected = "No products selected for vendor order."

const (
	emailPreamble  = "We are placing an order. Details below:\n\n"
	shippingAcct   = "Please use our UPS Account for shipping:\nX4R511 / Zip: 20817\n\n"
	emailClosing   = "\n\nPlease, let me know if you have any questions.\n\nRegards."
	fallbackNA     = "N/A"
	draftTypePlain = "text"
)

// Selection is the set of line ids the user ticked
type Selection map[models.ID]bool

// NewSelection builds a selection from a list of ids
func NewSelection(ids ...models.ID) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

// SelectedLines returns the selectable lines whose id is in sel, in order
func SelectedLines(o models.Order, sel Selection) []models.OrderLine {
	var out []models.OrderLine
	for _, l := range o.OrderLines {
		if sel[l.ID] && Selectable(l) {
			out = append(out, l)
		}
	}
	return out
}

// Compose builds the plain-text vendor order email for the selected lines
func Compose(o models.Order, sel Selection, ann models.Annotations) string {
	lines := SelectedLines(o, sel)
	if len(lines) == 0 {
		return NoProductsSelected
	}

	var b strings.Builder
	b.WriteString(emailPreamble)
	fmt.Fprintf(&b, "Customer #: %s\n", orNA(o.CustomerID.String()))
	fmt.Fprintf(&b, "PO #: %s\n\n", orNA(o.OrderID.String()))

	for i, l := range lines {
		writeLine(&b, i+1, l, ann.Line(l.ID))
	}

	if links := NoteLinks(o.Notes); len(links) > 0 {
		b.WriteString("Artwork and Mocks:\n")
		for _, link := range links {
			fmt.Fprintf(&b, "%s: %s\n", link.Descriptor, link.URL)
		}
		b.WriteString("\n")
	}

	if ann.InHandDate != "" {
		fmt.Fprintf(&b, "In-hand date: %s\n\n", ann.InHandDate)
	}

	b.WriteString(shippingAcct)
	b.WriteString(ann.ShippingNotes)
	b.WriteString(emailClosing)
	return b.String()
}

// Draft wraps a composed email in the host's draft payload
func Draft(body string) models.DraftContent {
	return models.DraftContent{Body: body, Type: draftTypePlain}
}

func writeLine(b *strings.Builder, n int, l models.OrderLine, a models.LineAnnotation) {
	fmt.Fprintf(b, "--- Item %d ---\n", n)
	fmt.Fprintf(b, "Item: %s\n", l.ProductName)
	if l.ProductCode != "" {
		fmt.Fprintf(b, "Product Code: %s\n", l.ProductCode)
	}
	fmt.Fprintf(b, "Color: %s\n", l.ColorName(fallbackNA))
	fmt.Fprintf(b, "Quantity: %d (Ship Exact)\n", l.Qty)

	if opts := l.SizeOptions(); len(opts) > 0 {
		b.WriteString("Size Breakdown:\n")
		for _, opt := range opts {
			fmt.Fprintf(b, "  - %s: %d\n", opt.Name, opt.Qty)
		}
	}
	if l.Description != "" {
		fmt.Fprintf(b, "Decoration: %s\n", l.Description)
	}
	if len(l.Attachments) > 0 {
		fmt.Fprintf(b, "Attachments: %d product image(s) available\n", len(l.Attachments))
	}
	if a.PMSColors != "" {
		fmt.Fprintf(b, "Imprint PMS Colors: %s\n", a.PMSColors)
	}
	fmt.Fprintf(b, "Co-Branded CM Label: %s\n", a.CoBranded)
	fmt.Fprintf(b, "Pre-production sample/Photo: %s\n\n", a.PreProductionSample)
}

func orNA(s string) string {
	if s == "" {
		return fallbackNA
	}
	return s
}
