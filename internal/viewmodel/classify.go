package viewmodel

import "github.com/ashendes/order-sidebar/internal/models"

// Classification buckets the lines of an order for display. The buckets are
// independent filters: a line may land in more than one, or in none.
type Classification struct {
	Sized    []models.OrderLine
	Freeform []models.OrderLine
	Extras   []models.OrderLine
}

// Classify splits lines into sized, freeform and extra buckets, keeping
// input order inside each bucket.
func Classify(lines []models.OrderLine) Classification {
	var c Classification
	for _, l := range lines {
		if l.HasFields() {
			c.Sized = append(c.Sized, l)
		}
		if l.IsFreeform() {
			c.Freeform = append(c.Freeform, l)
		}
		if l.IsExtra() {
			c.Extras = append(c.Extras, l)
		}
	}
	return c
}

// Selectable reports whether a line may be put on a vendor order
func Selectable(l models.OrderLine) bool {
	return l.HasFields() || l.ItemType == models.ItemTypeFreeform
}

// SelectableLines returns the lines that may be put on a vendor order
func SelectableLines(lines []models.OrderLine) []models.OrderLine {
	var out []models.OrderLine
	for _, l := range lines {
		if Selectable(l) {
			out = append(out, l)
		}
	}
	return out
}
