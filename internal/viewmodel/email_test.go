package viewmodel

import (
	"strings"
	"testing"

	"github.com/ashendes/order-sidebar/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestComposeEmptySelection(t *testing.T) {
	o := sampleOrder(t)
	assert.Equal(t, NoProductsSelected, Compose(o, nil, models.DefaultAnnotations()))
	assert.Equal(t, NoProductsSelected, Compose(o, NewSelection(), models.DefaultAnnotations()))
}

func TestComposeIgnoresUnselectableLines(t *testing.T) {
	o := sampleOrder(t)
	// 103 is a flat fee and can never be ordered from a vendor
	assert.Equal(t, NoProductsSelected, Compose(o, NewSelection("103", "missing"), models.DefaultAnnotations()))
}

func TestComposeFullEmail(t *testing.T) {
	o := sampleOrder(t)
	ann := models.DefaultAnnotations()
	ann.Lines["101"] = models.LineAnnotation{PMSColors: "PMS 286 C", CoBranded: models.Yes, PreProductionSample: models.No}
	ann.InHandDate = "2026-11-02"
	ann.ShippingNotes = "Ship to warehouse."

	want := "We are placing an order. Details below:\n\n" +
		"Customer #: C-991\n" +
		"PO #: 48213\n\n" +
		"--- Item 1 ---\n" +
		"Item: Tee\n" +
		"Product Code: G500\n" +
		"Color: Navy\n" +
		"Quantity: 30 (Ship Exact)\n" +
		"Size Breakdown:\n" +
		"  - Medium: 10\n" +
		"  - Large: 20\n" +
		"Imprint PMS Colors: PMS 286 C\n" +
		"Co-Branded CM Label: Yes\n" +
		"Pre-production sample/Photo: No\n\n" +
		"--- Item 2 ---\n" +
		"Item: Custom Mug\n" +
		"Color: Matte Black\n" +
		"Quantity: 12 (Ship Exact)\n" +
		"Decoration: 1 color logo\n" +
		"Attachments: 2 product image(s) available\n" +
		"Co-Branded CM Label: N/A\n" +
		"Pre-production sample/Photo: N/A\n\n" +
		"Artwork and Mocks:\n" +
		"Mockups: https://drive.google.com/drive/folders/abc\n" +
		"Drive Link: https://docs.google.com/document/d/xyz\n\n" +
		"In-hand date: 2026-11-02\n\n" +
		"Please use our UPS Account for shipping:\nX4R511 / Zip: 20817\n\n" +
		"Ship to warehouse." +
		"\n\nPlease, let me know if you have any questions.\n\nRegards."

	assert.Equal(t, want, Compose(o, NewSelection("102", "101", "103"), ann))
}

func TestComposeMinimalOrderFallbacks(t *testing.T) {
	o := models.Order{
		OrderLines: []models.OrderLine{{ID: "1", ProductName: "Hat", Qty: 5, ItemType: models.ItemTypeFreeform}},
	}
	got := Compose(o, NewSelection("1"), models.DefaultAnnotations())

	assert.Contains(t, got, "Customer #: N/A\n")
	assert.Contains(t, got, "PO #: N/A\n\n")
	assert.Contains(t, got, "Color: N/A\n")
	assert.NotContains(t, got, "Size Breakdown:")
	assert.NotContains(t, got, "Artwork and Mocks:")
	assert.NotContains(t, got, "In-hand date:")
	assert.True(t, strings.Contains(got, models.DefaultShippingNotes))
}

func TestComposeSizeBreakdownKeepsOptionOrder(t *testing.T) {
	o := models.Order{
		OrderID: "9",
		OrderLines: []models.OrderLine{{
			ID: "1", ProductName: "Hoodie", Qty: 7,
			Fields: []models.VariantField{{Options: []models.VariantOption{
				{Name: "XL", Qty: 4},
				{Name: "S", Qty: 3},
			}}},
		}},
	}
	got := Compose(o, NewSelection("1"), models.DefaultAnnotations())
	assert.Contains(t, got, "Size Breakdown:\n  - XL: 4\n  - S: 3\nCo-Branded")
}

func TestDraft(t *testing.T) {
	assert.Equal(t, models.DraftContent{Body: "hi", Type: "text"}, Draft("hi"))
}
