package viewmodel

import (
	"fmt"
	"strings"

	"github.com/ashendes/order-sidebar/internal/models"
)

const (
	jobNamePlaceholder = "—"
	freeformColor      = "Custom"
)

// OrderView is everything the sidebar renders for one order
type OrderView struct {
	OrderID        models.ID        `json:"order_id"`
	BackendURL     string           `json:"backend_url,omitempty"`
	StatusCode     int              `json:"status_code"`
	StatusLabel    string           `json:"status_label"`
	StatusColor    string           `json:"status_color"`
	JobName        string           `json:"job_name"`
	Company        string           `json:"company,omitempty"`
	Amount         string           `json:"amount"`
	CreatedBy      string           `json:"created_by,omitempty"`
	ProductionLead string           `json:"production_lead,omitempty"`
	ShippingMethod string           `json:"shipping_method,omitempty"`
	Notes          []models.Note    `json:"notes"`
	DriveLinks     []DriveLink      `json:"drive_links"`
	Tracking       []CarrierLinkage `json:"tracking"`
	Sized          []LineView       `json:"sized"`
	Freeform       []LineView       `json:"freeform"`
	Extras         []LineView       `json:"extras"`
	Selectable     []LineView       `json:"selectable"`
	Billing        *models.Address  `json:"billing,omitempty"`
	Shipping       *models.Address  `json:"shipping,omitempty"`
	Documents      []Document       `json:"documents"`
}

// LineView is the display form of one order line
type LineView struct {
	ID          models.ID     `json:"id"`
	Name        string        `json:"name"`
	Code        string        `json:"code,omitempty"`
	Qty         int           `json:"qty"`
	UnitPrice   string        `json:"unit_price"`
	Color       string        `json:"color,omitempty"`
	SKU         string        `json:"sku,omitempty"`
	Sizing      []string      `json:"sizing,omitempty"`
	Description string        `json:"description,omitempty"`
	Attachments []string      `json:"attachments,omitempty"`
	Search      ProductSearch `json:"search"`
}

// DocumentKind names one of the PDFs attached to an order
type DocumentKind string

// Document kinds, in display order
const (
	DocumentQuote      DocumentKind = "quote"
	DocumentProduction DocumentKind = "production"
	DocumentProof      DocumentKind = "proof"
)

// Document is a downloadable PDF of an order
type Document struct {
	Kind DocumentKind `json:"kind"`
	URL  string       `json:"url"`
}

// Build derives the render-ready view of an order
func Build(o models.Order) OrderView {
	v := OrderView{
		OrderID:     o.OrderID,
		StatusCode:  o.Status,
		StatusLabel: models.StatusLabel(o.Status),
		StatusColor: models.StatusColor(o.Status),
		JobName:     o.JobNameOr(jobNamePlaceholder),
		Company:     o.Company(),
		Amount:      o.ItemAmount.StringFixed(2),
		Notes:       o.Notes,
		DriveLinks:  NoteLinks(o.Notes),
		Billing:     o.BillingDetails,
		Shipping:    o.ShippingDetails,
		Documents:   documents(o),
	}
	if id, ok := ExtractBackendID(o); ok {
		v.BackendURL = BackendOrderURL(id)
	}
	if o.CreatedBy != nil {
		v.CreatedBy = o.CreatedBy.FirstName
	}
	if p := o.ProductionLead(); p != nil {
		v.ProductionLead = p.FirstName
	}
	if o.ShippingMethod != nil {
		v.ShippingMethod = o.ShippingMethod.Name
	}
	for _, s := range o.Shipments {
		v.Tracking = append(v.Tracking, ResolveCarrier(s.TrackingNumber))
	}

	c := Classify(o.OrderLines)
	v.Sized = lineViews(c.Sized, "")
	v.Freeform = lineViews(c.Freeform, freeformColor)
	v.Extras = lineViews(c.Extras, "")
	v.Selectable = lineViews(SelectableLines(o.OrderLines), "")
	return v
}

// Sizing renders each variant field as "code x qty" pairs
func Sizing(l models.OrderLine) []string {
	var out []string
	for _, f := range l.Fields {
		parts := make([]string, 0, len(f.Options))
		for _, opt := range f.Options {
			parts = append(parts, fmt.Sprintf("%s x %d", opt.Code, opt.Qty))
		}
		out = append(out, strings.Join(parts, ", "))
	}
	return out
}

func lineViews(lines []models.OrderLine, colorFallback string) []LineView {
	views := make([]LineView, 0, len(lines))
	for _, l := range lines {
		lv := LineView{
			ID:          l.ID,
			Name:        l.ProductName,
			Code:        l.ProductCode,
			Qty:         int(l.Qty),
			UnitPrice:   l.UnitPrice.StringFixed(2),
			Color:       l.ColorName(colorFallback),
			SKU:         l.SKU(),
			Sizing:      Sizing(l),
			Description: l.Description,
			Search:      ProductSearchURLs(l.ProductName, l.ProductCode),
		}
		for _, a := range l.Attachments {
			lv.Attachments = append(lv.Attachments, a.ImageURL)
		}
		views = append(views, lv)
	}
	return views
}

func documents(o models.Order) []Document {
	var docs []Document
	for _, d := range []Document{
		{Kind: DocumentQuote, URL: o.QuotePDFURL},
		{Kind: DocumentProduction, URL: o.ProductionPDFURL},
		{Kind: DocumentProof, URL: o.ProofPDFURL},
	} {
		if d.URL != "" {
			docs = append(docs, d)
		}
	}
	return docs
}

// PDFURL returns the URL of the given document kind, if the order has one
func PDFURL(o models.Order, kind DocumentKind) (string, bool) {
	for _, d := range documents(o) {
		if d.Kind == kind {
			return d.URL, true
		}
	}
	return "", false
}

// ExtractFilename names the file produced by cutting pages out of an order PDF
func ExtractFilename(orderID models.ID, kind DocumentKind, pages []int) string {
	return fmt.Sprintf("%s_%s_pages_%s.pdf", orderID, kind, JoinPages(pages, "-"))
}

// JoinPages renders a page list with sep between numbers
func JoinPages(pages []int, sep string) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = fmt.Sprint(p)
	}
	return strings.Join(parts, sep)
}
