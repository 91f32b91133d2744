package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Item type codes used by the order-management API
const (
	ItemTypeExtra    = 12 // flat fee / setup charge
	ItemTypeFreeform = 25 // custom product without variant fields
)

// ID is an identifier the vendor API sends either quoted or as a bare number
type ID string

// UnmarshalJSON accepts a JSON string, number or null
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("id: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// String returns the identifier as text
func (id ID) String() string { return string(id) }

// Count is a quantity the vendor API sends either quoted or as a bare number
type Count int

// UnmarshalJSON accepts a whole JSON number, a whole numeric string or null
func (c *Count) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" || string(b) == `""` {
		*c = 0
		return nil
	}
	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("count: %w", err)
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}
	if f != math.Trunc(f) {
		return fmt.Errorf("count: %q is not a whole number", s)
	}
	*c = Count(f)
	return nil
}

// SearchResponse is the envelope returned by the order find endpoint
type SearchResponse struct {
	Orders []Order `json:"orders"`
}

// Order represents one customer purchase record returned by the vendor API
type Order struct {
	OrderID          ID              `json:"order_id"`
	JobName          string          `json:"job_name,omitempty"`
	ItemAmount       decimal.Decimal `json:"item_amount"`
	Status           int             `json:"order_status"`
	CustomerID       ID              `json:"customer_id"`
	PONumber         string          `json:"po_number,omitempty"`
	CreatedBy        *Person         `json:"created_by,omitempty"`
	BillingDetails   *Address        `json:"billing_details,omitempty"`
	ShippingDetails  *Address        `json:"shipping_details,omitempty"`
	ShippingMethod   *ShippingMethod `json:"shipping_method,omitempty"`
	Notes            []Note          `json:"notes"`
	Shipments        []Shipment      `json:"shipments"`
	OrderLines       []OrderLine     `json:"order_lines"`
	QuotePDFURL      string          `json:"quote_pdf_url,omitempty"`
	ProductionPDFURL string          `json:"production_pdf_url,omitempty"`
	ProofPDFURL      string          `json:"order_proof_pdf_url,omitempty"`
}

// OrderLine represents one product or fee row within an order
type OrderLine struct {
	ID                   ID              `json:"id"`
	ProductName          string          `json:"product_name"`
	ProductCode          string          `json:"product_code,omitempty"`
	Qty                  Count           `json:"qty"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	ProductColor         *ProductColor   `json:"product_color,omitempty"`
	FreeformColor        string          `json:"product_freeform_color,omitempty"`
	Description          string          `json:"product_description,omitempty"`
	ItemType             int             `json:"item_type"`
	Fields               []VariantField  `json:"fields,omitempty"`
	Attachments          []Attachment    `json:"attachment_urls,omitempty"`
	ProductionAssignedTo []Person        `json:"production_assigned_to,omitempty"`
}

// VariantField is a selectable product dimension such as size
type VariantField struct {
	Options []VariantOption `json:"options"`
}

// VariantOption is one value of a variant field with its own quantity
type VariantOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Qty  Count  `json:"qty"`
	SKU  string `json:"sku,omitempty"`
}

// ProductColor is the structured color reference of a catalog product
type ProductColor struct {
	Name string `json:"name"`
}

// Attachment is a product image attached to a line
type Attachment struct {
	ImageURL string `json:"image_url"`
}

// Note is a typed free-text note on an order
type Note struct {
	NoteType string `json:"note_type"`
	Content  string `json:"content"`
}

// Shipment carries the tracking number of one parcel
type Shipment struct {
	TrackingNumber string `json:"tracking_number"`
}

// Person is a staff member referenced by an order
type Person struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname,omitempty"`
}

// Address is a billing or shipping detail block
type Address struct {
	Company     string `json:"company,omitempty"`
	FirstName   string `json:"firstname,omitempty"`
	LastName    string `json:"lastname,omitempty"`
	Street      string `json:"street,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Postcode    string `json:"postcode,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	Phone       string `json:"ph_number,omitempty"`
}

// ShippingMethod names the carrier service chosen for an order
type ShippingMethod struct {
	Name string `json:"name"`
}

// HasFields reports whether the line carries variant fields
func (l OrderLine) HasFields() bool {
	return len(l.Fields) > 0
}

// IsFreeform reports whether the line is a custom product without fields
func (l OrderLine) IsFreeform() bool {
	return l.ItemType == ItemTypeFreeform && !l.HasFields()
}

// IsExtra reports whether the line is a flat fee
func (l OrderLine) IsExtra() bool {
	return l.ItemType == ItemTypeExtra
}

// ColorName returns the structured color name, else the freeform color, else fallback
func (l OrderLine) ColorName(fallback string) string {
	if l.ProductColor != nil && l.ProductColor.Name != "" {
		return l.ProductColor.Name
	}
	if l.FreeformColor != "" {
		return l.FreeformColor
	}
	return fallback
}

// SizeOptions returns the options of the first variant field, if any
func (l OrderLine) SizeOptions() []VariantOption {
	if len(l.Fields) == 0 {
		return nil
	}
	return l.Fields[0].Options
}

// SKU returns the SKU of the first option of the first field
func (l OrderLine) SKU() string {
	if opts := l.SizeOptions(); len(opts) > 0 {
		return opts[0].SKU
	}
	return ""
}

// JobNameOr returns the job name or fallback when empty
func (o Order) JobNameOr(fallback string) string {
	if o.JobName == "" {
		return fallback
	}
	return o.JobName
}

// Company returns the billing company name, if billing details are present
func (o Order) Company() string {
	if o.BillingDetails == nil {
		return ""
	}
	return o.BillingDetails.Company
}

// ProductionLead returns the first assignee of the first line
func (o Order) ProductionLead() *Person {
	if len(o.OrderLines) == 0 || len(o.OrderLines[0].ProductionAssignedTo) == 0 {
		return nil
	}
	p := o.OrderLines[0].ProductionAssignedTo[0]
	return &p
}

// PDFURLs returns the present PDF document URLs in quote, production, proof order
func (o Order) PDFURLs() []string {
	var urls []string
	for _, u := range []string{o.QuotePDFURL, o.ProductionPDFURL, o.ProofPDFURL} {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
