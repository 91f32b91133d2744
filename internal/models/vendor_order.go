package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultShippingNotes is the standing shipping instruction placed in vendor emails
const DefaultShippingNotes = "Ship to: *China order AIR Shipping (Let us know if Express is needed to meet in the date)\n" +
	"*If this is being shipped from Abroad to the USA make sure the vendor add our Tax ID/EIN # (20-3592623)."

// Tristate is a yes/no answer that may not have been given
type Tristate int

// Tristate values
const (
	Unset Tristate = iota
	Yes
	No
)

// String renders the answer as it appears in vendor emails
func (t Tristate) String() string {
	switch t {
	case Yes:
		return "Yes"
	case No:
		return "No"
	default:
		return "N/A"
	}
}

// UnmarshalJSON accepts true, false or null
func (t *Tristate) UnmarshalJSON(b []byte) error {
	switch string(bytes.TrimSpace(b)) {
	case "true":
		*t = Yes
	case "false":
		*t = No
	case "null", "":
		*t = Unset
	default:
		return fmt.Errorf("tristate: unexpected value %s", b)
	}
	return nil
}

// MarshalJSON writes true, false or null
func (t Tristate) MarshalJSON() ([]byte, error) {
	switch t {
	case Yes:
		return []byte("true"), nil
	case No:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// LineAnnotation holds the user-entered vendor details for one line
type LineAnnotation struct {
	PMSColors           string   `json:"pms_colors,omitempty"`
	CoBranded           Tristate `json:"co_branded"`
	PreProductionSample Tristate `json:"pre_production_sample"`
}

// Annotations holds everything the user typed into the vendor order form
type Annotations struct {
	Lines         map[ID]LineAnnotation `json:"lines"`
	InHandDate    string                `json:"in_hand_date,omitempty"`
	ShippingNotes string                `json:"shipping_notes"`
}

// DefaultAnnotations returns an empty form with the standing shipping notes
func DefaultAnnotations() Annotations {
	return Annotations{
		Lines:         map[ID]LineAnnotation{},
		ShippingNotes: DefaultShippingNotes,
	}
}

// Line returns the annotation for a line, or the zero value
func (a Annotations) Line(id ID) LineAnnotation {
	return a.Lines[id]
}

// UnmarshalJSON fills missing shipping notes with the standing default
func (a *Annotations) UnmarshalJSON(b []byte) error {
	type plain Annotations
	p := plain(DefaultAnnotations())
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	if p.Lines == nil {
		p.Lines = map[ID]LineAnnotation{}
	}
	*a = Annotations(p)
	return nil
}

// ComposeRequest asks the relay to build a vendor order email
type ComposeRequest struct {
	Order       Order       `json:"order"`
	Selected    []ID        `json:"selected"`
	Annotations Annotations `json:"annotations"`
}

// DraftContent is the payload handed to the host's draft-creation capability
type DraftContent struct {
	Body string `json:"body"`
	Type string `json:"type"`
}
