package viewmodel

import (
	"net/url"
	"strings"
)

// Carrier identifies a parcel carrier
type Carrier string

// Known carriers
const (
	CarrierUnknown Carrier = "Unknown"
	CarrierUPS     Carrier = "UPS"
	CarrierFedEx   Carrier = "FedEx"
)

// CarrierLinkage is the outcome of resolving a tracking number
type CarrierLinkage struct {
	Carrier        Carrier `json:"carrier"`
	TrackingNumber string  `json:"tracking_number"`
	Token          string  `json:"token,omitempty"`
	URL            string  `json:"url,omitempty"`
}

// Linked reports whether the number resolved to a trackable link
func (c CarrierLinkage) Linked() bool {
	return c.URL != ""
}

type carrierRule struct {
	prefix  string
	carrier Carrier
	urlBase string
	token   func(string) string
}

// carrierRules are evaluated in order; the first matching prefix wins.
var carrierRules = []carrierRule{
	{
		prefix:  "1Z",
		carrier: CarrierUPS,
		urlBase: "https://www.ups.com/track?tracknum=",
		token:   untilSpace,
	},
	{
		prefix:  "78",
		carrier: CarrierFedEx,
		urlBase: "https://www.fedex.com/apps/fedextrack/?tracknumbers=",
		token:   func(s string) string { return s },
	},
}

// ResolveCarrier maps a tracking number to a carrier by prefix. This is a
// heuristic; no checksum is verified.
func ResolveCarrier(number string) CarrierLinkage {
	for _, r := range carrierRules {
		if strings.HasPrefix(number, r.prefix) {
			tok := r.token(number)
			return CarrierLinkage{
				Carrier:        r.carrier,
				TrackingNumber: number,
				Token:          tok,
				URL:            r.urlBase + url.QueryEscape(tok),
			}
		}
	}
	return CarrierLinkage{Carrier: CarrierUnknown, TrackingNumber: number}
}

func untilSpace(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}
