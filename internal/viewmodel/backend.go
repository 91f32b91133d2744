package viewmodel

import (
	"net/url"
	"regexp"

	"github.com/ashendes/order-sidebar/internal/models"
)

// BackendOrdersURL is the admin page that shows a single order by its backend id
const BackendOrdersURL = "https://www.crookedmonkey.com/bh/orders"

var backendIDRx = regexp.MustCompile(`/download_(?:quote|worksheet|order_proof)/(\d+)(?:\?|$)`)

// ExtractBackendID returns the numeric backend id embedded in the first
// matching PDF URL, checking quote, production and proof URLs in that order.
func ExtractBackendID(o models.Order) (string, bool) {
	for _, u := range o.PDFURLs() {
		if m := backendIDRx.FindStringSubmatch(u); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// BackendOrderURL builds the admin deep link for a backend id
func BackendOrderURL(id string) string {
	return BackendOrdersURL + "?p=2&id=" + url.QueryEscape(id)
}
