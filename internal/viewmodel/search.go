package viewmodel

import "net/url"

const (
	distributorCentralSearch = "https://www.distributorcentral.com/product/search.cfm?query="
	googleSearch             = "https://www.google.com/search?q="
)

// ProductSearch holds the external search URLs for one product
type ProductSearch struct {
	DistributorCentral string `json:"distributor_central"`
	Google             string `json:"google"`
}

// ProductSearchURLs builds catalog and web search URLs for a product
func ProductSearchURLs(name, code string) ProductSearch {
	dc, g := name, name
	if code != "" {
		dc = code + " - " + name
		g = code + " " + name
	}
	return ProductSearch{
		DistributorCentral: distributorCentralSearch + url.QueryEscape(dc),
		Google:             googleSearch + url.QueryEscape(g),
	}
}
