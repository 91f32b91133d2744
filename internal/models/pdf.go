package models

// ExtractPagesRequest represents a request to cut pages out of a remote PDF
type ExtractPagesRequest struct {
	PDFURL   string `json:"pdfUrl"`
	Pages    []int  `json:"pages"`
	Filename string `json:"filename,omitempty"`
}

// ExtractPagesResponse carries the extracted document as base64
type ExtractPagesResponse struct {
	Success        bool   `json:"success"`
	Filename       string `json:"filename"`
	PDFData        string `json:"pdfData"`
	ExtractedPages []int  `json:"extractedPages"`
	TotalPages     int    `json:"totalPages"`
}

// ErrorResponse is the JSON body of a failed relay call
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
