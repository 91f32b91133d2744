package viewmodel

import (
	"encoding/json"
	"testing"

	"github.com/ashendes/order-sidebar/internal/models"
	"github.com/stretchr/testify/require"
)

const sampleOrderJSON = `{
  "order_id": 48213,
  "job_name": "Spring Retreat",
  "item_amount": "1520.5",
  "order_status": 3,
  "customer_id": "C-991",
  "created_by": {"firstname": "Dana"},
  "billing_details": {"company": "Acme Co", "firstname": "Lee", "city": "Bethesda"},
  "shipping_details": {"firstname": "Lee", "street": "1 Main St", "ph_number": "555-0100"},
  "shipping_method": {"name": "Ground"},
  "notes": [
    {"note_type": "Art", "content": "Mockups: https://drive.google.com/drive/folders/abc see attached"},
    {"note_type": "Misc", "content": "https://docs.google.com/document/d/xyz"}
  ],
  "shipments": [
    {"tracking_number": "1Z999AA10123456784 (2 boxes)"},
    {"tracking_number": "781234567890"},
    {"tracking_number": "ABC123"}
  ],
  "order_lines": [
    {
      "id": "101", "product_name": "Tee", "product_code": "G500", "qty": 30, "unit_price": 4.25,
      "product_color": {"name": "Navy"}, "item_type": 1,
      "fields": [{"options": [{"code": "M", "name": "Medium", "qty": 10, "sku": "G500-NV-M"}, {"code": "L", "name": "Large", "qty": 20}]}],
      "production_assigned_to": [{"firstname": "Sam"}]
    },
    {
      "id": "102", "product_name": "Custom Mug", "qty": "12", "unit_price": "9.00",
      "product_freeform_color": "Matte Black", "product_description": "1 color logo", "item_type": 25,
      "attachment_urls": [{"image_url": "https://img.example/1.png"}, {"image_url": "https://img.example/2.png"}]
    },
    {"id": 103, "product_name": "Setup Fee", "qty": 1, "unit_price": 50, "item_type": 12}
  ],
  "production_pdf_url": "https://www.crookedmonkey.com/download_worksheet/77123?key=z"
}`

func sampleOrder(t *testing.T) models.Order {
	t.Helper()
	var o models.Order
	require.NoError(t, json.Unmarshal([]byte(sampleOrderJSON), &o))
	return o
}
