package models

// OrderStatus constants as reported in order_status
const (
	OrderStatusReadyForProduction = 1
	OrderStatusReadyForShipping   = 2
	OrderStatusShipped            = 3
	OrderStatusCancelled          = 4
	OrderStatusDeleted            = 6
	OrderStatusOnHold             = 7
	OrderStatusAwaitingPO         = 8
	OrderStatusAwaitingStock      = 9
	OrderStatusAwaitingArtwork    = 10
)

var statusLabels = map[int]string{
	OrderStatusReadyForProduction: "Ready for Production",
	OrderStatusReadyForShipping:   "Ready for Shipping",
	OrderStatusShipped:            "Shipped",
	OrderStatusCancelled:          "Cancelled",
	OrderStatusDeleted:            "Deleted",
	OrderStatusOnHold:             "Not Approved / On Hold",
	OrderStatusAwaitingPO:         "Awaiting Purchase Order",
	OrderStatusAwaitingStock:      "Items Ordered Awaiting Stock",
	OrderStatusAwaitingArtwork:    "Awaiting Artwork",
}

var statusColors = map[int]string{
	OrderStatusReadyForProduction: "#ffd700",
	OrderStatusReadyForShipping:   "#87ceeb",
	OrderStatusShipped:            "#32cd32",
	OrderStatusCancelled:          "#ff4500",
	OrderStatusDeleted:            "#808080",
	OrderStatusOnHold:             "#ff69b4",
	OrderStatusAwaitingPO:         "#00bfff",
	OrderStatusAwaitingStock:      "#ffa500",
	OrderStatusAwaitingArtwork:    "#6a5acd",
}

// StatusLabel returns the display label for a status code
func StatusLabel(status int) string {
	if s, ok := statusLabels[status]; ok {
		return s
	}
	return "Unknown Status"
}

// StatusColor returns the badge color for a status code
func StatusColor(status int) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return "#000"
}
