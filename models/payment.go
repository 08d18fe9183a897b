package models

// CreateOrderInput is the payload for opening a payment intent.
type CreateOrderInput struct {
	ProviderID string  `json:"providerId"`
	Date       string  `json:"date"`
	TimeSlot   string  `json:"timeSlot"`
	Amount     float64 `json:"amount"`
}

// OrderDetails is returned to the caller after a gateway order is opened.
// Amount is in minor currency units (paise).
type OrderDetails struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Key      string `json:"key"`
}

// VerifyPaymentInput carries the gateway callback payload plus the original
// booking parameters the client round-trips between the two phases.
type VerifyPaymentInput struct {
	RazorpayOrderID   string  `json:"razorpay_order_id"`
	RazorpayPaymentID string  `json:"razorpay_payment_id"`
	RazorpaySignature string  `json:"razorpay_signature"`
	ProviderID        string  `json:"providerId"`
	Date              string  `json:"date"`
	TimeSlot          string  `json:"timeSlot"`
	Amount            float64 `json:"amount"`
	Notes             string  `json:"notes,omitempty"`
}

// SlotAvailability pairs a catalog slot with its availability for a
// provider and date.
type SlotAvailability struct {
	Slot      string `json:"slot"`
	Available bool   `json:"available"`
}
