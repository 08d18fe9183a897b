package booking

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayGateway implements PaymentGateway against the Razorpay API.
type RazorpayGateway struct {
	keyID     string
	keySecret string
	client    *razorpay.Client
}

// NewRazorpayGateway constructs a gateway from credentials. Empty
// credentials yield an unconfigured gateway; payment operations will be
// refused with ServiceUnavailable.
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	g := &RazorpayGateway{keyID: keyID, keySecret: keySecret}
	if g.Configured() {
		g.client = razorpay.NewClient(keyID, keySecret)
	}
	return g
}

func (g *RazorpayGateway) Configured() bool {
	return g.keyID != "" && g.keySecret != ""
}

func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}

// CreateOrder opens a Razorpay order and returns its id.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (string, error) {
	if !g.Configured() {
		return "", fmt.Errorf("razorpay gateway not configured")
	}

	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}
	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create razorpay order: %w", err)
	}

	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("razorpay order response missing id")
	}
	return orderID, nil
}

// VerifySignature checks the callback signature against the key secret.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	if !g.Configured() {
		return false
	}
	return SignatureMatches(orderID, paymentID, signature, g.keySecret)
}
