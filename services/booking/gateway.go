package booking

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// PaymentGateway is the external payment collaborator: it opens orders and
// signs confirmation callbacks. Implementations hold the gateway
// credentials; the rest of the service never sees the secret.
type PaymentGateway interface {
	// Configured reports whether gateway credentials are present.
	Configured() bool
	// KeyID returns the public key handle the client needs to drive the
	// gateway checkout UI.
	KeyID() string
	// CreateOrder opens a gateway order for the given amount in minor
	// currency units and returns the gateway order id.
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (string, error)
	// VerifySignature recomputes the expected callback signature for
	// (orderID, paymentID) and compares it to the provided one.
	VerifySignature(orderID, paymentID, signature string) bool
}

// ComputeSignature returns the hex HMAC-SHA256 of "orderID|paymentID"
// keyed with secret. This is the gateway's callback signature scheme; it
// is a pure function of its inputs.
func ComputeSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// SignatureMatches compares a provided signature against the expected one
// for (orderID, paymentID) in constant time.
func SignatureMatches(orderID, paymentID, signature, secret string) bool {
	expected := ComputeSignature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
