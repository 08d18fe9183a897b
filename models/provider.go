package models

import "time"

// Provider approval lifecycle statuses.
const (
	ProviderStatusPending  = "pending"
	ProviderStatusApproved = "approved"
	ProviderStatusRejected = "rejected"
)

// Provider represents a service provider profile. Only approved providers
// can be queried for availability or booked.
type Provider struct {
	ID           string    `bson:"id" json:"id"`
	ServiceName  string    `bson:"service_name" json:"serviceName"`
	OwnerName    string    `bson:"owner_name" json:"ownerName"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	Pricing      string    `bson:"pricing,omitempty" json:"pricing,omitempty"` // free text, e.g. "₹500 per hour"
	ProfilePhoto string    `bson:"profile_photo,omitempty" json:"profilePhoto,omitempty"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsApproved reports whether the provider may take bookings.
func (p *Provider) IsApproved() bool {
	return p.Status == ProviderStatusApproved
}
