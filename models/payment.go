package models

import "time"

// Payment statuses.
const (
	PaymentPending   = "pending"
	PaymentSucceeded = "succeeded"
	PaymentFailed    = "failed"
)

// Payment records a checkout session created for a client. SessionID is the
// opaque identifier returned by the payment processor.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	ClientID      string    `bson:"clientId" json:"clientId"`
	AppointmentID string    `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	Amount        int64     `bson:"amount" json:"amount"`
	Currency      string    `bson:"currency" json:"currency"`
	Status        string    `bson:"status" json:"status"`
	SessionID     string    `bson:"sessionId" json:"sessionId"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// CheckoutSession is what the caller gets back from payment-session creation.
type CheckoutSession struct {
	SessionID   string `json:"sessionId"`
	RedirectURL string `json:"redirectUrl"`
}
