package payment

import (
	paymentRepo "counselhub/database/repository/payment"
	"counselhub/models"
	"counselhub/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// PaymentService creates checkout sessions with the payment processor and
// records them. Capture and webhooks are out of scope; the session is handed
// to the caller as an opaque id plus redirect URL.
type PaymentService interface {
	CreateCheckoutSession(clientID, appointmentID string, amount int64, currency string) (*models.CheckoutSession, error)
	ListForClient(clientID string) ([]models.Payment, error)
}

// DefaultPaymentService is the production implementation backed by Stripe
// Checkout. SuccessURL and CancelURL come from deployment configuration.
type DefaultPaymentService struct {
	Payments   paymentRepo.PaymentRepository
	SuccessURL string
	CancelURL  string
}

// CreateCheckoutSession creates a one-time card payment session. Amount is in
// the smallest currency unit.
func (s *DefaultPaymentService) CreateCheckoutSession(clientID, appointmentID string, amount int64, currency string) (*models.CheckoutSession, error) {
	if amount <= 0 {
		return nil, utils.NewAppError(utils.CodeValidation, "amount must be a positive number")
	}
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Counseling Session"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.SuccessURL),
		CancelURL:  stripe.String(s.CancelURL),
	}

	sess, err := session.New(params)
	if err != nil {
		utils.GetLogger().Error("CreateCheckoutSession: stripe call failed", zap.Error(err))
		return nil, utils.NewAppError(utils.CodeStorage, "failed to create checkout session")
	}

	record := &models.Payment{
		ID:            uuid.New().String(),
		ClientID:      clientID,
		AppointmentID: appointmentID,
		Amount:        amount,
		Currency:      currency,
		Status:        models.PaymentPending,
		SessionID:     sess.ID,
	}
	if err := s.Payments.Create(record); err != nil {
		// The processor session exists; losing the local record is logged,
		// the caller still gets the redirect.
		utils.GetLogger().Error("CreateCheckoutSession: failed to persist payment record", zap.Error(err))
	}

	return &models.CheckoutSession{SessionID: sess.ID, RedirectURL: sess.URL}, nil
}

// ListForClient returns the client's payment records.
func (s *DefaultPaymentService) ListForClient(clientID string) ([]models.Payment, error) {
	payments, err := s.Payments.ListByClient(clientID)
	if err != nil {
		utils.GetLogger().Error("ListForClient: query failed", zap.Error(err))
		return nil, utils.NewAppError(utils.CodeStorage, "operation failed, please try again")
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return payments, nil
}
