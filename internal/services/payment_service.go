// internal/services/payment_service.go
package services

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
	"gorm.io/gorm"

	"github.com/bicyclezen/bicyclezen-backend/internal/config"
	"github.com/bicyclezen/bicyclezen-backend/internal/models"
)

type PaymentService struct {
	db     *gorm.DB
	config *config.Config

	// createIntent is swapped for a stub in tests.
	createIntent func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

func NewPaymentService(db *gorm.DB, cfg *config.Config) *PaymentService {
	// Initialize Stripe
	stripe.Key = cfg.Payment.StripeSecretKey

	return &PaymentService{
		db:           db,
		config:       cfg,
		createIntent: paymentintent.New,
	}
}

// CreatePaymentIntent converts the price to minor units, requests a
// card-payable intent and hands the client secret back verbatim. Rounding
// guards against float prices like 0.29 landing a cent short.
func (s *PaymentService) CreatePaymentIntent(price float64) (string, error) {
	amountInCents := int64(math.Round(price * 100))

	currency := s.config.Payment.Currency
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountInCents),
		Currency: stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}

	pi, err := s.createIntent(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return pi.ClientSecret, nil
}

// ConfirmOrderPayment records the payment, then marks the order paid. The two
// writes are sequential and not wrapped in a transaction; a crash in between
// can leave a payment row without a paid order. Returns nil when the order id
// is unknown (the payment row is still kept, matching the legacy behavior).
func (s *PaymentService) ConfirmOrderPayment(orderID uuid.UUID, payment *models.Payment) (*models.Order, error) {
	if err := s.db.Create(payment).Error; err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	result := s.db.Model(&models.Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
		"paid":           true,
		"transaction_id": payment.TransactionID,
	})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return &order, nil
}
