// internal/services/payment_service_test.go
package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bicyclezen/bicyclezen-backend/internal/config"
	"github.com/bicyclezen/bicyclezen-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.Payment{}))
	return db
}

func newTestPaymentService(t *testing.T, createIntent func(*stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)) *PaymentService {
	t.Helper()

	return &PaymentService{
		db:           newTestDB(t),
		config:       &config.Config{Payment: config.PaymentConfig{Currency: "usd"}},
		createIntent: createIntent,
	}
}

func TestCreatePaymentIntent_ConvertsToMinorUnits(t *testing.T) {
	var captured *stripe.PaymentIntentParams
	svc := newTestPaymentService(t, func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		captured = params
		return &stripe.PaymentIntent{ClientSecret: "cs_test_123"}, nil
	})

	secret, err := svc.CreatePaymentIntent(49.99)
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", secret)

	require.NotNil(t, captured)
	assert.Equal(t, int64(4999), *captured.Amount)
	assert.Equal(t, "usd", *captured.Currency)
	require.Len(t, captured.PaymentMethodTypes, 1)
	assert.Equal(t, "card", *captured.PaymentMethodTypes[0])
}

func TestCreatePaymentIntent_RoundsMinorUnits(t *testing.T) {
	var captured *stripe.PaymentIntentParams
	svc := newTestPaymentService(t, func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		captured = params
		return &stripe.PaymentIntent{ClientSecret: "cs_test_456"}, nil
	})

	// 0.29 has no exact binary representation; a bare truncation would
	// charge 28 cents.
	_, err := svc.CreatePaymentIntent(0.29)
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, int64(29), *captured.Amount)
}

func TestConfirmOrderPayment_TwoWrites(t *testing.T) {
	svc := newTestPaymentService(t, nil)

	order := models.Order{Email: "alice@x.com", Price: 120}
	require.NoError(t, svc.db.Create(&order).Error)

	payment := models.Payment{
		OrderID:       order.ID,
		Email:         "alice@x.com",
		Amount:        120,
		TransactionID: "txn_1",
	}

	updated, err := svc.ConfirmOrderPayment(order.ID, &payment)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.Paid)
	assert.Equal(t, "txn_1", updated.TransactionID)

	var count int64
	require.NoError(t, svc.db.Model(&models.Payment{}).Where("order_id = ?", order.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestConfirmOrderPayment_UnknownOrderKeepsPayment(t *testing.T) {
	svc := newTestPaymentService(t, nil)

	missing := uuid.New()
	payment := models.Payment{OrderID: missing, TransactionID: "txn_orphan"}

	updated, err := svc.ConfirmOrderPayment(missing, &payment)
	require.NoError(t, err)
	assert.Nil(t, updated)

	// The payment write lands even though no order was matched; the two
	// writes are independent.
	var count int64
	require.NoError(t, svc.db.Model(&models.Payment{}).Where("transaction_id = ?", "txn_orphan").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
