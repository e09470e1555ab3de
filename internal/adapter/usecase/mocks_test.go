package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/YepperAds/yepper-backend-sub001/internal/core/domain"
	"github.com/YepperAds/yepper-backend-sub001/internal/core/port"
)

// mockLedgerRepository is a testify double for port.LedgerRepository.
type mockLedgerRepository struct {
	mock.Mock
}

func (m *mockLedgerRepository) GetPlacement(ctx context.Context, adID, websiteID int64) (*domain.Placement, error) {
	args := m.Called(ctx, adID, websiteID)
	p, _ := args.Get(0).(*domain.Placement)
	return p, args.Error(1)
}

func (m *mockLedgerRepository) GetPlacementCategories(ctx context.Context, placementID int64) ([]domain.Category, error) {
	args := m.Called(ctx, placementID)
	cats, _ := args.Get(0).([]domain.Category)
	return cats, args.Error(1)
}

func (m *mockLedgerRepository) ApprovePlacement(ctx context.Context, adID, websiteID int64) error {
	return m.Called(ctx, adID, websiteID).Error(0)
}

func (m *mockLedgerRepository) CreatePayment(ctx context.Context, p *domain.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockLedgerRepository) DeletePayment(ctx context.Context, txRef string) error {
	return m.Called(ctx, txRef).Error(0)
}

func (m *mockLedgerRepository) GetPaymentByTxRef(ctx context.Context, txRef string) (*domain.Payment, error) {
	args := m.Called(ctx, txRef)
	p, _ := args.Get(0).(*domain.Payment)
	return p, args.Error(1)
}

func (m *mockLedgerRepository) MarkPaymentFailed(ctx context.Context, txRef, providerTxnID string) error {
	return m.Called(ctx, txRef, providerTxnID).Error(0)
}

func (m *mockLedgerRepository) Settle(ctx context.Context, params port.SettleParams) error {
	return m.Called(ctx, params).Error(0)
}

func (m *mockLedgerRepository) GetBalance(ctx context.Context, ownerID int64) (*domain.Balance, error) {
	args := m.Called(ctx, ownerID)
	b, _ := args.Get(0).(*domain.Balance)
	return b, args.Error(1)
}

func (m *mockLedgerRepository) ListTrackers(ctx context.Context, ownerID int64) ([]domain.Tracker, error) {
	args := m.Called(ctx, ownerID)
	trackers, _ := args.Get(0).([]domain.Tracker)
	return trackers, args.Error(1)
}

func (m *mockLedgerRepository) RecordView(ctx context.Context, trackerID int64) (*domain.Tracker, error) {
	args := m.Called(ctx, trackerID)
	t, _ := args.Get(0).(*domain.Tracker)
	return t, args.Error(1)
}

// mockPaymentGateway is a testify double for port.PaymentGateway.
type mockPaymentGateway struct {
	mock.Mock
}

func (m *mockPaymentGateway) CreateCheckout(ctx context.Context, req port.CheckoutRequest) (*port.Checkout, error) {
	args := m.Called(ctx, req)
	c, _ := args.Get(0).(*port.Checkout)
	return c, args.Error(1)
}

func (m *mockPaymentGateway) Verify(ctx context.Context, transactionID string) (*port.Verification, error) {
	args := m.Called(ctx, transactionID)
	v, _ := args.Get(0).(*port.Verification)
	return v, args.Error(1)
}
