package services_test

import (
	"context"
	"time"

	"github.com/cargoplus/collections_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockPaymentRepository is a mock type for the PaymentRepositoryWithTx interface
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindUnclosedPaymentsByCollector(ctx context.Context, collectorID string) ([]domain.Payment, error) {
	args := m.Called(ctx, collectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentDatesByCollector(ctx context.Context, collectorID string) ([]time.Time, error) {
	args := m.Called(ctx, collectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByClosure(ctx context.Context, closureID string) ([]domain.Payment, error) {
	args := m.Called(ctx, closureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) ClaimPaymentInTx(ctx context.Context, tx pgx.Tx, paymentID string, closureID string) error {
	args := m.Called(ctx, tx, paymentID, closureID)
	return args.Error(0)
}

func (m *MockPaymentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockPaymentRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPaymentRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockClosureRepository is a mock type for the ClosureRepositoryWithTx interface
type MockClosureRepository struct {
	mock.Mock
}

func (m *MockClosureRepository) FindClosureByID(ctx context.Context, closureID string) (*domain.CashClosure, error) {
	args := m.Called(ctx, closureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashClosure), args.Error(1)
}

func (m *MockClosureRepository) ListClosuresByCollector(ctx context.Context, collectorID string, limit int, nextToken string) ([]domain.CashClosure, string, error) {
	args := m.Called(ctx, collectorID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.CashClosure), args.String(1), args.Error(2)
}

func (m *MockClosureRepository) ListClosedDatesByCollector(ctx context.Context, collectorID string) ([]time.Time, error) {
	args := m.Called(ctx, collectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockClosureRepository) SaveClosureInTx(ctx context.Context, tx pgx.Tx, closure domain.CashClosure) error {
	args := m.Called(ctx, tx, closure)
	return args.Error(0)
}

func (m *MockClosureRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockClosureRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockClosureRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockBillLedger is a mock type for the BillLedgerSvcFacade interface
type MockBillLedger struct {
	mock.Mock
}

func (m *MockBillLedger) GetBill(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillLedger) ListOutstandingBills(ctx context.Context, collectorID string) ([]domain.Bill, error) {
	args := m.Called(ctx, collectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillLedger) PostPayment(ctx context.Context, billID string, amount decimal.Decimal, method domain.PaymentMethod, details string) (*domain.Bill, error) {
	args := m.Called(ctx, billID, amount, method, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

// MockGuardService is a mock type for the GuardSvcFacade interface
type MockGuardService struct {
	mock.Mock
}

func (m *MockGuardService) CheckGuard(ctx context.Context, collectorID string) (*domain.GuardStatus, error) {
	args := m.Called(ctx, collectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuardStatus), args.Error(1)
}

// MockGuardCache is a mock type for the cache.GuardStatusCache interface
type MockGuardCache struct {
	mock.Mock
}

func (m *MockGuardCache) Get(ctx context.Context, collectorID string) (*domain.GuardStatus, bool, error) {
	args := m.Called(ctx, collectorID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.GuardStatus), args.Bool(1), args.Error(2)
}

func (m *MockGuardCache) Set(ctx context.Context, collectorID string, status *domain.GuardStatus, ttl time.Duration) error {
	args := m.Called(ctx, collectorID, status, ttl)
	return args.Error(0)
}

func (m *MockGuardCache) Invalidate(ctx context.Context, collectorID string) error {
	args := m.Called(ctx, collectorID)
	return args.Error(0)
}
