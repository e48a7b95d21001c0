package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cargoplus/collections_backend/internal/apperrors"
	"github.com/cargoplus/collections_backend/internal/core/domain"
	portssvc "github.com/cargoplus/collections_backend/internal/core/ports/services"
	"github.com/cargoplus/collections_backend/internal/dto"
	"github.com/cargoplus/collections_backend/internal/handlers"
	"github.com/cargoplus/collections_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) RecordPayment(ctx context.Context, collectorID string, req dto.RecordPaymentRequest, creatorUserID string) (*domain.Payment, error) {
	args := m.Called(ctx, collectorID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) ListUnclosedPayments(ctx context.Context, collectorID string) ([]domain.Payment, error) {
	args := m.Called(ctx, collectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock ClosureService ---
type MockClosureService struct {
	mock.Mock
}

func (m *MockClosureService) CreateClosure(ctx context.Context, collectorID string, req dto.CreateClosureRequest, creatorUserID string) (*domain.CashClosure, error) {
	args := m.Called(ctx, collectorID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashClosure), args.Error(1)
}
func (m *MockClosureService) GetClosureByID(ctx context.Context, collectorID string, closureID string) (*domain.CashClosure, error) {
	args := m.Called(ctx, collectorID, closureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashClosure), args.Error(1)
}
func (m *MockClosureService) ListClosures(ctx context.Context, collectorID string, limit int, nextToken string) ([]domain.CashClosure, string, error) {
	args := m.Called(ctx, collectorID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.CashClosure), args.String(1), args.Error(2)
}

var _ portssvc.ClosureSvcFacade = (*MockClosureService)(nil)

// --- Mock GuardService ---
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

var _ portssvc.GuardSvcFacade = (*MockGuardService)(nil)

// --- Mock BillLedgerService ---
type MockBillLedgerService struct {
	mock.Mock
}

func (m *MockBillLedgerService) GetBill(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}
func (m *MockBillLedgerService) ListOutstandingBills(ctx context.Context, collectorID string) ([]domain.Bill, error) {
	args := m.Called(ctx, collectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}
func (m *MockBillLedgerService) PostPayment(ctx context.Context, billID string, amount decimal.Decimal, method domain.PaymentMethod, details string) (*domain.Bill, error) {
	args := m.Called(ctx, billID, amount, method, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

var _ portssvc.BillLedgerSvcFacade = (*MockBillLedgerService)(nil)

// --- Test Suite ---
type ClosureHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPaymentService *MockPaymentService
	mockClosureService *MockClosureService
	mockGuardService   *MockGuardService
	mockBillLedger     *MockBillLedgerService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ClosureHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "collections-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ClosureHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockPaymentService = new(MockPaymentService)
	suite.mockClosureService = new(MockClosureService)
	suite.mockGuardService = new(MockGuardService)
	suite.mockBillLedger = new(MockBillLedgerService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // keep swagger out of the test router
	}
	services := &portssvc.ServiceContainer{
		Payment:    suite.mockPaymentService,
		Closure:    suite.mockClosureService,
		Guard:      suite.mockGuardService,
		BillLedger: suite.mockBillLedger,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *ClosureHandlerTestSuite) doJSON(method, url string, body any, userID string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ClosureHandlerTestSuite) TestGetGuardStatus_Locked() {
	collectorID := uuid.NewString()
	userID := uuid.NewString()
	required := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	suite.mockGuardService.On("CheckGuard", mock.Anything, collectorID).
		Return(&domain.GuardStatus{Allow: false, RequiredClosureDate: &required}, nil).Once()

	w := suite.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/collectors/%s/guard", collectorID), nil, userID)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.GuardStatusResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.False(body.Allow)
	suite.Equal("2024-01-01", body.RequiredClosureDate)

	suite.mockGuardService.AssertExpectations(suite.T())
}

func (suite *ClosureHandlerTestSuite) TestGetGuardStatus_Unauthorized() {
	w := suite.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/collectors/%s/guard", uuid.NewString()), nil, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockGuardService.AssertNotCalled(suite.T(), "CheckGuard", mock.Anything, mock.Anything)
}

func (suite *ClosureHandlerTestSuite) TestCreateClosure_Success() {
	collectorID := uuid.NewString()
	userID := uuid.NewString()
	paymentID := uuid.NewString()

	reqBody := dto.CreateClosureRequest{
		ClosureDate:   "2024-01-01",
		PaymentIDs:    []string{paymentID},
		CashBreakdown: domain.DenominationCount{"20": 2, "10": 1},
	}
	expected := &domain.CashClosure{
		ClosureID:         uuid.NewString(),
		CollectorID:       collectorID,
		ClosureDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:            domain.ClosureClosed,
		PaymentIDs:        []string{paymentID},
		TotalCash:         decimal.NewFromInt(50),
		GrandTotal:        decimal.NewFromInt(50),
		CashBreakdown:     reqBody.CashBreakdown,
		CashExpectedTotal: decimal.NewFromInt(50),
		CashCountedTotal:  decimal.NewFromInt(50),
	}

	suite.mockClosureService.On("CreateClosure", mock.Anything, collectorID, mock.MatchedBy(func(r dto.CreateClosureRequest) bool {
		return r.ClosureDate == "2024-01-01" && len(r.PaymentIDs) == 1
	}), userID).Return(expected, nil).Once()

	w := suite.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/collectors/%s/closures", collectorID), reqBody, userID)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.ClosureResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(expected.ClosureID, body.ClosureID)
	suite.Equal("2024-01-01", body.ClosureDate)
	suite.Equal(domain.ClosureClosed, body.Status)

	suite.mockClosureService.AssertExpectations(suite.T())
}

func (suite *ClosureHandlerTestSuite) TestCreateClosure_AlreadyClosedConflict() {
	collectorID := uuid.NewString()
	userID := uuid.NewString()

	reqBody := dto.CreateClosureRequest{
		ClosureDate: "2024-01-01",
		PaymentIDs:  []string{uuid.NewString()},
	}
	suite.mockClosureService.On("CreateClosure", mock.Anything, collectorID, mock.Anything, userID).
		Return(nil, fmt.Errorf("%w: payment x", apperrors.ErrPaymentAlreadyClosed)).Once()

	w := suite.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/collectors/%s/closures", collectorID), reqBody, userID)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ClosureHandlerTestSuite) TestRecordPayment_GuardLockedConflict() {
	collectorID := uuid.NewString()
	userID := uuid.NewString()
	required := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	reqBody := dto.RecordPaymentRequest{BillID: uuid.NewString(), Method: domain.MethodCash}
	suite.mockPaymentService.On("RecordPayment", mock.Anything, collectorID, mock.Anything, userID).
		Return(nil, apperrors.NewClosurePendingError(required)).Once()

	w := suite.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/collectors/%s/payments", collectorID), reqBody, userID)

	suite.Equal(http.StatusConflict, w.Code)

	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("2024-01-01", body["requiredClosureDate"])
}

func (suite *ClosureHandlerTestSuite) TestRecordPayment_Created() {
	collectorID := uuid.NewString()
	userID := uuid.NewString()
	billID := uuid.NewString()

	reqBody := dto.RecordPaymentRequest{BillID: billID, Method: domain.MethodCard}
	expected := &domain.Payment{
		PaymentID:   uuid.NewString(),
		BillID:      billID,
		CollectorID: collectorID,
		Amount:      decimal.RequireFromString("120.00"),
		Method:      domain.MethodCard,
		PaymentDate: time.Now().UTC(),
	}
	suite.mockPaymentService.On("RecordPayment", mock.Anything, collectorID, mock.Anything, userID).
		Return(expected, nil).Once()

	w := suite.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/collectors/%s/payments", collectorID), reqBody, userID)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(expected.PaymentID, body.PaymentID)
	suite.Nil(body.ClosureID)
}

func (suite *ClosureHandlerTestSuite) TestListUnclosedPayments_Success() {
	collectorID := uuid.NewString()
	userID := uuid.NewString()

	expected := []domain.Payment{
		{PaymentID: uuid.NewString(), CollectorID: collectorID, Amount: decimal.NewFromInt(10), Method: domain.MethodCash},
	}
	suite.mockPaymentService.On("ListUnclosedPayments", mock.Anything, collectorID).Return(expected, nil).Once()

	w := suite.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/collectors/%s/payments/unclosed", collectorID), nil, userID)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ListPaymentsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Payments, 1)
	suite.Equal(expected[0].PaymentID, body.Payments[0].PaymentID)
}

func (suite *ClosureHandlerTestSuite) TestListClosures_PassesPagination() {
	collectorID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockClosureService.On("ListClosures", mock.Anything, collectorID, 5, "tok123").
		Return([]domain.CashClosure{}, "", nil).Once()

	w := suite.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/collectors/%s/closures?limit=5&nextToken=tok123", collectorID), nil, userID)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockClosureService.AssertExpectations(suite.T())
}

func (suite *ClosureHandlerTestSuite) TestGetClosure_NotFound() {
	collectorID := uuid.NewString()
	closureID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockClosureService.On("GetClosureByID", mock.Anything, collectorID, closureID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/collectors/%s/closures/%s", collectorID, closureID), nil, userID)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Run Test Suite ---

func TestClosureHandler(t *testing.T) {
	suite.Run(t, new(ClosureHandlerTestSuite))
}
