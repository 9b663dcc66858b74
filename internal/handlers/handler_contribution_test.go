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

	"github.com/computeralex/seventh-traditioner/internal/apperrors"
	"github.com/computeralex/seventh-traditioner/internal/core/domain"
	portssvc "github.com/computeralex/seventh-traditioner/internal/core/ports/services"
	"github.com/computeralex/seventh-traditioner/internal/core/services"
	"github.com/computeralex/seventh-traditioner/internal/dto"
	"github.com/computeralex/seventh-traditioner/internal/handlers"
	"github.com/computeralex/seventh-traditioner/internal/platform/config"
	"github.com/computeralex/seventh-traditioner/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock ContributionSvcFacade ---
type MockContributionSvc struct {
	mock.Mock
}

var _ portssvc.ContributionSvcFacade = (*MockContributionSvc)(nil)

func (m *MockContributionSvc) SaveContribution(ctx context.Context, req dto.SaveContributionRequest, meta portssvc.SubmissionMeta) (*domain.Contribution, error) {
	args := m.Called(ctx, req, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contribution), args.Error(1)
}

func (m *MockContributionSvc) GetContributionByID(ctx context.Context, id int64) (*domain.Contribution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contribution), args.Error(1)
}

func (m *MockContributionSvc) ListContributions(ctx context.Context, params dto.ListContributionsParams) (*dto.ListContributionsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListContributionsResponse), args.Error(1)
}

func (m *MockContributionSvc) ClearAllContributions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ReceiptSvcFacade ---
type MockReceiptSvc struct {
	mock.Mock
}

var _ portssvc.ReceiptSvcFacade = (*MockReceiptSvc)(nil)

func (m *MockReceiptSvc) SendReceipt(ctx context.Context, contribution *domain.Contribution) error {
	args := m.Called(ctx, contribution)
	return args.Error(0)
}

func (m *MockReceiptSvc) SendTestReceipt(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// --- Stubs for facades the routes under test never exercise ---
type stubRateSvc struct{}

func (stubRateSvc) GetRate(ctx context.Context, currencyCode string) (decimal.Decimal, error) {
	return decimal.NewFromInt(1), nil
}

type stubMeetingSvc struct{}

func (stubMeetingSvc) ListMeetingsByDay(ctx context.Context, day int) ([]domain.Meeting, error) {
	return nil, nil
}
func (stubMeetingSvc) ListGroups(ctx context.Context) ([]domain.Group, error) { return nil, nil }
func (stubMeetingSvc) GroupNameByID(ctx context.Context, groupID int64) (string, error) {
	return "", nil
}

type stubPayPalSvc struct{}

func (stubPayPalSvc) CreateOrder(ctx context.Context, req dto.CreatePayPalOrderRequest) (*dto.PayPalOrderResponse, error) {
	return nil, fmt.Errorf("not configured")
}
func (stubPayPalSvc) CaptureOrder(ctx context.Context, orderID string) (*dto.PayPalCaptureResponse, error) {
	return nil, fmt.Errorf("not configured")
}
func (stubPayPalSvc) GetOrder(ctx context.Context, orderID string) (*dto.PayPalOrderResponse, error) {
	return nil, fmt.Errorf("not configured")
}

// --- Test Suite Setup ---
type ContributionHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	contributionSvc *MockContributionSvc
	receiptSvc      *MockReceiptSvc
	cfg             *config.Config
}

func (suite *ContributionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.contributionSvc = new(MockContributionSvc)
	suite.receiptSvc = new(MockReceiptSvc)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
		FormTokenSecret:   "form-secret",
		FormTokenTTL:      time.Hour,
		ServiceBodyName:   "Test Fellowship",
		DefaultCurrency:   "USD",
		PublicRateLimit:   "1000-M",
		IsProduction:      true, // keeps swagger out of the test router
	}

	container := &portssvc.ServiceContainer{
		Contribution: suite.contributionSvc,
		Currency:     services.NewCurrencyService(nil),
		ExchangeRate: stubRateSvc{},
		Meeting:      stubMeetingSvc{},
		Receipt:      suite.receiptSvc,
		PayPal:       stubPayPalSvc{},
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, container)
}

func (suite *ContributionHandlerTestSuite) adminToken() string {
	token, err := utils.GenerateJWT("admin", suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	require.NoError(suite.T(), err)
	return token
}

func (suite *ContributionHandlerTestSuite) postJSON(path string, body interface{}, token string) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	require.NoError(suite.T(), err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ContributionHandlerTestSuite) TestSaveContributionSuccess() {
	saved := &domain.Contribution{
		ID:            42,
		TransactionID: "TXN-1",
		MemberName:    "Alice B",
		MemberEmail:   "alice@example.org",
		Amount:        decimal.NewFromInt(25),
		Currency:      "USD",
	}
	suite.contributionSvc.On("SaveContribution", mock.Anything, mock.AnythingOfType("dto.SaveContributionRequest"), mock.AnythingOfType("services.SubmissionMeta")).Return(saved, nil).Once()

	w := suite.postJSON("/api/v1/contributions", map[string]string{
		"transactionID": "TXN-1",
		"memberName":    "Alice B",
		"memberEmail":   "alice@example.org",
		"amount":        "25",
		"currency":      "USD",
	}, "")

	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	var resp dto.SaveContributionResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), int64(42), resp.ContributionID)
	assert.Contains(suite.T(), resp.Message, "Thank you")
}

func (suite *ContributionHandlerTestSuite) TestSaveContributionValidationFailure() {
	suite.contributionSvc.On("SaveContribution", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: Please provide your name.", apperrors.ErrValidation)).Once()

	w := suite.postJSON("/api/v1/contributions", map[string]string{"memberName": "A"}, "")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "name")
}

func (suite *ContributionHandlerTestSuite) TestSaveContributionDuplicate() {
	suite.contributionSvc.On("SaveContribution", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: already processed", apperrors.ErrDuplicate)).Once()

	w := suite.postJSON("/api/v1/contributions", map[string]string{"transactionID": "TXN-1"}, "")
	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *ContributionHandlerTestSuite) TestAdminRejectsFormToken() {
	// Even signed with the admin secret, the anonymous form subject must
	// never clear admin auth.
	token, err := utils.GenerateFormToken(suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	require.NoError(suite.T(), err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/contributions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code, w.Body.String())
	suite.contributionSvc.AssertNotCalled(suite.T(), "ListContributions", mock.Anything, mock.Anything)
}

func (suite *ContributionHandlerTestSuite) TestLoginServedUnderPublicAPI() {
	w := suite.postJSON("/api/v1/auth/login", dto.LoginRequest{Username: "admin", Password: "nope"}, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code, w.Body.String())
}

func (suite *ContributionHandlerTestSuite) TestAdminListRequiresAuth() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/contributions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *ContributionHandlerTestSuite) TestAdminListWithToken() {
	resp := &dto.ListContributionsResponse{
		Contributions: []dto.ContributionResponse{},
		TotalCount:    0,
		TotalPages:    0,
		Page:          1,
		PerPage:       20,
		TotalAmounts:  map[string]decimal.Decimal{},
	}
	suite.contributionSvc.On("ListContributions", mock.Anything, mock.AnythingOfType("dto.ListContributionsParams")).Return(resp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/contributions?sort_by=amount&sort_order=desc", nil)
	req.Header.Set("Authorization", "Bearer "+suite.adminToken())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())
}

func (suite *ContributionHandlerTestSuite) TestClearAllNeedsTypedConfirmation() {
	payload, _ := json.Marshal(dto.ClearContributionsRequest{Confirm: "yes please"})
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/contributions", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.adminToken())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	suite.contributionSvc.AssertNotCalled(suite.T(), "ClearAllContributions", mock.Anything)
}

func (suite *ContributionHandlerTestSuite) TestClearAllWithConfirmation() {
	suite.contributionSvc.On("ClearAllContributions", mock.Anything).Return(int64(17), nil).Once()

	payload, _ := json.Marshal(dto.ClearContributionsRequest{Confirm: "DELETE"})
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/contributions", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.adminToken())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())
	var resp dto.ClearContributionsResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), int64(17), resp.Deleted)
}

func TestContributionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ContributionHandlerTestSuite))
}
