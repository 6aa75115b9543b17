package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockReportingService backs the reporting handler tests.
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Ledger(ctx context.Context, categoryAccountID string, from, to *time.Time) (*domain.LedgerReport, error) {
	args := m.Called(ctx, categoryAccountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerReport), args.Error(1)
}

func (m *MockReportingService) TrialBalance(ctx context.Context, projectID *string, from, to time.Time) (*domain.TrialBalanceReport, error) {
	args := m.Called(ctx, projectID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalanceReport), args.Error(1)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context, asOn time.Time) (*domain.BalanceSheetReport, error) {
	args := m.Called(ctx, asOn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetReport), args.Error(1)
}

func (m *MockReportingService) ProfitAndLoss(ctx context.Context, projectID *string, from, to time.Time) (*domain.ProfitLossReport, error) {
	args := m.Called(ctx, projectID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitLossReport), args.Error(1)
}

func (m *MockReportingService) CashBook(ctx context.Context, projectID *string, from, to *time.Time) (*domain.CashBookReport, error) {
	args := m.Called(ctx, projectID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBookReport), args.Error(1)
}

func (m *MockReportingService) BankBook(ctx context.Context, projectID *string, from, to *time.Time) (*domain.BankBookReport, error) {
	args := m.Called(ctx, projectID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankBookReport), args.Error(1)
}

type ReportingHandlerTestSuite struct {
	suite.Suite
	service *MockReportingService
	router  *gin.Engine
}

func (s *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.service = new(MockReportingService)
	s.router = gin.New()
	registerReportingRoutes(s.router.Group("/api/v1"), s.service)
}

func TestReportingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}

func (s *ReportingHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ReportingHandlerTestSuite) TestTrialBalanceRequiresFromDate() {
	w := s.get("/api/v1/reports/trial-balance?toDate=2026-06-30")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "fromDate")
	s.service.AssertNotCalled(s.T(), "TrialBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReportingHandlerTestSuite) TestTrialBalanceRequiresToDate() {
	w := s.get("/api/v1/reports/trial-balance?fromDate=2026-04-01")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "toDate")
	s.service.AssertNotCalled(s.T(), "TrialBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReportingHandlerTestSuite) TestTrialBalanceWithWindow() {
	from := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)
	s.service.On("TrialBalance", mock.Anything, (*string)(nil), from, to).
		Return(&domain.TrialBalanceReport{FromDate: from, ToDate: to, IsBalanced: true}, nil)

	w := s.get("/api/v1/reports/trial-balance?fromDate=2026-04-01&toDate=2026-06-30")

	s.Equal(http.StatusOK, w.Code)
	s.service.AssertExpectations(s.T())
}

func (s *ReportingHandlerTestSuite) TestProfitAndLossRequiresWindow() {
	w := s.get("/api/v1/reports/profit-and-loss")

	s.Equal(http.StatusBadRequest, w.Code)
	s.service.AssertNotCalled(s.T(), "ProfitAndLoss", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReportingHandlerTestSuite) TestProfitAndLossWithWindow() {
	from := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)
	s.service.On("ProfitAndLoss", mock.Anything, (*string)(nil), from, to).
		Return(&domain.ProfitLossReport{FromDate: from, ToDate: to}, nil)

	w := s.get("/api/v1/reports/profit-and-loss?fromDate=2026-04-01&toDate=2026-06-30")

	s.Equal(http.StatusOK, w.Code)
	s.service.AssertExpectations(s.T())
}

func (s *ReportingHandlerTestSuite) TestProfitAndLossRejectsBadDate() {
	w := s.get("/api/v1/reports/profit-and-loss?fromDate=01-04-2026&toDate=2026-06-30")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "fromDate")
}

func (s *ReportingHandlerTestSuite) TestLedgerDatesStayOptional() {
	s.service.On("Ledger", mock.Anything, "sales-1", (*time.Time)(nil), (*time.Time)(nil)).
		Return(&domain.LedgerReport{AccountID: "sales-1"}, nil)

	w := s.get("/api/v1/reports/ledger?accountID=sales-1")

	s.Equal(http.StatusOK, w.Code)
	s.service.AssertExpectations(s.T())
}
