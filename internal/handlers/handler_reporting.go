package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/bizbooks/bizbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/ledger", h.getLedger)
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/cash-book", h.getCashBook)
		reportingGroup.GET("/bank-book", h.getBankBook)
	}
}

// parseOptionalDate parses a YYYY-MM-DD query value, nil when absent.
func parseOptionalDate(c *gin.Context, name string) (*time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		return nil, true
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format. Use YYYY-MM-DD"})
		return nil, false
	}
	return &parsed, true
}

// requireDate parses a mandatory YYYY-MM-DD query value. Trial balance and
// profit & loss windows are never defaulted.
func requireDate(c *gin.Context, name string) (time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " query parameter is required"})
		return time.Time{}, false
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return parsed, true
}

// optionalProjectID returns the projectID query value, nil when absent.
func optionalProjectID(c *gin.Context) *string {
	if value := c.Query("projectID"); value != "" {
		return &value
	}
	return nil
}

func (h *reportingHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID := c.Query("accountID")
	if accountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accountID query parameter is required"})
		return
	}

	from, ok := parseOptionalDate(c, "fromDate")
	if !ok {
		return
	}
	to, ok := parseOptionalDate(c, "toDate")
	if !ok {
		return
	}

	report, err := h.reportingService.Ledger(c.Request.Context(), accountID, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate ledger report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate ledger report"})
		}
		return
	}

	logger.Info("Ledger report generated successfully", slog.Int("entry_count", len(report.Entries)))
	c.JSON(http.StatusOK, dto.ToLedgerResponse(report))
}

func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, ok := requireDate(c, "fromDate")
	if !ok {
		return
	}
	to, ok := requireDate(c, "toDate")
	if !ok {
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), optionalProjectID(c), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate trial balance report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate trial balance report"})
		}
		return
	}

	logger.Info("Trial balance report generated successfully", slog.Int("row_count", len(report.Rows)))
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOnStr := c.DefaultQuery("asOnDate", time.Now().Format("2006-01-02"))
	asOn, err := time.Parse("2006-01-02", asOnStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOnDate format. Use YYYY-MM-DD"})
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOn)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate balance sheet report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate balance sheet report"})
		}
		return
	}

	logger.Info("Balance sheet report generated successfully",
		slog.Bool("is_balanced", report.IsBalanced),
		slog.String("pre_plug_difference", report.PrePlugDifference.String()))
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, ok := requireDate(c, "fromDate")
	if !ok {
		return
	}
	to, ok := requireDate(c, "toDate")
	if !ok {
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), optionalProjectID(c), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate profit and loss report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate profit and loss report"})
		}
		return
	}

	logger.Info("Profit and loss report generated successfully",
		slog.Int("income_groups", len(report.Income)),
		slog.Int("expense_groups", len(report.Expenses)))
	c.JSON(http.StatusOK, dto.ToProfitLossResponse(report))
}

func (h *reportingHandler) getCashBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, ok := parseOptionalDate(c, "fromDate")
	if !ok {
		return
	}
	to, ok := parseOptionalDate(c, "toDate")
	if !ok {
		return
	}

	report, err := h.reportingService.CashBook(c.Request.Context(), optionalProjectID(c), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate cash book report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate cash book report"})
		}
		return
	}

	logger.Info("Cash book report generated successfully", slog.Int("book_count", len(report.Books)))
	c.JSON(http.StatusOK, dto.ToCashBookResponse(report))
}

func (h *reportingHandler) getBankBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, ok := parseOptionalDate(c, "fromDate")
	if !ok {
		return
	}
	to, ok := parseOptionalDate(c, "toDate")
	if !ok {
		return
	}

	report, err := h.reportingService.BankBook(c.Request.Context(), optionalProjectID(c), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate bank book report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate bank book report"})
		}
		return
	}

	logger.Info("Bank book report generated successfully",
		slog.Int("book_count", len(report.Books)),
		slog.Int("outstanding_cheques", len(report.OutstandingCheques)))
	c.JSON(http.StatusOK, dto.ToBankBookResponse(report))
}
