package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/bizbooks/bizbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// voucherHandler handles HTTP requests for voucher entry and lifecycle
type voucherHandler struct {
	voucherService portssvc.VoucherService
}

// newVoucherHandler creates a new voucherHandler
func newVoucherHandler(vs portssvc.VoucherService) *voucherHandler {
	return &voucherHandler{
		voucherService: vs,
	}
}

// registerVoucherRoutes registers routes for vouchers
func registerVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherService) {
	h := newVoucherHandler(voucherService)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:voucherID", h.getVoucher)
		vouchers.POST("/:voucherID/confirm", h.confirmVoucher)
		vouchers.PATCH("/:voucherID/cheque-status", h.updateChequeStatus)
		vouchers.DELETE("/:voucherID", h.deleteVoucher)
	}
}

func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid voucher creation request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c)
	voucher, err := h.voucherService.CreateVoucher(c.Request.Context(), req, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced account or project not found"})
		} else {
			logger.Error("Failed to create voucher", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create voucher"})
		}
		return
	}

	logger.Info("Voucher created via API",
		slog.String("voucher_id", voucher.VoucherID),
		slog.String("voucher_no", voucher.VoucherNo))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(*voucher))
}

func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListVouchersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid voucher listing request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vouchers, nextToken, err := h.voucherService.ListVouchers(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list vouchers", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vouchers"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListVouchersResponse(vouchers, nextToken))
}

func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
		} else {
			logger.Error("Failed to get voucher", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get voucher"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(*voucher))
}

func (h *voucherHandler) confirmVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")
	actor := middleware.GetActorFromContext(c)

	if err := h.voucherService.ConfirmVoucher(c.Request.Context(), voucherID, actor); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
		} else {
			logger.Error("Failed to confirm voucher", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm voucher"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *voucherHandler) updateChequeStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	var req dto.UpdateChequeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid cheque status request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c)
	if err := h.voucherService.UpdateChequeStatus(c.Request.Context(), voucherID, domain.ChequeStatus(req.Status), actor); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update cheque status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cheque status"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *voucherHandler) deleteVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")
	force := c.Query("force") == "true"

	if err := h.voucherService.DeleteVoucher(c.Request.Context(), voucherID, force); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to delete voucher", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete voucher"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
