package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/bizbooks/bizbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests for the account registry and projects
type accountHandler struct {
	accountService portssvc.AccountService
}

// newAccountHandler creates a new accountHandler
func newAccountHandler(as portssvc.AccountService) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes for accounts and projects
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountService) {
	h := newAccountHandler(accountService)

	treasury := rg.Group("/accounts/treasury")
	{
		treasury.POST("", h.createTreasuryAccount)
		treasury.GET("", h.listTreasuryAccounts)
		treasury.GET("/:accountID", h.getTreasuryAccount)
		treasury.DELETE("/:accountID", h.deactivateTreasuryAccount)
	}

	category := rg.Group("/accounts/category")
	{
		category.POST("", h.createCategoryAccount)
		category.GET("", h.listCategoryAccounts)
		category.GET("/:accountID", h.getCategoryAccount)
		category.DELETE("/:accountID", h.deactivateCategoryAccount)
	}

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:projectID", h.getProject)
	}
}

func (h *accountHandler) createTreasuryAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTreasuryAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid treasury account creation request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c)
	account, err := h.accountService.CreateTreasuryAccount(c.Request.Context(), req, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create treasury account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create treasury account"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTreasuryAccountResponse(*account))
}

func (h *accountHandler) listTreasuryAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	activeOnly := c.DefaultQuery("activeOnly", "true") == "true"
	accounts, err := h.accountService.ListTreasuryAccounts(c.Request.Context(), activeOnly)
	if err != nil {
		logger.Error("Failed to list treasury accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list treasury accounts"})
		return
	}

	resp := make([]dto.TreasuryAccountResponse, len(accounts))
	for i, account := range accounts {
		resp[i] = dto.ToTreasuryAccountResponse(account)
	}
	c.JSON(http.StatusOK, gin.H{"accounts": resp})
}

func (h *accountHandler) getTreasuryAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	account, err := h.accountService.GetTreasuryAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Treasury account not found"})
		} else {
			logger.Error("Failed to get treasury account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get treasury account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTreasuryAccountResponse(*account))
}

func (h *accountHandler) deactivateTreasuryAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	actor := middleware.GetActorFromContext(c)

	if err := h.accountService.DeactivateTreasuryAccount(c.Request.Context(), accountID, actor); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Treasury account not found"})
		} else {
			logger.Error("Failed to deactivate treasury account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate treasury account"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *accountHandler) createCategoryAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCategoryAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid category account creation request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c)
	account, err := h.accountService.CreateCategoryAccount(c.Request.Context(), req, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create category account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category account"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryAccountResponse(*account))
}

func (h *accountHandler) listCategoryAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	activeOnly := c.DefaultQuery("activeOnly", "true") == "true"
	accounts, err := h.accountService.ListCategoryAccounts(c.Request.Context(), activeOnly)
	if err != nil {
		logger.Error("Failed to list category accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list category accounts"})
		return
	}

	resp := make([]dto.CategoryAccountResponse, len(accounts))
	for i, account := range accounts {
		resp[i] = dto.ToCategoryAccountResponse(account)
	}
	c.JSON(http.StatusOK, gin.H{"accounts": resp})
}

func (h *accountHandler) getCategoryAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	account, err := h.accountService.GetCategoryAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category account not found"})
		} else {
			logger.Error("Failed to get category account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get category account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryAccountResponse(*account))
}

func (h *accountHandler) deactivateCategoryAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	actor := middleware.GetActorFromContext(c)

	if err := h.accountService.DeactivateCategoryAccount(c.Request.Context(), accountID, actor); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category account not found"})
		} else {
			logger.Error("Failed to deactivate category account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate category account"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *accountHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid project creation request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c)
	project, err := h.accountService.CreateProject(c.Request.Context(), req, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create project", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(*project))
}

func (h *accountHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	activeOnly := c.DefaultQuery("activeOnly", "true") == "true"
	projects, err := h.accountService.ListProjects(c.Request.Context(), activeOnly)
	if err != nil {
		logger.Error("Failed to list projects", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
		return
	}

	resp := make([]dto.ProjectResponse, len(projects))
	for i, project := range projects {
		resp[i] = dto.ToProjectResponse(project)
	}
	c.JSON(http.StatusOK, gin.H{"projects": resp})
}

func (h *accountHandler) getProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	project, err := h.accountService.GetProjectByID(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			logger.Error("Failed to get project", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get project"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(*project))
}
