package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/subtracker/backend/internal/application/usecase/subscription"
	"github.com/subtracker/backend/internal/domain/entity"
	domainerror "github.com/subtracker/backend/internal/domain/error"
	"github.com/subtracker/backend/internal/integration/entrypoint/dto"
)

// SubscriptionController handles subscription endpoints.
type SubscriptionController struct {
	listUseCase    *subscription.ListSubscriptionsUseCase
	createUseCase  *subscription.CreateSubscriptionUseCase
	updateUseCase  *subscription.UpdateSubscriptionUseCase
	deleteUseCase  *subscription.DeleteSubscriptionUseCase
	archiveUseCase *subscription.ArchiveSubscriptionUseCase
	fixLogoUseCase *subscription.FixLogoUseCase
}

// NewSubscriptionController creates a new subscription controller instance.
func NewSubscriptionController(
	listUseCase *subscription.ListSubscriptionsUseCase,
	createUseCase *subscription.CreateSubscriptionUseCase,
	updateUseCase *subscription.UpdateSubscriptionUseCase,
	deleteUseCase *subscription.DeleteSubscriptionUseCase,
	archiveUseCase *subscription.ArchiveSubscriptionUseCase,
	fixLogoUseCase *subscription.FixLogoUseCase,
) *SubscriptionController {
	return &SubscriptionController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		archiveUseCase: archiveUseCase,
		fixLogoUseCase: fixLogoUseCase,
	}
}

// List handles GET /subscriptions requests.
// Query parameters: bucket (active|ending-soon|history), q, category.
func (c *SubscriptionController) List(ctx *gin.Context) {
	input := subscription.ListSubscriptionsInput{
		Bucket:   ctx.Query("bucket"),
		Search:   ctx.Query("q"),
		Category: ctx.Query("category"),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to list subscriptions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubscriptionListResponse(output.Subscriptions))
}

// Create handles POST /subscriptions requests.
func (c *SubscriptionController) Create(ctx *gin.Context) {
	var req dto.SubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), toCreateInput(req))
	if err != nil {
		c.handleSubscriptionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSubscriptionResponse(output.Subscription))
}

// Update handles PUT /subscriptions/:id requests.
func (c *SubscriptionController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.SubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), subscription.UpdateSubscriptionInput{
		ID:                      id,
		CreateSubscriptionInput: toCreateInput(req),
	})
	if err != nil {
		c.handleSubscriptionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubscriptionResponse(output.Subscription))
}

// Delete handles DELETE /subscriptions/:id requests.
func (c *SubscriptionController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.handleSubscriptionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Archive handles POST /subscriptions/:id/archive requests.
func (c *SubscriptionController) Archive(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	output, err := c.archiveUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		c.handleSubscriptionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubscriptionResponse(output.Subscription))
}

// FixLogo handles POST /subscriptions/:id/logo requests.
func (c *SubscriptionController) FixLogo(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	output, err := c.fixLogoUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		c.handleSubscriptionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FixLogoResponse{
		Subscription: dto.ToSubscriptionResponse(output.Subscription),
		Updated:      output.Updated,
	})
}

// parseID reads the :id path parameter, writing the error response itself.
func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid subscription ID",
		})
		return uuid.Nil, false
	}
	return id, true
}

// toCreateInput maps the request body to the use case input.
func toCreateInput(req dto.SubscriptionRequest) subscription.CreateSubscriptionInput {
	return subscription.CreateSubscriptionInput{
		Name:         req.Name,
		Price:        decimal.NewFromFloat(req.Price),
		BillingCycle: entity.BillingCycle(req.BillingCycle),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		ReminderDays: req.ReminderDays,
		Category:     req.Category,
		Color:        req.Color,
		LogoURL:      req.LogoURL,
		SoundTone:    req.SoundTone,
	}
}

// handleSubscriptionError maps domain errors to HTTP status codes.
func (c *SubscriptionController) handleSubscriptionError(ctx *gin.Context, err error) {
	var subErr *domainerror.SubscriptionError
	if errors.As(err, &subErr) {
		status := http.StatusBadRequest
		if subErr.Code == domainerror.ErrCodeSubscriptionNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: subErr.Message,
			Code:  string(subErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
