package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/subtracker/backend/internal/application/usecase/advice"
	"github.com/subtracker/backend/internal/application/usecase/notification"
	"github.com/subtracker/backend/internal/domain/entity"
	domainerror "github.com/subtracker/backend/internal/domain/error"
	"github.com/subtracker/backend/internal/integration/entrypoint/dto"
)

// NotificationController handles notification permission, reminder sweep and
// advice endpoints.
type NotificationController struct {
	getPermission  *notification.GetPermissionUseCase
	setPermission  *notification.SetPermissionUseCase
	checkReminders *notification.CheckRemindersUseCase
	getAdvice      *advice.GetAdviceUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	getPermission *notification.GetPermissionUseCase,
	setPermission *notification.SetPermissionUseCase,
	checkReminders *notification.CheckRemindersUseCase,
	getAdvice *advice.GetAdviceUseCase,
) *NotificationController {
	return &NotificationController{
		getPermission:  getPermission,
		setPermission:  setPermission,
		checkReminders: checkReminders,
		getAdvice:      getAdvice,
	}
}

// GetPermission handles GET /notifications/permission requests.
func (c *NotificationController) GetPermission(ctx *gin.Context) {
	permission, err := c.getPermission.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to read notification permission",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.PermissionResponse{Permission: string(permission)})
}

// SetPermission handles PUT /notifications/permission requests.
func (c *NotificationController) SetPermission(ctx *gin.Context) {
	var req dto.SetPermissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	if err := c.setPermission.Execute(ctx.Request.Context(), entity.NotificationPermission(req.Permission)); err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PermissionResponse{Permission: req.Permission})
}

// CheckReminders handles POST /notifications/check requests.
// It runs one reminder sweep on demand.
func (c *NotificationController) CheckReminders(ctx *gin.Context) {
	output, err := c.checkReminders.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to check reminders",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.CheckRemindersResponse{
		Due:     output.Due,
		Sent:    output.Sent,
		Skipped: output.Skipped,
	})
}

// GetAdvice handles GET /advice requests.
func (c *NotificationController) GetAdvice(ctx *gin.Context) {
	output, err := c.getAdvice.Execute(ctx.Request.Context())
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdviceResponse{Advice: output.Advice})
}

// handleNotificationError maps domain errors to HTTP status codes.
func (c *NotificationController) handleNotificationError(ctx *gin.Context, err error) {
	var ntfErr *domainerror.NotificationError
	if errors.As(err, &ntfErr) {
		status := http.StatusBadRequest
		switch ntfErr.Code {
		case domainerror.ErrCodeLookupUnavailable:
			status = http.StatusServiceUnavailable
		case domainerror.ErrCodeNoActiveSubscriptions:
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: ntfErr.Message,
			Code:  string(ntfErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
