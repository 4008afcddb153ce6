package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/subtracker/backend/internal/application/usecase/dashboard"
	"github.com/subtracker/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	overviewUseCase *dashboard.GetOverviewUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(overviewUseCase *dashboard.GetOverviewUseCase) *DashboardController {
	return &DashboardController{
		overviewUseCase: overviewUseCase,
	}
}

// Overview handles GET /dashboard/overview requests.
func (c *DashboardController) Overview(ctx *gin.Context) {
	output, err := c.overviewUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute dashboard overview",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}
