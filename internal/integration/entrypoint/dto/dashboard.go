package dto

import (
	"github.com/subtracker/backend/internal/application/usecase/dashboard"
)

// CategoryShareResponse represents one slice of the category breakdown.
type CategoryShareResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Percent  string `json:"percent"`
	Color    string `json:"color"`
}

// OverviewResponse represents the dashboard overview payload.
type OverviewResponse struct {
	MonthlyTotal    string                  `json:"monthly_total"`
	YearlyTotal     string                  `json:"yearly_total"`
	NextDue         *SubscriptionResponse   `json:"next_due,omitempty"`
	Breakdown       []CategoryShareResponse `json:"breakdown"`
	ActiveCount     int                     `json:"active_count"`
	EndingSoonCount int                     `json:"ending_soon_count"`
	HistoryCount    int                     `json:"history_count"`
}

// ToOverviewResponse converts the aggregation output to the overview DTO.
func ToOverviewResponse(out *dashboard.GetOverviewOutput) OverviewResponse {
	breakdown := make([]CategoryShareResponse, len(out.Breakdown))
	for i, share := range out.Breakdown {
		breakdown[i] = CategoryShareResponse{
			Category: share.Category,
			Total:    share.Total.StringFixed(2),
			Percent:  share.Percent.StringFixed(2),
			Color:    share.Color,
		}
	}

	response := OverviewResponse{
		MonthlyTotal:    out.MonthlyTotal.StringFixed(2),
		YearlyTotal:     out.YearlyTotal.StringFixed(2),
		Breakdown:       breakdown,
		ActiveCount:     out.ActiveCount,
		EndingSoonCount: out.EndingSoonCount,
		HistoryCount:    out.HistoryCount,
	}
	if out.NextDue != nil {
		nextDue := ToSubscriptionResponse(out.NextDue)
		response.NextDue = &nextDue
	}
	return response
}
