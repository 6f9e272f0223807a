package http

import (
	"log/slog"
	"net/http"

	"github.com/talentbase/hrms-backend-go/internal/handler/http/response"
	dashboardService "github.com/talentbase/hrms-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboardService.DashboardService
}

func NewDashboardHandler(dashboardSvc dashboardService.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardSvc}
}

// Overview implements DashboardHandler.
func (h *DashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	overview, err := h.dashboardService.Overview(r.Context(), caller.Role, caller.UserID)
	if err != nil {
		slog.Error("Dashboard overview service error", "error", err, "user_id", caller.UserID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}
