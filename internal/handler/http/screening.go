package http

import (
	"log/slog"
	"net/http"

	"github.com/talentbase/hrms-backend-go/internal/handler/http/response"
	screeningService "github.com/talentbase/hrms-backend-go/internal/service/screening"
)

// maxResumeSize caps the multipart form parse at 10 MiB.
const maxResumeSize = 10 << 20

type ScreeningHandler interface {
	Screen(w http.ResponseWriter, r *http.Request)
}

type ScreeningHandlerImpl struct {
	screeningService screeningService.ScreeningService
}

func NewScreeningHandler(screeningSvc screeningService.ScreeningService) ScreeningHandler {
	return &ScreeningHandlerImpl{screeningService: screeningSvc}
}

// Screen implements ScreeningHandler. The request is multipart/form-data with
// a "resume" file part and a "job_description" text field.
func (h *ScreeningHandlerImpl) Screen(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		slog.Error("Screen parse multipart error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	screenReq := screeningService.ScreenRequest{
		JobDescription: r.FormValue("job_description"),
	}

	file, header, err := r.FormFile("resume")
	if err == nil {
		defer file.Close()
		screenReq.File = file
		screenReq.FileHeader = header
	}

	result, err := h.screeningService.Screen(r.Context(), screenReq)
	if err != nil {
		slog.Error("Screen service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Resume screened", "score", result.Score)
	response.Success(w, result)
}
