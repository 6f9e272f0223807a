package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/talentbase/hrms-backend-go/internal/domain/assistant"
	"github.com/talentbase/hrms-backend-go/internal/handler/http/response"
	assistantService "github.com/talentbase/hrms-backend-go/internal/service/assistant"
)

type AssistantHandler interface {
	Ask(w http.ResponseWriter, r *http.Request)
}

type AssistantHandlerImpl struct {
	assistantService assistantService.AssistantService
}

func NewAssistantHandler(assistantSvc assistantService.AssistantService) AssistantHandler {
	return &AssistantHandlerImpl{assistantService: assistantSvc}
}

// Ask implements AssistantHandler.
func (h *AssistantHandlerImpl) Ask(w http.ResponseWriter, r *http.Request) {
	var askReq assistant.AskRequest

	if err := json.NewDecoder(r.Body).Decode(&askReq); err != nil {
		slog.Error("Ask decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	answer, err := h.assistantService.Ask(r.Context(), askReq)
	if err != nil {
		slog.Error("Ask service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, answer)
}
