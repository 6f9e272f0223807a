package assistant

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/talentbase/hrms-backend-go/internal/domain/assistant"
	"github.com/talentbase/hrms-backend-go/internal/pkg/huggingface"
	"github.com/talentbase/hrms-backend-go/internal/pkg/validator"
)

// confidenceThreshold is the minimum model score below which the extracted
// answer is withheld.
const confidenceThreshold = 0.30

const (
	msgOffline = "I'm sorry, but the AI Assistant is currently offline. Please try again later."

	msgLowConfidence = "I'm sorry, but I'm not confident I have the right information for that question. Could you try rephrasing it?"
)

// QAClient is the slice of the inference client this service needs.
type QAClient interface {
	QuestionAnswering(ctx context.Context, question string, passage string) (huggingface.QAResult, error)
	Configured() bool
}

type AssistantService interface {
	// Ask answers a question from the knowledge base. Upstream failures
	// degrade to a fixed offline message; they never surface as errors.
	Ask(ctx context.Context, req assistant.AskRequest) (assistant.AskResponse, error)
}

type assistantServiceImpl struct {
	newClient func() QAClient

	initOnce sync.Once
	client   QAClient
}

// NewAssistantService builds a service around a lazily-acquired client
// handle. The constructor function runs at most once, on first use.
func NewAssistantService(newClient func() QAClient) AssistantService {
	return &assistantServiceImpl{newClient: newClient}
}

// Ask implements AssistantService.
func (s *assistantServiceImpl) Ask(ctx context.Context, req assistant.AskRequest) (assistant.AskResponse, error) {
	if validator.IsEmpty(req.Question) {
		return assistant.AskResponse{}, validator.ValidationErrors{{
			Field:   "question",
			Message: "question is required",
		}}
	}

	s.initOnce.Do(func() {
		s.client = s.newClient()
	})

	question := strings.TrimSpace(req.Question)
	resp := assistant.AskResponse{Question: question}

	if s.client == nil || !s.client.Configured() {
		resp.Answer = msgOffline
		return resp, nil
	}

	passage := relevantPassage(question)

	result, err := s.client.QuestionAnswering(ctx, question, passage)
	if err != nil {
		slog.Error("assistant inference failed", "error", err)
		resp.Answer = msgOffline
		return resp, nil
	}

	if result.Score < confidenceThreshold {
		resp.Answer = msgLowConfidence
		return resp, nil
	}

	resp.Answer = strings.TrimSpace(result.Answer)
	return resp, nil
}
