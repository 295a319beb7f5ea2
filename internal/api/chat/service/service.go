package chatService

import (
	"StimulusAssistant/internal/api/chat"
	"StimulusAssistant/pkg/intent"
	"context"

	"github.com/sirupsen/logrus"
)

type IChatService interface {
	GetResponse(ctx context.Context, req chat.MessageRequest) (*chat.ChatResponse, error)
	ServicesDetail(ctx context.Context, req chat.MessageRequest) (*chat.ServicesDetailResponse, error)
	Suggestions(ctx context.Context) *chat.SuggestResponse
}

// Matcher is the part of intent.Matcher the service relies on.
type Matcher interface {
	Match(text string) intent.Result
	Disambiguate(text string) intent.Result
}

type chatService struct {
	log     *logrus.Logger
	matcher Matcher
	pacer   Pacer
}

func NewChatService(
	log *logrus.Logger,
	matcher Matcher,
	pacer Pacer,
) IChatService {
	if pacer == nil {
		pacer = NoDelay()
	}
	return &chatService{
		log:     log,
		matcher: matcher,
		pacer:   pacer,
	}
}
