package chatService

import (
	"StimulusAssistant/internal/api/chat"
	"StimulusAssistant/pkg/intent"
	"StimulusAssistant/pkg/log"
	"context"
)

func (s *chatService) GetResponse(ctx context.Context, req chat.MessageRequest) (*chat.ChatResponse, error) {
	text := string(req.Message)

	if err := s.pacer.Wait(ctx, replyDelay(text)); err != nil {
		log.WithRequestID(ctx, s.log).WithError(err).Warn("Reply interrupted while typing")
		return nil, chat.ReplyInterrupted(err)
	}

	result := s.matcher.Match(text)

	entry := log.WithRequestID(ctx, s.log).WithFields(log.Fields{
		"intent":   result.Intent,
		"followup": result.Followup != nil,
	})
	if result.Intent == intent.IDFallback {
		entry.WithField("message", intent.Summarize(text)).Info("No intent matched, answering with fallback")
	} else {
		entry.Debug("Intent matched")
	}

	return &chat.ChatResponse{
		Reply:    result.Reply,
		Intent:   result.Intent,
		Followup: result.Followup,
	}, nil
}

func (s *chatService) ServicesDetail(ctx context.Context, req chat.MessageRequest) (*chat.ServicesDetailResponse, error) {
	text := string(req.Message)

	if err := s.pacer.Wait(ctx, followupDelay()); err != nil {
		log.WithRequestID(ctx, s.log).WithError(err).Warn("Reply interrupted while typing")
		return nil, chat.ReplyInterrupted(err)
	}

	result := s.matcher.Disambiguate(text)

	log.WithRequestID(ctx, s.log).WithFields(log.Fields{
		"intent":   result.Intent,
		"resolved": result.Intent != intent.IDServicesFollowup,
	}).Debug("Services follow-up answered")

	return &chat.ServicesDetailResponse{
		Reply:    result.Reply,
		Followup: result.Followup,
		Intent:   result.Intent,
	}, nil
}

func (s *chatService) Suggestions(ctx context.Context) *chat.SuggestResponse {
	return &chat.SuggestResponse{
		Suggestions: intent.Suggestions(),
	}
}
