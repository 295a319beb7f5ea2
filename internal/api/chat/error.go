package chat

import (
	"StimulusAssistant/pkg/response"
	"fmt"
)

var (
	ErrMalformedBody    = response.NewError(400, "request body is not valid JSON")
	ErrReplyInterrupted = response.NewError(408, "reply interrupted before it was ready")
)

// ReplyInterrupted reports a reply abandoned because cause ended the wait.
// The result matches both ErrReplyInterrupted and cause.
func ReplyInterrupted(cause error) error {
	return response.Wrap(408, fmt.Errorf("%w: %w", ErrReplyInterrupted, cause))
}
