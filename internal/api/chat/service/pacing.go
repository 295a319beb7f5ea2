package chatService

import (
	"context"
	"math/rand/v2"
	"time"
	"unicode/utf8"
)

const (
	replyBaseDelay     = 900 * time.Millisecond
	replyPerRuneDelay  = 8 * time.Millisecond
	replyMaxExtraDelay = 900 * time.Millisecond

	followupBaseDelay   = 800 * time.Millisecond
	followupJitterDelay = 600 * time.Millisecond
)

// Pacer holds a reply back so the widget looks like it is typing. It
// never changes what is answered.
type Pacer interface {
	Wait(ctx context.Context, d time.Duration) error
}

type timerPacer struct{}

// TypingDelay waits the full duration unless ctx ends first.
func TypingDelay() Pacer {
	return timerPacer{}
}

func (timerPacer) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type noPacer struct{}

func NoDelay() Pacer {
	return noPacer{}
}

func (noPacer) Wait(context.Context, time.Duration) error {
	return nil
}

func replyDelay(text string) time.Duration {
	extra := time.Duration(utf8.RuneCountInString(text)) * replyPerRuneDelay
	return replyBaseDelay + min(extra, replyMaxExtraDelay)
}

func followupDelay() time.Duration {
	return followupBaseDelay + rand.N(followupJitterDelay)
}
