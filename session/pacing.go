package session

import (
	"context"
	"time"
	"unicode/utf8"
)

const (
	baseTypingDelay    = 800 * time.Millisecond
	perCharTypingDelay = 15 * time.Millisecond
	maxTypingDelay     = 2500 * time.Millisecond
)

// Pacer holds a locally crafted reply back for d so it reads like typing.
type Pacer func(ctx context.Context, d time.Duration)

// TypingDelay grows with the reply length and is capped.
func TypingDelay(reply string) time.Duration {
	d := baseTypingDelay + time.Duration(utf8.RuneCountInString(reply))*perCharTypingDelay
	if d > maxTypingDelay {
		return maxTypingDelay
	}
	return d
}

// SleepPacer waits for d or until ctx is done.
func SleepPacer(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// NoPacer replies immediately.
func NoPacer(context.Context, time.Duration) {}
