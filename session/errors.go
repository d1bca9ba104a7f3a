package session

import "errors"

var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrReplyPending    = errors.New("a reply is still being generated")
	ErrNothingPending  = errors.New("no response is awaiting review")
	ErrNoUserMessage   = errors.New("no user message to respond to")
	ErrSessionNotFound = errors.New("session not found")
)
