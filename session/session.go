// Package session owns one chat at a time: its history, its settings and
// the decision of who writes the next reply.
package session

import (
	"clementus360/gal-bestfriend/companion"
	"clementus360/gal-bestfriend/config"
	"clementus360/gal-bestfriend/types"
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"
)

const (
	StatusReady     = "Ready to listen"
	StatusThinking  = "Thinking..."
	StatusListening = "Listening..."

	// MaxContextTurns is how much history travels with an external call.
	MaxContextTurns = 10

	defaultExternalTimeout = 20 * time.Second
	timestampLayout        = "15:04"
)

// ExternalHandler writes replies somewhere other than the local crafter,
// usually an LLM. It gets the full context every call and must return
// plain text or an error; it must not hang past ctx.
type ExternalHandler interface {
	Reply(ctx context.Context, message string, chatCtx types.ChatContext) (string, error)
}

type Source string

const (
	SourceExternal Source = "external"
	SourceLocal    Source = "local"
)

// Reply is the assistant turn produced for one user message.
type Reply struct {
	Text       string
	Source     Source
	Validation *types.ValidationResult
	// Pending is true while the reply awaits accept or regenerate.
	Pending bool
}

type Options struct {
	External        ExternalHandler
	ExternalTimeout time.Duration
	Pacer           Pacer
	Rand            *rand.Rand
	Now             func() time.Time
}

func (o Options) withDefaults() Options {
	if o.ExternalTimeout <= 0 {
		o.ExternalTimeout = defaultExternalTimeout
	}
	if o.Pacer == nil {
		o.Pacer = NoPacer
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Session is a single chat. All methods are safe for concurrent use, but
// only one reply is generated at a time.
type Session struct {
	ID    string
	Owner string

	mu            sync.Mutex
	profile       types.UserProfile
	history       []types.ConversationTurn
	pending       string
	hasPending    bool
	forceValidate bool
	generating    bool
	status        string
	lastActive    time.Time

	crafter *companion.Crafter
	opts    Options
}

func New(id, owner string, profile types.UserProfile, opts Options) *Session {
	opts = opts.withDefaults()
	return &Session{
		ID:         id,
		Owner:      owner,
		profile:    profile.Normalize(),
		status:     StatusReady,
		lastActive: opts.Now(),
		crafter:    companion.NewCrafter(),
		opts:       opts,
	}
}

// Start clears the conversation and posts the greeting, followed by an
// opening question for the user's situation when there is one.
func (s *Session) Start() []types.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = nil
	s.pending, s.hasPending = "", false
	s.crafter.Reset()

	tone := companion.ToneFor(s.profile.ToneLevel)
	name := s.profile.Name
	if name == "" {
		name = "friend"
	}
	s.appendLocked(types.RoleAssistant, companion.Greeting(tone, name))
	if prompt, ok := companion.SituationPrompt(s.profile.Situation, s.opts.Rand); ok {
		s.appendLocked(types.RoleAssistant, prompt)
	}
	return s.historyLocked()
}

// Send records the user's message and produces the reply to it. validate
// forces the maker-checker pass even for external replies.
func (s *Session) Send(ctx context.Context, message string, validate bool) (Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.generating {
		s.mu.Unlock()
		return Reply{}, ErrReplyPending
	}
	s.pending, s.hasPending = "", false
	s.forceValidate = validate
	s.appendLocked(types.RoleUser, message)
	s.beginLocked()
	profile, chatCtx := s.profile, s.chatContextLocked()
	s.mu.Unlock()

	reply := s.generate(ctx, message, profile, chatCtx, validate)
	return s.finish(reply), nil
}

// Accept keeps the reply under review as is.
func (s *Session) Accept() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasPending {
		return ErrNothingPending
	}
	s.pending, s.hasPending = "", false
	s.lastActive = s.opts.Now()
	return nil
}

// Regenerate drops the reply under review, nudges the tone one step and
// answers the last user message again.
func (s *Session) Regenerate(ctx context.Context) (Reply, error) {
	s.mu.Lock()
	if s.generating {
		s.mu.Unlock()
		return Reply{}, ErrReplyPending
	}
	if !s.hasPending {
		s.mu.Unlock()
		return Reply{}, ErrNothingPending
	}
	message, ok := s.lastUserMessageLocked()
	if !ok {
		s.mu.Unlock()
		return Reply{}, ErrNoUserMessage
	}
	s.pending, s.hasPending = "", false

	for i := len(s.history) - 1; i >= 0; i-- {
		if s.history[i].Role == types.RoleAssistant {
			s.history = append(s.history[:i], s.history[i+1:]...)
			break
		}
	}

	s.profile.ToneLevel = types.ClampTone(shiftTone(s.profile.ToneLevel))
	s.beginLocked()
	profile, chatCtx, validate := s.profile, s.chatContextLocked(), s.forceValidate
	s.mu.Unlock()

	reply := s.generate(ctx, message, profile, chatCtx, validate)
	return s.finish(reply), nil
}

// shiftTone moves a direct tone down and anything else up.
func shiftTone(level int) int {
	if level > 3 {
		return level - 1
	}
	return level + 1
}

// UpdateSettings applies a settings-panel change and returns the result.
// Unknown style or focus values fall back to their defaults; unknown themes
// are ignored.
func (s *Session) UpdateSettings(u types.SettingsUpdate) types.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActive = s.opts.Now()
	if u.ToneLevel != nil {
		s.profile.ToneLevel = types.ClampTone(*u.ToneLevel)
	}
	if u.ResponseStyle != nil {
		s.profile.ResponseStyle = types.ParseResponseStyle(*u.ResponseStyle)
	}
	if u.FocusArea != nil {
		s.profile.FocusArea = types.ParseFocusArea(*u.FocusArea)
	}
	if u.ColorTheme != nil {
		if _, ok := types.ColorThemes[*u.ColorTheme]; ok {
			s.profile.ColorTheme = *u.ColorTheme
		}
	}
	return s.profile
}

func (s *Session) Profile() types.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *Session) History() []types.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.historyLocked()
}

// ContextHistory is the tail of the conversation sent to external handlers.
func (s *Session) ContextHistory() []types.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lastTurns(s.history, MaxContextTurns)
}

func (s *Session) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// PendingResponse returns the reply awaiting review, if any.
func (s *Session) PendingResponse() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending, s.hasPending
}

// setIdleStatus changes the status unless a reply is being generated.
// IdleSince reports whether the session has seen no activity since cutoff.
// A session writing a reply is never idle.
func (s *Session) IdleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.generating && s.lastActive.Before(cutoff)
}

func (s *Session) setIdleStatus(status string) {
	s.mu.Lock()
	if !s.generating {
		s.status = status
	}
	s.mu.Unlock()
}

func (s *Session) generate(ctx context.Context, message string, profile types.UserProfile, chatCtx types.ChatContext, validate bool) Reply {
	if s.opts.External != nil {
		callCtx, cancel := context.WithTimeout(ctx, s.opts.ExternalTimeout)
		text, err := s.opts.External.Reply(callCtx, message, chatCtx)
		cancel()

		switch {
		case err != nil:
			config.Logger.Warn("External AI error, falling back to local response: ", err)
		case strings.TrimSpace(text) == "":
			config.Logger.Warn("External AI returned an empty reply, falling back to local response")
		default:
			reply := Reply{Text: strings.TrimSpace(text), Source: SourceExternal}
			if validate {
				v := companion.RunValidationChecks(reply.Text, profile.ToneLevel)
				reply.Validation = &v
			}
			return reply
		}
	}

	reply := Reply{Text: s.crafter.Craft(message, profile), Source: SourceLocal}
	if validate || companion.ShouldValidate(message) {
		v := companion.RunValidationChecks(reply.Text, profile.ToneLevel)
		reply.Validation = &v
	}
	s.opts.Pacer(ctx, TypingDelay(reply.Text))
	return reply
}

func (s *Session) beginLocked() {
	s.generating = true
	s.status = StatusThinking
}

func (s *Session) finish(reply Reply) Reply {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appendLocked(types.RoleAssistant, reply.Text)
	if reply.Validation != nil {
		s.pending, s.hasPending = reply.Text, true
		reply.Pending = true
	}
	s.generating = false
	s.status = StatusReady
	return reply
}

func (s *Session) appendLocked(role types.Role, content string) {
	now := s.opts.Now()
	s.lastActive = now
	s.history = append(s.history, types.ConversationTurn{
		Role:      role,
		Content:   content,
		Timestamp: now.Format(timestampLayout),
	})
}

func (s *Session) historyLocked() []types.ConversationTurn {
	out := make([]types.ConversationTurn, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) lastUserMessageLocked() (string, bool) {
	for i := len(s.history) - 1; i >= 0; i-- {
		if s.history[i].Role == types.RoleUser {
			return s.history[i].Content, true
		}
	}
	return "", false
}

func (s *Session) chatContextLocked() types.ChatContext {
	p := s.profile
	return types.ChatContext{
		ToneLevel:     p.ToneLevel,
		ResponseStyle: p.ResponseStyle,
		FocusArea:     p.FocusArea,
		Situation:     p.Situation,
		Belief:        p.Belief,
		LifeStage:     p.LifeStage,
		UserName:      p.Name,
		History:       types.ToHistoryMessages(lastTurns(s.history, MaxContextTurns)),
	}
}

func lastTurns(turns []types.ConversationTurn, n int) []types.ConversationTurn {
	if len(turns) > n {
		turns = turns[len(turns)-n:]
	}
	out := make([]types.ConversationTurn, len(turns))
	copy(out, turns)
	return out
}
