package types

import "strings"

type Situation string

const (
	SituationFriendship Situation = "friendship"
	SituationRomantic   Situation = "romantic"
	SituationFamily     Situation = "family"
	SituationSelf       Situation = "self"
)

type Belief string

const (
	BeliefSpiritual Belief = "spiritual"
	BeliefReligious Belief = "religious"
	BeliefSecular   Belief = "secular"
	BeliefMixed     Belief = "mixed"
)

type LifeStage string

const (
	LifeStageTeens    LifeStage = "teens"
	LifeStageEarly20s LifeStage = "early20s"
	LifeStageLate20s  LifeStage = "late20s"
	LifeStage30s      LifeStage = "30s"
	LifeStage40Plus   LifeStage = "40plus"
)

type ResponseStyle string

const (
	StyleConversational ResponseStyle = "conversational"
	StyleStructured     ResponseStyle = "structured"
	StyleBrief          ResponseStyle = "brief"
)

type FocusArea string

const (
	FocusEmotional   FocusArea = "emotional"
	FocusPractical   FocusArea = "practical"
	FocusPerspective FocusArea = "perspective"
)

const (
	MinToneLevel     = 1
	MaxToneLevel     = 5
	DefaultToneLevel = 3
)

// ClampTone keeps a tone level inside [MinToneLevel, MaxToneLevel].
func ClampTone(level int) int {
	if level < MinToneLevel {
		return MinToneLevel
	}
	if level > MaxToneLevel {
		return MaxToneLevel
	}
	return level
}

// ParseSituation returns ok=false for anything outside the closed set.
func ParseSituation(s string) (Situation, bool) {
	switch v := Situation(strings.ToLower(strings.TrimSpace(s))); v {
	case SituationFriendship, SituationRomantic, SituationFamily, SituationSelf:
		return v, true
	}
	return "", false
}

func ParseBelief(s string) (Belief, bool) {
	switch v := Belief(strings.ToLower(strings.TrimSpace(s))); v {
	case BeliefSpiritual, BeliefReligious, BeliefSecular, BeliefMixed:
		return v, true
	}
	return "", false
}

func ParseLifeStage(s string) (LifeStage, bool) {
	switch v := LifeStage(strings.ToLower(strings.TrimSpace(s))); v {
	case LifeStageTeens, LifeStageEarly20s, LifeStageLate20s, LifeStage30s, LifeStage40Plus:
		return v, true
	}
	return "", false
}

// ParseResponseStyle falls back to conversational.
func ParseResponseStyle(s string) ResponseStyle {
	switch v := ResponseStyle(strings.ToLower(strings.TrimSpace(s))); v {
	case StyleConversational, StyleStructured, StyleBrief:
		return v
	}
	return StyleConversational
}

// ParseFocusArea falls back to emotional.
func ParseFocusArea(s string) FocusArea {
	switch v := FocusArea(strings.ToLower(strings.TrimSpace(s))); v {
	case FocusEmotional, FocusPractical, FocusPerspective:
		return v
	}
	return FocusEmotional
}

// UserProfile holds the onboarding answers and the live chat settings.
type UserProfile struct {
	Name          string        `json:"name"`
	ColorTheme    string        `json:"colorTheme"`
	Situation     Situation     `json:"situation"`
	Belief        Belief        `json:"belief,omitempty"`
	LifeStage     LifeStage     `json:"lifeStage,omitempty"`
	ToneLevel     int           `json:"toneLevel"`
	ResponseStyle ResponseStyle `json:"responseStyle"`
	FocusArea     FocusArea     `json:"focusArea"`
}

// DefaultProfile mirrors the state before onboarding starts.
func DefaultProfile() UserProfile {
	return UserProfile{
		ColorTheme:    DefaultColorTheme,
		ToneLevel:     DefaultToneLevel,
		ResponseStyle: StyleConversational,
		FocusArea:     FocusEmotional,
	}
}

// Normalize clamps the tone and replaces unknown enum values with defaults.
// Optional fields (belief, life stage, situation) are cleared when unknown.
func (p UserProfile) Normalize() UserProfile {
	p.Name = strings.TrimSpace(p.Name)
	p.ToneLevel = ClampTone(p.ToneLevel)
	p.ResponseStyle = ParseResponseStyle(string(p.ResponseStyle))
	p.FocusArea = ParseFocusArea(string(p.FocusArea))
	p.Situation, _ = ParseSituation(string(p.Situation))
	p.Belief, _ = ParseBelief(string(p.Belief))
	p.LifeStage, _ = ParseLifeStage(string(p.LifeStage))
	if _, ok := ColorThemes[p.ColorTheme]; !ok {
		p.ColorTheme = DefaultColorTheme
	}
	return p
}

// SettingsUpdate carries the fields the settings panel can change mid-chat.
// Nil fields are left untouched.
type SettingsUpdate struct {
	SessionID     string  `json:"session_id"`
	ToneLevel     *int    `json:"tone_level,omitempty"`
	ResponseStyle *string `json:"response_style,omitempty"`
	FocusArea     *string `json:"focus_area,omitempty"`
	ColorTheme    *string `json:"color_theme,omitempty"`
}
