// Package companion is the local responder: it analyzes a message, reflects
// it back, offers advice, and checks candidate replies. Nothing in here does
// I/O, so every function is safe to call from any goroutine.
package companion

import "clementus360/gal-bestfriend/types"

// Tone is the coarse bucket a 1-5 tone level maps to for phrase lookup.
type Tone int

const (
	Gentle Tone = iota
	Balanced
	Direct
)

// ToneFor maps a tone level to its bucket: <=2 gentle, 3-4 balanced, 5 direct.
// The split is deliberately uneven.
func ToneFor(level int) Tone {
	level = types.ClampTone(level)
	switch {
	case level <= 2:
		return Gentle
	case level <= 4:
		return Balanced
	default:
		return Direct
	}
}

func (t Tone) String() string {
	switch t {
	case Gentle:
		return "gentle"
	case Direct:
		return "direct"
	default:
		return "balanced"
	}
}

// tonal is one line written three ways.
type tonal struct {
	gentle, balanced, direct string
}

func (p tonal) For(t Tone) string {
	switch t {
	case Gentle:
		return p.gentle
	case Direct:
		return p.direct
	default:
		return p.balanced
	}
}

var tonePreviews = map[int]string{
	1: `"I hear you, and what you're feeling is completely valid. Take your time — I'm here whenever you're ready to talk more."`,
	2: `"That sounds really hard. Let's work through this together at whatever pace feels right for you."`,
	3: `"I totally get why that's bothering you. Let's think through this together and figure out what feels right for you."`,
	4: `"Okay, let's dig into this. I want to help you see the full picture — even the parts that might be uncomfortable."`,
	5: `"Real talk? I'm going to be honest with you because I care. Let's look at what's really going on here."`,
}

// TonePreview is the sample line shown next to the onboarding tone slider.
func TonePreview(level int) string {
	return tonePreviews[types.ClampTone(level)]
}
