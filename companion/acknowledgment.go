package companion

import (
	"clementus360/gal-bestfriend/types"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxAcknowledgmentParts = 2

var emotionAcks = map[types.Emotion]tonal{
	types.EmotionAngry: {
		"I can hear how angry you are, and that anger is valid.",
		"I get why you're angry — that would set anyone off.",
		"You're pissed. I get it.",
	},
	types.EmotionFrustrated: {
		"That frustration makes complete sense.",
		"That sounds really frustrating.",
		"Frustrating as hell, yeah.",
	},
	types.EmotionSad: {
		"I'm sorry you're feeling so sad right now.",
		"That's genuinely sad, and it's okay to feel that way.",
		"That sucks. It's okay to be sad about it.",
	},
	types.EmotionHurt: {
		"That sounds really painful, and I'm sorry you're hurting.",
		"That's hurtful. No wonder you're upset.",
		"That's painful. No sugarcoating it.",
	},
	types.EmotionAnxious: {
		"It's understandable to feel anxious about this.",
		"I understand the anxiety around this.",
		"The anxiety makes sense here.",
	},
	types.EmotionConfused: {
		"It makes sense that you're feeling confused.",
		"Yeah, that's confusing. There's a lot to untangle here.",
		"Confusing situation. Let's figure it out.",
	},
	types.EmotionLonely: {
		"Feeling lonely like that is really hard.",
		"Loneliness is tough, especially in situations like this.",
		"Feeling alone in this is rough.",
	},
	types.EmotionEmbarrassed: {
		"That sounds like a really uncomfortable situation.",
		"That's an awkward spot to be in.",
		"Awkward situation. Let's deal with it.",
	},
	types.EmotionJealous: {
		"Those feelings are natural, even when they're uncomfortable.",
		"Jealousy can be uncomfortable but it's telling you something.",
		"Jealousy's hitting — let's look at why.",
	},
	types.EmotionGuilty: {
		"It sounds like you're being really hard on yourself.",
		"Sounds like the guilt is weighing on you.",
		"The guilt is eating at you.",
	},
	types.EmotionBetrayed: {
		"Feeling betrayed like that cuts deep. I'm sorry.",
		"That's a betrayal. That's serious.",
		"That's betrayal, plain and simple.",
	},
	types.EmotionDisappointed: {
		"That disappointment is real and valid.",
		"That's disappointing, no question.",
		"Disappointing. Let's talk about what to do.",
	},
	types.EmotionExhausted: {
		"It sounds like this has been wearing you down.",
		"You sound exhausted by this whole thing.",
		"You're drained. I hear it.",
	},
	types.EmotionHopeless: {
		"When things feel hopeless, everything is harder. I hear you.",
		"Feeling stuck is the worst. Let's see what we can do.",
		"Feeling stuck. But you're here, so let's work on it.",
	},
	types.EmotionPreoccupied: {
		"It's hard when something takes up so much space in your head.",
		"It's clearly living rent-free in your head right now.",
		"Can't stop thinking about it, huh?",
	},
	types.EmotionOverwhelmed: {
		"That's a lot to process. No wonder you're feeling overwhelmed.",
		"That's overwhelming. Let's break it down.",
		"A lot going on. Let's tackle it.",
	},
}

// actionAck returns the line for an action about person, or ok=false when
// the action has no acknowledgment (communication, ending, discussion...).
func actionAck(action types.Action, tone Tone, person string) (string, bool) {
	who := capitalize(person)
	var line tonal
	switch action {
	case types.ActionIgnored:
		line = tonal{
			fmt.Sprintf("Being ignored by %s — especially when you need a response — that hurts.", person),
			fmt.Sprintf("%s ignoring you like that isn't okay.", who),
			fmt.Sprintf("%s ignoring you is disrespectful.", who),
		}
	case types.ActionBetrayal:
		line = tonal{
			fmt.Sprintf("What %s did was a serious breach of trust. That's not small.", person),
			fmt.Sprintf("That's a real betrayal from %s. Trust is hard to rebuild.", person),
			fmt.Sprintf("%s betrayed you. That's facts.", who),
		}
	case types.ActionConflict:
		line = tonal{
			fmt.Sprintf("That kind of reaction from %s must have been really jarring.", person),
			fmt.Sprintf("%s blowing up like that isn't fair to you.", who),
			fmt.Sprintf("%s losing it on you — not cool.", who),
		}
	case types.ActionArgument:
		line = tonal{
			"Arguments can leave us feeling so raw afterward.",
			"Fighting like that takes a toll on both of you.",
			"That fight sounds intense. Let's unpack it.",
		}
	case types.ActionBreakup:
		line = tonal{
			"Breakups are one of the hardest things. I'm here for you.",
			"That's a big change. How are you holding up?",
			"Breakups hit hard. How are you doing with it?",
		}
	case types.ActionDiscovery:
		line = tonal{
			"Finding that out must have been such a shock.",
			"Discovering that changes things. I can see why you're processing.",
			"That's a big revelation. Changes the picture.",
		}
	case types.ActionReconciliation:
		line = tonal{
			"It takes courage to reach out. How did it feel when that happened?",
			"Them apologizing — how did that land for you?",
			"They apologized. Do you believe it?",
		}
	default:
		return "", false
	}
	return line.For(tone), true
}

func quoteAck(phrase string, tone Tone) string {
	return tonal{
		fmt.Sprintf(`When they said "%s" — that had to sting.`, phrase),
		fmt.Sprintf(`"%s" — yeah, that's a lot to hear.`, phrase),
		fmt.Sprintf(`"%s" — ouch. Let's address that.`, phrase),
	}.For(tone)
}

var (
	freshAck = tonal{
		"This just happened, so everything is still so raw.",
		"This is fresh, so take a breath with me.",
		"This literally just happened. Your head's probably spinning.",
	}
	ongoingAck = tonal{
		"Dealing with this for so long takes a real toll.",
		"This has been going on a while. That wears you down.",
		"You've been sitting with this too long. Let's figure it out.",
	}
)

// BuildAcknowledgment reflects the user's feelings and situation back in at
// most two sentences. It returns "" when there is nothing to acknowledge.
func BuildAcknowledgment(a types.MessageAnalysis, tone Tone, message string) string {
	parts := make([]string, 0, 4)

	if len(a.Emotions) > 0 {
		if line, ok := emotionAcks[a.Emotions[0]]; ok {
			parts = append(parts, line.For(tone))
		}
	}

	if len(a.Actions) > 0 {
		person := "they"
		if p, ok := a.MainPerson(); ok {
			person = p.Person
		}
		if line, ok := actionAck(a.Actions[0], tone, person); ok && !mentions(parts, person) {
			parts = append(parts, line)
		}
	}

	if len(a.KeyPhrases) > 0 {
		phrase := a.KeyPhrases[0]
		if n := utf8.RuneCountInString(phrase); n > 5 && n < 60 {
			parts = append(parts, quoteAck(phrase, tone))
		}
	}

	switch {
	case a.Timeframe == types.TimeframeRecent && a.Intensity == types.IntensityHigh:
		parts = append(parts, freshAck.For(tone))
	case a.Timeframe == types.TimeframeOngoing:
		parts = append(parts, ongoingAck.For(tone))
	}

	if len(parts) > maxAcknowledgmentParts {
		parts = parts[:maxAcknowledgmentParts]
	}
	return strings.Join(parts, " ")
}

// personWords covers every label extractPeople can produce plus the
// "they" fallback.
var personWords = []string{
	"boyfriend", "girlfriend", "partner", "ex", "best friend", "friend",
	"mom", "dad", "sister", "brother", "sibling",
	"boss", "manager", "coworker", "colleague",
	"he", "she", "they",
}

var personWordPatterns = compileWordPatterns(personWords)

func compileWordPatterns(words []string) map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(words))
	for _, w := range words {
		patterns[w] = wordPattern(w)
	}
	return patterns
}

func wordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}

// mentions reports whether any part already names person as a whole word,
// so "hear" does not count as mentioning "he".
func mentions(parts []string, person string) bool {
	re, ok := personWordPatterns[person]
	if !ok {
		re = wordPattern(person)
	}
	for _, p := range parts {
		if re.MatchString(p) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
