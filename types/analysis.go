package types

type Relationship string

const (
	RelationshipRomantic   Relationship = "romantic"
	RelationshipFriendship Relationship = "friendship"
	RelationshipFamily     Relationship = "family"
	RelationshipWork       Relationship = "work"
	RelationshipUnknown    Relationship = "unknown"
)

type Action string

const (
	ActionCommunication  Action = "communication"
	ActionIgnored        Action = "ignored"
	ActionBetrayal       Action = "betrayal"
	ActionConflict       Action = "conflict"
	ActionEnding         Action = "ending"
	ActionReconciliation Action = "reconciliation"
	ActionArgument       Action = "argument"
	ActionBreakup        Action = "breakup"
	ActionDiscussion     Action = "discussion"
	ActionDiscovery      Action = "discovery"
	ActionUserAction     Action = "user_action"
)

type Emotion string

const (
	EmotionAngry        Emotion = "angry"
	EmotionFrustrated   Emotion = "frustrated"
	EmotionSad          Emotion = "sad"
	EmotionHurt         Emotion = "hurt"
	EmotionAnxious      Emotion = "anxious"
	EmotionConfused     Emotion = "confused"
	EmotionLonely       Emotion = "lonely"
	EmotionEmbarrassed  Emotion = "embarrassed"
	EmotionJealous      Emotion = "jealous"
	EmotionGuilty       Emotion = "guilty"
	EmotionBetrayed     Emotion = "betrayed"
	EmotionDisappointed Emotion = "disappointed"
	EmotionExhausted    Emotion = "exhausted"
	EmotionHopeless     Emotion = "hopeless"
	EmotionPreoccupied  Emotion = "preoccupied"
	EmotionOverwhelmed  Emotion = "overwhelmed"
)

type Intensity string

const (
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

type Timeframe string

const (
	TimeframeNone    Timeframe = "none"
	TimeframeRecent  Timeframe = "recent"
	TimeframeDays    Timeframe = "days"
	TimeframeWeeks   Timeframe = "weeks"
	TimeframeOngoing Timeframe = "ongoing"
)

// Person is someone the user mentioned, labelled canonically.
type Person struct {
	Person       string       `json:"person"`
	Relationship Relationship `json:"type"`
}

// IsPronoun reports whether the person was only captured as he/she/they.
func (p Person) IsPronoun() bool {
	switch p.Person {
	case "he", "she", "they":
		return true
	}
	return false
}

// MessageAnalysis is the structured summary of a single user utterance.
type MessageAnalysis struct {
	People     []Person  `json:"people"`
	Actions    []Action  `json:"actions"`
	Emotions   []Emotion `json:"emotions"`
	KeyPhrases []string  `json:"key_phrases"`
	Questions  []string  `json:"questions"`
	Timeframe  Timeframe `json:"timeframe"`
	Intensity  Intensity `json:"intensity"`
}

// MainPerson prefers a named relation over a bare pronoun.
func (a MessageAnalysis) MainPerson() (Person, bool) {
	for _, p := range a.People {
		if !p.IsPronoun() {
			return p, true
		}
	}
	if len(a.People) > 0 {
		return a.People[0], true
	}
	return Person{}, false
}

// NamedPerson returns the first non-pronoun person only.
func (a MessageAnalysis) NamedPerson() (Person, bool) {
	for _, p := range a.People {
		if !p.IsPronoun() {
			return p, true
		}
	}
	return Person{}, false
}

func (a MessageAnalysis) HasAction(actions ...Action) bool {
	for _, have := range a.Actions {
		for _, want := range actions {
			if have == want {
				return true
			}
		}
	}
	return false
}
