package companion

import (
	"clementus360/gal-bestfriend/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAcknowledgment_EmotionThenAction(t *testing.T) {
	msg := "I'm so angry, he ignored me for three days"
	got := BuildAcknowledgment(Analyze(msg), Gentle, msg)

	assert.Equal(t,
		"I can hear how angry you are, and that anger is valid. "+
			"Being ignored by he — especially when you need a response — that hurts.",
		got)
}

func TestBuildAcknowledgment_KeepsFirstTwoParts(t *testing.T) {
	msg := `My mom yelled "you are so selfish" and I'm so hurt, this has been going on for months`
	got := BuildAcknowledgment(Analyze(msg), Balanced, msg)

	assert.Equal(t, "That's hurtful. No wonder you're upset. Mom blowing up like that isn't fair to you.", got)
	assert.NotContains(t, got, "you are so selfish")
	assert.NotContains(t, got, "going on a while")
}

func TestBuildAcknowledgment_QuoteAndTimeframe(t *testing.T) {
	a := types.MessageAnalysis{
		KeyPhrases: []string{"you're too needy"},
		Timeframe:  types.TimeframeRecent,
		Intensity:  types.IntensityHigh,
	}
	got := BuildAcknowledgment(a, Direct, "")
	assert.Equal(t, `"you're too needy" — ouch. Let's address that. This literally just happened. Your head's probably spinning.`, got)
}

func TestBuildAcknowledgment_RecentNeedsHighIntensity(t *testing.T) {
	a := types.MessageAnalysis{Timeframe: types.TimeframeRecent, Intensity: types.IntensityMedium}
	assert.Empty(t, BuildAcknowledgment(a, Balanced, ""))

	a.Timeframe = types.TimeframeOngoing
	assert.Equal(t, "This has been going on a while. That wears you down.", BuildAcknowledgment(a, Balanced, ""))
}

func TestBuildAcknowledgment_ShortQuoteSkipped(t *testing.T) {
	a := types.MessageAnalysis{KeyPhrases: []string{"leave"}}
	assert.Empty(t, BuildAcknowledgment(a, Gentle, ""))
}

func TestBuildAcknowledgment_QuoteLengthCountsCharacters(t *testing.T) {
	phrase := strings.Repeat("é", 30)
	a := types.MessageAnalysis{KeyPhrases: []string{phrase}}
	assert.Equal(t, `"`+phrase+`" — ouch. Let's address that.`, BuildAcknowledgment(a, Direct, ""))
}

func TestMentions(t *testing.T) {
	assert.True(t, mentions([]string{"Your Boss is out of line."}, "boss"))
	assert.False(t, mentions([]string{"I hear you."}, "he"))
	assert.True(t, mentions([]string{"Your best friend should know better."}, "best friend"))
	assert.True(t, mentions([]string{"Tell Sam."}, "sam"))
	for _, w := range personWords {
		assert.Contains(t, personWordPatterns, w)
	}
}

func TestBuildAcknowledgment_ActionWithoutLineIsSkipped(t *testing.T) {
	a := types.MessageAnalysis{Actions: []types.Action{types.ActionCommunication}}
	assert.Empty(t, BuildAcknowledgment(a, Balanced, ""))
}

func TestBuildAcknowledgment_DefaultPersonIsThey(t *testing.T) {
	a := types.MessageAnalysis{Actions: []types.Action{types.ActionBetrayal}}
	assert.Equal(t, "They betrayed you. That's facts.", BuildAcknowledgment(a, Direct, ""))
}

func TestBuildAcknowledgment_SkipsActionWhenPersonAlreadyNamed(t *testing.T) {
	a := types.MessageAnalysis{
		People:   []types.Person{{Person: "they", Relationship: types.RelationshipUnknown}},
		Emotions: []types.Emotion{types.EmotionJealous},
		Actions:  []types.Action{types.ActionIgnored},
	}
	got := BuildAcknowledgment(a, Gentle, "")
	assert.Equal(t, "Those feelings are natural, even when they're uncomfortable.", got)

	a.Emotions = []types.Emotion{types.EmotionLonely}
	got = BuildAcknowledgment(a, Gentle, "")
	assert.Equal(t, "Feeling lonely like that is really hard. "+
		"Being ignored by they — especially when you need a response — that hurts.", got)

	a.Emotions = []types.Emotion{types.EmotionAngry}
	a.People = []types.Person{{Person: "anyone", Relationship: types.RelationshipUnknown}}
	got = BuildAcknowledgment(a, Balanced, "")
	assert.Equal(t, "I get why you're angry — that would set anyone off.", got)
}

func TestBuildAcknowledgment_Empty(t *testing.T) {
	assert.Empty(t, BuildAcknowledgment(Analyze(""), Balanced, ""))
}
