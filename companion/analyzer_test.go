package companion

import (
	"clementus360/gal-bestfriend/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_EmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t"} {
		a := Analyze(in)
		assert.Empty(t, a.People)
		assert.Empty(t, a.Actions)
		assert.Empty(t, a.Emotions)
		assert.Empty(t, a.KeyPhrases)
		assert.Empty(t, a.Questions)
		assert.Equal(t, types.TimeframeNone, a.Timeframe)
		assert.Equal(t, types.IntensityMedium, a.Intensity)
	}
}

func TestAnalyze_AngryAndIgnored(t *testing.T) {
	a := Analyze("I'm so angry, he ignored me for three days")

	assert.Equal(t, []types.Emotion{types.EmotionAngry}, a.Emotions)
	assert.Equal(t, types.IntensityHigh, a.Intensity)
	assert.Equal(t, []types.Action{types.ActionIgnored}, a.Actions)
	assert.Equal(t, []types.Person{{Person: "he", Relationship: types.RelationshipUnknown}}, a.People)
	assert.Equal(t, types.TimeframeNone, a.Timeframe)
}

func TestAnalyze_People(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []types.Person
	}{
		{
			name: "relation word becomes the label",
			in:   "My sister and my boss both think so",
			want: []types.Person{
				{Person: "sister", Relationship: types.RelationshipFamily},
				{Person: "boss", Relationship: types.RelationshipWork},
			},
		},
		{
			name: "named relation before pronoun",
			in:   "my bf said he was busy",
			want: []types.Person{
				{Person: "boyfriend", Relationship: types.RelationshipRomantic},
				{Person: "he", Relationship: types.RelationshipUnknown},
			},
		},
		{
			name: "duplicates collapse",
			in:   "my friend and another friend",
			want: []types.Person{{Person: "friend", Relationship: types.RelationshipFriendship}},
		},
		{
			name: "no people",
			in:   "nothing to see here",
			want: []types.Person{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze(tt.in).People)
		})
	}
}

func TestAnalyze_ActionsKeepRuleOrder(t *testing.T) {
	a := Analyze("we argued and then he left")
	assert.Equal(t, []types.Action{types.ActionEnding, types.ActionArgument}, a.Actions)
}

func TestAnalyze_KeyPhrases(t *testing.T) {
	a := Analyze(`She said "you never listen to me" and walked off`)
	require.NotEmpty(t, a.KeyPhrases)
	assert.Equal(t, "you never listen to me", a.KeyPhrases[0])

	a = Analyze("He told me that I was too much. Then nothing.")
	assert.Contains(t, a.KeyPhrases, "I was too much")

	a = Analyze(`she said "ok"`)
	for _, p := range a.KeyPhrases {
		assert.NotEqual(t, "ok", p)
	}
}

func TestAnalyze_KeyPhraseLengthCountsCharacters(t *testing.T) {
	accented := strings.Repeat("é", 60)
	a := Analyze(`she said "` + accented + `"`)
	assert.Contains(t, a.KeyPhrases, accented)

	a = Analyze(`she said "` + strings.Repeat("é", 100) + `"`)
	assert.NotContains(t, a.KeyPhrases, strings.Repeat("é", 100))
}

func TestAnalyze_IntensifiedFirstPerson(t *testing.T) {
	assert.Equal(t, types.IntensityHigh, Analyze("i honestly can't do this").Intensity)
	assert.Equal(t, types.IntensityMedium, Analyze("you honestly can't do this").Intensity)
}

func TestAnalyze_Questions(t *testing.T) {
	assert.Equal(t, []string{"Should I text him back?"}, Analyze("Should I text him back?").Questions)
	assert.Contains(t, Analyze("honestly am i overreacting here").Questions, "am i overreacting")
	assert.Empty(t, Analyze("I should text him back.").Questions)
}

func TestAnalyze_TimeframePriority(t *testing.T) {
	tests := []struct {
		in   string
		want types.Timeframe
	}{
		{"this morning it started, but it's been going on for a while", types.TimeframeRecent},
		{"yesterday and also last week", types.TimeframeDays},
		{"it happened last week", types.TimeframeWeeks},
		{"this has been going on for months", types.TimeframeOngoing},
		{"no idea when", types.TimeframeNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Analyze(tt.in).Timeframe, tt.in)
	}
}

func TestAnalyze_IntensityOverride(t *testing.T) {
	tests := []struct {
		in   string
		want types.Intensity
	}{
		{"he NEVER listens", types.IntensityHigh},
		{"why would she do that!!", types.IntensityHigh},
		{"I really miss her", types.IntensityHigh},
		{"I am a bit nervous about tomorrow", types.IntensityMedium},
		{"ok", types.IntensityMedium},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Analyze(tt.in).Intensity, tt.in)
	}
}

func TestAnalyze_HighIntensityIsSticky(t *testing.T) {
	a := Analyze("I'm heartbroken and a little worried")
	assert.Equal(t, []types.Emotion{types.EmotionSad, types.EmotionAnxious}, a.Emotions)
	assert.Equal(t, types.IntensityHigh, a.Intensity)
}
