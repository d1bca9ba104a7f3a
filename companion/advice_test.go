package companion

import (
	"clementus360/gal-bestfriend/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func advise(msg string, tone Tone, focus types.FocusArea, situation types.Situation) string {
	return BuildAdvice(Analyze(msg), tone, focus, situation, msg)
}

func TestBuildAdvice_ShouldITextRoutesToQuestionResponder(t *testing.T) {
	msg := "Should I text him back?"
	canned := questionAnswers[IntentShouldText]

	for level := types.MinToneLevel; level <= types.MaxToneLevel; level++ {
		got := advise(msg, ToneFor(level), types.FocusEmotional, types.SituationRomantic)
		assert.Contains(t, []string{canned.gentle, canned.balanced, canned.direct}, got)
		assert.Equal(t, canned.For(ToneFor(level)), got)
	}

	assert.Equal(t,
		"Here's my take: only reach out if you're okay with any outcome — including silence. What would you want to say if you did text?",
		advise(msg, Balanced, types.FocusPractical, types.SituationSelf))
}

func TestMatchQuestionIntent(t *testing.T) {
	tests := []struct {
		in   string
		want QuestionIntent
	}{
		{"should i reach out to her?", IntentShouldText},
		{"should i forgive him?", IntentShouldForgive},
		{"should i give him another chance?", IntentShouldForgive},
		{"should i give up?", IntentGeneric},
		{"should i leave?", IntentShouldBreakUp},
		{"am i crazy for this?", IntentAmIWrong},
		{"how do i tell her?", IntentGeneric},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchQuestionIntent(tt.in), tt.in)
	}
}

func TestBuildAdvice_VentingPacing(t *testing.T) {
	msg := "I'm so angry, he ignored me for three days"
	assert.Equal(t,
		"I'm here to listen. Is there more you need to get out, or would it help to think through next steps?",
		advise(msg, Gentle, types.FocusEmotional, types.SituationRomantic))

	// With a practical focus the ending branch answers instead.
	assert.Equal(t, endingAdvice.gentle, advise(msg, Gentle, types.FocusPractical, types.SituationRomantic))
}

func TestBuildAdvice_ConflictOutranksPerspective(t *testing.T) {
	got := advise("my boyfriend yelled at me", Direct, types.FocusPerspective, types.SituationSelf)
	assert.Equal(t, romanticConflictAdvice.direct, got)
}

func TestBuildAdvice_ConflictFallsBackToProfileSituation(t *testing.T) {
	assert.Equal(t, familyConflictAdvice.balanced,
		advise("we argued again", Balanced, types.FocusPractical, types.SituationFamily))
	assert.Equal(t, conflictAdvice.balanced,
		advise("we argued again", Balanced, types.FocusPractical, types.SituationFriendship))
	assert.Equal(t, conflictAdvice.balanced,
		advise("we argued again", Balanced, types.FocusPractical, ""))
}

func TestBuildAdvice_NamedPersonBeatsSituation(t *testing.T) {
	got := advise("my dad lied about it", Gentle, types.FocusPractical, types.SituationRomantic)
	assert.Equal(t, familyConflictAdvice.gentle, got)
}

func TestBuildAdvice_FocusBranches(t *testing.T) {
	msg := "I want to understand my coworker"
	assert.Equal(t, perspectiveAdvice.balanced, advise(msg, Balanced, types.FocusPerspective, types.SituationSelf))
	assert.Equal(t, practicalAdvice.balanced, advise(msg, Balanced, types.FocusPractical, types.SituationSelf))
	assert.Equal(t, genericFollowUp.balanced, advise(msg, Balanced, types.FocusEmotional, types.SituationSelf))
}

func TestBuildAdvice_EndingBranch(t *testing.T) {
	assert.Equal(t, endingAdvice.direct, advise("she ghosted me", Direct, types.FocusPractical, types.SituationFriendship))
}

func TestBuildAdvice_UnknownFocusUsesGenericFollowUp(t *testing.T) {
	got := advise("just checking in", Gentle, types.FocusArea("astrology"), types.SituationSelf)
	assert.Equal(t, genericFollowUp.gentle, got)
}
