package companion

import (
	"clementus360/gal-bestfriend/types"
	"fmt"
	"math/rand"
)

func Greeting(tone Tone, name string) string {
	return tonal{
		fmt.Sprintf("Hi %s! I'm so glad you're here. This is a completely safe space — no judgment, just support. What's been on your mind?", name),
		fmt.Sprintf("Hey %s! I'm here to listen and help however I can. What's going on?", name),
		fmt.Sprintf("Hey %s. Let's get into it — what's happening?", name),
	}.For(tone)
}

var situationPrompts = map[types.Situation][]string{
	types.SituationFriendship: {
		"Tell me more about this friendship. How long have you two been close?",
		"What changed recently that brought this up?",
		"How are you feeling about it right now — more hurt, confused, or frustrated?",
	},
	types.SituationRomantic: {
		"How long have you two been together?",
		"What's the main thing that's been weighing on you?",
		"Is this a pattern, or did something specific happen?",
	},
	types.SituationFamily: {
		"Family stuff can be so complicated. Who's involved in this situation?",
		"Has this been building up for a while, or is it something recent?",
		"How is this affecting you day-to-day?",
	},
	types.SituationSelf: {
		"I'm here. Let it all out — what's on your mind?",
		"Sometimes we just need to process. What's the main thing you're feeling?",
		"Take your time. What do you need right now — to vent, to think out loud, or to get advice?",
	},
}

// SituationPrompt picks an opening question for the situation. It returns
// ok=false when the situation is unset or unknown.
func SituationPrompt(situation types.Situation, rng *rand.Rand) (string, bool) {
	prompts := situationPrompts[situation]
	if len(prompts) == 0 {
		return "", false
	}
	if rng == nil {
		return prompts[rand.Intn(len(prompts))], true
	}
	return prompts[rng.Intn(len(prompts))], true
}

// SituationPrompts lists the prompt bank for a situation.
func SituationPrompts(situation types.Situation) []string {
	return append([]string(nil), situationPrompts[situation]...)
}
