package companion

import (
	"clementus360/gal-bestfriend/types"
	"strings"
)

// QuestionIntent is one of the canned question shapes the responder knows.
type QuestionIntent string

const (
	IntentShouldText    QuestionIntent = "should-i-text"
	IntentShouldForgive QuestionIntent = "should-i-forgive"
	IntentShouldBreakUp QuestionIntent = "should-i-break-up"
	IntentAmIWrong      QuestionIntent = "am-i-wrong"
	IntentGeneric       QuestionIntent = "generic"
)

var questionAnswers = map[QuestionIntent]tonal{
	IntentShouldText: {
		"Before reaching out, check in with yourself — what do you hope to get from that conversation? Make sure you're in a space where any response (or non-response) won't knock you off your feet.",
		"Here's my take: only reach out if you're okay with any outcome — including silence. What would you want to say if you did text?",
		"Real question: what do you actually want from texting them? If you're hoping for a specific response, you might be setting yourself up. What's your gut saying?",
	},
	IntentShouldForgive: {
		"Forgiveness is a personal journey, not an obligation. It's okay to take all the time you need. What would forgiving look like for you? It doesn't have to mean going back to how things were.",
		"Forgiveness isn't about them — it's about whether holding onto this is serving you. But forgiving doesn't mean forgetting or even reconciling. What do YOU need to move forward?",
		"Here's the real question: has anything actually changed? Forgiveness without change just sets you up to get hurt the same way again. What's different now?",
	},
	IntentShouldBreakUp: {
		"That's such a big decision, and only you can make it. But ask yourself: when you imagine your life six months from now, what feels more like relief? Staying or leaving?",
		"Big question. Here's what I'd ask: Is this a rough patch in an otherwise good relationship, or is this the relationship? There's a difference between fighting FOR something and just fighting.",
		"Here's how I'd think about it: Are you trying to fix something fixable, or are you just avoiding the pain of ending it? Sometimes we stay because leaving is hard, not because staying is right.",
	},
	IntentAmIWrong: {
		"Your feelings are not wrong — they're information. Even if your reaction feels big, it's pointing to something real that matters to you. What do you think triggered such a strong response?",
		"You're not crazy for feeling what you feel. The question isn't whether your reaction is 'right' — it's whether it matches what actually happened. Walk me through it.",
		"Let's figure that out together. Tell me exactly what happened and how you reacted. Sometimes we overreact, sometimes people gaslight us into thinking we are. Let's look at the facts.",
	},
	IntentGeneric: {
		"That's a really important question to be asking yourself. What does your intuition say, underneath all the noise?",
		"Good question. Let's think through it — what are the actual options here, and what are the real consequences of each?",
		"Alright, let's work through this. What are you really asking — and what answer are you hoping I won't give you?",
	},
}

// MatchQuestionIntent finds the first canned intent in a lowercased message.
func MatchQuestionIntent(lower string) QuestionIntent {
	has := func(s string) bool { return strings.Contains(lower, s) }
	switch {
	case has("should i text") || has("should i message") || has("should i reach out"):
		return IntentShouldText
	case has("should i forgive") || (has("should i give") && has("chance")):
		return IntentShouldForgive
	case has("should i break up") || has("should i end") || has("should i leave"):
		return IntentShouldBreakUp
	case has("am i wrong") || has("am i overreacting") || has("am i crazy"):
		return IntentAmIWrong
	default:
		return IntentGeneric
	}
}

// BuildAdvice answers a detected question, or otherwise picks situational
// advice. situation is the profile's situation, used when the message names
// nobody specific.
func BuildAdvice(a types.MessageAnalysis, tone Tone, focus types.FocusArea, situation types.Situation, message string) string {
	lower := strings.ToLower(message)
	if len(a.Questions) > 0 {
		return buildQuestionResponse(tone, lower)
	}
	return buildSituationalAdvice(a, tone, focus, situation, lower)
}

func buildQuestionResponse(tone Tone, lower string) string {
	return questionAnswers[MatchQuestionIntent(lower)].For(tone)
}

var (
	ventingPrompt = tonal{
		"I'm here to listen. Is there more you need to get out, or would it help to think through next steps?",
		"I hear you. Do you want to keep venting, or are you ready to figure out what to do?",
		"Got it. Needed to get that out? Or are you ready to talk about what to do?",
	}
	romanticConflictAdvice = tonal{
		"When things cool down, it might help to revisit this conversation — but from a place of curiosity instead of defense. Something like 'I want to understand what you were feeling when...'",
		"Once things settle, try having the conversation again but slower. Focus on understanding each other, not winning. 'I felt X when Y happened' works better than accusations.",
		"Look — fighting happens. But how you repair matters. When you're both calm, address what actually triggered this. Don't let it fester.",
	}
	familyConflictAdvice = tonal{
		"Family conflicts hit different because the history runs deep. Sometimes the argument isn't about what it seems — it's about older patterns. Can you see any of those at play here?",
		"Family stuff is layered. This fight might be connected to older dynamics. The question is: what boundary do you need here, regardless of whether they understand it?",
		"Family drama usually isn't about the thing you're fighting about. What's the real issue underneath? And what boundary do you need to set?",
	}
	conflictAdvice = tonal{
		"Give yourself permission to step back before deciding how to respond. Sometimes space creates clarity.",
		"Before you respond, get clear on what outcome you actually want. That should guide what you say.",
		"What do you want to happen here? Figure that out first, then we can work backwards on what to do.",
	}
	endingAdvice = tonal{
		"Endings are hard, even when they might be right. For now, focus on getting through each day. The clarity will come. What's one small thing you can do to take care of yourself today?",
		"This is a transition. It's going to hurt for a while, and that's normal. Focus on what you can control — your routines, your support system, your next steps.",
		"It's over. That's painful but also potentially freeing. What do you need right now — to grieve, to move forward, or just to sit with it for a bit?",
	}
	perspectiveAdvice = tonal{
		"Sometimes stepping back helps. If a friend told you this exact story, what would you say to them? We're often wiser for others than ourselves.",
		"Let's zoom out. What would this situation look like from the outside? And what might you be missing from their perspective?",
		"Okay, different angle: what's the most generous interpretation of their behavior? I'm not saying it's correct, but what might they say if they were defending themselves?",
	}
	practicalAdvice = tonal{
		"When you're ready, one small step might help: write out what you want to happen, then we can work backwards from there.",
		"Let's get practical. What's the ONE thing you could do this week that would move this forward — even a little?",
		"Action time. What's the move here? What can you actually do about this situation?",
	}
	genericFollowUp = tonal{
		"Thank you for sharing all of that. What feels like the most important thing to focus on right now?",
		"I'm following. What do you think you need most right now — to process this more, or to figure out next steps?",
		"Okay, I've got the picture. What do you want to do about it?",
	}
)

// buildSituationalAdvice evaluates branches in a fixed priority: venting
// pacing, conflict, ending, perspective, practical, generic.
func buildSituationalAdvice(a types.MessageAnalysis, tone Tone, focus types.FocusArea, situation types.Situation, lower string) string {
	if focus == types.FocusEmotional && !strings.Contains(lower, "?") && len(a.Emotions) > 0 {
		return ventingPrompt.For(tone)
	}

	if a.HasAction(types.ActionConflict, types.ActionArgument, types.ActionBetrayal) {
		switch conflictCategory(a, situation) {
		case types.RelationshipRomantic:
			return romanticConflictAdvice.For(tone)
		case types.RelationshipFamily:
			return familyConflictAdvice.For(tone)
		default:
			return conflictAdvice.For(tone)
		}
	}

	if a.HasAction(types.ActionEnding, types.ActionBreakup, types.ActionIgnored) {
		return endingAdvice.For(tone)
	}

	switch focus {
	case types.FocusPerspective:
		return perspectiveAdvice.For(tone)
	case types.FocusPractical:
		return practicalAdvice.For(tone)
	default:
		return genericFollowUp.For(tone)
	}
}

func conflictCategory(a types.MessageAnalysis, situation types.Situation) types.Relationship {
	if p, ok := a.NamedPerson(); ok {
		return p.Relationship
	}
	switch situation {
	case types.SituationRomantic:
		return types.RelationshipRomantic
	case types.SituationFamily:
		return types.RelationshipFamily
	case types.SituationFriendship:
		return types.RelationshipFriendship
	default:
		return types.RelationshipUnknown
	}
}
