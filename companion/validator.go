package companion

import (
	"clementus360/gal-bestfriend/types"
	"strings"
	"unicode/utf8"
)

var (
	gentleMarkers = []string{"valid", "okay to feel", "no pressure", "take your time"}
	directMarkers = []string{"here's what", "real talk", "the move", "let's cut"}

	harmfulPatterns = []string{
		"you should break up",
		"they don't deserve you",
		"cut them off",
		"ghost them",
		"revenge",
		"make them jealous",
		"manipulate",
	}

	empathyMarkers = []string{
		"i hear", "i understand", "that sounds", "i'm here",
		"makes sense", "valid", "feeling", "appreciate",
		"thank you", "sharing", "trust",
	}

	actionableMarkers = []string{
		"try", "consider", "could", "suggest", "might",
		"?", "what", "how", "tell me", "think about",
	}

	validationTriggers = []string{"should i", "what do you think", "advice"}
)

const validationLengthThreshold = 50

// RunValidationChecks is the maker-checker pass. It is advisory: callers
// always let the user accept or regenerate regardless of the outcome.
func RunValidationChecks(response string, toneLevel int) types.ValidationResult {
	return types.ValidationResult{
		Tone:       ValidateTone(response, toneLevel),
		Safety:     ValidateSafety(response),
		Empathy:    ValidateEmpathy(response),
		Actionable: ValidateActionable(response),
	}
}

// ValidateTone only fails when gentle mode gets direct phrasing. The marker
// match is case-sensitive.
func ValidateTone(response string, toneLevel int) types.CheckResult {
	isGentle := containsAny(response, gentleMarkers)
	isDirect := containsAny(response, directMarkers)

	switch {
	case toneLevel <= 2 && isDirect:
		return types.CheckResult{Passed: false, Status: "May be too direct for gentle mode"}
	case toneLevel >= 4 && isGentle:
		return types.CheckResult{Passed: true, Status: "Balanced approach detected"}
	default:
		return types.CheckResult{Passed: true, Status: "Matches your preference"}
	}
}

func ValidateSafety(response string) types.CheckResult {
	if containsAny(strings.ToLower(response), harmfulPatterns) {
		return types.CheckResult{Passed: false, Status: "Contains potentially harmful advice"}
	}
	return types.CheckResult{Passed: true, Status: "No harmful content detected"}
}

func ValidateEmpathy(response string) types.CheckResult {
	lower := strings.ToLower(response)
	score := 0
	for _, m := range empathyMarkers {
		if strings.Contains(lower, m) {
			score++
		}
	}
	switch {
	case score >= 2:
		return types.CheckResult{Passed: true, Status: "Strong emotional acknowledgment"}
	case score == 1:
		return types.CheckResult{Passed: true, Status: "Acknowledges your feelings"}
	default:
		return types.CheckResult{Passed: false, Status: "Could be more empathetic"}
	}
}

func ValidateActionable(response string) types.CheckResult {
	if containsAny(strings.ToLower(response), actionableMarkers) {
		return types.CheckResult{Passed: true, Status: "Provides helpful guidance"}
	}
	return types.CheckResult{Passed: false, Status: "Lacks actionable insight"}
}

// ShouldValidate decides whether a locally crafted reply gets the
// maker-checker pass: long messages and advice-seeking ones do.
func ShouldValidate(message string) bool {
	return utf8.RuneCountInString(message) > validationLengthThreshold || containsAny(strings.ToLower(message), validationTriggers)
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
