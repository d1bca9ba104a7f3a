package types

type CheckResult struct {
	Passed bool   `json:"passed"`
	Status string `json:"status"`
}

// ValidationResult is the maker-checker report for one candidate reply.
type ValidationResult struct {
	Tone       CheckResult `json:"tone"`
	Safety     CheckResult `json:"safety"`
	Empathy    CheckResult `json:"empathy"`
	Actionable CheckResult `json:"actionable"`
}

func (v ValidationResult) AllPassed() bool {
	return v.Tone.Passed && v.Safety.Passed && v.Empathy.Passed && v.Actionable.Passed
}
