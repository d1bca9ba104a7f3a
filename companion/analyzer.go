package companion

import (
	"clementus360/gal-bestfriend/types"
	"regexp"
	"strings"
	"unicode/utf8"
)

type personRule struct {
	pattern      *regexp.Regexp
	label        string // empty means use the matched relation word
	relationship types.Relationship
}

var personRules = []personRule{
	{regexp.MustCompile(`(?i)\b(my |the )?(boyfriend|bf)\b`), "boyfriend", types.RelationshipRomantic},
	{regexp.MustCompile(`(?i)\b(my |the )?(girlfriend|gf)\b`), "girlfriend", types.RelationshipRomantic},
	{regexp.MustCompile(`(?i)\b(my |the )?(partner|spouse|husband|wife)\b`), "partner", types.RelationshipRomantic},
	{regexp.MustCompile(`(?i)\b(my |the )?(ex)\b`), "ex", types.RelationshipRomantic},
	{regexp.MustCompile(`(?i)\b(my |the )?(best friend|bestie|bff)\b`), "best friend", types.RelationshipFriendship},
	{regexp.MustCompile(`(?i)\b(my |the |a )?(friend|buddy)\b`), "friend", types.RelationshipFriendship},
	{regexp.MustCompile(`(?i)\b(my |the )?(mom|mother|mum)\b`), "mom", types.RelationshipFamily},
	{regexp.MustCompile(`(?i)\b(my |the )?(dad|father)\b`), "dad", types.RelationshipFamily},
	{regexp.MustCompile(`(?i)\b(my |the )?(sister|brother|sibling)\b`), "", types.RelationshipFamily},
	{regexp.MustCompile(`(?i)\b(my |the )?(boss|manager|coworker|colleague)\b`), "", types.RelationshipWork},
	{regexp.MustCompile(`(?i)\bhe\b`), "he", types.RelationshipUnknown},
	{regexp.MustCompile(`(?i)\bshe\b`), "she", types.RelationshipUnknown},
	{regexp.MustCompile(`(?i)\bthey\b`), "they", types.RelationshipUnknown},
}

type actionRule struct {
	pattern *regexp.Regexp
	action  types.Action
}

var actionRules = []actionRule{
	{regexp.MustCompile(`(?i)(?:he|she|they|my \w+) (said|told me|texted|called|messaged)`), types.ActionCommunication},
	{regexp.MustCompile(`(?i)(?:he|she|they|my \w+) (ignored|ghosted|left me on read|didn't respond|didn't reply)`), types.ActionIgnored},
	{regexp.MustCompile(`(?i)(?:he|she|they|my \w+) (lied|cheated|betrayed|broke my trust)`), types.ActionBetrayal},
	{regexp.MustCompile(`(?i)(?:he|she|they|my \w+) (yelled|screamed|got angry|blew up)`), types.ActionConflict},
	{regexp.MustCompile(`(?i)(?:he|she|they|my \w+) (left|broke up|ended|walked away|moved out)`), types.ActionEnding},
	{regexp.MustCompile(`(?i)(?:he|she|they|my \w+) (apologized|said sorry|reached out)`), types.ActionReconciliation},
	{regexp.MustCompile(`(?i)we (fought|argued|had a fight|disagreed)`), types.ActionArgument},
	{regexp.MustCompile(`(?i)we (broke up|split|ended things)`), types.ActionBreakup},
	{regexp.MustCompile(`(?i)we (talked|discussed|had a conversation)`), types.ActionDiscussion},
	{regexp.MustCompile(`(?i)i (found out|discovered|realized|saw)`), types.ActionDiscovery},
	{regexp.MustCompile(`(?i)i (told|said|texted|called|confronted)`), types.ActionUserAction},
}

type emotionRule struct {
	pattern   *regexp.Regexp
	emotion   types.Emotion
	intensity types.Intensity
}

var emotionRules = []emotionRule{
	{regexp.MustCompile(`(?i)\b(angry|furious|pissed|mad|livid)\b`), types.EmotionAngry, types.IntensityHigh},
	{regexp.MustCompile(`(?i)\b(annoyed|irritated|frustrated)\b`), types.EmotionFrustrated, types.IntensityMedium},
	{regexp.MustCompile(`(?i)\b(sad|depressed|down|low|devastated|heartbroken)\b`), types.EmotionSad, types.IntensityHigh},
	{regexp.MustCompile(`(?i)\b(hurt|wounded|crushed|broken)\b`), types.EmotionHurt, types.IntensityHigh},
	{regexp.MustCompile(`(?i)\b(anxious|worried|nervous|scared|afraid)\b`), types.EmotionAnxious, types.IntensityMedium},
	{regexp.MustCompile(`(?i)\b(confused|lost|uncertain|torn)\b`), types.EmotionConfused, types.IntensityMedium},
	{regexp.MustCompile(`(?i)\b(lonely|alone|isolated)\b`), types.EmotionLonely, types.IntensityMedium},
	{regexp.MustCompile(`(?i)\b(embarrassed|ashamed|humiliated)\b`), types.EmotionEmbarrassed, types.IntensityMedium},
	{regexp.MustCompile(`(?i)\b(jealous|envious)\b`), types.EmotionJealous, types.IntensityMedium},
	{regexp.MustCompile(`(?i)\b(guilty|regret|remorse)\b`), types.EmotionGuilty, types.IntensityMedium},
	{regexp.MustCompile(`(?i)\b(betrayed|deceived)\b`), types.EmotionBetrayed, types.IntensityHigh},
	{regexp.MustCompile(`(?i)\b(disappointed|let down)\b`), types.EmotionDisappointed, types.IntensityMedium},
	{regexp.MustCompile(`(?i)\b(exhausted|tired|drained)\b`), types.EmotionExhausted, types.IntensityMedium},
	{regexp.MustCompile(`(?i)\b(hopeless|helpless|stuck)\b`), types.EmotionHopeless, types.IntensityHigh},
	{regexp.MustCompile(`(?i)\bi (can't stop thinking|keep thinking|can't get over)\b`), types.EmotionPreoccupied, types.IntensityMedium},
	{regexp.MustCompile(`(?i)\bi (don't know what to (do|feel|think))\b`), types.EmotionOverwhelmed, types.IntensityMedium},
}

var keyPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`"([^"]+)"`),
	regexp.MustCompile(`(?i)said ["']?([^"']+)["']?`),
	regexp.MustCompile(`(?i)told me (?:that )?["']?([^"'.!?]+)`),
	regexp.MustCompile(`(?i)called me (?:a )?["']?([^"'.!?]+)`),
}

var questionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)should i ([^?]+)\?`),
	regexp.MustCompile(`(?i)what (should|do|can|would) i ([^?]+)\?`),
	regexp.MustCompile(`(?i)how (do|can|should) i ([^?]+)\?`),
	regexp.MustCompile(`(?i)is it (wrong|okay|normal|weird) (to |if |that )?([^?]+)\?`),
	regexp.MustCompile(`(?i)am i (wrong|crazy|overreacting|being too)`),
	regexp.MustCompile(`(?i)do you think ([^?]+)\?`),
}

// Checked in order; the first bucket that matches wins.
var timeframeRules = []struct {
	pattern   *regexp.Regexp
	timeframe types.Timeframe
}{
	{regexp.MustCompile(`(?i)\b(today|just now|just happened|earlier|this morning|tonight)\b`), types.TimeframeRecent},
	{regexp.MustCompile(`(?i)\b(yesterday|last night|few days ago)\b`), types.TimeframeDays},
	{regexp.MustCompile(`(?i)\b(last week|few weeks|this week)\b`), types.TimeframeWeeks},
	{regexp.MustCompile(`(?i)\b(months|been going on|for a while|long time)\b`), types.TimeframeOngoing},
}

var (
	repeatedBang = regexp.MustCompile(`!{2,}`)
	shoutingRun  = regexp.MustCompile(`[A-Z]{5,}`)
	intensifiedI = regexp.MustCompile(`(?i)\bi (really|truly|seriously|genuinely|honestly)\b`)
)

const (
	minKeyPhraseLen = 3
	maxKeyPhraseLen = 99
)

// Analyze runs the rule battery over a message. Empty input is valid and
// yields empty collections, no timeframe and medium intensity.
func Analyze(message string) types.MessageAnalysis {
	a := types.MessageAnalysis{
		People:     []types.Person{},
		Actions:    []types.Action{},
		Emotions:   []types.Emotion{},
		KeyPhrases: []string{},
		Questions:  []string{},
		Timeframe:  types.TimeframeNone,
		Intensity:  types.IntensityMedium,
	}
	if strings.TrimSpace(message) == "" {
		return a
	}

	a.People = extractPeople(message)

	for _, rule := range actionRules {
		if rule.pattern.MatchString(message) {
			a.Actions = append(a.Actions, rule.action)
		}
	}

	for _, rule := range emotionRules {
		if rule.pattern.MatchString(message) {
			a.Emotions = append(a.Emotions, rule.emotion)
			if rule.intensity == types.IntensityHigh {
				a.Intensity = types.IntensityHigh
			}
		}
	}

	for _, pattern := range keyPhrasePatterns {
		for _, m := range pattern.FindAllStringSubmatch(message, -1) {
			if n := utf8.RuneCountInString(m[1]); n >= minKeyPhraseLen && n <= maxKeyPhraseLen {
				a.KeyPhrases = append(a.KeyPhrases, strings.TrimSpace(m[1]))
			}
		}
	}

	for _, pattern := range questionPatterns {
		a.Questions = append(a.Questions, pattern.FindAllString(message, -1)...)
	}

	for _, rule := range timeframeRules {
		if rule.pattern.MatchString(message) {
			a.Timeframe = rule.timeframe
			break
		}
	}

	if repeatedBang.MatchString(message) || shoutingRun.MatchString(message) || intensifiedI.MatchString(message) {
		a.Intensity = types.IntensityHigh
	}

	return a
}

func extractPeople(message string) []types.Person {
	people := []types.Person{}
	seen := map[string]bool{}
	for _, rule := range personRules {
		m := rule.pattern.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		label := rule.label
		if label == "" {
			label = strings.ToLower(m[2])
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		people = append(people, types.Person{Person: label, Relationship: rule.relationship})
	}
	return people
}
