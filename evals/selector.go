package evals

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// KeywordRule maps request words to a tool. IDArgs names the integer
// arguments the tool takes, filled in order from numbers in the request.
type KeywordRule struct {
	Tool     string
	Keywords []string
	IDArgs   []string
}

// DefaultRules is a keyword baseline for the LowCode tool catalogue.
// Rules earlier in the list win ties.
var DefaultRules = []KeywordRule{
	{Tool: "lowcode_health_check", Keywords: []string{"health", "healthy", "reachable", "down", "alive"}},
	{Tool: "lowcode_get_version", Keywords: []string{"version", "release"}},
	{Tool: "lowcode_get_user_info", Keywords: []string{"account", "profile", "logged", "who", "whoami"}},
	{Tool: "lowcode_list_bots", Keywords: []string{"bots"}},
	{Tool: "lowcode_get_bot_status", Keywords: []string{"bot", "status", "running", "state"}, IDArgs: []string{"bot_id"}},
	{Tool: "lowcode_start_bot", Keywords: []string{"bot", "start", "launch", "enable"}, IDArgs: []string{"bot_id"}},
	{Tool: "lowcode_stop_bot", Keywords: []string{"bot", "stop", "halt", "disable", "shut"}, IDArgs: []string{"bot_id"}},
	{Tool: "lowcode_list_templates", Keywords: []string{"templates"}},
	{Tool: "lowcode_apply_template", Keywords: []string{"apply", "template", "bot"}, IDArgs: []string{"template_id", "bot_id"}},
	{Tool: "lowcode_get_template", Keywords: []string{"template", "show", "details"}, IDArgs: []string{"template_id"}},
	{Tool: "lowcode_list_media", Keywords: []string{"media", "files", "uploads", "images"}},
	{Tool: "lowcode_list_components", Keywords: []string{"components", "widgets", "blocks", "editor"}},
	{Tool: "lowcode_get_statistics", Keywords: []string{"statistics", "stats", "usage", "platform"}},
}

var numberPattern = regexp.MustCompile(`\d+`)

// KeywordSelector is a deterministic ToolSelector that scores each rule by
// how many of its keywords appear as words in the request.
type KeywordSelector struct {
	rules []KeywordRule
}

// NewKeywordSelector creates a selector from rules; nil uses DefaultRules
func NewKeywordSelector(rules []KeywordRule) *KeywordSelector {
	if rules == nil {
		rules = DefaultRules
	}
	return &KeywordSelector{rules: rules}
}

// Rules returns the rules the selector scores against
func (s *KeywordSelector) Rules() []KeywordRule {
	return s.rules
}

// SelectTool implements ToolSelector. A request matching no keyword selects
// no tool and returns empty args.
func (s *KeywordSelector) SelectTool(input string) (string, map[string]any, error) {
	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(strings.ToLower(input), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		words[w] = true
	}

	best, bestScore := -1, 0
	for i, rule := range s.rules {
		score := 0
		for _, kw := range rule.Keywords {
			if words[kw] {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	args := make(map[string]any)
	if best < 0 {
		return "", args, nil
	}

	rule := s.rules[best]
	numbers := numberPattern.FindAllString(input, len(rule.IDArgs))
	for i, n := range numbers {
		id, err := strconv.Atoi(n)
		if err != nil {
			continue
		}
		args[rule.IDArgs[i]] = id
	}
	return rule.Tool, args, nil
}
