// Package detect implements the two-stage scam classifier gate.
package detect

import (
	"regexp"
	"strings"
)

// Heuristic is the cheap local pre-filter run before the AI classifier. It is
// a pure text match and must stay side-effect free.
type Heuristic func(text string) bool

// scamPatterns matches messages with the hallmarks of common payment and
// phishing scams. The rule set is tunable policy, not a guarantee; anything
// it flags still goes through AI confirmation.
var scamPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(kyc|aadhaa?r|pan\s*card)\b`),
	regexp.MustCompile(`(?i)\baccount\b.{0,30}\b(blocked|suspended|frozen|deactivat)`),
	regexp.MustCompile(`(?i)\b(verify|update|confirm)\b.{0,30}\b(account|card|details|identity)\b`),
	regexp.MustCompile(`(?i)\botp\b`),
	regexp.MustCompile(`(?i)\b(lottery|prize|jackpot|lucky\s*draw)\b`),
	regexp.MustCompile(`(?i)\brefund\b`),
	regexp.MustCompile(`(?i)\b(urgent|immediately|within\s*\d+\s*(minutes|hours))\b`),
	regexp.MustCompile(`(?i)\b(pay|send|transfer)\b.{0,30}\b(money|amount|fee|fine|rs\.?|rupees|inr)\b`),
	regexp.MustCompile(`(?i)\bupi\b`),
	regexp.MustCompile(`(?i)\b(electricity|power)\b.{0,30}\b(disconnect|cut)`),
	regexp.MustCompile(`(?i)\b(customs|police|cbi|income\s*tax)\b.{0,40}\b(case|seized|warrant|notice)\b`),
	regexp.MustCompile(`(?i)\bclick\b.{0,20}\blink\b`),
	regexp.MustCompile(`(?i)\bprocessing\s*fee\b`),
	regexp.MustCompile(`(?i)\bwork\s*from\s*home\b.{0,40}\b(earn|income|salary)\b`),
}

// DefaultHeuristic returns true if the message looks like a scam opener.
func DefaultHeuristic(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	for _, pat := range scamPatterns {
		if pat.MatchString(text) {
			return true
		}
	}
	return false
}
