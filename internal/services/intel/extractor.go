// Package intel extracts actionable identifiers from scammer messages.
package intel

import (
	"regexp"

	"github.com/scamtrap/honeypot-service/internal/domain/models"
)

// Extraction patterns. The UPI pattern is deliberately broad (it also matches
// email-like strings) so that handles on unusual PSPs are not missed; the
// phone pattern is the fixed +91 country code followed by exactly ten
// contiguous digits.
var (
	upiPattern   = regexp.MustCompile(`\b[\w.-]+@\w+\b`)
	phonePattern = regexp.MustCompile(`\+91\d{10}`)
	linkPattern  = regexp.MustCompile(`https?://\S+`)
)

// Findings is the deduplicated result of scanning one piece of text.
type Findings struct {
	UPIIDs        []string
	PhoneNumbers  []string
	PhishingLinks []string
}

// Empty reports whether nothing was found.
func (f Findings) Empty() bool {
	return len(f.UPIIDs) == 0 && len(f.PhoneNumbers) == 0 && len(f.PhishingLinks) == 0
}

// Extract scans text for payment handles, phone numbers and links. It is a
// pure function; results keep first-seen order with duplicates dropped.
func Extract(text string) Findings {
	return Findings{
		UPIIDs:        dedupe(upiPattern.FindAllString(text, -1)),
		PhoneNumbers:  dedupe(phonePattern.FindAllString(text, -1)),
		PhishingLinks: dedupe(linkPattern.FindAllString(text, -1)),
	}
}

// MergeInto unions the findings into the session's intelligence and returns
// the number of new entries. Merging the same findings twice adds nothing.
func (f Findings) MergeInto(intelligence *models.Intelligence) int {
	added := 0
	intelligence.UPIIDs, added = appendUnique(intelligence.UPIIDs, f.UPIIDs, added)
	intelligence.PhoneNumbers, added = appendUnique(intelligence.PhoneNumbers, f.PhoneNumbers, added)
	intelligence.PhishingLinks, added = appendUnique(intelligence.PhishingLinks, f.PhishingLinks, added)
	return added
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// appendUnique appends values not already present and tracks how many landed.
func appendUnique(existing, values []string, added int) ([]string, int) {
	seen := make(map[string]struct{}, len(existing))
	for _, v := range existing {
		seen[v] = struct{}{}
	}
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		existing = append(existing, v)
		added++
	}
	return existing, added
}
