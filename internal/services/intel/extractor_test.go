package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scamtrap/honeypot-service/internal/domain/models"
)

func TestExtract_AllIdentifierKinds(t *testing.T) {
	// Arrange
	text := "pay me at rahul@ybl or call +919876543210, see http://evil.example/pay"

	// Act
	findings := Extract(text)

	// Assert
	assert.Equal(t, []string{"rahul@ybl"}, findings.UPIIDs)
	assert.Equal(t, []string{"+919876543210"}, findings.PhoneNumbers)
	assert.Equal(t, []string{"http://evil.example/pay"}, findings.PhishingLinks)
	assert.False(t, findings.Empty())
}

func TestExtract_NoMatches(t *testing.T) {
	findings := Extract("hello, how are you today?")

	assert.True(t, findings.Empty())
	assert.Empty(t, findings.UPIIDs)
	assert.Empty(t, findings.PhoneNumbers)
	assert.Empty(t, findings.PhishingLinks)
}

func TestExtract_DeduplicatesWithinMessage(t *testing.T) {
	text := "send to rahul@ybl, yes rahul@ybl, or rahul@paytm"

	findings := Extract(text)

	assert.Equal(t, []string{"rahul@ybl", "rahul@paytm"}, findings.UPIIDs)
}

func TestExtract_PhoneRequiresCountryCode(t *testing.T) {
	findings := Extract("call me on 9876543210")

	assert.Empty(t, findings.PhoneNumbers)
}

func TestExtract_HTTPSLink(t *testing.T) {
	findings := Extract("verify here https://kyc-update.example/verify now")

	assert.Equal(t, []string{"https://kyc-update.example/verify"}, findings.PhishingLinks)
}

func TestMergeInto_CountsNewEntries(t *testing.T) {
	// Arrange
	intelligence := models.NewIntelligence()
	findings := Extract("pay rahul@ybl or call +919876543210")

	// Act
	added := findings.MergeInto(&intelligence)

	// Assert
	assert.Equal(t, 2, added)
	assert.Equal(t, []string{"rahul@ybl"}, intelligence.UPIIDs)
	assert.Equal(t, []string{"+919876543210"}, intelligence.PhoneNumbers)
}

func TestMergeInto_IsIdempotent(t *testing.T) {
	intelligence := models.NewIntelligence()
	findings := Extract("pay rahul@ybl now, link http://evil.example/x")

	first := findings.MergeInto(&intelligence)
	second := findings.MergeInto(&intelligence)

	assert.Equal(t, 2, first)
	assert.Zero(t, second)
	assert.Equal(t, []string{"rahul@ybl"}, intelligence.UPIIDs)
	assert.Equal(t, []string{"http://evil.example/x"}, intelligence.PhishingLinks)
}

func TestMergeInto_PreservesExistingEntries(t *testing.T) {
	intelligence := models.NewIntelligence()
	intelligence.UPIIDs = append(intelligence.UPIIDs, "old@upi")

	added := Extract("new handle fresh@okaxis").MergeInto(&intelligence)

	assert.Equal(t, 1, added)
	assert.Equal(t, []string{"old@upi", "fresh@okaxis"}, intelligence.UPIIDs)
}
