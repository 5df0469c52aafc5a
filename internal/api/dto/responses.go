// Package dto defines the request and response shapes of the API.
package dto

import "github.com/scamtrap/honeypot-service/internal/domain/models"

// IntelligenceResponse is the extracted intelligence in a turn response.
type IntelligenceResponse struct {
	UPIIDs        []string `json:"upiIds"`
	PhoneNumbers  []string `json:"phoneNumbers"`
	PhishingLinks []string `json:"phishingLinks"`
}

// TurnResponse is the body returned for a processed turn.
type TurnResponse struct {
	Status                 string                 `json:"status"`
	SessionID              string                 `json:"sessionId"`
	Reply                  string                 `json:"reply"`
	ScamDetected           bool                   `json:"scamDetected"`
	TotalMessagesExchanged int                    `json:"totalMessagesExchanged"`
	Intelligence           IntelligenceResponse   `json:"intelligence"`
	Metadata               map[string]interface{} `json:"metadata"`
	ShouldStop             bool                   `json:"shouldStop"`
}

// NewIntelligenceResponse converts domain intelligence, guaranteeing non-nil
// collections on the wire.
func NewIntelligenceResponse(i models.Intelligence) IntelligenceResponse {
	resp := IntelligenceResponse{
		UPIIDs:        i.UPIIDs,
		PhoneNumbers:  i.PhoneNumbers,
		PhishingLinks: i.PhishingLinks,
	}
	if resp.UPIIDs == nil {
		resp.UPIIDs = []string{}
	}
	if resp.PhoneNumbers == nil {
		resp.PhoneNumbers = []string{}
	}
	if resp.PhishingLinks == nil {
		resp.PhishingLinks = []string{}
	}
	return resp
}

// ListEventsResponse is the body returned when listing turn events.
type ListEventsResponse struct {
	Events []*models.TurnEvent `json:"events"`
	Limit  int64               `json:"limit"`
	Skip   int64               `json:"skip"`
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
