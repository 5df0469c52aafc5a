package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultHeuristic(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"kyc expiry", "Your KYC will expire today, update now", true},
		{"blocked account", "Dear customer your account has been blocked", true},
		{"otp request", "Please share the OTP you just received", true},
		{"lottery win", "Congratulations! You won a lottery of 25 lakh", true},
		{"refund bait", "You are eligible for a refund of Rs 4999", true},
		{"urgency", "Act immediately or lose access", true},
		{"payment demand", "You must pay the fee of Rs. 500 to proceed", true},
		{"upi mention", "Send it via UPI to this handle", true},
		{"electricity threat", "Your electricity will be disconnected tonight", true},
		{"authority threat", "This is the police, a case has been registered against your parcel", true},
		{"click link", "Click this link to verify", true},
		{"processing fee", "A small processing fee is required", true},
		{"work from home", "Work from home and earn 30000 monthly", true},
		{"casual chat", "Hey, are we still on for lunch tomorrow?", false},
		{"benign business", "The meeting notes are attached, see you Monday", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultHeuristic(tt.text))
		})
	}
}
