package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/capfin/sanction-service/internal/domain/model"
)

func TestNormalizeMobile(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain ten digits", "9876543210", "9876543210"},
		{"spaces and hyphen", "+91 98765-43210", "9876543210"},
		{"country code without plus", "919876543210", "9876543210"},
		{"zero prefixed trunk code", "09876543210", "9876543210"},
		{"short number stays short", "12345", "12345"},
		{"letters only", "abc", ""},
		{"empty", "", ""},
		{"parentheses and dots", "(987) 654.3210", "9876543210"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.NormalizeMobile(tt.raw))
		})
	}
}

func TestNormalizeIdentity(t *testing.T) {
	assert.Equal(t, "ABCDE1234F", model.NormalizePAN("  abcde1234f  "))
	assert.Equal(t, "ABCDE1234F", model.NormalizePAN("ABCDE1234F"))
	assert.Equal(t, "", model.NormalizePAN("   "))
}

func TestIsValidPAN(t *testing.T) {
	tests := []struct {
		pan  string
		want bool
	}{
		{"ABCDE1234F", true},
		{"ZZZZZ9999Z", true},
		{"ABCDE1234", false},
		{"ABCDE12345", false},
		{"ABCD61234F", false},
		{"1BCDE1234F", false},
		{"ABCDE1234FX", false},
		{"abcde1234f", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, model.IsValidPAN(tt.pan), "pan %q", tt.pan)
	}
}
