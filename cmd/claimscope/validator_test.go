package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClaim(t *testing.T) {
	tests := []struct {
		name  string
		claim string
		want  bool
	}{
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"too short", "short", false},
		{"digits only", "1234567890", true},
		{"no alphanumerics", "!!!!!!!!!!", false},
		{"padded short claim", "    hi    ", false},
		{"typical claim", "Scientists discover new planet made entirely of diamonds", true},
		{"full-width digits normalize", "１２３４５６７８９０", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateClaim(tt.claim))
		})
	}
}
