// cmd/claimscope/validator.go
package main

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var alphanumericPattern = regexp.MustCompile(`[a-zA-Z0-9]`)

// ValidateClaim reports whether a claim is worth analyzing. It rejects empty
// or whitespace-only input, anything shorter than MinClaimLength after
// trimming, and input with no alphanumeric character. Input is NFKC-normalized
// first so full-width digits and other compatibility forms validate the way
// users expect.
func ValidateClaim(claim string) bool {
	claim = norm.NFKC.String(claim)
	if len(strings.TrimSpace(claim)) < MinClaimLength {
		return false
	}
	return alphanumericPattern.MatchString(claim)
}
