package types

import (
	"fmt"
	"regexp"
	"strings"
)

// US-style phone number: optional country code, then area code, exchange, and
// subscriber number separated by spaces, dots, hyphens, or parentheses.
var (
	phonePattern    = regexp.MustCompile(`(\+[0-9]{0,3})?[\(\s\-]?([0-9]{3})[\)\s\.\-]?\s?([0-9]{3})[\s\.\-]?([0-9]{4})`)
	areaCodePattern = regexp.MustCompile(`\([0-9]{3}\)`)
)

// Address is the location component of the contact block.
type Address struct {
	City  string `yaml:"city" json:"city" validate:"required"`
	State string `yaml:"state" json:"state" validate:"required"`
}

// Contact carries the candidate's identity and reachability information.
type Contact struct {
	Email   string  `yaml:"email" json:"email" validate:"required,email"`
	Name    string  `yaml:"name" json:"name" validate:"required"`
	Phone   string  `yaml:"phone" json:"phone" validate:"required"`
	Address Address `yaml:"address" json:"address"`
}

// verifyPhone checks that a phone number contains an area code, exchange, and
// subscriber number, with an optional leading country code. The value itself
// is never rewritten. If the string contains a parenthesis at all, it must
// also contain a complete (DDD) area-code grouping; a stray or mismatched
// parenthesis fails even when the digit pattern otherwise matches.
func verifyPhone(value string) error {
	match := phonePattern.FindStringSubmatch(value)
	if match == nil || match[2] == "" || match[3] == "" || match[4] == "" {
		return fmt.Errorf("could not find all parts of %q: expected area code, exchange, and subscriber number, with an optional country code", value)
	}
	if (strings.Contains(value, "(") || strings.Contains(value, ")")) && !areaCodePattern.MatchString(value) {
		return fmt.Errorf("%q contains a parenthesis but no (DDD) area code grouping", value)
	}
	return nil
}
