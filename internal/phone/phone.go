// Package phone normalizes gateway-supplied sender identifiers into
// canonical dialable numbers. The canonical form is the conversation key
// for the whole system, so every inbound and outbound path must go
// through Normalize before touching storage.
package phone

import (
	"errors"
	"strings"
)

// ErrUnresolvable is returned when an input contains no usable digits.
var ErrUnresolvable = errors.New("phone number could not be resolved")

// countryCode is prepended when a local trunk-prefixed number is seen.
// Fixed regional assumption (South Africa), not configurable.
const countryCode = "27"

// Normalize converts an arbitrary phone-like string into its canonical
// digit-only form.
//
// Steps:
//  1. Drop any gateway addressing suffix ("@s.whatsapp.net" and friends).
//  2. Drop every non-digit character.
//  3. Rewrite a 10-digit trunk-prefixed local number (leading 0) to its
//     international form with the country calling code.
//
// Normalize is idempotent: a canonical number passes through unchanged.
func Normalize(raw string) (string, error) {
	if at := strings.IndexByte(raw, '@'); at >= 0 {
		raw = raw[:at]
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}

	clean := b.String()
	if clean == "" {
		return "", ErrUnresolvable
	}

	if len(clean) == 10 && clean[0] == '0' {
		clean = countryCode + clean[1:]
	}

	return clean, nil
}
