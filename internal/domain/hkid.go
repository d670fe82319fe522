// Package domain hkid.go contains the HKID value type and its canonical rendering.
package domain

import "strings"

// BodyLen is the number of digits in an HKID body.
const BodyLen = 6

// Body is the six-digit serial of an HKID. Leading zeros are significant.
type Body string

// String returns the string form of the Body.
func (b Body) String() string { return string(b) }

// Valid reports whether b is exactly six ASCII digits.
func (b Body) Valid() bool {
	if len(b) != BodyLen {
		return false
	}
	for i := 0; i < len(b); i++ {
		if !isDigit(b[i]) {
			return false
		}
	}
	return true
}

// HKID is an identity card number split into its three parts. Values are
// never mutated; a parsed HKID is only known to be correct once Consistent
// reports true.
type HKID struct {
	Prefix Prefix
	Body   Body
	Check  CheckChar
}

// New builds a consistent HKID by computing the check character. It enforces:
// - prefix is one or two uppercase letters
// - body is six digits
// Returns ErrInvalidPrefixFormat or ErrFormat on failure.
func New(p Prefix, b Body) (HKID, error) {
	if !p.Valid() {
		return HKID{}, ErrInvalidPrefixFormat
	}
	if !b.Valid() {
		return HKID{}, ErrFormat
	}
	return HKID{Prefix: p, Body: b, Check: ComputeCheckDigit(p, b)}, nil
}

// Consistent reports whether the check character matches prefix and body.
func (h HKID) Consistent() bool { return VerifyCheckDigit(h.Prefix, h.Body, h.Check) }

// String renders the canonical form PREFIXDDDDDD(C), e.g. "A123456(3)".
func (h HKID) String() string {
	var sb strings.Builder
	sb.Grow(len(h.Prefix) + BodyLen + 3)
	sb.WriteString(string(h.Prefix))
	sb.WriteString(string(h.Body))
	sb.WriteByte('(')
	sb.WriteByte(byte(h.Check))
	sb.WriteByte(')')
	return sb.String()
}
