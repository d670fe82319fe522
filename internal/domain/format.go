// Package domain format.go contains the structural HKID parser.
package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// Grammar selects how the check character slot is matched.
type Grammar int

const (
	// Strict requires the canonical form PREFIXDDDDDD(C).
	Strict Grammar = iota
	// Lenient additionally accepts an unbracketed check character, PREFIXDDDDDDC.
	Lenient
)

// Parse splits s into prefix, body and check character under the strict
// grammar. It does not verify the check character; see HKID.Consistent.
func Parse(s string) (HKID, error) { return ParseGrammar(s, Strict) }

// ParseLenient is Parse with the unbracketed check slot allowed.
func ParseLenient(s string) (HKID, error) { return ParseGrammar(s, Lenient) }

// ParseGrammar trims surrounding whitespace, upper-cases ASCII letters and
// matches [A-Z]{1,2}[0-9]{6} followed by the check slot g permits. Failures
// wrap ErrFormat with the first violated constraint.
func ParseGrammar(s string, g Grammar) (HKID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return HKID{}, formatErr("empty input")
	}
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return HKID{}, formatErr("contains whitespace")
	}
	s = upperASCII(s)

	n := 0
	for n < len(s) && isUpper(s[n]) {
		n++
	}
	if n == 0 {
		return HKID{}, formatErr("missing prefix letters")
	}
	if n > 2 {
		return HKID{}, formatErr(fmt.Sprintf("prefix must be 1 or 2 letters, got %d", n))
	}
	prefix := Prefix(s[:n])

	d := 0
	for n+d < len(s) && isDigit(s[n+d]) {
		d++
	}
	rest := s[n+d:]
	// A seventh digit is the bare check character in the lenient grammar.
	if g == Lenient && d == BodyLen+1 && rest == "" {
		return HKID{Prefix: prefix, Body: Body(s[n : n+BodyLen]), Check: CheckChar(s[n+BodyLen])}, nil
	}
	if d != BodyLen {
		return HKID{}, formatErr(fmt.Sprintf("body must be %d digits, got %d", BodyLen, d))
	}
	body := Body(s[n : n+BodyLen])

	check, err := parseCheckSlot(rest, g)
	if err != nil {
		return HKID{}, err
	}
	return HKID{Prefix: prefix, Body: body, Check: check}, nil
}

// parseCheckSlot matches "(C)" or, for Lenient, a bare "C".
func parseCheckSlot(rest string, g Grammar) (CheckChar, error) {
	switch {
	case rest == "":
		return 0, formatErr("missing check character")
	case len(rest) == 3 && rest[0] == '(' && rest[2] == ')':
		c := CheckChar(rest[1])
		if !c.Valid() {
			return 0, formatErr("check character must be 0-9 or A")
		}
		return c, nil
	case len(rest) == 1 && rest[0] != '(' && rest[0] != ')':
		c := CheckChar(rest[0])
		if !c.Valid() {
			return 0, formatErr("check character must be 0-9 or A")
		}
		if g != Lenient {
			return 0, formatErr("check character must be enclosed in parentheses")
		}
		return c, nil
	}
	return 0, formatErr("malformed check character slot")
}

// upperASCII upper-cases a-z only, so non-ASCII letters never fold into A-Z.
func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

func formatErr(reason string) error { return fmt.Errorf("%w: %s", ErrFormat, reason) }
