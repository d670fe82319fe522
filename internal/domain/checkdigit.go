// Package domain checkdigit.go implements the HKID modulus-11 check character.
package domain

// CheckChar is the trailing check character of an HKID: '0'-'9' or 'A'.
type CheckChar byte

// String returns the check character as a one-character string.
func (c CheckChar) String() string { return string(rune(c)) }

// Valid reports whether c is a digit or 'A'.
func (c CheckChar) Valid() bool { return isDigit(byte(c)) || c == 'A' }

// weights apply to the eight symbols [prefix slot 1, prefix slot 2, d1..d6].
// The check character itself carries weight 1.
var weights = [8]int{9, 8, 7, 6, 5, 4, 3, 2}

// blankValue stands in for the empty first slot of a one-letter prefix.
const blankValue = 36

// symbolValue maps A-Z to 10-35 and 0-9 to their value. Anything else maps
// to 0; callers only pass validated prefixes and bodies.
func symbolValue(c byte) int {
	switch {
	case isUpper(c):
		return int(c-'A') + 10
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case isDigit(c):
		return int(c - '0')
	}
	return 0
}

// checkValue returns the check value in [0, 10] for prefix p and body b.
func checkValue(p Prefix, b Body) int {
	var sym [8]int
	switch len(p) {
	case 1:
		sym[0] = blankValue
		sym[1] = symbolValue(p[0])
	default:
		sym[0] = symbolValue(p[0])
		sym[1] = symbolValue(p[1])
	}
	for i := 0; i < BodyLen && i < len(b); i++ {
		sym[2+i] = symbolValue(b[i])
	}
	sum := 0
	for i, v := range sym {
		sum += v * weights[i]
	}
	return (11 - sum%11) % 11
}

// ComputeCheckDigit returns the check character for prefix p and body b.
// A check value of 10 is rendered as 'A'.
func ComputeCheckDigit(p Prefix, b Body) CheckChar {
	v := checkValue(p, b)
	if v == 10 {
		return 'A'
	}
	return CheckChar('0' + v)
}

// VerifyCheckDigit reports whether c is the correct check character for
// (p, b). A lowercase 'a' is accepted as 'A'.
func VerifyCheckDigit(p Prefix, b Body, c CheckChar) bool {
	if c == 'a' {
		c = 'A'
	}
	return ComputeCheckDigit(p, b) == c
}
