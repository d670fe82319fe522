// Package hkid generates and validates Hong Kong Identity Card numbers.
//
// An HKID is one or two prefix letters, six digits and a check character in
// parentheses, for example A123456(3) or WX123456(9). The check character is
// computed with the published modulus 11 scheme and is a digit or 'A'.
//
// Prefixes are either catalogued (historically issued, see Prefixes) or
// custom. Functions taking mustExist reject custom prefixes with
// ErrUnknownPrefix when it is set.
//
// All functions are safe for concurrent use.
package hkid

import (
	"github.com/haukened/hkid/internal/app"
	"github.com/haukened/hkid/internal/domain"
)

var (
	// ErrInvalidPrefixFormat reports a prefix that is not one or two letters.
	ErrInvalidPrefixFormat = domain.ErrInvalidPrefixFormat
	// ErrUnknownPrefix reports a well-formed prefix missing from the catalog
	// while a catalogued prefix is required.
	ErrUnknownPrefix = domain.ErrUnknownPrefix
	// ErrFormat reports text that is not shaped like an HKID.
	ErrFormat = domain.ErrFormat
)

// PrefixInfo is a catalogued prefix with its description.
type PrefixInfo = domain.PrefixInfo

// Symbol is a parsed card-face symbol.
type Symbol = domain.Symbol

// SymbolKind classifies a Symbol.
type SymbolKind = domain.SymbolKind

const (
	SymbolUnknown    = domain.SymbolUnknown
	SymbolFixed      = domain.SymbolFixed
	SymbolLostCard   = domain.SymbolLostCard
	SymbolOfficeCode = domain.SymbolOfficeCode
)

var (
	strict  = &app.Service{Grammar: domain.Strict}
	lenient = &app.Service{Grammar: domain.Lenient}
)

// Generate returns a random HKID in canonical form. With mustExist the prefix
// is drawn from the catalog, otherwise from all 702 one- and two-letter
// prefixes.
func Generate(mustExist bool) (string, error) {
	h, err := strict.Generate(mustExist)
	if err != nil {
		return "", err
	}
	return h.String(), nil
}

// GenerateWithPrefix returns a random HKID using prefix, which is
// upper-cased first. It fails with ErrInvalidPrefixFormat for anything but
// one or two letters, and with ErrUnknownPrefix when mustExist is set and
// the prefix is not catalogued.
func GenerateWithPrefix(prefix string, mustExist bool) (string, error) {
	h, err := strict.GenerateWithPrefix(prefix, mustExist)
	if err != nil {
		return "", err
	}
	return h.String(), nil
}

// Validate reports whether text is an HKID with a correct check character.
// Surrounding whitespace is ignored and letters may be lower case, but the
// check character must be in parentheses. A well-formed HKID with the wrong
// check character yields (false, nil); malformed text yields ErrFormat.
func Validate(text string, mustExist bool) (bool, error) {
	return strict.Validate(text, mustExist)
}

// ValidateLenient is like Validate but also accepts the check character
// without parentheses, as in "A1234563".
func ValidateLenient(text string, mustExist bool) (bool, error) {
	return lenient.Validate(text, mustExist)
}

// Prefixes returns the catalogued prefixes in catalog order.
func Prefixes() []PrefixInfo { return domain.KnownPrefixes() }

// DescribeSymbol interprets a single symbol printed on the card, such as
// "***", "L2" or "H1".
func DescribeSymbol(s string) Symbol { return domain.ParseSymbol(s) }
