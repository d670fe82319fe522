// Package domain prefix.go contains the catalog of issued HKID prefixes.
package domain

import (
	"fmt"
	"strings"
)

// Prefix is the leading one- or two-letter component of an HKID. A Prefix
// value may be catalogued (Known) or a syntactically valid custom prefix.
type Prefix string

// PrefixInfo describes a catalogued prefix.
type PrefixInfo struct {
	Code        Prefix
	Description string
}

// catalog lists every historically issued prefix in declaration order.
var catalog = []PrefixInfo{
	{"A", "Original ID cards, issued between 1949 and 1962, most holders born before 1950"},
	{"B", "Issued between 1955 and 1960 in city offices"},
	{"C", "Issued between 1960 and 1983 in NT offices, mostly HK-born children (1946-1971)"},
	{"D", "Issued between 1960 and 1983 at HK Island offices, mostly HK-born children"},
	{"E", "Issued between 1955 and 1969 in Kowloon offices, mostly HK-born children (1946-1962)"},
	{"F", "First issue of a card commencing from 24 February 2020"},
	{"G", "Issued between 1967 and 1983 in Kowloon offices, children born 1956-1971"},
	{"H", "Issued between 1979 and 1983 in HK Island offices, children born 1968-1971"},
	{"J", "Consular officers"},
	{"K", "First issue (1983 - 1990), children born 1972-1979"},
	{"L", "Issued between 1983 and 2003 during computer malfunctions, very few holders"},
	{"M", "First issue (2011 - 23 Feb 2020)"},
	{"N", "Birth registered in Hong Kong after 1 June 2019"},
	{"P", "First issue (1990 - 2000), children mostly born July-Dec 1979"},
	{"R", "First issue (2000 - 2011)"},
	{"S", "Birth registered in Hong Kong (1 Apr 2005 - 31 May 2019)"},
	{"T", "Issued between 1983 and 1997 during computer malfunctions, very few holders"},
	{"V", "Child under 11 issued \"Document of Identity for Visa Purposes\" (1983 - 2003)"},
	{"W", "First issue to foreign laborer/domestic helper (10 Nov 1989 - 1 Jan 2009)"},
	{"Y", "Birth registered in Hong Kong (1 Jan 1989 - 31 Mar 2005)"},
	{"Z", "Birth registered in Hong Kong (1 Jan 1980 - 31 Dec 1988)"},
	{"EC", "European Community officers and dependents (1993 - 2003)"},
	{"WX", "Foreign laborers/domestic helpers issued since 2 Jan 2009"},
	{"XA", "Persons without Chinese names issued before 27 Mar 1983"},
	{"XB", "Persons without Chinese names issued before 27 Mar 1983"},
	{"XC", "Persons without Chinese names issued before 27 Mar 1983"},
	{"XD", "Persons without Chinese names issued before 27 Mar 1983"},
	{"XE", "Persons without Chinese names issued before 27 Mar 1983"},
	{"XG", "Persons without Chinese names issued before 27 Mar 1983"},
	{"XH", "Persons without Chinese names issued before 27 Mar 1983"},
}

// catalogIndex is built once from catalog and only read afterwards.
var catalogIndex = func() map[Prefix]int {
	idx := make(map[Prefix]int, len(catalog))
	for i, info := range catalog {
		idx[info.Code] = i
	}
	return idx
}()

// LookupPrefix reports whether s exactly matches a catalogued prefix. The
// match is case-sensitive; callers normalize input first.
func LookupPrefix(s string) (PrefixInfo, bool) {
	i, ok := catalogIndex[Prefix(s)]
	if !ok {
		return PrefixInfo{}, false
	}
	return catalog[i], true
}

// KnownPrefixes returns a copy of the catalog in declaration order.
func KnownPrefixes() []PrefixInfo {
	out := make([]PrefixInfo, len(catalog))
	copy(out, catalog)
	return out
}

// RandomKnownPrefix picks a catalogued prefix uniformly at random.
func RandomKnownPrefix(r Rand) Prefix {
	return catalog[r.IntN(len(catalog))].Code
}

// prefixSpace is the count of all one-letter (26) and two-letter (26*26) prefixes.
const prefixSpace = 26 + 26*26

// RandomPrefix picks uniformly among every one- and two-letter uppercase
// prefix, catalogued or not.
func RandomPrefix(r Rand) Prefix {
	n := r.IntN(prefixSpace)
	if n < 26 {
		return Prefix([]byte{byte('A' + n)})
	}
	n -= 26
	return Prefix([]byte{byte('A' + n/26), byte('A' + n%26)})
}

// ParsePrefix trims and upper-cases s and returns it as a Prefix. It does
// not consult the catalog. Returns ErrInvalidPrefixFormat unless the result
// is one or two letters.
func ParsePrefix(s string) (Prefix, error) {
	p := upperASCII(strings.TrimSpace(s))
	if !isValidPrefix(p) {
		return "", fmt.Errorf("%w: %q must be 1 or 2 letters", ErrInvalidPrefixFormat, s)
	}
	return Prefix(p), nil
}

// String returns the string form of the Prefix.
func (p Prefix) String() string { return string(p) }

// Valid reports whether p is one or two uppercase ASCII letters.
func (p Prefix) Valid() bool { return isValidPrefix(string(p)) }

// Known reports whether p is in the catalog.
func (p Prefix) Known() bool {
	_, ok := catalogIndex[p]
	return ok
}

// Describe returns the catalog description, or "Unknown or custom prefix"
// for prefixes outside the catalog.
func (p Prefix) Describe() string {
	if info, ok := LookupPrefix(string(p)); ok {
		return info.Description
	}
	return "Unknown or custom prefix"
}

// isValidPrefix performs validation without allocating errors.
func isValidPrefix(s string) bool {
	if len(s) < 1 || len(s) > 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isUpper(s[i]) {
			return false
		}
	}
	return true
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
