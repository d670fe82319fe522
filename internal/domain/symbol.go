// Package domain symbol.go interprets the symbols printed on the face of an identity card.
package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SymbolKind classifies a card symbol.
type SymbolKind int

const (
	SymbolUnknown SymbolKind = iota
	SymbolFixed
	SymbolLostCard
	SymbolOfficeCode
)

// Symbol is a parsed card-face symbol.
type Symbol struct {
	Code        string
	Kind        SymbolKind
	Description string
	// LostCount is the number of reported losses for SymbolLostCard.
	LostCount int
}

var fixedSymbols = map[string]string{
	"***": "The holder is aged 18 or over and eligible for a Hong Kong Re-entry Permit",
	"*":   "The holder is aged between 11 and 17 and eligible for a Hong Kong Re-entry Permit",
	"A":   "The holder has the right of abode in Hong Kong",
	"B":   "The holder's reported date/place of birth has changed since first registration",
	"C":   "The holder's stay in Hong Kong is limited by the Director of Immigration at registration",
	"N":   "The holder's reported name has changed since first registration",
	"O":   "The holder was born outside Hong Kong, Mainland China, or Macau",
	"R":   "The holder has the right to land in Hong Kong",
	"U":   "The holder's stay in Hong Kong is not limited by the Director of Immigration",
	"W":   "The holder's reported place of birth is Macau",
	"X":   "The holder's reported place of birth is Mainland China",
	"Y":   "The holder's date of birth has been confirmed by birth certificate or passport",
	"Z":   "The holder's reported place of birth is Hong Kong",
}

// ParseSymbol classifies s. Matching is case-sensitive. L followed by a
// number is a lost-card marker; any other two-character code ending in a
// digit is an issuing office code.
func ParseSymbol(s string) Symbol {
	if desc, ok := fixedSymbols[s]; ok {
		return Symbol{Code: s, Kind: SymbolFixed, Description: desc}
	}
	if len(s) > 1 && s[0] == 'L' {
		n, err := strconv.ParseUint(s[1:], 10, 8)
		if err != nil {
			return unknownSymbol(s)
		}
		return Symbol{
			Code:        s,
			Kind:        SymbolLostCard,
			Description: fmt.Sprintf("The holder has reported the loss of an ID card %d time(s)", n),
			LostCount:   int(n),
		}
	}
	if len(s) == 2 && isDigit(s[1]) {
		return Symbol{Code: s, Kind: SymbolOfficeCode, Description: "Issuing office code " + s}
	}
	return unknownSymbol(s)
}

func unknownSymbol(s string) Symbol {
	return Symbol{Code: s, Kind: SymbolUnknown, Description: "Unknown or custom symbol"}
}

// ParseSymbols splits a space-separated symbol line, as printed on the card,
// and classifies each entry.
func ParseSymbols(line string) []Symbol {
	fields := strings.Fields(line)
	out := make([]Symbol, 0, len(fields))
	for _, f := range fields {
		out = append(out, ParseSymbol(f))
	}
	return out
}

// String returns the symbol kind name.
func (k SymbolKind) String() string {
	switch k {
	case SymbolFixed:
		return "fixed"
	case SymbolLostCard:
		return "lost_card"
	case SymbolOfficeCode:
		return "office_code"
	}
	return "unknown"
}
