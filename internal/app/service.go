// Package app contains the application orchestration layer for hkid. It wires
// the domain catalog, check-digit engine and parser into the generate and
// validate use cases without performing any I/O itself.
package app

import (
	"fmt"

	"github.com/haukened/hkid/internal/domain"
)

// Service generates and validates HKIDs using the injected random source and
// parsing grammar. The zero value is usable: it draws from domain.DefaultRand
// and parses with domain.Strict.
type Service struct {
	Rand    domain.Rand
	Grammar domain.Grammar
}

// Generate returns a random, internally consistent HKID. With mustExist the
// prefix is drawn from the catalog; otherwise from every one- and two-letter
// prefix.
func (s *Service) Generate(mustExist bool) (domain.HKID, error) {
	r := s.rand()
	var p domain.Prefix
	if mustExist {
		p = domain.RandomKnownPrefix(r)
	} else {
		p = domain.RandomPrefix(r)
	}
	return domain.New(p, domain.RandomBody(r))
}

// GenerateWithPrefix returns a random HKID under the given prefix. The prefix
// is upper-cased and must be one or two letters (ErrInvalidPrefixFormat).
// With mustExist it must also be catalogued (ErrUnknownPrefix).
func (s *Service) GenerateWithPrefix(prefix string, mustExist bool) (domain.HKID, error) {
	p, err := domain.ParsePrefix(prefix)
	if err != nil {
		return domain.HKID{}, err
	}
	if mustExist && !p.Known() {
		return domain.HKID{}, fmt.Errorf("%w: %q", domain.ErrUnknownPrefix, p)
	}
	return domain.New(p, domain.RandomBody(s.rand()))
}

// Validate parses text and verifies its check character. A well-formed HKID
// with the wrong check character returns (false, nil). Errors wrap
// ErrFormat, or ErrUnknownPrefix when mustExist is set and the prefix is not
// catalogued.
func (s *Service) Validate(text string, mustExist bool) (bool, error) {
	h, err := domain.ParseGrammar(text, s.Grammar)
	if err != nil {
		return false, err
	}
	if mustExist && !h.Prefix.Known() {
		return false, fmt.Errorf("%w: %q", domain.ErrUnknownPrefix, h.Prefix)
	}
	return h.Consistent(), nil
}

func (s *Service) rand() domain.Rand {
	if s.Rand == nil {
		return domain.DefaultRand()
	}
	return s.Rand
}
