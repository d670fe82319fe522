package domain

import (
	"errors"
	"testing"
)

// seqRand returns the queued values in order, reduced modulo n.
type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func TestLookupPrefix(t *testing.T) {
	t.Parallel()
	for _, code := range []string{"A", "F", "N", "Z", "EC", "WX", "XA", "XH"} {
		info, ok := LookupPrefix(code)
		if !ok {
			t.Fatalf("expected %q to be catalogued", code)
		}
		if string(info.Code) != code || info.Description == "" {
			t.Fatalf("unexpected info for %q: %+v", code, info)
		}
	}
	for _, code := range []string{"", "a", "ec", "ZZ", "XF", "I", "O", "Q", "U", "X", "ABC", "Ω"} {
		if _, ok := LookupPrefix(code); ok {
			t.Fatalf("expected %q not to be catalogued", code)
		}
	}
}

func TestKnownPrefixesCatalog(t *testing.T) {
	got := KnownPrefixes()
	if len(got) != 30 {
		t.Fatalf("expected 30 catalogued prefixes, got %d", len(got))
	}
	if got[0].Code != "A" || got[len(got)-1].Code != "XH" {
		t.Fatalf("unexpected catalog order: first %s last %s", got[0].Code, got[len(got)-1].Code)
	}
	seen := make(map[Prefix]struct{}, len(got))
	for _, info := range got {
		if !info.Code.Valid() {
			t.Fatalf("catalog entry %q is not a valid prefix", info.Code)
		}
		if _, dup := seen[info.Code]; dup {
			t.Fatalf("duplicate catalog entry %q", info.Code)
		}
		seen[info.Code] = struct{}{}
	}
	// Mutating the copy must not affect the catalog.
	got[0].Code = "QQ"
	if !Prefix("A").Known() || Prefix("QQ").Known() {
		t.Fatalf("KnownPrefixes returned the backing slice")
	}
}

func TestPrefixMethods(t *testing.T) {
	if !Prefix("WX").Known() || Prefix("ZZ").Known() {
		t.Fatalf("Known mismatch")
	}
	if !Prefix("ZZ").Valid() || Prefix("ABC").Valid() || Prefix("").Valid() || Prefix("a").Valid() {
		t.Fatalf("Valid mismatch")
	}
	if Prefix("J").Describe() != "Consular officers" {
		t.Fatalf("unexpected description %q", Prefix("J").Describe())
	}
	if Prefix("ZZ").Describe() != "Unknown or custom prefix" {
		t.Fatalf("unexpected description for unknown prefix")
	}
}

func TestParsePrefix(t *testing.T) {
	t.Parallel()
	valid := map[string]Prefix{"a": "A", "wx": "WX", " Zz ": "ZZ", "EC": "EC"}
	for in, want := range valid {
		got, err := ParsePrefix(in)
		if err != nil {
			t.Fatalf("ParsePrefix(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParsePrefix(%q) = %q, want %q", in, got, want)
		}
	}
	for _, in := range []string{"", "   ", "ABC", "A1", "1", "A-", "Ä"} {
		if _, err := ParsePrefix(in); !errors.Is(err, ErrInvalidPrefixFormat) {
			t.Fatalf("ParsePrefix(%q) expected ErrInvalidPrefixFormat, got %v", in, err)
		}
	}
}

func TestRandomKnownPrefix(t *testing.T) {
	r := &seqRand{vals: []int{0, 21, 29}}
	want := []Prefix{"A", "EC", "XH"}
	for _, w := range want {
		if got := RandomKnownPrefix(r); got != w {
			t.Fatalf("got %q, want %q", got, w)
		}
	}
}

func TestRandomPrefixMapping(t *testing.T) {
	tests := []struct {
		n    int
		want Prefix
	}{
		{0, "A"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{26 + 26, "BA"},
		{prefixSpace - 1, "ZZ"},
	}
	for _, tc := range tests {
		r := &seqRand{vals: []int{tc.n}}
		if got := RandomPrefix(r); got != tc.want {
			t.Fatalf("RandomPrefix(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

// TestRandomPrefixCoversSpace enumerates every draw and checks the mapping
// is a bijection onto the one- and two-letter prefixes.
func TestRandomPrefixCoversSpace(t *testing.T) {
	seen := make(map[Prefix]struct{}, prefixSpace)
	for n := 0; n < prefixSpace; n++ {
		p := RandomPrefix(&seqRand{vals: []int{n}})
		if !p.Valid() {
			t.Fatalf("draw %d produced invalid prefix %q", n, p)
		}
		seen[p] = struct{}{}
	}
	if len(seen) != prefixSpace {
		t.Fatalf("expected %d distinct prefixes, got %d", prefixSpace, len(seen))
	}
}

func TestRandomBody(t *testing.T) {
	r := &seqRand{vals: []int{0, 1, 2, 3, 4, 9}}
	if got := RandomBody(r); got != "012349" {
		t.Fatalf("RandomBody = %q", got)
	}
	b := RandomBody(DefaultRand())
	if !b.Valid() {
		t.Fatalf("default source produced invalid body %q", b)
	}
}
