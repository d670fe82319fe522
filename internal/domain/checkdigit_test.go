package domain

import "testing"

func TestComputeCheckDigit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		prefix Prefix
		body   Body
		want   CheckChar
	}{
		{"A", "123456", '3'},
		{"A", "444227", '2'},
		{"A", "000002", 'A'},
		{"A", "000007", '0'},
		{"B", "987654", '0'},
		{"C", "668668", '9'},
		{"G", "123456", 'A'},
		{"Z", "123456", '1'},
		{"AB", "123456", '9'},
		{"AB", "987654", '3'},
		{"WX", "123456", '9'},
		{"XA", "000000", '8'},
		{"ZZ", "034129", 'A'},
		{"ZZ", "123456", 'A'},
		{"PB", "100001", '8'},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(string(tc.prefix)+string(tc.body), func(t *testing.T) {
			t.Parallel()
			if got := ComputeCheckDigit(tc.prefix, tc.body); got != tc.want {
				t.Fatalf("ComputeCheckDigit(%s, %s) = %s, want %s", tc.prefix, tc.body, got, tc.want)
			}
		})
	}
}

func TestComputeCheckDigitDeterministic(t *testing.T) {
	first := ComputeCheckDigit("WX", "314159")
	for i := 0; i < 100; i++ {
		if got := ComputeCheckDigit("WX", "314159"); got != first {
			t.Fatalf("iteration %d: got %s, want %s", i, got, first)
		}
	}
}

// TestCheckValueIdentity verifies the weighted sum including the check value
// is always a multiple of 11.
func TestCheckValueIdentity(t *testing.T) {
	for _, info := range KnownPrefixes() {
		for _, b := range []Body{"000000", "123456", "999999", "500005", "071234"} {
			p := info.Code
			v := checkValue(p, b)
			if v < 0 || v > 10 {
				t.Fatalf("check value out of range for %s%s: %d", p, b, v)
			}
			sum := v
			if len(p) == 1 {
				sum += blankValue*weights[0] + symbolValue(p[0])*weights[1]
			} else {
				sum += symbolValue(p[0])*weights[0] + symbolValue(p[1])*weights[1]
			}
			for i := 0; i < BodyLen; i++ {
				sum += symbolValue(b[i]) * weights[2+i]
			}
			if sum%11 != 0 {
				t.Fatalf("identity broken for %s%s: sum %d", p, b, sum)
			}
		}
	}
}

func TestVerifyCheckDigit(t *testing.T) {
	if !VerifyCheckDigit("A", "123456", '3') {
		t.Fatalf("expected A123456(3) to verify")
	}
	if VerifyCheckDigit("A", "123456", '7') {
		t.Fatalf("expected A123456(7) to fail")
	}
	if !VerifyCheckDigit("G", "123456", 'a') {
		t.Fatalf("expected lowercase a to be accepted as A")
	}
}

// TestExactlyOneCheckCharVerifies checks that of the eleven possible check
// characters exactly one satisfies the identity for any prefix and body.
func TestExactlyOneCheckCharVerifies(t *testing.T) {
	all := []CheckChar{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A'}
	for _, p := range []Prefix{"A", "K", "WX", "XH", "QQ"} {
		for _, b := range []Body{"000000", "123456", "987654", "010203"} {
			n := 0
			for _, c := range all {
				if VerifyCheckDigit(p, b, c) {
					n++
				}
			}
			if n != 1 {
				t.Fatalf("%s%s: %d check characters verify, want 1", p, b, n)
			}
		}
	}
}

// TestSingleDigitSubstitutionDetected mutates each body digit to every other
// value. The digit weights 7..2 are units mod 11, so no substitution keeps
// the unmodified check character valid.
func TestSingleDigitSubstitutionDetected(t *testing.T) {
	for _, p := range []Prefix{"A", "WX", "ZZ"} {
		for _, b := range []Body{"123456", "000000", "908172"} {
			check := ComputeCheckDigit(p, b)
			for pos := 0; pos < BodyLen; pos++ {
				for d := byte('0'); d <= '9'; d++ {
					if b[pos] == d {
						continue
					}
					mut := []byte(b)
					mut[pos] = d
					if VerifyCheckDigit(p, Body(mut), check) {
						t.Fatalf("substitution %s -> %s at %d kept check %s valid", b, mut, pos, check)
					}
				}
			}
		}
	}
}

func TestSymbolValue(t *testing.T) {
	cases := map[byte]int{'A': 10, 'Z': 35, 'a': 10, 'z': 35, '0': 0, '9': 9, '@': 0, '_': 0}
	for c, want := range cases {
		if got := symbolValue(c); got != want {
			t.Errorf("symbolValue(%q) = %d, want %d", c, got, want)
		}
	}
}

func TestCheckCharValid(t *testing.T) {
	for _, c := range []CheckChar{'0', '5', '9', 'A'} {
		if !c.Valid() {
			t.Errorf("expected %s valid", c)
		}
	}
	for _, c := range []CheckChar{'B', 'a', '(', ' '} {
		if c.Valid() {
			t.Errorf("expected %q invalid", byte(c))
		}
	}
}
