package scanner

import (
	"testing"
)

// FuzzScan fuzzes the classifier with arbitrary input.
// Invariants: never panic, deterministic, and on success the form is one of
// the four defined values.
func FuzzScan(f *testing.F) {
	f.Add("/r/rust")
	f.Add("https://example.com")
	f.Add("example.com")
	f.Add("*")
	f.Add("")
	f.Add("a://b")
	f.Add("http:/zombo.com")
	f.Add("[::1]:8080")
	f.Add(" * ")
	f.Add("://")

	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Scan panicked on input %q: %v", input, r)
			}
		}()

		res, err := Scan(input)
		res2, err2 := Scan(input)
		if res != res2 || (err == nil) != (err2 == nil) {
			t.Errorf("Scan(%q) is not deterministic: (%v, %v) vs (%v, %v)", input, res, err, res2, err2)
		}
		if err != nil {
			return
		}
		switch res.Form {
		case Origin, Absolute, Authority, Asterisk:
		default:
			t.Errorf("Scan(%q) returned unknown form %d", input, int(res.Form))
		}
	})
}
