package target

import (
	"strings"
	"testing"
)

func TestClassifyLenient_ValidNoWarnings(t *testing.T) {
	result := ClassifyLenient("https://example.com")
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", result.Warnings)
	}
	if result.Target == nil || result.Target.Form != AbsoluteForm {
		t.Fatalf("Target = %+v, want absolute-form", result.Target)
	}
	if result.Target.Scheme != "https" {
		t.Errorf("Scheme = %q, want https", result.Target.Scheme)
	}
}

func TestClassifyLenient_TrimsWhitespace(t *testing.T) {
	result := ClassifyLenient("  /r/rust ")
	if result.Target == nil {
		t.Fatal("Target = nil, want origin-form")
	}
	if result.Target.Form != OriginForm {
		t.Errorf("Form = %v, want OriginForm", result.Target.Form)
	}
	if result.Target.Raw != "/r/rust" {
		t.Errorf("Raw = %q, want trimmed target", result.Target.Raw)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "whitespace") {
		t.Errorf("Warnings = %v, want one whitespace warning", result.Warnings)
	}
}

func TestClassifyLenient_Empty(t *testing.T) {
	for _, input := range []string{"", "   "} {
		result := ClassifyLenient(input)
		if result.Target != nil {
			t.Errorf("ClassifyLenient(%q).Target = %+v, want nil", input, result.Target)
		}
		if len(result.Warnings) == 0 {
			t.Errorf("ClassifyLenient(%q) produced no warnings", input)
		}
	}
}

func TestClassifyLenient_MalformedScheme(t *testing.T) {
	result := ClassifyLenient("1a://b")
	if result.Target == nil || result.Target.Form != AbsoluteForm {
		t.Fatalf("Target = %+v, want absolute-form", result.Target)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "scheme") {
		t.Errorf("Warnings = %v, want one scheme warning", result.Warnings)
	}
}

func TestClassifyLenient_SlashRecoversOrigin(t *testing.T) {
	result := ClassifyLenient("http:/zombo.com")
	if result.Target == nil || result.Target.Form != OriginForm {
		t.Fatalf("Target = %+v, want origin-form recovery", result.Target)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("Warnings = %v, want exactly one", result.Warnings)
	}
}

func TestClassifyLenient_CombinedRepairs(t *testing.T) {
	result := ClassifyLenient(" user@example.com/ ")
	if result.Target == nil {
		t.Fatal("Target = nil, want a recovered form")
	}
	if len(result.Warnings) != 2 {
		t.Errorf("Warnings = %v, want whitespace + recovery warnings", result.Warnings)
	}
}
