package i18n

import (
	"errors"
	"testing"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		raw  string
		want Locale
		err  error
	}{
		{raw: "id", want: ID},
		{raw: "EN", want: EN},
		{raw: "en-US", want: EN},
		{raw: "id-ID", want: ID},
		{raw: "", err: ErrLocaleRequired},
		{raw: "fr", err: ErrLocaleInvalid},
		{raw: "!!", err: ErrLocaleInvalid},
	}
	for _, tt := range tests {
		got, err := ParseLocale(tt.raw)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Fatalf("ParseLocale(%q) error = %v, want %v", tt.raw, err, tt.err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseLocale(%q) = %q, %v", tt.raw, got, err)
		}
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve("en", "id-ID", ID); got != EN {
		t.Fatalf("explicit locale should win, got %q", got)
	}
	if got := Resolve("", "en-GB,en;q=0.9", ID); got != EN {
		t.Fatalf("expected en from header, got %q", got)
	}
	if got := Resolve("", "fr-FR", EN); got != EN {
		t.Fatalf("expected fallback en, got %q", got)
	}
	if got := Resolve("xx", "", ""); got != Default {
		t.Fatalf("expected default, got %q", got)
	}
}

func TestTranslations(t *testing.T) {
	for key := range messages[EN] {
		if _, ok := messages[ID][key]; !ok {
			t.Fatalf("missing id translation for %s", key)
		}
	}
	if got := T(ID, Present); got != "sekarang" {
		t.Fatalf("unexpected present: %q", got)
	}
	if got := T("xx", HeadingSummary); got != "RINGKASAN" {
		t.Fatalf("unknown locale should use default, got %q", got)
	}
	if got := FormatPeriod(ID, 2024, 6); got != "Juni 2024" {
		t.Fatalf("unexpected id period: %q", got)
	}
	if got := FormatPeriod(EN, 2025, 12); got != "December 2025" {
		t.Fatalf("unexpected en period: %q", got)
	}
}
