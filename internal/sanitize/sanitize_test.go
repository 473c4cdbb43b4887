package sanitize

import (
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "hello world", "hello world"},
		{"nul bytes", "hel\x00lo", "hello"},
		{"html tag", "hello <script>alert(1)</script> world", "hello alert(1) world"},
		{"unterminated tag", "hello <script", "hello "},
		{"nested angle brackets", "a <<b>c> d", "a c d"},
		{"stray closing bracket", "a > b", "a b"},
		{"javascript protocol", "click javascript:alert(1)", "click alert(1)"},
		{"javascript protocol mixed case", "JaVaScRiPt:alert(1)", "alert(1)"},
		{"reassembled javascript protocol", "javajavascript:script:x", "x"},
		{"event handler", "x onclick=alert(1)", "x alert(1)"},
		{"event handler with spaces", "x onmouseover = alert(1)", "x alert(1)"},
		{"whitespace collapse", "a \t\n  b", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.input); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTextIdempotent(t *testing.T) {
	inputs := []string{
		"plain",
		"<a href=x>link</a>",
		"javajavascript:script:evil",
		"oonclick=nclick=evil",
		"a\x00<b>\nc   javascript:d",
		"<<<>>>",
	}

	for _, input := range inputs {
		once := Text(input)
		twice := Text(once)
		if once != twice {
			t.Errorf("Text not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestTextNeverEmitsDangerousContent(t *testing.T) {
	inputs := []string{
		"<script>javascript:alert(1)</script>",
		"a < b > c",
		"\x00\x00",
		"JAVASCRIPT:JAVASCRIPT:",
		"<img src=x onerror=alert(1)>",
	}

	for _, input := range inputs {
		got := Text(input)
		if strings.ContainsAny(got, "<>\x00") {
			t.Errorf("Text(%q) = %q still contains angle brackets or NUL", input, got)
		}
		if strings.Contains(strings.ToLower(got), "javascript:") {
			t.Errorf("Text(%q) = %q still contains javascript:", input, got)
		}
	}
}

func TestBounded(t *testing.T) {
	if got := Bounded("  hello  "); got != "hello" {
		t.Errorf("Bounded trim = %q, want %q", got, "hello")
	}

	long := strings.Repeat("a", 600)
	if got := Bounded(long); len([]rune(got)) != 500 {
		t.Errorf("Bounded length = %d, want 500", len([]rune(got)))
	}
}

func TestLinkCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"no links here", 0},
		{"see http://a.com", 1},
		{"http://a.com and https://b.com", 2},
		{"http://a.com https://b.com www.c.com", 3},
		{"WWW.SHOUTY.COM", 1},
	}

	for _, tt := range tests {
		if got := LinkCount(tt.input); got != tt.want {
			t.Errorf("LinkCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
