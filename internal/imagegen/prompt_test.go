package imagegen

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDetectStyle(t *testing.T) {
	cases := map[string]string{
		"Draw a cat in watercolor":                     "watercolor",
		"an OIL PAINTING of a harbour":                 "oil_painting",
		"a 3d render of a robot":                       "3d_render",
		"realistic cartoon dog":                        "realistic",
		"a cartoon sketch":                             "cartoon",
		"Generate an image of a sunset over mountains": "",
		"minimalist poster with a vintage feel":        "minimalist",
	}
	for q, want := range cases {
		if got := DetectStyle(q); got != want {
			t.Errorf("DetectStyle(%q) = %q, want %q", q, got, want)
		}
	}
}

func TestStripRequestPhrase(t *testing.T) {
	cases := map[string]string{
		"Generate an image of a sunset over mountains": "a sunset over mountains",
		"Please CREATE IMAGE OF A Red Fox":             "A Red Fox",
		"draw a cat":                                   "a cat",
		"Show me a castle":                             "a castle",
		"I want an image of the sea":                   "the sea",
		"a bowl of fruit":                              "a bowl of fruit",
		// "draw" is checked before "picture of"
		"a picture of someone drawing": "ing",
	}
	for q, want := range cases {
		if got := StripRequestPhrase(q); got != want {
			t.Errorf("StripRequestPhrase(%q) = %q, want %q", q, got, want)
		}
	}
}

func TestStripRequestPhrase_CaseWidthChanges(t *testing.T) {
	// Ⱥ is two bytes but lower-cases to the three-byte ⱥ.
	cases := []struct {
		query string
		want  string
	}{
		{strings.Repeat("Ⱥ", 10) + " draw", ""},
		{"ȺȺȺ DRAW a café by the sea", "a café by the sea"},
		{"Ⱥ show me Ⱥ castle", "Ⱥ castle"},
		{"İstanbul picture of the Bosphorus", "the Bosphorus"},
		{"Ⱥ no trigger here", "Ⱥ no trigger here"},
	}
	for _, tc := range cases {
		got := StripRequestPhrase(tc.query)
		if got != tc.want {
			t.Errorf("StripRequestPhrase(%q) = %q, want %q", tc.query, got, tc.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("StripRequestPhrase(%q) returned invalid UTF-8 %q", tc.query, got)
		}
	}
}

func TestSafeFileName(t *testing.T) {
	cases := map[string]string{
		"a sunset over mountains":                       "a_sunset_over_mountains",
		"cat & dog: friends!":                           "cat__dog_friends",
		"a very long prompt that keeps going on and on": "a_very_long_prompt_that_keeps",
		"  spaced  ":                                    "spaced",
	}
	for in, want := range cases {
		if got := SafeFileName(in); got != want {
			t.Errorf("SafeFileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStyles(t *testing.T) {
	s := Styles()
	if len(s) != 10 || s[0].Name != "realistic" || s[9].Name != "vintage" {
		t.Fatalf("unexpected styles %+v", s)
	}
	s[0].Name = "changed"
	if Styles()[0].Name != "realistic" {
		t.Error("Styles must return a copy")
	}
}

func TestValidSizeQuality(t *testing.T) {
	if !ValidSize("1792x1024") || ValidSize("512x512") {
		t.Error("size validation")
	}
	if !ValidQuality("hd") || ValidQuality("ultra") {
		t.Error("quality validation")
	}
}

func TestFormat(t *testing.T) {
	got := Format(Output{
		Query:          "Generate an image of a cat",
		EnhancedPrompt: "A fluffy cat",
		ImageURL:       "https://img/1.png",
		LocalPath:      "generated_images/x.png",
	})
	want := strings.Join([]string{
		"Image Generated Successfully!",
		strings.Repeat("-", 40),
		"Original Prompt: Generate an image of a cat",
		"\nEnhanced Prompt: A fluffy cat",
		"\nImage URL: https://img/1.png",
		"Saved to: generated_images/x.png",
	}, "\n")
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	if got := Format(Output{Error: MsgRateLimited}); got != "Image Generation Error: "+MsgRateLimited {
		t.Errorf("error form = %q", got)
	}
}
