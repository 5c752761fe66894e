package normalizer

import (
	"strings"
	"testing"
)

func TestStripTags(t *testing.T) {
	in := "<p>Best <strong>USB</strong> microphones</p><ul><li>Blue Yeti</li></ul>"
	got := StripTags(in)

	for _, want := range []string{"Best", "USB", "microphones", "Blue Yeti"} {
		if !strings.Contains(got, want) {
			t.Errorf("StripTags() = %q, missing %q", got, want)
		}
	}
	if strings.Contains(got, "<") {
		t.Errorf("StripTags() left markup behind: %q", got)
	}
}

func TestReadTime(t *testing.T) {
	testCases := []struct {
		name  string
		words int
		want  string
	}{
		{name: "empty content", words: 0, want: "1 min read"},
		{name: "short content", words: 42, want: "1 min read"},
		{name: "exactly one minute", words: 200, want: "1 min read"},
		{name: "just over one minute", words: 201, want: "2 min read"},
		{name: "two minutes", words: 400, want: "2 min read"},
		{name: "long guide", words: 1999, want: "10 min read"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			content := "<p>" + strings.TrimSpace(strings.Repeat("word ", testCase.words)) + "</p>"
			if got := ReadTime(content); got != testCase.want {
				t.Errorf("ReadTime(%d words) = %q, want %q", testCase.words, got, testCase.want)
			}
		})
	}
}

func TestWordCountIgnoresMarkup(t *testing.T) {
	if got := WordCount("<div><span>one</span> two <em>three</em></div>"); got != 3 {
		t.Errorf("WordCount() = %d, want 3", got)
	}
}
