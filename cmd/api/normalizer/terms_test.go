package normalizer

import (
	"testing"

	"streamgearhub/cmd/api/clients/wpclient"
)

func embeddedWithTerms(groups ...[]wpclient.Term) *wpclient.Embedded {
	return &wpclient.Embedded{Terms: groups}
}

func TestTermGroupByTaxonomyName(t *testing.T) {
	// tag group listed first; lookup must not rely on position
	emb := embeddedWithTerms(
		[]wpclient.Term{{Name: "audio", Taxonomy: "post_tag"}},
		[]wpclient.Term{{Name: "Reviews", Taxonomy: "category"}},
	)

	if got := categoryName(emb, "Blog"); got != "Reviews" {
		t.Errorf("categoryName() = %q, want %q", got, "Reviews")
	}
	tags := tagNames(emb, []string{"streaming"})
	if len(tags) != 1 || tags[0] != "audio" {
		t.Errorf("tagNames() = %v, want [audio]", tags)
	}
}

func TestTermGroupPositionalFallback(t *testing.T) {
	// older responses: no taxonomy names, positional convention only
	emb := embeddedWithTerms(
		[]wpclient.Term{{Name: "Tutorials"}},
		[]wpclient.Term{{Name: "obs"}, {Name: "overlays"}},
	)

	if got := categoryName(emb, "Blog"); got != "Tutorials" {
		t.Errorf("categoryName() = %q, want %q", got, "Tutorials")
	}
	tags := tagNames(emb, []string{"streaming"})
	if len(tags) != 2 || tags[0] != "obs" || tags[1] != "overlays" {
		t.Errorf("tagNames() = %v, want [obs overlays]", tags)
	}
}

func TestTermGroupNamedButNoMatch(t *testing.T) {
	// taxonomy names present but the wanted taxonomy absent: the positional
	// fallback must not kick in
	emb := embeddedWithTerms(
		[]wpclient.Term{{Name: "advanced", Taxonomy: "difficulty"}},
	)

	if got := categoryName(emb, "Blog"); got != "Blog" {
		t.Errorf("categoryName() = %q, want default %q", got, "Blog")
	}
}

func TestDifficultyHasNoPositionalFallback(t *testing.T) {
	testCases := []struct {
		name string
		emb  *wpclient.Embedded
		want string
	}{
		{
			name: "by taxonomy name",
			emb: embeddedWithTerms(
				[]wpclient.Term{{Name: "obs", Taxonomy: "post_tag"}},
				[]wpclient.Term{{Name: "advanced", Taxonomy: "difficulty"}},
			),
			want: "advanced",
		},
		{
			name: "unnamed groups never match",
			emb: embeddedWithTerms(
				[]wpclient.Term{{Name: "Tutorials"}},
			),
			want: "beginner",
		},
		{
			name: "no embedded terms",
			emb:  nil,
			want: "beginner",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := difficulty(testCase.emb, "beginner"); got != testCase.want {
				t.Errorf("difficulty() = %q, want %q", got, testCase.want)
			}
		})
	}
}

func TestAuthorName(t *testing.T) {
	if got := authorName(nil); got != "Unknown Author" {
		t.Errorf("authorName(nil) = %q, want %q", got, "Unknown Author")
	}

	emb := &wpclient.Embedded{Author: []wpclient.Author{{Name: "Alex Rivera"}}}
	if got := authorName(emb); got != "Alex Rivera" {
		t.Errorf("authorName() = %q, want %q", got, "Alex Rivera")
	}
}

func TestTagNamesDefaultIsCopied(t *testing.T) {
	def := []string{"streaming"}
	got := tagNames(nil, def)
	got[0] = "mutated"
	if def[0] != "streaming" {
		t.Error("tagNames() aliased the default slice")
	}
}
