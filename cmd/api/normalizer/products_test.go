package normalizer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeProductsArray(t *testing.T) {
	raw := json.RawMessage(`[
		{"title":"Blue Yeti","price":"$129.99","image":"/img/yeti.png","rating":4.5,"amazonUrl":"https://amazon.com/dp/B00N1YPXW2","description":"USB mic"},
		{"title":"Elgato HD60"}
	]`)

	got := DecodeProducts(raw)
	if len(got) != 2 {
		t.Fatalf("DecodeProducts() returned %d products, want 2", len(got))
	}
	assert.Equal(t, "Blue Yeti", got[0].Title)
	assert.Equal(t, "$129.99", got[0].Price)
	assert.Equal(t, 4.5, got[0].Rating)
	// second entry only carries a title; the rest come from defaults
	assert.Equal(t, "Elgato HD60", got[1].Title)
	assert.Equal(t, "Price unavailable", got[1].Price)
	assert.Equal(t, "/images/ImageNotFound.png", got[1].Image)
	assert.Equal(t, "#", got[1].AmazonURL)
}

func TestDecodeProductsKeyedObject(t *testing.T) {
	// numeric-keyed object; "10" must sort after "2", not before
	raw := json.RawMessage(`{
		"10": {"title":"Third"},
		"0":  {"title":"First"},
		"2":  {"title":"Second"}
	}`)

	got := DecodeProducts(raw)
	if len(got) != 3 {
		t.Fatalf("DecodeProducts() returned %d products, want 3", len(got))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if got[i].Title != want {
			t.Errorf("product[%d].Title = %q, want %q", i, got[i].Title, want)
		}
	}
}

func TestDecodeProductsJSONString(t *testing.T) {
	raw := json.RawMessage(`"[{\"title\":\"Stream Deck\"}]"`)

	got := DecodeProducts(raw)
	if len(got) != 1 || got[0].Title != "Stream Deck" {
		t.Fatalf("DecodeProducts(string variant) = %+v, want one Stream Deck", got)
	}
}

func TestDecodeProductsStringRecursesOnce(t *testing.T) {
	// a string inside a string is not unwrapped a second time
	raw := json.RawMessage(`"\"[{\\\"title\\\":\\\"Nested\\\"}]\""`)
	if got := DecodeProducts(raw); len(got) != 0 {
		t.Errorf("DecodeProducts(double-encoded string) = %+v, want empty", got)
	}
}

func TestDecodeProductsDegenerateInputs(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "empty payload", raw: ""},
		{name: "null", raw: "null"},
		{name: "empty array", raw: "[]"},
		{name: "empty object", raw: "{}"},
		{name: "garbage", raw: "{{not json"},
		{name: "number", raw: "42"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := DecodeProducts(json.RawMessage(testCase.raw))
			if got == nil {
				t.Fatal("DecodeProducts() returned nil, want empty slice")
			}
			if len(got) != 0 {
				t.Errorf("DecodeProducts(%q) = %+v, want empty", testCase.raw, got)
			}
		})
	}
}

func TestDecodeProductsNegativeRatingClamped(t *testing.T) {
	got := DecodeProducts(json.RawMessage(`[{"title":"X","rating":-2}]`))
	if len(got) != 1 || got[0].Rating != 0 {
		t.Errorf("DecodeProducts() rating = %+v, want clamped to 0", got)
	}
}

func TestInlineRecommendationsCapsAtThree(t *testing.T) {
	raw := json.RawMessage(`[{"title":"A"},{"title":"B"},{"title":"C"},{"title":"D"},{"title":"E"}]`)

	got := InlineRecommendations(raw)
	if len(got) != 3 {
		t.Fatalf("InlineRecommendations() returned %d products, want 3", len(got))
	}
	// shuffled, but every entry still comes from the input set
	valid := map[string]bool{"A": true, "B": true, "C": true, "D": true, "E": true}
	seen := map[string]bool{}
	for _, p := range got {
		if !valid[p.Title] {
			t.Errorf("unexpected product %q", p.Title)
		}
		if seen[p.Title] {
			t.Errorf("duplicate product %q", p.Title)
		}
		seen[p.Title] = true
	}
}

func TestSidebarRecommendationsPreservesOrder(t *testing.T) {
	raw := json.RawMessage(`[{"title":"A"},{"title":"B"},{"title":"C"},{"title":"D"}]`)

	got := SidebarRecommendations(raw)
	if len(got) != 4 {
		t.Fatalf("SidebarRecommendations() returned %d products, want 4", len(got))
	}
	for i, want := range []string{"A", "B", "C", "D"} {
		if got[i].Title != want {
			t.Errorf("product[%d].Title = %q, want %q", i, got[i].Title, want)
		}
	}
}
