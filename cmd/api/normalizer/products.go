package normalizer

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"sort"
	"strconv"

	"streamgearhub/cmd/api/dto"
)

// inlineProductLimit caps the inline "mini recommendations" block.
const inlineProductLimit = 3

// rawProduct mirrors the product objects editors embed in custom fields.
type rawProduct struct {
	Title       string  `json:"title"`
	Price       string  `json:"price"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	AmazonURL   string  `json:"amazonUrl"`
	Description string  `json:"description"`
	Slug        string  `json:"slug"`
}

// DecodeProducts turns a polymorphic recommended-products payload into a
// defaulted product list. Editors have stored this field as a structured
// array, as an object with numeric-like keys, and as a JSON-encoded string of
// either, so decoding walks those variants in order:
//
//	array -> object values (ascending numeric key order) -> string, re-decode -> empty
//
// A payload that matches none of them yields an empty list, never an error.
func DecodeProducts(raw json.RawMessage) []dto.ProductDTO {
	return defaultedProducts(decodeRaw(raw, true))
}

func decodeRaw(raw json.RawMessage, allowString bool) []rawProduct {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var list []rawProduct
	if err := json.Unmarshal(trimmed, &list); err == nil {
		return list
	}

	var keyed map[string]rawProduct
	if err := json.Unmarshal(trimmed, &keyed); err == nil {
		return valuesInKeyOrder(keyed)
	}

	if allowString {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return decodeRaw(json.RawMessage(s), false)
		}
	}

	return nil
}

// valuesInKeyOrder flattens a keyed-object payload. Keys are usually "0","1",
// ... so numeric ordering is tried first, with lexicographic as the tiebreak
// for non-numeric keys.
func valuesInKeyOrder(keyed map[string]rawProduct) []rawProduct {
	keys := make([]string, 0, len(keyed))
	for k := range keyed {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, errI := strconv.Atoi(keys[i])
		nj, errJ := strconv.Atoi(keys[j])
		if errI == nil && errJ == nil {
			return ni < nj
		}
		if errI == nil {
			return true
		}
		if errJ == nil {
			return false
		}
		return keys[i] < keys[j]
	})

	out := make([]rawProduct, 0, len(keys))
	for _, k := range keys {
		out = append(out, keyed[k])
	}
	return out
}

func defaultedProducts(raw []rawProduct) []dto.ProductDTO {
	out := make([]dto.ProductDTO, 0, len(raw))
	for _, p := range raw {
		out = append(out, defaultedProduct(p))
	}
	return out
}

func defaultedProduct(p rawProduct) dto.ProductDTO {
	d := dto.ProductDTO{
		Title:       p.Title,
		Price:       p.Price,
		Image:       p.Image,
		Rating:      p.Rating,
		AmazonURL:   p.AmazonURL,
		Description: p.Description,
		Slug:        p.Slug,
	}
	if d.Title == "" {
		d.Title = defaultProductTitle
	}
	if d.Price == "" {
		d.Price = defaultProductPrice
	}
	if d.Image == "" {
		d.Image = defaultProductImage
	}
	if d.Rating < 0 {
		d.Rating = 0
	}
	if d.AmazonURL == "" {
		d.AmazonURL = defaultProductURL
	}
	return d
}

// InlineRecommendations decodes the payload for the inline "mini
// recommendations" block: shuffled, at most 3 entries.
func InlineRecommendations(raw json.RawMessage) []dto.ProductDTO {
	products := DecodeProducts(raw)
	rand.Shuffle(len(products), func(i, j int) {
		products[i], products[j] = products[j], products[i]
	})
	if len(products) > inlineProductLimit {
		products = products[:inlineProductLimit]
	}
	return products
}

// SidebarRecommendations decodes the payload for the dedicated sidebar:
// the full list, input order preserved. Callers fall back to the curated gear
// feed when this returns no entries.
func SidebarRecommendations(raw json.RawMessage) []dto.ProductDTO {
	return DecodeProducts(raw)
}
