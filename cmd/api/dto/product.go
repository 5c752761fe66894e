package dto

// ProductDTO is a UI-ready product recommendation. Every field is defaulted by
// the normalizer so a partially-populated CMS entry never breaks rendering.
type ProductDTO struct {
	Title       string  `json:"title"`
	Price       string  `json:"price"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	AmazonURL   string  `json:"amazon_url"`
	Description string  `json:"description"`
	// Slug links to an internal review page when one exists.
	Slug string `json:"slug,omitempty"`
}
