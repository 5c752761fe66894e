package dto

// ReviewDTO is the gear-review view model. AmazonURL is already
// affiliate-rewritten; Price is pre-formatted with the currency symbol.
type ReviewDTO struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt"`
	Date          string   `json:"date"`
	Slug          string   `json:"slug"`
	Category      string   `json:"category"`
	StarRating    float64  `json:"star_rating"`
	Pros          []string `json:"pros"`
	Cons          []string `json:"cons"`
	Verdict       string   `json:"verdict"`
	Price         string   `json:"price"`
	AmazonURL     string   `json:"amazon_url"`
	FeaturedImage string   `json:"featured_image"`
}
