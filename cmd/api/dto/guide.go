package dto

// GuideDTO is the tutorial view model. Difficulty comes from the guide's
// "difficulty" taxonomy, not from the positional term groups.
type GuideDTO struct {
	Title         string       `json:"title"`
	Content       string       `json:"content"`
	Excerpt       string       `json:"excerpt"`
	Date          string       `json:"date"`
	Slug          string       `json:"slug"`
	FeaturedImage string       `json:"featured_image"`
	Difficulty    string       `json:"difficulty"`
	ReadTime      string       `json:"read_time"`
	Tags          []string     `json:"tags"`
	Recommended   []ProductDTO `json:"recommended_products"`
}
