package dto

// PostSummaryDTO is the card shape used by listings and the related-posts
// sidebar. RawDate/RawModified keep the unformatted CMS timestamps for callers
// that need freshness ordering; display uses Date.
type PostSummaryDTO struct {
	Title         string   `json:"title"`
	Excerpt       string   `json:"excerpt"`
	Date          string   `json:"date"`
	Author        string   `json:"author"`
	Slug          string   `json:"slug"`
	FeaturedImage string   `json:"featured_image"`
	Category      string   `json:"category"`
	Categories    []string `json:"categories"`
	Tags          []string `json:"tags"`
	RawDate       string   `json:"-"`
	RawModified   string   `json:"-"`
}

// PostDTO is the full blog-post view model.
type PostDTO struct {
	Title        string           `json:"title"`
	Content      string           `json:"content"`
	Excerpt      string           `json:"excerpt"`
	Date         string           `json:"date"`
	Author       string           `json:"author"`
	ReadTime     string           `json:"read_time"`
	CoverImage   string           `json:"cover_image"`
	Slug         string           `json:"slug"`
	Category     string           `json:"category"`
	Tags         []string         `json:"tags"`
	Recommended  []ProductDTO     `json:"recommended_products"`
	RelatedPosts []RelatedPostDTO `json:"related_posts"`
}

// RelatedPostDTO is the minimal shape for the related-posts sidebar.
type RelatedPostDTO struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Slug  string `json:"slug"`
	Image string `json:"image,omitempty"`
}
