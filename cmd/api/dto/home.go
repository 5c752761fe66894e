package dto

// HomeDTO is the homepage composition. Each section is fetched independently;
// a failed upstream fetch leaves its section empty instead of failing the page.
type HomeDTO struct {
	HeroImage   string           `json:"hero_image"`
	RecentPosts []PostSummaryDTO `json:"recent_posts"`
	Featured    []ProductDTO     `json:"featured_products"`
}
