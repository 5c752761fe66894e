package wpclient

import "encoding/json"

// Rendered is WordPress's rich-text wrapper ({"rendered": "..."}).
type Rendered struct {
	Rendered string `json:"rendered"`
}

// Media is an embedded featured-media entry.
type Media struct {
	ID        int    `json:"id"`
	SourceURL string `json:"source_url"`
}

// Author is an embedded author entry.
type Author struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Term is a taxonomy term. Taxonomy is filled when the API embeds terms with
// their taxonomy name; older responses only guarantee the positional
// convention (group 0 = category, group 1 = tag).
type Term struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Taxonomy string `json:"taxonomy"`
}

// Embedded is the optional side-channel attached when the request carries the
// _embed flag.
type Embedded struct {
	FeaturedMedia []Media  `json:"wp:featuredmedia"`
	Author        []Author `json:"author"`
	Terms         [][]Term `json:"wp:term"`
}

// Post is a raw blog post record. The recommended-product custom fields stay
// raw because editors have stored them as arrays, keyed objects and
// JSON-encoded strings over the years; the normalizer decodes all three.
type Post struct {
	ID       int       `json:"id"`
	Slug     string    `json:"slug"`
	Date     string    `json:"date"`
	Modified string    `json:"modified"`
	Title    Rendered  `json:"title"`
	Content  Rendered  `json:"content"`
	Excerpt  Rendered  `json:"excerpt"`
	Embedded *Embedded `json:"_embedded"`

	MiniRecommendedProducts json.RawMessage `json:"mini_recommended_products"`
	RecommendedProducts     json.RawMessage `json:"recommended_products"`
}

// Review is a raw record of the "review" custom post type.
type Review struct {
	ID       int       `json:"id"`
	Slug     string    `json:"slug"`
	Date     string    `json:"date"`
	Modified string    `json:"modified"`
	Title    Rendered  `json:"title"`
	Content  Rendered  `json:"content"`
	Excerpt  Rendered  `json:"excerpt"`
	Embedded *Embedded `json:"_embedded"`

	StarRating float64  `json:"star_rating"`
	Pros       []string `json:"pros"`
	Cons       []string `json:"cons"`
	Verdict    string   `json:"verdict"`
	AmazonLink string   `json:"amazon_link"`
	Price      float64  `json:"price"`
}

// GalleryImage mirrors the uagb_featured_image_src custom field. Full is a
// mixed-type array whose first element is the URL.
type GalleryImage struct {
	Full []any `json:"full"`
}

// Guide is a raw record of the "guides" custom post type.
type Guide struct {
	ID       int       `json:"id"`
	Slug     string    `json:"slug"`
	Date     string    `json:"date"`
	Modified string    `json:"modified"`
	Title    Rendered  `json:"title"`
	Content  Rendered  `json:"content"`
	Excerpt  Rendered  `json:"excerpt"`
	Embedded *Embedded `json:"_embedded"`

	FeaturedImageSrc        *GalleryImage   `json:"uagb_featured_image_src"`
	MiniRecommendedProducts json.RawMessage `json:"mini_recommended_products"`
	RecommendedProducts     json.RawMessage `json:"recommended_products"`
}

// Streamer is a raw record of the "streamer" custom post type.
type Streamer struct {
	ID       int       `json:"id"`
	Slug     string    `json:"slug"`
	Date     string    `json:"date"`
	Modified string    `json:"modified"`
	Title    Rendered  `json:"title"`
	Content  Rendered  `json:"content"`
	Embedded *Embedded `json:"_embedded"`

	ClassList      []string          `json:"class_list"`
	Socials        map[string]string `json:"streamer_socials"`
	ProfilePicture string            `json:"streamer_profile_picture"`
	OtherPicture   string            `json:"streamer_other_picture"`
	Bio            string            `json:"streamer_bio"`
	Equipment      json.RawMessage   `json:"streamer_equipment"`
}

// TagTerm is a standalone tag record from /tags.
type TagTerm struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// GearProduct is an entry of the custom fallback-products feed. Its shape is
// close to, but not the same as, the product objects editors embed in posts.
type GearProduct struct {
	Title       string  `json:"title"`
	Price       string  `json:"price"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	AmazonURL   string  `json:"amazon_url"`
	Description string  `json:"description"`
	ReviewSlug  string  `json:"review_slug"`
}
