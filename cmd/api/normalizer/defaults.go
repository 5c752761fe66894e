package normalizer

// ContentType identifies which CMS record kind is being normalized. Defaults
// differ per type, so they live in one table instead of inline conditionals.
type ContentType string

const (
	TypePost     ContentType = "post"
	TypeReview   ContentType = "review"
	TypeGuide    ContentType = "guide"
	TypeStreamer ContentType = "streamer"
)

type typeDefaults struct {
	Category    string
	Placeholder string
	Tags        []string
}

var defaultsByType = map[ContentType]typeDefaults{
	TypePost:     {Category: "Blog", Placeholder: "/placeholder.svg", Tags: []string{"streaming"}},
	TypeReview:   {Category: "Gear", Placeholder: "/placeholder.svg", Tags: []string{"streaming"}},
	TypeGuide:    {Category: "beginner", Placeholder: "/placeholder.svg", Tags: []string{"streaming"}},
	TypeStreamer: {Category: "Gaming", Placeholder: "/images/ImageNotFound.png", Tags: []string{"streaming"}},
}

// Product field defaults; partially-populated CMS entries never reach the UI
// with missing fields.
const (
	defaultProductTitle = "Product Name"
	defaultProductPrice = "Price unavailable"
	defaultProductImage = "/images/ImageNotFound.png"
	defaultProductURL   = "#"
)

const defaultAuthor = "Unknown Author"
