// Package normalizer converts raw WordPress records into the stable view
// models the UI renders. Every output field is defaulted; a record missing
// optional data never produces a nil or empty required field, and nothing in
// this package performs I/O or returns an error.
package normalizer

import (
	"fmt"
	"html"
	"strings"
	"time"

	"streamgearhub/cmd/api/clients/wpclient"
	"streamgearhub/cmd/api/dto"
)

// Post builds the full blog-post view model.
func Post(p wpclient.Post) dto.PostDTO {
	def := defaultsByType[TypePost]
	return dto.PostDTO{
		Title:        html.UnescapeString(p.Title.Rendered),
		Content:      p.Content.Rendered,
		Excerpt:      p.Excerpt.Rendered,
		Date:         DisplayDate(p.Date),
		Author:       authorName(p.Embedded),
		ReadTime:     ReadTime(p.Content.Rendered),
		CoverImage:   coverImage("", p.Embedded, def.Placeholder),
		Slug:         p.Slug,
		Category:     categoryName(p.Embedded, def.Category),
		Tags:         tagNames(p.Embedded, def.Tags),
		Recommended:  SidebarRecommendations(p.MiniRecommendedProducts),
		RelatedPosts: []dto.RelatedPostDTO{},
	}
}

// PostSummary builds the card shape used by listings and the related-posts
// candidate pool.
func PostSummary(p wpclient.Post) dto.PostSummaryDTO {
	def := defaultsByType[TypePost]
	categories := categoryNames(p.Embedded)
	category := def.Category
	if len(categories) > 0 {
		category = categories[0]
	}
	return dto.PostSummaryDTO{
		Title:         html.UnescapeString(p.Title.Rendered),
		Excerpt:       p.Excerpt.Rendered,
		Date:          DisplayDate(p.Date),
		Author:        authorName(p.Embedded),
		Slug:          p.Slug,
		FeaturedImage: coverImage("", p.Embedded, def.Placeholder),
		Category:      category,
		Categories:    categories,
		Tags:          tagNames(p.Embedded, def.Tags),
		RawDate:       p.Date,
		RawModified:   p.Modified,
	}
}

// Review builds the gear-review view model. The amazon link is rewritten with
// the affiliate tag by the service layer, not here.
func Review(r wpclient.Review) dto.ReviewDTO {
	def := defaultsByType[TypeReview]
	d := dto.ReviewDTO{
		Title:         html.UnescapeString(r.Title.Rendered),
		Content:       r.Content.Rendered,
		Excerpt:       r.Excerpt.Rendered,
		Date:          DisplayDate(r.Date),
		Slug:          r.Slug,
		Category:      categoryName(r.Embedded, def.Category),
		StarRating:    r.StarRating,
		Pros:          r.Pros,
		Cons:          r.Cons,
		Verdict:       r.Verdict,
		Price:         FormatUSD(r.Price),
		AmazonURL:     r.AmazonLink,
		FeaturedImage: coverImage("", r.Embedded, def.Placeholder),
	}
	if d.Pros == nil {
		d.Pros = []string{}
	}
	if d.Cons == nil {
		d.Cons = []string{}
	}
	if d.StarRating < 0 {
		d.StarRating = 0
	}
	if d.StarRating > 5 {
		d.StarRating = 5
	}
	return d
}

// Guide builds the tutorial view model. Difficulty comes from the guide's
// "difficulty" taxonomy, located by taxonomy name because guides may embed
// several unordered term groups.
func Guide(g wpclient.Guide) dto.GuideDTO {
	def := defaultsByType[TypeGuide]
	return dto.GuideDTO{
		Title:         html.UnescapeString(g.Title.Rendered),
		Content:       g.Content.Rendered,
		Excerpt:       g.Excerpt.Rendered,
		Date:          DisplayDate(g.Date),
		Slug:          g.Slug,
		FeaturedImage: coverImage(galleryImageURL(g.FeaturedImageSrc), g.Embedded, def.Placeholder),
		Difficulty:    difficulty(g.Embedded, def.Category),
		ReadTime:      ReadTime(g.Content.Rendered),
		Tags:          tagNames(g.Embedded, def.Tags),
		Recommended:   InlineRecommendations(g.MiniRecommendedProducts),
	}
}

// Streamer builds the streamer-setup view model.
func Streamer(s wpclient.Streamer) dto.StreamerDTO {
	def := defaultsByType[TypeStreamer]
	image := s.OtherPicture
	if image == "" {
		image = s.ProfilePicture
	}
	if image == "" {
		image = def.Placeholder
	}
	return dto.StreamerDTO{
		Name:       html.UnescapeString(s.Title.Rendered),
		Slug:       s.Slug,
		Image:      image,
		Bio:        s.Bio,
		Info:       s.Content.Rendered,
		Platforms:  streamerPlatforms(s.Socials),
		Categories: classListCategories(s.ClassList, def.Category),
		Equipment:  EquipmentGroups(s.Equipment),
	}
}

// GearProduct maps a fallback-feed entry into the shared product shape with
// the same field defaults as embedded products.
func GearProduct(p wpclient.GearProduct) dto.ProductDTO {
	return defaultedProduct(rawProduct{
		Title:       p.Title,
		Price:       p.Price,
		Image:       p.Image,
		Rating:      p.Rating,
		AmazonURL:   p.AmazonURL,
		Description: p.Description,
		Slug:        p.ReviewSlug,
	})
}

// DisplayDate formats a raw CMS timestamp as "January 2, 2006". WordPress
// emits local timestamps without a zone; RFC3339 covers installations behind
// proxies that add one. Unparseable input passes through unchanged so the
// field is never empty.
func DisplayDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return raw
}

// FreshnessDate picks the timestamp used for freshness-ordered listings:
// modified when present, else the publish date.
func FreshnessDate(date, modified string) string {
	if modified != "" {
		return modified
	}
	return date
}

// FormatUSD renders a price as "$1,599.99".
func FormatUSD(price float64) string {
	if price < 0 {
		price = 0
	}
	s := fmt.Sprintf("%.2f", price)
	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return "$" + b.String() + fracPart
}

// coverImage resolves the featured image: content-type alternate field first,
// then the embedded featured media, then the placeholder.
func coverImage(alternate string, emb *wpclient.Embedded, placeholder string) string {
	if alternate != "" {
		return alternate
	}
	if u := featuredMediaURL(emb); u != "" {
		return u
	}
	return placeholder
}

// galleryImageURL digs the URL out of the uagb_featured_image_src field, whose
// "full" entry is a mixed-type array with the URL first.
func galleryImageURL(img *wpclient.GalleryImage) string {
	if img == nil || len(img.Full) == 0 {
		return ""
	}
	if u, ok := img.Full[0].(string); ok {
		return u
	}
	return ""
}

func difficulty(emb *wpclient.Embedded, def string) string {
	group := termGroup(emb, "difficulty", -1)
	if len(group) > 0 && group[0].Name != "" {
		return group[0].Name
	}
	return def
}

// streamerPlatforms derives the platform badge list from the socials map in a
// fixed order. Streamers without socials default to twitch.
func streamerPlatforms(socials map[string]string) []string {
	platforms := make([]string, 0, 3)
	for _, p := range []string{"twitch", "youtube", "kick"} {
		if socials[p] != "" {
			platforms = append(platforms, p)
		}
	}
	if len(platforms) == 0 {
		platforms = append(platforms, "twitch")
	}
	return platforms
}

// classListCategories converts WordPress class_list entries such as
// "category-just-chatting" into display names ("Just Chatting").
func classListCategories(classList []string, def string) []string {
	categories := make([]string, 0, len(classList))
	for _, class := range classList {
		name, ok := strings.CutPrefix(class, "category-")
		if !ok {
			continue
		}
		words := strings.Split(name, "-")
		for i, w := range words {
			if w == "" {
				continue
			}
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
		categories = append(categories, strings.Join(words, " "))
	}
	if len(categories) == 0 {
		categories = append(categories, def)
	}
	return categories
}
