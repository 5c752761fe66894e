// Package affiliate decorates outbound marketplace links with the site's
// commission tracking tag.
package affiliate

import (
	"strings"

	"streamgearhub/cmd/api/metrics"
	"streamgearhub/config"
)

// AppendTag appends the affiliate tag to Amazon URLs. Non-marketplace URLs
// and URLs that already carry the tag pass through unchanged, so the rewrite
// is idempotent. Inputs are marketplace URLs from the CMS; substring checks
// are enough, no full URL parsing.
func AppendTag(url string) string {
	cfg := config.GetConfig().Affiliate
	out := appendTag(url, cfg.Domain, cfg.Tag)
	if out != url {
		metrics.AffiliateLinksRewritten.Inc()
	}
	return out
}

func appendTag(url, domain, tag string) string {
	if url == "" || !strings.Contains(url, domain) {
		return url
	}

	param := "tag=" + tag
	if strings.Contains(url, param) {
		return url
	}

	separator := "?"
	if strings.Contains(url, "?") {
		separator = "&"
	}
	return url + separator + param
}
