package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging   LoggingConfig   `yaml:"logging"`
	SiteURL   string          `yaml:"site_url"`
	WordPress WordPressConfig `yaml:"wordpress"`
	Affiliate AffiliateConfig `yaml:"affiliate"`
	Fetch     FetchConfig     `yaml:"fetch"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// WordPressConfig points at the headless CMS. BaseURL is the WordPress
// installation root; the REST prefixes are derived from it.
type WordPressConfig struct {
	BaseURL string `yaml:"base_url"`
}

// RestURL is the standard WordPress REST namespace (posts, media, tags, CPTs).
func (w WordPressConfig) RestURL() string {
	return w.BaseURL + "/wp-json/wp/v2"
}

// CustomURL is the site-specific namespace (fallback gear products feed).
func (w WordPressConfig) CustomURL() string {
	return w.BaseURL + "/wp-json/streamgearhub/v1"
}

// AffiliateConfig drives outbound marketplace link rewriting.
type AffiliateConfig struct {
	Domain string `yaml:"domain"`
	Tag    string `yaml:"tag"`
}

type FetchConfig struct {
	// PostsPerPage is the default page size for post listings.
	PostsPerPage int `yaml:"posts_per_page"`
	// ArchivePerPage is the page size used when a whole collection is needed
	// (tag archives, related-post candidate pools).
	ArchivePerPage int `yaml:"archive_per_page"`
	// RelatedLimit caps the related-posts sidebar.
	RelatedLimit int `yaml:"related_limit"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyDefaults(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func applyDefaults(c *AppConfig) {
	if env := os.Getenv("WORDPRESS_BASE_URL"); env != "" {
		c.WordPress.BaseURL = env
	}
	if c.WordPress.BaseURL == "" {
		c.WordPress.BaseURL = "http://localhost/mylocalwp"
	}
	if c.SiteURL == "" {
		c.SiteURL = "https://streamgearhub.com"
	}
	if c.Affiliate.Domain == "" {
		c.Affiliate.Domain = "amazon.com"
	}
	if c.Affiliate.Tag == "" {
		c.Affiliate.Tag = "streamgearh09-20"
	}
	if c.Fetch.PostsPerPage <= 0 {
		c.Fetch.PostsPerPage = 9
	}
	if c.Fetch.ArchivePerPage <= 0 {
		c.Fetch.ArchivePerPage = 100
	}
	if c.Fetch.RelatedLimit <= 0 {
		c.Fetch.RelatedLimit = 3
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
