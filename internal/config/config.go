package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// defaultHeroIntro is trusted markup; HERO_INTRO may contain inline HTML too.
const defaultHeroIntro = `I&apos;m Jake Champion, I work at the <abbr title="Financial Times">FT</abbr> on their front-end component system, Origami. ` +
	`I used to work in <abbr title="Financial Times">FT</abbr> Labs and before that, <abbr title="British Broadcasting Company">BBC</abbr> News World Service.`

type Config struct {
	// Site
	AppEnv          string
	SiteURL         string
	SiteTitle       string
	SiteDescription string
	Port            string

	// Hero
	AuthorName  string
	HeroIntro   string
	ContactPath string
	GitHubURL   string
	TwitterURL  string

	// Content
	ContentPath   string
	StaticPath    string
	OutputPath    string
	ExcerptLength int
	ReadingWPM    int
	IncludeDrafts bool

	// Observability (optional)
	SentryDSN string

	// Publishing (S3-compatible: AWS S3, MinIO, Cloudflare R2, DigitalOcean Spaces, etc.)
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string // Optional: for S3-compatible services
	S3Prefix    string // Optional: key prefix inside the bucket
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Site
		AppEnv:          envString("APP_ENV", "development"),
		SiteURL:         strings.TrimSuffix(envString("SITE_URL", "http://localhost:8090"), "/"),
		SiteTitle:       envString("SITE_TITLE", "Jake Champion"),
		SiteDescription: envString("SITE_DESCRIPTION", "Notes on the web platform, front-end tooling and open source."),
		Port:            envString("PORT", "8090"),

		// Hero
		AuthorName:  envString("AUTHOR_NAME", "Jake Champion"),
		HeroIntro:   envString("HERO_INTRO", defaultHeroIntro),
		ContactPath: envString("CONTACT_PATH", "/contact/"),
		GitHubURL:   envString("GITHUB_URL", "https://github.com/JakeChampion/"),
		TwitterURL:  envString("TWITTER_URL", "https://twitter.com/JakeDChampion"),

		// Content
		ContentPath:   envString("CONTENT_PATH", "content"),
		StaticPath:    envString("STATIC_PATH", "static"),
		OutputPath:    envString("OUTPUT_PATH", "public"),
		ExcerptLength: envInt("EXCERPT_LENGTH", 200),
		ReadingWPM:    envInt("READING_WPM", 265),
		IncludeDrafts: envBool("INCLUDE_DRAFTS", false),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Publishing
		S3Region:    envString("S3_REGION", "us-east-1"),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""),
		S3Prefix:    strings.Trim(envString("S3_PREFIX", ""), "/"),
	}

	return cfg
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("config invalid positive int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// PublishConfigured reports whether enough S3 settings are present to upload a build.
func (c *Config) PublishConfigured() bool {
	return c.S3Bucket != "" && c.S3Region != ""
}
