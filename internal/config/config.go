package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv   = "PODCASTDAILY_CONFIG"
	logLevelEnv     = "LOG_LEVEL"
	logFormatEnv    = "LOG_FORMAT"
	userAgentEnv    = "FEED_USER_AGENT"
	fetchTimeoutEnv = "FEED_TIMEOUT"
	extractorEnv    = "FEED_EXTRACTOR"
	serverAddrEnv   = "SERVER_ADDR"
	rssBaseURLEnv   = "RSS_BASE_URL"

	DefaultUserAgent = "Mozilla/5.0 (compatible; PodcastBot/1.0)"
	DefaultTimeout   = 10 * time.Second
	DefaultMaxItems  = 10
	DefaultExtractor = "pattern"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Fetch      FetchConfig      `yaml:"fetch"`
	Server     ServerConfig     `yaml:"server"`
	Publishing PublishingConfig `yaml:"publishing"`
	Categories []CategoryConfig `yaml:"categories"`
}

// LoggingConfig selects slog level and handler format (text or json).
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// FetchConfig controls how feeds are downloaded and parsed.
type FetchConfig struct {
	UserAgent    string        `yaml:"userAgent"`
	Timeout      time.Duration `yaml:"timeout"`
	MaxItems     int           `yaml:"maxItems"`
	MaxBodyBytes int64         `yaml:"maxBodyBytes"`
	Extractor    string        `yaml:"extractor"`
}

// ServerConfig is used by the long-running HTTP binary only.
type ServerConfig struct {
	Addr         string   `yaml:"addr"`
	AllowOrigins []string `yaml:"allowOrigins"`
}

// PublishingConfig describes where episode feeds are expected to live.
type PublishingConfig struct {
	RSSBaseURL string `yaml:"rssBaseUrl"`
}

// CategoryConfig is one "bunch" with its feeds per language.
type CategoryConfig struct {
	Name      string           `yaml:"name"`
	Languages []LanguageConfig `yaml:"languages"`
}

// LanguageConfig lists feed URLs for a single language, in fetch order.
type LanguageConfig struct {
	Code  string   `yaml:"code"`
	Feeds []string `yaml:"feeds"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			fileCfg, err := Parse(raw)
			if err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

// Parse decodes a YAML document without applying defaults.
func Parse(raw []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the built-in configuration, including the feed registry.
func Default() Config {
	return defaultConfig()
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(logFormatEnv); v != "" {
		c.Logging.Format = v
	}

	if v := os.Getenv(userAgentEnv); v != "" {
		c.Fetch.UserAgent = v
	}
	if v := os.Getenv(fetchTimeoutEnv); v != "" {
		if d, err := parseTimeout(v); err == nil && d > 0 {
			c.Fetch.Timeout = d
		} else {
			log.Printf("config: invalid %s=%q, keeping %s", fetchTimeoutEnv, v, c.Fetch.Timeout)
		}
	}
	if v := os.Getenv(extractorEnv); v != "" {
		c.Fetch.Extractor = strings.ToLower(strings.TrimSpace(v))
	}

	if v := os.Getenv(serverAddrEnv); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(rssBaseURLEnv); v != "" {
		c.Publishing.RSSBaseURL = strings.TrimSuffix(v, "/")
	}
}

// parseTimeout accepts Go durations ("15s") or plain seconds ("15").
func parseTimeout(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Fetch.UserAgent != "" {
		base.Fetch.UserAgent = override.Fetch.UserAgent
	}
	if override.Fetch.Timeout > 0 {
		base.Fetch.Timeout = override.Fetch.Timeout
	}
	if override.Fetch.MaxItems > 0 {
		base.Fetch.MaxItems = override.Fetch.MaxItems
	}
	if override.Fetch.MaxBodyBytes > 0 {
		base.Fetch.MaxBodyBytes = override.Fetch.MaxBodyBytes
	}
	if override.Fetch.Extractor != "" {
		base.Fetch.Extractor = strings.ToLower(override.Fetch.Extractor)
	}

	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}
	if len(override.Server.AllowOrigins) > 0 {
		base.Server.AllowOrigins = override.Server.AllowOrigins
	}

	if override.Publishing.RSSBaseURL != "" {
		base.Publishing.RSSBaseURL = strings.TrimSuffix(override.Publishing.RSSBaseURL, "/")
	}

	if len(override.Categories) > 0 {
		base.Categories = override.Categories
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Fetch: FetchConfig{
			UserAgent:    DefaultUserAgent,
			Timeout:      DefaultTimeout,
			MaxItems:     DefaultMaxItems,
			MaxBodyBytes: 5 << 20,
			Extractor:    DefaultExtractor,
		},
		Server:     ServerConfig{Addr: ":8888", AllowOrigins: []string{"*"}},
		Publishing: PublishingConfig{RSSBaseURL: "https://podcast.arnavray.ca"},
		Categories: defaultCategories(),
	}
}

func defaultCategories() []CategoryConfig {
	return []CategoryConfig{
		{
			Name: "ai-tech",
			Languages: []LanguageConfig{
				{Code: "en", Feeds: []string{
					"https://techcrunch.com/feed/",
					"https://feeds.arstechnica.com/arstechnica/index",
					"https://www.theverge.com/rss/index.xml",
				}},
				{Code: "de", Feeds: []string{
					"https://www.heise.de/rss/heise-atom.xml",
					"https://rss.golem.de/rss.php?feed=ATOM1.0",
				}},
			},
		},
		{
			Name: "finance-business",
			Languages: []LanguageConfig{
				{Code: "en", Feeds: []string{
					"https://feeds.reuters.com/reuters/businessNews",
					"https://feeds.bloomberg.com/markets/news.rss",
				}},
				{Code: "de", Feeds: []string{
					"https://www.handelsblatt.com/contentexport/feed/finanzen",
					"https://www.tagesschau.de/wirtschaft/index~rss2.xml",
				}},
			},
		},
		{
			Name: "science",
			Languages: []LanguageConfig{
				{Code: "en", Feeds: []string{
					"https://www.sciencedaily.com/rss/computers_math.xml",
					"https://www.sciencedaily.com/rss/top/science.xml",
				}},
				{Code: "de", Feeds: []string{
					"https://www.spektrum.de/alias/rss/spektrum-de-rss-feed/996406",
				}},
			},
		},
		{
			Name: "health",
			Languages: []LanguageConfig{
				{Code: "en", Feeds: []string{
					"https://www.medicalnewstoday.com/rss",
				}},
				{Code: "de", Feeds: []string{
					"https://www.apotheken-umschau.de/rss/",
				}},
			},
		},
		{
			Name: "politics",
			Languages: []LanguageConfig{
				{Code: "en", Feeds: []string{
					"https://feeds.reuters.com/reuters/politicsNews",
				}},
				{Code: "de", Feeds: []string{
					"https://www.tagesschau.de/xml/rss2/",
				}},
			},
		},
	}
}
