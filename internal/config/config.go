package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort        = 2333
	defaultEnv         = "development"
	defaultDBHost      = "127.0.0.1"
	defaultDBPort      = 3306
	defaultDBUser      = "root"
	defaultDBName      = "okazmarkt"
	defaultDBCharset   = "utf8mb4"
	defaultRedisURL    = "redis://localhost:6379/0"
	defaultLintEvery   = 6 * time.Hour
	defaultLocale      = "nl-BE"
)

// AppConfig is the normalized runtime configuration.
type AppConfig struct {
	Port           int
	Env            string
	DSN            string
	RedisURL       string
	JWTSecret      string
	AllowedOrigins []string
	DefaultLocale  string

	// MediaServiceURL switches the publish gate's media count to the remote
	// media service; empty means count rows locally.
	MediaServiceURL string

	Catalog CatalogConfig
}

// CatalogConfig points at the optional YAML overlays for the field registry,
// the per-category schemas, and the vehicle reference snapshot.
type CatalogConfig struct {
	FieldsFile   string
	SchemasFile  string
	VehiclesFile string
	LintInterval time.Duration
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

// rawAppConfig mirrors the YAML document, tolerating the alias spellings that
// accumulated in deployment configs.
type rawAppConfig struct {
	Port     int    `yaml:"port"`
	Env      string `yaml:"env"`
	NodeEnv  string `yaml:"node_env"`
	DSN      string `yaml:"dsn"`
	Database struct {
		DSN      string `yaml:"dsn"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		Charset  string `yaml:"charset"`
	} `yaml:"database"`
	RedisURL           string   `yaml:"redis_url"`
	JWTSecret          string   `yaml:"jwt_secret"`
	JWTSecretLegacy    string   `yaml:"jwtsecret"`
	AllowedOrigins     []string `yaml:"allowed_origins"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	DefaultLocale      string   `yaml:"default_locale"`
	MediaServiceURL    string   `yaml:"media_service_url"`
	Catalog            struct {
		FieldsFile   string `yaml:"fields_file"`
		SchemasFile  string `yaml:"schemas_file"`
		VehiclesFile string `yaml:"vehicles_file"`
		LintInterval string `yaml:"lint_interval"`
	} `yaml:"catalog"`
}

// Load reads and normalizes the YAML config file. A missing file yields the
// defaults, so a bare binary starts in development mode.
func Load(path string) (*AppConfig, error) {
	var raw rawAppConfig
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults only
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return normalize(&raw)
}

func normalize(raw *rawAppConfig) (*AppConfig, error) {
	cfg := &AppConfig{
		Port:            raw.Port,
		Env:             strings.TrimSpace(firstNonEmpty(raw.Env, raw.NodeEnv, defaultEnv)),
		RedisURL:        strings.TrimSpace(firstNonEmpty(raw.RedisURL, defaultRedisURL)),
		JWTSecret:       strings.TrimSpace(firstNonEmpty(raw.JWTSecret, raw.JWTSecretLegacy)),
		DefaultLocale:   strings.TrimSpace(firstNonEmpty(raw.DefaultLocale, defaultLocale)),
		MediaServiceURL: strings.TrimSpace(raw.MediaServiceURL),
	}
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}

	cfg.AllowedOrigins = raw.AllowedOrigins
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = raw.CORSAllowedOrigins
	}

	cfg.DSN = strings.TrimSpace(firstNonEmpty(raw.DSN, raw.Database.DSN))
	if cfg.DSN == "" {
		cfg.DSN = buildDSN(raw)
	}

	cfg.Catalog = CatalogConfig{
		FieldsFile:   strings.TrimSpace(raw.Catalog.FieldsFile),
		SchemasFile:  strings.TrimSpace(raw.Catalog.SchemasFile),
		VehiclesFile: strings.TrimSpace(raw.Catalog.VehiclesFile),
		LintInterval: defaultLintEvery,
	}
	if s := strings.TrimSpace(raw.Catalog.LintInterval); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("catalog.lint_interval: %w", err)
		}
		cfg.Catalog.LintInterval = d
	}

	if !cfg.IsDev() && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required in production")
	}
	return cfg, nil
}

func buildDSN(raw *rawAppConfig) string {
	db := raw.Database
	host := firstNonEmpty(strings.TrimSpace(db.Host), defaultDBHost)
	user := firstNonEmpty(strings.TrimSpace(db.User), strings.TrimSpace(db.Username), defaultDBUser)
	name := firstNonEmpty(strings.TrimSpace(db.Name), defaultDBName)
	charset := firstNonEmpty(strings.TrimSpace(db.Charset), defaultDBCharset)
	port := db.Port
	if port == 0 {
		port = defaultDBPort
	}
	cred := user
	if db.Password != "" {
		cred = user + ":" + db.Password
	}
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		cred, host, port, name, charset)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
