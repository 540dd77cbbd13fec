// Package config loads the service configuration from config/config.yaml with
// STOREFRONT_* environment overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	// EnvPrefix marks environment variables that override file values.
	// STOREFRONT_HTTP_PORT overrides http.port.
	EnvPrefix = "STOREFRONT_"

	defaultFileName           = "config.yaml"
	defaultMaxRequestBodySize = "100KB"
)

// Config is the root configuration.
type Config struct {
	Env struct {
		Name        string `json:"name" yaml:"name"`
		ServiceName string `json:"serviceName" yaml:"serviceName" validate:"required"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port" validate:"min=1,max=65535"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
			ShutdownTimeout   time.Duration `json:"shutdownTimeout" yaml:"shutdownTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	GRPC struct {
		Port       int  `json:"port" yaml:"port" validate:"min=1,max=65535"`
		Reflection bool `json:"reflection" yaml:"reflection"`
	} `json:"grpc" yaml:"grpc"`

	Catalog   CatalogConfig   `json:"catalog" yaml:"catalog"`
	Pricing   PricingConfig   `json:"pricing" yaml:"pricing"`
	Loyalty   LoyaltyConfig   `json:"loyalty" yaml:"loyalty"`
	SpinWheel SpinWheelConfig `json:"spinWheel" yaml:"spinWheel"`
	ImageGen  ImageGenConfig  `json:"imageGen" yaml:"imageGen"`
	Events    EventsConfig    `json:"events" yaml:"events"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// CatalogConfig selects where products come from.
type CatalogConfig struct {
	// Source is "memory" (generated mock products) or "spanner".
	Source   string        `json:"source" yaml:"source" validate:"oneof=memory spanner"`
	MockSize int           `json:"mockSize" yaml:"mockSize" validate:"min=0"`
	Seed     uint64        `json:"seed" yaml:"seed"`
	Spanner  SpannerConfig `json:"spanner" yaml:"spanner"`
}

type SpannerConfig struct {
	ProjectID  string `json:"projectId" yaml:"projectId"`
	InstanceID string `json:"instanceId" yaml:"instanceId"`
	DatabaseID string `json:"databaseId" yaml:"databaseId"`
}

// Database returns the fully qualified database path.
func (s SpannerConfig) Database() string {
	return "projects/" + s.ProjectID + "/instances/" + s.InstanceID + "/databases/" + s.DatabaseID
}

// PricingConfig carries decimal strings so amounts stay exact.
type PricingConfig struct {
	TaxRate               string            `json:"taxRate" yaml:"taxRate"`
	FreeShippingThreshold string            `json:"freeShippingThreshold" yaml:"freeShippingThreshold"`
	StandardFee           string            `json:"standardFee" yaml:"standardFee"`
	ExpressFee            string            `json:"expressFee" yaml:"expressFee"`
	Coupons               map[string]string `json:"coupons" yaml:"coupons"`
}

type LoyaltyConfig struct {
	Tiers []TierConfig `json:"tiers" yaml:"tiers"`
}

type TierConfig struct {
	Name      string   `json:"name" yaml:"name"`
	MinPoints int64    `json:"minPoints" yaml:"minPoints"`
	Perks     []string `json:"perks" yaml:"perks"`
}

type SpinWheelConfig struct {
	Segments []SegmentConfig `json:"segments" yaml:"segments"`
}

type SegmentConfig struct {
	Label string `json:"label" yaml:"label"`
	Kind  string `json:"kind" yaml:"kind"`
	Value int64  `json:"value" yaml:"value"`
	Color string `json:"color" yaml:"color"`
}

// ImageGenConfig configures the AI design generator.
type ImageGenConfig struct {
	// Provider is "openai" (HTTP images endpoint) or "genai" (Imagen via the Gemini API).
	Provider string        `json:"provider" yaml:"provider" validate:"oneof=openai genai"`
	Endpoint string        `json:"endpoint" yaml:"endpoint" validate:"omitempty,url"`
	APIKey   string        `json:"apiKey" yaml:"apiKey"`
	Model    string        `json:"model" yaml:"model"`
	Size     string        `json:"size" yaml:"size"`
	Count    int           `json:"count" yaml:"count" validate:"min=1,max=10"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout" validate:"gt=0"`
}

// EventsConfig selects where domain events go. Without "spanner" the
// in-memory log serves the events listing.
type EventsConfig struct {
	// Provider is "memory", "pubsub" or "spanner" (the domain_events table in
	// the catalog database).
	Provider      string `json:"provider" yaml:"provider" validate:"oneof=memory pubsub spanner"`
	ProjectID     string `json:"projectId" yaml:"projectId" validate:"required_if=Provider pubsub"`
	TopicID       string `json:"topicId" yaml:"topicId" validate:"required_if=Provider pubsub"`
	LogCapacity   int    `json:"logCapacity" yaml:"logCapacity" validate:"min=0"`
	RetentionDays int    `json:"retentionDays" yaml:"retentionDays" validate:"min=0"`
}

// New loads config.yaml from the usual locations relative to the working directory.
func New() (*Config, error) {
	return Load("")
}

// Load reads path (or searches for config.yaml when path is empty), applies
// environment overrides, fills defaults and validates the result.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfigFile(".", "config", "../config", "../../config")
		if err != nil {
			return nil, err
		}
		path = found
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read config %s failed", path)
	}

	existing := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(strings.TrimPrefix(key, EnvPrefix), existing), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(Config)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal config %s failed", path)
	}

	cfg.applyDefaults()
	cfg.applyProviderKeys()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration without reading any file.
func Default() *Config {
	cfg := new(Config)
	cfg.applyDefaults()
	return cfg
}

// Validate checks field constraints and that the pricing, loyalty and wheel
// sections build valid domain objects.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if c.UsesSpanner() && (c.Catalog.Spanner.ProjectID == "" ||
		c.Catalog.Spanner.InstanceID == "" || c.Catalog.Spanner.DatabaseID == "") {
		return errors.New("invalid config: catalog.spanner needs projectId, instanceId and databaseId")
	}
	if _, err := c.Pricing.Policy(); err != nil {
		return errors.Wrap(err, "invalid config: pricing")
	}
	if _, err := c.Pricing.CouponBook(); err != nil {
		return errors.Wrap(err, "invalid config: pricing.coupons")
	}
	if _, err := c.Loyalty.TierTable(); err != nil {
		return errors.Wrap(err, "invalid config: loyalty.tiers")
	}
	if _, err := c.SpinWheel.Wheel(); err != nil {
		return errors.Wrap(err, "invalid config: spinWheel.segments")
	}
	return nil
}

// UsesSpanner reports whether the catalog or the event store lives in Spanner.
func (c *Config) UsesSpanner() bool {
	return c.Catalog.Source == "spanner" || c.Events.Provider == "spanner"
}

func (c *Config) applyDefaults() {
	if c.Env.ServiceName == "" {
		c.Env.ServiceName = "storefront-service"
	}
	if c.Env.Log.Level == "" {
		c.Env.Log.Level = "info"
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8080
	}
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.HTTP.Timeouts.ShutdownTimeout == 0 {
		c.HTTP.Timeouts.ShutdownTimeout = 10 * time.Second
	}
	if c.GRPC.Port == 0 {
		c.GRPC.Port = 9090
	}
	if c.Catalog.Source == "" {
		c.Catalog.Source = "memory"
	}
	if c.Catalog.MockSize == 0 {
		c.Catalog.MockSize = 20
	}

	defaults := defaultPricing()
	if c.Pricing.TaxRate == "" {
		c.Pricing.TaxRate = defaults.TaxRate
	}
	if c.Pricing.FreeShippingThreshold == "" {
		c.Pricing.FreeShippingThreshold = defaults.FreeShippingThreshold
	}
	if c.Pricing.StandardFee == "" {
		c.Pricing.StandardFee = defaults.StandardFee
	}
	if c.Pricing.ExpressFee == "" {
		c.Pricing.ExpressFee = defaults.ExpressFee
	}
	if c.Pricing.Coupons == nil {
		c.Pricing.Coupons = defaults.Coupons
	}
	if c.Loyalty.Tiers == nil {
		c.Loyalty.Tiers = defaultTiers()
	}
	if c.SpinWheel.Segments == nil {
		c.SpinWheel.Segments = defaultSegments()
	}

	if c.ImageGen.Provider == "" {
		c.ImageGen.Provider = "openai"
	}
	if c.ImageGen.Provider == "openai" && c.ImageGen.Endpoint == "" {
		c.ImageGen.Endpoint = "https://api.openai.com/v1/images/generations"
	}
	if c.ImageGen.Model == "" && c.ImageGen.Provider == "genai" {
		c.ImageGen.Model = "imagen-3.0-generate-002"
	}
	if c.ImageGen.Size == "" {
		c.ImageGen.Size = "512x512"
	}
	if c.ImageGen.Count == 0 {
		c.ImageGen.Count = 4
	}
	if c.ImageGen.Timeout == 0 {
		c.ImageGen.Timeout = 60 * time.Second
	}

	if c.Events.Provider == "" {
		c.Events.Provider = "memory"
	}
	if c.Events.LogCapacity == 0 {
		c.Events.LogCapacity = 10000
	}
	if c.Events.RetentionDays == 0 {
		c.Events.RetentionDays = 30
	}
}

// applyProviderKeys falls back to the providers' conventional variables when
// no key is configured.
func (c *Config) applyProviderKeys() {
	if c.ImageGen.APIKey != "" {
		return
	}
	switch c.ImageGen.Provider {
	case "openai":
		c.ImageGen.APIKey = os.Getenv("OPENAI_API_KEY")
	case "genai":
		c.ImageGen.APIKey = os.Getenv("GEMINI_API_KEY")
	}
}

func findConfigFile(searchPaths ...string) (string, error) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, defaultFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", errors.Errorf("config file %s not found in any search path", defaultFileName)
}

// canonicalizeEnvKey converts HTTP_TIMEOUTS_READTIMEOUT into http.timeouts.readTimeout,
// aligning each segment with the keys already loaded from YAML.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)
		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
