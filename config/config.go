package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Marketplace policy, frozen into entity.MarketplacePolicy at start-up
	Marketplace *MarketplaceConfig `json:"marketplace" yaml:"marketplace"`

	// Gateway configuration for escrow payments
	Gateway *GatewayConfig `json:"gateway" yaml:"gateway"`

	// IPN configuration for server-to-server payment notifications
	IPN *IPNConfig `json:"ipn" yaml:"ipn"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for delivery hand-off codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for job publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// RabbitMQ configuration when pubsub.provider is "rabbitmq"
	RabbitMQ *RabbitMQConfig `json:"rabbitmq" yaml:"rabbitmq"`

	// Jobs configuration for the durable job queue
	Jobs *JobsConfig `json:"jobs" yaml:"jobs"`

	// Media configuration for the external image AI service
	Media *MediaConfig `json:"media" yaml:"media"`

	// Metrics configuration for the Prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MarketplaceConfig holds the raw marketplace policy values
type MarketplaceConfig struct {
	CommissionRate          decimal.Decimal `json:"commissionRate" yaml:"commissionRate"`
	ProviderCommissionRate  decimal.Decimal `json:"providerCommissionRate" yaml:"providerCommissionRate"`
	NegotiableCategorySlugs []string        `json:"negotiableCategorySlugs" yaml:"negotiableCategorySlugs"`
	BaseNexusDeliveryFee    decimal.Decimal `json:"baseNexusDeliveryFee" yaml:"baseNexusDeliveryFee"`
	NexusFeePerLineItem     decimal.Decimal `json:"nexusFeePerLineItem" yaml:"nexusFeePerLineItem"`
	MinPayoutAmount         decimal.Decimal `json:"minPayoutAmount" yaml:"minPayoutAmount"`
	Currency                string          `json:"currency" yaml:"currency"`
	BoostAutoSelectionBias  float64         `json:"boostAutoSelectionBias" yaml:"boostAutoSelectionBias"`
}

// GatewayConfig defines the escrow gateway client
type GatewayConfig struct {
	BaseURL       string        `json:"baseUrl" yaml:"baseUrl"`
	Secret        string        `json:"secret" yaml:"secret"`
	ReceiverID    string        `json:"receiverId" yaml:"receiverId"`
	CallbackURL   string        `json:"callbackUrl" yaml:"callbackUrl"`
	InitTimeout   time.Duration `json:"initTimeout" yaml:"initTimeout"`
	VerifyTimeout time.Duration `json:"verifyTimeout" yaml:"verifyTimeout"`
}

// IPNConfig defines IPN validation
type IPNConfig struct {
	// VerifyURL receives the cmd=_notify-validate postback
	VerifyURL     string `json:"verifyUrl" yaml:"verifyUrl"`
	ReceiverEmail string `json:"receiverEmail" yaml:"receiverEmail"`
	// InvoiceField is "public_id" or "internal_id"
	InvoiceField string `json:"invoiceField" yaml:"invoiceField"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for job publishing
type PubSubConfig struct {
	// Provider type: "local", "google", "rabbitmq" or empty for noop
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Expected OIDC audience of push requests (worker)
	Audience string `json:"audience" yaml:"audience"`
}

// RabbitMQConfig defines the broker transport
type RabbitMQConfig struct {
	URL           string `json:"url" yaml:"url"`
	Exchange      string `json:"exchange" yaml:"exchange"`
	Queue         string `json:"queue" yaml:"queue"`
	DeadLetter    string `json:"deadLetter" yaml:"deadLetter"`
	PrefetchCount int    `json:"prefetchCount" yaml:"prefetchCount"`
}

// JobsConfig defines retry behaviour of background jobs
type JobsConfig struct {
	MaxAttempts   int           `json:"maxAttempts" yaml:"maxAttempts"`
	BaseBackoff   time.Duration `json:"baseBackoff" yaml:"baseBackoff"`
	MaxBackoff    time.Duration `json:"maxBackoff" yaml:"maxBackoff"`
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
	SweepBatch    int           `json:"sweepBatch" yaml:"sweepBatch"`
	Lease         time.Duration `json:"lease" yaml:"lease"`
}

// MediaConfig defines the external image AI endpoint
type MediaConfig struct {
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	APIKey   string        `json:"apiKey" yaml:"apiKey"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// A missing .env file is fine; exported variables still apply.
	_ = godotenv.Load()

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				decimalHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Marketplace == nil {
		cfg.Marketplace = &MarketplaceConfig{}
	}
	if cfg.Gateway == nil {
		cfg.Gateway = &GatewayConfig{}
	}
	if cfg.Gateway.InitTimeout <= 0 {
		cfg.Gateway.InitTimeout = 5 * time.Second
	}
	if cfg.Gateway.VerifyTimeout <= 0 {
		cfg.Gateway.VerifyTimeout = 10 * time.Second
	}
	if cfg.IPN == nil {
		cfg.IPN = &IPNConfig{}
	}
	if cfg.IPN.InvoiceField == "" {
		cfg.IPN.InvoiceField = "public_id"
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.Jobs == nil {
		cfg.Jobs = &JobsConfig{}
	}
	if cfg.Jobs.MaxAttempts <= 0 {
		cfg.Jobs.MaxAttempts = 5
	}
	if cfg.Jobs.BaseBackoff <= 0 {
		cfg.Jobs.BaseBackoff = 30 * time.Second
	}
	if cfg.Jobs.MaxBackoff <= 0 {
		cfg.Jobs.MaxBackoff = 30 * time.Minute
	}
	if cfg.Jobs.SweepInterval <= 0 {
		cfg.Jobs.SweepInterval = time.Minute
	}
	if cfg.Jobs.SweepBatch <= 0 {
		cfg.Jobs.SweepBatch = 100
	}
	if cfg.Jobs.Lease <= 0 {
		cfg.Jobs.Lease = 15 * time.Minute
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// decimalHookFunc decodes YAML numbers and env strings into decimal.Decimal.
func decimalHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != decimalType {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			if strings.TrimSpace(v) == "" {
				return decimal.Zero, nil
			}

			return decimal.NewFromString(strings.TrimSpace(v))
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		case float64:
			return decimal.NewFromFloat(v), nil
		case float32:
			return decimal.NewFromFloat32(v), nil
		default:
			return data, nil
		}
	}
}

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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
