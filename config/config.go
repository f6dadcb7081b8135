package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

// Defaults applied after loading.
const (
	defaultReportsLimit    = 30
	defaultReportsMaxLimit = 100
	defaultLineTokenURL    = "https://api.line.me/oauth2/v2.1/token"
	defaultLineIssuer      = "https://access.line.me"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Firebase configuration for auth and Firestore. CredentialsPath may be
	// empty, in which case Application Default Credentials are used.
	Firebase struct {
		ProjectID       string `json:"projectId" yaml:"projectId"`
		CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	} `json:"firebase" yaml:"firebase"`

	// Firestore collection names.
	Firestore FirestoreConfig `json:"firestore" yaml:"firestore"`

	// Line configuration for LINE Login code exchange and ID-token checks.
	Line *LineConfig `json:"line" yaml:"line"`

	// Reports configuration for daily-report retrieval.
	Reports ReportsConfig `json:"reports" yaml:"reports"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirestoreConfig names the collections and sub-collections the application
// reads and writes.
type FirestoreConfig struct {
	CustomersCollection  string `json:"customersCollection" yaml:"customersCollection"`
	CliniciansCollection string `json:"cliniciansCollection" yaml:"cliniciansCollection"`
	DevicesCollection    string `json:"devicesCollection" yaml:"devicesCollection"`
	MasksCollection      string `json:"masksCollection" yaml:"masksCollection"`
	AirTubingCollection  string `json:"airTubingCollection" yaml:"airTubingCollection"`
	ReportsCollection    string `json:"reportsCollection" yaml:"reportsCollection"`
}

// LineConfig defines LINE Login settings. Nil disables the LINE login flow.
type LineConfig struct {
	ChannelID     string `json:"channelId" yaml:"channelId"`
	ChannelSecret string `json:"channelSecret" yaml:"channelSecret"`
	TokenURL      string `json:"tokenUrl" yaml:"tokenUrl"`
	Issuer        string `json:"issuer" yaml:"issuer"`
}

// ReportsConfig bounds daily-report list queries.
type ReportsConfig struct {
	DefaultLimit int `json:"defaultLimit" yaml:"defaultLimit"`
	MaxLimit     int `json:"maxLimit" yaml:"maxLimit"`
}

// LoadWithEnv loads .yaml files through koanf, then overlays environment
// variables whose names are aligned with the existing YAML keys.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

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
			// Example: FIREBASE_PROJECTID -> firebase.projectId (not firebase.projectid)
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

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Reports.DefaultLimit <= 0 {
		cfg.Reports.DefaultLimit = defaultReportsLimit
	}
	if cfg.Reports.MaxLimit <= 0 {
		cfg.Reports.MaxLimit = defaultReportsMaxLimit
	}

	fs := &cfg.Firestore
	if fs.CustomersCollection == "" {
		fs.CustomersCollection = "customers"
	}
	if fs.CliniciansCollection == "" {
		fs.CliniciansCollection = "clinicians"
	}
	if fs.DevicesCollection == "" {
		fs.DevicesCollection = "devices"
	}
	if fs.MasksCollection == "" {
		fs.MasksCollection = "masks"
	}
	if fs.AirTubingCollection == "" {
		fs.AirTubingCollection = "airTubing"
	}
	if fs.ReportsCollection == "" {
		fs.ReportsCollection = "dailyReports"
	}

	if cfg.Line != nil {
		if cfg.Line.TokenURL == "" {
			cfg.Line.TokenURL = defaultLineTokenURL
		}
		if cfg.Line.Issuer == "" {
			cfg.Line.Issuer = defaultLineIssuer
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
