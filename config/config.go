package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Provider ProviderConfig `yaml:"provider"`
	Planner  PlannerConfig  `yaml:"planner"`
	Stations StationsConfig `yaml:"stations"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
	ResultsDir string `yaml:"results_dir"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr               string `yaml:"addr"`
	Password           string `yaml:"password"`
	DB                 int    `yaml:"db"`
	ScheduleTTLSeconds int    `yaml:"schedule_ttl_seconds"`
}

func (r RedisConfig) ScheduleTTL() time.Duration {
	return time.Duration(r.ScheduleTTLSeconds) * time.Second
}

type KafkaConfig struct {
	Brokers           []string `yaml:"brokers"`
	PlanRequestsTopic string   `yaml:"plan_requests_topic"`
	PlanResultsTopic  string   `yaml:"plan_results_topic"`
	GroupID           string   `yaml:"group_id"`
}

type ProviderConfig struct {
	BaseURL        string `yaml:"base_url"`
	APIKey         string `yaml:"api_key"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxRetries     int    `yaml:"max_retries"`
}

func (p ProviderConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// PlannerConfig pointers are nil when the key is absent, so an explicit 0
// survives defaulting. A zero max_frontier disables the cap.
type PlannerConfig struct {
	TransferThresholdMinutes *int `yaml:"transfer_threshold_minutes"`
	MaxFrontier              *int `yaml:"max_frontier"`
	FetchConcurrency         int  `yaml:"fetch_concurrency"`
}

func (p PlannerConfig) TransferThreshold() time.Duration {
	if p.TransferThresholdMinutes == nil {
		return defaultTransferThresholdMinutes * time.Minute
	}
	return time.Duration(*p.TransferThresholdMinutes) * time.Minute
}

func (p PlannerConfig) FrontierLimit() int {
	if p.MaxFrontier == nil {
		return defaultMaxFrontier
	}
	return *p.MaxFrontier
}

// StationsConfig selects where station codes are loaded from: "file" or "postgres".
type StationsConfig struct {
	Source string `yaml:"source"`
	File   string `yaml:"file"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

const (
	defaultTransferThresholdMinutes = 15
	defaultMaxFrontier              = 100000
)

func intPtr(v int) *int {
	return &v
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.Provider.BaseURL == "" {
		c.Provider.BaseURL = "https://api.rasp.yandex.net/v3.0"
	}
	if c.Provider.TimeoutSeconds <= 0 {
		c.Provider.TimeoutSeconds = 10
	}
	if c.Provider.MaxRetries < 0 {
		c.Provider.MaxRetries = 0
	}
	if c.Planner.TransferThresholdMinutes == nil || *c.Planner.TransferThresholdMinutes < 0 {
		c.Planner.TransferThresholdMinutes = intPtr(defaultTransferThresholdMinutes)
	}
	if c.Planner.MaxFrontier == nil || *c.Planner.MaxFrontier < 0 {
		c.Planner.MaxFrontier = intPtr(defaultMaxFrontier)
	}
	if c.Planner.FetchConcurrency <= 0 {
		c.Planner.FetchConcurrency = 4
	}
	if c.Redis.ScheduleTTLSeconds <= 0 {
		c.Redis.ScheduleTTLSeconds = 300
	}
	if c.Stations.Source == "" {
		c.Stations.Source = "file"
	}
	if c.Stations.File == "" {
		c.Stations.File = "datasource/codes.json"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "tripplanner-worker"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
