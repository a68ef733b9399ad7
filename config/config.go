package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"hrmslite.com/hrms/infrastructure/devops"
	"hrmslite.com/hrms/utils"
)

const (
	StoreMemory   = "memory"
	StoreMongo    = "mongo"
	StoreMySQL    = "mysql"
	StorePostgres = "postgres"
)

const defaultConfigFile = "hrms.yaml"

type Config struct {
	Addr           string        `yaml:"addr"`
	Store          string        `yaml:"store"`
	Timezone       string        `yaml:"timezone"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`

	MongoURI          string `yaml:"mongoUri"`
	DatabaseName      string `yaml:"databaseName"`
	MongoTransactions bool   `yaml:"mongoTransactions"`

	DSN              string `yaml:"dsn"`
	DBMaxConnections int    `yaml:"dbMaxConnections"`
	DBLogLevel       string `yaml:"dbLogLevel"`
	SSMParameter     string `yaml:"ssmParameter"`
	SSMDatabase      string `yaml:"ssmDatabase"`

	Slack        SlackConfig `yaml:"slack"`
	SESFrom      string      `yaml:"sesFrom"`
	HREmail      string      `yaml:"hrEmail"`
	ReportBucket string      `yaml:"reportBucket"`
}

type SlackConfig struct {
	Token          string `yaml:"token"`
	InfoChannelID  string `yaml:"infoChannel"`
	ErrorChannelID string `yaml:"errorChannel"`
}

func defaults() Config {
	return Config{
		Addr:             ":8090",
		Store:            StoreMemory,
		Timezone:         "UTC",
		AllowedOrigins:   []string{"*"},
		RequestTimeout:   10 * time.Second,
		DatabaseName:     "hrms",
		DBMaxConnections: 10,
		DBLogLevel:       "warn",
	}
}

// Load reads .env, then the YAML file named by HRMS_CONFIG (hrms.yaml when
// unset), then environment variables, each overriding the previous. SQL
// stores without a DSN resolve one from the SSM database list.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := defaults()
	if err := cfg.loadFile(os.Getenv("HRMS_CONFIG")); err != nil {
		return nil, err
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	if cfg.IsSQL() && cfg.DSN == "" && cfg.SSMParameter != "" {
		entries, err := devops.LoadDatabases(ctx, cfg.SSMParameter)
		if err != nil {
			return nil, err
		}
		entry, ok := entries[strings.ToLower(cfg.SSMDatabase)]
		if !ok {
			return nil, fmt.Errorf("database %q not found in parameter %s", cfg.SSMDatabase, cfg.SSMParameter)
		}
		cfg.DSN = entry.DSN(cfg.Store, cfg.DatabaseName)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) loadFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	c.Addr = getEnv("ADDR", c.Addr)
	c.Store = strings.ToLower(getEnv("STORE", c.Store))
	c.Timezone = getEnv("TIMEZONE", c.Timezone)
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = utils.SplitList(v)
	}

	c.MongoURI = getEnv("MONGODB_URI", c.MongoURI)
	c.DatabaseName = getEnv("DATABASE_NAME", c.DatabaseName)
	c.DSN = getEnv("DSN", c.DSN)
	c.DBLogLevel = getEnv("DB_LOG_LEVEL", c.DBLogLevel)
	c.SSMParameter = getEnv("HRMS_SSM_PARAMETER", c.SSMParameter)
	c.SSMDatabase = getEnv("HRMS_SSM_DATABASE", c.SSMDatabase)

	c.Slack.Token = getEnv("SLACK_BOT_TOKEN", c.Slack.Token)
	c.Slack.InfoChannelID = getEnv("SLACK_INFO_CHANNEL", c.Slack.InfoChannelID)
	c.Slack.ErrorChannelID = getEnv("SLACK_ERROR_CHANNEL", c.Slack.ErrorChannelID)
	c.SESFrom = getEnv("SES_FROM", c.SESFrom)
	c.HREmail = getEnv("HR_EMAIL", c.HREmail)
	c.ReportBucket = getEnv("REPORT_BUCKET", c.ReportBucket)

	var err error
	if c.MongoTransactions, err = getEnvBool("MONGO_TRANSACTIONS", c.MongoTransactions); err != nil {
		return err
	}
	if c.DBMaxConnections, err = getEnvInt("DB_MAX_CONNECTIONS", c.DBMaxConnections); err != nil {
		return err
	}
	if c.RequestTimeout, err = getEnvDuration("REQUEST_TIMEOUT", c.RequestTimeout); err != nil {
		return err
	}
	return nil
}

func (c *Config) IsSQL() bool {
	return c.Store == StoreMySQL || c.Store == StorePostgres
}

// Validate reports every missing or malformed key at once.
func (c *Config) Validate() error {
	var problems []string

	switch c.Store {
	case StoreMemory:
	case StoreMongo:
		if c.MongoURI == "" {
			problems = append(problems, "MONGODB_URI is required for the mongo store")
		}
	case StoreMySQL, StorePostgres:
		if c.DSN == "" {
			problems = append(problems, fmt.Sprintf("DSN is required for the %s store", c.Store))
		}
	default:
		problems = append(problems, fmt.Sprintf("STORE must be one of memory, mongo, mysql, postgres (got %q)", c.Store))
	}

	if _, err := utils.LoadLocation(c.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("TIMEZONE: %v", err))
	}
	if c.DBMaxConnections <= 0 {
		problems = append(problems, "DB_MAX_CONNECTIONS must be positive")
	}
	if c.RequestTimeout <= 0 {
		problems = append(problems, "REQUEST_TIMEOUT must be positive")
	}

	if len(problems) > 0 {
		return errors.New("invalid config: " + strings.Join(problems, ", "))
	}
	return nil
}

// Location is the reference timezone attendance days are computed in.
func (c *Config) Location() *time.Location {
	loc, err := utils.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
