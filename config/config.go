package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"bikeshare/catalog"
	"bikeshare/communication"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

const (
	DefaultConfigFilepath = "./client/config/config.yaml"
	configPathEnvVarName  = "BIKESHARE_CONFIG"
	logLevelEnvVarName    = "LOG_LEVEL"
	dataDirEnvVarName     = "BIKESHARE_DATA_DIR"
	rabbitUrlEnvVarName   = "RABBIT_URL"

	defaultLogLevel  = "info"
	defaultDataDir   = "."
	defaultPageSize  = 5
	defaultCacheSize = 3
)

// Columns names of the CSV columns used to build each trip
type Columns struct {
	StartTime    string `yaml:"start_time"`
	EndTime      string `yaml:"end_time"`
	Duration     string `yaml:"duration"`
	StartStation string `yaml:"start_station"`
	EndStation   string `yaml:"end_station"`
	UserType     string `yaml:"user_type"`
	Gender       string `yaml:"gender"`
	BirthYear    string `yaml:"birth_year"`
}

// DefaultColumns column names shared by the chicago, new york and washington datasets
func DefaultColumns() Columns {
	return Columns{
		StartTime:    "Start Time",
		EndTime:      "End Time",
		Duration:     "Trip Duration",
		StartStation: "Start Station",
		EndStation:   "End Station",
		UserType:     "User Type",
		Gender:       "Gender",
		BirthYear:    "Birth Year",
	}
}

// LoaderConfig configuration of the Trip Loader
// + CacheSize: amount of loaded tables kept in memory
// + CacheTTL: time a loaded table stays cached. Zero means no expiration
type LoaderConfig struct {
	Columns   Columns       `yaml:"columns"`
	CacheSize int           `yaml:"cache_size" validate:"gte=0"`
	CacheTTL  time.Duration `yaml:"cache_ttl" validate:"gte=0"`
}

// PublisherConfig configuration used to publish finished reports in RabbitMQ
type PublisherConfig struct {
	Enabled bool                                 `yaml:"enabled"`
	URL     string                               `yaml:"url" validate:"required_if=Enabled true"`
	Queue   communication.QueueDeclarationConfig `yaml:"queue"`
}

type AppConfig struct {
	LogLevel  string            `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	DataDir   string            `yaml:"data_dir"`
	Datasets  map[string]string `yaml:"datasets" validate:"omitempty,dive,keys,required,endkeys,required"`
	PageSize  int               `yaml:"page_size" validate:"gte=0"`
	Loader    LoaderConfig      `yaml:"loader"`
	Publisher PublisherConfig   `yaml:"publisher"`
}

// LoadConfig reads the config file from BIKESHARE_CONFIG or, if unset, from DefaultConfigFilepath
func LoadConfig() (*AppConfig, error) {
	configFilepath := utils.GetEnvOrDefault(configPathEnvVarName, DefaultConfigFilepath)
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	return ParseConfig(configFile)
}

// ParseConfig unmarshals, overrides with env vars, validates and finally fills defaults
func ParseConfig(configFile []byte) (*AppConfig, error) {
	var appConfig AppConfig
	err := yaml.Unmarshal(configFile, &appConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %s: %w", err, dataErrors.ErrInvalidConfig)
	}

	appConfig.LogLevel = utils.GetEnvOrDefault(logLevelEnvVarName, appConfig.LogLevel)
	appConfig.DataDir = utils.GetEnvOrDefault(dataDirEnvVarName, appConfig.DataDir)
	appConfig.Publisher.URL = utils.GetEnvOrDefault(rabbitUrlEnvVarName, appConfig.Publisher.URL)

	err = validator.New().Struct(appConfig)
	if err != nil {
		return nil, fmt.Errorf("error validating config: %s: %w", err, dataErrors.ErrInvalidConfig)
	}

	if appConfig.Publisher.Enabled && appConfig.Publisher.Queue.Name == "" {
		return nil, fmt.Errorf("publisher is enabled but has no queue name: %w", dataErrors.ErrInvalidConfig)
	}

	appConfig.setDefaults()
	return &appConfig, nil
}

func (ac *AppConfig) setDefaults() {
	if ac.LogLevel == "" {
		ac.LogLevel = defaultLogLevel
	}

	if ac.DataDir == "" {
		ac.DataDir = defaultDataDir
	}

	if len(ac.Datasets) == 0 {
		ac.Datasets = catalog.DefaultDatasets()
	}

	if ac.PageSize == 0 {
		ac.PageSize = defaultPageSize
	}

	if ac.Loader.CacheSize == 0 {
		ac.Loader.CacheSize = defaultCacheSize
	}

	ac.Loader.Columns = ac.Loader.Columns.withDefaults()
}

func (c Columns) withDefaults() Columns {
	defaults := DefaultColumns()
	if c.StartTime == "" {
		c.StartTime = defaults.StartTime
	}
	if c.EndTime == "" {
		c.EndTime = defaults.EndTime
	}
	if c.Duration == "" {
		c.Duration = defaults.Duration
	}
	if c.StartStation == "" {
		c.StartStation = defaults.StartStation
	}
	if c.EndStation == "" {
		c.EndStation = defaults.EndStation
	}
	if c.UserType == "" {
		c.UserType = defaults.UserType
	}
	if c.Gender == "" {
		c.Gender = defaults.Gender
	}
	if c.BirthYear == "" {
		c.BirthYear = defaults.BirthYear
	}
	return c
}
