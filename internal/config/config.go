package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pelletier/go-toml/v2"

	"dispatchdash/internal/domain"
)

// Table setting defaults and limits
const (
	CurrentVersion         = 1
	DefaultPageSize        = 10
	DefaultMinSearchLength = 3
	DefaultDebounceMs      = 300
	MaxDebounceMs          = 10000
	DefaultLogLevel        = "info"
	DefaultLogFile         = "dispatchdash.log"
	configFileName         = "config.toml"
	envConfigPath          = "DISPATCHDASH_CONFIG"
)

// PageSizeOptions is the fixed set of page sizes a table accepts
var PageSizeOptions = []int{10, 20, 50, 100}

// Validation errors
var (
	ErrInvalidPageSize        = errors.New("page_size must be one of 10, 20, 50, 100")
	ErrInvalidMinSearchLength = errors.New("min_search_length must be >= 0")
	ErrInvalidDebounce        = errors.New("debounce_ms must be between 0 and 10000")
	ErrUnknownTable           = errors.New("unknown table")
	ErrUnknownColumn          = errors.New("unknown column")
)

// Config represents the application configuration
type Config struct {
	Version int                    `toml:"version"`
	Logging LoggingConfig          `toml:"logging"`
	Table   TableSettings          `toml:"table"`
	Tables  map[string]TableLayout `toml:"tables"`
}

// LoggingConfig controls the zerolog file sink
type LoggingConfig struct {
	Level string `toml:"level" env:"DISPATCHDASH_LOG_LEVEL"`
	File  string `toml:"file"  env:"DISPATCHDASH_LOG_FILE"`
}

// TableSettings are shared by every table view
type TableSettings struct {
	PageSize        int `toml:"page_size"         env:"DISPATCHDASH_PAGE_SIZE"`
	MinSearchLength int `toml:"min_search_length" env:"DISPATCHDASH_MIN_SEARCH_LENGTH"`
	DebounceMs      int `toml:"debounce_ms"       env:"DISPATCHDASH_DEBOUNCE_MS"`
}

// Debounce returns the search debounce interval
func (s TableSettings) Debounce() time.Duration {
	return time.Duration(s.DebounceMs) * time.Millisecond
}

// Validate checks the settings against the recognized options
func (s TableSettings) Validate() error {
	if !slices.Contains(PageSizeOptions, s.PageSize) {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, s.PageSize)
	}
	if s.MinSearchLength < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMinSearchLength, s.MinSearchLength)
	}
	if s.DebounceMs < 0 || s.DebounceMs > MaxDebounceMs {
		return fmt.Errorf("%w: got %d", ErrInvalidDebounce, s.DebounceMs)
	}
	return nil
}

// TableLayout is the initial column order and hidden set of one table
type TableLayout struct {
	Columns []string `toml:"columns"`
	Hidden  []string `toml:"hidden"`
}

// Validate checks the configuration for unknown or out-of-range values
func (c *Config) Validate() error {
	if err := c.Table.Validate(); err != nil {
		return fmt.Errorf("table: %w", err)
	}
	for name, layout := range c.Tables {
		known := domain.ColumnsFor(domain.TableID(name))
		if known == nil {
			return fmt.Errorf("%w: %q", ErrUnknownTable, name)
		}
		ids := domain.ColumnIDs(known)
		for _, id := range append(slices.Clone(layout.Columns), layout.Hidden...) {
			if !slices.Contains(ids, id) {
				return fmt.Errorf("tables.%s: %w: %q", name, ErrUnknownColumn, id)
			}
		}
	}
	return nil
}

// LayoutFor resolves the initial column order and visible ids of a table.
// Columns named in the config come first in the configured order; known
// columns the config leaves out follow in their default order.
func (c *Config) LayoutFor(table domain.TableID) (order []string, visible []string) {
	known := domain.ColumnIDs(domain.ColumnsFor(table))
	layout := c.Tables[string(table)]

	for _, id := range layout.Columns {
		if slices.Contains(known, id) && !slices.Contains(order, id) {
			order = append(order, id)
		}
	}
	for _, id := range known {
		if !slices.Contains(order, id) {
			order = append(order, id)
		}
	}

	for _, id := range order {
		if !slices.Contains(layout.Hidden, id) {
			visible = append(visible, id)
		}
	}
	return order, visible
}

// Publisher receives config lifecycle events
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      Publisher
	filePath string
}

// NewConfigService creates a config service for the default config location.
// DISPATCHDASH_CONFIG overrides the location.
func NewConfigService() ConfigService {
	if p := os.Getenv(envConfigPath); p != "" {
		return &configService{filePath: p}
	}
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceWithBus creates a config service that publishes load/save events
func NewConfigServiceWithBus(bus Publisher) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// NewConfigServiceForPath creates a config service bound to an explicit file
func NewConfigServiceForPath(path string, bus Publisher) ConfigService {
	return &configService{filePath: path, bus: bus}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "dispatchdash", configFileName)
}

// Path returns the file this service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when the file is missing.
// Environment variables override file values in both cases.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := applyEnv(cfg); err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid environment override: %w", err)
		}
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads and validates configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Tables == nil {
		cfg.Tables = make(map[string]TableLayout)
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("failed to read environment overrides: %w", err)
	}
	return nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
			File:  DefaultLogFile,
		},
		Table: TableSettings{
			PageSize:        DefaultPageSize,
			MinSearchLength: DefaultMinSearchLength,
			DebounceMs:      DefaultDebounceMs,
		},
		Tables: map[string]TableLayout{
			string(domain.TableDrivers): {
				Columns: domain.ColumnIDs(domain.DriverColumns()),
				Hidden:  []string{"phone", "id"},
			},
			string(domain.TableOrders): {
				Columns: domain.ColumnIDs(domain.OrderColumns()),
				Hidden:  []string{"created"},
			},
		},
	}
}
