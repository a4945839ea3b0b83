// Package config loads application configuration from (in order of
// precedence) environment variables, a .env file, and config/app.yaml,
// falling back to defaults that match the classic store file names.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultUserStore    = "user_data.txt"
	defaultProductStore = "product_list.txt"
	defaultHistoryStore = "history.txt"
	defaultAdminStore   = "admin_data.txt"
	defaultAppEnv       = "local"
)

// Config holds every tunable of the application.
type Config struct {
	AppEnv string      `mapstructure:"app_env"`
	Color  bool        `mapstructure:"color"`
	Store  StoreConfig `mapstructure:"store"`
}

// StoreConfig names the flat-file backing stores.
type StoreConfig struct {
	Users    string `mapstructure:"users"`
	Products string `mapstructure:"products"`
	History  string `mapstructure:"history"`
	Admins   string `mapstructure:"admins"`
}

var (
	loadOnce sync.Once
	loadErr  error

	mu  sync.RWMutex
	cfg = defaults()
)

func defaults() Config {
	return Config{
		AppEnv: defaultAppEnv,
		Color:  true,
		Store: StoreConfig{
			Users:    defaultUserStore,
			Products: defaultProductStore,
			History:  defaultHistoryStore,
			Admins:   defaultAdminStore,
		},
	}
}

// Load reads configuration once per process. Missing files are fine; the
// defaults above apply whenever neither file nor environment says otherwise.
func Load() error {
	loadOnce.Do(func() {
		loadErr = load()
	})
	return loadErr
}

func load() error {
	// .env, if present, becomes part of the environment before viper looks.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("yaml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	v.SetDefault("app_env", defaultAppEnv)
	v.SetDefault("color", true)
	v.SetDefault("store.users", defaultUserStore)
	v.SetDefault("store.products", defaultProductStore)
	v.SetDefault("store.history", defaultHistoryStore)
	v.SetDefault("store.admins", defaultAdminStore)

	v.SetEnvPrefix("dukaan")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: read: %w", err)
		}
	}

	var loaded Config
	if err := v.Unmarshal(&loaded); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}

	mu.Lock()
	cfg = loaded
	mu.Unlock()

	return nil
}

func current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// AppEnv returns the environment name ("local", "production", ...).
func AppEnv() string {
	_ = Load()
	return current().AppEnv
}

// ColorEnabled reports whether console output should be colorized.
func ColorEnabled() bool {
	_ = Load()
	return current().Color
}

// UserStore returns the path of the user records file.
func UserStore() string {
	_ = Load()
	return current().Store.Users
}

// ProductStore returns the path of the product catalog file.
func ProductStore() string {
	_ = Load()
	return current().Store.Products
}

// HistoryStore returns the path of the order history file.
func HistoryStore() string {
	_ = Load()
	return current().Store.History
}

// AdminStore returns the path of the admin credentials file.
func AdminStore() string {
	_ = Load()
	return current().Store.Admins
}
