package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "BUDGET"

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type DatasourceConfig struct {
	Profile      string `mapstructure:"profile"`
	ProfilesPath string `mapstructure:"profiles_path"`
}

type FanoutConfig struct {
	Mode        string `mapstructure:"mode"`
	Concurrency int    `mapstructure:"concurrency"`
}

type APIConfig struct {
	DefaultPageSize int `mapstructure:"default_page_size"`
}

type AppConfig struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Datasource DatasourceConfig `mapstructure:"datasource"`
	Fanout     FanoutConfig     `mapstructure:"fanout"`
	API        APIConfig        `mapstructure:"api"`
}

func setDefaults(v *viper.Viper, profilesPath string) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("datasource.profile", "default")
	v.SetDefault("datasource.profiles_path", profilesPath)
	v.SetDefault("fanout.mode", "sequential")
	v.SetDefault("fanout.concurrency", 4)
	v.SetDefault("api.default_page_size", 50)
}

// LoadConfig reads the YAML file at path, if any, on top of the defaults. Every key can be
// overridden from the environment, e.g. BUDGET_SERVER_PORT or BUDGET_FANOUT_MODE.
func LoadConfig(path, defaultProfilesPath string) (AppConfig, error) {
	v := viper.New()
	setDefaults(v, defaultProfilesPath)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return AppConfig{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
