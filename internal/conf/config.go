package conf

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/DSI-OMS-RPA/email-notifier/internal/email/types"
)

type Config struct {
	SMTP   types.SMTPConfig `mapstructure:"smtp"`
	Report ReportConfig     `mapstructure:"report"`
	Server ServerConfig     `mapstructure:"server"`
	Log    LogConfig        `mapstructure:"log"`
}

// ReportConfig carries the default addressing for templated reports.
type ReportConfig struct {
	FromMail string   `mapstructure:"from_mail"`
	To       []string `mapstructure:"to"`
	Cc       []string `mapstructure:"cc"`
	Subject  string   `mapstructure:"subject"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type LogConfig struct {
	Level            string        `mapstructure:"level"`
	Format           string        `mapstructure:"format"`
	Output           string        `mapstructure:"output"`
	File             FileLogConfig `mapstructure:"file"`
	EnableCaller     bool          `mapstructure:"enablecaller"`
	EnableStacktrace bool          `mapstructure:"enablestacktrace"`
}

type FileLogConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"maxsize"`
	MaxAge     int    `mapstructure:"maxage"`
	MaxBackups int    `mapstructure:"maxbackups"`
	Compress   bool   `mapstructure:"compress"`
}

func LoadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.SetEnvPrefix("NOTIFIER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
