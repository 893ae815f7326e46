package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Google Calendar service-account credentials.
	GoogleClientEmail string `mapstructure:"GOOGLE_CLIENT_EMAIL"`
	GooglePrivateKey  string `mapstructure:"GOOGLE_PRIVATE_KEY"`
	GoogleProjectID   string `mapstructure:"GOOGLE_PROJECT_ID"`

	// The single calendar all lesson events are created in.
	GoogleCalendarID string `mapstructure:"GOOGLE_CALENDAR_ID"`

	// IANA timezone the school schedules lessons in.
	BookingTimezone string `mapstructure:"BOOKING_TIMEZONE"`

	// EmailJS transactional email configuration.
	EmailJSServiceID  string `mapstructure:"EMAILJS_SERVICE_ID"`
	EmailJSTemplateID string `mapstructure:"EMAILJS_TEMPLATE_ID"`
	EmailJSPublicKey  string `mapstructure:"EMAILJS_PUBLIC_KEY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("BOOKING_TIMEZONE", "Europe/Paris")
	viper.SetDefault("GOOGLE_CALENDAR_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_EMAIL", "")
	viper.SetDefault("GOOGLE_PRIVATE_KEY", "")
	viper.SetDefault("GOOGLE_PROJECT_ID", "")
	viper.SetDefault("EMAILJS_SERVICE_ID", "")
	viper.SetDefault("EMAILJS_TEMPLATE_ID", "")
	viper.SetDefault("EMAILJS_PUBLIC_KEY", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
