package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type PaymentConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	PaymentDB    `yaml:"payment_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Auth         `yaml:"auth"`
	Escalation   `yaml:"escalation"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type PaymentDB struct {
	Dsn           string `yaml:"dsn"`
	MigrationPath string `yaml:"migration_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host         string `yaml:"host"`
	Port         string `yaml:"port"`
	PaymentTopic string `yaml:"payment_topic" env-default:"payment-events"`
	AlertTopic   string `yaml:"alert_topic" env-default:"escalation-alerts"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"PAYMENT_JWT_SECRET"`
}

// Escalation enumerates every escalation option and its default explicitly.
type Escalation struct {
	Period          time.Duration `yaml:"period" env-default:"10m"`
	PageSize        int           `yaml:"page_size" env-default:"500"`
	IntervalSeconds int           `yaml:"interval_seconds" env-default:"3600"`
	StepPercent     float64       `yaml:"step_percent" env-default:"5"`
	MaxPercent      float64       `yaml:"max_percent" env-default:"50"`
	SendAlerts      bool          `yaml:"send_alerts" env-default:"true"`
}

func MustLoad() *PaymentConfig {

	// Processing env config variable and file
	configPath := os.Getenv("PAYMENT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("PAYMENT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg PaymentConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
