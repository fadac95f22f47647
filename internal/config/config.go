package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret     = "default-secret-change-me"
	defaultAdminPassword = "admin123"
)

type Config struct {
	App struct {
		Port    string `mapstructure:"port"`
		Env     string `mapstructure:"env"`
		DataDir string `mapstructure:"data_dir"`
	} `mapstructure:"app"`
	Auth struct {
		AdminUsername     string        `mapstructure:"admin_username"`
		AdminPassword     string        `mapstructure:"admin_password"`
		AdminPasswordHash string        `mapstructure:"admin_password_hash"`
		JWTSecret         string        `mapstructure:"jwt_secret"`
		TokenLifespan     time.Duration `mapstructure:"token_lifespan"`
	} `mapstructure:"auth"`
	Storage struct {
		Driver string `mapstructure:"driver"`
	} `mapstructure:"storage"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
	AI struct {
		Provider string        `mapstructure:"provider"`
		Timeout  time.Duration `mapstructure:"timeout"`
	} `mapstructure:"ai"`
	OpenAI struct {
		APIKey string `mapstructure:"api_key"`
		Model  string `mapstructure:"model"`
	} `mapstructure:"openai"`
	Anthropic struct {
		APIKey string `mapstructure:"api_key"`
		Model  string `mapstructure:"model"`
	} `mapstructure:"anthropic"`
	CustomLLM struct {
		APIKey  string `mapstructure:"api_key"`
		BaseURL string `mapstructure:"base_url"`
		Model   string `mapstructure:"model"`
	} `mapstructure:"custom_llm"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Tracing struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"tracing"`
}

func LoadConfig() (cfg Config, err error) {

	err = godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err = viper.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("app.port", "3001")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.data_dir", "data")
	viper.SetDefault("auth.admin_username", "admin")
	viper.SetDefault("auth.admin_password", defaultAdminPassword)
	viper.SetDefault("auth.jwt_secret", defaultJWTSecret)
	viper.SetDefault("auth.token_lifespan", 24*time.Hour)
	viper.SetDefault("storage.driver", "local")
	viper.SetDefault("ai.provider", "openai")
	viper.SetDefault("ai.timeout", 60*time.Second)
	viper.SetDefault("openai.model", "gpt-4-turbo-preview")
	viper.SetDefault("anthropic.model", "claude-3-sonnet-20240229")

	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("app.data_dir", "DATA_DIR")
	viper.BindEnv("auth.admin_username", "ADMIN_USERNAME")
	viper.BindEnv("auth.admin_password", "ADMIN_PASSWORD")
	viper.BindEnv("auth.admin_password_hash", "ADMIN_PASSWORD_HASH")
	viper.BindEnv("auth.jwt_secret", "JWT_SECRET")
	viper.BindEnv("auth.token_lifespan", "TOKEN_LIFESPAN")
	viper.BindEnv("storage.driver", "STORAGE_DRIVER")
	viper.BindEnv("ai.provider", "AI_PROVIDER")
	viper.BindEnv("ai.timeout", "AI_TIMEOUT")
	viper.BindEnv("openai.api_key", "OPENAI_API_KEY")
	viper.BindEnv("openai.model", "OPENAI_MODEL")
	viper.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY")
	viper.BindEnv("anthropic.model", "ANTHROPIC_MODEL")
	viper.BindEnv("custom_llm.api_key", "CUSTOM_LLM_API_KEY")
	viper.BindEnv("custom_llm.base_url", "CUSTOM_LLM_BASE_URL")
	viper.BindEnv("custom_llm.model", "CUSTOM_LLM_MODEL")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	viper.BindEnv("tracing.otlp_endpoint", "OTLP_ENDPOINT")

	viper.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	viper.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	viper.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")

	if err = viper.Unmarshal(&cfg); err != nil {
		return
	}

	err = cfg.Validate()
	return
}

// Validate fails closed in production: the convenience defaults for the
// admin credentials and signing secret are development-mode only.
func (c Config) Validate() error {
	if c.App.Env != "production" {
		return nil
	}
	if c.Auth.JWTSecret == "" || c.Auth.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set to a non-default value in production")
	}
	if c.Auth.AdminPasswordHash == "" && (c.Auth.AdminPassword == "" || c.Auth.AdminPassword == defaultAdminPassword) {
		return fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set in production")
	}
	return nil
}
