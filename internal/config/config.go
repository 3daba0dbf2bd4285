package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Company   CompanyConfig
	Quote     QuoteConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// CompanyConfig holds the issuing organization identity printed on
// quote documents (header, date line city and footer block).
type CompanyConfig struct {
	Name         string
	City         string
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	Phone        string
	Email        string
	Website      string
}

// QuoteConfig holds quoting business constants.
type QuoteConfig struct {
	// MinimumWage is the reference Brazilian minimum wage used to
	// resolve monthly-service tiers into currency amounts.
	MinimumWage float64
	// ValidityDays is how long an issued quote remains valid.
	ValidityDays int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "orcamentos-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "orcamentos")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("COMPANY_NAME", "KONNEKIT GESTÃO DE TI")
	viper.SetDefault("COMPANY_CITY", "São João da Boa Vista")
	viper.SetDefault("COMPANY_ADDRESS_LINE1", "Rua Dr. Teófilo Ribeiro de Andrade, 308")
	viper.SetDefault("COMPANY_ADDRESS_LINE2", "Edifício Trade Center – Sala 13 - Centro")
	viper.SetDefault("COMPANY_ADDRESS_LINE3", "São João da Boa Vista - SP - CEP 13870-210")
	viper.SetDefault("COMPANY_PHONE", "(19) 3633-5771 | (19) 99119-1186")
	viper.SetDefault("COMPANY_EMAIL", "contato@konnekit.com.br")
	viper.SetDefault("COMPANY_WEBSITE", "www.konnekit.com.br")
	viper.SetDefault("QUOTE_MINIMUM_WAGE", 1412.00)
	viper.SetDefault("QUOTE_VALIDITY_DAYS", 30)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Company: CompanyConfig{
			Name:         viper.GetString("COMPANY_NAME"),
			City:         viper.GetString("COMPANY_CITY"),
			AddressLine1: viper.GetString("COMPANY_ADDRESS_LINE1"),
			AddressLine2: viper.GetString("COMPANY_ADDRESS_LINE2"),
			AddressLine3: viper.GetString("COMPANY_ADDRESS_LINE3"),
			Phone:        viper.GetString("COMPANY_PHONE"),
			Email:        viper.GetString("COMPANY_EMAIL"),
			Website:      viper.GetString("COMPANY_WEBSITE"),
		},
		Quote: QuoteConfig{
			MinimumWage:  viper.GetFloat64("QUOTE_MINIMUM_WAGE"),
			ValidityDays: viper.GetInt("QUOTE_VALIDITY_DAYS"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
