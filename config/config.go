package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all settings of the service.
type Config struct {
	Port           string
	PostgresString string
	GormDebug      bool

	MongoString string
	MongoDB     string

	KafkaBrokers []string
	KafkaTopic   string

	GHAccessToken  string
	GHOwner        string
	GHRepo         string
	GHBranch       string
	GHAuthorName   string
	GHAuthorEmail  string
	GHPublicPrefix string

	PrivateKey     string
	PublicKey      string
	TokenHours     int
	GoogleClientID string

	CORSOrigins []string
}

var defaultOrigins = []string{
	"http://127.0.0.1:5173",
	"http://localhost:5173",
	"http://localhost:3000",
}

// Load reads .env (when present), config/config.yml (when present) and the
// environment, in increasing priority.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file, using environment")
	}
	return LoadFrom(viper.New())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	v.AddConfigPath("./config")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("MONGODB", "shoestore")
	v.SetDefault("KAFKA_TOPIC", "product-transactions")
	v.SetDefault("GH_BRANCH", "main")
	v.SetDefault("GH_AUTHOR_NAME", "shoestore-bot")
	v.SetDefault("GH_AUTHOR_EMAIL", "shoestore-bot@users.noreply.github.com")
	v.SetDefault("TOKEN_HOURS", 18)
	v.SetDefault("GORM_DEBUG", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Port:           v.GetString("PORT"),
		PostgresString: v.GetString("POSTGRESSTRING"),
		GormDebug:      v.GetBool("GORM_DEBUG"),
		MongoString:    v.GetString("MONGOSTRING"),
		MongoDB:        v.GetString("MONGODB"),
		KafkaBrokers:   splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:     v.GetString("KAFKA_TOPIC"),
		GHAccessToken:  v.GetString("GH_ACCESS_TOKEN"),
		GHOwner:        v.GetString("GH_OWNER"),
		GHRepo:         v.GetString("GH_REPO"),
		GHBranch:       v.GetString("GH_BRANCH"),
		GHAuthorName:   v.GetString("GH_AUTHOR_NAME"),
		GHAuthorEmail:  v.GetString("GH_AUTHOR_EMAIL"),
		GHPublicPrefix: v.GetString("GH_PUBLIC_PREFIX"),
		PrivateKey:     v.GetString("PRIVATEKEY"),
		PublicKey:      v.GetString("PUBLICKEY"),
		TokenHours:     v.GetInt("TOKEN_HOURS"),
		GoogleClientID: v.GetString("GOOGLE_CLIENT_ID"),
		CORSOrigins:    splitList(v.GetString("CORS_ORIGINS")),
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = defaultOrigins
	}
	if cfg.TokenHours <= 0 {
		cfg.TokenHours = 18
	}
	return cfg, nil
}

// RequireDatabase fails when no Postgres DSN is configured.
func (c *Config) RequireDatabase() error {
	if c.PostgresString == "" {
		return errors.New("POSTGRESSTRING is not set")
	}
	return nil
}

// RequireServe checks everything the HTTP server cannot start without.
func (c *Config) RequireServe() error {
	if err := c.RequireDatabase(); err != nil {
		return err
	}
	var missing []string
	if c.PrivateKey == "" {
		missing = append(missing, "PRIVATEKEY")
	}
	if c.PublicKey == "" {
		missing = append(missing, "PUBLICKEY")
	}
	if c.GHOwner == "" {
		missing = append(missing, "GH_OWNER")
	}
	if c.GHRepo == "" {
		missing = append(missing, "GH_REPO")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
