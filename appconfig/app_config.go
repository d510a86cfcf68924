package appconfig

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BackendMongo    = "mongo"
	BackendFirebase = "firebase"
)

type AppConfig struct {
	GrpcPort  string `env:"GRPC_PORT" envDefault:":50051"`
	WebPort   string `env:"WEB_PORT" envDefault:":8081"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	AccessSecret string `env:"ACCESS_SECRET"`
	Backend      string `env:"ACCOUNT_BACKEND" envDefault:"mongo"`

	Mongo    MongoConfig    `envPrefix:"MONGO_"`
	Firebase FirebaseConfig `envPrefix:"FIREBASE_"`
}

type MongoConfig struct {
	URI      string `env:"URI"`
	Database string `env:"DATABASE" envDefault:"auth"`
}

type FirebaseConfig struct {
	ProjectID       string `env:"PROJECT_ID"`
	CredentialsFile string `env:"CREDENTIALS_FILE"`
}

// Load reads envFile (if it exists) into the process environment and parses
// the result. A missing envFile is not an error.
func Load(envFile string) (AppConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return AppConfig{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, err
	}

	return cfg, cfg.Validate()
}

func (c AppConfig) Validate() error {
	switch c.Backend {
	case BackendMongo:
		if c.Mongo.URI == "" {
			return errors.New("MONGO_URI is required")
		}
		if c.AccessSecret == "" {
			return errors.New("ACCESS_SECRET is required")
		}
	case BackendFirebase:
		if c.Firebase.ProjectID == "" {
			return errors.New("FIREBASE_PROJECT_ID is required")
		}
	default:
		return fmt.Errorf("unknown ACCOUNT_BACKEND %q", c.Backend)
	}

	return nil
}
