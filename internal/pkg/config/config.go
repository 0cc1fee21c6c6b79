package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultConfigPath is used when neither the -config flag nor CONFIG_PATH is set
const DefaultConfigPath = "config/telemetry.yaml"

// InitConfig loads configuration from an optional YAML file, a local .env file and
// the environment, in increasing order of precedence.
func InitConfig(configPath string) (*models.Config, error) {
	if GetEnv("APP_ENV", "local") == "local" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Println("error loading .env file", err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		configPath = GetEnv("CONFIG_PATH", DefaultConfigPath)
	}
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		log.Printf("config file %s not found, using defaults and environment", configPath)
	}

	configs := &models.Config{}
	if err := v.Unmarshal(configs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(configs); err != nil {
		return nil, err
	}

	return configs, nil
}

func setDefaults(v *viper.Viper) {
	// App config
	v.SetDefault("app.name", "fleet-telemetry")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.version", "dev")

	// Server config
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.shutdown_timeout", 10)
	v.SetDefault("server.fix_rate_limit", 0)

	// Database config
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "fleet")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	// Mongo config
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "fleet")
	v.SetDefault("mongo.collection", "routes")

	// Redis config
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	// NSQ config
	v.SetDefault("nsq.enabled", false)
	v.SetDefault("nsq.address", "localhost:4150")
	v.SetDefault("nsq.lookupd_address", []string{})
	v.SetDefault("nsq.channel", "telemetry")

	// MQTT config
	v.SetDefault("mqtt.enabled", false)
	v.SetDefault("mqtt.broker", "tcp://localhost:1883")
	v.SetDefault("mqtt.client_id", "fleet-telemetry")
	v.SetDefault("mqtt.qos", 1)

	// Logger config
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "logs/telemetry.log")
	v.SetDefault("logger.type", "console")

	// Telemetry heuristics
	v.SetDefault("telemetry.deviation_factor", 1.2)
	v.SetDefault("telemetry.max_speed_kmh", 200.0)
	v.SetDefault("telemetry.noise_floor_km", 0.001)
	v.SetDefault("telemetry.live_ttl_hours", 24)
}

func validate(c *models.Config) error {
	switch c.Database.Driver {
	case "postgres", "mysql", "mongo":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Telemetry.DeviationFactor <= 0 {
		return fmt.Errorf("telemetry.deviation_factor must be positive, got %v", c.Telemetry.DeviationFactor)
	}
	if c.Telemetry.MaxSpeedKmh <= 0 {
		return fmt.Errorf("telemetry.max_speed_kmh must be positive, got %v", c.Telemetry.MaxSpeedKmh)
	}
	if c.Telemetry.NoiseFloorKm < 0 {
		return fmt.Errorf("telemetry.noise_floor_km must not be negative, got %v", c.Telemetry.NoiseFloorKm)
	}
	return nil
}

// GetEnv returns the value of an environment variable or the default when unset
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
