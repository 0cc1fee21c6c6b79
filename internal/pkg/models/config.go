package models

// Config represents application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	Redis     RedisConfig     `mapstructure:"redis"`
	NSQ       NSQConfig       `mapstructure:"nsq"`
	MQTT      MQTTConfig      `mapstructure:"mqtt"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // seconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // seconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // seconds
	FixRateLimit    int    `mapstructure:"fix_rate_limit"`   // position reports per route and client per minute, 0 disables
}

// DatabaseConfig contains route store configuration.
// Driver is one of "postgres", "mysql" or "mongo".
type DatabaseConfig struct {
	Driver    string `mapstructure:"driver"`
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	SSLMode   string `mapstructure:"ssl_mode"`
	MaxConns  int    `mapstructure:"max_conns"`
	IdleConns int    `mapstructure:"idle_conns"`
}

// MongoConfig contains MongoDB connection configuration
type MongoConfig struct {
	URI        string `mapstructure:"uri"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NSQConfig contains NSQ producer/consumer configuration
type NSQConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	Address        string   `mapstructure:"address"`
	LookupdAddress []string `mapstructure:"lookupd_address"`
	Channel        string   `mapstructure:"channel"`
}

// MQTTConfig contains MQTT broker configuration for device fixes
type MQTTConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Broker   string `mapstructure:"broker"`
	ClientID string `mapstructure:"client_id"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	QoS      int    `mapstructure:"qos"`
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
	Type     string `mapstructure:"type"` // console, file or hybrid
}

// TelemetryConfig contains the heuristics of the telemetry engine
type TelemetryConfig struct {
	DeviationFactor float64 `mapstructure:"deviation_factor"` // remaining > planned * factor marks a deviation
	MaxSpeedKmh     float64 `mapstructure:"max_speed_kmh"`    // upper clamp of the reported speed
	NoiseFloorKm    float64 `mapstructure:"noise_floor_km"`   // displacements at or below are treated as no motion
	LiveTTLHours    int     `mapstructure:"live_ttl_hours"`
}
