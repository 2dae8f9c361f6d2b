package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	APIKey   APIKeyConfig
	Travel   TravelConfig
	Dispatch DispatchConfig
	Rides    RidesConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// APIKeyConfig contains API keys for internal service-to-service calls
type APIKeyConfig struct {
	DispatchService string
	RidesService    string
}

// TravelConfig contains travel-time estimator configuration
type TravelConfig struct {
	OSRMBaseURL     string
	RequestTimeout  int     // seconds
	CacheTTL        int     // seconds
	AverageSpeedKmh float64 // fallback estimator speed
}

// DispatchConfig contains dispatch scheduler configuration
type DispatchConfig struct {
	SweepInterval       int     // seconds between periodic sweeps
	SearchTimeout       int     // seconds before an unmatched request is cancelled
	CandidateLimit      int     // max vehicles evaluated per request
	SearchRadiusKm      float64 // geo search radius around pickup
	ZoneFallbackEnabled bool    // priority vehicles serve any zone when idle
}

// RidesConfig contains route lifecycle configuration
type RidesConfig struct {
	StopDwellSeconds   int // service time added per physical visit
	ArrivedWaitSeconds int // no-show window after driver arrival
	StaleRouteSeconds  int // force ETA refresh when route is older than this
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
