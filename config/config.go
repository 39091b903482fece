// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os"      // For reading environment variables
	"strings" // For normalizing the log level
	"time"    // For the token lifetime

	"github.com/joho/godotenv" // Optional .env file support
)

type Config struct { // Config struct holds all configuration values
	Port     string // Port the HTTP server listens on
	DBPath   string // Path to the SQLite database file
	GinMode  string // gin.DebugMode, gin.ReleaseMode or gin.TestMode
	LogLevel string // DEBUG, INFO, NOTICE, WARNING or ERROR

	JWTSecret string        // Secret key for bearer tokens
	TokenTTL  time.Duration // How long an issued token stays valid

	MQTTBroker      string // Address of the MQTT broker (empty disables course events)
	MQTTClientID    string // Client ID used when connecting to the broker
	MQTTTopicPrefix string // Prefix for course event topics

	SeedEmail     string // Optional seed user created on first start
	SeedPassword  string
	SeedFirstName string
	SeedLastName  string
}

// LoadDotEnv reads a .env file into the process environment if one exists.
// Variables already set in the environment win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil { // Missing files are not an error
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return err
		}
	}
	return nil
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	return &Config{
		Port:     getEnv("PORT", "5000"),                       // Get port or use default
		DBPath:   getEnv("DB_PATH", "courses.db"),              // Get DB path or use default
		GinMode:  getEnv("GIN_MODE", "release"),                // Get gin mode or use default
		LogLevel: strings.ToUpper(getEnv("LOG_LEVEL", "INFO")), // Get log level or use default

		JWTSecret: getEnv("JWT_SECRET", "supersecret"),    // Get JWT secret or use default
		TokenTTL:  getDuration("TOKEN_TTL", 72*time.Hour), // Get token lifetime or use default

		MQTTBroker:      getEnv("MQTT_BROKER", ""),                   // Empty means no broker
		MQTTClientID:    getEnv("MQTT_CLIENT_ID", "go-course-backend"),
		MQTTTopicPrefix: getEnv("MQTT_TOPIC_PREFIX", "courses"),

		SeedEmail:     getEnv("SEED_EMAIL", ""),
		SeedPassword:  getEnv("SEED_PASSWORD", ""),
		SeedFirstName: getEnv("SEED_FIRST_NAME", "Seed"),
		SeedLastName:  getEnv("SEED_LAST_NAME", "User"),
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}

func getDuration(key string, fallback time.Duration) time.Duration { // Helper to parse a duration env var
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 { // Unparseable or non-positive values fall back
		return fallback
	}
	return d
}
