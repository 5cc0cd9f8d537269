package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Coursera catalog
	CourseraBaseURL          string
	CourseraPrimaryLanguages string
	CourseraResultLimit      int
	CourseraMaxAttempts      int
	CourseraHTTPTimeout      time.Duration

	// Export
	OutputDir string

	// SFTP delivery
	SFTPUpload                bool
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPKnownHosts            string
	SFTPInsecureIgnoreHostKey bool
}

// LoadDotEnv reads .env and .env.local into the environment when present.
// Variables already set win over file values.
func LoadDotEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func Load() Config {
	return Config{
		// Coursera catalog
		CourseraBaseURL:          getenv("COURSERA_BASE_URL", "https://www.coursera.org/api/catalogResults.v2"),
		CourseraPrimaryLanguages: getenv("COURSERA_PRIMARY_LANGUAGES", "en"),
		CourseraResultLimit:      getenvInt("COURSERA_RESULT_LIMIT", 9999),
		CourseraMaxAttempts:      getenvInt("COURSERA_MAX_ATTEMPTS", 1),
		CourseraHTTPTimeout:      getenvDuration("COURSERA_HTTP_TIMEOUT", 0),

		// Export
		OutputDir: getenv("EXPORT_OUTPUT_DIR", "./csvs"),

		// SFTP delivery
		SFTPUpload:                getenvBool("SFTP_UPLOAD", false),
		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/inbound"),
		SFTPKnownHosts:            os.Getenv("SFTP_KNOWN_HOSTS"),
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", true),
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// getenvDuration accepts Go durations ("90s", "2m") or plain seconds.
func getenvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}
