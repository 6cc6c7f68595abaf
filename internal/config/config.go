package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env string

	// HTTP
	Port         int
	HTTPAddr     string
	MaxBodyBytes int64
	CORSOrigins  []string
	ShutdownWait time.Duration

	// Relay
	EmailSender            string // "smtp" or "fake"
	DefaultSMTPHost        string
	DefaultSMTPPort        int
	SMTPTimeout            time.Duration
	SMTPInsecureSkipVerify bool
	FakeFailMode           string

	// Logging
	LogLevel   string
	LogFormat  string
	LogCaller  bool
	LogNoColor bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Env = getEnvFirst([]string{"APP_ENV", "ENV"}, "dev")

	port, err := parsePort(getEnv("PORT", "3000"))
	if err != nil {
		return nil, fmt.Errorf("bad PORT: %w", err)
	}
	cfg.Port = port
	cfg.HTTPAddr = fmt.Sprintf(":%d", port)
	cfg.MaxBodyBytes = int64(getInt("MAX_BODY_BYTES", 1<<20))
	cfg.CORSOrigins = splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*"))
	cfg.ShutdownWait = getDuration("SHUTDOWN_WAIT", 10*time.Second)

	cfg.EmailSender = strings.ToLower(getEnv("EMAIL_SENDER", "smtp"))
	switch cfg.EmailSender {
	case "smtp", "fake":
	default:
		return nil, fmt.Errorf("bad EMAIL_SENDER %q (want smtp or fake)", cfg.EmailSender)
	}

	cfg.DefaultSMTPHost = getEnv("DEFAULT_SMTP_HOST", "smtp.gmail.com")
	defPort, err := parsePort(getEnv("DEFAULT_SMTP_PORT", "465"))
	if err != nil {
		return nil, fmt.Errorf("bad DEFAULT_SMTP_PORT: %w", err)
	}
	cfg.DefaultSMTPPort = defPort
	cfg.SMTPTimeout = getDuration("SMTP_TIMEOUT", 0)
	cfg.SMTPInsecureSkipVerify = getBool("SMTP_INSECURE_SKIP_VERIFY", false)
	cfg.FakeFailMode = strings.ToLower(getEnv("FAKE_FAIL_MODE", "none"))

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "console")
	cfg.LogCaller = getBool("LOG_CALLER", false)
	cfg.LogNoColor = getBool("LOG_NO_COLOR", false)

	return cfg, nil
}

func parsePort(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n < 1 || n > 65535 {
		return 0, fmt.Errorf("%d out of range 1-65535", n)
	}
	return n, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvFirst(keys []string, def string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return def
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func splitCSV(s string) []string {
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, x := range raw {
		x = strings.TrimSpace(x)
		if x != "" {
			out = append(out, x)
		}
	}
	return out
}
