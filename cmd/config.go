package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	SideShiftUrl         string
	SideShiftApiKey      string
	SideShiftAffiliateId string

	TelegramApiToken string
	TelegramChatID   string

	AuthTokenIssuer string
	AuthJwtSecret   string

	LokiUrl  string
	HTTPPort string
	LogLevel string

	PoolMax int

	MonitorTick          time.Duration
	MonitorMaxConcurrent int

	DCATick          time.Duration
	DCARetryDelay    time.Duration
	DCAMaxProcessing time.Duration

	LimitTick         time.Duration
	LimitMaxStaleness time.Duration
	LimitMaxRetries   int

	DB *DB
}

type DB struct {
	Host     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

var ErrEnvNotFound = errors.New("err env not found")

// Keys matching this pattern stay server-side; the client bundle allowlist
// is rejected if it names one.
var secretKeyPattern = regexp.MustCompile(`SECRET|API_KEY|DATABASE|PASSWORD|PRIVATE`)

func (a *App) loadConfig(confFileName string) error {
	var cfg Config
	var db DB

	err := godotenv.Load(confFileName)
	if err != nil {
		return err
	}

	if cfg.SideShiftUrl, err = cfg.set("SIDESHIFT_URL"); err != nil {
		return err
	}

	if cfg.SideShiftApiKey, err = cfg.set("SIDESHIFT_API_KEY"); err != nil {
		return err
	}

	if cfg.SideShiftAffiliateId, err = cfg.set("SIDESHIFT_AFFILIATE_ID"); err != nil {
		return err
	}

	if cfg.TelegramApiToken, err = cfg.set("TELEGRAM_API_TOKEN"); err != nil {
		return err
	}

	if cfg.TelegramChatID, err = cfg.set("TELEGRAM_CHAT_ID"); err != nil {
		return err
	}

	if cfg.AuthTokenIssuer, err = cfg.set("AUTH_TOKEN_ISSUER"); err != nil {
		return err
	}

	if cfg.AuthJwtSecret, err = cfg.set("AUTH_JWT_SECRET"); err != nil {
		return err
	}

	if db.Host, err = cfg.set("PG_HOST"); err != nil {
		return err
	}

	if db.User, err = cfg.set("PG_USER"); err != nil {
		return err
	}

	if db.Password, err = cfg.set("PG_PASSWORD"); err != nil {
		return err
	}

	if db.DBName, err = cfg.set("PG_DBNAME"); err != nil {
		return err
	}

	if db.SSLMode, err = cfg.set("PG_SSL_MODE"); err != nil {
		return err
	}

	cfg.LokiUrl = cfg.optional("LOKI_URL", "loki:3100")
	cfg.HTTPPort = cfg.optional("HTTP_PORT", "8080")
	cfg.LogLevel = cfg.optional("LOG_LEVEL", "INFO")

	cfg.PoolMax = cfg.optionalInt("PG_POOL_MAX", 10)

	cfg.MonitorTick = time.Duration(cfg.optionalInt("MONITOR_TICK_SECONDS", 10)) * time.Second
	cfg.MonitorMaxConcurrent = cfg.optionalInt("MONITOR_MAX_CONCURRENT", 5)

	cfg.DCATick = time.Duration(cfg.optionalInt("DCA_TICK_SECONDS", 60)) * time.Second
	cfg.DCARetryDelay = time.Duration(cfg.optionalInt("DCA_RETRY_MINUTES", 5)) * time.Minute
	cfg.DCAMaxProcessing = time.Duration(cfg.optionalInt("DCA_MAX_PROCESSING_MINUTES", 10)) * time.Minute

	cfg.LimitTick = time.Duration(cfg.optionalInt("LIMIT_TICK_SECONDS", 30)) * time.Second
	cfg.LimitMaxStaleness = time.Duration(cfg.optionalInt("LIMIT_MAX_STALENESS_MINUTES", 10)) * time.Minute
	cfg.LimitMaxRetries = cfg.optionalInt("LIMIT_MAX_RETRIES", 5)

	cfg.DB = &db

	a.Config = &cfg

	return nil
}

func (d *DB) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode)
}

func (c *Config) set(key string) (string, error) {
	if os.Getenv(key) == "" {
		return "", fmt.Errorf("%w: %s", ErrEnvNotFound, key)
	}

	return os.Getenv(key), nil
}

func (c *Config) optional(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func (c *Config) optionalInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}

// guardClientBundle rejects a client env allowlist that names any
// server-only key.
func guardClientBundle(allowlistPath string) error {
	f, err := os.Open(allowlistPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}

	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key := scanner.Text()
		if secretKeyPattern.MatchString(key) {
			return fmt.Errorf("client bundle must not expose %q", key)
		}
	}

	return scanner.Err()
}
