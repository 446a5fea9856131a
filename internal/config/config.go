package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the bot. Everything is injected
// through environment variables with sensible defaults so a bare
// `go run ./cmd/bot` works out of the box.
type Config struct {
	AppEnv string

	BotName      string
	StoreName    string
	OwnerName    string
	AdminContact string

	// WhatsApp device store (sqlite, owned by whatsmeow).
	SessionDBPath string

	// Flat JSON data files.
	DataDir     string
	ProductFile string
	UserFile    string
	QuizFile    string
	OrderFile   string
	BackupDir   string

	// Operational hours for the auto-reply feature.
	Timezone  string
	Location  *time.Location
	OpenTime  string
	CloseTime string
	WorkDays  []time.Weekday

	AutoReplyEnabled    bool
	MaxAutoReplyPerUser int

	// Order wizard knobs.
	SessionBackend string // "memory" or "redis"
	RedisAddr      string
	RedisDB        int
	SessionTTL     time.Duration
	ShippingFee    int
	MaxOrderQty    int
	PaymentDelay   time.Duration
}

// Load reads and validates configuration, falling back to defaults where
// a variable is unset.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		BotName:        getEnv("BOT_NAME", "TAM Store Bot"),
		StoreName:      getEnv("STORE_NAME", "TAM Store"),
		OwnerName:      getEnv("OWNER_NAME", "TAM Store Admin"),
		AdminContact:   getEnv("ADMIN_CONTACT", "+62 812-3456-7890"),
		SessionDBPath:  getEnv("SESSION_DB_PATH", "file:store.db?_foreign_keys=on"),
		DataDir:        getEnv("DATA_DIR", "data"),
		Timezone:       getEnv("BOT_TIMEZONE", "Asia/Jakarta"),
		OpenTime:       getEnv("OPEN_TIME", "08:00"),
		CloseTime:      getEnv("CLOSE_TIME", "17:00"),
		SessionBackend: getEnv("SESSION_BACKEND", "memory"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
	}

	cfg.ProductFile = getEnv("PRODUCT_FILE", filepath.Join(cfg.DataDir, "products.json"))
	cfg.UserFile = getEnv("USER_FILE", filepath.Join(cfg.DataDir, "users.json"))
	cfg.QuizFile = getEnv("QUIZ_FILE", filepath.Join(cfg.DataDir, "quiz.json"))
	cfg.OrderFile = getEnv("ORDER_FILE", filepath.Join(cfg.DataDir, "orders.json"))
	cfg.BackupDir = getEnv("BACKUP_DIR", filepath.Join(cfg.DataDir, "backup"))

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid BOT_TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	for _, clock := range []string{cfg.OpenTime, cfg.CloseTime} {
		if _, err := time.Parse("15:04", clock); err != nil {
			return nil, fmt.Errorf("invalid operational hour %q: %w", clock, err)
		}
	}

	days, err := parseWorkDays(getEnv("WORK_DAYS", "1,2,3,4,5"))
	if err != nil {
		return nil, err
	}
	cfg.WorkDays = days

	cfg.AutoReplyEnabled, err = getEnvBool("AUTO_REPLY_ENABLED", true)
	if err != nil {
		return nil, err
	}
	cfg.MaxAutoReplyPerUser, err = getEnvInt("MAX_AUTO_REPLY_PER_USER", 1)
	if err != nil {
		return nil, err
	}

	cfg.RedisDB, err = getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	if cfg.SessionBackend != "memory" && cfg.SessionBackend != "redis" {
		return nil, fmt.Errorf("SESSION_BACKEND must be 'memory' or 'redis', got %q", cfg.SessionBackend)
	}

	ttlMin, err := getEnvInt("SESSION_TTL_MIN", 30)
	if err != nil {
		return nil, err
	}
	if ttlMin <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_MIN must be > 0")
	}
	cfg.SessionTTL = time.Duration(ttlMin) * time.Minute

	cfg.ShippingFee, err = getEnvInt("SHIPPING_FEE", 15000)
	if err != nil {
		return nil, err
	}
	cfg.MaxOrderQty, err = getEnvInt("MAX_ORDER_QTY", 10)
	if err != nil {
		return nil, err
	}
	if cfg.MaxOrderQty <= 0 {
		return nil, fmt.Errorf("MAX_ORDER_QTY must be > 0")
	}

	delaySec, err := getEnvInt("PAYMENT_DELAY_SEC", 3)
	if err != nil {
		return nil, err
	}
	cfg.PaymentDelay = time.Duration(delaySec) * time.Second

	return cfg, nil
}

func parseWorkDays(raw string) ([]time.Weekday, error) {
	parts := strings.Split(raw, ",")
	days := make([]time.Weekday, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("invalid WORK_DAYS entry %q", p)
		}
		days = append(days, time.Weekday(n))
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("WORK_DAYS must not be empty")
	}
	return days, nil
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
