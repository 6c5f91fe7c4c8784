package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

func Load() App {
	cfg := App{
		Port:            getenv("APP_PORT", "8080"),
		BackendURL:      strings.TrimRight(must("BACKEND_URL"), "/"),
		BasePath:        getenv("BASE_PATH", "/admin"),
		SessionSecret:   getenv("SESSION_SECRET", "local_dev_secret"),
		SessionTTLHours: getint("SESSION_TTL_HOURS", 12),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		TelegramToken:   os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:  int64(getint("TELEGRAM_CHAT_ID", 0)),
		Env:             getenv("APP_ENV", "dev"),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("bad numeric env, using default", "key", k, "value", v)
		return def
	}
	return n
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
