package config

type App struct {
	Port            string `env:"APP_PORT" default:"8080"`
	BackendURL      string `env:"BACKEND_URL,required"`
	BasePath        string `env:"BASE_PATH" default:"/admin"`
	SessionSecret   string `env:"SESSION_SECRET"`
	SessionTTLHours int    `env:"SESSION_TTL_HOURS" default:"12"`
	DatabaseURL     string `env:"DATABASE_URL"`
	TelegramToken   string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID  int64  `env:"TELEGRAM_CHAT_ID"`
	Env             string `env:"APP_ENV" default:"dev"`
}
