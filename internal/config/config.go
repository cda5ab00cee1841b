package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Mocks           Mocks           `mapstructure:",squash"`
	DemoSession     DemoSession     `mapstructure:",squash"`
	MarketTick      MarketTick      `mapstructure:",squash"`
	ActionsRotation ActionsRotation `mapstructure:",squash"`
	Scenery         Scenery         `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Mocks controla a camada de dados fictícios do dashboard.
type Mocks struct {
	Enabled           bool `mapstructure:"use_mocks"`
	LatencyMS         int  `mapstructure:"mock_latency_ms"`
	PriceHistoryLimit int  `mapstructure:"mock_price_history_limit"`
}

// DemoSession configura o token da sessão de demonstração.
type DemoSession struct {
	Secret     string `mapstructure:"demo_session_secret"`
	TTLMinutes int    `mapstructure:"demo_session_ttl_minutes"`
}

// MarketTick configura o job que gera os ticks de preço fictícios.
type MarketTick struct {
	CronSchedule  string  `mapstructure:"market_tick_cron"`
	Enabled       bool    `mapstructure:"market_tick_enabled"`
	VolatilityPct float64 `mapstructure:"market_tick_volatility_pct"`
}

// ActionsRotation configura o job que renova a fila de ações planejadas.
type ActionsRotation struct {
	CronSchedule string `mapstructure:"actions_rotation_cron"`
	Enabled      bool   `mapstructure:"actions_rotation_enabled"`
	MinQueue     int    `mapstructure:"actions_rotation_min_queue"`
}

// Scenery configura os fundos decorativos gerados.
type Scenery struct {
	StaticOnly bool `mapstructure:"scenery_static_only"`
}

// Latency converte o valor configurado em duração, nunca negativa.
func (m Mocks) Latency() time.Duration {
	if m.LatencyMS <= 0 {
		return 0
	}
	return time.Duration(m.LatencyMS) * time.Millisecond
}

// TTL converte o valor configurado em duração.
func (d DemoSession) TTL() time.Duration {
	if d.TTLMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(d.TTLMinutes) * time.Minute
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	// Camada de mocks: é o modo normal de operação desta aplicação.
	viper.SetDefault("USE_MOCKS", true)
	viper.SetDefault("MOCK_LATENCY_MS", 350)
	viper.SetDefault("MOCK_PRICE_HISTORY_LIMIT", 288)

	viper.SetDefault("DEMO_SESSION_SECRET", "demo_secret_change_me")
	viper.SetDefault("DEMO_SESSION_TTL_MINUTES", 30)

	viper.SetDefault("MARKET_TICK_CRON", "*/5 * * * *") // Um tick de preço a cada 5 minutos
	viper.SetDefault("MARKET_TICK_ENABLED", true)
	viper.SetDefault("MARKET_TICK_VOLATILITY_PCT", 4.0)

	viper.SetDefault("ACTIONS_ROTATION_CRON", "*/30 * * * *") // Renova a fila a cada 30 minutos
	viper.SetDefault("ACTIONS_ROTATION_ENABLED", true)
	viper.SetDefault("ACTIONS_ROTATION_MIN_QUEUE", 4)

	viper.SetDefault("SCENERY_STATIC_ONLY", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carrega o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando defaults e variáveis de ambiente")
}
