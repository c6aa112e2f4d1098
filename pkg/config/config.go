package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del servicio (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	JWT     JWTConfig
	Session SessionConfig
	Alert   AlertConfig
	SMS     SMSConfig
	Redis   RedisConfig
	Log     LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig describe la API REST externa que es dueña de los datos.
// LoginURL vacío se resuelve a BaseURL + "/api/auth/login".
type BackendConfig struct {
	BaseURL     string
	LoginURL    string
	Timeout     time.Duration // peticiones normales
	LongTimeout time.Duration // listados grandes
}

// ResolvedLoginURL devuelve el endpoint de login efectivo.
func (c BackendConfig) ResolvedLoginURL() string {
	if c.LoginURL != "" {
		return c.LoginURL
	}
	return strings.TrimRight(c.BaseURL, "/") + "/api/auth/login"
}

// JWTConfig configuración de los tokens que emite este servicio.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// SessionConfig controla el ciclo de vida de las sesiones del tablero.
type SessionConfig struct {
	Inactivity   time.Duration
	PollInterval time.Duration
}

// AlertConfig umbral de alerta de tanque bajo (porcentaje de llenado).
type AlertConfig struct {
	ThresholdPercent int
}

// SMSConfig pasarela HTTP de SMS. GatewayURL vacío = solo se registran en log.
type SMSConfig struct {
	GatewayURL string
	APIKey     string
	SenderID   string
	Recipients []string
}

// RedisConfig almacén opcional de snapshots. Addr vacío = memoria del proceso.
type RedisConfig struct {
	Addr        string
	SnapshotTTL time.Duration
}

// LogConfig nivel de log.
type LogConfig struct {
	Level string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_BASE_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "finflux-dashboard"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Backend: BackendConfig{
			BaseURL:     strings.TrimRight(getString(v, "BACKEND_BASE_URL", ""), "/"),
			LoginURL:    getString(v, "BACKEND_LOGIN_URL", ""),
			Timeout:     time.Duration(getInt(v, "BACKEND_TIMEOUT_MS", 15000)) * time.Millisecond,
			LongTimeout: time.Duration(getInt(v, "BACKEND_LONG_TIMEOUT_MS", 20000)) * time.Millisecond,
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "finflux-dashboard"),
		},
		Session: SessionConfig{
			Inactivity:   time.Duration(getInt(v, "SESSION_INACTIVITY_MINUTES", 30)) * time.Minute,
			PollInterval: time.Duration(getInt(v, "POLL_INTERVAL_SECONDS", 30)) * time.Second,
		},
		Alert: AlertConfig{
			ThresholdPercent: getInt(v, "ALERT_THRESHOLD_PERCENT", 20),
		},
		SMS: SMSConfig{
			GatewayURL: getString(v, "SMS_GATEWAY_URL", ""),
			APIKey:     getString(v, "SMS_API_KEY", ""),
			SenderID:   getString(v, "SMS_SENDER_ID", "FINFLX"),
			Recipients: splitList(getString(v, "SMS_RECIPIENTS", "")),
		},
		Redis: RedisConfig{
			Addr:        getString(v, "REDIS_ADDR", ""),
			SnapshotTTL: time.Duration(getInt(v, "SNAPSHOT_TTL_MINUTES", 60)) * time.Minute,
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("config: BACKEND_BASE_URL es obligatorio")
	}
	if cfg.Alert.ThresholdPercent <= 0 || cfg.Alert.ThresholdPercent > 100 {
		return nil, fmt.Errorf("config: ALERT_THRESHOLD_PERCENT fuera de rango: %d", cfg.Alert.ThresholdPercent)
	}
	if cfg.Session.PollInterval < time.Second {
		cfg.Session.PollInterval = time.Second
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// splitList separa "a, b,,c" en ["a" "b" "c"].
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
