package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	JWT    JWTConfig
	Remote RemoteConfig
	Redis  RedisConfig
	Export ExportConfig
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

// JWTConfig configuración del token de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// RemoteConfig configuración del colaborador remoto de procedimientos (API central).
// El cliente nunca toca la base de datos: todo pasa por este colaborador.
type RemoteConfig struct {
	BaseURL       string        // ej. https://api.avicampo.example
	APIKey        string        // credencial de servicio para el colaborador
	Timeout       time.Duration // timeout por petición
	CacheTTL      time.Duration // vigencia de las respuestas de query en caché
	CallbackGrace time.Duration // ventana de gracia para callbacks OAuth entrantes
}

// RedisConfig configuración del caché de queries.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ExportConfig directorio con permiso de escritura persistente para exportar reportes.
type ExportConfig struct {
	Dir string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, REMOTE_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "avicola-campo"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "avicola-campo"),
		},
		Remote: RemoteConfig{
			BaseURL:       getString(v, "REMOTE_BASE_URL", "http://localhost:9090"),
			APIKey:        getString(v, "REMOTE_API_KEY", ""),
			Timeout:       time.Duration(getInt(v, "REMOTE_TIMEOUT_SECONDS", 15)) * time.Second,
			CacheTTL:      time.Duration(getInt(v, "REMOTE_CACHE_TTL_SECONDS", 60)) * time.Second,
			CallbackGrace: time.Duration(getInt(v, "AUTH_CALLBACK_GRACE_SECONDS", 5)) * time.Second,
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Export: ExportConfig{
			Dir: getString(v, "EXPORT_DIR", "./exports"),
		},
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
