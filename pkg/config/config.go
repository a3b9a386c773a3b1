package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de persistencia disponibles.
const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	Store StoreConfig
	DB    DBConfig
	JWT   JWTConfig
	HTTP  HTTPConfig
	Admin AdminConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// StoreConfig persistencia del snapshot de la tienda.
// Driver "file" guarda en un archivo JSON local; "postgres" en una fila por
// tienda (el papel que jugaba la hoja de cálculo remota).
type StoreConfig struct {
	Driver   string // file | postgres
	Ref      string // ruta del archivo, o clave de la tienda en la tabla
	FilePath string // solo driver file: ruta del archivo JSON
}

// AdminConfig candado de administrador: un solo secreto compartido.
// PasswordHash es un hash bcrypt; no hay usuarios ni expiración especial.
type AdminConfig struct {
	PasswordHash string
}

// DBConfig configuración de PostgreSQL (solo con STORE_DRIVER=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN: DatabaseURL si está definido, si no DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN construye el connection string con URL encoding para caracteres
// especiales en la contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración del token de sesión admin.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
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

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad.
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
			Name: getString(v, "APP_NAME", "inventario-tienda"),
		},
		Store: StoreConfig{
			Driver:   getString(v, "STORE_DRIVER", StoreDriverFile),
			Ref:      getString(v, "STORE_REF", "tienda-caballero"),
			FilePath: getString(v, "STORE_FILE", "./data/inventario.json"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventario_tienda"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "inventario-tienda"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Admin: AdminConfig{
			PasswordHash: getString(v, "ADMIN_PASSWORD_HASH", ""),
		},
	}

	if cfg.Store.Driver != StoreDriverFile && cfg.Store.Driver != StoreDriverPostgres {
		return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
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
