// Package config carga la configuración del puente desde YAML con overrides
// por variables de entorno (prefijo UF_).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Bloque app (opcional en YAML). Si no está, queda vacío.
	App struct {
		// dev | staging | prod
		Env string `yaml:"app_env"`
	} `yaml:"app"`

	Server struct {
		Addr               string   `yaml:"addr"`
		CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	} `yaml:"server"`

	// Auth protege la superficie HTTP del puente (host -> puente).
	// Con jwt_secret se exige Bearer HS256; si no, api_key por header;
	// sin ninguno, la API queda abierta (solo dev).
	Auth struct {
		APIKey    string `yaml:"api_key"`
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"auth"`

	Storage struct {
		// Driver registrado: postgres | mysql | sqlite
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`

		// Dialect opcional: override del dialecto de paginación
		// (ej: "oracle" o "sqlserver" a través de un driver genérico).
		Dialect string `yaml:"dialect"`

		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime"`
	} `yaml:"storage"`

	// Queries son los templates SQL del esquema legado, con placeholders
	// posicionales del motor. No se validan acá, solo se ejecutan.
	Queries struct {
		ListAll          string `yaml:"list_all"`
		Count            string `yaml:"count"`
		FindByID         string `yaml:"find_by_id"`
		FindByUsername   string `yaml:"find_by_username"`
		FindByEmail      string `yaml:"find_by_email"`
		FindBySearchTerm string `yaml:"find_by_search_term"`
		FindPasswordHash string `yaml:"find_password_hash"`
	} `yaml:"queries"`

	Credentials struct {
		// HashFunction identificador legado: "PBKDF2-SHA256", "MD5",
		// "SHA-1", "SHA-256", etc. Ignorado si bcrypt es true.
		HashFunction string `yaml:"hash_function"`

		// BCrypt selecciona el esquema salado adaptativo.
		BCrypt bool `yaml:"bcrypt"`

		// AllowRemove habilita al host a borrar usuarios (solo el flag;
		// el borrado en sí no pasa por el puente).
		AllowRemove bool `yaml:"allow_remove"`
	} `yaml:"credentials"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Metrics struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"metrics"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	c.applyDefaults()
	c.applyEnvOverrides()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	// sane defaults
	if c.Server.Addr == "" {
		c.Server.Addr = ":8085"
	}
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Credentials.HashFunction == "" && !c.Credentials.BCrypt {
		c.Credentials.HashFunction = "SHA-256"
	}
	if c.Storage.MaxOpenConns == 0 {
		c.Storage.MaxOpenConns = 10
	}
	if c.Storage.MaxIdleConns == 0 {
		c.Storage.MaxIdleConns = 5
	}
	if c.Storage.ConnMaxLifetime == "" {
		c.Storage.ConnMaxLifetime = "5m"
	}
}

// ─── Env overrides (UF_*) ───

func getEnvStr(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	return v, ok && v != ""
}

func getEnvInt(key string) (int, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

func getEnvBool(key string) (bool, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, false
	}
	return b, true
}

func (c *Config) applyEnvOverrides() {
	if v, ok := getEnvStr("UF_SERVER_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := getEnvStr("UF_APP_ENV"); ok {
		c.App.Env = v
	}
	if v, ok := getEnvStr("UF_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := getEnvStr("UF_AUTH_API_KEY"); ok {
		c.Auth.APIKey = v
	}
	if v, ok := getEnvStr("UF_AUTH_JWT_SECRET"); ok {
		c.Auth.JWTSecret = v
	}
	if v, ok := getEnvStr("UF_STORAGE_DRIVER"); ok {
		c.Storage.Driver = v
	}
	if v, ok := getEnvStr("UF_STORAGE_DSN"); ok {
		c.Storage.DSN = v
	}
	if v, ok := getEnvStr("UF_STORAGE_DIALECT"); ok {
		c.Storage.Dialect = v
	}
	if v, ok := getEnvInt("UF_STORAGE_MAX_OPEN_CONNS"); ok {
		c.Storage.MaxOpenConns = v
	}
	if v, ok := getEnvInt("UF_STORAGE_MAX_IDLE_CONNS"); ok {
		c.Storage.MaxIdleConns = v
	}
	if v, ok := getEnvStr("UF_HASH_FUNCTION"); ok {
		c.Credentials.HashFunction = v
	}
	if v, ok := getEnvBool("UF_BCRYPT"); ok {
		c.Credentials.BCrypt = v
	}
	if v, ok := getEnvBool("UF_ALLOW_REMOVE"); ok {
		c.Credentials.AllowRemove = v
	}
	if v, ok := getEnvBool("UF_METRICS_ENABLED"); ok {
		c.Metrics.Enabled = v
	}
}

// ConnMaxLifetime parsea storage.conn_max_lifetime como duración.
func (c *Config) ConnMaxLifetime() time.Duration {
	d, err := time.ParseDuration(c.Storage.ConnMaxLifetime)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}

// Validate chequea lo mínimo para arrancar: driver, DSN y las siete queries.
func (c *Config) Validate() error {
	if c.Storage.Driver == "" {
		return fmt.Errorf("config: storage.driver is required")
	}
	if c.Storage.DSN == "" {
		return fmt.Errorf("config: storage.dsn is required")
	}

	required := map[string]string{
		"queries.list_all":            c.Queries.ListAll,
		"queries.count":               c.Queries.Count,
		"queries.find_by_id":          c.Queries.FindByID,
		"queries.find_by_username":    c.Queries.FindByUsername,
		"queries.find_by_email":       c.Queries.FindByEmail,
		"queries.find_by_search_term": c.Queries.FindBySearchTerm,
		"queries.find_password_hash":  c.Queries.FindPasswordHash,
	}
	for name, q := range required {
		if strings.TrimSpace(q) == "" {
			return fmt.Errorf("config: %s is required", name)
		}
	}
	return nil
}
