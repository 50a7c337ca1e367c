package cfg

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Port int

func (p Port) String() string {
	return fmt.Sprintf(":%d", p)
}

type Backend struct {
	BaseURL string        `env:"BACKEND_URL" env-default:"https://cinecritique.mi.hdm-stuttgart.de/api"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT" env-default:"30s"`
}

// Cache configures the key/value store behind the view cache.
// Driver is one of "memory", "redis" or "mongo".
type Cache struct {
	Driver     string        `env:"CACHE_DRIVER" env-default:"memory"`
	CacheAddr  string        `env:"CACHE_ADDR" env-default:"localhost:6379"`
	MongoConn  string        `env:"CACHE_MONGO_URI" env-default:"mongodb://localhost:27017"`
	Prefix     string        `env:"CACHE_PREFIX"`
	DefaultTTL time.Duration `env:"CACHE_TTL" env-default:"24h"`
	PerUser    bool          `env:"CACHE_PER_USER" env-default:"false"`
}

type Catalog struct {
	FetchConcurrency int           `env:"CATALOG_FETCH_CONCURRENCY" env-default:"8"`
	RefreshTimeout   time.Duration `env:"CATALOG_REFRESH_TIMEOUT" env-default:"45s"`
}

type Log struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
	JSON  bool   `env:"LOG_JSON" env-default:"true"`
}

// Admin guards the operator endpoints. An empty user disables the check.
type Admin struct {
	User     string `env:"ADMIN_USER"`
	Password string `env:"ADMIN_PASSWORD"`
}

func (a Admin) Users() map[string]string {
	if a.User == "" {
		return nil
	}
	return map[string]string{a.User: a.Password}
}

type Config struct {
	ApiPort        Port     `env:"API_PORT" env-default:"8080"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
	Backend        Backend
	Cache          Cache
	Catalog        Catalog
	Log            Log
	Admin          Admin
}

var cfg Config

func Get() Config {
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		panic(err)
	}

	return cfg
}

func SetConfig(c Config) {
	cfg = c
}
