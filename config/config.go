package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	Env            string
	AllowedOrigins []string
	DefaultRoom    string
}

// Load reads .env if present, then the environment. Missing values fall
// back to local-dev defaults.
func Load() Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	origins := []string{"*"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	defaultRoom := os.Getenv("DEFAULT_ROOM")
	if defaultRoom == "" {
		defaultRoom = "lobby"
	}

	return Config{
		Addr:           ":" + port,
		Env:            os.Getenv("ENV"),
		AllowedOrigins: origins,
		DefaultRoom:    defaultRoom,
	}
}

// AllowsOrigin reports whether the given Origin header value may open a
// websocket or cross-origin request against this server.
func (c Config) AllowsOrigin(origin string) bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}
