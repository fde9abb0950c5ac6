package config // package config loads application configuration from environment variables

import (
	"fmt"     // fmt builds configuration error messages
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strings" // strings normalises optional values

	"github.com/joho/godotenv" // godotenv loads .env files into the process environment
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.
type Config struct {
	Env        string // application environment (e.g. "dev", "prod")
	Port       string // HTTP port to listen on
	JWTSecret  string // secret used to verify access tokens
	CookieName string // cookie carrying the access token
	CORSOrigin string // front-end origin allowed to send credentialed requests (optional)
	LogLevel   string // zap level name (debug, info, warn, error)
}

// LookupFunc resolves one environment variable.  os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Load reads optional .env files and then the process environment.  A
// missing required variable causes the program to exit with a fatal log
// message.
func Load() Config {
	loadDotEnv(os.Getenv("APP_ENV"))
	cfg, err := LoadFrom(os.LookupEnv)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// LoadFrom builds a Config from lookup.  It returns an error instead of
// exiting so that callers other than main can handle misconfiguration.
func LoadFrom(lookup LookupFunc) (Config, error) {
	secret, err := must(lookup, "JWT_SECRET_KEY")
	if err != nil {
		return Config{}, err
	}
	return Config{
		Env:        env(lookup, "APP_ENV", "dev"),                      // environment (dev/test/prod)
		Port:       env(lookup, "APP_PORT", "4001"),                    // port to bind the HTTP server
		JWTSecret:  secret,                                             // secret used for verifying JWTs
		CookieName: env(lookup, "AUTH_COOKIE_NAME", "accessToken"),     // cookie set by the login flow
		CORSOrigin: env(lookup, "ENV_URL", ""),                         // browser origin for CORS
		LogLevel:   strings.ToLower(env(lookup, "LOG_LEVEL", "info")), // logger verbosity
	}, nil
}

// loadDotEnv loads .env.<appEnv> and then .env when they exist.  godotenv
// never overrides variables that are already set, so the real environment
// always wins and the more specific file wins over the generic one.
func loadDotEnv(appEnv string) {
	files := []string{".env"}
	if appEnv != "" {
		files = append([]string{".env." + appEnv}, files...)
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			log.Printf("config: cannot load %s: %v", f, err)
		}
	}
}

// must retrieves the value of a required environment variable.  Unset and
// empty values are both treated as missing.
func must(lookup LookupFunc, key string) (string, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return "", fmt.Errorf("missing required env var: %s", key)
	}
	return v, nil
}

// env returns the value of key, or def when it is unset or empty.
func env(lookup LookupFunc, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}
