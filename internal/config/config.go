package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"bookshelf/internal/errs"
)

var (
	errEnvVarNotFound    error = errors.New("environment variable not found")
	errUnsupportedScheme error = errors.New("unsupported database url scheme")
)

const (
	apiPortEnvKey      = "API_PORT"
	dbConnEnvKey       = "DB_CONNECTION_URL"
	dbNameEnvKey       = "DB_NAME"
	jwtSecretEnvKey    = "JWT_SECRET"
	clientOriginEnvKey = "CLIENT_ORIGIN"
	staticDirEnvKey    = "STATIC_DIR"
	logLevelEnvKey     = "LOG_LEVEL"
)

const (
	defaultPort         = "3001"
	defaultDBName       = "googlebooks"
	defaultClientOrigin = "http://localhost:3000"
	defaultLogLevel     = "info"
)

// StoreKind selects the user store backend from the database url scheme.
type StoreKind string

const (
	StoreMongo    StoreKind = "mongo"
	StorePostgres StoreKind = "postgres"
	StoreMemory   StoreKind = "memory"
)

type App struct {
	Port            string
	DBConnectionURL string
	DBName          string
	Store           StoreKind
	JWTSecret       string
	ClientOrigin    string
	StaticDir       string
	LogLevel        string
}

func NewApp() (App, error) {
	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok || jwtSecret == "" {
		err := fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
		return App{}, errs.Wrap(errs.KindConfiguration, "JWT secret key is not configured", err)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok || dbConn == "" {
		err := fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
		return App{}, errs.Wrap(errs.KindConfiguration, "database url is not configured", err)
	}

	store, err := storeKind(dbConn)
	if err != nil {
		return App{}, errs.Wrap(errs.KindConfiguration, "database url is not supported", err)
	}

	return App{
		Port:            lookupOr(apiPortEnvKey, defaultPort),
		DBConnectionURL: dbConn,
		DBName:          lookupOr(dbNameEnvKey, defaultDBName),
		Store:           store,
		JWTSecret:       jwtSecret,
		ClientOrigin:    lookupOr(clientOriginEnvKey, defaultClientOrigin),
		StaticDir:       os.Getenv(staticDirEnvKey),
		LogLevel:        lookupOr(logLevelEnvKey, defaultLogLevel),
	}, nil
}

func storeKind(dbURL string) (StoreKind, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return "", fmt.Errorf("parse database url: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "mongodb", "mongodb+srv":
		return StoreMongo, nil
	case "postgres", "postgresql":
		return StorePostgres, nil
	case "memory":
		return StoreMemory, nil
	default:
		return "", fmt.Errorf("%w: %q", errUnsupportedScheme, u.Scheme)
	}
}

func lookupOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
