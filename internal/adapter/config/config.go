package config

import (
	"flag"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database    *Database
	HTTP        *HTTP
	Marketplace *Marketplace
	Pipeline    *Pipeline
	App         *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

const DefaultMarketplaceURL = "https://api.lendingclub.com/api/investor/v1"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
	// TokenKey is a hex encoded v4 symmetric key; a random key is used when empty.
	TokenKey string `env:"TOKEN_KEY"`
}

type Marketplace struct {
	Key        string        `env:"LC_API_KEY"`
	InvestorID int64         `env:"LC_INVESTOR_ID"`
	BaseURL    string        `env:"LC_BASE_URL"`
	Timeout    time.Duration `env:"LC_TIMEOUT"`

	// Extra holds settings this version does not know about, unmodified.
	// LC_EXTRA is a comma separated list of key:value pairs.
	Extra map[string]string `env:"LC_EXTRA"`
}

// Setting returns a passthrough setting from Extra.
func (m *Marketplace) Setting(key string) (string, bool) {
	v, ok := m.Extra[key]
	return v, ok
}

var marketplaceParsers = map[reflect.Type]env.ParserFunc{
	reflect.TypeOf(map[string]string{}): parseKeyValues,
}

func parseMarketplace(m *Marketplace) error {
	return env.ParseWithFuncs(m, marketplaceParsers)
}

// parseKeyValues reads "k1:v1,k2:v2". Only the first colon separates a key
// from its value, so values may contain colons.
func parseKeyValues(raw string) (interface{}, error) {
	result := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, v, ok := strings.Cut(pair, ":")
		if !ok || k == "" {
			return nil, fmt.Errorf("bad key:value pair %q", pair)
		}
		result[k] = v
	}
	return result, nil
}

type Pipeline struct {
	Workers           int    `env:"PIPELINE_WORKERS"`
	FilterErrorPolicy string `env:"FILTER_ERROR_POLICY"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var marketplace Marketplace
	var pipeline Pipeline
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string, presets are disabled when empty")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&http.TokenKey, "t", "", "Hex encoded token key")
	flag.StringVar(&marketplace.Key, "k", "", "Marketplace API key")
	flag.Int64Var(&marketplace.InvestorID, "i", 0, "Investor account id")
	flag.StringVar(&marketplace.BaseURL, "u", DefaultMarketplaceURL, "Marketplace API base url")
	flag.DurationVar(&marketplace.Timeout, "timeout", 30*time.Second, "Marketplace request timeout")
	flag.IntVar(&pipeline.Workers, "w", 0, "Loans evaluated at once, 0 for no limit")
	flag.StringVar(&pipeline.FilterErrorPolicy, "f", "exclude", "exclude / propagate predicate failures")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = parseMarketplace(&marketplace)
	if err != nil {
		return nil, fmt.Errorf("error parsing marketplace config: %w", err)
	}
	err = env.Parse(&pipeline)
	if err != nil {
		return nil, fmt.Errorf("error parsing pipeline config: %w", err)
	}

	config := Config{
		Database:    &db,
		HTTP:        &http,
		Marketplace: &marketplace,
		Pipeline:    &pipeline,
		App:         &app,
	}

	return &config, nil
}
