package config

import (
	"fmt"
	"log"
	"os"
	"strings"
)

type Config struct {
	HTTPAddr        string
	DatabaseURL     string
	HistoryFile     string
	InternalToken   string
	CORSAllowOrigin string
	PDFRenderer     string
	PDFFontDir      string
	PriceTableFile  string
	DefaultQuoteFor string
	DefaultCurrency string
}

func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		DatabaseURL:     env("DATABASE_URL", ""),
		HistoryFile:     env("HISTORY_FILE", "data/printCalculatorQuotes.json"),
		InternalToken:   env("INTERNAL_TOKEN", ""),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
		PDFRenderer:     strings.ToLower(env("PDF_RENDERER", "gofpdf")),
		PDFFontDir:      env("PDF_FONT_DIR", ""),
		PriceTableFile:  env("PRICE_TABLE_FILE", ""),
		DefaultQuoteFor: env("DEFAULT_QUOTE_FOR", "Willowpack"),
		DefaultCurrency: strings.ToUpper(env("DEFAULT_CURRENCY", "CAD")),
	}
	switch cfg.PDFRenderer {
	case "gofpdf", "maroto":
	default:
		return cfg, fmt.Errorf("PDF_RENDERER must be gofpdf or maroto, got %q", cfg.PDFRenderer)
	}
	if len(cfg.DefaultCurrency) != 3 {
		return cfg, fmt.Errorf("DEFAULT_CURRENCY must be a 3-letter code, got %q", cfg.DefaultCurrency)
	}
	return cfg, nil
}

func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
