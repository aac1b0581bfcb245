package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "DATABASE_URL", "HISTORY_FILE", "PDF_RENDERER", "DEFAULT_CURRENCY", "DEFAULT_QUOTE_FOR"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.HistoryFile != "data/printCalculatorQuotes.json" {
		t.Errorf("HistoryFile = %q", cfg.HistoryFile)
	}
	if cfg.PDFRenderer != "gofpdf" || cfg.DefaultCurrency != "CAD" || cfg.DefaultQuoteFor != "Willowpack" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name     string
		renderer string
		currency string
		wantErr  bool
	}{
		{"maroto", "Maroto", "usd", false},
		{"unknown renderer", "wkhtml", "CAD", true},
		{"bad currency", "gofpdf", "DOLLARS", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PDF_RENDERER", tt.renderer)
			t.Setenv("DEFAULT_CURRENCY", tt.currency)
			cfg, err := Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && cfg.DefaultCurrency != "USD" {
				t.Errorf("DefaultCurrency = %q, want USD", cfg.DefaultCurrency)
			}
		})
	}
}
