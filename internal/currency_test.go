package internal

import (
	"testing"

	"golang.org/x/text/language"
)

// resetDetectedLocale resets the global detectedLocale for testing
func resetDetectedLocale() {
	detectedLocale = language.Und
}

func TestGetCurrency_KnownCurrencies(t *testing.T) {
	resetDetectedLocale()
	codes := []string{"PLN", "EUR", "USD", "GBP", "SEK", "NOK", "DKK", "CHF", "CZK", "JPY"}

	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			c := GetCurrency(code)
			if c.Code != code {
				t.Errorf("Code = %q, want %q", c.Code, code)
			}
			// Verify it can format without panicking
			_ = c.Format(1234.56)
		})
	}
}

func TestGetCurrency_CaseInsensitive(t *testing.T) {
	resetDetectedLocale()
	tests := []string{"pln", "Pln", "PLN", "plN"}
	for _, code := range tests {
		c := GetCurrency(code)
		if c.Code != "PLN" {
			t.Errorf("GetCurrency(%q).Code = %q, want PLN", code, c.Code)
		}
	}
}

func TestCurrency_Format(t *testing.T) {
	resetDetectedLocale()
	// Note: x/text uses non-breaking space (U+00A0) for Polish/Swedish thousand separators
	nbsp := "\u00a0" // non-breaking space

	tests := []struct {
		name   string
		code   string
		amount float64
		want   string
	}{
		{"PLN small", "PLN", 100, "100,00 zł"},
		{"PLN thousands", "PLN", 1234.5, "1" + nbsp + "234,50 zł"},
		{"EUR thousands", "EUR", 1234.5, "1.234,50 €"},
		{"USD small", "USD", 100, "$100.00"},
		{"USD thousands", "USD", 1234.5, "$1,234.50"},
		{"GBP small", "GBP", 100, "£100.00"},
		{"SEK thousands", "SEK", 1234, "1" + nbsp + "234,00 kr"},
		{"Unknown small", "XYZ", 100, "100.00 XYZ"},
		{"Unknown thousands", "XYZ", 1234, "1,234.00 XYZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := GetCurrency(tt.code)
			got := c.Format(tt.amount)
			if got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestParseCurrencyFromLocale(t *testing.T) {
	tests := []struct {
		locale       string
		wantCurrency string
		wantTag      string
	}{
		{"pl_PL.UTF-8", "PLN", "pl-PL"},
		{"en_US.UTF-8", "USD", "en-US"},
		{"de_DE", "EUR", "de-DE"},
		{"sv_SE.UTF-8", "SEK", "sv-SE"},
		{"en_GB.UTF-8", "GBP", "en-GB"},
		{"C", "", ""},
		{"en", "", ""}, // No region
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			gotCurrency, gotTag := parseCurrencyFromLocale(tt.locale)
			if gotCurrency != tt.wantCurrency {
				t.Errorf("parseCurrencyFromLocale(%q) currency = %q, want %q", tt.locale, gotCurrency, tt.wantCurrency)
			}
			if tt.wantTag != "" && gotTag.String() != tt.wantTag {
				t.Errorf("parseCurrencyFromLocale(%q) tag = %q, want %q", tt.locale, gotTag.String(), tt.wantTag)
			}
		})
	}
}
