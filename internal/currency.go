package internal

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency formats monetary amounts for display. Profiles store only the ISO
// code; the formatting locale is derived from it (or from the OS locale when
// the currency itself was auto-detected).
type Currency struct {
	Code    string // "PLN", "EUR", "USD"
	unit    currency.Unit
	tag     language.Tag
	printer *message.Printer
}

// symbolOverrides provides custom symbols where the x/text defaults aren't
// what users of the desktop app expect.
var symbolOverrides = map[string]string{
	"PLN": "zł",
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
	"CZK": "Kč",
}

// defaultLocaleForCurrency supplies a formatting locale when a currency code
// arrives without one (profile settings store only the code).
var defaultLocaleForCurrency = map[string]language.Tag{
	"PLN": language.Polish,
	"EUR": language.German,
	"USD": language.AmericanEnglish,
	"GBP": language.BritishEnglish,
	"SEK": language.Swedish,
	"NOK": language.Norwegian,
	"DKK": language.Danish,
	"CHF": language.German,
	"CZK": language.Czech,
	"HUF": language.Hungarian,
	"UAH": language.Ukrainian,
	"JPY": language.Japanese,
	"CNY": language.Chinese,
	"CAD": language.CanadianFrench,
	"AUD": language.MustParse("en-AU"),
	"BRL": language.BrazilianPortuguese,
	"INR": language.MustParse("en-IN"),
	"TRY": language.Turkish,
}

// detectedLocale stores the system locale when auto-detected, so formatting
// can follow it.
var detectedLocale language.Tag

// GetCurrency returns the Currency for a given ISO code. Unknown codes still
// format, using the code itself as the symbol.
func GetCurrency(code string) Currency {
	code = strings.ToUpper(strings.TrimSpace(code))

	unit, err := currency.ParseISO(code)
	isUnknown := err != nil
	if isUnknown {
		unit = currency.USD // fallback unit for number formatting only
	}

	var tag language.Tag
	if detectedLocale != language.Und {
		tag = detectedLocale
	} else if t, ok := defaultLocaleForCurrency[code]; ok {
		tag = t
	} else {
		tag = language.English
	}

	c := Currency{
		Code:    code,
		unit:    unit,
		tag:     tag,
		printer: message.NewPrinter(tag),
	}

	if isUnknown {
		symbolOverrides[code] = code
	}

	return c
}

// DetectSystemCurrency attempts to detect a currency from the OS locale, for
// profiles that have no currency configured. Returns empty on failure and
// also records the locale for formatting.
func DetectSystemCurrency() string {
	locale := detectSystemLocale()
	if locale == "" {
		return ""
	}

	code, tag := parseCurrencyFromLocale(locale)
	if code != "" {
		detectedLocale = tag
		return code
	}
	return ""
}

// parseCurrencyFromLocale extracts a currency code and language tag from a
// locale string such as "pl_PL.UTF-8".
func parseCurrencyFromLocale(locale string) (string, language.Tag) {
	base := locale
	if idx := strings.Index(base, "."); idx != -1 {
		base = base[:idx]
	}
	if idx := strings.Index(base, "@"); idx != -1 {
		base = base[:idx]
	}

	tag, err := language.Parse(strings.Replace(base, "_", "-", 1))
	if err != nil {
		return "", language.Und
	}

	_, _, region := tag.Raw()
	if region.String() == "" || region.String() == "ZZ" {
		return "", language.Und
	}

	unit, ok := currency.FromRegion(region)
	if !ok {
		return "", language.Und
	}

	return unit.String(), tag
}

func (c Currency) getSymbol() string {
	if sym, ok := symbolOverrides[c.Code]; ok {
		return sym
	}
	return c.printer.Sprint(currency.NarrowSymbol(c.unit))
}

// isPrefix reports whether the symbol goes before the amount.
// golang.org/x/text/currency doesn't expose symbol positioning from CLDR
// patterns, so the list is maintained by hand.
func (c Currency) isPrefix() bool {
	switch c.Code {
	case "USD", "GBP", "JPY", "CAD", "AUD", "MXN", "HKD", "SGD", "NZD", "ZAR":
		return true
	default:
		return false
	}
}

// Format renders an amount with two fraction digits and the currency symbol.
func (c Currency) Format(amount float64) string {
	formatted := c.printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	symbol := c.getSymbol()

	if c.isPrefix() {
		return symbol + formatted
	}
	return formatted + " " + symbol
}
