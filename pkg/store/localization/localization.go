// Package localization converts and formats catalog prices and translates
// the handful of storefront labels that ship in more than one language.
package localization

import (
	"errors"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ErrUnknownLocale   = errors.New("unsupported locale")
	ErrUnknownCurrency = errors.New("unsupported currency")
)

type Locale string

const (
	LocaleEnUS Locale = "en-US"
	LocaleDeDE Locale = "de-DE"
)

type Currency string

const (
	CurrencyNGN Currency = "NGN"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyJPY Currency = "JPY"
)

// Exchange rates from naira, the currency catalog prices are stored in.
var rates = map[Currency]float64{
	CurrencyNGN: 1,
	CurrencyUSD: 0.00067,
	CurrencyEUR: 0.00062,
	CurrencyJPY: 0.10,
}

type Localizer struct {
	locale   Locale
	currency Currency
}

func New() *Localizer {
	return &Localizer{locale: LocaleEnUS, currency: CurrencyUSD}
}

func (l *Localizer) Locale() Locale {
	return l.locale
}

func (l *Localizer) Currency() Currency {
	return l.currency
}

func (l *Localizer) SetLocale(locale Locale) error {
	if _, ok := translations[locale]; !ok {
		return ErrUnknownLocale
	}
	l.locale = locale
	return nil
}

func (l *Localizer) SetCurrency(c Currency) error {
	if _, ok := rates[c]; !ok {
		return ErrUnknownCurrency
	}
	l.currency = c
	return nil
}

// FormatPrice converts a naira amount into the selected currency and
// renders it with the locale's conventions.
func (l *Localizer) FormatPrice(price int64) string {
	converted := float64(price) * rates[l.currency]

	unit, err := currency.ParseISO(string(l.currency))
	if err != nil {
		unit = currency.USD
	}

	printer := message.NewPrinter(language.Make(string(l.locale)))
	return printer.Sprint(currency.Symbol(unit.Amount(converted)))
}

// T translates a storefront label, falling back to the key itself.
func (l *Localizer) T(key string) string {
	if translated, ok := translations[l.locale][key]; ok {
		return translated
	}
	return key
}

var translations = map[Locale]map[string]string{
	LocaleEnUS: {
		"Build Your Ecosystem": "Build Your Ecosystem",
		"Step 1: Choose Your Foundation": "Step 1: Choose Your Foundation",
		"Step 2: Accessorize Your Life": "Step 2: Accessorize Your Life",
		"Your Bundle": "Your Bundle",
		"Subtotal": "Subtotal",
		"Bundle Discount": "Bundle Discount",
		"Total": "Total",
		"Add Bundle to Cart": "Add Bundle to Cart",
		"Select a phone to start": "Select a phone to start",
	},
	LocaleDeDE: {
		"Build Your Ecosystem": "Bauen Sie Ihr Ökosystem",
		"Step 1: Choose Your Foundation": "Schritt 1: Wählen Sie Ihre Grundlage",
		"Step 2: Accessorize Your Life": "Schritt 2: Ergänzen Sie Ihr Leben",
		"Your Bundle": "Ihr Bündel",
		"Subtotal": "Zwischensumme",
		"Bundle Discount": "Bündelrabatt",
		"Total": "Gesamt",
		"Add Bundle to Cart": "Bündel in den Warenkorb legen",
		"Select a phone to start": "Wählen Sie ein Telefon, um zu beginnen",
	},
}
