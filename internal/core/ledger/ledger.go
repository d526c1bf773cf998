// Package ledger holds the currency and exchange-rate snapshot of a household and
// answers conversion and formatting questions against it.
//
// Lookups never fail: a currency pair with no quote in either direction converts
// with an identity rate of 1. Callers that need to know whether that happened use
// Resolve or RateAsOf and inspect Quote.Source.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
)

// DefaultPrimaryCurrency is returned by PrimaryCurrency when no household currency is flagged primary.
const DefaultPrimaryCurrency = "ARS"

var one = decimal.NewFromInt(1)

// CurrencySource provides the reference currencies and a household's enabled currencies.
type CurrencySource interface {
	ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error)
	ListHouseholdCurrencies(ctx context.Context, householdID string) ([]domain.HouseholdCurrency, error)
}

// RateStore provides and persists a household's exchange rates.
// ListActiveRates must return rates newest first (valid_from, then created_at, descending).
type RateStore interface {
	ListActiveRates(ctx context.Context, householdID string) ([]domain.ExchangeRate, error)
	InsertRate(ctx context.Context, rate domain.ExchangeRate) error
}

// Snapshot is the data a Ledger answers from. It is replaced wholesale on reload.
type Snapshot struct {
	Currencies          []domain.Currency
	HouseholdCurrencies []domain.HouseholdCurrency
	Rates               []domain.ExchangeRate
}

// QuoteSource tells how a Quote's rate was obtained.
type QuoteSource string

const (
	SourceIdentity QuoteSource = "identity" // same currency on both sides
	SourceDirect   QuoteSource = "direct"
	SourceInverse  QuoteSource = "inverse"
	SourceFallback QuoteSource = "fallback" // no quote found; rate is 1
)

// Quote is the result of a rate lookup.
type Quote struct {
	Rate     decimal.Decimal
	RateType domain.RateType
	Source   QuoteSource
	RateID   string // id of the stored rate used, empty for identity and fallback
}

// Found reports whether the rate came from real data rather than the identity fallback.
func (q Quote) Found() bool {
	return q.Source != SourceFallback
}

// NewRate describes a rate to be appended through AddRate.
type NewRate struct {
	FromCurrencyCode string
	ToCurrencyCode   string
	Rate             decimal.Decimal
	RateType         domain.RateType
	Notes            *string
	ValidFrom        time.Time // zero means now
	CreatedBy        string
}

// Ledger is the in-memory currency and rate book of one household.
// It is safe for concurrent use.
type Ledger struct {
	householdID string
	currencies  CurrencySource
	rates       RateStore

	fallbackCurrency string
	printer          *message.Printer
	now              func() time.Time

	mu   sync.RWMutex
	snap Snapshot
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithFallbackCurrency sets the currency PrimaryCurrency returns when none is flagged.
func WithFallbackCurrency(code string) Option {
	return func(l *Ledger) {
		if code != "" {
			l.fallbackCurrency = code
		}
	}
}

// WithLocale sets the BCP 47 locale used by Format.
func WithLocale(locale string) Option {
	return func(l *Ledger) {
		l.printer = utils.NewAmountPrinter(locale)
	}
}

// WithClock overrides the time source used to stamp new rates.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// New creates an empty Ledger for householdID. Call Reload to populate it.
func New(householdID string, currencies CurrencySource, rates RateStore, opts ...Option) *Ledger {
	l := &Ledger{
		householdID:      householdID,
		currencies:       currencies,
		rates:            rates,
		fallbackCurrency: DefaultPrimaryCurrency,
		printer:          utils.NewAmountPrinter(""),
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// HouseholdID returns the household this ledger belongs to.
func (l *Ledger) HouseholdID() string {
	return l.householdID
}

// Reload fetches currencies, household currencies and rates and swaps them in.
// On error the previous snapshot is kept.
func (l *Ledger) Reload(ctx context.Context) error {
	currencies, err := l.currencies.ListActiveCurrencies(ctx)
	if err != nil {
		return fmt.Errorf("failed to load currencies: %w", err)
	}
	householdCurrencies, err := l.currencies.ListHouseholdCurrencies(ctx, l.householdID)
	if err != nil {
		return fmt.Errorf("failed to load household currencies: %w", err)
	}
	rates, err := l.rates.ListActiveRates(ctx, l.householdID)
	if err != nil {
		return fmt.Errorf("failed to load exchange rates: %w", err)
	}

	l.Replace(Snapshot{
		Currencies:          currencies,
		HouseholdCurrencies: householdCurrencies,
		Rates:               rates,
	})
	return nil
}

// Replace installs snap as the current snapshot. Last write wins.
func (l *Ledger) Replace(snap Snapshot) {
	l.mu.Lock()
	l.snap = snap
	l.mu.Unlock()
}

func (l *Ledger) snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snap
}

// LatestRate returns how many units of to one unit of from buys.
// The first matching quote in snapshot order wins, direct before inverse;
// an unmatched pair yields 1.
func (l *Ledger) LatestRate(from, to string, rateType domain.RateType) decimal.Decimal {
	return l.Resolve(from, to, rateType).Rate
}

// Resolve is LatestRate with the provenance of the rate.
func (l *Ledger) Resolve(from, to string, rateType domain.RateType) Quote {
	return resolve(l.snapshot().Rates, from, to, rateType.OrDefault(), func(domain.ExchangeRate) bool { return true })
}

// RateAsOf resolves like Resolve but only considers quotes whose ValidFrom is not after at.
func (l *Ledger) RateAsOf(from, to string, rateType domain.RateType, at time.Time) Quote {
	return resolve(l.snapshot().Rates, from, to, rateType.OrDefault(), func(r domain.ExchangeRate) bool {
		return !r.ValidFrom.After(at)
	})
}

func resolve(rates []domain.ExchangeRate, from, to string, rateType domain.RateType, eligible func(domain.ExchangeRate) bool) Quote {
	if from == to {
		return Quote{Rate: one, RateType: rateType, Source: SourceIdentity}
	}
	for _, r := range rates {
		if r.FromCurrencyCode == from && r.ToCurrencyCode == to && r.RateType == rateType && eligible(r) {
			return Quote{Rate: r.Rate, RateType: rateType, Source: SourceDirect, RateID: r.ExchangeRateID}
		}
	}
	for _, r := range rates {
		if r.FromCurrencyCode == to && r.ToCurrencyCode == from && r.RateType == rateType && eligible(r) && !r.Rate.IsZero() {
			return Quote{Rate: one.Div(r.Rate), RateType: rateType, Source: SourceInverse, RateID: r.ExchangeRateID}
		}
	}
	return Quote{Rate: one, RateType: rateType, Source: SourceFallback}
}

// Convert expresses amount (in from) in to. No rounding is applied.
func (l *Ledger) Convert(amount decimal.Decimal, from, to string, rateType domain.RateType) decimal.Decimal {
	if from == to {
		return amount
	}
	return amount.Mul(l.LatestRate(from, to, rateType))
}

// Format renders amount with the currency's symbol and precision.
// Unknown currencies are rendered as the plain decimal string.
func (l *Ledger) Format(amount decimal.Decimal, currencyCode string) string {
	currency, ok := l.CurrencyInfo(currencyCode)
	if !ok {
		return amount.String()
	}
	return utils.FormatMoney(l.printer, amount, currency)
}

// PrimaryCurrency returns the household's primary currency code.
func (l *Ledger) PrimaryCurrency() string {
	for _, hc := range l.snapshot().HouseholdCurrencies {
		if hc.IsPrimary {
			return hc.CurrencyCode
		}
	}
	return l.fallbackCurrency
}

// AddRate appends a new active rate and reloads the whole snapshot.
// Older quotes for the same pair and type are left untouched.
func (l *Ledger) AddRate(ctx context.Context, in NewRate) (*domain.ExchangeRate, error) {
	now := l.now()
	validFrom := in.ValidFrom
	if validFrom.IsZero() {
		validFrom = now
	}

	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		HouseholdID:      l.householdID,
		FromCurrencyCode: in.FromCurrencyCode,
		ToCurrencyCode:   in.ToCurrencyCode,
		Rate:             in.Rate,
		RateType:         in.RateType.OrDefault(),
		ValidFrom:        validFrom,
		IsActive:         true,
		Notes:            in.Notes,
		AuditFields:      domain.NewAuditFields(in.CreatedBy, now),
	}

	if err := l.rates.InsertRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to insert exchange rate: %w", err)
	}
	if err := l.Reload(ctx); err != nil {
		return &rate, fmt.Errorf("exchange rate saved but reload failed: %w", err)
	}
	return &rate, nil
}

// Currencies returns a copy of the active currencies.
func (l *Ledger) Currencies() []domain.Currency {
	return append([]domain.Currency(nil), l.snapshot().Currencies...)
}

// HouseholdCurrencies returns a copy of the household's currencies in display order.
func (l *Ledger) HouseholdCurrencies() []domain.HouseholdCurrency {
	return append([]domain.HouseholdCurrency(nil), l.snapshot().HouseholdCurrencies...)
}

// Rates returns a copy of the active rates, newest first.
func (l *Ledger) Rates() []domain.ExchangeRate {
	return append([]domain.ExchangeRate(nil), l.snapshot().Rates...)
}

// CurrencyInfo looks up an active currency by code.
func (l *Ledger) CurrencyInfo(code string) (domain.Currency, bool) {
	for _, c := range l.snapshot().Currencies {
		if c.CurrencyCode == code {
			return c, true
		}
	}
	return domain.Currency{}, false
}
