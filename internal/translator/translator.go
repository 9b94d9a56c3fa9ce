// Package translator renders typed records back into raw SWIFT MT or
// ISO 20022 XML wire formats. Targets form a closed set: adding one means
// adding a renderer, not configuration.
package translator

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/openpurse/go-openpurse/internal/common"
	"github.com/openpurse/go-openpurse/internal/models"
)

// Renderer produces one wire format from a typed record.
type Renderer interface {
	Render(msg models.Message) ([]byte, error)
}

// MapRenderer indexes renderers by target code.
type MapRenderer map[string]Renderer

// Translator holds the MT and MX renderer registries. The clock and UETR
// source are injectable so rendering can be made deterministic in tests.
type Translator struct {
	now     func() time.Time
	newUETR func() string

	mt MapRenderer
	mx MapRenderer
}

// Option configures a Translator.
type Option func(*Translator)

// WithClock fixes the time source used for MT value dates.
func WithClock(now func() time.Time) Option {
	return func(t *Translator) { t.now = now }
}

// WithUETRSource replaces the random UETR generator.
func WithUETRSource(gen func() string) Option {
	return func(t *Translator) { t.newUETR = gen }
}

// New builds a Translator with every supported target registered.
func New(opts ...Option) *Translator {
	t := &Translator{
		now:     time.Now,
		newUETR: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(t)
	}

	base := mtRenderer{t: t}
	t.mt = MapRenderer{
		"101": mt101Renderer{base},
		"103": mt103Renderer{base},
		"202": mt202Renderer{base},
		"900": mtConfirmationRenderer{mtRenderer: base, mtType: "900"},
		"910": mtConfirmationRenderer{mtRenderer: base, mtType: "910"},
		"940": mtStatementRenderer{mtRenderer: base, mtType: "940", remittance: true},
		"942": mtStatementRenderer{mtRenderer: base, mtType: "942", remittance: true},
		"950": mtStatementRenderer{mtRenderer: base, mtType: "950", remittance: false},
	}

	mxBase := mxRenderer{t: t}
	t.mx = MapRenderer{
		"pacs.008": pacs008Renderer{mxBase},
		"pacs.009": pacs009Renderer{mxBase},
		"camt.052": camtReportRenderer{mxRenderer: mxBase, key: "camt.052"},
		"camt.053": camtReportRenderer{mxRenderer: mxBase, key: "camt.053"},
		"camt.054": camtReportRenderer{mxRenderer: mxBase, key: "camt.054"},
		"camt.004": camt004Renderer{mxBase},
	}

	return t
}

// ToMT renders a SWIFT MT message of the given type code ("103", "202", ...).
func (t *Translator) ToMT(msg models.Message, mtType string) ([]byte, error) {
	r, ok := t.mt[mtType]
	if !ok {
		return nil, fmt.Errorf("%w: MT%s", common.ErrUnsupportedTarget, mtType)
	}

	return r.Render(msg)
}

// ToMX renders an ISO 20022 XML message for the given family key
// ("pacs.008", "camt.053", ...).
func (t *Translator) ToMX(msg models.Message, key string) ([]byte, error) {
	r, ok := t.mx[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedTarget, key)
	}

	return r.Render(msg)
}

// MTTargets lists the registered MT type codes.
func (t *Translator) MTTargets() []string {
	return sortedKeys(t.mt)
}

// MXTargets lists the registered XML family keys.
func (t *Translator) MXTargets() []string {
	return sortedKeys(t.mx)
}

func sortedKeys(m MapRenderer) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// ensureUETR returns the record's UETR or synthesizes a fresh one. The
// random fallback is intentional: repeated translation of the same record
// yields distinct tracking ids unless the caller pins one.
func (t *Translator) ensureUETR(base *models.PaymentMessage) string {
	if base.UETR != nil && *base.UETR != "" {
		return *base.UETR
	}

	return t.newUETR()
}
