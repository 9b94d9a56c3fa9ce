// Package reconciler links disparate payment messages into lifecycles:
// an initiation, its status reports, recalls and resolutions.
package reconciler

import (
	"github.com/shopspring/decimal"

	"github.com/openpurse/go-openpurse/internal/models"
)

// matchOptions collects the optional knobs of a match.
type matchOptions struct {
	fuzzyAmount bool
}

// MatchOption tunes matching behavior.
type MatchOption func(*matchOptions)

// WithFuzzyAmount tolerates up to 1% amount difference, covering deducted
// fees between initiation and notification.
func WithFuzzyAmount() MatchOption {
	return func(o *matchOptions) { o.fuzzyAmount = true }
}

// IsMatch reports whether two messages are logically linked. Identity is
// established by UETR, then end-to-end id, then family cross-references
// (original-message id for status reports and recalls, shared case id for
// investigation pairs); an amount check confirms the link when both sides
// carry comparable amounts.
func IsMatch(a, b models.Message, opts ...MatchOption) bool {
	var o matchOptions
	for _, opt := range opts {
		opt(&o)
	}

	if !identityMatch(a, b) {
		return false
	}

	return amountsAgree(a.Base(), b.Base(), o.fuzzyAmount)
}

func identityMatch(a, b models.Message) bool {
	ab, bb := a.Base(), b.Base()

	// Tier 1: UETR, the authoritative SWIFT tracking id
	if ab.UETR != nil && bb.UETR != nil && *ab.UETR == *bb.UETR {
		return true
	}

	// Tier 2: end-to-end id
	if ab.EndToEndID != nil && bb.EndToEndID != nil && *ab.EndToEndID == *bb.EndToEndID {
		return true
	}

	// Tier 3: status reports and recalls reference their original message
	if refMatches(a, bb) || refMatches(b, ab) {
		return true
	}

	// Tier 3: investigation pairs share a case id
	ca, okA := a.(models.CaseCarrier)
	cb, okB := b.(models.CaseCarrier)
	if okA && okB && ca.CaseRef() != nil && cb.CaseRef() != nil && *ca.CaseRef() == *cb.CaseRef() {
		return true
	}

	return false
}

func refMatches(msg models.Message, other *models.PaymentMessage) bool {
	carrier, ok := msg.(models.OriginalMessageCarrier)
	if !ok || carrier.OriginalMessageRef() == nil || other.MessageID == nil {
		return false
	}

	return *carrier.OriginalMessageRef() == *other.MessageID
}

// amountsAgree confirms a match on amount and currency. A missing amount on
// either side does not break an id-established link.
func amountsAgree(a, b *models.PaymentMessage, fuzzy bool) bool {
	if a.Amount == nil || b.Amount == nil {
		return true
	}
	aCcy, bCcy := "", ""
	if a.Currency != nil {
		aCcy = *a.Currency
	}
	if b.Currency != nil {
		bCcy = *b.Currency
	}
	if aCcy != bCcy {
		return true
	}

	amtA, errA := decimal.NewFromString(*a.Amount)
	amtB, errB := decimal.NewFromString(*b.Amount)
	if errA != nil || errB != nil {
		return *a.Amount == *b.Amount
	}

	if fuzzy {
		max := decimal.Max(amtA, amtB)
		return amtA.Sub(amtB).Abs().LessThanOrEqual(max.Mul(decimal.NewFromFloat(0.01)))
	}

	return amtA.Equal(amtB)
}

// FindMatches returns every candidate linked to primary, excluding primary
// itself.
func FindMatches(primary models.Message, candidates []models.Message, opts ...MatchOption) []models.Message {
	var matches []models.Message
	for _, candidate := range candidates {
		if candidate == primary {
			continue
		}
		if IsMatch(primary, candidate, opts...) {
			matches = append(matches, candidate)
		}
	}

	return matches
}

// TraceLifecycle builds the transitive closure of the match relation
// starting from seed, breadth first, in discovery order. The visited set is
// identity based, which protects against reference cycles.
func TraceLifecycle(seed models.Message, all []models.Message, opts ...MatchOption) []models.Message {
	timeline := []models.Message{seed}
	seen := map[models.Message]struct{}{seed: {}}

	queue := []models.Message{seed}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, match := range FindMatches(current, all, opts...) {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			timeline = append(timeline, match)
			queue = append(queue, match)
		}
	}

	return timeline
}
