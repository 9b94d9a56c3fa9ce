package parser

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/openpurse/go-openpurse/internal/common"
)

// Location expressions address ISO 20022 elements by local name, ignoring
// namespaces and depth. An expression is one or more alternatives joined by
// "|", tried left to right; each alternative is a "/"-separated path whose
// first step is looked up anywhere under the scope element and whose
// remaining steps walk direct children. Schema versions move elements around
// but keep local names stable, which is what makes one set of expressions
// serve every pacs/camt/pain release.

// findAll returns every element matched by the first alternative of expr
// that yields at least one hit, in document order.
func findAll(scope *etree.Element, expr string) []*etree.Element {
	if scope == nil {
		return nil
	}

	for _, alt := range strings.Split(expr, "|") {
		steps := strings.Split(strings.Trim(strings.TrimSpace(alt), "/"), "/")
		if len(steps) == 0 || steps[0] == "" {
			continue
		}

		var hits []*etree.Element
		for _, anchor := range descendants(scope, steps[0]) {
			hits = append(hits, walkChildren(anchor, steps[1:])...)
		}
		if len(hits) > 0 {
			return hits
		}
	}

	return nil
}

// findFirst returns the first element matched by expr, or nil.
func findFirst(scope *etree.Element, expr string) *etree.Element {
	hits := findAll(scope, expr)
	if len(hits) == 0 {
		return nil
	}

	return hits[0]
}

// findText returns the trimmed text of the first match, or nil when the
// element is absent or blank.
func findText(scope *etree.Element, expr string) *string {
	el := findFirst(scope, expr)
	if el == nil {
		return nil
	}

	return common.PtrNonEmpty(strings.TrimSpace(el.Text()))
}

// childText resolves expr relative to the direct children of scope only.
// Repeating blocks (TxInf, Ntry, IndvOrdrDtls) use it so sibling blocks do
// not bleed into each other.
func childText(scope *etree.Element, expr string) *string {
	if scope == nil {
		return nil
	}

	for _, alt := range strings.Split(expr, "|") {
		steps := strings.Split(strings.TrimSpace(alt), "/")
		hits := walkChildren(scope, steps)
		for _, el := range hits {
			if v := common.PtrNonEmpty(strings.TrimSpace(el.Text())); v != nil {
				return v
			}
		}
	}

	return nil
}

// childFirst resolves expr relative to direct children and returns the
// first element hit, or nil.
func childFirst(scope *etree.Element, expr string) *etree.Element {
	if scope == nil {
		return nil
	}

	for _, alt := range strings.Split(expr, "|") {
		steps := strings.Split(strings.TrimSpace(alt), "/")
		if hits := walkChildren(scope, steps); len(hits) > 0 {
			return hits[0]
		}
	}

	return nil
}

// walkChildren follows a child-axis path from el; an empty path yields el.
func walkChildren(el *etree.Element, steps []string) []*etree.Element {
	current := []*etree.Element{el}
	for _, step := range steps {
		if step == "" {
			continue
		}

		var next []*etree.Element
		for _, c := range current {
			for _, child := range c.ChildElements() {
				if child.Tag == step {
					next = append(next, child)
				}
			}
		}
		current = next
		if len(current) == 0 {
			return nil
		}
	}

	return current
}

// descendants collects every element with the given local name under scope,
// in document order, including scope itself.
func descendants(scope *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if el.Tag == tag {
			out = append(out, el)
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(scope)

	return out
}

// firstMonetary finds the first element in document order carrying a Ccy
// attribute. ISO 20022 spells amount elements dozens of ways
// (IntrBkSttlmAmt, RtrdIntrBkSttlmAmt, Amt, ...) but the currency attribute
// is universal.
func firstMonetary(scope *etree.Element) (amount, currency *string) {
	if scope == nil {
		return nil, nil
	}

	var walk func(el *etree.Element) bool
	walk = func(el *etree.Element) bool {
		if attr := el.SelectAttr("Ccy"); attr != nil {
			amount = common.PtrNonEmpty(strings.TrimSpace(el.Text()))
			v := strings.TrimSpace(attr.Value)
			currency = &v
			return true
		}
		for _, child := range el.ChildElements() {
			if walk(child) {
				return true
			}
		}
		return false
	}
	walk(scope)

	return amount, currency
}
