// Package pricing evaluates a filled-in quote form against a catalog of
// priced inputs and produces the quote total. Everything here is pure:
// the catalog is read-only, the snapshot is read-only, and a fixed
// (inputs, snapshot) pair always yields the same total, so the caller may
// recompute on every form change.
//
// Data-shape problems never raise errors. A missing field, a malformed
// quantity, or a formula tag the calculator does not recognize all degrade
// to a zero contribution; a partially filled form must always price.
package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/kbworks/estimator/internal/catalog"
)

// Snapshot is the current set of user-entered values for a quote, keyed by
// input name. Values typically arrive from JSON, so entries are string,
// float64, bool, or nil. The calculator never writes to it.
type Snapshot map[string]any

// SizeField is the snapshot key of the global kitchen size selector that
// size-indexed prices are positional over.
const SizeField = "kitchenSize"

var sizeTiers = []string{"small", "medium", "large"}

// CalculateTotal prices every input in the sequence against the snapshot
// and returns the sum rounded to 2 decimal places. Rounding happens exactly
// once, at the end; per-item contributions are never rounded. The rounding
// mode is round-half-away-from-zero (math.Round), the behavior of the usual
// multiply-by-100/round/divide-by-100 money rounding.
//
// Pass a pre-filtered sequence (FilterByExperience) when tier gating
// applies; the calculator prices whatever it is given.
func CalculateTotal(inputs []catalog.Input, snap Snapshot) float64 {
	var total float64
	for _, in := range inputs {
		total += ItemPrice(in, snap)
	}
	return math.Round(total*100) / 100
}

// ItemPrice computes one input's contribution to the total.
//
// An unanswered field short-circuits to 0 before any element rule runs:
// nil, empty string, and boolean false all count as unanswered. Dispatch on
// the element kind is exhaustive; checkbox, select, and file/textarea
// fields are informational and carry an explicit zero arm rather than being
// silently skipped.
//
// A "custom" companion field ({name}Custom) is never read here. The form
// layer owns that override for display and submission; the calculator
// prices strictly off the primary field and its quantity companion.
func ItemPrice(in catalog.Input, snap Snapshot) float64 {
	value := snap[in.Name]
	if !answered(value) {
		return 0
	}

	switch in.Element {
	case catalog.NumberInput:
		return numberInputPrice(in, value, snap)
	case catalog.RadioButton:
		return radioButtonPrice(in, value, snap)
	case catalog.SelectCustomText:
		return selectCustomTextPrice(in, value, snap)
	case catalog.Checkbox, catalog.Select, catalog.FileTextArea:
		// Informational and attachment fields; no pricing rule exists for
		// them in the current formula set.
		return 0
	}
	return 0
}

// Answered reports whether an input carries a response that should appear
// on an exported quote document: present, non-empty, and not a "no" flag.
func Answered(in catalog.Input, snap Snapshot) bool {
	value := snap[in.Name]
	if !answered(value) {
		return false
	}
	if s, ok := value.(string); ok && strings.EqualFold(s, "no") {
		return false
	}
	return true
}

func answered(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	}
	return true
}

// numberInputPrice: quantity times unit price. Only the UNIT * PRICE
// formula prices a number field; non-positive quantities contribute
// nothing.
func numberInputPrice(in catalog.Input, value any, snap Snapshot) float64 {
	if in.Formula != catalog.UnitTimesPrice {
		return 0
	}
	qty := toNumber(value)
	if qty <= 0 {
		return 0
	}
	return qty * unitPrice(in, snap)
}

// radioButtonPrice: the value is normalized to a lowercase yes/no flag
// (booleans map to "yes"/"no"). Only the exact flag "yes" activates the
// input; any other answer, including free text, contributes nothing.
func radioButtonPrice(in catalog.Input, value any, snap Snapshot) float64 {
	flag := normalizeFlag(value)
	if flag == "" || flag == "no" {
		return 0
	}

	switch in.Formula {
	case catalog.BooleanPresence:
		if flag != "yes" {
			return 0
		}
		return unitPrice(in, snap)
	case catalog.UnitTimesPrice:
		qty := toNumber(snap[in.QuantityField])
		if qty <= 0 {
			return 0
		}
		return unitPrice(in, snap) * qty
	}
	return 0
}

// selectCustomTextPrice: the chosen selection picks the positional price
// when the input carries a per-selection price list; an unmatched selection
// or a scalar price falls back to the base price. The quantity companion
// then multiplies as usual.
func selectCustomTextPrice(in catalog.Input, value any, snap Snapshot) float64 {
	choice, ok := value.(string)
	if !ok || choice == "" {
		return 0
	}
	if in.Formula != catalog.UnitTimesPrice {
		return 0
	}

	price := in.BasePrice()
	if len(in.Prices) > 1 && len(in.Selections) > 0 {
		for i, sel := range in.Selections {
			if strings.EqualFold(sel, choice) {
				price = in.PriceAt(i)
				break
			}
		}
	}

	qty := toNumber(snap[in.QuantityField])
	if qty <= 0 {
		return 0
	}
	return price * qty
}

func normalizeFlag(v any) string {
	switch t := v.(type) {
	case bool:
		if t {
			return "yes"
		}
		return "no"
	case string:
		return strings.ToLower(t)
	}
	return ""
}

// unitPrice resolves an input's effective unit price. Size-indexed inputs
// read the global kitchen size selector from the snapshot and pick the
// matching tier price; everything else uses the base price.
func unitPrice(in catalog.Input, snap Snapshot) float64 {
	if !in.Size {
		return in.BasePrice()
	}
	return in.PriceAt(sizeIndex(snap))
}

// sizeIndex maps the snapshot's kitchen size value onto a price-list index.
// Missing or unrecognized sizes resolve to 0, the small tier, which doubles
// as the base-price fallback.
func sizeIndex(snap Snapshot) int {
	s, ok := snap[SizeField].(string)
	if !ok {
		return 0
	}
	s = strings.ToLower(strings.TrimSpace(s))
	for i, tier := range sizeTiers {
		if s == tier {
			return i
		}
	}
	return 0
}

// toNumber coerces a snapshot value to a float. Strings parse leniently;
// anything non-numeric coerces to 0, which suppresses the contribution
// upstream instead of erroring.
func toNumber(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}
