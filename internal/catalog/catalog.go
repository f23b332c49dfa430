// Package catalog holds the declarative lists of priced form inputs that
// drive quote pricing. A catalog is loaded once at startup (from YAML or
// from the built-in defaults) and is read-only afterwards; only the form
// values a customer enters change between calculations.
package catalog

import "fmt"

// Kind identifies which quote catalog a set of inputs belongs to.
type Kind string

const (
	KindKitchen    Kind = "kitchen"
	KindAdditional Kind = "additional"
)

// ParseKind maps a URL/request string onto a catalog kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindKitchen, KindAdditional:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown catalog kind %q", s)
}

// Element is the closed set of form field kinds a priced input renders as.
// The pricing rules dispatch exhaustively on this type; field kinds without
// a pricing rule (checkbox, select, file/textarea) still get an explicit
// zero arm so a new kind cannot slip through unpriced by accident.
type Element int

const (
	NumberInput Element = iota
	RadioButton
	Checkbox
	Select
	SelectCustomText
	FileTextArea
)

var elementNames = map[Element]string{
	NumberInput:      "numberInput",
	RadioButton:      "radioButton",
	Checkbox:         "checkbox",
	Select:           "select",
	SelectCustomText: "selectCustomInputText",
	FileTextArea:     "inputFileTextArea",
}

func (e Element) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return fmt.Sprintf("element(%d)", int(e))
}

// ParseElement resolves the element name used in catalog files. Unknown
// names are a configuration error, not form data, so this fails loudly.
func ParseElement(s string) (Element, error) {
	for e, name := range elementNames {
		if name == s {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown element kind %q", s)
}

// Formula selects the arithmetic rule that turns a field value into a money
// contribution. Tags are resolved once at catalog construction so the
// calculator never compares raw strings.
type Formula int

const (
	// BooleanPresence prices a flat amount when the field is answered "yes".
	BooleanPresence Formula = iota
	// UnitTimesPrice multiplies a quantity by the input's unit price.
	UnitTimesPrice
	// Unrecognized covers any other tag; it always contributes zero.
	// Fail-open to "no charge" keeps a catalog typo from breaking the form.
	Unrecognized
)

const (
	formulaBooleanPresence = "Y=TRUE"
	formulaUnitTimesPrice  = "UNIT * PRICE"
)

func parseFormula(s string) Formula {
	switch s {
	case formulaBooleanPresence, "":
		return BooleanPresence
	case formulaUnitTimesPrice:
		return UnitTimesPrice
	}
	return Unrecognized
}

func (f Formula) String() string {
	switch f {
	case BooleanPresence:
		return formulaBooleanPresence
	case UnitTimesPrice:
		return formulaUnitTimesPrice
	}
	return "unrecognized"
}

// Experience is the kitchen-only quality tier. An input with an empty
// Experience applies at every tier.
type Experience string

const (
	ExperienceBasic   Experience = "basic"
	ExperiencePremium Experience = "premium"
	ExperienceLuxury  Experience = "luxury"
)

// InputDef is the raw declaration of a priced input as it appears in a
// catalog YAML file or in the built-in defaults. Price may be given either
// as the scalar Price or as the positional Prices list; Prices wins when
// both are set.
type InputDef struct {
	Name        string
	Label       string
	Category    string
	Subcategory string
	Element     string
	Selections  []string
	Unit        string
	Price       float64
	Prices      []float64
	Formula     string
	Custom      bool
	Size        bool
	Experience  string
}

// Input is a fully resolved catalog entry. Companion field names and the
// formula/element enums are computed once here so per-calculation code does
// no string work.
type Input struct {
	Name          string
	Label         string
	Category      string
	Subcategory   string
	Element       Element
	Selections    []string
	Unit          string
	Prices        []float64
	Formula       Formula
	Custom        bool
	Size          bool
	Experience    Experience
	QuantityField string
	CustomField   string
}

// BasePrice returns the scalar unit price: the single declared price, or
// the first entry of a price list.
func (in Input) BasePrice() float64 {
	if len(in.Prices) == 0 {
		return 0
	}
	return in.Prices[0]
}

// PriceAt returns the positional price at i, falling back to BasePrice when
// i is out of range.
func (in Input) PriceAt(i int) float64 {
	if i < 0 || i >= len(in.Prices) {
		return in.BasePrice()
	}
	return in.Prices[i]
}

// AppliesTo reports whether the input is active at the given tier. Inputs
// without an experience tag apply everywhere.
func (in Input) AppliesTo(tier Experience) bool {
	return in.Experience == "" || in.Experience == tier
}

// Catalog is an ordered, immutable list of priced inputs. Iteration order is
// declaration order, which also defines display order for grouping.
type Catalog struct {
	kind   Kind
	inputs []Input
	byName map[string]int
}

// New resolves raw input definitions into a catalog. It rejects duplicate
// names and unknown element kinds; both are configuration bugs that should
// surface at startup rather than silently mis-price quotes.
func New(kind Kind, defs []InputDef) (*Catalog, error) {
	c := &Catalog{
		kind:   kind,
		inputs: make([]Input, 0, len(defs)),
		byName: make(map[string]int, len(defs)),
	}

	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("catalog %s: input with empty name", kind)
		}
		if _, exists := c.byName[def.Name]; exists {
			return nil, fmt.Errorf("catalog %s: duplicate input name %q", kind, def.Name)
		}

		element, err := ParseElement(def.Element)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: input %q: %w", kind, def.Name, err)
		}

		prices := def.Prices
		if len(prices) == 0 && def.Price != 0 {
			prices = []float64{def.Price}
		}

		in := Input{
			Name:        def.Name,
			Label:       def.Label,
			Category:    def.Category,
			Subcategory: def.Subcategory,
			Element:     element,
			Selections:  def.Selections,
			Unit:        def.Unit,
			Prices:      prices,
			Formula:     parseFormula(def.Formula),
			Custom:      def.Custom,
			Size:        def.Size,
			Experience:  Experience(def.Experience),
		}
		in.QuantityField = in.Name + "Quantity"
		if in.Custom {
			in.CustomField = in.Name + "Custom"
		}

		c.byName[in.Name] = len(c.inputs)
		c.inputs = append(c.inputs, in)
	}

	return c, nil
}

// Kind returns the catalog's quote kind.
func (c *Catalog) Kind() Kind { return c.kind }

// Len returns the number of inputs in the catalog.
func (c *Catalog) Len() int { return len(c.inputs) }

// All returns the inputs in declaration order. Callers must not mutate the
// returned slice.
func (c *Catalog) All() []Input { return c.inputs }

// ByName looks up an input by its unique name. The boolean is false when the
// name is unknown; callers that require the entry decide whether that is an
// error.
func (c *Catalog) ByName(name string) (Input, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Input{}, false
	}
	return c.inputs[i], true
}

// FilterByExperience returns, in declaration order, the inputs active at the
// given tier: those tagged with it plus those with no tier tag at all.
func (c *Catalog) FilterByExperience(tier Experience) []Input {
	filtered := make([]Input, 0, len(c.inputs))
	for _, in := range c.inputs {
		if in.AppliesTo(tier) {
			filtered = append(filtered, in)
		}
	}
	return filtered
}
