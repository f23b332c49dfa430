package catalog

import "fmt"

// Default builds the built-in catalog for a kind. The shipped YAML files
// under catalogs/ mirror these definitions; the code literals keep the
// binary runnable with no external files and keep tests hermetic.
func Default(kind Kind) (*Catalog, error) {
	switch kind {
	case KindKitchen:
		return New(KindKitchen, kitchenDefaults)
	case KindAdditional:
		return New(KindAdditional, additionalDefaults)
	}
	return nil, fmt.Errorf("no default catalog for kind %q", kind)
}

// Kitchen inputs. Size-indexed prices are positional over the global
// kitchen size selector (small, medium, large); selection-indexed prices
// are positional over Selections.
var kitchenDefaults = []InputDef{
	{
		Name:     "kitchenSize",
		Label:    "Kitchen size",
		Category: "layout",
		Element:  "select",
		Selections: []string{
			"Small", "Medium", "Large",
		},
	},
	{
		Name:        "baseCabinets",
		Label:       "Base cabinets",
		Category:    "cabinets",
		Subcategory: "cabinetRun",
		Element:     "numberInput",
		Unit:        "linear ft",
		Prices:      []float64{180, 220, 260},
		Size:        true,
		Formula:     "UNIT * PRICE",
	},
	{
		Name:        "wallCabinets",
		Label:       "Wall cabinets",
		Category:    "cabinets",
		Subcategory: "cabinetRun",
		Element:     "numberInput",
		Unit:        "linear ft",
		Prices:      []float64{150, 185, 215},
		Size:        true,
		Formula:     "UNIT * PRICE",
	},
	{
		Name:        "softCloseUpgrade",
		Label:       "Soft-close hinges and slides",
		Category:    "cabinets",
		Subcategory: "hardware",
		Element:     "radioButton",
		Selections:  []string{"Yes", "No"},
		Price:       450,
		Formula:     "Y=TRUE",
		Experience:  "premium",
	},
	{
		Name:        "customPantry",
		Label:       "Custom pantry build-out",
		Category:    "cabinets",
		Subcategory: "hardware",
		Element:     "radioButton",
		Selections:  []string{"Yes", "No"},
		Price:       2800,
		Formula:     "Y=TRUE",
		Experience:  "luxury",
	},
	{
		Name:       "counterMaterial",
		Label:      "Countertop material",
		Category:   "countertops",
		Element:    "selectCustomInputText",
		Selections: []string{"Laminate", "Quartz", "Granite", "Butcher Block"},
		Unit:       "sq ft",
		Prices:     []float64{22, 75, 90, 55},
		Formula:    "UNIT * PRICE",
		Custom:     true,
	},
	{
		Name:       "backsplashTile",
		Label:      "Backsplash tile",
		Category:   "countertops",
		Element:    "numberInput",
		Unit:       "sq ft",
		Price:      28,
		Formula:    "UNIT * PRICE",
	},
	{
		Name:       "waterfallEdge",
		Label:      "Waterfall edge",
		Category:   "countertops",
		Element:    "radioButton",
		Selections: []string{"Yes", "No"},
		Price:      1200,
		Formula:    "Y=TRUE",
		Experience: "luxury",
	},
	{
		Name:        "sinkReplacement",
		Label:       "Sink replacement",
		Category:    "plumbing",
		Subcategory: "fixtures",
		Element:     "radioButton",
		Selections:  []string{"Yes", "No"},
		Prices:      []float64{350, 520, 700},
		Size:        true,
		Formula:     "Y=TRUE",
	},
	{
		Name:        "faucetUpgrade",
		Label:       "Faucet upgrade",
		Category:    "plumbing",
		Subcategory: "fixtures",
		Element:     "radioButton",
		Selections:  []string{"Yes", "No"},
		Price:       275,
		Formula:     "Y=TRUE",
	},
	{
		Name:        "garbageDisposal",
		Label:       "Garbage disposal",
		Category:    "plumbing",
		Subcategory: "fixtures",
		Element:     "radioButton",
		Selections:  []string{"Yes", "No"},
		Price:       310,
		Formula:     "Y=TRUE",
		Experience:  "basic",
	},
	{
		Name:        "potFiller",
		Label:       "Pot filler over range",
		Category:    "plumbing",
		Subcategory: "roughIn",
		Element:     "radioButton",
		Selections:  []string{"Yes", "No"},
		Price:       950,
		Formula:     "Y=TRUE",
		Experience:  "luxury",
	},
	{
		Name:       "recessedLights",
		Label:      "Recessed lights",
		Category:   "electrical",
		Element:    "radioButton",
		Selections: []string{"Yes", "No"},
		Unit:       "fixture",
		Price:      185,
		Formula:    "UNIT * PRICE",
	},
	{
		Name:       "underCabinetLighting",
		Label:      "Under-cabinet lighting",
		Category:   "electrical",
		Element:    "radioButton",
		Selections: []string{"Yes", "No"},
		Price:      620,
		Formula:    "Y=TRUE",
		Experience: "premium",
	},
	{
		Name:       "newOutlets",
		Label:      "Additional outlets",
		Category:   "electrical",
		Element:    "radioButton",
		Selections: []string{"Yes", "No"},
		Unit:       "outlet",
		Price:      140,
		Formula:    "UNIT * PRICE",
	},
	{
		Name:       "flooringMaterial",
		Label:      "Flooring material",
		Category:   "flooring",
		Element:    "selectCustomInputText",
		Selections: []string{"Vinyl Plank", "Tile", "Hardwood"},
		Unit:       "sq ft",
		Prices:     []float64{8, 14, 18},
		Formula:    "UNIT * PRICE",
		Custom:     true,
	},
	{
		Name:     "applianceNotes",
		Label:    "Appliance notes",
		Category: "appliances",
		Element:  "inputFileTextArea",
	},
	{
		Name:       "applianceInstall",
		Label:      "Appliance installation",
		Category:   "appliances",
		Element:    "radioButton",
		Selections: []string{"Yes", "No"},
		Unit:       "appliance",
		Price:      160,
		Formula:    "UNIT * PRICE",
	},
	{
		Name:       "ventHoodDucting",
		Label:      "Vent hood ducted to exterior",
		Category:   "appliances",
		Element:    "radioButton",
		Selections: []string{"Yes", "No"},
		Prices:     []float64{480, 640, 820},
		Size:       true,
		Formula:    "Y=TRUE",
		Experience: "premium",
	},
	{
		Name:     "permitDocs",
		Label:    "Permit documents",
		Category: "projectDetails",
		Element:  "checkbox",
	},
	{
		Name:     "demoDisposal",
		Label:    "Demolition and disposal",
		Category: "projectDetails",
		Element:  "radioButton",
		Selections: []string{
			"Yes", "No",
		},
		Prices:  []float64{900, 1400, 2100},
		Size:    true,
		Formula: "Y=TRUE",
	},
}

// Additional-work inputs (bathroom and basement scope).
var additionalDefaults = []InputDef{
	{
		Name:        "vanityInstall",
		Label:       "Vanity installation",
		Category:    "bathroom",
		Subcategory: "fixtures",
		Element:     "radioButton",
		Selections:  []string{"Yes", "No"},
		Price:       540,
		Formula:     "Y=TRUE",
	},
	{
		Name:        "toiletReplacement",
		Label:       "Toilet replacement",
		Category:    "bathroom",
		Subcategory: "fixtures",
		Element:     "radioButton",
		Selections:  []string{"Yes", "No"},
		Price:       380,
		Formula:     "Y=TRUE",
	},
	{
		Name:        "showerTile",
		Label:       "Shower wall tile",
		Category:    "bathroom",
		Subcategory: "tileWork",
		Element:     "numberInput",
		Unit:        "sq ft",
		Price:       24,
		Formula:     "UNIT * PRICE",
	},
	{
		Name:        "tileFloor",
		Label:       "Tile floor",
		Category:    "bathroom",
		Subcategory: "tileWork",
		Element:     "numberInput",
		Unit:        "sq ft",
		Price:       16,
		Formula:     "UNIT * PRICE",
	},
	{
		Name:        "shampooNiche",
		Label:       "Recessed shampoo niche",
		Category:    "bathroom",
		Subcategory: "tileWork",
		Element:     "radioButton",
		Selections:  []string{"Yes", "No"},
		Unit:        "niche",
		Price:       260,
		Formula:     "UNIT * PRICE",
	},
	{
		Name:       "exhaustFan",
		Label:      "Exhaust fan",
		Category:   "bathroom",
		Element:    "radioButton",
		Selections: []string{"Yes", "No"},
		Price:      290,
		Formula:    "Y=TRUE",
	},
	{
		Name:       "heatedFloor",
		Label:      "Heated floor mat",
		Category:   "bathroom",
		Element:    "radioButton",
		Selections: []string{"Yes", "No"},
		Unit:       "sq ft",
		Price:      19,
		Formula:    "UNIT * PRICE",
	},
	{
		Name:       "basementFraming",
		Label:      "Wall framing",
		Category:   "basement",
		Element:    "numberInput",
		Unit:       "linear ft",
		Price:      32,
		Formula:    "UNIT * PRICE",
	},
	{
		Name:       "drywallHang",
		Label:      "Drywall hang and finish",
		Category:   "basement",
		Element:    "numberInput",
		Unit:       "sq ft",
		Price:      6.5,
		Formula:    "UNIT * PRICE",
	},
	{
		Name:       "dropCeiling",
		Label:      "Drop ceiling",
		Category:   "basement",
		Element:    "radioButton",
		Selections: []string{"Yes", "No"},
		Unit:       "sq ft",
		Price:      9,
		Formula:    "UNIT * PRICE",
	},
	{
		Name:       "egressWindow",
		Label:      "Egress window cut-in",
		Category:   "basement",
		Element:    "radioButton",
		Selections: []string{"Yes", "No"},
		Price:      4200,
		Formula:    "Y=TRUE",
	},
	{
		Name:       "basementFlooring",
		Label:      "Basement flooring",
		Category:   "basement",
		Element:    "selectCustomInputText",
		Selections: []string{"Carpet", "Vinyl Plank", "Epoxy"},
		Unit:       "sq ft",
		Prices:     []float64{5, 8, 11},
		Formula:    "UNIT * PRICE",
		Custom:     true,
	},
	{
		Name:     "sitePhotos",
		Label:    "Site photos",
		Category: "projectDetails",
		Element:  "inputFileTextArea",
	},
	{
		Name:       "paintScope",
		Label:      "Paint scope",
		Category:   "projectDetails",
		Element:    "select",
		Selections: []string{"Walls Only", "Walls And Ceiling", "Full Repaint"},
	},
	{
		Name:       "haulAway",
		Label:      "Debris haul-away",
		Category:   "projectDetails",
		Element:    "radioButton",
		Selections: []string{"Yes", "No"},
		Unit:       "load",
		Price:      220,
		Formula:    "UNIT * PRICE",
	},
}
