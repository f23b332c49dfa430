package main

import "github.com/kbworks/estimator/internal/catalog"

// inputView is the JSON shape of a catalog entry as the form client
// consumes it.
type inputView struct {
	Name          string    `json:"name"`
	Label         string    `json:"label"`
	Category      string    `json:"category"`
	Subcategory   string    `json:"subcategory,omitempty"`
	Element       string    `json:"element"`
	Selections    []string  `json:"selections,omitempty"`
	Unit          string    `json:"unit,omitempty"`
	Prices        []float64 `json:"prices,omitempty"`
	Formula       string    `json:"formula"`
	Custom        bool      `json:"custom,omitempty"`
	Size          bool      `json:"size,omitempty"`
	Experience    string    `json:"experience,omitempty"`
	QuantityField string    `json:"quantityField"`
	CustomField   string    `json:"customField,omitempty"`
}

func newInputView(in catalog.Input) inputView {
	return inputView{
		Name:          in.Name,
		Label:         in.Label,
		Category:      in.Category,
		Subcategory:   in.Subcategory,
		Element:       in.Element.String(),
		Selections:    in.Selections,
		Unit:          in.Unit,
		Prices:        in.Prices,
		Formula:       in.Formula.String(),
		Custom:        in.Custom,
		Size:          in.Size,
		Experience:    string(in.Experience),
		QuantityField: in.QuantityField,
		CustomField:   in.CustomField,
	}
}

type subcategoryView struct {
	Subcategory string      `json:"subcategory"`
	Title       string      `json:"title"`
	Inputs      []inputView `json:"inputs"`
}

type categoryView struct {
	Category      string            `json:"category"`
	Title         string            `json:"title"`
	Subcategories []subcategoryView `json:"subcategories"`
}

func newGroupedView(groups []catalog.CategoryGroup) []categoryView {
	views := make([]categoryView, len(groups))
	for i, g := range groups {
		cv := categoryView{
			Category:      g.Category,
			Title:         g.Title,
			Subcategories: make([]subcategoryView, len(g.Subcategories)),
		}
		for j, sg := range g.Subcategories {
			sv := subcategoryView{
				Subcategory: sg.Subcategory,
				Title:       sg.Title,
				Inputs:      make([]inputView, len(sg.Inputs)),
			}
			for k, in := range sg.Inputs {
				sv.Inputs[k] = newInputView(in)
			}
			cv.Subcategories[j] = sv
		}
		views[i] = cv
	}
	return views
}
