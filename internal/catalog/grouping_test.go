package catalog

import (
	"reflect"
	"testing"
)

func TestGroup_FirstSeenOrderAtEveryLevel(t *testing.T) {
	// Declaration order: A(cat1/x), B(cat2), C(cat1/y), D(cat1/x).
	// Categories must come out [cat1, cat2]; inside cat1, subcategories
	// [x, y]; and D must land after A inside x.
	c, err := New(KindAdditional, []InputDef{
		{Name: "a", Category: "cat1", Subcategory: "x", Element: "numberInput"},
		{Name: "b", Category: "cat2", Element: "numberInput"},
		{Name: "c", Category: "cat1", Subcategory: "y", Element: "numberInput"},
		{Name: "d", Category: "cat1", Subcategory: "x", Element: "numberInput"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	groups := Group(c.All())

	if len(groups) != 2 || groups[0].Category != "cat1" || groups[1].Category != "cat2" {
		t.Fatalf("category order = %+v", groups)
	}

	cat1 := groups[0]
	if len(cat1.Subcategories) != 2 || cat1.Subcategories[0].Subcategory != "x" || cat1.Subcategories[1].Subcategory != "y" {
		t.Fatalf("subcategory order = %+v", cat1.Subcategories)
	}

	x := cat1.Subcategories[0]
	if len(x.Inputs) != 2 || x.Inputs[0].Name != "a" || x.Inputs[1].Name != "d" {
		t.Fatalf("inputs in x = %+v", x.Inputs)
	}

	cat2 := groups[1]
	if len(cat2.Subcategories) != 1 || cat2.Subcategories[0].Subcategory != DefaultSubcategory {
		t.Fatalf("cat2 subcategories = %+v", cat2.Subcategories)
	}
	if cat2.Subcategories[0].Title != "" {
		t.Fatalf("default subcategory title = %q, want empty", cat2.Subcategories[0].Title)
	}
}

func TestGroup_IsStableAcrossCalls(t *testing.T) {
	c, err := Default(KindKitchen)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	first := Group(c.All())
	for i := 0; i < 20; i++ {
		if got := Group(c.All()); !reflect.DeepEqual(got, first) {
			t.Fatalf("iteration %d: grouping differs from first call", i)
		}
	}
}

func TestGroup_FilteredSequenceKeepsOrder(t *testing.T) {
	c, err := New(KindKitchen, []InputDef{
		{Name: "a", Category: "cabinets", Element: "numberInput"},
		{Name: "b", Category: "cabinets", Element: "numberInput", Experience: "luxury"},
		{Name: "c", Category: "electrical", Element: "numberInput"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	groups := Group(c.FilterByExperience(ExperienceBasic))
	if len(groups) != 2 {
		t.Fatalf("groups = %+v", groups)
	}
	if len(groups[0].Subcategories[0].Inputs) != 1 || groups[0].Subcategories[0].Inputs[0].Name != "a" {
		t.Fatalf("filtered cabinets group = %+v", groups[0])
	}
}

func TestTitleFromKey(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"cabinets", "Cabinets"},
		{"cabinetRun", "Cabinet Run"},
		{"countertopsAndSinks", "Countertops And Sinks"},
		{"projectDetails", "Project Details"},
		{"roughIn", "Rough In"},
		{"", ""},
		{"ABC", "A B C"},
	}
	for _, tc := range cases {
		if got := TitleFromKey(tc.key); got != tc.want {
			t.Fatalf("TitleFromKey(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}
