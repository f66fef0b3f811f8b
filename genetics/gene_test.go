package genetics

import "testing"

func TestNewGeneTable(t *testing.T) {
	tests := []struct {
		category     Category
		dominance    Dominance
		intelligence int
		pest         int
	}{
		{StemStyleCategory(Curvy), Dominant, -1, 1},
		{StemStyleCategory(Loopy), Recessive, 4, -1},
		{StemStyleCategory(Angular), Recessive, 5, -1},
		{StemStyleCategory(Wiggly), Dominant, 1, 3},
		{StemColorCategory(Brown), Dominant, -1, 4},
		{StemColorCategory(Green), Dominant, -1, 2},
		{StemColorCategory(Blue), Recessive, 5, -1},
		{FruitStyleCategory(Circle), Dominant, -1, 3},
		{FruitStyleCategory(Square), Dominant, 3, -1},
		{FruitStyleCategory(Triangle), Recessive, 4, 1},
		{FruitColorCategory(Red), Dominant, -1, 3},
		{FruitColorCategory(Purple), Dominant, 2, 1},
		{FruitColorCategory(Yellow), Recessive, 4, -3},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			g := NewGene(tt.category)
			if g.Category != tt.category {
				t.Errorf("category = %v, want %v", g.Category, tt.category)
			}
			if g.Dominance != tt.dominance {
				t.Errorf("dominance = %v, want %v", g.Dominance, tt.dominance)
			}
			if g.IntelligenceEffect != tt.intelligence {
				t.Errorf("intelligence = %d, want %d", g.IntelligenceEffect, tt.intelligence)
			}
			if g.PestResistanceEffect != tt.pest {
				t.Errorf("pest resistance = %d, want %d", g.PestResistanceEffect, tt.pest)
			}
		})
	}
}

func TestCategoryAccessorsAgreeWithKind(t *testing.T) {
	c := StemColorCategory(Blue)

	if c.Kind() != KindStemColor {
		t.Fatalf("kind = %v, want stem_color", c.Kind())
	}
	if v, ok := c.StemColor(); !ok || v != Blue {
		t.Errorf("StemColor() = %v, %v; want Blue, true", v, ok)
	}
	if _, ok := c.StemStyle(); ok {
		t.Error("stem color category should not report a stem style")
	}
	if _, ok := c.FruitColor(); ok {
		t.Error("stem color category should not report a fruit color")
	}
}

func TestParseCategory(t *testing.T) {
	for _, k := range Kinds {
		for v := uint8(0); v < k.variants(); v++ {
			c := Category{k, v}
			got, err := ParseCategory(c.String())
			if err != nil {
				t.Fatalf("ParseCategory(%q): %v", c.String(), err)
			}
			if got != c {
				t.Errorf("ParseCategory(%q) = %v", c.String(), got)
			}
		}
	}

	if got, err := ParseCategory(" Fruit_Color:YELLOW "); err != nil || got != FruitColorCategory(Yellow) {
		t.Errorf("case-insensitive parse = %v, %v", got, err)
	}

	for _, bad := range []string{"", "stem_color", "stem_color:pink", "leaf:green"} {
		if _, err := ParseCategory(bad); err == nil {
			t.Errorf("ParseCategory(%q) should fail", bad)
		}
	}
}

func TestDefaultGenes(t *testing.T) {
	want := map[Kind]Category{
		KindStemStyle:  StemStyleCategory(Curvy),
		KindStemColor:  StemColorCategory(Green),
		KindFruitStyle: FruitStyleCategory(Circle),
		KindFruitColor: FruitColorCategory(Red),
	}
	for k, c := range want {
		if got := DefaultGene(k).Category; got != c {
			t.Errorf("DefaultGene(%v) = %v, want %v", k, got, c)
		}
	}
}
