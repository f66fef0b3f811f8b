// Package genetics models plant genes, phenotype expression and breeding.
package genetics

import (
	"fmt"
	"strings"
)

// Kind identifies which trait a gene controls.
type Kind uint8

const (
	KindStemStyle Kind = iota
	KindStemColor
	KindFruitStyle
	KindFruitColor
)

// Kinds lists every trait kind in resolution and splicing order.
var Kinds = [...]Kind{KindStemStyle, KindStemColor, KindFruitStyle, KindFruitColor}

// StemStyle is the shape of a plant's stem.
type StemStyle uint8

const (
	Curvy StemStyle = iota
	Loopy
	Angular
	Wiggly
)

// StemColor is the color of a plant's stem.
type StemColor uint8

const (
	Brown StemColor = iota
	Green
	Blue
)

// FruitStyle is the shape of a plant's fruit.
type FruitStyle uint8

const (
	Circle FruitStyle = iota
	Square
	Triangle
)

// FruitColor is the color of a plant's fruit.
type FruitColor uint8

const (
	Red FruitColor = iota
	Purple
	Yellow
)

// Dominance determines expression priority within a trait kind.
type Dominance uint8

const (
	Dominant Dominance = iota
	Recessive
)

// Category is a trait kind tagged with its concrete variant.
// Values are only built through the typed constructors, so the
// kind and variant always agree.
type Category struct {
	kind    Kind
	variant uint8
}

// StemStyleCategory tags a stem style variant.
func StemStyleCategory(s StemStyle) Category { return Category{KindStemStyle, uint8(s)} }

// StemColorCategory tags a stem color variant.
func StemColorCategory(c StemColor) Category { return Category{KindStemColor, uint8(c)} }

// FruitStyleCategory tags a fruit style variant.
func FruitStyleCategory(s FruitStyle) Category { return Category{KindFruitStyle, uint8(s)} }

// FruitColorCategory tags a fruit color variant.
func FruitColorCategory(c FruitColor) Category { return Category{KindFruitColor, uint8(c)} }

// Kind returns the trait kind.
func (c Category) Kind() Kind { return c.kind }

// StemStyle returns the variant if the category is a stem style.
func (c Category) StemStyle() (StemStyle, bool) {
	return StemStyle(c.variant), c.kind == KindStemStyle
}

// StemColor returns the variant if the category is a stem color.
func (c Category) StemColor() (StemColor, bool) {
	return StemColor(c.variant), c.kind == KindStemColor
}

// FruitStyle returns the variant if the category is a fruit style.
func (c Category) FruitStyle() (FruitStyle, bool) {
	return FruitStyle(c.variant), c.kind == KindFruitStyle
}

// FruitColor returns the variant if the category is a fruit color.
func (c Category) FruitColor() (FruitColor, bool) {
	return FruitColor(c.variant), c.kind == KindFruitColor
}

// String renders the category as "kind:variant", e.g. "stem_color:blue".
func (c Category) String() string {
	var variant string
	switch c.kind {
	case KindStemStyle:
		variant = StemStyle(c.variant).String()
	case KindStemColor:
		variant = StemColor(c.variant).String()
	case KindFruitStyle:
		variant = FruitStyle(c.variant).String()
	case KindFruitColor:
		variant = FruitColor(c.variant).String()
	}
	return c.kind.String() + ":" + strings.ToLower(variant)
}

// ParseCategory parses the "kind:variant" form produced by Category.String.
func ParseCategory(s string) (Category, error) {
	kind, variant, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	if !ok {
		return Category{}, fmt.Errorf("gene category %q: missing ':'", s)
	}
	for _, k := range Kinds {
		if k.String() != kind {
			continue
		}
		for v := uint8(0); v < k.variants(); v++ {
			c := Category{k, v}
			if c.String() == kind+":"+variant {
				return c, nil
			}
		}
		return Category{}, fmt.Errorf("gene category %q: unknown %s variant %q", s, kind, variant)
	}
	return Category{}, fmt.Errorf("gene category %q: unknown kind %q", s, kind)
}

func (k Kind) variants() uint8 {
	switch k {
	case KindStemStyle:
		return 4
	default:
		return 3
	}
}

// Gene is one heritable trait variant with its dominance and stat effects.
type Gene struct {
	Category             Category
	Dominance            Dominance
	IntelligenceEffect   int
	PestResistanceEffect int
}

type geneTraits struct {
	dominance    Dominance
	intelligence int
	pest         int
}

// geneTable holds the fixed traits for every variant, indexed by kind then variant.
var geneTable = [...][]geneTraits{
	KindStemStyle: {
		Curvy:   {Dominant, -1, 1},
		Loopy:   {Recessive, 4, -1},
		Angular: {Recessive, 5, -1},
		Wiggly:  {Dominant, 1, 3},
	},
	KindStemColor: {
		Brown: {Dominant, -1, 4},
		Green: {Dominant, -1, 2},
		Blue:  {Recessive, 5, -1},
	},
	KindFruitStyle: {
		Circle:   {Dominant, -1, 3},
		Square:   {Dominant, 3, -1},
		Triangle: {Recessive, 4, 1},
	},
	KindFruitColor: {
		Red:    {Dominant, -1, 3},
		Purple: {Dominant, 2, 1},
		Yellow: {Recessive, 4, -3},
	},
}

// NewGene builds the gene for a category from the fixed gene table.
func NewGene(c Category) Gene {
	t := geneTable[c.kind][c.variant]
	return Gene{
		Category:             c,
		Dominance:            t.dominance,
		IntelligenceEffect:   t.intelligence,
		PestResistanceEffect: t.pest,
	}
}

// DefaultGene returns the gene expressed when a plant carries none of a kind.
func DefaultGene(k Kind) Gene {
	switch k {
	case KindStemStyle:
		return NewGene(StemStyleCategory(Curvy))
	case KindStemColor:
		return NewGene(StemColorCategory(Green))
	case KindFruitStyle:
		return NewGene(FruitStyleCategory(Circle))
	default:
		return NewGene(FruitColorCategory(Red))
	}
}

// String returns the gene's category with its dominance marker.
func (g Gene) String() string {
	if g.Dominance == Dominant {
		return g.Category.String() + "(D)"
	}
	return g.Category.String() + "(r)"
}

// GenesOfKind returns the genes of one kind, preserving list order.
func GenesOfKind(genes []Gene, k Kind) []Gene {
	var out []Gene
	for _, g := range genes {
		if g.Category.kind == k {
			out = append(out, g)
		}
	}
	return out
}

func (k Kind) String() string {
	switch k {
	case KindStemStyle:
		return "stem_style"
	case KindStemColor:
		return "stem_color"
	case KindFruitStyle:
		return "fruit_style"
	case KindFruitColor:
		return "fruit_color"
	default:
		return ""
	}
}

func (s StemStyle) String() string {
	switch s {
	case Curvy:
		return "Curvy"
	case Loopy:
		return "Loopy"
	case Angular:
		return "Angular"
	case Wiggly:
		return "Wiggly"
	default:
		return ""
	}
}

func (c StemColor) String() string {
	switch c {
	case Brown:
		return "Brown"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return ""
	}
}

func (s FruitStyle) String() string {
	switch s {
	case Circle:
		return "Circle"
	case Square:
		return "Square"
	case Triangle:
		return "Triangle"
	default:
		return ""
	}
}

func (c FruitColor) String() string {
	switch c {
	case Red:
		return "Red"
	case Purple:
		return "Purple"
	case Yellow:
		return "Yellow"
	default:
		return ""
	}
}

func (d Dominance) String() string {
	if d == Dominant {
		return "Dominant"
	}
	return "Recessive"
}
