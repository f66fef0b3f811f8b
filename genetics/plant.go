package genetics

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// PlantName is an ordered list of lowercase syllables.
type PlantName struct {
	syllables []string
}

// NewPlantName builds a name from syllables in the given order.
func NewPlantName(syllables ...string) PlantName {
	s := make([]string, len(syllables))
	copy(s, syllables)
	return PlantName{syllables: s}
}

// Syllables returns a copy of the name's syllables.
func (n PlantName) Syllables() []string {
	s := make([]string, len(n.syllables))
	copy(s, n.syllables)
	return s
}

// Len returns the number of syllables.
func (n PlantName) Len() int { return len(n.syllables) }

// String concatenates the syllables and capitalizes the first character.
func (n PlantName) String() string {
	joined := strings.Join(n.syllables, "")
	r, size := utf8.DecodeRuneInString(joined)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + joined[size:]
}

// Plant is a named organism with an unordered gene multiset.
// Plants are values; breeding produces new plants rather than mutating old ones.
type Plant struct {
	Name  PlantName
	Genes []Gene
}

// NewPlant builds a plant from gene categories.
func NewPlant(name PlantName, categories ...Category) Plant {
	genes := make([]Gene, len(categories))
	for i, c := range categories {
		genes[i] = NewGene(c)
	}
	return Plant{Name: name, Genes: genes}
}

// Phenotype resolves the plant's expressed traits and stats.
func (p Plant) Phenotype() Phenotype {
	return ResolvePhenotype(p.Genes)
}

// Clone returns a deep copy of the plant.
func (p Plant) Clone() Plant {
	genes := make([]Gene, len(p.Genes))
	copy(genes, p.Genes)
	return Plant{Name: NewPlantName(p.Name.syllables...), Genes: genes}
}
