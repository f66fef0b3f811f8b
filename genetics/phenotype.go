package genetics

// Phenotype is the expressed trait and stat profile of a plant.
// Intelligence and PestResistance are unclamped and may be negative.
type Phenotype struct {
	StemStyle      StemStyle
	StemColor      StemColor
	FruitStyle     FruitStyle
	FruitColor     FruitColor
	Intelligence   int
	PestResistance int
}

// ResolvePhenotype derives the phenotype of a gene list.
// For each kind the first dominant gene in list order is expressed, then the
// first recessive one, then the kind's default gene.
func ResolvePhenotype(genes []Gene) Phenotype {
	var p Phenotype
	for _, k := range Kinds {
		g := ExpressedGene(genes, k)
		switch k {
		case KindStemStyle:
			p.StemStyle, _ = g.Category.StemStyle()
		case KindStemColor:
			p.StemColor, _ = g.Category.StemColor()
		case KindFruitStyle:
			p.FruitStyle, _ = g.Category.FruitStyle()
		case KindFruitColor:
			p.FruitColor, _ = g.Category.FruitColor()
		}
		p.Intelligence += g.IntelligenceEffect
		p.PestResistance += g.PestResistanceEffect
	}
	return p
}

// ExpressedGene returns the gene that wins expression for one kind.
func ExpressedGene(genes []Gene, k Kind) Gene {
	recessive := -1
	for i, g := range genes {
		if g.Category.kind != k {
			continue
		}
		if g.Dominance == Dominant {
			return g
		}
		if recessive < 0 {
			recessive = i
		}
	}
	if recessive >= 0 {
		return genes[recessive]
	}
	return DefaultGene(k)
}
