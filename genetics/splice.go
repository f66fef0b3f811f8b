package genetics

// Seed is the spliced offspring of two plants, waiting to be grown.
type Seed struct {
	ParentName1 PlantName
	ParentName2 PlantName
	Genes       []Gene
}

// Splice breeds two plants into a seed. For every kind one gene is drawn
// uniformly from each parent, falling back to the kind's default gene when
// the parent carries none, so the seed always holds two genes per kind.
func Splice(src Source, p1, p2 Plant) Seed {
	genes := make([]Gene, 0, 2*len(Kinds))
	for _, k := range Kinds {
		genes = append(genes, spliceGene(src, p1.Genes, k), spliceGene(src, p2.Genes, k))
	}
	return Seed{
		ParentName1: p1.Name,
		ParentName2: p2.Name,
		Genes:       genes,
	}
}

func spliceGene(src Source, genes []Gene, k Kind) Gene {
	matching := GenesOfKind(genes, k)
	if len(matching) == 0 {
		return DefaultGene(k)
	}
	return Pick(src, matching)
}

// Grow turns the seed into a plant. Genes carry over unchanged and the name
// is recombined from the parents' syllables.
func (s Seed) Grow(src Source) Plant {
	genes := make([]Gene, len(s.Genes))
	copy(genes, s.Genes)
	return Plant{
		Name:  CombineNames(src, s.ParentName1, s.ParentName2),
		Genes: genes,
	}
}

// Phenotype resolves the phenotype the seed will express once grown.
func (s Seed) Phenotype() Phenotype {
	return ResolvePhenotype(s.Genes)
}
