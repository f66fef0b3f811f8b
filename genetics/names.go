package genetics

// CombineNames builds a child name from two parent names. One syllable is
// drawn from each parent, then syllables are drawn with replacement from both
// parents together until the name is as long as the longer parent name.
func CombineNames(src Source, n1, n2 PlantName) PlantName {
	target := max(n1.Len(), n2.Len())
	result := make([]string, 0, target)

	if n1.Len() > 0 {
		result = append(result, Pick(src, n1.syllables))
	}
	if n2.Len() > 0 {
		result = append(result, Pick(src, n2.syllables))
	}

	pool := make([]string, 0, n1.Len()+n2.Len())
	pool = append(pool, n1.syllables...)
	pool = append(pool, n2.syllables...)
	if len(pool) == 0 {
		return PlantName{}
	}
	for len(result) < target {
		result = append(result, Pick(src, pool))
	}

	return PlantName{syllables: result}
}
