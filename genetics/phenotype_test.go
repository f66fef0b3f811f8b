package genetics

import (
	"reflect"
	"testing"
)

func TestPhenotypeDeterministic(t *testing.T) {
	p := jessica()
	first := p.Phenotype()
	for i := 0; i < 10; i++ {
		if got := p.Phenotype(); got != first {
			t.Fatalf("call %d: phenotype changed: %+v vs %+v", i, got, first)
		}
	}
}

func TestPhenotypeDominancePrecedence(t *testing.T) {
	orders := [][]Category{
		{StemColorCategory(Blue), StemColorCategory(Brown)},
		{StemColorCategory(Brown), StemColorCategory(Blue)},
	}
	for _, order := range orders {
		p := NewPlant(NewPlantName("x"), order...)
		if got := p.Phenotype().StemColor; got != Brown {
			t.Errorf("genes %v: stem color = %v, want Brown", order, got)
		}
	}
}

func TestPhenotypeFirstInOrderTieBreak(t *testing.T) {
	p := NewPlant(NewPlantName("x"), StemColorCategory(Brown), StemColorCategory(Green))
	ph := p.Phenotype()
	if ph.StemColor != Brown {
		t.Errorf("stem color = %v, want Brown", ph.StemColor)
	}

	p = NewPlant(NewPlantName("x"), StemColorCategory(Green), StemColorCategory(Brown))
	if got := p.Phenotype().StemColor; got != Green {
		t.Errorf("stem color = %v, want Green", got)
	}

	// two recessives: first wins
	p = NewPlant(NewPlantName("x"), StemStyleCategory(Angular), StemStyleCategory(Loopy))
	if got := p.Phenotype().StemStyle; got != Angular {
		t.Errorf("stem style = %v, want Angular", got)
	}
}

func TestPhenotypeDefaultFallback(t *testing.T) {
	ph := Plant{Name: NewPlantName("x")}.Phenotype()

	want := Phenotype{
		StemStyle:      Curvy,
		StemColor:      Green,
		FruitStyle:     Circle,
		FruitColor:     Red,
		Intelligence:   -4,
		PestResistance: 9,
	}
	if ph != want {
		t.Errorf("empty plant phenotype = %+v, want %+v", ph, want)
	}
}

func TestPhenotypeUnclampedNegative(t *testing.T) {
	p := NewPlant(NewPlantName("x"),
		StemStyleCategory(Angular),
		StemColorCategory(Blue),
		FruitStyleCategory(Square),
		FruitColorCategory(Yellow),
	)
	ph := p.Phenotype()
	if ph.Intelligence != 5+5+3+4 {
		t.Errorf("intelligence = %d, want 17", ph.Intelligence)
	}
	if ph.PestResistance != -1-1-1-3 {
		t.Errorf("pest resistance = %d, want -6", ph.PestResistance)
	}
}

func TestPhenotypeStarterPlants(t *testing.T) {
	tests := []struct {
		name  string
		plant Plant
		want  Phenotype
	}{
		{"roberto", roberto(), Phenotype{Curvy, Green, Circle, Red, -4, 9}},
		{"jessica", jessica(), Phenotype{Wiggly, Brown, Square, Red, 2, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.plant.Phenotype(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("phenotype = %+v, want %+v", got, tt.want)
			}
		})
	}
}
