package macros

import (
	"sync"
	"testing"
)

func TestScale(t *testing.T) {
	t.Run("Linear", func(t *testing.T) {
		got := Scale(Densities{ProteinPer100: 20}, 150)
		want := Totals{Protein: 30}
		if got != want {
			t.Errorf("Expected %+v, got %+v", want, got)
		}
	})

	t.Run("AllAxes", func(t *testing.T) {
		got := Scale(Densities{ProteinPer100: 31, CarbsPer100: 0, FatsPer100: 3.6}, 200)
		want := Totals{Protein: 62, Carbs: 0, Fats: 7.2}
		if got != want {
			t.Errorf("Expected %+v, got %+v", want, got)
		}
	})

	t.Run("RoundsToOneDecimal", func(t *testing.T) {
		got := Scale(Densities{ProteinPer100: 2.55, CarbsPer100: 13.33, FatsPer100: 0.07}, 33)
		want := Totals{Protein: 0.8, Carbs: 4.4, Fats: 0}
		if got != want {
			t.Errorf("Expected %+v, got %+v", want, got)
		}
	})
}

func TestForQuantityIgnoresUnit(t *testing.T) {
	d := Densities{ProteinPer100: 13, CarbsPer100: 1.1, FatsPer100: 11}
	grams := ForQuantity(d, 2, "gram")
	pieces := ForQuantity(d, 2, "piece")
	if grams != pieces {
		t.Errorf("Expected unit to be passed through, got %+v and %+v", grams, pieces)
	}
}

func TestScaleConcurrent(t *testing.T) {
	d := Densities{ProteinPer100: 10, CarbsPer100: 20, FatsPer100: 5}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Scale(d, 100); got != (Totals{Protein: 10, Carbs: 20, Fats: 5}) {
				t.Errorf("Unexpected totals %+v", got)
			}
		}()
	}
	wg.Wait()
}

func TestSumAndAdd(t *testing.T) {
	got := Sum(Totals{Protein: 1.1, Carbs: 2}, Totals{Protein: 2.2, Fats: 0.5}, Totals{})
	want := Totals{Protein: 3.3, Carbs: 2, Fats: 0.5}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestPerRecipe(t *testing.T) {
	got := PerRecipe(Totals{Protein: 35.5, Carbs: 40, Fats: 12.25}, 2)
	want := Totals{Protein: 71, Carbs: 80, Fats: 24.5}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestDistribution(t *testing.T) {
	t.Run("Split", func(t *testing.T) {
		got := Distribution(Totals{Protein: 30, Carbs: 50, Fats: 20})
		want := Split{ProteinPct: 30, CarbsPct: 50, FatsPct: 20}
		if got != want {
			t.Errorf("Expected %+v, got %+v", want, got)
		}
	})

	t.Run("Zero", func(t *testing.T) {
		if got := Distribution(Totals{}); got != (Split{}) {
			t.Errorf("Expected zero split, got %+v", got)
		}
	})
}
