package export

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"fitfeast/internal/catalog"
	"fitfeast/internal/matching"
	"fitfeast/internal/pantry"
)

func sampleReport() Report {
	today := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	exp := today.AddDate(0, 0, 5)
	egg := catalog.Ingredient{ID: "egg", Name: "egg", Category: "Protein", ProteinPer100: 13}
	milk := catalog.Ingredient{ID: "milk", Name: "milk", Category: "Dairy"}

	return Report{
		Items: []pantry.View{
			pantry.Describe(pantry.Entry{Ingredient: egg, Quantity: 200, Unit: "piece", Status: pantry.StatusAvailable, ExpirationDate: &exp}, today),
		},
		Suggestions: matching.Suggestions{
			Makeable: []catalog.Recipe{{Name: "Boiled egg", Servings: 1, PrepTimeMinutes: 2, CookTimeMinutes: 8}},
			NearMiss: []matching.NearMissRecipe{{
				Recipe:             catalog.Recipe{Name: "Omelette"},
				MissingIngredients: []catalog.Ingredient{milk},
			}},
		},
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetPantry, SheetMakeable, SheetNearMiss}, f.GetSheetList())

	rows, err := f.GetRows(SheetPantry)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ingredient", rows[0][0])
	assert.Equal(t, "egg", rows[1][0])
	assert.Equal(t, "2024-03-15", rows[1][5])
	assert.Equal(t, "Expires in 5 days", rows[1][6])
	assert.Equal(t, "26", rows[1][7])

	rows, err = f.GetRows(SheetMakeable)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Boiled egg", rows[1][0])
	assert.Equal(t, "10", rows[1][2])

	rows, err = f.GetRows(SheetNearMiss)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Omelette", "1", "milk"}, rows[1])
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, Save(path, Report{}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetPantry)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
