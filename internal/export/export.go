// Package export writes pantry and suggestion reports as XLSX workbooks.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"fitfeast/internal/matching"
	"fitfeast/internal/pantry"
)

// Sheet names of the report workbook.
const (
	SheetPantry   = "Pantry"
	SheetMakeable = "Makeable"
	SheetNearMiss = "Near misses"
)

// Report is the content of a pantry workbook.
type Report struct {
	Items       []pantry.View
	Suggestions matching.Suggestions
}

// Write renders the report as an XLSX workbook to w.
func Write(w io.Writer, r Report) error {
	f, err := build(r)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// Save renders the report as an XLSX workbook at path.
func Save(path string, r Report) error {
	f, err := build(r)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func build(r Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetPantry); err != nil {
		f.Close()
		return nil, err
	}

	pantryRows := make([][]interface{}, 0, len(r.Items))
	for _, v := range r.Items {
		expires, status := "", ""
		if v.ExpirationDate != nil {
			expires = v.ExpirationDate.Format("2006-01-02")
		}
		if v.Freshness != nil {
			status = v.Freshness.Message
		}
		pantryRows = append(pantryRows, []interface{}{
			v.Ingredient.Name, v.Ingredient.Category, v.Quantity, v.Unit, string(v.Status),
			expires, status, v.Macros.Protein, v.Macros.Carbs, v.Macros.Fats,
		})
	}
	err := writeSheet(f, SheetPantry,
		[]interface{}{"ingredient", "category", "quantity", "unit", "status", "expires", "freshness", "protein_g", "carbs_g", "fats_g"},
		pantryRows)
	if err != nil {
		f.Close()
		return nil, err
	}

	makeableRows := make([][]interface{}, 0, len(r.Suggestions.Makeable))
	for _, rec := range r.Suggestions.Makeable {
		makeableRows = append(makeableRows, []interface{}{
			rec.Name, rec.Servings, rec.TotalTimeMinutes(), rec.ProteinPerServing, rec.CarbsPerServing, rec.FatsPerServing,
		})
	}
	if err := addSheet(f, SheetMakeable,
		[]interface{}{"recipe", "servings", "total_minutes", "protein_g", "carbs_g", "fats_g"},
		makeableRows); err != nil {
		f.Close()
		return nil, err
	}

	nearRows := make([][]interface{}, 0, len(r.Suggestions.NearMiss))
	for _, nm := range r.Suggestions.NearMiss {
		names := make([]string, 0, len(nm.MissingIngredients))
		for _, ing := range nm.MissingIngredients {
			names = append(names, ing.Name)
		}
		nearRows = append(nearRows, []interface{}{nm.Recipe.Name, len(names), strings.Join(names, ", ")})
	}
	if err := addSheet(f, SheetNearMiss,
		[]interface{}{"recipe", "missing_count", "missing"},
		nearRows); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

func addSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	return writeSheet(f, sheet, header, rows)
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	// StreamWriter for efficiency on large tables
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}
	for i, row := range rows {
		cellAddr, _ := excelize.CoordinatesToCellName(1, i+2) // A2, A3, ...
		if err := sw.SetRow(cellAddr, row); err != nil {
			return err
		}
	}
	return sw.Flush()
}
