package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"fitfeast/internal/catalog"
	"fitfeast/internal/clipper"
	"fitfeast/internal/cookbook"
	"fitfeast/internal/database"
	"fitfeast/internal/export"
	"fitfeast/internal/freshness"
	"fitfeast/internal/macros"
	"fitfeast/internal/matching"
	"fitfeast/internal/metrics"
	"fitfeast/internal/pantry"
	"fitfeast/internal/units"
)

// App holds the application's dependencies.
type App struct {
	catalog       *catalog.Repository
	pantry        *pantry.Service
	cookbook      *cookbook.Repository
	metricsStore  *metrics.Store
	recipeClipper *clipper.Clipper
	today         func() time.Time
}

// NewApp creates and initializes a new App instance.
func NewApp(
	catalogRepo *catalog.Repository,
	pantrySvc *pantry.Service,
	cookbookRepo *cookbook.Repository,
	metricsStore *metrics.Store,
	recipeClipper *clipper.Clipper,
) *App {
	return &App{
		catalog:       catalogRepo,
		pantry:        pantrySvc,
		cookbook:      cookbookRepo,
		metricsStore:  metricsStore,
		recipeClipper: recipeClipper,
		today:         freshness.Today,
	}
}

// NewFromDB wires every repository onto one database handle.
func NewFromDB(db *database.DB, recipeClipper *clipper.Clipper) *App {
	return NewApp(
		catalog.NewRepository(db.SQL),
		pantry.NewService(pantry.NewRepository(db.SQL)),
		cookbook.NewRepository(db.SQL),
		metrics.NewStore(db.SQL),
		recipeClipper,
	)
}

func (a *App) Catalog() *catalog.Repository   { return a.catalog }
func (a *App) Pantry() *pantry.Service        { return a.pantry }
func (a *App) Cookbook() *cookbook.Repository { return a.cookbook }
func (a *App) Metrics() *metrics.Store        { return a.metricsStore }

// Today is the reference date for freshness.
func (a *App) Today() time.Time { return a.today() }

// Suggestions loads the owner's available pantry and the whole catalog in
// parallel and classifies every recipe.
func (a *App) Suggestions(ctx context.Context, ownerID string) (matching.Suggestions, error) {
	start := time.Now()

	var (
		entries []pantry.Entry
		recipes []catalog.Recipe
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = a.pantry.ListAvailable(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		recipes, err = a.catalog.ListRecipesWithRequirements(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return matching.Suggestions{}, fmt.Errorf("failed to load suggestion inputs: %w", err)
	}

	suggestions := matching.ComputeSuggestions(pantry.Set(entries), recipes)

	if a.metricsStore != nil {
		err := a.metricsStore.Record(ctx, metrics.SuggestionRun{
			OwnerID:     ownerID,
			PantrySize:  len(entries),
			CatalogSize: len(recipes),
			Makeable:    len(suggestions.Makeable),
			NearMiss:    len(suggestions.NearMiss),
			LatencyMS:   time.Since(start).Milliseconds(),
		})
		if err != nil {
			log.Printf("Warning: failed to record suggestion metrics for %s: %v", ownerID, err)
		}
	}
	return suggestions, nil
}

// PantryReport is the owner's pantry with display data and totals.
type PantryReport struct {
	Items    []pantry.View `json:"items"`
	Totals   macros.Totals `json:"totals"`
	Split    macros.Split  `json:"split"`
	Expiring []pantry.View `json:"expiring"`
}

// PantryReport describes every entry of the owner. Expiring lists the
// available entries that are critical or already expired.
func (a *App) PantryReport(ctx context.Context, ownerID string) (*PantryReport, error) {
	entries, err := a.pantry.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	report := &PantryReport{
		Items:    pantry.DescribeAll(entries, a.today()),
		Totals:   pantry.Totals(entries),
		Expiring: []pantry.View{},
	}
	report.Split = macros.Distribution(report.Totals)
	for _, v := range report.Items {
		if !v.Available() || v.Freshness == nil {
			continue
		}
		if v.Freshness.Bucket == freshness.Critical || v.Freshness.Bucket == freshness.Expired {
			report.Expiring = append(report.Expiring, v)
		}
	}
	return report, nil
}

// AddToPantry adds an ingredient by ID. Without a unit, a new entry gets the
// ingredient's default unit and an existing entry keeps its own.
func (a *App) AddToPantry(ctx context.Context, ownerID, ingredientID string, req pantry.AddRequest) (*pantry.Entry, error) {
	ing, err := a.catalog.GetIngredient(ctx, ingredientID)
	if err != nil {
		return nil, err
	}
	req.DefaultUnit = units.DefaultUnit(ing.Category, ing.Name)
	return a.pantry.AddIngredient(ctx, ownerID, ing.ID, req)
}

// AddToPantryByName finds or creates the ingredient by name and adds it.
func (a *App) AddToPantryByName(ctx context.Context, ownerID, name string, req pantry.AddRequest) (*pantry.Entry, error) {
	ing, err := a.catalog.FindOrCreateIngredient(ctx, name, "")
	if err != nil {
		return nil, err
	}
	return a.AddToPantry(ctx, ownerID, ing.ID, req)
}

// EntryForOwner returns an entry only when it belongs to ownerID; otherwise
// it reports pantry.ErrNotFound.
func (a *App) EntryForOwner(ctx context.Context, ownerID, entryID string) (*pantry.Entry, error) {
	e, err := a.pantry.Get(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if e.OwnerID != ownerID {
		return nil, pantry.ErrNotFound
	}
	return e, nil
}

// UnitOptions returns the measurement units offered for an ingredient.
func (a *App) UnitOptions(ctx context.Context, ingredientID string) ([]units.Option, error) {
	ing, err := a.catalog.GetIngredient(ctx, ingredientID)
	if err != nil {
		return nil, err
	}
	return units.OptionsFor(ing.Category, ing.Name), nil
}

// UnitOptionsByName is UnitOptions for a free-text ingredient name. Unknown
// ingredients get the generic list.
func (a *App) UnitOptionsByName(ctx context.Context, name string) ([]units.Option, error) {
	ing, err := a.catalog.GetIngredientByName(ctx, name)
	if errors.Is(err, catalog.ErrNotFound) {
		return units.OptionsFor("", catalog.NormalizeName(name)), nil
	}
	if err != nil {
		return nil, err
	}
	return units.OptionsFor(ing.Category, ing.Name), nil
}

// SeedCatalog loads a YAML seed file into the catalog.
func (a *App) SeedCatalog(ctx context.Context, path string) (catalog.SeedResult, error) {
	seed, err := catalog.LoadSeedFile(path)
	if err != nil {
		return catalog.SeedResult{}, err
	}
	res, err := a.catalog.ApplySeed(ctx, seed)
	if err != nil {
		return res, fmt.Errorf("failed to apply seed: %w", err)
	}
	log.Printf("Seeded %d ingredients and %d recipes from %s", res.Ingredients, res.Recipes, path)
	return res, nil
}

// ImportRecipe clips a recipe page and stores it in the catalog. Ingredients
// are matched by name and created when unknown.
func (a *App) ImportRecipe(ctx context.Context, url string) (*catalog.Recipe, error) {
	if a.recipeClipper == nil {
		return nil, fmt.Errorf("recipe importer not configured")
	}
	clipped, err := a.recipeClipper.ClipURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to clip recipe: %w", err)
	}

	rec := &catalog.Recipe{
		Name:              clipped.Title,
		ImageURL:          clipped.ImageURL,
		PrepTimeMinutes:   clipped.PrepTimeMinutes,
		CookTimeMinutes:   clipped.CookTimeMinutes,
		Servings:          clipped.Servings,
		ProteinPerServing: clipped.ProteinPerServing,
		CarbsPerServing:   clipped.CarbsPerServing,
		FatsPerServing:    clipped.FatsPerServing,
		Instructions:      joinSteps(clipped.Instructions),
	}
	for _, line := range clipped.Ingredients {
		if line.Name == "" {
			log.Printf("Warning: skipping unparseable ingredient line %q", line.Raw)
			continue
		}
		ing, err := a.catalog.FindOrCreateIngredient(ctx, line.Name, "")
		if err != nil {
			return nil, err
		}
		unit := line.Unit
		if unit == "" {
			unit = units.DefaultUnit(ing.Category, ing.Name)
		}
		rec.Requirements = append(rec.Requirements, catalog.Requirement{
			Ingredient: *ing,
			Quantity:   line.Quantity,
			Unit:       unit,
		})
	}

	if err := a.catalog.SaveRecipe(ctx, rec); err != nil {
		return nil, err
	}
	log.Printf("Imported '%s' with %d ingredients from %s", rec.Name, len(rec.Requirements), url)
	return rec, nil
}

// ExportPantry writes the owner's pantry and suggestions to an XLSX file.
// Exports are not recorded as suggestion runs.
func (a *App) ExportPantry(ctx context.Context, ownerID, path string) error {
	report, err := a.PantryReport(ctx, ownerID)
	if err != nil {
		return err
	}
	recipes, err := a.catalog.ListRecipesWithRequirements(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	entries := make([]pantry.Entry, len(report.Items))
	for i, v := range report.Items {
		entries[i] = v.Entry
	}
	suggestions := matching.ComputeSuggestions(pantry.Set(entries), recipes)
	if err := export.Save(path, export.Report{Items: report.Items, Suggestions: suggestions}); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func joinSteps(steps []string) string {
	var sb strings.Builder
	for i, s := range steps {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, s))
	}
	return sb.String()
}
