package clipper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Clipper fetches recipe pages and extracts structured recipes from them.
type Clipper struct {
	client *http.Client
}

// ClippedRecipe is a recipe read from a web page.
type ClippedRecipe struct {
	Title             string
	SourceURL         string
	ImageURL          string
	Ingredients       []IngredientLine
	Instructions      []string
	PrepTimeMinutes   int
	CookTimeMinutes   int
	Servings          int
	ProteinPerServing float64
	CarbsPerServing   float64
	FatsPerServing    float64
}

// NewClipper creates a new Clipper instance. A nil client gets a default one
// with a 15 second timeout.
func NewClipper(client *http.Client) *Clipper {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Clipper{client: client}
}

// ClipURL fetches the URL and extracts the recipe, preferring schema.org
// JSON-LD and falling back to microdata and common class names.
func (c *Clipper) ClipURL(ctx context.Context, url string) (*ClippedRecipe, error) {
	doc, err := c.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content: %w", err)
	}

	rec, ok := fromJSONLD(doc)
	if !ok {
		rec = fromMarkup(doc)
	}
	rec.SourceURL = url

	if rec.Title == "" {
		return nil, fmt.Errorf("no recipe title found at %s", url)
	}
	if len(rec.Ingredients) == 0 {
		return nil, fmt.Errorf("no ingredients found at %s", url)
	}
	if rec.Servings <= 0 {
		rec.Servings = 1
	}
	return rec, nil
}

func (c *Clipper) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

// fromMarkup reads microdata attributes or the usual class names.
func fromMarkup(doc *goquery.Document) *ClippedRecipe {
	// Remove noise before reading text
	doc.Find("script, style, nav, footer, iframe, .ads, #ads").Remove()

	rec := &ClippedRecipe{}
	rec.Title = strings.TrimSpace(doc.Find(`[itemprop="name"]`).First().Text())
	if rec.Title == "" {
		rec.Title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if rec.Title == "" {
		rec.Title, _ = doc.Find(`meta[property="og:title"]`).Attr("content")
	}

	ingredients := doc.Find(`[itemprop="recipeIngredient"], [itemprop="ingredients"]`)
	if ingredients.Length() == 0 {
		ingredients = doc.Find(".ingredients li")
	}
	ingredients.Each(func(_ int, s *goquery.Selection) {
		if line := cleanText(s.Text()); line != "" {
			rec.Ingredients = append(rec.Ingredients, ParseIngredientLine(line))
		}
	})

	steps := doc.Find(`[itemprop="recipeInstructions"] li, .instructions li`)
	if steps.Length() == 0 {
		steps = doc.Find(`[itemprop="recipeInstructions"]`)
	}
	steps.Each(func(_ int, s *goquery.Selection) {
		if step := cleanText(s.Text()); step != "" {
			rec.Instructions = append(rec.Instructions, step)
		}
	})

	if y := doc.Find(`[itemprop="recipeYield"]`).First(); y.Length() > 0 {
		rec.Servings = parseYield(y.Text())
	}
	if img, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok {
		rec.ImageURL = img
	}
	return rec
}

// fromJSONLD looks for a schema.org Recipe node in the page's JSON-LD blocks.
func fromJSONLD(doc *goquery.Document) (*ClippedRecipe, bool) {
	var found *ldRecipe
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var raw any
		if err := json.Unmarshal([]byte(s.Text()), &raw); err != nil {
			return true
		}
		node := findRecipeNode(raw)
		if node == nil {
			return true
		}
		data, err := json.Marshal(node)
		if err != nil {
			return true
		}
		var r ldRecipe
		if err := json.Unmarshal(data, &r); err != nil {
			return true
		}
		found = &r
		return false
	})
	if found == nil {
		return nil, false
	}
	return found.toClipped(), true
}

func findRecipeNode(v any) map[string]any {
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if n := findRecipeNode(item); n != nil {
				return n
			}
		}
	case map[string]any:
		if isRecipeType(t["@type"]) {
			return t
		}
		if graph, ok := t["@graph"]; ok {
			return findRecipeNode(graph)
		}
	}
	return nil
}

func isRecipeType(v any) bool {
	switch t := v.(type) {
	case string:
		return t == "Recipe"
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == "Recipe" {
				return true
			}
		}
	}
	return false
}

type ldRecipe struct {
	Name         string          `json:"name"`
	Image        json.RawMessage `json:"image"`
	Ingredients  []string        `json:"recipeIngredient"`
	Instructions json.RawMessage `json:"recipeInstructions"`
	Yield        json.RawMessage `json:"recipeYield"`
	PrepTime     string          `json:"prepTime"`
	CookTime     string          `json:"cookTime"`
	Nutrition    struct {
		Protein string `json:"proteinContent"`
		Carbs   string `json:"carbohydrateContent"`
		Fat     string `json:"fatContent"`
	} `json:"nutrition"`
}

func (r *ldRecipe) toClipped() *ClippedRecipe {
	rec := &ClippedRecipe{
		Title:             strings.TrimSpace(r.Name),
		ImageURL:          firstURL(r.Image),
		Instructions:      instructionSteps(r.Instructions),
		PrepTimeMinutes:   ParseISODuration(r.PrepTime),
		CookTimeMinutes:   ParseISODuration(r.CookTime),
		Servings:          parseYield(rawText(r.Yield)),
		ProteinPerServing: leadingNumber(r.Nutrition.Protein),
		CarbsPerServing:   leadingNumber(r.Nutrition.Carbs),
		FatsPerServing:    leadingNumber(r.Nutrition.Fat),
	}
	for _, line := range r.Ingredients {
		if line = cleanText(line); line != "" {
			rec.Ingredients = append(rec.Ingredients, ParseIngredientLine(line))
		}
	}
	return rec
}

// rawText flattens a JSON string, number or array of those into text.
func rawText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	case []any:
		if len(t) > 0 {
			b, _ := json.Marshal(t[0])
			return rawText(b)
		}
	}
	return ""
}

func firstURL(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []any:
		if len(t) > 0 {
			b, _ := json.Marshal(t[0])
			return firstURL(b)
		}
	case map[string]any:
		if u, ok := t["url"].(string); ok {
			return u
		}
	}
	return ""
}

func instructionSteps(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	var steps []string
	var walk func(any)
	walk = func(v any) {
		switch t := v.(type) {
		case string:
			if s := cleanText(t); s != "" {
				steps = append(steps, s)
			}
		case []any:
			for _, item := range t {
				walk(item)
			}
		case map[string]any:
			// HowToSection nests its steps under itemListElement
			if items, ok := t["itemListElement"]; ok {
				walk(items)
				return
			}
			if text, ok := t["text"].(string); ok {
				walk(text)
			}
		}
	}
	walk(v)
	return steps
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
