package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitfeast/internal/app"
	"fitfeast/internal/catalog"
	"fitfeast/internal/clipper"
	"fitfeast/internal/database"
)

const testSecret = "test-secret"

type harness struct {
	t      *testing.T
	router *gin.Engine
	app    *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := database.NewDB(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	a := app.NewFromDB(db, clipper.NewClipper(nil))
	return &harness{t: t, router: NewRouter(a, testSecret), app: a}
}

func token(t *testing.T, secret, sub string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func (h *harness) do(method, path, owner string, body any) *httptest.ResponseRecorder {
	h.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(h.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if owner != "" {
		req.Header.Set("Authorization", "Bearer "+token(h.t, testSecret, owner))
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

type entryJSON struct {
	ID         string  `json:"id"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	Status     string  `json:"status"`
	Ingredient struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"ingredient"`
	Macros struct {
		Protein float64 `json:"protein"`
	} `json:"macros"`
	Freshness *struct {
		Bucket  string `json:"bucket"`
		Message string `json:"message"`
	} `json:"freshness"`
}

func TestHealthIsPublic(t *testing.T) {
	h := newHarness(t)
	w := h.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodGet, "/pantry", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/pantry", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "other-secret", "user-1"))
	w = httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/pantry", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, testSecret, ""))
	w = httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPantryLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	chicken, err := h.app.Catalog().SaveIngredient(ctx, catalog.Ingredient{Name: "chicken breast", Category: "Protein", ProteinPer100: 20})
	require.NoError(t, err)

	exp := time.Now().AddDate(0, 0, 30).Format("2006-01-02")
	w := h.do(http.MethodPost, "/pantry", "user-1", map[string]any{
		"ingredient_id":   chicken.ID,
		"quantity":        150,
		"unit":            "gram",
		"expiration_date": exp,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[entryJSON](t, w)
	assert.Equal(t, 150.0, created.Quantity)
	assert.Equal(t, 30.0, created.Macros.Protein)
	require.NotNil(t, created.Freshness)
	assert.Equal(t, "fresh", created.Freshness.Bucket)

	w = h.do(http.MethodPost, "/pantry", "user-1", map[string]any{"ingredient_id": chicken.ID, "quantity": 50})
	require.Equal(t, http.StatusCreated, w.Code)
	merged := decode[entryJSON](t, w)
	assert.Equal(t, created.ID, merged.ID)
	assert.Equal(t, 200.0, merged.Quantity)
	assert.Equal(t, "gram", merged.Unit)

	t.Run("OtherOwnerCannotTouchEntry", func(t *testing.T) {
		w := h.do(http.MethodPost, "/pantry/"+created.ID+"/used", "user-2", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		w = h.do(http.MethodDelete, "/pantry/"+created.ID, "user-2", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	w = h.do(http.MethodPut, "/pantry/"+created.ID+"/quantity", "user-1", map[string]any{"quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodPut, "/pantry/"+created.ID+"/quantity", "user-1", map[string]any{"quantity": 300, "unit": "gram"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 300.0, decode[entryJSON](t, w).Quantity)

	w = h.do(http.MethodPut, "/pantry/"+created.ID+"/expiration", "user-1", map[string]any{"expiration_date": "not a date"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodPut, "/pantry/"+created.ID+"/expiration", "user-1", map[string]any{"expiration_date": ""})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode[entryJSON](t, w).Freshness)

	w = h.do(http.MethodPost, "/pantry/"+created.ID+"/used", "user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "used", decode[entryJSON](t, w).Status)

	w = h.do(http.MethodPost, "/pantry/"+created.ID+"/used", "user-1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = h.do(http.MethodDelete, "/pantry/"+created.ID, "user-1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = h.do(http.MethodDelete, "/pantry/"+created.ID, "user-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddByNameAndTotals(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/pantry", "user-1", map[string]any{"name": "Egg", "quantity": -2})
	require.Equal(t, http.StatusCreated, w.Code)
	e := decode[entryJSON](t, w)
	assert.Equal(t, "egg", e.Ingredient.Name)
	assert.Equal(t, 1.0, e.Quantity)

	w = h.do(http.MethodPost, "/pantry", "user-1", map[string]any{"quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodPost, "/pantry", "user-1", map[string]any{"ingredient_id": "missing", "quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = h.do(http.MethodGet, "/pantry/totals", "user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"split"`)

	w = h.do(http.MethodGet, "/pantry", "user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	report := decode[struct {
		Items []entryJSON `json:"items"`
	}](t, w)
	assert.Len(t, report.Items, 1)
}

func TestIngredientsEndpoints(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	oil, err := h.app.Catalog().SaveIngredient(ctx, catalog.Ingredient{Name: "olive oil", Category: "Fat"})
	require.NoError(t, err)

	w := h.do(http.MethodGet, "/ingredients/search?q=oli", "user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	found := decode[[]catalog.Ingredient](t, w)
	require.Len(t, found, 1)
	assert.Equal(t, oil.ID, found[0].ID)

	w = h.do(http.MethodGet, "/ingredients/search", "user-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodGet, "/ingredients/"+oil.ID+"/units", "user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	opts := decode[[]struct {
		Value string `json:"value"`
	}](t, w)
	require.NotEmpty(t, opts)
	assert.Equal(t, "tbsp", opts[0].Value)

	w = h.do(http.MethodGet, "/ingredients/missing/units", "user-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecipesAndSaved(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	egg, err := h.app.Catalog().SaveIngredient(ctx, catalog.Ingredient{Name: "egg"})
	require.NoError(t, err)
	rec := &catalog.Recipe{
		Name:              "Boiled egg",
		Servings:          2,
		ProteinPerServing: 6,
		Requirements:      []catalog.Requirement{{Ingredient: *egg, Quantity: 2, Unit: "piece"}},
	}
	require.NoError(t, h.app.Catalog().SaveRecipe(ctx, rec))

	w := h.do(http.MethodPost, "/pantry", "user-1", map[string]any{"ingredient_id": egg.ID, "quantity": 6})
	require.Equal(t, http.StatusCreated, w.Code)

	w = h.do(http.MethodGet, "/recipes/suggestions", "user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sugg := decode[struct {
		Makeable []catalog.Recipe `json:"makeable"`
		NearMiss []any            `json:"near_miss"`
	}](t, w)
	require.Len(t, sugg.Makeable, 1)
	assert.Equal(t, rec.ID, sugg.Makeable[0].ID)
	assert.Empty(t, sugg.NearMiss)

	w = h.do(http.MethodGet, "/recipes/"+rec.ID, "user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode[struct {
		Name        string `json:"name"`
		TotalMacros struct {
			Protein float64 `json:"protein"`
		} `json:"total_macros"`
	}](t, w)
	assert.Equal(t, "Boiled egg", detail.Name)
	assert.Equal(t, 12.0, detail.TotalMacros.Protein)

	w = h.do(http.MethodGet, "/recipes/missing", "user-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = h.do(http.MethodPost, "/saved/"+rec.ID, "user-1", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	w = h.do(http.MethodPost, "/saved/"+rec.ID, "user-1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	w = h.do(http.MethodPost, "/saved/missing", "user-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = h.do(http.MethodGet, "/saved", "user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	saved := decode[[]struct {
		Recipe catalog.Recipe `json:"recipe"`
	}](t, w)
	require.Len(t, saved, 1)
	assert.Equal(t, "Boiled egg", saved[0].Recipe.Name)

	w = h.do(http.MethodDelete, "/saved/"+rec.ID, "user-1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = h.do(http.MethodDelete, "/saved/"+rec.ID, "user-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFreshnessBoundariesAcrossTimezones(t *testing.T) {
	zones := []*time.Location{
		time.FixedZone("UTC+9", 9*60*60),
		time.FixedZone("UTC+14", 14*60*60),
		time.FixedZone("UTC-11", -11*60*60),
	}
	cases := []struct {
		days    int
		bucket  string
		message string
	}{
		{-1, "expired", "Expired 1 day ago"},
		{0, "critical", "Expires in 0 days"},
		{3, "critical", "Expires in 3 days"},
		{4, "warning", "Expires in 4 days"},
		{7, "warning", "Expires in 7 days"},
		{8, "fresh", "Fresh for 8 days"},
	}

	for _, zone := range zones {
		t.Run(zone.String(), func(t *testing.T) {
			saved := time.Local
			time.Local = zone
			t.Cleanup(func() { time.Local = saved })

			h := newHarness(t)
			today := h.app.Today()

			for _, tc := range cases {
				exp := today.AddDate(0, 0, tc.days).Format("2006-01-02")
				w := h.do(http.MethodPost, "/pantry", "user-1", map[string]any{
					"name":            fmt.Sprintf("item %d", tc.days),
					"quantity":        1,
					"expiration_date": exp,
				})
				require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
				e := decode[entryJSON](t, w)
				require.NotNil(t, e.Freshness, exp)
				assert.Equal(t, tc.bucket, e.Freshness.Bucket, exp)
				assert.Equal(t, tc.message, e.Freshness.Message, exp)
			}

			w := h.do(http.MethodGet, "/pantry", "user-1", nil)
			require.Equal(t, http.StatusOK, w.Code)
			report := decode[struct {
				Expiring []entryJSON `json:"expiring"`
			}](t, w)
			assert.Len(t, report.Expiring, 3)
		})
	}
}
