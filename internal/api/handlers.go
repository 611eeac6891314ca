package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fitfeast/internal/catalog"
	"fitfeast/internal/macros"
	"fitfeast/internal/pantry"
)

func (s *Server) searchIngredients(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		badRequest(c, errors.New("query parameter q is required"))
		return
	}
	found, err := s.app.Catalog().SearchIngredients(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (s *Server) ingredientUnits(c *gin.Context) {
	opts, err := s.app.UnitOptions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

func (s *Server) listPantry(c *gin.Context) {
	report, err := s.app.PantryReport(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) pantryTotals(c *gin.Context) {
	report, err := s.app.PantryReport(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totals": report.Totals, "split": report.Split})
}

type addRequest struct {
	IngredientID   string  `json:"ingredient_id"`
	Name           string  `json:"name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	ExpirationDate string  `json:"expiration_date"`
}

func (s *Server) addToPantry(c *gin.Context) {
	var body addRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	if body.IngredientID == "" && strings.TrimSpace(body.Name) == "" {
		badRequest(c, errors.New("ingredient_id or name is required"))
		return
	}
	exp, err := parseDate(body.ExpirationDate)
	if err != nil {
		badRequest(c, err)
		return
	}

	req := pantry.AddRequest{
		Quantity:       pantry.NormalizeQuantity(body.Quantity),
		Unit:           body.Unit,
		ExpirationDate: exp,
	}
	ctx := c.Request.Context()
	var entry *pantry.Entry
	if body.IngredientID != "" {
		entry, err = s.app.AddToPantry(ctx, ownerID(c), body.IngredientID, req)
	} else {
		entry, err = s.app.AddToPantryByName(ctx, ownerID(c), body.Name, req)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pantry.Describe(*entry, s.app.Today()))
}

func (s *Server) markUsed(c *gin.Context) {
	ctx := c.Request.Context()
	entry, err := s.app.EntryForOwner(ctx, ownerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	entry, err = s.app.Pantry().MarkAsUsed(ctx, entry.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pantry.Describe(*entry, s.app.Today()))
}

func (s *Server) updateQuantity(c *gin.Context) {
	var body struct {
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	entry, err := s.app.EntryForOwner(ctx, ownerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	unit := body.Unit
	if unit == "" {
		unit = entry.Unit
	}
	entry, err = s.app.Pantry().UpdateQuantity(ctx, entry.ID, body.Quantity, unit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pantry.Describe(*entry, s.app.Today()))
}

func (s *Server) updateExpiration(c *gin.Context) {
	var body struct {
		ExpirationDate string `json:"expiration_date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	exp, err := parseDate(body.ExpirationDate)
	if err != nil {
		badRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	entry, err := s.app.EntryForOwner(ctx, ownerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	entry, err = s.app.Pantry().UpdateExpiration(ctx, entry.ID, exp)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pantry.Describe(*entry, s.app.Today()))
}

func (s *Server) removeEntry(c *gin.Context) {
	ctx := c.Request.Context()
	entry, err := s.app.EntryForOwner(ctx, ownerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := s.app.Pantry().Remove(ctx, entry.ID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) suggestions(c *gin.Context) {
	out, err := s.app.Suggestions(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type recipeDetail struct {
	*catalog.Recipe
	TotalMacros macros.Totals `json:"total_macros"`
	Split       macros.Split  `json:"split"`
}

func (s *Server) getRecipe(c *gin.Context) {
	rec, err := s.app.Catalog().GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipeDetail{
		Recipe:      rec,
		TotalMacros: rec.TotalMacros(),
		Split:       macros.Distribution(rec.PerServing()),
	})
}

func (s *Server) listSaved(c *gin.Context) {
	saved, err := s.app.Cookbook().List(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) saveRecipe(c *gin.Context) {
	if err := s.app.Cookbook().Save(c.Request.Context(), ownerID(c), c.Param("recipeId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (s *Server) unsaveRecipe(c *gin.Context) {
	if err := s.app.Cookbook().Remove(c.Request.Context(), ownerID(c), c.Param("recipeId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseDate accepts a calendar date or an RFC 3339 timestamp. A timestamp
// counts as the date it falls on at its own offset. Empty means no date.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return &t, nil
}
