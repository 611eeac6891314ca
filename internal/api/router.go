// Package api exposes the pantry, catalog and cookbook over a JSON HTTP API.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitfeast/internal/app"
)

// Server holds the handler dependencies.
type Server struct {
	app *app.App
}

// NewRouter builds the gin engine with every route registered. Routes other
// than /health require a bearer token signed with secret.
func NewRouter(a *app.App, secret string) *gin.Engine {
	s := &Server{app: a}
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := r.Group("/")
	authed.Use(AuthMiddleware([]byte(secret)))

	ingredients := authed.Group("/ingredients")
	{
		ingredients.GET("/search", s.searchIngredients)
		ingredients.GET("/:id/units", s.ingredientUnits)
	}

	p := authed.Group("/pantry")
	{
		p.GET("", s.listPantry)
		p.POST("", s.addToPantry)
		p.GET("/totals", s.pantryTotals)
		p.POST("/:id/used", s.markUsed)
		p.PUT("/:id/quantity", s.updateQuantity)
		p.PUT("/:id/expiration", s.updateExpiration)
		p.DELETE("/:id", s.removeEntry)
	}

	recipes := authed.Group("/recipes")
	{
		recipes.GET("/suggestions", s.suggestions)
		recipes.GET("/:id", s.getRecipe)
	}

	saved := authed.Group("/saved")
	{
		saved.GET("", s.listSaved)
		saved.POST("/:recipeId", s.saveRecipe)
		saved.DELETE("/:recipeId", s.unsaveRecipe)
	}

	return r
}
