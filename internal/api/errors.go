package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitfeast/internal/catalog"
	"fitfeast/internal/cookbook"
	"fitfeast/internal/pantry"
)

// respondError maps domain errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, pantry.ErrNotFound), errors.Is(err, catalog.ErrNotFound), errors.Is(err, cookbook.ErrNotSaved):
		status = http.StatusNotFound
	case errors.Is(err, pantry.ErrInvalidTransition), errors.Is(err, cookbook.ErrAlreadySaved):
		status = http.StatusConflict
	case errors.Is(err, pantry.ErrInvalidQuantity):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		log.Printf("Error handling %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
