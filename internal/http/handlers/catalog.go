package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.Store.GetCategories(c.Request.Context())
	if err != nil {
		respondInternal(c, err, "load categories failed")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) GetGames(c *gin.Context) {
	games, err := h.Store.GetGames(c.Request.Context())
	if err != nil {
		respondInternal(c, err, "load games failed")
		return
	}
	c.JSON(http.StatusOK, games)
}

func (h *Handler) GetFeaturedGames(c *gin.Context) {
	games, err := h.Store.GetFeaturedGames(c.Request.Context())
	if err != nil {
		respondInternal(c, err, "load featured games failed")
		return
	}
	c.JSON(http.StatusOK, games)
}

// игры категории; несуществующая категория дает пустой список
func (h *Handler) GetGamesByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	games, err := h.Store.GetGamesByCategory(c.Request.Context(), categoryID)
	if err != nil {
		respondInternal(c, err, "load games by category failed")
		return
	}
	c.JSON(http.StatusOK, games)
}
