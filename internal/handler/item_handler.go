package handler

import (
	"errors"
	"net/http"
	"strconv"

	"lostlinked/internal/middleware"
	"lostlinked/internal/model"
	"lostlinked/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ItemHandler handles lost and found item requests
type ItemHandler struct {
	service service.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(s service.ItemService) *ItemHandler {
	return &ItemHandler{service: s}
}

// Root is the unauthenticated welcome endpoint
func (h *ItemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to LostLinked API"})
}

func (h *ItemHandler) CreateLostItem(c *gin.Context) {
	var req model.CreateLostItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), model.KindLost, req.Item())
	if err != nil {
		log.Error().Err(err).Msg("error creating lost item")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create lost item"})
		return
	}
	c.JSON(http.StatusCreated, model.NewLostItemResponse(*created))
}

func (h *ItemHandler) CreateFoundItem(c *gin.Context) {
	var req model.CreateFoundItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), model.KindFound, req.Item())
	if err != nil {
		log.Error().Err(err).Msg("error creating found item")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create found item"})
		return
	}
	c.JSON(http.StatusCreated, model.NewFoundItemResponse(*created))
}

func (h *ItemHandler) ListLostItems(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), model.KindLost)
	if err != nil {
		log.Error().Err(err).Msg("error listing lost items")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve lost items"})
		return
	}

	resp := make([]model.LostItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, model.NewLostItemResponse(it))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ItemHandler) ListFoundItems(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), model.KindFound)
	if err != nil {
		log.Error().Err(err).Msg("error listing found items")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve found items"})
		return
	}

	resp := make([]model.FoundItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, model.NewFoundItemResponse(it))
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteItem removes an item by kind and id. Requires authentication.
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	kind, err := model.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid item type"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid item ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), kind, id); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Item not found"})
			return
		}
		log.Error().Err(err).Msg("error deleting item")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to delete item"})
		return
	}

	if user, ok := middleware.AuthUser(c); ok {
		log.Info().Str("username", user.Username).Str("kind", string(kind)).Int64("id", id).Msg("item deleted")
	}
	c.Status(http.StatusNoContent)
}

// RegisterRoutes registers item routes. Creation and listing are public;
// deletion goes through the bearer-auth middleware.
func (h *ItemHandler) RegisterRoutes(r *gin.Engine, authMW gin.HandlerFunc) {
	r.GET("/", h.Root)

	r.POST("/lost-items", h.CreateLostItem)
	r.GET("/lost-items", h.ListLostItems)
	r.POST("/found-items", h.CreateFoundItem)
	r.GET("/found-items", h.ListFoundItems)

	r.DELETE("/items/:kind/:id", authMW, h.DeleteItem)
}
