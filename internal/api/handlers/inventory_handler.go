package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/invensight/backend-go/internal/domain"
	"github.com/invensight/backend-go/internal/repository/memory"
)

// InventoryHandler exposes the CRUD surface over the in-memory store.
type InventoryHandler struct {
	store *memory.Store
}

func NewInventoryHandler(store *memory.Store) *InventoryHandler {
	return &InventoryHandler{store: store}
}

func (h *InventoryHandler) ListItems(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListItems())
}

func (h *InventoryHandler) GetItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	item, err := h.store.GetItem(id)
	if err != nil {
		if errors.Is(err, memory.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var item domain.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.store.CreateItem(item))
}

func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var item domain.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.ID = id

	updated, err := h.store.UpdateItem(item)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.store.DeleteItem(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) ListMovements(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListMovements())
}

func (h *InventoryHandler) CreateMovement(c *gin.Context) {
	var movement domain.StockMovement
	if err := c.ShouldBindJSON(&movement); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.store.CreateMovement(movement))
}

func (h *InventoryHandler) DeleteMovement(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.store.DeleteMovement(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "movement not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) ListTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListTransactions())
}

func (h *InventoryHandler) CreateTransaction(c *gin.Context) {
	var tx domain.Transaction
	if err := c.ShouldBindJSON(&tx); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.store.CreateTransaction(tx))
}

func (h *InventoryHandler) DeleteTransaction(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.store.DeleteTransaction(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
