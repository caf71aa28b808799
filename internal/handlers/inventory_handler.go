package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-manager/internal/httperr"
	"github.com/clinicdesk/clinic-manager/internal/httpresp"
	"github.com/clinicdesk/clinic-manager/internal/models"
)

type InventoryHandler struct {
	db *gorm.DB
}

func NewInventoryHandler(db *gorm.DB) *InventoryHandler {
	return &InventoryHandler{db: db}
}

// --------- Requests ---------

type CreateInventoryItemRequest struct {
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category"`
	Unit         string `json:"unit"`
	Quantity     int    `json:"quantity" binding:"min=0"`
	ReorderLevel int    `json:"reorder_level"`
}

type UpdateInventoryItemRequest struct {
	Quantity     *int `json:"quantity,omitempty"`
	ReorderLevel *int `json:"reorder_level,omitempty"`
}

// --------- Handlers ---------

func (h *InventoryHandler) List(c *gin.Context) {
	var items []models.InventoryItem
	if err := h.db.
		Order("name ASC").
		Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_inventory", "Could not load inventory.")
		return
	}

	httpresp.OK(c, items)
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, bindingFields(err))
		return
	}

	item := models.InventoryItem{
		Name:         req.Name,
		Category:     req.Category,
		Unit:         req.Unit,
		Quantity:     req.Quantity,
		ReorderLevel: req.ReorderLevel,
	}
	if item.ReorderLevel <= 0 {
		item.ReorderLevel = 10
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_item", "Could not save inventory item.")
		return
	}

	httpresp.Created(c, item)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	var item models.InventoryItem
	if err := h.db.First(&item, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "item_not_found", "Inventory item not found.")
		return
	}

	var req UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid inventory data.")
		return
	}

	if req.Quantity != nil {
		if *req.Quantity < 0 {
			httperr.Validation(c, map[string]string{"quantity": "must not be negative"})
			return
		}
		item.Quantity = *req.Quantity
	}
	if req.ReorderLevel != nil {
		item.ReorderLevel = *req.ReorderLevel
	}

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_item", "Could not save inventory item.")
		return
	}

	httpresp.OK(c, item)
}
