package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/venkatakrishna06/restaurant-pos/models"
	"github.com/venkatakrishna06/restaurant-pos/utils"
	"gorm.io/gorm"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

func (oc *OrderController) List(c *gin.Context) {
	query := oc.DB.Preload("Items")
	if tableID := c.Query("table_id"); tableID != "" {
		query = query.Where("table_id = ?", tableID)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

func (oc *OrderController) Create(c *gin.Context) {
	var req models.Order
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Status == "" {
		req.Status = models.OrderPlaced
	}
	if req.OrderTime.IsZero() {
		req.OrderTime = time.Now()
	}
	for i := range req.Items {
		if req.Items[i].Status == "" {
			req.Items[i].Status = models.ItemPlaced
		}
	}
	req.TotalAmount = req.ComputeTotal()

	if err := oc.DB.Create(&req).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %d created for table %d (%d items, total=%.2f)",
		req.ID, req.TableID, len(req.Items), req.TotalAmount)
	utils.RespondJSON(c, http.StatusCreated, "Order created", req)
}

// Update applies an order patch. A non-nil item list replaces the stored
// lines wholesale: lines carrying an id keep it, new lines get theirs
// assigned here.
func (oc *OrderController) Update(c *gin.Context) {
	var order models.Order
	if err := oc.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var patch models.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if patch.Status != nil {
			order.Status = *patch.Status
		}
		if patch.Items != nil {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			for i := range patch.Items {
				patch.Items[i].OrderID = order.ID
				if patch.Items[i].Status == "" {
					patch.Items[i].Status = models.ItemPlaced
				}
			}
			if len(patch.Items) > 0 {
				if err := tx.Create(&patch.Items).Error; err != nil {
					return err
				}
			}
			order.Items = patch.Items
			order.TotalAmount = order.ComputeTotal()
		}
		if patch.TotalAmount != nil {
			order.TotalAmount = *patch.TotalAmount
		}
		return tx.Omit("Items").Save(&order).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %d updated (status=%s, total=%.2f)", order.ID, order.Status, order.TotalAmount)
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

func (oc *OrderController) Delete(c *gin.Context) {
	var order models.Order
	if err := oc.DB.First(&order, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"id": order.ID})
}
