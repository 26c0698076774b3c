package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/venkatakrishna06/restaurant-pos/models"
	"github.com/venkatakrishna06/restaurant-pos/utils"
	"gorm.io/gorm"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

func (tc *TableController) List(c *gin.Context) {
	var tables []models.Table
	if err := tc.DB.Order("table_number").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

func (tc *TableController) Create(c *gin.Context) {
	var req models.Table
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Status == "" {
		req.Status = models.TableAvailable
	}

	if err := tc.DB.Create(&req).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d created (capacity=%d, status=%s)", req.TableNumber, req.Capacity, req.Status)
	utils.RespondJSON(c, http.StatusCreated, "Table created", req)
}

// Update applies a partial patch. No capacity arithmetic is checked here:
// the server stores whatever the client sends, capacity conservation on
// merge/split is a client-side concern.
func (tc *TableController) Update(c *gin.Context) {
	var table models.Table
	if err := tc.DB.First(&table, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var patch models.TablePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if patch.TableNumber != nil {
		table.TableNumber = *patch.TableNumber
	}
	if patch.Capacity != nil {
		table.Capacity = *patch.Capacity
	}
	if patch.Status != nil {
		table.Status = *patch.Status
	}
	if patch.CurrentOrderID != nil {
		table.CurrentOrderID = patch.CurrentOrderID
	}
	if patch.MergedWith != nil {
		table.MergedWith = patch.MergedWith
	}
	if patch.SplitFrom != nil {
		table.SplitFrom = patch.SplitFrom
	}
	if patch.ClearRefs {
		table.CurrentOrderID = nil
		table.MergedWith = nil
		table.SplitFrom = nil
	}

	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d updated (status=%s, capacity=%d)", table.ID, table.Status, table.Capacity)
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

func (tc *TableController) Delete(c *gin.Context) {
	var table models.Table
	if err := tc.DB.First(&table, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := tc.DB.Delete(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": table.ID})
}
