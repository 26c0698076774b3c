package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/venkatakrishna06/restaurant-pos/models"
	"github.com/venkatakrishna06/restaurant-pos/utils"
	"gorm.io/gorm"
)

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

func (sc *StaffController) List(c *gin.Context) {
	var staff []models.StaffMember
	if err := sc.DB.Find(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of staff", staff)
}

func (sc *StaffController) Create(c *gin.Context) {
	var req models.StaffMember
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Status == "" {
		req.Status = models.StaffActive
	}

	if err := sc.DB.Create(&req).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.InfoLogger.Printf("Staff member created: %s (%s)", req.Name, req.Role)
	utils.RespondJSON(c, http.StatusCreated, "Staff member created", req)
}

func (sc *StaffController) Update(c *gin.Context) {
	var member models.StaffMember
	if err := sc.DB.First(&member, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var patch models.StaffPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if patch.Name != nil {
		member.Name = *patch.Name
	}
	if patch.Role != nil {
		member.Role = *patch.Role
	}
	if patch.Phone != nil {
		member.Phone = *patch.Phone
	}
	if patch.Shift != nil {
		member.Shift = *patch.Shift
	}
	if patch.Status != nil {
		member.Status = *patch.Status
	}

	if err := sc.DB.Save(&member).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Staff member updated", member)
}

func (sc *StaffController) Delete(c *gin.Context) {
	var member models.StaffMember
	if err := sc.DB.First(&member, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err := sc.DB.Delete(&member).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Staff member deleted", gin.H{"id": member.ID})
}
