package controllers

import (
	"PersonaGo/config"
	"PersonaGo/models"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ResultTypeController struct{}

// GetResultTypes 获取全部结果区间
func (rc *ResultTypeController) GetResultTypes(c *gin.Context) {
	var resultTypes []models.ResultType
	if err := config.DB.Order("min_percentage").Find(&resultTypes).Error; err != nil {
		config.Logger.Errorw("获取结果区间失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "결과 유형을 불러오지 못했습니다."})
		return
	}

	c.JSON(http.StatusOK, resultTypes)
}

// UpdateResultType 修改结果区间
func (rc *ResultTypeController) UpdateResultType(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateResultTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "유효하지 않은 백분율 범위입니다."})
		return
	}

	var resultType models.ResultType
	if err := config.DB.Where("id = ?", id).First(&resultType).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "결과 유형을 찾을 수 없습니다."})
			return
		}
		config.Logger.Errorw("查询结果区间失败", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "결과 유형을 수정하지 못했습니다."})
		return
	}

	updates := map[string]interface{}{
		"name":           req.Name,
		"description":    req.Description,
		"min_percentage": *req.MinPercentage,
		"max_percentage": *req.MaxPercentage,
	}
	if err := config.DB.Model(&resultType).Updates(updates).Error; err != nil {
		config.Logger.Errorw("修改结果区间失败", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "결과 유형을 수정하지 못했습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "결과 유형이 수정되었습니다."})
}
