package controllers

import (
	"PersonaGo/config"
	"PersonaGo/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TraitController struct{}

// GetTraits 获取全部特质
func (tc *TraitController) GetTraits(c *gin.Context) {
	var traits []models.Trait
	if err := config.DB.Order("name").Find(&traits).Error; err != nil {
		config.Logger.Errorw("获取特质列表失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "특질 목록을 불러오지 못했습니다."})
		return
	}

	c.JSON(http.StatusOK, traits)
}
