package controllers

import (
	"PersonaGo/config"
	"PersonaGo/models"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type QuestionController struct{}

// 联表查询问题并带出特质名
func questionRows(onlyActive bool) ([]models.QuestionRow, error) {
	query := config.DB.Model(&models.Question{}).
		Select("questions.*, traits.name AS trait_name").
		Joins("JOIN traits ON traits.id = questions.trait_id").
		Order("questions.trait_id, questions.id")
	if onlyActive {
		query = query.Where("questions.is_active = ?", true)
	}

	var rows []models.QuestionRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.QuestionRow{}
	}
	return rows, nil
}

// GetActiveQuestions 获取启用中的问题（检测页使用）
func (qc *QuestionController) GetActiveQuestions(c *gin.Context) {
	rows, err := questionRows(true)
	if err != nil {
		config.Logger.Errorw("获取问题列表失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "질문 목록을 불러오지 못했습니다."})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetAllQuestions 获取全部问题，包括停用的（管理页使用）
func (qc *QuestionController) GetAllQuestions(c *gin.Context) {
	rows, err := questionRows(false)
	if err != nil {
		config.Logger.Errorw("获取管理问题列表失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "질문 목록을 불러오지 못했습니다."})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// CreateQuestion 添加问题
func (qc *QuestionController) CreateQuestion(c *gin.Context) {
	var req models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// 问题必须挂在已存在的特质下
	var trait models.Trait
	if err := config.DB.Where("id = ?", req.TraitID).First(&trait).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"error": "존재하지 않는 특질입니다."})
			return
		}
		config.Logger.Errorw("查询特质失败", "error", err, "traitID", req.TraitID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "질문을 추가하지 못했습니다."})
		return
	}

	question := models.Question{
		TraitID:      req.TraitID,
		QuestionText: req.QuestionText,
		IsActive:     true,
	}
	if err := config.DB.Create(&question).Error; err != nil {
		config.Logger.Errorw("添加问题失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "질문을 추가하지 못했습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      question.ID,
		"message": "질문이 추가되었습니다.",
	})
}

// UpdateQuestion 修改问题，停用走这里的 is_active 开关
func (qc *QuestionController) UpdateQuestion(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	var trait models.Trait
	if err := config.DB.Where("id = ?", req.TraitID).First(&trait).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"error": "존재하지 않는 특질입니다."})
			return
		}
		config.Logger.Errorw("查询特质失败", "error", err, "traitID", req.TraitID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "질문을 수정하지 못했습니다."})
		return
	}

	var question models.Question
	if err := config.DB.Where("id = ?", id).First(&question).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "질문을 찾을 수 없습니다."})
			return
		}
		config.Logger.Errorw("查询问题失败", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "질문을 수정하지 못했습니다."})
		return
	}

	updates := map[string]interface{}{
		"trait_id":      req.TraitID,
		"question_text": req.QuestionText,
		"is_active":     *req.IsActive,
	}
	if err := config.DB.Model(&question).Updates(updates).Error; err != nil {
		config.Logger.Errorw("修改问题失败", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "질문을 수정하지 못했습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "질문이 수정되었습니다."})
}

// DeleteQuestion 删除问题
// 历史检测记录中引用该问题的作答保留不动，作为审计数据
func (qc *QuestionController) DeleteQuestion(c *gin.Context) {
	id := c.Param("id")

	var question models.Question
	if err := config.DB.Where("id = ?", id).First(&question).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "질문을 찾을 수 없습니다."})
			return
		}
		config.Logger.Errorw("查询问题失败", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "질문을 삭제하지 못했습니다."})
		return
	}

	if err := config.DB.Delete(&question).Error; err != nil {
		config.Logger.Errorw("删除问题失败", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "질문을 삭제하지 못했습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "질문이 삭제되었습니다."})
}
