package controllers

import (
	"PersonaGo/config"
	"PersonaGo/models"
	"PersonaGo/services"
	"PersonaGo/utils"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SurveyController struct{}

// 找不到匹配区间时写入的默认结果区间（보통）
const defaultResultTypeID = 3

// SubmitTest 提交量表检测
// 问题到特质的映射一条批量查询取回，聚合同步完成后一次写入
func (sc *SurveyController) SubmitTest(c *gin.Context) {
	var req models.SubmitTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	questionTraits, err := services.LookupQuestionTraits(config.DB, req.Responses)
	if err != nil {
		config.Logger.Errorw("批量查询问题特质失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "검사 결과를 저장하지 못했습니다."})
		return
	}

	traitScores, err := services.ComputeTraitScores(req.Responses, questionTraits)
	if err != nil {
		if errors.Is(err, services.ErrUnknownQuestion) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "존재하지 않는 질문이 포함되어 있습니다."})
			return
		}
		config.Logger.Errorw("计算特质得分失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "검사 결과를 저장하지 못했습니다."})
		return
	}

	responsesJSON, err := json.Marshal(req.Responses)
	if err != nil {
		config.Logger.Errorw("序列化作答失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "검사 결과를 저장하지 못했습니다."})
		return
	}
	scoresJSON, err := json.Marshal(traitScores)
	if err != nil {
		config.Logger.Errorw("序列化得分失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "검사 결과를 저장하지 못했습니다."})
		return
	}

	record := models.SurveyResponse{
		ID:           utils.GenerateID(),
		Responses:    string(responsesJSON),
		TraitScores:  string(scoresJSON),
		ResultTypeID: defaultResultTypeID,
	}
	if err := config.DB.Create(&record).Error; err != nil {
		config.Logger.Errorw("保存检测结果失败", "error", err, "responseId", record.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "검사 결과를 저장하지 못했습니다."})
		return
	}

	c.JSON(http.StatusOK, models.SubmitTestResponse{
		ResponseID:  record.ID,
		TraitScores: traitScores,
		Message:     "검사가 완료되었습니다.",
	})
}

// GetResults 查询量表检测结果
// 未作答的特质得分按0返回
func (sc *SurveyController) GetResults(c *gin.Context) {
	responseID := c.Param("responseId")

	var record models.SurveyResponse
	if err := config.DB.Where("id = ?", responseID).First(&record).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "결과를 찾을 수 없습니다."})
			return
		}
		config.Logger.Errorw("查询检测结果失败", "error", err, "responseId", responseID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "결과를 불러오지 못했습니다."})
		return
	}

	var traitScores map[uint]float64
	if err := json.Unmarshal([]byte(record.TraitScores), &traitScores); err != nil {
		config.Logger.Errorw("解析得分失败", "error", err, "responseId", responseID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "결과를 불러오지 못했습니다."})
		return
	}
	var responses []models.QuestionResponse
	if err := json.Unmarshal([]byte(record.Responses), &responses); err != nil {
		config.Logger.Errorw("解析作答失败", "error", err, "responseId", responseID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "결과를 불러오지 못했습니다."})
		return
	}

	var traits []models.Trait
	if err := config.DB.Find(&traits).Error; err != nil {
		config.Logger.Errorw("获取特质列表失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "결과를 불러오지 못했습니다."})
		return
	}

	traitResults := make([]models.TraitResult, len(traits))
	for i, trait := range traits {
		traitResults[i] = models.TraitResult{
			ID:          trait.ID,
			Name:        trait.Name,
			Description: trait.Description,
			Score:       traitScores[trait.ID],
		}
	}

	c.JSON(http.StatusOK, models.SurveyResultResponse{
		ResponseID:   record.ID,
		TraitResults: traitResults,
		Responses:    responses,
		CreatedAt:    record.CreatedAt,
	})
}
