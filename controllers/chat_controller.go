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

type ChatController struct {
	chatService *services.ChatService
	states      services.ChatStateStore
}

func NewChatController(chatService *services.ChatService, states services.ChatStateStore) *ChatController {
	return &ChatController{
		chatService: chatService,
		states:      states,
	}
}

// StartChat 开始内在欲望检测
// 生成开场白并把会话状态写入服务端存储
func (cc *ChatController) StartChat(c *gin.Context) {
	opening, err := cc.chatService.GenerateOpening(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI 응답을 생성하지 못했습니다."})
		return
	}

	state := models.ChatState{
		ResponseID:      utils.GenerateID(),
		CurrentQuestion: services.FirstQuestion().Key,
		History: []models.ChatMessage{
			{Role: "assistant", Content: opening},
		},
	}
	if err := cc.states.Save(c.Request.Context(), &state); err != nil {
		config.Logger.Errorw("保存对话状态失败", "error", err, "responseId", state.ResponseID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "세션을 저장하지 못했습니다."})
		return
	}

	c.JSON(http.StatusOK, models.ChatStartResponse{
		ResponseID:      state.ResponseID,
		Message:         opening,
		CurrentQuestion: state.CurrentQuestion,
	})
}

// ContinueChat 推进对话
// 状态保存在服务端，只接受会话ID和本轮回答；
// 任一步骤失败时状态不落盘，客户端可以从同一状态重试
func (cc *ChatController) ContinueChat(c *gin.Context) {
	var req models.ChatContinueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	state, err := cc.states.Load(c.Request.Context(), req.ResponseID)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "세션을 찾을 수 없습니다."})
			return
		}
		config.Logger.Errorw("读取对话状态失败", "error", err, "responseId", req.ResponseID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "세션을 불러오지 못했습니다."})
		return
	}

	// 已完成的会话拒绝再推进
	if state.IsComplete {
		c.JSON(http.StatusConflict, gin.H{"error": "이미 완료된 검사입니다."})
		return
	}

	state.History = append(state.History, models.ChatMessage{Role: "user", Content: req.UserMessage})

	if state.CurrentQuestion == services.LastQuestionKey() {
		cc.completeChat(c, state)
		return
	}

	next, ok := services.NextQuestion(state.CurrentQuestion)
	if !ok {
		config.Logger.Errorw("对话状态里的问题键不合法", "currentQuestion", state.CurrentQuestion, "responseId", state.ResponseID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "세션 상태가 올바르지 않습니다."})
		return
	}

	message, err := cc.chatService.GenerateTransition(c.Request.Context(), req.UserMessage, next)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI 응답을 생성하지 못했습니다."})
		return
	}

	state.History = append(state.History, models.ChatMessage{Role: "assistant", Content: message})
	state.CurrentQuestion = next.Key
	if err := cc.states.Save(c.Request.Context(), state); err != nil {
		config.Logger.Errorw("保存对话状态失败", "error", err, "responseId", state.ResponseID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "세션을 저장하지 못했습니다."})
		return
	}

	c.JSON(http.StatusOK, models.ChatContinueResponse{
		ResponseID:      state.ResponseID,
		Message:         message,
		CurrentQuestion: state.CurrentQuestion,
		ChatHistory:     state.History,
		IsComplete:      false,
	})
}

// completeChat 最后一问收到回答后执行分析并持久化
// 分析失败时不写任何记录、不更新状态，让用户重试本轮
func (cc *ChatController) completeChat(c *gin.Context, state *models.ChatState) {
	result, err := cc.chatService.AnalyzeTranscript(c.Request.Context(), state.History)
	if err != nil {
		if errors.Is(err, services.ErrAnalysisParse) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "분석 결과를 해석하지 못했습니다. 다시 시도해 주세요."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "분석 서비스에 연결하지 못했습니다. 다시 시도해 주세요."})
		return
	}

	closing := "모든 질문이 끝났습니다. 당신의 내적욕망 분석이 완료되었습니다."
	state.History = append(state.History, models.ChatMessage{Role: "assistant", Content: closing})

	historyJSON, err := json.Marshal(state.History)
	if err != nil {
		config.Logger.Errorw("序列化对话记录失败", "error", err, "responseId", state.ResponseID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "결과를 저장하지 못했습니다."})
		return
	}
	analysisJSON, err := json.Marshal(result.DesireAnalysis)
	if err != nil {
		config.Logger.Errorw("序列化分析结果失败", "error", err, "responseId", state.ResponseID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "결과를 저장하지 못했습니다."})
		return
	}

	session := models.ChatSession{
		ID:             state.ResponseID,
		ChatResponses:  string(historyJSON),
		Analysis:       string(analysisJSON),
		DesireSentence: result.DesireSentence,
	}
	if err := config.DB.Create(&session).Error; err != nil {
		config.Logger.Errorw("保存对话检测结果失败", "error", err, "responseId", state.ResponseID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "결과를 저장하지 못했습니다."})
		return
	}

	// 标记完成，过期前拒绝重复推进
	state.CurrentQuestion = services.QuestionComplete
	state.IsComplete = true
	if err := cc.states.Save(c.Request.Context(), state); err != nil {
		config.Logger.Errorw("保存完成状态失败", "error", err, "responseId", state.ResponseID)
	}

	analysis := result.DesireAnalysis
	c.JSON(http.StatusOK, models.ChatContinueResponse{
		ResponseID:      state.ResponseID,
		Message:         closing,
		CurrentQuestion: services.QuestionComplete,
		ChatHistory:     state.History,
		IsComplete:      true,
		Analysis:        &analysis,
		DesireSentence:  result.DesireSentence,
	})
}

// GetChatResults 查询对话检测结果
func (cc *ChatController) GetChatResults(c *gin.Context) {
	responseID := c.Param("responseId")

	var session models.ChatSession
	if err := config.DB.Where("id = ?", responseID).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "결과를 찾을 수 없습니다."})
			return
		}
		config.Logger.Errorw("查询对话检测结果失败", "error", err, "responseId", responseID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "결과를 불러오지 못했습니다."})
		return
	}

	var history []models.ChatMessage
	if err := json.Unmarshal([]byte(session.ChatResponses), &history); err != nil {
		config.Logger.Errorw("解析对话记录失败", "error", err, "responseId", responseID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "결과를 불러오지 못했습니다."})
		return
	}
	var analysis models.DesireAnalysis
	if err := json.Unmarshal([]byte(session.Analysis), &analysis); err != nil {
		config.Logger.Errorw("解析分析结果失败", "error", err, "responseId", responseID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "결과를 불러오지 못했습니다."})
		return
	}

	c.JSON(http.StatusOK, models.ChatResultResponse{
		ResponseID:      session.ID,
		ChatResponses:   history,
		BackendAnalysis: analysis,
		DesireSentence:  session.DesireSentence,
		CreatedAt:       session.CreatedAt,
	})
}
