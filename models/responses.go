package models

import "time"

// QuestionRow 问题列表响应结构体（联表带出特质名）
type QuestionRow struct {
	ID           uint      `json:"id"`
	TraitID      uint      `json:"trait_id"`
	QuestionText string    `json:"question_text"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	TraitName    string    `json:"trait_name"`
}

// SubmitTestResponse 量表检测提交响应结构体
type SubmitTestResponse struct {
	ResponseID  string           `json:"responseId"`
	TraitScores map[uint]float64 `json:"traitScores"`
	Message     string           `json:"message"`
}

// TraitResult 单个特质的得分结果（未作答的特质得分为0）
type TraitResult struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// SurveyResultResponse 量表检测结果查询响应结构体
type SurveyResultResponse struct {
	ResponseID   string             `json:"responseId"`
	TraitResults []TraitResult      `json:"traitResults"`
	Responses    []QuestionResponse `json:"responses"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// ChatStartResponse 开始对话响应结构体
type ChatStartResponse struct {
	ResponseID      string `json:"responseId"`
	Message         string `json:"message"`
	CurrentQuestion string `json:"currentQuestion"`
}

// ChatContinueResponse 推进对话响应结构体
// 完成时附带分析结果和欲望句子
type ChatContinueResponse struct {
	ResponseID      string          `json:"responseId"`
	Message         string          `json:"message"`
	CurrentQuestion string          `json:"currentQuestion"`
	ChatHistory     []ChatMessage   `json:"chatHistory"`
	IsComplete      bool            `json:"isComplete"`
	Analysis        *DesireAnalysis `json:"analysis,omitempty"`
	DesireSentence  string          `json:"desireSentence,omitempty"`
}

// ChatResultResponse 对话检测结果查询响应结构体
type ChatResultResponse struct {
	ResponseID      string         `json:"responseId"`
	ChatResponses   []ChatMessage  `json:"chatResponses"`
	BackendAnalysis DesireAnalysis `json:"backendAnalysis"`
	DesireSentence  string         `json:"desireSentence"`
	CreatedAt       time.Time      `json:"createdAt"`
}
