package models

import (
	"fmt"
)

// QuestionResponse 单个问题的作答（7点量表）
type QuestionResponse struct {
	QuestionID uint `json:"question_id" binding:"required"`
	Score      int  `json:"score" binding:"required,min=1,max=7"`
}

// SubmitTestRequest 量表检测提交请求结构体
type SubmitTestRequest struct {
	Responses []QuestionResponse `json:"responses" binding:"required,min=1,dive"`
}

// CreateQuestionRequest 添加问题请求结构体
type CreateQuestionRequest struct {
	TraitID      uint   `json:"trait_id" binding:"required"`
	QuestionText string `json:"question_text" binding:"required"`
}

// UpdateQuestionRequest 修改问题请求结构体
type UpdateQuestionRequest struct {
	TraitID      uint   `json:"trait_id" binding:"required"`
	QuestionText string `json:"question_text" binding:"required"`
	IsActive     *bool  `json:"is_active" binding:"required"`
}

// UpdateResultTypeRequest 修改结果区间请求结构体
type UpdateResultTypeRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	MinPercentage *float64 `json:"min_percentage" binding:"required"`
	MaxPercentage *float64 `json:"max_percentage" binding:"required"`
}

// Validate 校验百分比区间：0 <= min < max <= 100
func (r *UpdateResultTypeRequest) Validate() error {
	min, max := *r.MinPercentage, *r.MaxPercentage
	if min < 0 || max > 100 {
		return fmt.Errorf("percentage must be within [0, 100]")
	}
	if min >= max {
		return fmt.Errorf("min_percentage must be less than max_percentage")
	}
	return nil
}

// ChatContinueRequest 推进对话请求结构体
// 会话状态保存在服务端，客户端只需回传会话ID和本轮回答
type ChatContinueRequest struct {
	ResponseID  string `json:"responseId" binding:"required"`
	UserMessage string `json:"userMessage" binding:"required"`
}
