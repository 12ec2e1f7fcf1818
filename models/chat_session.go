package models

import (
	"time"
)

// ChatSession 内在欲望检测的最终记录，仅在7轮问答全部完成后写入
type ChatSession struct {
	ID             string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	ChatResponses  string    `gorm:"type:json;not null" json:"-"`
	Analysis       string    `gorm:"type:json;not null" json:"-"`
	DesireSentence string    `gorm:"type:text" json:"desire_sentence"`
	CreatedAt      time.Time `json:"created_at"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

// ChatMessage 对话中的一条消息
type ChatMessage struct {
	Role    string `json:"role"` // user, assistant
	Content string `json:"content"`
}

// ChatState 进行中会话的服务端状态，存放在 Redis，带过期时间
type ChatState struct {
	ResponseID      string        `json:"responseId"`
	CurrentQuestion string        `json:"currentQuestion"` // Q1..Q7 或 COMPLETE
	History         []ChatMessage `json:"history"`
	IsComplete      bool          `json:"isComplete"`
}

// DesireAnalysis 分析结果的7个定性字段
type DesireAnalysis struct {
	Value              string   `json:"value"`
	Autonomy           string   `json:"autonomy"`
	Competence         string   `json:"competence"`
	Relatedness        string   `json:"relatedness"`
	SelfActualization  string   `json:"self_actualization"`
	FlowKeywords       []string `json:"flow_keywords"`
	AbstractMotivation string   `json:"abstract_motivation"`
}

// ChatAnalysisResult 分析接口返回的完整结构（分析字段 + 欲望句子）
type ChatAnalysisResult struct {
	DesireAnalysis
	DesireSentence string `json:"desire_sentence"`
}
