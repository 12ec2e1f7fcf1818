package models

import (
	"time"
)

// SurveyResponse 量表检测结果，提交后不可变
// Responses 和 TraitScores 以 JSON 文本存储
type SurveyResponse struct {
	ID           string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Responses    string    `gorm:"type:json;not null" json:"-"`
	TraitScores  string    `gorm:"type:json;not null" json:"-"`
	ResultTypeID uint      `json:"result_type_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (SurveyResponse) TableName() string {
	return "user_responses"
}
