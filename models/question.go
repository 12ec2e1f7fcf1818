package models

import (
	"time"
)

// Question 检测问题模型
type Question struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TraitID      uint      `gorm:"index;not null" json:"trait_id"`
	QuestionText string    `gorm:"type:text;not null" json:"question_text"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
