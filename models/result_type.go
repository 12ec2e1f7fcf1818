package models

import (
	"time"
)

// ResultType 结果区间模型，按百分比范围给分数定性
type ResultType struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(50);not null" json:"name"`
	Description   string    `gorm:"type:varchar(255)" json:"description"`
	MinPercentage float64   `gorm:"not null" json:"min_percentage"`
	MaxPercentage float64   `gorm:"not null" json:"max_percentage"`
	CreatedAt     time.Time `json:"created_at"`
}

func (ResultType) TableName() string {
	return "result_types"
}
