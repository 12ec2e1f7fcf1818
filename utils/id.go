package utils

import (
	"github.com/google/uuid"
)

// GenerateID 生成检测记录和对话会话使用的不透明ID
func GenerateID() string {
	return uuid.New().String()
}
