package services

import (
	"errors"
)

// 业务错误，由 controller 层翻译成 HTTP 状态码
var (
	// ErrUnknownQuestion 提交的作答里包含不存在的问题ID
	ErrUnknownQuestion = errors.New("unknown question id")

	// ErrSessionNotFound 对话状态不存在或已过期
	ErrSessionNotFound = errors.New("chat session not found")

	// ErrSessionComplete 对话已完成，不能再推进
	ErrSessionComplete = errors.New("chat session already complete")

	// ErrAnalysisParse 分析接口返回了不符合约定结构的内容
	ErrAnalysisParse = errors.New("analysis response parse failed")

	// ErrAnalysisUnavailable 分析接口重试耗尽仍不可用
	ErrAnalysisUnavailable = errors.New("analysis service unavailable")
)
