package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// DeepseekClient 持有两个模型句柄：
// DsChat 生成对话文案，DsAnalysis 以 JSON 模式返回结构化分析
type DeepseekClient struct {
	DsChat     llms.Model
	DsAnalysis llms.Model
}

func NewDeepseekClient(apiKey, apiEndpoint string) (*DeepseekClient, error) {
	chat, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel("deepseek/deepseek-v3"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Deepseek chat client: %w", err)
	}

	analysis, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel("deepseek/deepseek-v3"),
		openai.WithResponseFormat(&openai.ResponseFormat{
			Type: "json_object",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Deepseek analysis client: %w", err)
	}

	return &DeepseekClient{
		DsChat:     chat,
		DsAnalysis: analysis,
	}, nil
}
