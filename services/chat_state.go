package services

import (
	"PersonaGo/config"
	"PersonaGo/models"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ChatStateStore 进行中对话状态的存取接口
type ChatStateStore interface {
	Save(ctx context.Context, state *models.ChatState) error
	Load(ctx context.Context, responseID string) (*models.ChatState, error)
}

const chatStateKeyPrefix = "chat_state:"

// RedisChatStateStore 把对话状态以 JSON 存进 Redis，带过期时间
// 完成的会话在过期前保留完成标记，用于拒绝重复推进
type RedisChatStateStore struct {
	TTL time.Duration
}

func NewRedisChatStateStore(ttl time.Duration) *RedisChatStateStore {
	return &RedisChatStateStore{TTL: ttl}
}

func (s *RedisChatStateStore) Save(ctx context.Context, state *models.ChatState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	key := chatStateKeyPrefix + state.ResponseID
	if err := config.RedisClient.Set(ctx, key, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("保存对话状态失败: %w", err)
	}
	return nil
}

func (s *RedisChatStateStore) Load(ctx context.Context, responseID string) (*models.ChatState, error) {
	key := chatStateKeyPrefix + responseID
	data, err := config.RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("读取对话状态失败: %w", err)
	}

	var state models.ChatState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("解析对话状态失败: %w", err)
	}
	return &state, nil
}
