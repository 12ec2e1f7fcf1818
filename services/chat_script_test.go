package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatScriptSequence(t *testing.T) {
	assert.Equal(t, 7, ScriptLength())
	assert.Equal(t, "Q1", FirstQuestion().Key)
	assert.Equal(t, "Q7", LastQuestionKey())

	// Q1 到 Q7 严格依次推进
	current := FirstQuestion()
	for i := 2; i <= 7; i++ {
		next, ok := NextQuestion(current.Key)
		require.True(t, ok, "expected a question after %s", current.Key)
		assert.Equal(t, "Q"+string(rune('0'+i)), next.Key)
		assert.NotEmpty(t, next.Text)
		current = next
	}

	// 最后一问之后没有下一问
	_, ok := NextQuestion("Q7")
	assert.False(t, ok)
}

func TestNextQuestionInvalidKey(t *testing.T) {
	_, ok := NextQuestion("Q99")
	assert.False(t, ok)

	_, ok = NextQuestion(QuestionComplete)
	assert.False(t, ok)
}
