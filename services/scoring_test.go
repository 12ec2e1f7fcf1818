package services

import (
	"PersonaGo/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTraitScoresUniform(t *testing.T) {
	questionTraits := map[uint]uint{1: 1, 2: 1}

	cases := []struct {
		score int
		want  float64
	}{
		{1, 100.0 * 1 / 7},
		{4, 100.0 * 4 / 7},
		{7, 100.0},
	}

	for _, tc := range cases {
		responses := []models.QuestionResponse{
			{QuestionID: 1, Score: tc.score},
			{QuestionID: 2, Score: tc.score},
		}
		scores, err := ComputeTraitScores(responses, questionTraits)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, scores[1], 0.0001)
	}
}

func TestComputeTraitScoresGroupsByTrait(t *testing.T) {
	questionTraits := map[uint]uint{1: 1, 2: 1, 3: 2}
	responses := []models.QuestionResponse{
		{QuestionID: 1, Score: 3},
		{QuestionID: 2, Score: 5},
		{QuestionID: 3, Score: 7},
	}

	scores, err := ComputeTraitScores(responses, questionTraits)
	require.NoError(t, err)

	// 特质1：平均4分；特质2：7分满分
	assert.InDelta(t, 100.0*4/7, scores[1], 0.0001)
	assert.InDelta(t, 100.0, scores[2], 0.0001)
}

func TestComputeTraitScoresAbsentTraitOmitted(t *testing.T) {
	questionTraits := map[uint]uint{1: 1, 3: 2}
	responses := []models.QuestionResponse{
		{QuestionID: 1, Score: 4},
	}

	scores, err := ComputeTraitScores(responses, questionTraits)
	require.NoError(t, err)

	assert.Contains(t, scores, uint(1))
	assert.NotContains(t, scores, uint(2))
	assert.Len(t, scores, 1)
}

func TestComputeTraitScoresDuplicateQuestionsBothCount(t *testing.T) {
	questionTraits := map[uint]uint{1: 1}
	responses := []models.QuestionResponse{
		{QuestionID: 1, Score: 1},
		{QuestionID: 1, Score: 7},
	}

	scores, err := ComputeTraitScores(responses, questionTraits)
	require.NoError(t, err)

	// 重复作答全部计入平均：(1+7)/2 = 4
	assert.InDelta(t, 100.0*4/7, scores[1], 0.0001)
}

func TestComputeTraitScoresUnknownQuestion(t *testing.T) {
	questionTraits := map[uint]uint{1: 1}
	responses := []models.QuestionResponse{
		{QuestionID: 1, Score: 4},
		{QuestionID: 99, Score: 4},
	}

	_, err := ComputeTraitScores(responses, questionTraits)
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}
