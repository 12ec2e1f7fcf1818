package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type questionRow struct {
	ID        uint   `json:"id"`
	TraitID   uint   `json:"trait_id"`
	IsActive  bool   `json:"is_active"`
	TraitName string `json:"trait_name"`
}

func listQuestions(t *testing.T, r *gin.Engine, path string) []questionRow {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []questionRow
	decodeBody(t, w, &rows)
	return rows
}

func TestGetActiveQuestionsJoinsTraitName(t *testing.T) {
	setupTestDB(t)
	r := newSurveyRouter()

	rows := listQuestions(t, r, "/api/questions")
	require.Len(t, rows, 10)
	for _, row := range rows {
		assert.True(t, row.IsActive)
		assert.NotEmpty(t, row.TraitName)
	}
}

func TestDeactivatedQuestionHiddenFromPublicList(t *testing.T) {
	setupTestDB(t)
	r := newSurveyRouter()

	inactive := false
	body := map[string]interface{}{
		"trait_id":      1,
		"question_text": "나는 새로운 사람들과 만나는 것을 즐긴다.",
		"is_active":     &inactive,
	}
	w := doJSON(t, r, http.MethodPut, "/api/admin/questions/1", body)
	require.Equal(t, http.StatusOK, w.Code)

	public := listQuestions(t, r, "/api/questions")
	assert.Len(t, public, 9)
	for _, row := range public {
		assert.NotEqual(t, uint(1), row.ID)
	}

	// 管理列表仍然可见
	admin := listQuestions(t, r, "/api/admin/questions")
	assert.Len(t, admin, 10)
	found := false
	for _, row := range admin {
		if row.ID == 1 {
			found = true
			assert.False(t, row.IsActive)
		}
	}
	assert.True(t, found)
}

func TestCreateQuestion(t *testing.T) {
	setupTestDB(t)
	r := newSurveyRouter()

	body := map[string]interface{}{
		"trait_id":      2,
		"question_text": "나는 사소한 일에도 긴장하는 편이다.",
	}
	w := doJSON(t, r, http.MethodPost, "/api/admin/questions", body)
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		ID      uint   `json:"id"`
		Message string `json:"message"`
	}
	decodeBody(t, w, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "질문이 추가되었습니다.", created.Message)

	// 新问题默认启用，出现在公开列表里
	rows := listQuestions(t, r, "/api/questions")
	assert.Len(t, rows, 11)
}

func TestCreateQuestionUnknownTrait(t *testing.T) {
	setupTestDB(t)
	r := newSurveyRouter()

	body := map[string]interface{}{
		"trait_id":      99,
		"question_text": "어느 특질에도 속하지 않는 질문",
	}
	w := doJSON(t, r, http.MethodPost, "/api/admin/questions", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateQuestionNotFound(t *testing.T) {
	setupTestDB(t)
	r := newSurveyRouter()

	active := true
	body := map[string]interface{}{
		"trait_id":      1,
		"question_text": "수정된 질문",
		"is_active":     &active,
	}
	w := doJSON(t, r, http.MethodPut, "/api/admin/questions/999", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteQuestion(t *testing.T) {
	setupTestDB(t)
	r := newSurveyRouter()

	w := doJSON(t, r, http.MethodDelete, "/api/admin/questions/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	admin := listQuestions(t, r, "/api/admin/questions")
	assert.Len(t, admin, 9)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/questions/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteQuestionKeepsHistoricalResults(t *testing.T) {
	setupTestDB(t)
	r := newSurveyRouter()

	w := doJSON(t, r, http.MethodPost, "/api/submit-test", allSevens())
	require.Equal(t, http.StatusOK, w.Code)
	var submitted submitResult
	decodeBody(t, w, &submitted)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/questions/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// 删除问题后历史结果仍然可读，得分不变
	w = doJSON(t, r, http.MethodGet, "/api/results/"+submitted.ResponseID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var result surveyResult
	decodeBody(t, w, &result)
	assert.Len(t, result.Responses, 10)
}

func TestUpdateResultType(t *testing.T) {
	setupTestDB(t)
	r := newSurveyRouter()

	min, max := 0.0, 25.0
	body := map[string]interface{}{
		"name":           "매우 낮음",
		"description":    "해당 특질이 매우 낮은 수준",
		"min_percentage": &min,
		"max_percentage": &max,
	}
	w := doJSON(t, r, http.MethodPut, "/api/admin/result-types/1", body)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/result-types", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resultTypes []struct {
		ID            uint    `json:"id"`
		MaxPercentage float64 `json:"max_percentage"`
	}
	decodeBody(t, w, &resultTypes)
	for _, rt := range resultTypes {
		if rt.ID == 1 {
			assert.InDelta(t, 25.0, rt.MaxPercentage, 0.0001)
		}
	}
}

func TestUpdateResultTypeInvalidRange(t *testing.T) {
	setupTestDB(t)
	r := newSurveyRouter()

	cases := []struct{ min, max float64 }{
		{60, 40},  // min > max
		{50, 50},  // min == max
		{-5, 20},  // min < 0
		{80, 120}, // max > 100
	}
	for _, tc := range cases {
		body := map[string]interface{}{
			"name":           "보통",
			"min_percentage": &tc.min,
			"max_percentage": &tc.max,
		}
		w := doJSON(t, r, http.MethodPut, "/api/admin/result-types/3", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "min=%v max=%v", tc.min, tc.max)
	}
}

func TestUpdateResultTypeNotFound(t *testing.T) {
	setupTestDB(t)
	r := newSurveyRouter()

	min, max := 0.0, 10.0
	body := map[string]interface{}{
		"name":           "없는 유형",
		"min_percentage": &min,
		"max_percentage": &max,
	}
	w := doJSON(t, r, http.MethodPut, "/api/admin/result-types/999", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
