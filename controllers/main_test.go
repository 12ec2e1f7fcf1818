package controllers

import (
	"PersonaGo/config"
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Logger = zap.NewNop().Sugar()
	os.Exit(m.Run())
}

// setupTestDB 用内存sqlite替换全局DB，并写入种子数据
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateDB(db))
	require.NoError(t, config.SeedDB(db))

	config.DB = db
}

// newSurveyRouter 注册量表检测与管理接口
func newSurveyRouter() *gin.Engine {
	r := gin.New()
	traitController := TraitController{}
	questionController := QuestionController{}
	resultTypeController := ResultTypeController{}
	surveyController := SurveyController{}

	r.GET("/api/traits", traitController.GetTraits)
	r.GET("/api/questions", questionController.GetActiveQuestions)
	r.GET("/api/result-types", resultTypeController.GetResultTypes)
	r.POST("/api/submit-test", surveyController.SubmitTest)
	r.GET("/api/results/:responseId", surveyController.GetResults)
	r.GET("/api/admin/questions", questionController.GetAllQuestions)
	r.POST("/api/admin/questions", questionController.CreateQuestion)
	r.PUT("/api/admin/questions/:id", questionController.UpdateQuestion)
	r.DELETE("/api/admin/questions/:id", questionController.DeleteQuestion)
	r.PUT("/api/admin/result-types/:id", resultTypeController.UpdateResultType)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
