package routes

import (
	"PersonaGo/config"
	"PersonaGo/controllers"
	"PersonaGo/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, client *services.DeepseekClient, conf config.Config) {
	chatService := services.NewChatService(client)
	chatController := controllers.NewChatController(chatService, services.NewRedisChatStateStore(conf.GetChatSessionTTL()))
	traitController := controllers.TraitController{}
	questionController := controllers.QuestionController{}
	resultTypeController := controllers.ResultTypeController{}
	surveyController := controllers.SurveyController{}

	// 检测相关接口
	api := r.Group("/api")
	{
		api.GET("/traits", traitController.GetTraits)
		api.GET("/questions", questionController.GetActiveQuestions)
		api.GET("/result-types", resultTypeController.GetResultTypes)
		api.POST("/submit-test", surveyController.SubmitTest)
		api.GET("/results/:responseId", surveyController.GetResults)
		api.POST("/ai-chat/start", chatController.StartChat)
		api.POST("/ai-chat/continue", chatController.ContinueChat)
		api.GET("/ai-chat/results/:responseId", chatController.GetChatResults)
	}

	// 管理接口
	admin := r.Group("/api/admin")
	{
		admin.GET("/questions", questionController.GetAllQuestions)
		admin.POST("/questions", questionController.CreateQuestion)
		admin.PUT("/questions/:id", questionController.UpdateQuestion)
		admin.DELETE("/questions/:id", questionController.DeleteQuestion)
		admin.PUT("/result-types/:id", resultTypeController.UpdateResultType)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
