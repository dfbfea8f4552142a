// Package qa wires the question and answer handlers into a gin router.
package qa

import (
	"qahub/internal/common/http/middleware"
	"qahub/internal/qa/controller"
	"qahub/internal/qa/repository"
	"qahub/internal/qa/service"
	pkgerrors "qahub/pkg/errors"
	"qahub/pkg/utils/response"

	"github.com/gin-gonic/gin"
)

// RouterConfig holds the HTTP policy knobs of the router.
type RouterConfig struct {
	CORS middleware.CORSConfig
}

// NewRouter builds the HTTP handler over store. Unknown routes and methods
// are answered through the same error mapping as handler failures.
func NewRouter(cfg RouterConfig, store *repository.Store) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.TraceContextMiddleware())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(cfg.CORS))

	questionController := controller.NewQuestionController(service.NewQuestionService(store.Questions()))
	questions := router.Group("/questions")
	questions.GET("", questionController.List)
	questions.POST("", questionController.Create)
	questions.GET("/:id", questionController.Get)
	questions.PUT("/:id", questionController.Update)
	questions.DELETE("/:id", questionController.Delete)

	answerController := controller.NewAnswerController(service.NewAnswerService(store.Answers()))
	router.POST("/answers", answerController.Create)

	notFound := func(c *gin.Context) {
		response.Error(c, pkgerrors.New(pkgerrors.RouteNotFound))
	}
	router.NoRoute(notFound)
	router.NoMethod(notFound)

	return router
}
