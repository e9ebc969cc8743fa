package router

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/jacksonlmp/taskflow/internal/http/handler"
)

// New assembles the API router. Everything under /api except the auth
// endpoints sits behind the session middleware.
func New(
	authHandler *handler.AuthHandler,
	orgHandler *handler.OrganizationHandler,
	taskHandler *handler.TaskHandler,
	profileHandler *handler.ProfileHandler,
	requireAuth gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("taskflow-api"))

	api := r.Group("/api")

	AuthRouter(api.Group("/auth"), authHandler, requireAuth)

	protected := api.Group("", requireAuth)
	OrganizationRouter(protected.Group("/organizations"), orgHandler)
	TaskRouter(protected.Group("/tasks"), taskHandler)
	ProfileRouter(protected.Group("/profiles"), profileHandler)

	return r
}
