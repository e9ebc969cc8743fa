package router

import (
	"github.com/gin-gonic/gin"

	"github.com/jacksonlmp/taskflow/internal/http/handler"
)

func TaskRouter(rg *gin.RouterGroup, h *handler.TaskHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.PATCH("/:id", h.Patch)
	rg.DELETE("/:id", h.Delete)
}
