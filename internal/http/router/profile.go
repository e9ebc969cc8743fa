package router

import (
	"github.com/gin-gonic/gin"

	"github.com/jacksonlmp/taskflow/internal/http/handler"
)

func ProfileRouter(rg *gin.RouterGroup, h *handler.ProfileHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
