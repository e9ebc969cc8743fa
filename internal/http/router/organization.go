package router

import (
	"github.com/gin-gonic/gin"

	"github.com/jacksonlmp/taskflow/internal/http/handler"
)

func OrganizationRouter(rg *gin.RouterGroup, h *handler.OrganizationHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	// Registered before :id so gin never treats "current" as an id.
	rg.GET("/current", h.Current)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.GET("/:id/members", h.Members)
}
