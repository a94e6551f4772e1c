package routes

import (
	"github.com/gin-gonic/gin"

	"tree_habitat/internal/handlers"
)

type InsectRoutes struct {
	handler *handlers.InsectHandler
}

func NewInsectRoutes(handler *handlers.InsectHandler) *InsectRoutes {
	return &InsectRoutes{handler: handler}
}

func (r *InsectRoutes) RegisterRoutes(router *gin.RouterGroup) {
	insects := router.Group("/insects")
	{
		insects.GET("", r.handler.ListInsects)
		insects.POST("", r.handler.CreateInsect)
		insects.GET("/search/:name", r.handler.SearchInsects)
		insects.GET("/:id", r.handler.GetInsect)
		insects.PUT("/:id", r.handler.UpdateInsect)
		insects.PATCH("/:id", r.handler.UpdateInsect)
		insects.DELETE("/:id", r.handler.DeleteInsect)
	}
}
