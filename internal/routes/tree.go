package routes

import (
	"github.com/gin-gonic/gin"

	"tree_habitat/internal/handlers"
)

type TreeRoutes struct {
	handler *handlers.TreeHandler
}

func NewTreeRoutes(handler *handlers.TreeHandler) *TreeRoutes {
	return &TreeRoutes{handler: handler}
}

func (r *TreeRoutes) RegisterRoutes(router *gin.RouterGroup) {
	trees := router.Group("/trees")
	{
		trees.GET("", r.handler.ListTrees)
		trees.POST("", r.handler.CreateTree)
		// The static search segment must be registered before the :id wildcard.
		trees.GET("/search/:value", r.handler.SearchTrees)
		trees.GET("/:id", r.handler.GetTree)
		trees.PUT("/:id", r.handler.UpdateTree)
		trees.DELETE("/:id", r.handler.DeleteTree)
	}
}
