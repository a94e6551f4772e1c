package routes

import (
	"github.com/gin-gonic/gin"

	"tree_habitat/internal/handlers"
)

type AssociationRoutes struct {
	treeHandler        *handlers.TreeHandler
	insectHandler      *handlers.InsectHandler
	associationHandler *handlers.AssociationHandler
}

func NewAssociationRoutes(
	treeHandler *handlers.TreeHandler,
	insectHandler *handlers.InsectHandler,
	associationHandler *handlers.AssociationHandler,
) *AssociationRoutes {
	return &AssociationRoutes{
		treeHandler:        treeHandler,
		insectHandler:      insectHandler,
		associationHandler: associationHandler,
	}
}

func (r *AssociationRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/trees-insects", r.treeHandler.ListTreesWithInsects)
	router.GET("/insects-trees", r.insectHandler.ListInsectsWithTrees)
	router.POST("/associate-tree-insect", r.associationHandler.Associate)
}
