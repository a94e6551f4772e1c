package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tree_habitat/internal/handlers"
)

func RegisterRoutes(
	router *gin.Engine,
	treeHandler *handlers.TreeHandler,
	insectHandler *handlers.InsectHandler,
	associationHandler *handlers.AssociationHandler,
) {
	root := router.Group("")

	treeRoutes := NewTreeRoutes(treeHandler)
	treeRoutes.RegisterRoutes(root)

	insectRoutes := NewInsectRoutes(insectHandler)
	insectRoutes.RegisterRoutes(root)

	associationRoutes := NewAssociationRoutes(treeHandler, insectHandler, associationHandler)
	associationRoutes.RegisterRoutes(root)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
