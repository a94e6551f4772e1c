package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tree_habitat/internal/responses"
	"tree_habitat/internal/services"
)

type AssociationHandler struct {
	associationService *services.AssociationService
}

func NewAssociationHandler(associationService *services.AssociationService) *AssociationHandler {
	return &AssociationHandler{associationService: associationService}
}

// Associate handles POST /associate-tree-insect
func (h *AssociationHandler) Associate(c *gin.Context) {
	var req services.AssociateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Could not create association", err.Error())
		return
	}

	result, err := h.associationService.Associate(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err, "Could not create association")
		return
	}

	responses.Success(c, http.StatusOK, result, "Successfully recorded information")
}
