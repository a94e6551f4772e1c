package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tree_habitat/internal/apperrors"
	"tree_habitat/internal/models"
	"tree_habitat/internal/responses"
	"tree_habitat/internal/services"
	"tree_habitat/internal/utils"
)

// The insect routes keep the original surface: bare entities on success and
// per-route error texts, rather than the tree routes' response envelope.
type InsectHandler struct {
	insectService *services.InsectService
}

func NewInsectHandler(insectService *services.InsectService) *InsectHandler {
	return &InsectHandler{insectService: insectService}
}

// ListInsects handles GET /insects
func (h *InsectHandler) ListInsects(c *gin.Context) {
	insects, err := h.insectService.List(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Could not list insects")
		return
	}

	if insects == nil {
		insects = []models.InsectSummary{}
	}
	c.JSON(http.StatusOK, insects)
}

// GetInsect handles GET /insects/:id
func (h *InsectHandler) GetInsect(c *gin.Context) {
	idParam := c.Param("id")
	details := fmt.Sprintf("Insect does not exist with id %s.", idParam)

	id, err := utils.ParseID(idParam)
	if err != nil {
		responses.NotFound(c, "Invalid Search", details)
		return
	}

	insect, err := h.insectService.Get(c.Request.Context(), id)
	if err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			responses.NotFound(c, "Invalid Search", details)
			return
		}
		responses.Error(c, err, "Could not find insect")
		return
	}

	c.JSON(http.StatusOK, insect)
}

// CreateInsect handles POST /insects
func (h *InsectHandler) CreateInsect(c *gin.Context) {
	var req services.InsectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Unprocessable(c, "Invalid request data", "Missing field(s) or Invalid input data type.", nil)
		return
	}

	insect, err := h.insectService.Create(c.Request.Context(), req)
	if err != nil {
		var validation *apperrors.ValidationError
		if errors.As(err, &validation) {
			responses.Unprocessable(c, "Invalid request data", "Missing field(s) or Invalid input data type.", validation.Errors)
			return
		}
		responses.Error(c, err, "Could not create new insect")
		return
	}

	c.JSON(http.StatusCreated, insect)
}

// UpdateInsect handles PUT and PATCH /insects/:id
func (h *InsectHandler) UpdateInsect(c *gin.Context) {
	idParam := c.Param("id")

	id, err := utils.ParseID(idParam)
	if err != nil {
		responses.NotFound(c, "Invalid id", fmt.Sprintf("Insect not found with id %s", idParam))
		return
	}

	var req services.InsectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Unprocessable(c, "Invalid request data", "Missing field(s) or Invalid input data type.", nil)
		return
	}

	insect, err := h.insectService.Update(c.Request.Context(), id, req)
	if err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			responses.NotFound(c, "Invalid id", fmt.Sprintf("Insect not found with id %d", id))
			return
		}
		responses.Error(c, err, "Invalid request data")
		return
	}

	c.JSON(http.StatusOK, insect)
}

// DeleteInsect handles DELETE /insects/:id
func (h *InsectHandler) DeleteInsect(c *gin.Context) {
	idParam := c.Param("id")

	id, err := utils.ParseID(idParam)
	if err != nil {
		responses.NotFound(c, "Invalid id", fmt.Sprintf("Insect not found with id %s", idParam))
		return
	}

	if err := h.insectService.Delete(c.Request.Context(), id); err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			responses.NotFound(c, "Invalid id", fmt.Sprintf("Insect not found with id %d", id))
			return
		}
		responses.Error(c, err, "Could not delete insect")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Successfully deleted insect with id %d", id)})
}

// SearchInsects handles GET /insects/search/:name. Zero matches is a 404, so
// the caller can tell an empty search from a bad route.
func (h *InsectHandler) SearchInsects(c *gin.Context) {
	name := c.Param("name")

	insects, err := h.insectService.Search(c.Request.Context(), name)
	if err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			responses.NotFound(c, "Invalid search", fmt.Sprintf("No insects found with the keywords %s", name))
			return
		}
		responses.Error(c, err, "Could not search insects")
		return
	}

	c.JSON(http.StatusOK, insects)
}

// ListInsectsWithTrees handles GET /insects-trees
func (h *InsectHandler) ListInsectsWithTrees(c *gin.Context) {
	insects, err := h.insectService.ListWithTrees(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Could not list insects with trees")
		return
	}

	if insects == nil {
		insects = []models.InsectWithTrees{}
	}
	c.JSON(http.StatusOK, insects)
}
