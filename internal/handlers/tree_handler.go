package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tree_habitat/internal/models"
	"tree_habitat/internal/responses"
	"tree_habitat/internal/services"
	"tree_habitat/internal/utils"
)

type TreeHandler struct {
	treeService *services.TreeService
}

func NewTreeHandler(treeService *services.TreeService) *TreeHandler {
	return &TreeHandler{treeService: treeService}
}

// ListTrees handles GET /trees
func (h *TreeHandler) ListTrees(c *gin.Context) {
	trees, err := h.treeService.List(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Could not list trees")
		return
	}

	if trees == nil {
		trees = []models.TreeSummary{}
	}
	c.JSON(http.StatusOK, trees)
}

// GetTree handles GET /trees/:id
func (h *TreeHandler) GetTree(c *gin.Context) {
	idParam := c.Param("id")
	message := fmt.Sprintf("Could not find tree %s", idParam)

	id, err := utils.ParseID(idParam)
	if err != nil {
		responses.NotFound(c, message, "Tree not found")
		return
	}

	tree, err := h.treeService.Get(c.Request.Context(), id)
	if err != nil {
		responses.Error(c, err, message)
		return
	}

	c.JSON(http.StatusOK, tree)
}

// CreateTree handles POST /trees
func (h *TreeHandler) CreateTree(c *gin.Context) {
	var req services.TreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Could not create new tree", err.Error())
		return
	}

	tree, err := h.treeService.Create(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err, "Could not create new tree")
		return
	}

	responses.Success(c, http.StatusOK, tree, "Successfully created new tree")
}

// UpdateTree handles PUT /trees/:id
func (h *TreeHandler) UpdateTree(c *gin.Context) {
	idParam := c.Param("id")
	message := fmt.Sprintf("Could not update tree %s", idParam)

	id, err := utils.ParseID(idParam)
	if err != nil {
		responses.NotFound(c, message, "Tree not found")
		return
	}

	var req services.TreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, message, err.Error())
		return
	}

	tree, err := h.treeService.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.Error(c, err, message)
		return
	}

	responses.Success(c, http.StatusOK, tree, "Successfully updated tree")
}

// DeleteTree handles DELETE /trees/:id
func (h *TreeHandler) DeleteTree(c *gin.Context) {
	idParam := c.Param("id")
	message := fmt.Sprintf("Could not remove tree %s", idParam)

	id, err := utils.ParseID(idParam)
	if err != nil {
		responses.NotFound(c, message, "Tree not found")
		return
	}

	if err := h.treeService.Delete(c.Request.Context(), id); err != nil {
		responses.Error(c, err, message)
		return
	}

	responses.Success(c, http.StatusOK, nil, fmt.Sprintf("Successfully removed tree %d", id))
}

// SearchTrees handles GET /trees/search/:value. No results is an empty
// array, not an error.
func (h *TreeHandler) SearchTrees(c *gin.Context) {
	trees, err := h.treeService.Search(c.Request.Context(), c.Param("value"))
	if err != nil {
		responses.Error(c, err, "Could not search trees")
		return
	}

	if trees == nil {
		trees = []models.TreeSummary{}
	}
	c.JSON(http.StatusOK, trees)
}

// ListTreesWithInsects handles GET /trees-insects
func (h *TreeHandler) ListTreesWithInsects(c *gin.Context) {
	trees, err := h.treeService.ListWithInsects(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Could not list trees with insects")
		return
	}

	if trees == nil {
		trees = []models.TreeWithInsects{}
	}
	c.JSON(http.StatusOK, trees)
}
