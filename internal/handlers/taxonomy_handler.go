package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/services"
)

// TaxonomyHandler handles category and subcategory requests.
type TaxonomyHandler struct {
	taxonomyService services.TaxonomyServicer
	auditService    services.AuditServicer
}

// NewTaxonomyHandler creates a new TaxonomyHandler.
func NewTaxonomyHandler(taxonomyService services.TaxonomyServicer, auditService services.AuditServicer) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyService: taxonomyService, auditService: auditService}
}

// CreateCategoryRequest represents the request payload for creating a category
// or a subcategory.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// GetTaxonomy handles retrieving the full taxonomy.
// @Summary     Get taxonomy
// @Description List every category with its subcategories in insertion order
// @Tags        taxonomy
// @Produce     json
// @Security    APIKeyAuth
// @Success     200 {array}  models.Category "Taxonomy"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /taxonomy [get]
func (h *TaxonomyHandler) GetTaxonomy(c *gin.Context) {
	categories, err := h.taxonomyService.GetTaxonomy()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategory handles appending a category.
// @Summary     Create a category
// @Description Append a category to the expense taxonomy
// @Tags        taxonomy
// @Accept      json
// @Produce     json
// @Security    APIKeyAuth
// @Param       request body CreateCategoryRequest true "Category name"
// @Success     201 {object} models.Category "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate category"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [post]
func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.taxonomyService.CreateCategory(req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor(c), "CREATE_CATEGORY", "category", category.ID, c.ClientIP(),
		map[string]any{"name": category.Name})

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// DeleteCategory handles removing an empty category.
// @Summary     Delete category
// @Description Delete a category that has no subcategories
// @Tags        taxonomy
// @Produce     json
// @Security    APIKeyAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} MessageResponse "Category deleted"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Category has subcategories"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id} [delete]
func (h *TaxonomyHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.taxonomyService.DeleteCategory(categoryID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor(c), "DELETE_CATEGORY", "category", categoryID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// CreateSubcategory handles appending a subcategory to a category.
// @Summary     Create a subcategory
// @Description Append a subcategory to an existing category
// @Tags        taxonomy
// @Accept      json
// @Produce     json
// @Security    APIKeyAuth
// @Param       id      path string                true "Category ID"
// @Param       request body CreateCategoryRequest true "Subcategory name"
// @Success     201 {object} models.Subcategory "Subcategory created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Duplicate subcategory"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id}/subcategories [post]
func (h *TaxonomyHandler) CreateSubcategory(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	subcategory, err := h.taxonomyService.CreateSubcategory(categoryID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor(c), "CREATE_SUBCATEGORY", "subcategory", subcategory.ID, c.ClientIP(),
		map[string]any{"category_id": categoryID, "name": subcategory.Name})

	c.JSON(http.StatusCreated, gin.H{"subcategory": subcategory})
}

// DeleteSubcategory handles removing a subcategory.
// @Summary     Delete subcategory
// @Description Delete a subcategory. Historical transactions keep their stored names.
// @Tags        taxonomy
// @Produce     json
// @Security    APIKeyAuth
// @Param       id path string true "Subcategory ID"
// @Success     200 {object} MessageResponse "Subcategory deleted"
// @Failure     400 {object} ErrorResponse "Invalid subcategory ID"
// @Failure     404 {object} ErrorResponse "Subcategory not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subcategories/{id} [delete]
func (h *TaxonomyHandler) DeleteSubcategory(c *gin.Context) {
	subcategoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.taxonomyService.DeleteSubcategory(subcategoryID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor(c), "DELETE_SUBCATEGORY", "subcategory", subcategoryID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted successfully"})
}
