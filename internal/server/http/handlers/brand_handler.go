package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/server/http/dto"
)

// BrandHandler manages brand endpoints.
type BrandHandler struct {
	facade BrandFacade
}

// NewBrandHandler constructs BrandHandler.
func NewBrandHandler(facade BrandFacade) *BrandHandler {
	return &BrandHandler{facade: facade}
}

// Create handles POST /api/brands.
func (h *BrandHandler) Create(c *gin.Context) {
	var req dto.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	brand, err := h.facade.CreateBrand(c.Request.Context(), req.Name, CurrentActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBrandResponse(brand))
}

// Get handles GET /api/brands/:brandID.
func (h *BrandHandler) Get(c *gin.Context) {
	brandID, ok := pathID(c, "brandID")
	if !ok {
		return
	}
	brand, err := h.facade.Brand(c.Request.Context(), brandID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBrandResponse(brand))
}

// Delete handles DELETE /api/brands/:brandID.
func (h *BrandHandler) Delete(c *gin.Context) {
	brandID, ok := pathID(c, "brandID")
	if !ok {
		return
	}
	if err := h.facade.DeleteBrand(c.Request.Context(), brandID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toBrandResponse(brand *model.Brand) dto.BrandResponse {
	return dto.BrandResponse{
		ID:        brand.ID,
		Name:      brand.Name,
		CreatedAt: brand.CreatedAt,
	}
}
