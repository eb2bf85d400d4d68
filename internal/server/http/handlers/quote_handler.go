package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/server/http/dto"
)

// QuoteHandler manages quote lifecycle endpoints.
type QuoteHandler struct {
	facade QuoteFacade
}

// NewQuoteHandler constructs QuoteHandler.
func NewQuoteHandler(facade QuoteFacade) *QuoteHandler {
	return &QuoteHandler{facade: facade}
}

// Create handles POST /api/quotes.
func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	quote, err := h.facade.CreateQuote(c.Request.Context(), req.BrandID, toQuoteItems(req.Items), req.Currency, req.ValidUntil, CurrentActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toQuoteResponse(quote))
}

// Get handles GET /api/quotes/:quoteID.
func (h *QuoteHandler) Get(c *gin.Context) {
	quoteID, ok := pathID(c, "quoteID")
	if !ok {
		return
	}
	quote, err := h.facade.Quote(c.Request.Context(), quoteID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// Update handles PUT /api/quotes/:quoteID.
func (h *QuoteHandler) Update(c *gin.Context) {
	quoteID, ok := pathID(c, "quoteID")
	if !ok {
		return
	}
	var req dto.QuoteUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	quote, err := h.facade.UpdateQuote(c.Request.Context(), quoteID, toQuoteItems(req.Items), req.ValidUntil, CurrentActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// Accept handles POST /api/quotes/:quoteID/accept.
func (h *QuoteHandler) Accept(c *gin.Context) {
	quoteID, ok := pathID(c, "quoteID")
	if !ok {
		return
	}
	var req dto.AcceptQuoteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
	}

	order, err := h.facade.AcceptQuote(c.Request.Context(), quoteID, req.Deadlines, CurrentActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// Decline handles POST /api/quotes/:quoteID/decline.
func (h *QuoteHandler) Decline(c *gin.Context) {
	quoteID, ok := pathID(c, "quoteID")
	if !ok {
		return
	}
	if err := h.facade.DeclineQuote(c.Request.Context(), quoteID, CurrentActorID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Expire handles POST /api/quotes/:quoteID/expire.
func (h *QuoteHandler) Expire(c *gin.Context) {
	quoteID, ok := pathID(c, "quoteID")
	if !ok {
		return
	}
	if err := h.facade.ExpireQuote(c.Request.Context(), quoteID, CurrentActorID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// ListByBrand handles GET /api/brands/:brandID/quotes.
func (h *QuoteHandler) ListByBrand(c *gin.Context) {
	brandID, ok := pathID(c, "brandID")
	if !ok {
		return
	}
	quotes, err := h.facade.QuotesByBrand(c.Request.Context(), brandID)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(quotes) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.QuoteResponse, 0, len(quotes))
	for i := range quotes {
		response = append(response, toQuoteResponse(&quotes[i]))
	}
	c.JSON(http.StatusOK, response)
}

func toQuoteItems(items []dto.QuoteItemRequest) []model.QuoteItem {
	out := make([]model.QuoteItem, 0, len(items))
	for _, item := range items {
		out = append(out, model.QuoteItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return out
}

func toQuoteResponse(quote *model.Quote) dto.QuoteResponse {
	items := make([]dto.QuoteItemResponse, 0, len(quote.Items))
	for _, item := range quote.Items {
		items = append(items, dto.QuoteItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		})
	}
	return dto.QuoteResponse{
		ID:         quote.ID,
		BrandID:    quote.BrandID,
		Status:     string(quote.Status),
		Currency:   quote.Currency,
		TotalPrice: quote.TotalPrice,
		ValidUntil: quote.ValidUntil,
		Items:      items,
		CreatedAt:  quote.CreatedAt,
		AcceptedAt: quote.AcceptedAt,
	}
}
