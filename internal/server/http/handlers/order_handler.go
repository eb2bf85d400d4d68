package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/server/http/dto"
)

// OrderHandler manages order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Get handles GET /api/orders/:orderID.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := pathID(c, "orderID")
	if !ok {
		return
	}
	order, err := h.facade.Order(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// AssignFactory handles POST /api/orders/:orderID/factory.
func (h *OrderHandler) AssignFactory(c *gin.Context) {
	orderID, ok := pathID(c, "orderID")
	if !ok {
		return
	}
	var req dto.AssignFactoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.AssignFactory(c.Request.Context(), orderID, req.FactoryID, req.Deadline, CurrentActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// UpdateStatus handles POST /api/orders/:orderID/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := pathID(c, "orderID")
	if !ok {
		return
	}
	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), orderID, model.OrderStatus(req.Status), CurrentActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// UpdateItemStatus handles POST /api/orders/:orderID/items/:itemID/status.
func (h *OrderHandler) UpdateItemStatus(c *gin.Context) {
	orderID, ok := pathID(c, "orderID")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}
	var req dto.OrderItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item, err := h.facade.UpdateOrderItemStatus(c.Request.Context(), orderID, itemID, model.OrderItemStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderItemResponse(*item))
}

// ListByBrand handles GET /api/brands/:brandID/orders.
func (h *OrderHandler) ListByBrand(c *gin.Context) {
	brandID, ok := pathID(c, "brandID")
	if !ok {
		return
	}
	orders, err := h.facade.OrdersByBrand(c.Request.Context(), brandID)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, response)
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, toOrderItemResponse(item))
	}
	return dto.OrderResponse{
		ID:          order.ID,
		QuoteID:     order.QuoteID,
		BrandID:     order.BrandID,
		FactoryID:   order.FactoryID,
		Status:      string(order.Status),
		TotalPrice:  order.TotalPrice,
		Deadline:    order.Deadline,
		Items:       items,
		CreatedAt:   order.CreatedAt,
		DeliveredAt: order.DeliveredAt,
	}
}

func toOrderItemResponse(item model.OrderItem) dto.OrderItemResponse {
	return dto.OrderItemResponse{
		ID:                item.ID,
		ProductID:         item.ProductID,
		Quantity:          item.Quantity,
		UnitPrice:         item.UnitPrice,
		LineTotal:         item.LineTotal,
		Status:            string(item.Status),
		PlannedDeliveryAt: item.PlannedDeliveryAt,
		ActualDeliveryAt:  item.ActualDeliveryAt,
	}
}
