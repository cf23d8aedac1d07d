package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Maxxvall/BarskieHoromi/internal/adapters/http/common"
	"github.com/Maxxvall/BarskieHoromi/internal/adapters/http/middleware"
	"github.com/Maxxvall/BarskieHoromi/internal/application/dtos"
)

// ============================================
// Use Case Interfaces
// ============================================

// SubmitOrderUseCase - отправка заказа администратору.
type SubmitOrderUseCase interface {
	Execute(ctx context.Context, cmd dtos.SendOrderCommand) error
}

// ListRecentOrdersUseCase - история заказов для админ-панели.
type ListRecentOrdersUseCase interface {
	Execute(ctx context.Context, userID int64, limit int) ([]dtos.ArchivedOrderDTO, error)
}

// ============================================
// Order Handler
// ============================================

// OrderHandler обрабатывает отправку заказов и админскую историю.
type OrderHandler struct {
	submit SubmitOrderUseCase
	list   ListRecentOrdersUseCase
}

// NewOrderHandler создаёт новый OrderHandler.
func NewOrderHandler(submit SubmitOrderUseCase, list ListRecentOrdersUseCase) *OrderHandler {
	return &OrderHandler{submit: submit, list: list}
}

// OrderItemRequest - позиция заказа из тела запроса.
type OrderItemRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// SendOrderRequest - тело POST /api/send-order.
// Пустой items не валидируется биндингом: на него завязан отдельный
// ответ "No items in order".
type SendOrderRequest struct {
	Items      []OrderItemRequest `json:"items"`
	TotalPrice int                `json:"totalPrice"`
	MealType   string             `json:"mealType" binding:"required,meal_type"`
	OrderDate  string             `json:"orderDate" binding:"required,order_date"`
	UserName   string             `json:"userName"`
	UserID     int64              `json:"userId"`
}

// ListOrdersRequest - тело POST /api/admin/orders.
type ListOrdersRequest struct {
	UserID int64 `json:"userId"`
	Limit  int   `json:"limit"`
}

// SendOrder обрабатывает POST /api/send-order.
func (h *OrderHandler) SendOrder(c *gin.Context) {
	var req SendOrderRequest
	if !BindJSON(c, &req) {
		return
	}

	items := make([]dtos.OrderItemDTO, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, dtos.OrderItemDTO(it))
	}

	cmd := dtos.SendOrderCommand{
		Items:      items,
		TotalPrice: req.TotalPrice,
		MealType:   req.MealType,
		OrderDate:  req.OrderDate,
		UserName:   req.UserName,
		UserID:     req.UserID,
	}

	if err := h.submit.Execute(c.Request.Context(), cmd); err != nil {
		common.FailFromError(c, err)
		return
	}

	middleware.RecordOrder(req.MealType, req.OrderDate, req.TotalPrice)

	common.OK(c, gin.H{
		"success": true,
		"message": "Order sent successfully",
	})
}

// ListOrders обрабатывает POST /api/admin/orders.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var req ListOrdersRequest
	if !BindJSON(c, &req) {
		return
	}

	orders, err := h.list.Execute(c.Request.Context(), req.UserID, req.Limit)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.OK(c, gin.H{
		"success": true,
		"orders":  orders,
	})
}
