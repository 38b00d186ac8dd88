package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campuskitchen/lunch-service/internal/domain/dto"
	"github.com/campuskitchen/lunch-service/internal/i18n"
	"github.com/campuskitchen/lunch-service/internal/middleware"
	"github.com/campuskitchen/lunch-service/internal/service"
)

// OrderHandler provides HTTP handlers for the order ledger.
type OrderHandler struct {
	ledger service.LedgerService
}

// NewOrderHandler creates a new OrderHandler instance.
func NewOrderHandler(ledger service.LedgerService) *OrderHandler {
	return &OrderHandler{
		ledger: ledger,
	}
}

// SubmitOrder handles POST /api/orders requests.
//
// @Summary      Order a meal
// @Description  Appends an order for the calling student. The meal name is stored as a snapshot and is not checked against the catalog.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        request body dto.SubmitOrderRequest true "Chosen meal"
// @Success      201 {object} dto.SuccessResponse{data=model.Order} "Recorded order"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/orders [post]
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.SubmitOrderRequest](c)
	if err != nil {
		if validationErr, ok := err.(*dto.ValidationError); ok {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	order, err := h.ledger.RecordOrder(c.Request.Context(), middleware.GetSubject(c), req.MealName)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if ls := contextLoggingService(c); ls != nil {
		middleware.AuditLog(ls, c, "record_order", "Order recorded", map[string]interface{}{
			"meal_name": order.MealName,
		})
	}

	builder.SuccessCreated(order)
}

// ListOrders handles GET /api/orders requests.
//
// @Summary      List the order ledger
// @Description  Returns every order, newest first. Admin only.
// @Tags         Orders
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.Order} "Orders"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin only"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	builder := NewResponseBuilder(c)

	orders, err := h.ledger.ListOrders(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(orders)
}

// MarkPickedUp handles POST /api/orders/:id/pickup requests.
//
// @Summary      Mark an order picked up
// @Description  Flags an order as collected at the counter. Flagging twice, or flagging an unknown id, succeeds without effect. Admin only.
// @Tags         Orders
// @Produce      json
// @Param        id path string true "Order id"
// @Success      200 {object} dto.SuccessResponse "Order flagged"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed id"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin only"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/orders/{id}/pickup [post]
func (h *OrderHandler) MarkPickedUp(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	if err := h.ledger.MarkPickedUp(c.Request.Context(), id); err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if ls := contextLoggingService(c); ls != nil {
		middleware.AuditLog(ls, c, "mark_picked_up", "Order marked picked up", map[string]interface{}{
			"id": id.Hex(),
		})
	}

	builder.SuccessOK(map[string]string{"message": "Order marked picked up"})
}
