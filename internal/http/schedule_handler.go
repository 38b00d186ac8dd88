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

// ScheduleHandler provides HTTP handlers for the daily menu schedule.
type ScheduleHandler struct {
	schedule service.ScheduleService
	catalog  service.CatalogService
}

// NewScheduleHandler creates a new ScheduleHandler instance.
func NewScheduleHandler(schedule service.ScheduleService, catalog service.CatalogService) *ScheduleHandler {
	return &ScheduleHandler{
		schedule: schedule,
		catalog:  catalog,
	}
}

// scheduledResponse is the result of a schedule call: the entry placed and
// how many preorders the pass created.
type scheduledResponse struct {
	Date             string `json:"date"`
	MealName         string `json:"meal_name"`
	PreordersCreated int    `json:"preorders_created"`
}

// ScheduleItem handles POST /api/schedule requests.
//
// @Summary      Schedule a catalog item
// @Description  Offers a catalog item on a calendar date and immediately re-resolves preorders for every student with a stored preference. The schedule entry and its preorders commit together. Admin only.
// @Tags         Schedule
// @Accept       json
// @Produce      json
// @Param        request body dto.ScheduleItemRequest true "Date and catalog item"
// @Success      201 {object} dto.SuccessResponse "Item scheduled with preorder count"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid date or id"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin only"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown catalog item"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/schedule [post]
func (h *ScheduleHandler) ScheduleItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.ScheduleItemRequest](c)
	if err != nil {
		if validationErr, ok := err.(*dto.ValidationError); ok {
			if validationErr.Field == "date" {
				builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidDate, err)
			} else {
				builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
			}
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	id, err := primitive.ObjectIDFromHex(req.MenuItemID)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	item, err := h.catalog.FindItem(c.Request.Context(), id)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if item == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyUnknownMenuItem, nil)
		return
	}

	orders, err := h.schedule.ScheduleItem(c.Request.Context(), req.Date, item)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if ls := contextLoggingService(c); ls != nil {
		middleware.AuditLog(ls, c, "schedule", "Catalog item scheduled", map[string]interface{}{
			"date":              req.Date,
			"meal_name":         item.Name,
			"preorders_created": len(orders),
		})
	}

	builder.SuccessCreated(scheduledResponse{
		Date:             req.Date,
		MealName:         item.Name,
		PreordersCreated: len(orders),
	})
}

// ListSchedule handles GET /api/schedule requests.
//
// @Summary      List the full schedule
// @Description  Returns every schedule entry joined with its catalog item. Admin only.
// @Tags         Schedule
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ScheduleResponse} "Schedule entries"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin only"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/schedule [get]
func (h *ScheduleHandler) ListSchedule(c *gin.Context) {
	builder := NewResponseBuilder(c)

	entries, err := h.schedule.ListAll(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.ScheduleResponse{Entries: entries})
}
