package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campuskitchen/lunch-service/internal/domain/dto"
	"github.com/campuskitchen/lunch-service/internal/domain/model"
	"github.com/campuskitchen/lunch-service/internal/i18n"
	"github.com/campuskitchen/lunch-service/internal/middleware"
	"github.com/campuskitchen/lunch-service/internal/service"
)

// MenuHandler provides HTTP handlers for the meal catalog and the student
// menu view.
type MenuHandler struct {
	catalog     service.CatalogService
	schedule    service.ScheduleService
	preferences service.PreferenceService
	resolver    service.MealResolver
}

// NewMenuHandler creates a new MenuHandler instance.
func NewMenuHandler(
	catalog service.CatalogService,
	schedule service.ScheduleService,
	preferences service.PreferenceService,
	resolver service.MealResolver,
) *MenuHandler {
	return &MenuHandler{
		catalog:     catalog,
		schedule:    schedule,
		preferences: preferences,
		resolver:    resolver,
	}
}

// AddMenuItem handles POST /api/menu requests.
//
// @Summary      Add a catalog item
// @Description  Appends a meal definition to the catalog. Admin only.
// @Tags         Menu
// @Accept       json
// @Produce      json
// @Param        request body dto.AddMenuItemRequest true "Meal definition"
// @Success      201 {object} dto.SuccessResponse{data=model.MenuItem} "Created item"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin only"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/menu [post]
func (h *MenuHandler) AddMenuItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AddMenuItemRequest](c)
	if err != nil {
		if validationErr, ok := err.(*dto.ValidationError); ok {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	item, err := h.catalog.AddItem(c.Request.Context(), model.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Calories:    req.Calories,
		Protein:     req.Protein,
	})
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if ls := contextLoggingService(c); ls != nil {
		middleware.AuditLog(ls, c, "add_menu_item", "Catalog item added", map[string]interface{}{
			"name":     item.Name,
			"calories": item.Calories,
		})
	}

	builder.SuccessCreated(item)
}

// ListMenuItems handles GET /api/menu requests.
//
// @Summary      List the catalog
// @Description  Returns every catalog item in insertion order. Admin only.
// @Tags         Menu
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.MenuItem} "Catalog items"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin only"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/menu [get]
func (h *MenuHandler) ListMenuItems(c *gin.Context) {
	builder := NewResponseBuilder(c)

	items, err := h.catalog.ListItems(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(items)
}

// DeleteMenuItem handles DELETE /api/menu/:id requests.
//
// @Summary      Delete a catalog item
// @Description  Removes a catalog item. Deleting a missing item succeeds without effect. Past schedule entries and orders keep their meal snapshots. Admin only.
// @Tags         Menu
// @Produce      json
// @Param        id path string true "Catalog item id"
// @Success      200 {object} dto.SuccessResponse "Item deleted"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed id"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin only"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/menu/{id} [delete]
func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	if err := h.catalog.DeleteItem(c.Request.Context(), id); err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if ls := contextLoggingService(c); ls != nil {
		middleware.AuditLog(ls, c, "delete_menu_item", "Catalog item deleted", map[string]interface{}{
			"id": id.Hex(),
		})
	}

	builder.SuccessOK(map[string]string{"message": "Item deleted"})
}

// TodayMenu handles GET /api/menu/today requests.
//
// @Summary      Today's menu with a suggestion
// @Description  Returns the meals scheduled for today plus the resolver's pick for the caller's stored rule. Callers without a stored preference get the least-calories pick. An empty schedule yields no suggestion.
// @Tags         Menu
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.TodayMenuResponse} "Today's offering"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/menu/today [get]
func (h *MenuHandler) TodayMenu(c *gin.Context) {
	builder := NewResponseBuilder(c)

	date := service.Today()
	items, err := h.schedule.ScheduledItems(c.Request.Context(), date)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	pref, err := h.preferences.GetPreference(c.Request.Context(), middleware.GetSubject(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	rule := model.RuleLeastCalories
	if pref != nil {
		rule = model.NormalizeRule(string(pref.Rule))
	}

	response := dto.TodayMenuResponse{
		Date:  date,
		Items: items,
		Rule:  string(rule),
	}
	if pick, ok := h.resolver.Resolve(items, rule); ok {
		response.Suggestion = &pick
	}

	builder.SuccessOK(response)
}
