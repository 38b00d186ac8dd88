package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskitchen/lunch-service/internal/domain/dto"
	"github.com/campuskitchen/lunch-service/internal/domain/model"
	"github.com/campuskitchen/lunch-service/internal/i18n"
	"github.com/campuskitchen/lunch-service/internal/middleware"
	"github.com/campuskitchen/lunch-service/internal/service"
)

// PreferenceHandler provides HTTP handlers for student meal preferences.
type PreferenceHandler struct {
	preferences service.PreferenceService
}

// NewPreferenceHandler creates a new PreferenceHandler instance.
func NewPreferenceHandler(preferences service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		preferences: preferences,
	}
}

// GetPreference handles GET /api/preferences requests.
//
// @Summary      Get the stored preference
// @Description  Returns the caller's stored selection rule. The rule is empty when none has been stored.
// @Tags         Preferences
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.PreferenceResponse} "Stored preference"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/preferences [get]
func (h *PreferenceHandler) GetPreference(c *gin.Context) {
	builder := NewResponseBuilder(c)
	subject := middleware.GetSubject(c)

	pref, err := h.preferences.GetPreference(c.Request.Context(), subject)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	response := dto.PreferenceResponse{StudentID: subject}
	if pref != nil {
		response.Rule = string(pref.Rule)
	}

	builder.SuccessOK(response)
}

// SetPreference handles PUT /api/preferences requests.
//
// @Summary      Store a preference
// @Description  Stores or replaces the caller's selection rule. Each student holds at most one preference. The change only affects future scheduling; existing preorders stay as they are.
// @Tags         Preferences
// @Accept       json
// @Produce      json
// @Param        request body dto.SetPreferenceRequest true "Selection rule"
// @Success      200 {object} dto.SuccessResponse{data=dto.PreferenceResponse} "Stored preference"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown rule"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/preferences [put]
func (h *PreferenceHandler) SetPreference(c *gin.Context) {
	builder := NewResponseBuilder(c)
	subject := middleware.GetSubject(c)

	req, err := BuildRequestAndValidate[dto.SetPreferenceRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownRule, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	pref, err := h.preferences.SetPreference(c.Request.Context(), subject, model.PreferenceRule(req.Rule))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if ls := contextLoggingService(c); ls != nil {
		middleware.AuditLog(ls, c, "set_preference", "Preference stored", map[string]interface{}{
			"rule": string(pref.Rule),
		})
	}

	builder.SuccessOK(dto.PreferenceResponse{
		StudentID: pref.StudentID,
		Rule:      string(pref.Rule),
	})
}
