package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campuskitchen/lunch-service/internal/domain/dto"
	"github.com/campuskitchen/lunch-service/internal/domain/model"
	"github.com/campuskitchen/lunch-service/internal/middleware"
	"github.com/campuskitchen/lunch-service/internal/mocks"
	"github.com/campuskitchen/lunch-service/internal/service"
)

func newPreferenceRouter(subject string) (*gin.Engine, *mocks.MockPreferencesRepositoryInterface) {
	prefsRepo := new(mocks.MockPreferencesRepositoryInterface)
	handler := NewPreferenceHandler(service.NewPreferenceService(prefsRepo))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.SubjectKey, subject)
		c.Next()
	})
	router.GET("/api/preferences", handler.GetPreference)
	router.PUT("/api/preferences", handler.SetPreference)

	return router, prefsRepo
}

func TestPreferenceHandler_GetPreference(t *testing.T) {
	t.Run("returns the stored rule", func(t *testing.T) {
		router, prefsRepo := newPreferenceRouter("42")
		prefsRepo.On("Get", mock.Anything, "42").Return(&model.StudentPreference{
			StudentID: "42",
			Rule:      model.RuleMostCalories,
		}, nil)

		w := performRequest(router, http.MethodGet, "/api/preferences", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		data, ok := response.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "42", data["student_id"])
		assert.Equal(t, string(model.RuleMostCalories), data["rule"])
	})

	t.Run("returns an empty rule when none is stored", func(t *testing.T) {
		router, prefsRepo := newPreferenceRouter("42")
		prefsRepo.On("Get", mock.Anything, "42").Return(nil, nil)

		w := performRequest(router, http.MethodGet, "/api/preferences", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		data, ok := response.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "42", data["student_id"])
		_, present := data["rule"]
		assert.False(t, present)
	})
}

func TestPreferenceHandler_SetPreference(t *testing.T) {
	t.Run("stores the rule for the caller", func(t *testing.T) {
		router, prefsRepo := newPreferenceRouter("42")
		prefsRepo.On("Upsert", mock.Anything, "42", string(model.RuleMostProtein)).Return(nil)

		w := performRequest(router, http.MethodPut, "/api/preferences", dto.SetPreferenceRequest{
			Rule: string(model.RuleMostProtein),
		}, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		data, ok := response.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, string(model.RuleMostProtein), data["rule"])
		prefsRepo.AssertExpectations(t)
	})

	t.Run("rejects an unknown rule", func(t *testing.T) {
		router, prefsRepo := newPreferenceRouter("42")

		w := performRequest(router, http.MethodPut, "/api/preferences", dto.SetPreferenceRequest{
			Rule: "tastiest",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		prefsRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})
}
