package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campuskitchen/lunch-service/internal/domain/dto"
	"github.com/campuskitchen/lunch-service/internal/domain/model"
	"github.com/campuskitchen/lunch-service/internal/middleware"
	"github.com/campuskitchen/lunch-service/internal/mocks"
	"github.com/campuskitchen/lunch-service/internal/repository"
	"github.com/campuskitchen/lunch-service/internal/service"
)

type menuHandlerMocks struct {
	items       *mocks.MockMenuItemsRepositoryInterface
	schedule    *mocks.MockScheduleRepositoryInterface
	preferences *mocks.MockPreferencesRepositoryInterface
	orders      *mocks.MockOrdersRepositoryInterface
}

// newMenuRouter builds a router with the menu routes over repository mocks
// and a fixed authenticated subject.
func newMenuRouter(subject string) (*gin.Engine, *menuHandlerMocks) {
	m := &menuHandlerMocks{
		items:       new(mocks.MockMenuItemsRepositoryInterface),
		schedule:    new(mocks.MockScheduleRepositoryInterface),
		preferences: new(mocks.MockPreferencesRepositoryInterface),
		orders:      new(mocks.MockOrdersRepositoryInterface),
	}

	resolver := service.NewMealResolverService()
	catalog := service.NewCatalogService(m.items)
	schedule := service.NewScheduleService(m.schedule, m.preferences, m.orders, resolver, repository.NoTxRunner{})
	preferences := service.NewPreferenceService(m.preferences)

	handler := NewMenuHandler(catalog, schedule, preferences, resolver)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.SubjectKey, subject)
		c.Next()
	})
	router.POST("/api/menu", handler.AddMenuItem)
	router.GET("/api/menu", handler.ListMenuItems)
	router.DELETE("/api/menu/:id", handler.DeleteMenuItem)
	router.GET("/api/menu/today", handler.TodayMenu)

	return router, m
}

func TestMenuHandler_AddMenuItem(t *testing.T) {
	t.Run("creates a catalog item", func(t *testing.T) {
		router, m := newMenuRouter("admin")
		m.items.On("Insert", mock.Anything, mock.MatchedBy(func(item *model.MenuItem) bool {
			return item.Name == "Pizza" && item.Calories == 300 && item.Protein == 12
		})).Return(&model.MenuItem{
			ID:       primitive.NewObjectID(),
			Name:     "Pizza",
			Calories: 300,
			Protein:  12,
		}, nil)

		w := performRequest(router, http.MethodPost, "/api/menu", dto.AddMenuItemRequest{
			Name:     "Pizza",
			Calories: 300,
			Protein:  12,
		}, nil)

		assert.Equal(t, http.StatusCreated, w.Code)
		m.items.AssertExpectations(t)
	})

	t.Run("rejects a nameless item", func(t *testing.T) {
		router, m := newMenuRouter("admin")

		w := performRequest(router, http.MethodPost, "/api/menu", map[string]interface{}{
			"calories": 300,
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		m.items.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("maps repository failure to 500", func(t *testing.T) {
		router, m := newMenuRouter("admin")
		m.items.On("Insert", mock.Anything, mock.Anything).Return(nil, errors.New("write failed"))

		w := performRequest(router, http.MethodPost, "/api/menu", dto.AddMenuItemRequest{Name: "Pizza"}, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestMenuHandler_ListMenuItems(t *testing.T) {
	router, m := newMenuRouter("admin")
	m.items.On("List", mock.Anything).Return([]model.MenuItem{
		{Name: "Pizza", Calories: 300},
		{Name: "Salad", Calories: 150},
	}, nil)

	w := performRequest(router, http.MethodGet, "/api/menu", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	items, ok := response.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestMenuHandler_DeleteMenuItem(t *testing.T) {
	t.Run("deletes by id", func(t *testing.T) {
		router, m := newMenuRouter("admin")
		id := primitive.NewObjectID()
		m.items.On("Delete", mock.Anything, id).Return(nil)

		w := performRequest(router, http.MethodDelete, "/api/menu/"+id.Hex(), nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		m.items.AssertExpectations(t)
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		router, m := newMenuRouter("admin")

		w := performRequest(router, http.MethodDelete, "/api/menu/not-a-hex-id", nil, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		m.items.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestMenuHandler_TodayMenu(t *testing.T) {
	offering := []model.MenuItem{
		{Name: "Pizza", Calories: 300, Protein: 12},
		{Name: "Burger", Calories: 500, Protein: 25},
		{Name: "Salad", Calories: 150, Protein: 4},
	}

	t.Run("uses the stored rule for the suggestion", func(t *testing.T) {
		router, m := newMenuRouter("42")
		m.schedule.On("ItemsForDate", mock.Anything, mock.Anything).Return(offering, nil)
		m.preferences.On("Get", mock.Anything, "42").Return(&model.StudentPreference{
			StudentID: "42",
			Rule:      model.RuleMostProtein,
		}, nil)

		w := performRequest(router, http.MethodGet, "/api/menu/today", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		data, ok := response.Data.(map[string]interface{})
		require.True(t, ok)

		assert.Equal(t, string(model.RuleMostProtein), data["rule"])
		suggestion, ok := data["suggestion"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Burger", suggestion["name"])
	})

	t.Run("falls back to least calories without a stored preference", func(t *testing.T) {
		router, m := newMenuRouter("42")
		m.schedule.On("ItemsForDate", mock.Anything, mock.Anything).Return(offering, nil)
		m.preferences.On("Get", mock.Anything, "42").Return(nil, nil)

		w := performRequest(router, http.MethodGet, "/api/menu/today", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		data, ok := response.Data.(map[string]interface{})
		require.True(t, ok)

		assert.Equal(t, string(model.RuleLeastCalories), data["rule"])
		suggestion, ok := data["suggestion"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Salad", suggestion["name"])
	})

	t.Run("preference lookup failure is an error, not a fallback", func(t *testing.T) {
		router, m := newMenuRouter("42")
		m.schedule.On("ItemsForDate", mock.Anything, mock.Anything).Return(offering, nil)
		m.preferences.On("Get", mock.Anything, "42").Return(nil, errors.New("connection reset"))

		w := performRequest(router, http.MethodGet, "/api/menu/today", nil, nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, dto.ErrCodeInternal, response.Error)
	})

	t.Run("empty schedule yields no suggestion", func(t *testing.T) {
		router, m := newMenuRouter("42")
		m.schedule.On("ItemsForDate", mock.Anything, mock.Anything).Return([]model.MenuItem{}, nil)
		m.preferences.On("Get", mock.Anything, "42").Return(nil, nil)

		w := performRequest(router, http.MethodGet, "/api/menu/today", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		data, ok := response.Data.(map[string]interface{})
		require.True(t, ok)

		_, present := data["suggestion"]
		assert.False(t, present)
	})
}
