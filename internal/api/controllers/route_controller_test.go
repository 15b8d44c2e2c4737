package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"routeplanner/internal/models/request_models"
	"routeplanner/internal/models/response_models"
	"routeplanner/pkg/utils"
)

type mockRouteService struct {
	mock.Mock
}

func (m *mockRouteService) GenerateAiPlan(ctx context.Context, req request_models.ItineraryRequest) (*response_models.GenerateResult, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*response_models.GenerateResult)
	return res, args.Error(1)
}

func (m *mockRouteService) CreatePlan(ctx context.Context, ownerID string, req request_models.CreatePlanRequest) (string, error) {
	args := m.Called(ctx, ownerID, req)
	return args.String(0), args.Error(1)
}

func (m *mockRouteService) GetPlan(ctx context.Context, planID string) (*response_models.PlanResponse, error) {
	args := m.Called(ctx, planID)
	res, _ := args.Get(0).(*response_models.PlanResponse)
	return res, args.Error(1)
}

func (m *mockRouteService) ListPlansByOwner(ctx context.Context, ownerID string) ([]response_models.PlanResponse, error) {
	args := m.Called(ctx, ownerID)
	res, _ := args.Get(0).([]response_models.PlanResponse)
	return res, args.Error(1)
}

func (m *mockRouteService) ListHotPlans(ctx context.Context, limit int) ([]response_models.HotPlanResponse, error) {
	args := m.Called(ctx, limit)
	res, _ := args.Get(0).([]response_models.HotPlanResponse)
	return res, args.Error(1)
}

func (m *mockRouteService) DeletePlan(ctx context.Context, requesterID string, planID string) error {
	return m.Called(ctx, requesterID, planID).Error(0)
}

func newRouteTestRouter(svc *mockRouteService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	})

	ctrl := NewRouteController(svc)
	r.POST("/api/routes/ai-generate", ctrl.GenerateAiRoute)
	r.POST("/api/routes", ctrl.CreatePlan)
	r.GET("/api/routes/hot", ctrl.ListHotPlans)
	r.GET("/api/routes/my", ctrl.ListMyPlans)
	r.GET("/api/routes/:id", ctrl.GetPlan)
	r.DELETE("/api/routes/:id", ctrl.DeletePlan)
	return r
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGenerateAiRouteBindsRequest(t *testing.T) {
	svc := &mockRouteService{}
	svc.On("GenerateAiPlan", mock.Anything, mock.MatchedBy(func(req request_models.ItineraryRequest) bool {
		return req.StartDate.Equal(utils.NewDate(2024, time.May, 1)) &&
			req.Destinations[0] == "杭州" &&
			req.BudgetOrDefault() == 8000
	})).Return(&response_models.GenerateResult{Variants: []response_models.PlanVariant{{ID: "a"}, {ID: "b"}, {ID: "c"}}}, nil)

	w := httptest.NewRecorder()
	body := `{"departureCity":"上海","destinations":["杭州"],"startDate":"2024-05-01","endDate":"2024-05-03","transport":"public"}`
	req := httptest.NewRequest(http.MethodPost, "/api/routes/ai-generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	newRouteTestRouter(svc, "").ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "success", env.Status)
	svc.AssertExpectations(t)
}

func TestGenerateAiRouteRejectsBadInput(t *testing.T) {
	svc := &mockRouteService{}
	cases := []string{
		`{"destinations":["杭州"],"startDate":"2024/05/01","endDate":"2024-05-03"}`,
		`{"destinations":["杭州"],"startDate":"2024-05-01","endDate":"2024-05-03","transport":"plane"}`,
		`{"destinations":["杭州"],"startDate":"2024-05-01","endDate":"2024-05-03","peopleCount":0}`,
	}

	for _, body := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/routes/ai-generate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		newRouteTestRouter(svc, "").ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	svc.AssertNotCalled(t, "GenerateAiPlan", mock.Anything, mock.Anything)
}

func TestGenerateAiRouteMapsServiceErrors(t *testing.T) {
	svc := &mockRouteService{}
	svc.On("GenerateAiPlan", mock.Anything, mock.Anything).Return(nil, utils.ErrInvalidDateRange)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/routes/ai-generate",
		strings.NewReader(`{"destinations":["杭州"],"startDate":"2024-05-03","endDate":"2024-05-01"}`))
	req.Header.Set("Content-Type", "application/json")
	newRouteTestRouter(svc, "").ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", decodeEnvelope(t, w).Status)
}

func TestListHotPlansLimit(t *testing.T) {
	svc := &mockRouteService{}
	svc.On("ListHotPlans", mock.Anything, 4).Return([]response_models.HotPlanResponse{}, nil).Once()
	svc.On("ListHotPlans", mock.Anything, 10).Return([]response_models.HotPlanResponse{}, nil).Once()
	r := newRouteTestRouter(svc, "")

	for _, path := range []string{"/api/routes/hot", "/api/routes/hot?limit=10"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/routes/hot?limit=many", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertExpectations(t)
}

func TestCreatePlanUsesCaller(t *testing.T) {
	svc := &mockRouteService{}
	svc.On("CreatePlan", mock.Anything, "user-1", mock.Anything).Return("plan-1", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/routes",
		strings.NewReader(`{"destination":"杭州","startDate":"2024-05-01","endDate":"2024-05-02","pace":"relaxed","days":[{"dayIndex":1,"activities":[{"name":"西湖"}]}]}`))
	req.Header.Set("Content-Type", "application/json")
	newRouteTestRouter(svc, "user-1").ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := decodeEnvelope(t, w).Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "plan-1", data["id"])
}

func TestCreatePlanRejectsInvalidDay(t *testing.T) {
	svc := &mockRouteService{}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/routes",
		strings.NewReader(`{"destination":"杭州","pace":"relaxed","days":[{"dayIndex":0}]}`))
	req.Header.Set("Content-Type", "application/json")
	newRouteTestRouter(svc, "user-1").ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAndDeletePlanStatuses(t *testing.T) {
	svc := &mockRouteService{}
	svc.On("GetPlan", mock.Anything, "missing").Return(nil, utils.ErrPlanNotFound)
	svc.On("DeletePlan", mock.Anything, "user-2", "p1").Return(utils.ErrForbidden)
	r := newRouteTestRouter(svc, "user-2")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/routes/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/routes/p1", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
