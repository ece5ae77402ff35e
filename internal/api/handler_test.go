package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wayfinder/wayfinder-api/internal/config"
	"github.com/wayfinder/wayfinder-api/internal/model"
	"github.com/wayfinder/wayfinder-api/internal/service"
)

// MockService is a mock implementation of service.Interface
type MockService struct {
	mock.Mock
}

func (m *MockService) ResolveLocation(ctx context.Context, in service.ResolveInput) (service.Resolution, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(service.Resolution), args.Error(1)
}

func (m *MockService) GetOrCreateLocation(ctx context.Context, lat, lon *float64, res service.Resolution) (*model.Location, error) {
	args := m.Called(ctx, lat, lon, res)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *MockService) SearchPlaces(ctx context.Context, query string) ([]model.PlaceSuggestion, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PlaceSuggestion), args.Error(1)
}

func (m *MockService) CreateExperience(ctx context.Context, userID string, req model.CreateExperienceRequest) (*model.Experience, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Experience), args.Error(1)
}

func (m *MockService) ListExperiences(ctx context.Context, f model.ExperienceFilter) ([]model.Experience, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Experience), args.Error(1)
}

func (m *MockService) GetExperience(ctx context.Context, id string) (*model.Experience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Experience), args.Error(1)
}

func (m *MockService) CreateRating(ctx context.Context, userID string, req model.CreateRatingRequest) (*model.Rating, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rating), args.Error(1)
}

func (m *MockService) ListExperienceRatings(ctx context.Context, experienceID string) ([]model.Rating, error) {
	args := m.Called(ctx, experienceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Rating), args.Error(1)
}

func (m *MockService) CreateTip(ctx context.Context, userID string, req model.CreateTipRequest) (*model.Tip, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tip), args.Error(1)
}

func (m *MockService) ListTips(ctx context.Context, f model.TipFilter) ([]model.Tip, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tip), args.Error(1)
}

func (m *MockService) ListUserTips(ctx context.Context, userID string) ([]model.Tip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tip), args.Error(1)
}

func (m *MockService) CreateWishlist(ctx context.Context, actingUserID string, req model.CreateWishlistRequest) (*model.Wishlist, error) {
	args := m.Called(ctx, actingUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Wishlist), args.Error(1)
}

func (m *MockService) ListUserWishlists(ctx context.Context, actingUserID, userID string) ([]model.Wishlist, error) {
	args := m.Called(ctx, actingUserID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Wishlist), args.Error(1)
}

func (m *MockService) AddWishlistItem(ctx context.Context, actingUserID, wishlistID string, req model.CreateWishlistItemRequest) (*model.WishlistItem, error) {
	args := m.Called(ctx, actingUserID, wishlistID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WishlistItem), args.Error(1)
}

func (m *MockService) ListWishlistItems(ctx context.Context, actingUserID, wishlistID string) ([]model.WishlistItem, error) {
	args := m.Called(ctx, actingUserID, wishlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WishlistItem), args.Error(1)
}

func (m *MockService) ListTags(ctx context.Context) ([]model.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockService) GetUser(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

var testJWTConfig = config.JWTConfig{Secret: []byte("test-secret"), Issuer: "wayfinder"}

func newTestHandler() (*Handler, *MockService) {
	ms := new(MockService)
	return NewHandler(ms, testJWTConfig, zap.NewNop()), ms
}

// authedRequest builds a request with the authenticated user already in
// context, the way requireAuth leaves it.
func authedRequest(method, target, userID string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	return req.WithContext(ContextWithUser(req.Context(), AuthenticatedUser{ID: userID}))
}

func TestHandler_CreateExperience(t *testing.T) {
	tests := []struct {
		name           string
		authed         bool
		body           string
		mockSetup      func(*MockService)
		expectedStatus int
	}{
		{
			name:   "successful request",
			authed: true,
			body:   `{"title": "Dinner", "description": "Good", "latitude": 40, "longitude": -74}`,
			mockSetup: func(ms *MockService) {
				ms.On("CreateExperience", mock.Anything, "user-1", mock.MatchedBy(func(req model.CreateExperienceRequest) bool {
					return req.Title == "Dinner" && req.Latitude != nil && *req.Latitude == 40
				})).Return(&model.Experience{ID: "exp-1", Title: "Dinner"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unauthenticated",
			authed:         false,
			body:           `{"title": "Dinner", "description": "Good"}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed JSON",
			authed:         true,
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing required fields",
			authed:         true,
			body:           `{"title": "Dinner"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "service rejects payload",
			authed: true,
			body:   `{"title": "Dinner", "description": "Good", "latitude": 40}`,
			mockSetup: func(ms *MockService) {
				ms.On("CreateExperience", mock.Anything, "user-1", mock.Anything).
					Return(nil, service.Invalid("location", "latitude and longitude must be supplied together"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, ms := newTestHandler()
			if tt.mockSetup != nil {
				tt.mockSetup(ms)
			}

			var req *http.Request
			if tt.authed {
				req = authedRequest("POST", "/api/v1/experiences", "user-1", []byte(tt.body))
			} else {
				req = httptest.NewRequest("POST", "/api/v1/experiences", bytes.NewReader([]byte(tt.body)))
			}

			rec := httptest.NewRecorder()
			handler.CreateExperience(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusCreated {
				var envelope struct {
					Data model.Experience `json:"data"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
				assert.Equal(t, "exp-1", envelope.Data.ID)
			}
			ms.AssertExpectations(t)
		})
	}
}

func TestHandler_ListExperiences_QueryParsing(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedFilter model.ExperienceFilter
	}{
		{
			name:           "no filters",
			target:         "/api/v1/experiences",
			expectedFilter: model.ExperienceFilter{},
		},
		{
			name:   "tags are split and trimmed",
			target: "/api/v1/experiences?tags=food,%20outdoors,",
			expectedFilter: model.ExperienceFilter{
				Tags: []string{"food", "outdoors"},
			},
		},
		{
			name:           "search query",
			target:         "/api/v1/experiences?search_query=river",
			expectedFilter: model.ExperienceFilter{SearchQuery: "river"},
		},
		{
			name:   "location pair",
			target: "/api/v1/experiences?location_type=city&location_id=102",
			expectedFilter: model.ExperienceFilter{
				LocationType: "city", LocationID: 102, HasLocation: true,
			},
		},
		{
			name:           "location type alone is ignored",
			target:         "/api/v1/experiences?location_type=city",
			expectedFilter: model.ExperienceFilter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, ms := newTestHandler()
			ms.On("ListExperiences", mock.Anything, tt.expectedFilter).
				Return([]model.Experience{}, nil)

			req := httptest.NewRequest("GET", tt.target, nil)
			rec := httptest.NewRecorder()
			handler.ListExperiences(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			ms.AssertExpectations(t)
		})
	}
}

func TestHandler_ListExperiences_BadLocationID(t *testing.T) {
	handler, ms := newTestHandler()

	req := httptest.NewRequest("GET", "/api/v1/experiences?location_type=city&location_id=oops", nil)
	rec := httptest.NewRecorder()
	handler.ListExperiences(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ms.AssertNotCalled(t, "ListExperiences", mock.Anything, mock.Anything)
}

func TestHandler_GetExperience(t *testing.T) {
	handler, ms := newTestHandler()
	ms.On("GetExperience", mock.Anything, "exp-1").
		Return(&model.Experience{ID: "exp-1", Title: "Dinner"}, nil)
	ms.On("GetExperience", mock.Anything, "exp-missing").
		Return(nil, service.NotFound("experience"))

	req := httptest.NewRequest("GET", "/api/v1/experiences/exp-1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "exp-1"})
	rec := httptest.NewRecorder()
	handler.GetExperience(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest("GET", "/api/v1/experiences/exp-missing", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "exp-missing"})
	rec = httptest.NewRecorder()
	handler.GetExperience(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_CreateRating(t *testing.T) {
	handler, ms := newTestHandler()
	ms.On("CreateRating", mock.Anything, "user-1", mock.MatchedBy(func(req model.CreateRatingRequest) bool {
		return req.ExperienceID == "exp-1" && req.RatingValue != nil && *req.RatingValue == 5
	})).Return(&model.Rating{ID: "rating-1"}, nil)

	body := []byte(`{"experience_id": "exp-1", "comment": "great", "rating_value": 5}`)
	req := authedRequest("POST", "/api/v1/ratings", "user-1", body)
	rec := httptest.NewRecorder()
	handler.CreateRating(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	ms.AssertExpectations(t)
}

func TestHandler_ForbiddenMapsTo403(t *testing.T) {
	handler, ms := newTestHandler()
	ms.On("CreateWishlist", mock.Anything, "user-1", mock.Anything).
		Return(nil, service.ErrForbidden)

	body := []byte(`{"user_id": "user-2", "title": "Summer"}`)
	req := authedRequest("POST", "/api/v1/wishlists", "user-1", body)
	rec := httptest.NewRecorder()
	handler.CreateWishlist(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_SearchPlaces(t *testing.T) {
	handler, ms := newTestHandler()
	name := "Freeport"
	ms.On("SearchPlaces", mock.Anything, "free").
		Return([]model.PlaceSuggestion{{PlaceID: 104, Type: "city", Name: &name}}, nil)

	req := httptest.NewRequest("GET", "/api/v1/locations/search?q=free", nil)
	rec := httptest.NewRecorder()
	handler.SearchPlaces(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data []model.PlaceSuggestion `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, 104, envelope.Data[0].PlaceID)
}

func TestHandler_HealthCheck(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	handler.HealthCheck(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
