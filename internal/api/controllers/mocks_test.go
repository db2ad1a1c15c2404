package controllers

import (
	"context"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.UseJSONFieldNames()
	os.Exit(m.Run())
}

// withUser stands in for the JWT middleware.
func withUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, request request_models.SignUpRequest) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockAccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.LoginResponse), args.Error(1)
}

func (m *MockAccountService) GetProfile(ctx context.Context, userID string) (*response_models.ProfileResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.ProfileResponse), args.Error(1)
}

func (m *MockAccountService) UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error) {
	args := m.Called(ctx, userID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.ProfileResponse), args.Error(1)
}

type MockItineraryService struct {
	mock.Mock
}

func (m *MockItineraryService) Generate(ctx context.Context, userID string, request request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error) {
	args := m.Called(ctx, userID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.GenerateItineraryResponse), args.Error(1)
}

func (m *MockItineraryService) ListSaved(ctx context.Context, userID string) ([]response_models.ItineraryResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response_models.ItineraryResponse), args.Error(1)
}

func (m *MockItineraryService) GetByID(ctx context.Context, userID, id string) (*response_models.ItineraryDetailResponse, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.ItineraryDetailResponse), args.Error(1)
}

func (m *MockItineraryService) Delete(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}
