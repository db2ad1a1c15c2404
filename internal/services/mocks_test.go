package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"tripplanner/internal/itinerary"
	"tripplanner/internal/models/db_models"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *db_models.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Account), args.Error(1)
}

type MockItineraryRepository struct {
	mock.Mock
}

func (m *MockItineraryRepository) Insert(ctx context.Context, itinerary *db_models.Itinerary) error {
	return m.Called(ctx, itinerary).Error(0)
}

func (m *MockItineraryRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Itinerary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Itinerary), args.Error(1)
}

func (m *MockItineraryRepository) FindByIDAndUser(ctx context.Context, id, userID string) (*db_models.Itinerary, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Itinerary), args.Error(1)
}

func (m *MockItineraryRepository) DeleteByIDAndUser(ctx context.Context, id, userID string) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

type MockWeatherService struct {
	mock.Mock
}

func (m *MockWeatherService) Forecast(ctx context.Context, location string, start, end time.Time) []itinerary.ForecastSample {
	return m.Called(ctx, location, start, end).Get(0).([]itinerary.ForecastSample)
}

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockTextGenerator) Close() error {
	return nil
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) CreateToken(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}
