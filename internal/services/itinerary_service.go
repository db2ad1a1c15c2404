package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"tripplanner/internal/itinerary"
	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/metrics"
	"tripplanner/pkg/utils"
)

const emptyItineraryText = "No itinerary generated."

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, userID string, request request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error)
	ListSaved(ctx context.Context, userID string) ([]response_models.ItineraryResponse, error)
	GetByID(ctx context.Context, userID, id string) (*response_models.ItineraryDetailResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type ItineraryService struct {
	repo      repositories.ItineraryRepository
	weather   WeatherServiceInterface
	generator utils.TextGeneratorInterface
	parser    *itinerary.DayParser
	clock     utils.Clock
	log       *zap.Logger
}

func NewItineraryService(
	repo repositories.ItineraryRepository,
	weather WeatherServiceInterface,
	generator utils.TextGeneratorInterface,
	parser *itinerary.DayParser,
	clock utils.Clock,
	log *zap.Logger,
) ItineraryServiceInterface {
	if parser == nil {
		parser = itinerary.NewDayParser(nil)
	}
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &ItineraryService{
		repo:      repo,
		weather:   weather,
		generator: generator,
		parser:    parser,
		clock:     clock,
		log:       log,
	}
}

// tripRequest is a GenerateItineraryRequest after trimming and date parsing.
type tripRequest struct {
	From        string
	Destination string
	Budget      string
	Interests   string
	Days        int
	People      int
	Start       time.Time
	End         time.Time
}

func (s *ItineraryService) Generate(ctx context.Context, userID string, request request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown user", utils.ErrInvalidInput)
	}

	trip, err := s.validate(request)
	if err != nil {
		return nil, err
	}

	weather := s.weather.Forecast(ctx, trip.Destination, trip.Start, trip.End)
	s.log.Debug("weather data fetched",
		zap.String("destination", trip.Destination),
		zap.Int("days_with_forecast", len(weather)))

	text, err := s.generator.GenerateText(ctx, buildItineraryPrompt(trip))
	if err != nil {
		metrics.ItinerariesGenerated.WithLabelValues("generation_failed").Inc()
		return nil, fmt.Errorf("%w: %w", utils.ErrGenerationFailed, err)
	}
	if strings.TrimSpace(text) == "" {
		text = emptyItineraryText
	}

	record := &db_models.Itinerary{
		UserID:        owner,
		From:          trip.From,
		Destination:   trip.Destination,
		Budget:        trip.Budget,
		Interests:     trip.Interests,
		Days:          trip.Days,
		People:        trip.People,
		StartDate:     trip.Start,
		EndDate:       trip.End,
		ItineraryText: text,
		Weather:       toWeatherRows(weather),
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		metrics.ItinerariesGenerated.WithLabelValues("store_failed").Inc()
		return nil, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	metrics.ItinerariesGenerated.WithLabelValues("success").Inc()

	return &response_models.GenerateItineraryResponse{
		ID:            record.ID.String(),
		ItineraryText: text,
		WeatherData:   toWeatherResponses(record.Weather),
	}, nil
}

func (s *ItineraryService) validate(request request_models.GenerateItineraryRequest) (tripRequest, error) {
	trip := tripRequest{
		From:        strings.TrimSpace(request.From),
		Destination: strings.TrimSpace(request.Destination),
		Budget:      strings.TrimSpace(request.Budget.String()),
		Interests:   strings.TrimSpace(request.Interests.String()),
		Days:        request.Days,
		People:      request.People,
	}
	if trip.From == "" || trip.Destination == "" || trip.Budget == "" || trip.Interests == "" ||
		trip.Days < 1 || trip.People < 1 {
		return trip, fmt.Errorf("%w: all fields are required", utils.ErrInvalidInput)
	}

	var err error
	if trip.Start, err = utils.ParseDate(request.StartDate); err != nil {
		return trip, fmt.Errorf("%w: startDate: %v", utils.ErrInvalidInput, err)
	}
	if trip.End, err = utils.ParseDate(request.EndDate); err != nil {
		return trip, fmt.Errorf("%w: endDate: %v", utils.ErrInvalidInput, err)
	}

	today := utils.DateOnly(s.clock.Now())
	if trip.Start.Before(today) {
		return trip, utils.ErrStartDateInPast
	}
	if !trip.End.After(trip.Start) {
		return trip, utils.ErrEndBeforeStart
	}

	expected := int(math.Ceil(trip.End.Sub(trip.Start).Hours() / 24))
	if trip.Days != expected {
		return trip, fmt.Errorf("%w: expected %d", utils.ErrDaysMismatch, expected)
	}

	return trip, nil
}

func (s *ItineraryService) ListSaved(ctx context.Context, userID string) ([]response_models.ItineraryResponse, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.ItineraryResponse, 0, len(records))
	for i := range records {
		out = append(out, toItineraryResponse(&records[i]))
	}
	return out, nil
}

func (s *ItineraryService) GetByID(ctx context.Context, userID, id string) (*response_models.ItineraryDetailResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrItineraryNotFound
	}

	record, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	if record == nil {
		return nil, utils.ErrItineraryNotFound
	}

	return &response_models.ItineraryDetailResponse{
		ItineraryResponse: toItineraryResponse(record),
		DayPlans:          s.parser.Parse(record.ItineraryText),
		BudgetBreakdown:   itinerary.SplitBudget(record.Budget),
	}, nil
}

func (s *ItineraryService) Delete(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrItineraryNotFound
	}

	deleted, err := s.repo.DeleteByIDAndUser(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	if !deleted {
		return utils.ErrItineraryNotFound
	}
	return nil
}

func toWeatherRows(samples []itinerary.ForecastSample) []db_models.ItineraryWeather {
	rows := make([]db_models.ItineraryWeather, 0, len(samples))
	for i, s := range samples {
		rows = append(rows, db_models.ItineraryWeather{
			Position:    i,
			Date:        s.Date,
			Temperature: s.Temperature,
			Description: s.Description,
			Icon:        s.Icon,
		})
	}
	return rows
}

func toWeatherResponses(rows []db_models.ItineraryWeather) []response_models.WeatherResponse {
	out := make([]response_models.WeatherResponse, 0, len(rows))
	for _, w := range rows {
		out = append(out, response_models.WeatherResponse{
			Date:        utils.FormatDate(w.Date),
			Temperature: w.Temperature,
			Description: w.Description,
			Icon:        w.Icon,
			Condition:   itinerary.ConditionOf(w.Description),
		})
	}
	return out
}

func toItineraryResponse(record *db_models.Itinerary) response_models.ItineraryResponse {
	return response_models.ItineraryResponse{
		ID:            record.ID.String(),
		From:          record.From,
		Destination:   record.Destination,
		Budget:        record.Budget,
		Interests:     record.Interests,
		Days:          record.Days,
		People:        record.People,
		StartDate:     utils.FormatDate(record.StartDate),
		EndDate:       utils.FormatDate(record.EndDate),
		ItineraryText: record.ItineraryText,
		WeatherData:   toWeatherResponses(record.Weather),
		CreatedAt:     record.CreatedAt,
	}
}
