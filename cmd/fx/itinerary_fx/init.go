package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"tripplanner/internal/itinerary"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(provideItineraryRepo, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	repo repositories.ItineraryRepository,
	weather services.WeatherServiceInterface,
	generator utils.TextGeneratorInterface,
	clock utils.Clock,
	log *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(repo, weather, generator, itinerary.NewDayParser(itinerary.DefaultHeaderMatcher), clock, log.Named("itineraries"))
}
