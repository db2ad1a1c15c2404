package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"tripplanner/cmd/fx/account_fx"
	"tripplanner/cmd/fx/config_fx"
	"tripplanner/cmd/fx/controllers_fx"
	"tripplanner/cmd/fx/db_fx"
	"tripplanner/cmd/fx/itinerary_fx"
	"tripplanner/cmd/fx/memcache_fx"
	"tripplanner/cmd/fx/prompt_fx"
	"tripplanner/cmd/fx/weather_fx"
	"tripplanner/internal/api/controllers"
	"tripplanner/internal/config"
	"tripplanner/pkg/middleware"
	"tripplanner/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		prompt_fx.Module,
		weather_fx.Module,
		account_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		fx.StartTimeout(2*time.Minute),

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	log *zap.Logger,
	tokens *utils.TokenIssuer,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	healthController *controllers.HealthController) *gin.Engine {

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.UseJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log.Named("http")))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())

	RegisterRoutes(r, middleware.JWTAuthMiddleware(tokens), accountController, itineraryController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	auth gin.HandlerFunc,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	healthController *controllers.HealthController) {

	r.GET("/health", healthController.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authGroup := r.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)

	protected := r.Group("/", auth)
	protected.GET("/profile", accountController.GetProfile)
	protected.PUT("/profile", accountController.UpdateProfile)

	protected.POST("/generate-itinerary", itineraryController.Generate)
	protected.GET("/saved-itineraries", itineraryController.ListSaved)
	protected.GET("/itinerary/:id", itineraryController.GetByID)
	protected.DELETE("/saved-itineraries/:id", itineraryController.Delete)
}
