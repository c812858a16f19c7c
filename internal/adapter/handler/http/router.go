package http

import (
	"github.com/MikeRez0/lcmanager/internal/adapter/config"
	"github.com/MikeRez0/lcmanager/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	authHandler *AuthHandler,
	loanHandler *LoanHandler,
	orderHandler *OrderHandler,
	accountHandler *AccountHandler,
	presetHandler *PresetHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.POST("/login", authHandler.Login)

		secured := api.Group("")
		secured.Use(authCheck(tokenService))
		{
			loans := secured.Group("/loans")
			{
				loans.GET("", loanHandler.ListLoans)
				loans.POST("/filter", loanHandler.FilterLoans)
			}

			orders := secured.Group("/orders")
			{
				orders.POST("", orderHandler.CreateOrder)
				orders.POST("/submit", orderHandler.SubmitOrders)
			}

			account := secured.Group("/account")
			{
				account.GET("/summary", accountHandler.Summary)
				account.GET("/notes", accountHandler.NotesOwned)
				account.GET("/portfolios", accountHandler.Portfolios)
				account.POST("/portfolios", accountHandler.CreatePortfolio)
			}

			presets := secured.Group("/presets")
			{
				presets.GET("", presetHandler.ListPresets)
				presets.POST("", presetHandler.SavePreset)
				presets.GET("/:name", presetHandler.GetPreset)
				presets.DELETE("/:name", presetHandler.DeletePreset)
				presets.POST("/:name/invest", presetHandler.Invest)
			}
		}
	}

	logger.Debug("Routes registered", zap.String("address", conf.HostString))
	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
