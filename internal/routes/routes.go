package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/store-ratings/internal/access"
	"github.com/BruksfildServices01/store-ratings/internal/config"
	"github.com/BruksfildServices01/store-ratings/internal/handlers"
	infraRepo "github.com/BruksfildServices01/store-ratings/internal/infra/repository"
	"github.com/BruksfildServices01/store-ratings/internal/metrics"
	"github.com/BruksfildServices01/store-ratings/internal/middleware"
	"github.com/BruksfildServices01/store-ratings/internal/token"
	ucAccount "github.com/BruksfildServices01/store-ratings/internal/usecase/account"
	ucDirectory "github.com/BruksfildServices01/store-ratings/internal/usecase/directory"
	ucRating "github.com/BruksfildServices01/store-ratings/internal/usecase/rating"
)

type Deps struct {
	Accounts  *ucAccount.Service
	Directory *ucDirectory.Service
	Ledger    *ucRating.Ledger
	Tokens    middleware.Verifier
	Metrics   *metrics.Registry
	Logger    *slog.Logger
}

// NewDeps wires the gorm repositories into the use cases.
func NewDeps(db *gorm.DB, cfg *config.Config, m *metrics.Registry, logger *slog.Logger) (Deps, error) {

	// ======================================================
	// INFRA
	// ======================================================
	accountRepo := infraRepo.NewAccountGormRepository(db)
	ratingRepo := infraRepo.NewRatingGormRepository(db)
	directoryRepo := infraRepo.NewDirectoryGormRepository(db)

	tokens := token.NewService([]byte(cfg.JWTSecret), cfg.JWTTTL)

	// ======================================================
	// USE CASES
	// ======================================================
	ledger := ucRating.NewLedger(ratingRepo, m)

	accounts, err := ucAccount.NewService(
		accountRepo,
		ucAccount.BcryptHasher{Cost: cfg.BcryptCost},
		tokens,
		ledger,
	)
	if err != nil {
		return Deps{}, err
	}

	return Deps{
		Accounts:  accounts,
		Directory: ucDirectory.NewService(directoryRepo, accountRepo),
		Ledger:    ledger,
		Tokens:    tokens,
		Metrics:   m,
		Logger:    logger,
	}, nil
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Logger),
		middleware.Metrics(d.Metrics),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.Accounts)
	meHandler := handlers.NewMeHandler(d.Accounts)
	adminHandler := handlers.NewAdminHandler(d.Accounts, d.Directory)
	userHandler := handlers.NewUserHandler(d.Directory, d.Ledger)
	ownerHandler := handlers.NewOwnerHandler(d.Ledger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Tokens))
		{
			secured.PATCH("/auth/update-password", authHandler.UpdatePassword)
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin", middleware.RequireRoles(access.AdminOnly))
			{
				admin.GET("/dashboard", adminHandler.Dashboard)
				admin.POST("/users", adminHandler.CreateUser)
				admin.GET("/users", adminHandler.ListUsers)
				admin.GET("/users/:id", adminHandler.GetUser)
				admin.GET("/stores", adminHandler.ListStores)
				admin.POST("/stores", adminHandler.CreateStore)
			}

			// ------------------------------
			// USER
			// ------------------------------
			user := secured.Group("/user", middleware.RequireRoles(access.UserOnly))
			{
				user.GET("/stores", userHandler.ListStores)
				user.POST("/ratings", userHandler.SubmitRating)
				user.PATCH("/ratings/:storeId", userHandler.UpdateRating)
			}

			// ------------------------------
			// OWNER
			// ------------------------------
			owner := secured.Group("/owner", middleware.RequireRoles(access.OwnerOnly))
			{
				owner.GET("/dashboard", ownerHandler.Dashboard)
			}
		}
	}
}
