package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/ladder/config"
	"github.com/DhavalSuthar-24/ladder/internal/category"
	"github.com/DhavalSuthar-24/ladder/internal/challenge"
	"github.com/DhavalSuthar-24/ladder/internal/common"
	"github.com/DhavalSuthar-24/ladder/internal/middleware"
	"github.com/DhavalSuthar-24/ladder/internal/player"
)

// SetupRoutes builds the engine. rdb may be nil, in which case challenge
// locks are held in-process.
func SetupRoutes(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceContext(), middleware.AccessLog(), middleware.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.App.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", common.TraceIDHeader, common.RequestIDHeader},
		ExposeHeaders:    []string{common.TraceIDHeader, common.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>Ladder</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>Ladder challenges</h1>
					<a href="/swagger/index.html">API docs</a>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	players := player.NewPlayerService(player.NewPlayerRepository(db))
	categories := category.NewCategoryService(category.NewCategoryRepository(db), players)

	var locker challenge.Locker = challenge.NewLocalLocker()
	if rdb != nil {
		locker = challenge.NewRedisLocker(rdb, cfg.Redis.LockTTL)
	}
	challenges := challenge.NewChallengeService(challenge.NewGormChallengeRepository(db), players, categories, locker)

	// API routes
	api := r.Group("/api")
	player.RegisterPlayerRoutes(api, players)
	category.RegisterCategoryRoutes(api, categories)
	challenge.RegisterChallengeRoutes(api, challenges)

	return r
}
