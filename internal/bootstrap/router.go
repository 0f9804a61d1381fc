package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/coursework-hub/instructor-dashboard/internal/api/http"
	"github.com/coursework-hub/instructor-dashboard/internal/api/http/middleware"
	dashhttp "github.com/coursework-hub/instructor-dashboard/internal/dashboard/http"
	"github.com/coursework-hub/instructor-dashboard/internal/dashboard/session"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	Course      dashhttp.CourseAPI
	Sessions    session.Store
	Dashboard   dashhttp.Options
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	if len(dep.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     dep.CORSOrigins,
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
			ExposeHeaders:    []string{"X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	dashhttp.ConfigureEngine(r)

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Sessions)
	healthHandler.RegisterRoutes(r)

	dashboard := dashhttp.New(dep.Course, dep.Sessions, dep.Dashboard)
	dashboard.RegisterRoutes(r)

	return r
}
