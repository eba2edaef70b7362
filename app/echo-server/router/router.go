package router

import (
	"spotQuest/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupExplorationRoutes(api *echo.Group, handler *rest.ExplorationHandler, authRequired echo.MiddlewareFunc) {
	stats := api.Group("/exploration-stats", authRequired)
	stats.GET("", handler.GetStats)
	stats.GET("/check-new-neighborhood", handler.CheckNewNeighborhood)

	api.GET("/neighborhoods", handler.ListNeighborhoods, authRequired)
}

func SetupFriendRoutes(api *echo.Group, handler *rest.FriendsHandler, authRequired echo.MiddlewareFunc) {
	friends := api.Group("/friends", authRequired)
	friends.GET("/:id/compatibility", handler.GetCompatibility)
	friends.GET("/:id/exploration-compare", handler.GetExplorationCompare)
}

func SetupBadgeRoutes(api *echo.Group, handler *rest.BadgeHandler, authRequired echo.MiddlewareFunc) {
	badges := api.Group("/badges", authRequired)
	badges.GET("", handler.List)
	badges.POST("/check", handler.Check)
}

func SetupMetricsRoute(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
