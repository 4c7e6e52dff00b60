package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"bookreview-backend/internal/shared/middleware"
	"bookreview-backend/internal/shared/response"
	"bookreview-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.RateLimit(rate.Limit(50), 100),
	)

	// Unmapped paths and unsupported verbs both get the fixed 405 body, so a
	// client can tell "no such endpoint" apart from "no such resource id".
	// Gin gives these fallbacks the lowest routing priority.
	router.HandleMethodNotAllowed = true
	router.NoRoute(response.MethodNotAllowed)
	router.NoMethod(response.MethodNotAllowed)

	router.GET("/health", healthCheckHandler(c))

	// Token endpoints are the only unauthenticated surface.
	router.POST("/api/token/", c.UserHandler.ObtainTokenPair)
	router.POST("/api/token/refresh/", c.UserHandler.RefreshToken)

	authed := router.Group("/", middleware.RequireAuth(c.JWTManager))
	{
		authed.POST("/register/", c.UserHandler.Register)
		authed.GET("/user-details/", c.UserHandler.Details)

		authed.GET("/authors/", c.AuthorHandler.List)
		authed.POST("/authors/", c.AuthorHandler.Create)
		authed.GET("/authors/:author_id/", c.AuthorHandler.Get)
		authed.PUT("/authors/:author_id/", c.AuthorHandler.Replace)
		authed.DELETE("/authors/:author_id/", c.AuthorHandler.Delete)

		authed.GET("/books/", c.BookHandler.List)

		authed.GET("/author/:author_id/books/", c.BookHandler.ListByAuthor)
		authed.POST("/author/:author_id/books/", c.BookHandler.Create)
		authed.GET("/author/:author_id/books/:book_id/", c.BookHandler.Get)
		authed.PUT("/author/:author_id/books/:book_id/", c.BookHandler.Replace)
		authed.DELETE("/author/:author_id/books/:book_id/", c.BookHandler.Delete)

		authed.GET("/reviews/", c.ReviewHandler.List)
		authed.POST("/reviews/", c.ReviewHandler.Create)

		authed.GET("/author/:author_id/book/:book_id/reviews", c.ReviewHandler.ListByBook)
		authed.GET("/author/:author_id/book/:book_id/reviews/:review_id/", c.ReviewHandler.Get)
		authed.PUT("/author/:author_id/book/:book_id/reviews/:review_id/", c.ReviewHandler.Replace)
		authed.DELETE("/author/:author_id/book/:book_id/reviews/:review_id/", c.ReviewHandler.Delete)
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		dbStatus := "up"
		cacheStatus := "up"

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "down"
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			cacheStatus = "down"
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}

		ctx.JSON(status, gin.H{
			"status":   overall,
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
