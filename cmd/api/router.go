package api

import (
	"net/http"

	digestDelivery "trendwatch-backend/internal/digest/delivery"
	subscriberDelivery "trendwatch-backend/internal/subscriber/delivery"
	"trendwatch-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, subscriberHandler *subscriberDelivery.SubscriberHandler, digestHandler *digestDelivery.DigestHandler, cfg *config.Config) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Subscription routes
		api.POST("/subscribe", subscriberHandler.Subscribe)
		api.GET("/subscribe", subscriberHandler.Status)
		api.POST("/unsubscribe", subscriberHandler.Unsubscribe)
		api.GET("/unsubscribe", subscriberHandler.UnsubscribeLink)

		// Cron routes (shared-secret bearer auth)
		cron := api.Group("/cron")
		{
			cron.GET("/scrape", digestDelivery.CronAuthMiddleware(cfg.CronSecret), digestHandler.RunDigest)
			cron.GET("/logs", digestDelivery.CronAuthMiddleware(cfg.CronSecret), digestHandler.Logs)
			// Manual trigger for testing - intentionally unauthenticated
			cron.POST("/scrape", digestHandler.TriggerDigest)
		}

		// Test routes (manual verification of the individual stages)
		api.GET("/test-scrape", digestHandler.TestScrape)
		api.GET("/test-digest", digestHandler.TestDigest)
	}
}
