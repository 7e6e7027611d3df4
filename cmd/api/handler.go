package api

import (
	digestDelivery "trendwatch-backend/internal/digest/delivery"
	subscriberDelivery "trendwatch-backend/internal/subscriber/delivery"
	"trendwatch-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	subscriberHandler *subscriberDelivery.SubscriberHandler
	digestHandler     *digestDelivery.DigestHandler
	config            *config.Config
}

func NewHandler(subscriberHandler *subscriberDelivery.SubscriberHandler, digestHandler *digestDelivery.DigestHandler, cfg *config.Config) *Handler {
	return &Handler{
		subscriberHandler: subscriberHandler,
		digestHandler:     digestHandler,
		config:            cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.subscriberHandler, h.digestHandler, h.config)

	return r.Run(addr)
}
