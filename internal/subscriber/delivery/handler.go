package delivery

import (
	"errors"
	"log"
	"net/http"

	"trendwatch-backend/internal/subscriber/usecase"

	"github.com/gin-gonic/gin"
)

// SubscriberHandler exposes the subscription CRUD endpoints
type SubscriberHandler struct {
	subscriberUsecase usecase.SubscriberUsecase
}

func NewSubscriberHandler(subscriberUsecase usecase.SubscriberUsecase) *SubscriberHandler {
	return &SubscriberHandler{subscriberUsecase: subscriberUsecase}
}

// Subscribe handles POST /api/subscribe
func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var input usecase.SubscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sub, created, err := h.subscriberUsecase.Subscribe(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{
			"message":    "Subscribed successfully",
			"subscriber": sub,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Subscription updated successfully",
		"subscriber": sub,
	})
}

// Status handles GET /api/subscribe?email=
func (h *SubscriberHandler) Status(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email parameter required"})
		return
	}

	sub, err := h.subscriberUsecase.Status(email)
	if err != nil {
		log.Printf("[Subscriber] Status check failed for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check subscription"})
		return
	}
	if sub == nil {
		c.JSON(http.StatusNotFound, gin.H{"subscribed": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscribed": true,
		"subscriber": gin.H{
			"email":     sub.Email,
			"languages": sub.Languages,
			"frequency": sub.Frequency,
			"is_active": sub.IsActive,
		},
	})
}

// Unsubscribe handles POST /api/unsubscribe
func (h *SubscriberHandler) Unsubscribe(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	if err := h.subscriberUsecase.Unsubscribe(body.Email); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "email not found in our system"})
			return
		}
		log.Printf("[Subscriber] Unsubscribe failed for %s: %v", body.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unsubscribe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Successfully unsubscribed",
	})
}

// UnsubscribeLink handles GET /api/unsubscribe?email= — the link embedded
// in digest emails, so the response is a small HTML page.
func (h *SubscriberHandler) UnsubscribeLink(c *gin.Context) {
	// gin decodes the query parameter, no extra unescaping needed
	email := c.Query("email")
	if email == "" {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(unsubscribeInvalidPage))
		return
	}

	if err := h.subscriberUsecase.Unsubscribe(email); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(unsubscribeNotFoundPage))
			return
		}
		log.Printf("[Subscriber] Unsubscribe link failed for %s: %v", email, err)
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(unsubscribeErrorPage))
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(unsubscribeSuccessPage))
}
