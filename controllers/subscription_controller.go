package controllers

import (
	"net/http"
	"strconv"

	"github.com/Voisew/foodgram-st/config"
	"github.com/Voisew/foodgram-st/services"

	"github.com/gin-gonic/gin"
)

func Subscribe(c *gin.Context) {
	authorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	subSvc := services.NewSubscriptionService(config.DB)
	view, err := subSvc.Follow(c.GetUint("userID"), uint(authorID))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func Unsubscribe(c *gin.Context) {
	authorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	subSvc := services.NewSubscriptionService(config.DB)
	if err := subSvc.Unfollow(c.GetUint("userID"), uint(authorID)); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func ListSubscriptions(c *gin.Context) {
	// Absent or non-numeric recipes_limit means "no cap".
	limit := services.NoRecipeCap
	if raw := c.Query("recipes_limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			limit = n
		}
	}

	subSvc := services.NewSubscriptionService(config.DB)
	views, err := subSvc.List(c.GetUint("userID"), limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": views})
}
