package controllers

import (
	"net/http"
	"strconv"

	"github.com/Voisew/foodgram-st/config"
	"github.com/Voisew/foodgram-st/services"
	"github.com/Voisew/foodgram-st/utils"

	"github.com/gin-gonic/gin"
)

func ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	userSvc := services.NewUserService(config.DB, utils.S3Uploader{})
	users, err := userSvc.List(page, limit)
	if err != nil {
		serviceError(c, err)
		return
	}

	rc, err := services.NewRenderContext(config.DB, c.GetUint("userID"))
	if err != nil {
		serviceError(c, err)
		return
	}

	views := make([]services.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, rc.UserView(u))
	}
	c.JSON(http.StatusOK, gin.H{"results": views})
}

func GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	userSvc := services.NewUserService(config.DB, utils.S3Uploader{})
	user, err := userSvc.Get(uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}

	rc, err := services.NewRenderContext(config.DB, c.GetUint("userID"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rc.UserView(*user))
}

func Me(c *gin.Context) {
	userSvc := services.NewUserService(config.DB, utils.S3Uploader{})
	user, err := userSvc.Get(c.GetUint("userID"))
	if err != nil {
		serviceError(c, err)
		return
	}

	rc, err := services.NewRenderContext(config.DB, user.ID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rc.UserView(*user))
}

func SetPassword(c *gin.Context) {
	var input struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userSvc := services.NewUserService(config.DB, utils.S3Uploader{})
	if err := userSvc.SetPassword(c.GetUint("userID"), input.CurrentPassword, input.NewPassword); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func UpdateAvatar(c *gin.Context) {
	var input struct {
		Avatar string `json:"avatar" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar field is required"})
		return
	}

	userSvc := services.NewUserService(config.DB, utils.S3Uploader{})
	url, err := userSvc.SetAvatar(c.GetUint("userID"), input.Avatar)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar": url})
}

func DeleteAvatar(c *gin.Context) {
	userSvc := services.NewUserService(config.DB, utils.S3Uploader{})
	if err := userSvc.ClearAvatar(c.GetUint("userID")); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
