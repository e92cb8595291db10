package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yashwanthkasi9182/PlayMate/models"
	"github.com/yashwanthkasi9182/PlayMate/services/share"
)

// @Summary Share a generation result
// @Description Stores the teams and matches and returns a signed token to fetch them later
// @Tags share
// @Accept json
// @Produce json
// @Param request body models.ShareData true "Result to share"
// @Success 201 {object} models.ShareResponse
// @Failure 400 {object} models.ShareResponse
// @Failure 500 {object} models.ShareResponse
// @Failure 503 {object} models.ShareResponse
// @Router /share [post]
func CreateShare(store ShareStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusServiceUnavailable, models.ShareResponse{Error: "Sharing is not enabled"})
			return
		}

		var data models.ShareData
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, models.ShareResponse{Error: msgInvalidBody})
			return
		}

		token, expiresAt, err := store.Create(c.Request.Context(), data)
		switch {
		case errors.Is(err, share.ErrNoTeams):
			c.JSON(http.StatusBadRequest, models.ShareResponse{Error: err.Error()})
		case err != nil:
			c.Error(err)
			c.JSON(http.StatusInternalServerError, models.ShareResponse{Error: "Failed to share result"})
		default:
			c.JSON(http.StatusCreated, models.ShareResponse{Success: true, Token: token, ExpiresAt: &expiresAt})
		}
	}
}

// @Summary Fetch a shared result
// @Tags share
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} models.ShareData
// @Failure 400 {object} models.ShareResponse
// @Failure 404 {object} models.ShareResponse
// @Failure 503 {object} models.ShareResponse
// @Router /share/{token} [get]
func GetShare(store ShareStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusServiceUnavailable, models.ShareResponse{Error: "Sharing is not enabled"})
			return
		}

		data, err := store.Resolve(c.Request.Context(), c.Param("token"))
		switch {
		case errors.Is(err, share.ErrInvalidToken):
			c.JSON(http.StatusBadRequest, models.ShareResponse{Error: err.Error()})
		case errors.Is(err, share.ErrNotFound):
			c.JSON(http.StatusNotFound, models.ShareResponse{Error: err.Error()})
		case err != nil:
			c.Error(err)
			c.JSON(http.StatusInternalServerError, models.ShareResponse{Error: "Failed to load shared result"})
		default:
			c.JSON(http.StatusOK, data)
		}
	}
}
