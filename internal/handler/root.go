package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const welcomeMessage = "Welcome to the Ecommerce QA API"

// Welcome handles GET /
func Welcome(c *gin.Context) {
	c.String(http.StatusOK, welcomeMessage)
}
