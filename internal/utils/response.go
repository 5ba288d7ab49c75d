package utils

import (
	"net/http"

	"github.com/webbplats/site/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleSuccess sends a success response with data
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(data))
}

// HandleMessage sends a success response with just a message
func HandleMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, common.NewMessageResponse(message))
}

// HandleNotFound sends a not found error for the named resource
func HandleNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, common.NewErrorResponse(common.ErrCodeNotFound, resource+" not found", nil))
}
