package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praisepoint/site-api/internal/system/error/apierror"
	"github.com/praisepoint/site-api/internal/system/error/codes"
	"github.com/praisepoint/site-api/internal/system/error/serviceerror"
)

// SendError writes a ServiceError as an HTTP response with appropriate status code
func SendError(c *gin.Context, err *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if err.Type == serviceerror.ClientErrorType {
		switch err.Code {
		case codes.ResourceNotFound, codes.UnsupportedLocale:
			statusCode = http.StatusNotFound
		default:
			statusCode = http.StatusBadRequest
		}
	}

	c.AbortWithStatusJSON(statusCode, apierror.NewErrorResponse(err.Error, err.ErrorDescription))
}
