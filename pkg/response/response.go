package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends a 400 with the error message and optional detail.
func Error(c *gin.Context, err error, detail map[string]any) {
	var d any
	if len(detail) > 0 {
		d = detail
	}
	c.JSON(http.StatusBadRequest, NewErrResp(BadRequestCode, err, d))
}

// InternalError sends 500 internal server error. The cause is not exposed.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, NewErrResp(InternalServerErrorCode, nil, nil))
}

// NotFound sends 404 with the error message.
func NotFound(c *gin.Context, err error) {
	c.JSON(http.StatusNotFound, NewErrResp(NotFoundCode, err, nil))
}

// TooManyRequests sends 429 and aborts the chain.
func TooManyRequests(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, NewErrResp(TooManyRequestsCode, err, nil))
}

// ServiceUnavailable sends 503 when a backend the request needs is not ready.
func ServiceUnavailable(c *gin.Context, err error) {
	c.JSON(http.StatusServiceUnavailable, NewErrResp(ServiceUnavailableCode, err, nil))
}
