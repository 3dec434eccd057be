package api

import (
	"errors"
	"net/http"

	"shipsy/internal/app/ds"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// serverError hides storage failures behind a generic response; the
// detail is logged and only echoed to the client outside release mode.
func serverError(c *gin.Context, err error) {
	logrus.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	resp := gin.H{"message": "Server error"}
	if gin.Mode() != gin.ReleaseMode {
		resp["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

func validationError(c *gin.Context, err error) {
	var ve *ds.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":  "Validation failed",
			"required": ve.Fields,
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
}
