package helper

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// HTTPHelper centralises the JSON response shapes. Success bodies carry
// the resource payload directly; error bodies are {"error": message}.
type HTTPHelper struct{}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

// SendSuccess ...
func (u *HTTPHelper) SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendCreated ...
func (u *HTTPHelper) SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// SendConfirmation sends the {"message": ...} body used by mutations.
func (u *HTTPHelper) SendConfirmation(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// SendBadRequest ...
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// SendValidationError formats binding failures. Field-level validator
// errors become a per-field map; anything else (malformed JSON) gets a
// plain message.
func (u *HTTPHelper) SendValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := map[string][]string{}
		for _, fe := range verrs {
			key := strings.ToLower(fe.Field())
			fields[key] = append(fields[key], fe.Tag())
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}
	u.SendBadRequest(c, err.Error())
}

// SendUnauthorized rejects a caller whose role is insufficient.
func (u *HTTPHelper) SendUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
}

// SendForbidden rejects a caller with no usable token.
func (u *HTTPHelper) SendForbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"error": message})
}

// SendNotFound ...
func (u *HTTPHelper) SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

// SendConflict ...
func (u *HTTPHelper) SendConflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{"error": message})
}

// SendStorageError hides store detail from the client; callers log the
// underlying error server-side.
func (u *HTTPHelper) SendStorageError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
}
