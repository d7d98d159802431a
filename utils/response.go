package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Response is the envelope shared by every JSON endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

// FailValidation renders a 422 with a field→message map when the error comes
// from gin's binding validator, otherwise falls back to the raw message.
func FailValidation(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = validationMessage(fe)
		}
		c.JSON(http.StatusUnprocessableEntity, Response{
			Success: false,
			Message: "validation failed",
			Errors:  fields,
		})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, Response{Success: false, Message: err.Error()})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must be " + fe.Param() + " or greater"
	case "eqfield":
		return "must match " + strings.ToLower(fe.Param())
	default:
		return "is invalid"
	}
}
