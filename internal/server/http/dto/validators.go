package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/nafru/exportdesk/internal/domain/model"
)

// The doctype rule rejects unknown document types at binding time so they
// never reach the use case layer.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("doctype", func(fl validator.FieldLevel) bool {
		_, known := model.ParseDocumentType(fl.Field().String())
		return known
	})
}
