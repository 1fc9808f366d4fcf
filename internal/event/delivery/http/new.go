package http

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"calendar-tool-service/internal/event"
	"calendar-tool-service/pkg/log"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	CreateEvent(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc event.UseCase
}

var registerTagNameOnce sync.Once

// New creates a new HTTP handler for the event domain.
func New(l log.Logger, uc event.UseCase) *handler {
	registerTagNameOnce.Do(useJSONFieldNames)

	return &handler{
		l:  l,
		uc: uc,
	}
}

// useJSONFieldNames makes validation errors report the JSON name of a field
// instead of the Go one.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}
