package rest

import (
	"github.com/gin-gonic/gin"

	"content-copilot/internal/conversation"
	pkgLog "content-copilot/pkg/log"
)

// Handler is the interface for the conversation HTTP handlers.
type Handler interface {
	Open(c *gin.Context)
	Send(c *gin.Context)
	List(c *gin.Context)
	Delete(c *gin.Context)
	Clear(c *gin.Context)
}

type handler struct {
	l           pkgLog.Logger
	collections map[string]conversation.UseCase
}

// New creates a new conversation HTTP handler. Each named collection
// (posts, calls) is served by its own UseCase instance bound to its own
// session store.
func New(l pkgLog.Logger, collections map[string]conversation.UseCase) Handler {
	return &handler{
		l:           l,
		collections: collections,
	}
}
