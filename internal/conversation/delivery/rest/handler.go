package rest

import (
	"errors"

	"github.com/gin-gonic/gin"

	"content-copilot/internal/conversation"
	"content-copilot/internal/model"
	pkgResponse "content-copilot/pkg/response"
)

var errUnknownCollection = errors.New("unknown conversation collection")

func (h *handler) useCase(c *gin.Context) (conversation.UseCase, bool) {
	uc, ok := h.collections[c.Param("collection")]
	if !ok {
		pkgResponse.NotFound(c, errUnknownCollection)
		return nil, false
	}
	return uc, true
}

func scopeFrom(c *gin.Context) model.Scope {
	return model.Scope{UserID: c.GetHeader("X-User-ID")}
}

// Open opens (or resumes) the dialog for a subject.
func (h *handler) Open(c *gin.Context) {
	ctx := c.Request.Context()

	uc, ok := h.useCase(c)
	if !ok {
		return
	}

	var req OpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "conversation handler: failed to parse open request: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	out, err := uc.Open(ctx, scopeFrom(c), conversation.OpenInput{
		SubjectID:       req.SubjectID,
		SubjectMetadata: req.SubjectMetadata,
	})
	if err != nil {
		if errors.Is(err, conversation.ErrEmptySubject) {
			pkgResponse.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "conversation handler: open failed for subject %s: %v", req.SubjectID, err)
		pkgResponse.InternalError(c, err)
		return
	}

	resumed := out.Resumed
	pkgResponse.OK(c, SessionResponse{
		Session: out.Session,
		Resumed: &resumed,
		Busy:    uc.Busy(req.SubjectID),
	})
}

// Send performs one conversational turn.
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	uc, ok := h.useCase(c)
	if !ok {
		return
	}

	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "conversation handler: failed to parse send request: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	out, err := uc.Send(ctx, scopeFrom(c), conversation.SendInput{
		SubjectID: req.SubjectID,
		Text:      req.Text,
	})
	if err != nil {
		switch {
		case errors.Is(err, conversation.ErrEmptyMessage),
			errors.Is(err, conversation.ErrEmptySubject),
			errors.Is(err, conversation.ErrTurnInFlight):
			pkgResponse.Error(c, err, nil)
		case errors.Is(err, conversation.ErrSessionNotFound):
			pkgResponse.NotFound(c, err)
		default:
			h.l.Errorf(ctx, "conversation handler: send failed for subject %s: %v", req.SubjectID, err)
			pkgResponse.InternalError(c, err)
		}
		return
	}

	pkgResponse.OK(c, SessionResponse{
		Session: out.Session,
		Busy:    uc.Busy(req.SubjectID),
	})
}

// List returns every session in a collection.
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	uc, ok := h.useCase(c)
	if !ok {
		return
	}

	out, err := uc.List(ctx, scopeFrom(c))
	if err != nil {
		h.l.Errorf(ctx, "conversation handler: list failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, out)
}

// Delete removes one subject's session.
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	uc, ok := h.useCase(c)
	if !ok {
		return
	}

	subjectID := c.Param("subjectId")
	if err := uc.Delete(ctx, scopeFrom(c), subjectID); err != nil {
		if errors.Is(err, conversation.ErrSessionNotFound) {
			pkgResponse.NotFound(c, err)
			return
		}
		pkgResponse.Error(c, err, nil)
		return
	}

	pkgResponse.OK(c, gin.H{"deleted": subjectID})
}

// Clear removes every session in a collection.
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	uc, ok := h.useCase(c)
	if !ok {
		return
	}

	if err := uc.Clear(ctx, scopeFrom(c)); err != nil {
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, gin.H{"status": "cleared"})
}
