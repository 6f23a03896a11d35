package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"foodhub-support/internal/chat"
	"foodhub-support/internal/model"
	"foodhub-support/pkg/response"
)

// SubmitTurn godoc
// @Summary     Submit one chat turn
// @Description Runs a customer utterance through guardrails, intent routing, and grounded composition, and returns the reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body submitTurnReq true "Turn data"
// @Success     200 {object} submitTurnResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) SubmitTurn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitTurnReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SubmitTurn(ctx, req.scope(), req.toInput())
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			response.Error(c, err, nil)
			return
		}
		if errors.Is(err, chat.ErrConversationNotFound) {
			response.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.SubmitTurn: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newSubmitTurnResp(output))
}

// ConversationDetail godoc
// @Summary     Get conversation detail
// @Description Returns the recorded history and resolved state of one conversation.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id path string true "Conversation ID"
// @Success     200 {object} conversationResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/conversations/{id} [GET]
func (h *handler) ConversationDetail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	sc := model.Scope{CustomerID: c.Query("customer_id")}

	output, err := h.uc.Conversation(ctx, sc, id)
	if err != nil {
		if errors.Is(err, chat.ErrConversationNotFound) {
			response.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.Conversation: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newConversationResp(output))
}

// ClearConversation godoc
// @Summary     Clear a conversation
// @Description Drops a conversation's history and resolved state.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id path string true "Conversation ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/conversations/{id} [DELETE]
func (h *handler) ClearConversation(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	sc := model.Scope{CustomerID: c.Query("customer_id")}

	if err := h.uc.ClearConversation(ctx, sc, id); err != nil {
		if errors.Is(err, chat.ErrConversationNotFound) {
			response.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.ClearConversation: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, nil)
}
