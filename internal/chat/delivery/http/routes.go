package http

import (
	"github.com/gin-gonic/gin"

	"foodhub-support/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw *middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.SubmitTurn)

	conversations := rg.Group("/conversations")
	{
		conversations.GET("/:id", h.ConversationDetail)
		conversations.DELETE("/:id", h.ClearConversation)
	}
}
