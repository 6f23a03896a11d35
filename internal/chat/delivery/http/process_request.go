package http

import (
	"github.com/gin-gonic/gin"
)

// processSubmitTurnReq binds and validates the chat request body.
func (h *handler) processSubmitTurnReq(c *gin.Context) (submitTurnReq, error) {
	var req submitTurnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
