package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/httpresp"
	"github.com/BruksfildServices01/store-ratings/internal/middleware"
	ucAccount "github.com/BruksfildServices01/store-ratings/internal/usecase/account"
)

type MeHandler struct {
	accounts *ucAccount.Service
}

func NewMeHandler(accounts *ucAccount.Service) *MeHandler {
	return &MeHandler{accounts: accounts}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	me, err := h.accounts.Me(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": me})
}
