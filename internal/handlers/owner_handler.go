package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/httpresp"
	"github.com/BruksfildServices01/store-ratings/internal/middleware"
	ucRating "github.com/BruksfildServices01/store-ratings/internal/usecase/rating"
)

type OwnerHandler struct {
	ledger *ucRating.Ledger
}

func NewOwnerHandler(ledger *ucRating.Ledger) *OwnerHandler {
	return &OwnerHandler{ledger: ledger}
}

func (h *OwnerHandler) Dashboard(c *gin.Context) {
	d, err := h.ledger.OwnerDashboard(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, d)
}
