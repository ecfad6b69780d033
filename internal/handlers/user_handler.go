package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainDir "github.com/BruksfildServices01/store-ratings/internal/domain/directory"
	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/httpresp"
	"github.com/BruksfildServices01/store-ratings/internal/middleware"
	ucDirectory "github.com/BruksfildServices01/store-ratings/internal/usecase/directory"
	ucRating "github.com/BruksfildServices01/store-ratings/internal/usecase/rating"
)

type UserHandler struct {
	directory *ucDirectory.Service
	ledger    *ucRating.Ledger
}

func NewUserHandler(directory *ucDirectory.Service, ledger *ucRating.Ledger) *UserHandler {
	return &UserHandler{directory: directory, ledger: ledger}
}

type SubmitRatingRequest struct {
	StoreID uint `json:"store_id" binding:"required,min=1"`
	Rating  int  `json:"rating" binding:"required,min=1,max=5"`
}

type UpdateRatingRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

type UserStoresQuery struct {
	Name    string `form:"name"`
	Address string `form:"address"`
	Sort    string `form:"sort"`
}

func (h *UserHandler) ListStores(c *gin.Context) {
	var q UserStoresQuery
	if !bindQuery(c, &q) {
		return
	}

	rows, err := h.directory.ListStoresForUser(
		c.Request.Context(),
		middleware.IdentityFrom(c),
		domainDir.UserStoreFilter{
			Name:    q.Name,
			Address: q.Address,
			Sort:    domainDir.UserStoreSorts.Parse(q.Sort),
		},
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, rows)
}

// SubmitRating creates or replaces the caller's rating and answers with the
// store's new average.
func (h *UserHandler) SubmitRating(c *gin.Context) {
	var req SubmitRatingRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if err := h.ledger.UpsertRating(ctx, middleware.IdentityFrom(c), req.StoreID, req.Rating); err != nil {
		httperr.FromError(c, err)
		return
	}

	avg, err := h.ledger.AverageForStore(ctx, req.StoreID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Rating submitted successfully",
		"avg_rating": avg,
	})
}

func (h *UserHandler) UpdateRating(c *gin.Context) {
	storeID, ok := uintParam(c, "storeId")
	if !ok {
		return
	}

	var req UpdateRatingRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.ledger.UpdateRating(c.Request.Context(), middleware.IdentityFrom(c), storeID, req.Rating)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Rating updated successfully"})
}
