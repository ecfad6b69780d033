package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainDir "github.com/BruksfildServices01/store-ratings/internal/domain/directory"
	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/httpresp"
	"github.com/BruksfildServices01/store-ratings/internal/middleware"
	"github.com/BruksfildServices01/store-ratings/internal/models"
	ucAccount "github.com/BruksfildServices01/store-ratings/internal/usecase/account"
	ucDirectory "github.com/BruksfildServices01/store-ratings/internal/usecase/directory"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	accounts  *ucAccount.Service
	directory *ucDirectory.Service
}

func NewAdminHandler(
	accounts *ucAccount.Service,
	directory *ucDirectory.Service,
) *AdminHandler {
	return &AdminHandler{
		accounts:  accounts,
		directory: directory,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,display_name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,strong_password"`
	Address  string `json:"address" binding:"omitempty,max=400"`
	Role     string `json:"role" binding:"required,oneof=admin user owner"`
}

type CreateStoreRequest struct {
	Name    string `json:"name" binding:"required,min=20,max=60"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"omitempty,max=400"`
	OwnerID *uint  `json:"owner_id" binding:"omitempty,min=1"`
}

type ListUsersQuery struct {
	Name  string `form:"name"`
	Email string `form:"email"`
	Role  string `form:"role"`
	Sort  string `form:"sort"`
}

type ListStoresQuery struct {
	Name  string `form:"name"`
	Email string `form:"email"`
	Sort  string `form:"sort"`
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *AdminHandler) Dashboard(c *gin.Context) {
	d, err := h.directory.Dashboard(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, d)
}

// ======================================================
// USERS
// ======================================================

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.accounts.AdminCreateAccount(
		c.Request.Context(),
		middleware.IdentityFrom(c),
		ucAccount.CreateAccountInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Address:  req.Address,
			Role:     models.Role(req.Role),
		},
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"id":      id,
	})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var q ListUsersQuery
	if !bindQuery(c, &q) {
		return
	}

	rows, err := h.directory.ListAccounts(
		c.Request.Context(),
		middleware.IdentityFrom(c),
		domainDir.AccountFilter{
			Name:  q.Name,
			Email: q.Email,
			Role:  models.Role(q.Role),
			Sort:  domainDir.AccountSorts.Parse(q.Sort),
		},
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.accounts.AccountDetail(c.Request.Context(), middleware.IdentityFrom(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, detail)
}

// ======================================================
// STORES
// ======================================================

func (h *AdminHandler) ListStores(c *gin.Context) {
	var q ListStoresQuery
	if !bindQuery(c, &q) {
		return
	}

	rows, err := h.directory.ListStores(
		c.Request.Context(),
		middleware.IdentityFrom(c),
		domainDir.StoreFilter{
			Name:  q.Name,
			Email: q.Email,
			Sort:  domainDir.StoreSorts.Parse(q.Sort),
		},
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *AdminHandler) CreateStore(c *gin.Context) {
	var req CreateStoreRequest
	if !bindJSON(c, &req) {
		return
	}

	st, err := h.directory.CreateStore(
		c.Request.Context(),
		middleware.IdentityFrom(c),
		ucDirectory.CreateStoreInput{
			Name:    req.Name,
			Email:   req.Email,
			Address: req.Address,
			OwnerID: req.OwnerID,
		},
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Store created successfully",
		"id":      st.ID,
	})
}
