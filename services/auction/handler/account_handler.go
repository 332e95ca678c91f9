package handler

import (
	"context"
	"net/http"

	"auction-client/internal/accounts"
	"auction-client/internal/forms"
	"auction-client/services/auction/helpers"
	"auction-client/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=account_handler.go -destination=mock_account_handler.go -package=handler

type AccountServiceInterface interface {
	RegisterUser(ctx context.Context, form forms.RegistrationForm) (accounts.Result, error)
	LoginUser(ctx context.Context, form forms.LoginForm) (accounts.Result, error)
	RegisterSeller(ctx context.Context, form forms.RegistrationForm) (accounts.Result, error)
	LoginSeller(ctx context.Context, form forms.LoginForm) (accounts.Result, error)
	LoginAdmin(ctx context.Context, form forms.AdminLoginForm) (accounts.Result, error)
	Logout() (accounts.Result, error)
}

type AccountHandler struct {
	service AccountServiceInterface
}

func NewAccountHandler(service AccountServiceInterface) *AccountHandler {
	return &AccountHandler{service: service}
}

// RegisterUserHandler handles POST /users/register
func (h *AccountHandler) RegisterUserHandler(c *gin.Context) {
	var form forms.RegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "RegisterUserHandler", err)
		return
	}
	res, err := h.service.RegisterUser(c.Request.Context(), form)
	h.respond(c, "RegisterUserHandler", http.StatusCreated, res, err, map[string]any{"email": form.Email})
}

// LoginUserHandler handles POST /users/login
func (h *AccountHandler) LoginUserHandler(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "LoginUserHandler", err)
		return
	}
	res, err := h.service.LoginUser(c.Request.Context(), form)
	h.respond(c, "LoginUserHandler", http.StatusOK, res, err, map[string]any{"email": form.Email})
}

// RegisterSellerHandler handles POST /sellers/register
func (h *AccountHandler) RegisterSellerHandler(c *gin.Context) {
	var form forms.RegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "RegisterSellerHandler", err)
		return
	}
	res, err := h.service.RegisterSeller(c.Request.Context(), form)
	h.respond(c, "RegisterSellerHandler", http.StatusCreated, res, err, map[string]any{"email": form.Email})
}

// LoginSellerHandler handles POST /sellers/login
func (h *AccountHandler) LoginSellerHandler(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "LoginSellerHandler", err)
		return
	}
	res, err := h.service.LoginSeller(c.Request.Context(), form)
	h.respond(c, "LoginSellerHandler", http.StatusOK, res, err, map[string]any{"email": form.Email})
}

// LoginAdminHandler handles POST /admin/login
func (h *AccountHandler) LoginAdminHandler(c *gin.Context) {
	var form forms.AdminLoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "LoginAdminHandler", err)
		return
	}
	res, err := h.service.LoginAdmin(c.Request.Context(), form)
	h.respond(c, "LoginAdminHandler", http.StatusOK, res, err, nil)
}

// LogoutHandler handles POST /logout
func (h *AccountHandler) LogoutHandler(c *gin.Context) {
	res, err := h.service.Logout()
	h.respond(c, "LogoutHandler", http.StatusOK, res, err, nil)
}

func (h *AccountHandler) respond(c *gin.Context, handlerName string, status int, res accounts.Result, err error, fields map[string]any) {
	if err != nil {
		helpers.HandleServiceError(c, handlerName, err, fields)
		return
	}
	message := res.Message
	if message == "" {
		message = "ok"
	}
	utils.JSONResponse(c, status, res, message)
	helpers.LogSuccess(handlerName, message, fields)
}
