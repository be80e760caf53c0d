package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/middleware"
	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/models"
	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/service"
)

// AccountRegistrar defines the account operations used by AccountHandler.
type AccountRegistrar interface {
	Register(candidate models.Account) (*models.Account, error)
	VerifyLogin(username, password string) (*models.Account, error)
}

// AccountHandler handles registration and login HTTP requests.
type AccountHandler struct {
	accounts AccountRegistrar
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=4"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAccountHandler(accounts AccountRegistrar) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

func (h *AccountHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	account, err := h.accounts.Register(models.Account{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAccount):
			middleware.RespondWithError(c, http.StatusBadRequest, "Invalid username or password")
		case errors.Is(err, service.ErrUsernameTaken):
			middleware.RespondWithError(c, http.StatusConflict, "Username already taken")
		default:
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to register account")
		}
		return
	}

	c.JSON(http.StatusCreated, account)
}

// Login deliberately skips validator checks: missing or malformed credentials
// fail verification and come back as the same 401 as a wrong password.
func (h *AccountHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.accounts.VerifyLogin(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			middleware.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to verify credentials")
		return
	}

	c.JSON(http.StatusOK, account)
}
