package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JRossell27/Job-tracker/internal/delivery/http/response"
	"github.com/JRossell27/Job-tracker/internal/domain"
	"github.com/JRossell27/Job-tracker/pkg/apperror"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers the public auth routes
func NewAuthHandler(r *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	r.POST("/auth/login", handler.Login)
}

// LoginRequest is the login form payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      Log in or register
// @Description  Verify credentials; an unknown username is registered on its first attempt
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  response.Response{data=domain.LoginResult}
// @Failure      401   {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	message := "Logged in"
	if result.Registered {
		message = "Account created"
	}
	response.Success(c, http.StatusOK, message, result)
}
