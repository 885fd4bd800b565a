package v1

import (
	"net/http"

	"go-internmatch-backend/internal/delivery/http/response"
	"go-internmatch-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers the authentication surface. authLimit throttles
// the whole public group; loginLimit adds a tighter per-IP budget on the
// credential-guessing targets.
func NewAuthHandler(public, protected *gin.RouterGroup, authUC domain.AuthUsecase, authLimit, loginLimit gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	auth := public.Group("/auth")
	auth.Use(authLimit)
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", loginLimit, handler.Login)
		auth.POST("/google", handler.GoogleLogin)
		auth.POST("/line/callback", handler.LineLogin)
		auth.POST("/forgot-password", loginLimit, handler.ForgotPassword)
		auth.POST("/reset-password/:token", handler.ResetPassword)
	}

	authed := protected.Group("/auth")
	{
		authed.GET("/me", handler.Me)
		authed.POST("/change-password", handler.ChangePassword)
	}
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates a user with its role-matching profile. Admin accounts cannot be self-registered.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.RegisterInput  true  "Registration data"
// @Success      201   {object}  response.Response{data=domain.User}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input domain.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Account created", user)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  response.Response{data=domain.AuthResult}
// @Failure      400   {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Login successful", result)
}

type federatedLoginRequest struct {
	Code string `json:"code" binding:"required"`
}

// GoogleLogin godoc
// @Summary      Log in via Google authorization code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      federatedLoginRequest  true  "Authorization code"
// @Success      200   {object}  response.Response{data=domain.AuthResult}
// @Failure      502   {object}  response.Response
// @Router       /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	h.federatedLogin(c, domain.ProviderGoogle)
}

// LineLogin godoc
// @Summary      Log in via LINE authorization code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      federatedLoginRequest  true  "Authorization code"
// @Success      200   {object}  response.Response{data=domain.AuthResult}
// @Failure      502   {object}  response.Response
// @Router       /auth/line/callback [post]
func (h *AuthHandler) LineLogin(c *gin.Context) {
	h.federatedLogin(c, domain.ProviderLine)
}

func (h *AuthHandler) federatedLogin(c *gin.Context, provider string) {
	var req federatedLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.authUC.FederatedLogin(c.Request.Context(), provider, req.Code)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Login successful", result)
}

// Me godoc
// @Summary      Get the authenticated principal
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Current user", user)
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ChangePassword godoc
// @Summary      Change the authenticated user's password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      changePasswordRequest  true  "Passwords"
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /auth/change-password [post]
// @Security     BearerAuth
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.authUC.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password changed", nil)
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword godoc
// @Summary      Request a password reset link
// @Description  Always responds with the same generic message so account existence cannot be probed.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      200   {object}  response.Response
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.authUC.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "If that email exists, a reset link has been sent", nil)
}

type resetPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// ResetPassword godoc
// @Summary      Reset password using a token from the reset email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token  path      string                true  "Reset token"
// @Param        body   body      resetPasswordRequest  true  "New password"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /auth/reset-password/{token} [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.authUC.ResetPassword(c.Request.Context(), c.Param("token"), req.Password); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password has been reset", nil)
}
