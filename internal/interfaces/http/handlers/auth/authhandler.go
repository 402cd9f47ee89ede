package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/auth/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthHandler struct {
	sendOTPUC        usecases.SendOTPExecutor
	verifyOTPUC      usecases.VerifyOTPExecutor
	registerUC       usecases.RegisterExecutor
	loginUC          usecases.LoginExecutor
	getCurrentUserUC usecases.GetCurrentUserExecutor
	authConfig       config.AuthConfig
	logger           logger.Interface
}

func NewAuthHandler(
	sendOTPUC usecases.SendOTPExecutor,
	verifyOTPUC usecases.VerifyOTPExecutor,
	registerUC usecases.RegisterExecutor,
	loginUC usecases.LoginExecutor,
	getCurrentUserUC usecases.GetCurrentUserExecutor,
	authConfig config.AuthConfig,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		sendOTPUC:        sendOTPUC,
		verifyOTPUC:      verifyOTPUC,
		registerUC:       registerUC,
		loginUC:          loginUC,
		getCurrentUserUC: getCurrentUserUC,
		authConfig:       authConfig,
		logger:           log,
	}
}

// SendOTP handles POST /auth/send-otp
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for send otp", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "email is required")
		return
	}

	if err := h.sendOTPUC.Execute(c.Request.Context(), usecases.SendOTPCommand{Email: req.Email}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "OTP sent", nil)
}

// VerifyOTP handles POST /auth/verify-otp
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for verify otp", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "email and code are required")
		return
	}

	cmd := usecases.VerifyOTPCommand{Email: req.Email, Code: req.Code}
	if err := h.verifyOTPUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "email verified", nil)
}

// CompleteRegistration handles POST /auth/complete-registration
func (h *AuthHandler) CompleteRegistration(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for registration", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "name, email and password are required")
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	utils.CreatedResponse(c, result.User, "registration completed")
}

// LegacyRegister handles POST /auth/register. Direct registration is gone;
// clients must go through the OTP flow.
func (h *AuthHandler) LegacyRegister(c *gin.Context) {
	utils.ErrorResponse(c, http.StatusBadRequest, "direct registration is disabled, verify your email via /api/auth/send-otp first")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	utils.SuccessResponse(c, http.StatusOK, "login successful", result.User)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	result, err := h.getCurrentUserUC.Execute(c.Request.Context(), usecases.GetCurrentUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Logout handles POST /auth/logout. Stateless sessions: clearing the cookie
// is the whole logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.authConfig.Cookie, h.authConfig.Session.CookieName)
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	maxAge := h.authConfig.Session.ExpHours * 3600
	utils.SetSessionCookie(c, h.authConfig.Cookie, h.authConfig.Session.CookieName, token, maxAge)
}
