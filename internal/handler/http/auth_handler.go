package http

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/nebiyou-tadesse/go-user-service/internal/domain/contract"
	"github.com/nebiyou-tadesse/go-user-service/internal/domain/entity"
	"github.com/nebiyou-tadesse/go-user-service/internal/handler/http/dto"
	usecasecontract "github.com/nebiyou-tadesse/go-user-service/internal/usecase/contract"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const oauthStateCookie = "oauthState"

// AuthHandler completes third-party (Google) logins. The flow is stateless
// on our side: the callback ends in the same bearer token a credential login
// produces, with only a short-lived CSRF state cookie in between.
type AuthHandler struct {
	userUsecase usecasecontract.IUserUseCase
	randomGen   contract.IRandomGenerator
	logger      usecasecontract.IAppLogger
	baseURL     string
}

func NewAuthHandler(uc usecasecontract.IUserUseCase, randomGen contract.IRandomGenerator, logger usecasecontract.IAppLogger, baseURL string) *AuthHandler {
	return &AuthHandler{
		userUsecase: uc,
		randomGen:   randomGen,
		logger:      logger,
		baseURL:     baseURL,
	}
}

func (h *AuthHandler) googleOauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  h.baseURL + "/api/v1/users/google/callback",
		Scopes:       []string{"email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

// HandleGoogleLogin redirects the browser to Google's consent screen.
func (h *AuthHandler) HandleGoogleLogin(c *gin.Context) {
	state, err := h.randomGen.GenerateRandomToken(16)
	if err != nil {
		h.logger.Errorf("failed to generate OAuth state: %v", err)
		ErrorHandler(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.SetCookie(oauthStateCookie, state, 300, "/", "", false, true)

	url := h.googleOauthConfig().AuthCodeURL(state)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// HandleGoogleCallback exchanges the authorization code, fetches the external
// profile and logs the matching account in (creating it on first login).
func (h *AuthHandler) HandleGoogleCallback(c *gin.Context) {
	state := c.Query("state")
	cookieState, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != cookieState {
		ErrorHandler(c, http.StatusUnauthorized, "Invalid CSRF state token")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		ErrorHandler(c, http.StatusBadRequest, "Authorization code not provided")
		return
	}

	requestCtx := c.Request.Context()

	token, err := h.googleOauthConfig().Exchange(requestCtx, code)
	if err != nil {
		h.logger.Errorf("failed to exchange authorization code: %v", err)
		ErrorHandler(c, http.StatusInternalServerError, "Server error")
		return
	}

	client := h.googleOauthConfig().Client(requestCtx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		h.logger.Errorf("failed to fetch user info: %v", err)
		ErrorHandler(c, http.StatusInternalServerError, "Server error")
		return
	}
	defer resp.Body.Close()

	var profile entity.GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		h.logger.Errorf("failed to decode user info: %v", err)
		ErrorHandler(c, http.StatusInternalServerError, "Server error")
		return
	}

	user, accessToken, err := h.userUsecase.LoginWithOAuth(requestCtx, &profile)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.AuthResponse{
		User:  dto.ToUserResponse(*user),
		Token: accessToken,
	})
}
