package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gophsecrets/internal/common"
	"github.com/dmitrijs2005/gophsecrets/internal/logging"
	"github.com/dmitrijs2005/gophsecrets/internal/server/auth"
	"github.com/dmitrijs2005/gophsecrets/internal/server/models"
	"github.com/gin-gonic/gin"
)

type AccountService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

type SecretService interface {
	List(ctx context.Context, ownerID string) ([]*models.Secret, error)
	Create(ctx context.Context, ownerID, content string) (*models.Secret, error)
}

// CookieOptions control the session cookie written on login.
type CookieOptions struct {
	MaxAge int // seconds
	Secure bool
}

type Handlers struct {
	accounts AccountService
	secrets  SecretService
	cookie   CookieOptions
	logger   logging.Logger
}

func NewHandlers(a AccountService, s SecretService, cookie CookieOptions, l logging.Logger) *Handlers {
	return &Handlers{accounts: a, secrets: s, cookie: cookie, logger: l}
}

func (h *Handlers) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", page{Title: "Secrets"})
}

func (h *Handlers) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", page{Title: "Register"})
}

func (h *Handlers) Register(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.PostForm("name")
	email := c.PostForm("email")

	_, err := h.accounts.Register(ctx, name, email, c.PostForm("password"))
	if err != nil {
		status, msg := registerError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error(ctx, "registration failed", "email", email, "error", err.Error())
		} else {
			h.logger.Info(ctx, "registration rejected", "email", email, "reason", err.Error())
		}
		c.HTML(status, "register.html", page{
			Title:        "Register",
			ErrorMessage: msg,
			FormData:     formData{Name: name, Email: email},
		})
		return
	}

	h.logger.Info(ctx, "user registered", "email", email)
	c.Redirect(http.StatusFound, "/login")
}

func registerError(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrInvalidEmailFormat):
		return http.StatusBadRequest, "Invalid email format."
	case errors.Is(err, common.ErrWeakPassword):
		return http.StatusBadRequest, "Password must be 6-8 chars with uppercase, lowercase, and number."
	case errors.Is(err, common.ErrEmailTaken):
		return http.StatusBadRequest, "Email is already registered."
	default:
		return http.StatusInternalServerError, "Error registering user."
	}
}

func (h *Handlers) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", page{Title: "Log in"})
}

func (h *Handlers) Login(c *gin.Context) {
	ctx := c.Request.Context()
	username := c.PostForm("username")

	token, _, err := h.accounts.Login(ctx, username, c.PostForm("password"))
	if err != nil {
		status, msg := loginError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error(ctx, "login failed", "email", username, "error", err.Error())
		} else {
			h.logger.Info(ctx, "login rejected", "email", username, "reason", err.Error())
		}
		c.HTML(status, "login.html", page{
			Title:        "Log in",
			ErrorMessage: msg,
			FormData:     formData{Username: username},
		})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(common.TokenCookieName, token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
	c.Redirect(http.StatusFound, "/secrets")
}

func loginError(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrAccountNotFound):
		return http.StatusBadRequest, "No user found."
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusBadRequest, "Incorrect password."
	default:
		return http.StatusInternalServerError, "Login failed."
	}
}

func (h *Handlers) Secrets(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	items, err := h.secrets.List(ctx, claims.UserID)
	if err != nil {
		h.logger.Error(ctx, "list secrets", "user_id", claims.UserID, "error", err.Error())
		c.String(http.StatusInternalServerError, "Error retrieving secrets.")
		return
	}

	c.HTML(http.StatusOK, "secrets.html", page{Title: "Your secrets", Secrets: items})
}

func (h *Handlers) SubmitForm(c *gin.Context) {
	c.HTML(http.StatusOK, "submit.html", page{Title: "Submit"})
}

func (h *Handlers) Submit(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := h.secrets.Create(ctx, claims.UserID, c.PostForm("secret")); err != nil {
		if errors.Is(err, common.ErrEmptySecret) {
			c.HTML(http.StatusBadRequest, "submit.html", page{Title: "Submit", ErrorMessage: "Secret cannot be empty."})
			return
		}
		h.logger.Error(ctx, "save secret", "user_id", claims.UserID, "error", err.Error())
		c.String(http.StatusInternalServerError, "Failed to save secret.")
		return
	}

	c.Redirect(http.StatusFound, "/secrets")
}

func (h *Handlers) User(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "user.html", page{Title: "Profile", User: claims})
}

// Logout only clears the browser cookie; issued tokens stay valid until they expire.
func (h *Handlers) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(common.TokenCookieName, "", -1, "/", "", h.cookie.Secure, true)
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handlers) claims(c *gin.Context) (*auth.Claims, bool) {
	claims, ok := auth.ClaimsFromContext(c.Request.Context())
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return nil, false
	}
	return claims, true
}
