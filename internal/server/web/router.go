package web

import (
	"github.com/dmitrijs2005/gophsecrets/internal/logging"
	"github.com/dmitrijs2005/gophsecrets/internal/server/auth"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every route. Pages that show or change secrets, and the
// profile page, sit behind RequireAuth.
func NewRouter(h *Handlers, tokens auth.TokenVerifier, logger logging.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))
	r.SetHTMLTemplate(parseTemplates())

	r.GET("/", h.Home)
	r.GET("/healthz", h.Health)
	r.GET("/register", h.RegisterForm)
	r.POST("/register", h.Register)
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	protected := r.Group("/", RequireAuth(tokens, logger))
	protected.GET("/secrets", h.Secrets)
	protected.GET("/submit", h.SubmitForm)
	protected.POST("/submit", h.Submit)
	protected.GET("/user", h.User)

	return r
}
