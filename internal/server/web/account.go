// Package web is the HTTP surface of the server: the gin router, the account
// handlers, and the request middleware. Handlers translate between HTTP and
// the credential service; they hold no business rules beyond input validation.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noflow/engine/internal/logging"
	"github.com/noflow/engine/internal/server/services"
	"github.com/noflow/engine/internal/server/sessions"
)

type registerRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type loginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// AccountHandler serves the /api/account endpoints.
type AccountHandler struct {
	svc    *services.AuthService
	codec  *sessions.Codec
	logger logging.Logger
}

func NewAccountHandler(svc *services.AuthService, codec *sessions.Codec, logger logging.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, codec: codec, logger: logger}
}

// Register handles POST /api/account/register. A valid form that names a
// taken username comes back 400 with the business failure; success is 204
// with the session cookie already set.
func (h *AccountHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request payload."}})
		return
	}

	if errs := validateRegister(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	issuer := sessions.NewCookieIssuer(c.Writer, h.codec)
	outcome, err := h.svc.Register(c.Request.Context(), issuer, req.Username, req.Password)
	if err != nil {
		h.internalError(c, err)
		return
	}
	if !outcome.Succeeded {
		c.JSON(http.StatusBadRequest, gin.H{"errors": outcome.Errors})
		return
	}

	c.Status(http.StatusNoContent)
}

// Login handles POST /api/account/login. Bad credentials come back 401 with
// a reason that does not reveal whether the username exists.
func (h *AccountHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request payload."}})
		return
	}

	issuer := sessions.NewCookieIssuer(c.Writer, h.codec)
	outcome, err := h.svc.Login(c.Request.Context(), issuer, req.Username, req.Password, req.RememberMe)
	if err != nil {
		h.internalError(c, err)
		return
	}
	if !outcome.Succeeded {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": outcome.Errors})
		return
	}

	c.Status(http.StatusNoContent)
}

// Logout handles POST /api/account/logout. It succeeds whether or not a
// session was active.
func (h *AccountHandler) Logout(c *gin.Context) {
	issuer := sessions.NewCookieIssuer(c.Writer, h.codec)
	if err := h.svc.Logout(c.Request.Context(), issuer); err != nil {
		h.internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Me handles GET /api/account/me and reports the authenticated subject.
func (h *AccountHandler) Me(c *gin.Context) {
	session, ok := CurrentSession(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":         session.SubjectID,
		"username":   session.SubjectName,
		"persistent": session.Persistent,
	})
}

func (h *AccountHandler) internalError(c *gin.Context, err error) {
	h.logger.Error(c.Request.Context(), "request failed",
		"request_id", c.GetString(requestIDKey),
		"path", c.Request.URL.Path,
		"error", err.Error(),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"message": MsgInternalError})
}
