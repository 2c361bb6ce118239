package web

import (
	"encoding/gob"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/tungnhan410/Cty-ban-lieu-xay-dung/domain/cart"
)

const (
	sessionName = "storefront"

	cartKey         = "cart"
	flashNoticeKey  = "notice"
	flashErrorKey   = "error"
	userNameKey     = "username"
	userCompanyKey  = "company"
	userPresidentKey = "president"
)

func init() {
	// The cart is stored as a gob-encoded session value.
	gob.Register(cart.Cart{})
}

// session returns the request's session, a fresh one if the cookie is
// missing or undecodable.
func (m *Module) session(c *gin.Context) *sessions.Session {
	s, err := m.store.Get(c.Request, sessionName)
	if err != nil {
		// A stale or tampered cookie decodes to an error but still yields
		// a usable new session.
		return s
	}
	return s
}

// cartFromSession extracts the visitor's cart, empty when absent.
func cartFromSession(s *sessions.Session) cart.Cart {
	if v, ok := s.Values[cartKey]; ok {
		if ct, ok := v.(cart.Cart); ok {
			return ct
		}
	}
	return cart.Cart{}
}

// saveCart writes the cart back into the session and persists the cookie.
// Must run before the response body is written.
func (m *Module) saveCart(c *gin.Context, s *sessions.Session, ct cart.Cart) error {
	s.Values[cartKey] = ct
	return s.Save(c.Request, c.Writer)
}

// flash queues a one-shot notice for the next rendered page.
func (m *Module) flash(c *gin.Context, s *sessions.Session, msg string) {
	s.AddFlash(msg, flashNoticeKey)
	if err := s.Save(c.Request, c.Writer); err != nil {
		m.logError("failed to save session", err)
	}
}

// flashError queues a one-shot error notice.
func (m *Module) flashError(c *gin.Context, s *sessions.Session, msg string) {
	s.AddFlash(msg, flashErrorKey)
	if err := s.Save(c.Request, c.Writer); err != nil {
		m.logError("failed to save session", err)
	}
}

// popFlashes drains queued notices and errors, saving the session so they
// only show once.
func (m *Module) popFlashes(c *gin.Context, s *sessions.Session) (notices, errs []string) {
	for _, f := range s.Flashes(flashNoticeKey) {
		if msg, ok := f.(string); ok {
			notices = append(notices, msg)
		}
	}
	for _, f := range s.Flashes(flashErrorKey) {
		if msg, ok := f.(string); ok {
			errs = append(errs, msg)
		}
	}
	if len(notices) > 0 || len(errs) > 0 {
		if err := s.Save(c.Request, c.Writer); err != nil {
			m.logError("failed to save session", err)
		}
	}
	return notices, errs
}

func (m *Module) logError(msg string, err error) {
	if m.logger != nil {
		m.logger.Error(msg, "error", err)
	}
}
