package http

import (
	"context"
	"errors"
	"strconv"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	tokenContextKey   = "token"
	accountContextKey = "account"
)

// AccountLoader reads the current account record. It is called on every
// request so an approval decision takes effect immediately.
type AccountLoader func(ctx context.Context, id kernel.AccountID) (*account.Account, error)

// authenticate verifies the bearer token issued by the session layer. The
// account id travels in the sub claim.
func (s *Server) authenticate() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    s.jwtSecret,
		SigningMethod: jwt.SigningMethodHS256.Alg(),
		ContextKey:    tokenContextKey,
		NewClaimsFunc: func(echo.Context) jwt.Claims {
			return new(jwt.RegisteredClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return writeError(c, errs.NewRuleViolationErrorWithCause(
				errs.ErrNotAuthenticated,
				"missing or invalid bearer token",
				err,
			))
		},
	})
}

// loadAccount puts the caller's account into the echo context. A token for
// an account that no longer exists leaves the context empty.
func (s *Server) loadAccount(c echo.Context) (*account.Account, error) {
	token, ok := c.Get(tokenContextKey).(*jwt.Token)
	if !ok {
		return nil, nil
	}
	subject, err := token.Claims.GetSubject()
	if err != nil {
		return nil, nil
	}
	id, err := strconv.ParseInt(subject, 10, 64)
	if err != nil || kernel.AccountID(id).Validate() != nil {
		return nil, nil
	}

	acc, err := s.accounts(c.Request().Context(), kernel.AccountID(id))
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return acc, nil
}

// RequireAccount admits any authenticated account regardless of role.
func (s *Server) RequireAccount() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			acc, err := s.loadAccount(c)
			if err != nil {
				return writeError(c, err)
			}
			if acc == nil {
				return writeError(c, errs.NewRuleViolationError(errs.ErrNotAuthenticated, "no account in session"))
			}
			c.Set(accountContextKey, acc)
			return next(c)
		}
	}
}

// RequireRole runs the approval gate for a role-scoped section. An empty
// section is taken from the :section route parameter.
func (s *Server) RequireRole(required account.Role, section string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			acc, err := s.loadAccount(c)
			if err != nil {
				return writeError(c, err)
			}

			name := section
			if name == "" {
				name = c.Param("section")
			}
			if err = s.gate.CanAccess(acc, required, name); err != nil {
				return writeError(c, err)
			}

			c.Set(accountContextKey, acc)
			return next(c)
		}
	}
}

func currentAccount(c echo.Context) *account.Account {
	acc, _ := c.Get(accountContextKey).(*account.Account)
	return acc
}

func actorOf(c echo.Context) (commands.Actor, error) {
	acc := currentAccount(c)
	if acc == nil {
		return commands.Actor{}, errs.NewRuleViolationError(errs.ErrNotAuthenticated, "no account in session")
	}
	return commands.NewActor(acc.ID(), acc.Role())
}
