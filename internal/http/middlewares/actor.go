package middleware

import (
	"context"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "taskphoto.com/taskphoto/internal/errors"
	"taskphoto.com/taskphoto/internal/lifecycle"
)

const (
	HeaderUserID = "X-User-ID"
	actorKey     = "actor"
)

type ActorResolver interface {
	ResolveActor(ctx context.Context, id uint) (lifecycle.Actor, error)
}

// Actor resolves the X-User-ID header to an active user. Paths in public skip it.
func Actor(resolver ActorResolver, public ...string) echo.MiddlewareFunc {
	skip := make(map[string]bool, len(public))
	for _, p := range public {
		skip[p] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skip[c.Path()] {
				return next(c)
			}

			raw := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || id == 0 {
				return apperrors.ErrIdentityRequired
			}

			actor, err := resolver.ResolveActor(c.Request().Context(), uint(id))
			if err != nil {
				return err
			}

			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

func ActorFrom(c echo.Context) (lifecycle.Actor, bool) {
	actor, ok := c.Get(actorKey).(lifecycle.Actor)
	return actor, ok
}
