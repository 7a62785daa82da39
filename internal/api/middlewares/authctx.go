package middlewares

import (
	"context"

	"github.com/hassankhsalar/boichai-api/internal/models"
)

const identityKey ctxKey = 1

func WithIdentity(ctx context.Context, id models.UserIdentity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func IdentityFrom(ctx context.Context) (models.UserIdentity, bool) {
	v, ok := ctx.Value(identityKey).(models.UserIdentity)
	return v, ok && v.Email != ""
}
