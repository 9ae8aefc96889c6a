// Package requestid carries the X-Request-ID of an inbound request so it can be
// logged and forwarded to the backend.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

const Header = "X-Request-ID"

type key struct{}

func New() string {
	return uuid.NewString()
}

func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, key{}, id)
}

func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(key{}).(string)
	return id
}
