package api

import (
	"context"
	"errors"
)

type keyType string

const (
	sessionEmailKey keyType = "sessionEmail"
)

// ctxWithSessionEmail adds the authenticated admin's email to the context
func ctxWithSessionEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, sessionEmailKey, email)
}

// ctxGetSessionEmail retrieves the authenticated admin's email from the context
func ctxGetSessionEmail(ctx context.Context) (string, error) {
	ctxValue := ctx.Value(sessionEmailKey)
	if ctxValue == nil {
		return "", errors.New("no session in context")
	}
	email, ok := ctxValue.(string)
	if !ok {
		return "", errors.New("session value is not of type `string`")
	}
	return email, nil
}
