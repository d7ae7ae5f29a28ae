package mediator

import (
	"context"
)

// Request is any command or query value; its concrete type picks the handler.
type Request interface{}

// Response is whatever the handler returns, usually a view or receipt.
type Response interface{}

// RequestHandler serves one request type.
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// HandlerFunc adapts a function to RequestHandler.
type HandlerFunc func(ctx context.Context, request Request) (Response, error)

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, request Request) (Response, error) {
	return f(ctx, request)
}

// Middleware runs around every handler. next continues the chain.
type Middleware func(ctx context.Context, request Request, next HandlerFunc) (Response, error)
