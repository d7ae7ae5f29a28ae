package mediator

import (
	"context"
	"fmt"
	"reflect"
	"strings"
)

// Mediator routes every supply chain command and query to the one handler
// registered for its concrete type, wrapped in the registered middleware.
type Mediator interface {
	Send(ctx context.Context, request Request) (Response, error)
	Register(requestType reflect.Type, handler RequestHandler) error
	Use(middleware Middleware)
}

type mediator struct {
	handlers    map[reflect.Type]RequestHandler
	middlewares []Middleware
}

// NewMediator returns a Mediator with no handlers and no middleware.
func NewMediator() Mediator {
	return &mediator{
		handlers: make(map[reflect.Type]RequestHandler),
	}
}

// Register binds handler to requestType. Each type takes exactly one handler.
func (m *mediator) Register(requestType reflect.Type, handler RequestHandler) error {
	if requestType == nil {
		return fmt.Errorf("request type cannot be nil")
	}

	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	if _, exists := m.handlers[requestType]; exists {
		return fmt.Errorf("handler already registered for type %s", requestType)
	}

	m.handlers[requestType] = handler
	return nil
}

// Use appends a middleware. The first one added is the outermost.
func (m *mediator) Use(middleware Middleware) {
	m.middlewares = append(m.middlewares, middleware)
}

// Send runs request through the middleware, outermost first, and then its handler.
func (m *mediator) Send(ctx context.Context, request Request) (Response, error) {
	if request == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}

	requestType := reflect.TypeOf(request)
	handler, ok := m.handlers[requestType]
	if !ok {
		return nil, fmt.Errorf("no handler registered for type %s", requestType)
	}

	next := HandlerFunc(handler.Handle)
	for i := len(m.middlewares) - 1; i >= 0; i-- {
		mw, inner := m.middlewares[i], next
		next = func(ctx context.Context, request Request) (Response, error) {
			return mw(ctx, request, inner)
		}
	}
	return next(ctx, request)
}

// RegisterHandler binds handler to the type of T, so callers name the request
// type once: RegisterHandler[*commands.SellToMarketCommand](m, h).
func RegisterHandler[T Request](m Mediator, handler RequestHandler) error {
	var zero T
	return m.Register(reflect.TypeOf(zero), handler)
}

// RequestName extracts a clean name from the request type:
// "*commands.ManufactureCommand" becomes "ManufactureCommand"
func RequestName(request Request) string {
	if request == nil {
		return "UnknownRequest"
	}
	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
	if i := strings.LastIndex(fullName, "."); i >= 0 {
		return fullName[i+1:]
	}
	return fullName
}
