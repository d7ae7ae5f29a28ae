package common

// Mediator types re-exported so handler packages only import common.

import (
	"github.com/andrescamacho/supplychain-go/internal/application/mediator"
)

type (
	Request        = mediator.Request
	Response       = mediator.Response
	RequestHandler = mediator.RequestHandler
	HandlerFunc    = mediator.HandlerFunc
	Middleware     = mediator.Middleware
	Mediator       = mediator.Mediator
)

var (
	NewMediator = mediator.NewMediator
	RequestName = mediator.RequestName
)
