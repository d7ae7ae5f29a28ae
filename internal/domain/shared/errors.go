package shared

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure an operation can report.
// Exactly one kind is reported per failed call.
type ErrorKind string

const (
	KindInvalidInput       ErrorKind = "INVALID_INPUT"
	KindDuplicateName      ErrorKind = "DUPLICATE_NAME"
	KindNotFound           ErrorKind = "NOT_FOUND"
	KindProductUnavailable ErrorKind = "PRODUCT_UNAVAILABLE"
	KindInsufficientStock  ErrorKind = "INSUFFICIENT_STOCK"
	KindPriceNotSet        ErrorKind = "PRICE_NOT_SET"
	KindInsufficientFunds  ErrorKind = "INSUFFICIENT_FUNDS"
	KindMaterialShortage   ErrorKind = "MATERIAL_SHORTAGE"
	KindInvalidPrice       ErrorKind = "INVALID_PRICE"
)

func (k ErrorKind) String() string {
	return string(k)
}

// DomainError is the base error type for all domain errors
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// ErrorKind lets callers classify an error without knowing its concrete type
func (e *DomainError) ErrorKind() ErrorKind {
	return e.Kind
}

func NewDomainError(kind ErrorKind, message string) *DomainError {
	return &DomainError{Kind: kind, Message: message}
}

type kinded interface {
	ErrorKind() ErrorKind
}

// KindOf returns the kind carried by err (through any %w wrapping), or "" for foreign errors
func KindOf(err error) ErrorKind {
	var k kinded
	if errors.As(err, &k) {
		return k.ErrorKind()
	}
	return ""
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// Input errors

type InvalidInputError struct {
	*DomainError
	Field string
}

func NewInvalidInputError(field, reason string) *InvalidInputError {
	return &InvalidInputError{
		DomainError: NewDomainError(KindInvalidInput, fmt.Sprintf("invalid %s: %s", field, reason)),
		Field:       field,
	}
}

// Registry errors

type DuplicateNameError struct {
	*DomainError
	Collection string
	Name       string
}

func NewDuplicateNameError(collection, name string) *DuplicateNameError {
	return &DuplicateNameError{
		DomainError: NewDomainError(KindDuplicateName, fmt.Sprintf("%s %q already exists", collection, name)),
		Collection:  collection,
		Name:        name,
	}
}

type NotFoundError struct {
	*DomainError
	Collection string
	Name       string
}

func NewNotFoundError(collection, name string) *NotFoundError {
	return &NotFoundError{
		DomainError: NewDomainError(KindNotFound, fmt.Sprintf("%s %q not found", collection, name)),
		Collection:  collection,
		Name:        name,
	}
}

// Stock errors

type ProductUnavailableError struct {
	*DomainError
	Holder string
	Good   string
}

func NewProductUnavailableError(holder, good string) *ProductUnavailableError {
	return &ProductUnavailableError{
		DomainError: NewDomainError(KindProductUnavailable, fmt.Sprintf("product %s not available from %s", good, holder)),
		Holder:      holder,
		Good:        good,
	}
}

type InsufficientStockError struct {
	*DomainError
	Holder    string
	Good      string
	Requested int
	Available int
}

func NewInsufficientStockError(holder, good string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		DomainError: NewDomainError(KindInsufficientStock,
			fmt.Sprintf("not enough %s at %s: requested %d, available %d", good, holder, requested, available)),
		Holder:    holder,
		Good:      good,
		Requested: requested,
		Available: available,
	}
}

type MaterialShortageError struct {
	*DomainError
	Factory   string
	Material  string
	Required  int
	Available int
}

func NewMaterialShortageError(factory, material string, required, available int) *MaterialShortageError {
	return &MaterialShortageError{
		DomainError: NewDomainError(KindMaterialShortage,
			fmt.Sprintf("%s is short of %s: need %d, have %d (missing %d)",
				factory, material, required, available, required-available)),
		Factory:   factory,
		Material:  material,
		Required:  required,
		Available: available,
	}
}

// Shortfall is how many more units the factory would need
func (e *MaterialShortageError) Shortfall() int {
	return e.Required - e.Available
}

// Money errors

type InsufficientFundsError struct {
	*DomainError
	Party     string
	Required  Money
	Available Money
}

func NewInsufficientFundsError(party string, required, available Money) *InsufficientFundsError {
	return &InsufficientFundsError{
		DomainError: NewDomainError(KindInsufficientFunds,
			fmt.Sprintf("not enough balance at %s: cost %s, available %s", party, required, available)),
		Party:     party,
		Required:  required,
		Available: available,
	}
}

type PriceNotSetError struct {
	*DomainError
	Market string
	Good   string
}

func NewPriceNotSetError(market, good string) *PriceNotSetError {
	return &PriceNotSetError{
		DomainError: NewDomainError(KindPriceNotSet, fmt.Sprintf("price not set for %s at %s", good, market)),
		Market:      market,
		Good:        good,
	}
}

type InvalidPriceError struct {
	*DomainError
	Good  string
	Price Money
}

func NewInvalidPriceError(good string, price Money) *InvalidPriceError {
	return &InvalidPriceError{
		DomainError: NewDomainError(KindInvalidPrice,
			fmt.Sprintf("price for %s must be greater than zero, got %s", good, price)),
		Good:  good,
		Price: price,
	}
}
