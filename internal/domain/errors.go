package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidIndex    = errors.New("index out of range")
	ErrFieldAlreadySet = errors.New("field already set")
	ErrInvalidField    = errors.New("field cannot be set directly")
	ErrMalformedSave   = errors.New("malformed save")
	ErrTurnState       = errors.New("operation not allowed in current turn state")
	ErrNoOpenCategory  = errors.New("no open category")
	ErrInvalidPlayers  = errors.New("invalid players")
	ErrNotFound        = errors.New("not found")
	ErrInvalidConfig   = errors.New("invalid config")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidIndex    ErrorKind = "invalid_index"
	KindFieldAlreadySet ErrorKind = "field_already_set"
	KindInvalidField    ErrorKind = "invalid_field"
	KindMalformedSave   ErrorKind = "malformed_save"
	KindTurnState       ErrorKind = "turn_state"
	KindNotFound        ErrorKind = "not_found"
	KindInvalidConfig   ErrorKind = "invalid_config"
	KindExecution       ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

func opErr(op string, kind ErrorKind, err error) error {
	return &OpError{Op: op, Kind: kind, Err: err}
}
