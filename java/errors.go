package java

import (
	"errors"
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

var (
	// ErrUnsupported is returned when the input uses a construct the converter has no rule for
	ErrUnsupported = errors.New("unsupported construct")
	// ErrRankMismatch is returned when array ranks disagree
	ErrRankMismatch = errors.New("array rank mismatch")
	// ErrParse is returned when the Java source could not be parsed
	ErrParse = errors.New("unable to parse java source")
	// ErrInvalidMapping is returned when a syntax mapping file fails validation
	ErrInvalidMapping = errors.New("invalid syntax mapping")
)

// MigrationError represents an error that occurred during migration
type MigrationError struct {
	NodeKind string // Type of node (for debugging)
	Message  string // Error message
	Line     int    // 1-based line of the node
	Source   string // The Java code that failed
	Err      error  // Underlying cause, ErrUnsupported when nil
}

func (e *MigrationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

func (e *MigrationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUnsupported
}

// FatalError aborts the current conversion. The panic is recovered by MigrateTree
// and returned to the caller as a *MigrationError.
func FatalError(ctx *MigrationContext, node *tree_sitter.Node, message string) {
	panic(newMigrationError(ctx, node, message, nil))
}

func fatalf(ctx *MigrationContext, node *tree_sitter.Node, format string, args ...any) {
	FatalError(ctx, node, fmt.Sprintf(format, args...))
}

// fatalErr aborts the conversion with err as the underlying cause
func fatalErr(ctx *MigrationContext, node *tree_sitter.Node, err error) {
	panic(newMigrationError(ctx, node, err.Error(), err))
}

func newMigrationError(ctx *MigrationContext, node *tree_sitter.Node, message string, cause error) *MigrationError {
	migrationErr := &MigrationError{Message: message, Err: cause}
	if node != nil {
		migrationErr.NodeKind = node.Kind()
		migrationErr.Line = lineOf(node)
		if ctx != nil {
			migrationErr.Source = ctx.text(node)
		}
	}
	return migrationErr
}

// recoverMigration turns a conversion panic into an error
func recoverMigration(err *error) {
	r := recover()
	if r == nil {
		return
	}
	switch e := r.(type) {
	case *MigrationError:
		*err = e
	default:
		panic(r)
	}
}
