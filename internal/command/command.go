// Package command turns parsed user intent into validated changes to a
// state.Model. Every command either applies fully or returns an *Error
// without touching the model.
package command

import (
	"fmt"

	"github.com/mmynk/projectbook/internal/state"
)

// Command is one executable user request.
type Command interface {
	// Name is the command word, such as "add" or "project assign".
	Name() string
	Execute(m state.Model) (Result, error)
}

// View tells the host which list a result should be shown against.
type View int

const (
	ViewUnchanged View = iota
	ViewPersons
	ViewProjects
)

// Result is the outcome of a successful command.
type Result struct {
	Feedback string
	ShowHelp bool
	Exit     bool
	View     View
}

func feedback(view View, format string, args ...any) Result {
	return Result{Feedback: fmt.Sprintf(format, args...), View: view}
}

// Index is a position in a displayed list. The zero value is the first item.
type Index struct {
	zero int
}

// IndexFromOne converts a one-based position as typed by users.
func IndexFromOne(n int) (Index, error) {
	if n < 1 {
		return Index{}, fmt.Errorf("index must be a positive integer, got %d", n)
	}
	return Index{zero: n - 1}, nil
}

// MustIndex is IndexFromOne for literals known to be valid.
func MustIndex(n int) Index {
	i, err := IndexFromOne(n)
	if err != nil {
		panic(err)
	}
	return i
}

func (i Index) Zero() int { return i.zero }
func (i Index) One() int  { return i.zero + 1 }

func (i Index) String() string { return fmt.Sprintf("%d", i.One()) }

// pick returns the element of xs at i.
func pick[T any](xs []T, i Index) (T, bool) {
	if i.zero < 0 || i.zero >= len(xs) {
		var zero T
		return zero, false
	}
	return xs[i.zero], true
}
