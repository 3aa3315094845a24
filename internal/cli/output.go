package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mmynk/projectbook/internal/command"
	"github.com/mmynk/projectbook/internal/metrics"
	"github.com/mmynk/projectbook/internal/middleware"
	"github.com/mmynk/projectbook/internal/models"
	"github.com/mmynk/projectbook/internal/parser"
	"github.com/mmynk/projectbook/internal/service"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The command was rejected (bad input, unknown person, ...)
	ExitCommandError = 2 // The book could not be loaded or saved
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// exitCodeFor maps a command failure to an exit code.
func exitCodeFor(err error) int {
	if middleware.Classify(err) == metrics.OutcomeStorageError {
		return ExitCommandError
	}
	return ExitFailure
}

// printResult writes the feedback of res followed by whatever it asks to show.
func printResult(w io.Writer, svc *service.BookService, res command.Result) {
	if res.Feedback != "" {
		fmt.Fprintln(w, res.Feedback)
	}
	if res.ShowHelp {
		fmt.Fprintln(w, parser.HelpText())
	}
	switch res.View {
	case command.ViewPersons:
		renderPersons(w, svc)
	case command.ViewProjects:
		renderProjects(w, svc)
	}
}

func renderPersons(w io.Writer, svc *service.BookService) {
	for i, p := range svc.Persons() {
		fmt.Fprintf(w, "%d. %s\n", i+1, p)
		if projects := svc.ProjectsOf(p); len(projects) > 0 {
			names := make([]string, len(projects))
			for j, project := range projects {
				names[j] = project.Name().String()
			}
			fmt.Fprintf(w, "   Projects: %s\n", strings.Join(names, ", "))
		}
		for j, r := range p.Remarks() {
			fmt.Fprintf(w, "   %d. %s\n", j+1, r)
		}
	}
}

func renderProjects(w io.Writer, svc *service.BookService) {
	for i, p := range svc.Projects() {
		fmt.Fprintf(w, "%d. %s (%s)\n", i+1, p, memberCount(svc.MembersOf(p)))
	}
}

func memberCount(members []*models.Person) string {
	if len(members) == 1 {
		return "1 member"
	}
	return fmt.Sprintf("%d members", len(members))
}
