package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/projectbook/internal/models"
)

// ParseError reports input that could not be turned into a command. Usage,
// when set, is the expected format of the command.
type ParseError struct {
	Message string
	Usage   string
}

func (e *ParseError) Error() string {
	if e.Usage == "" {
		return e.Message
	}
	return e.Message + "\n" + e.Usage
}

const (
	MessageUnknownCommand    = "Unknown command"
	MessageInvalidFormat     = "Invalid command format!"
	MessageInvalidIndex      = "Index is not a positive integer"
	MessageDuplicatePrefixes = "Multiple values specified for the following single-valued field(s): %s"
	MessageMissingPrefix     = "Missing %s"
)

func invalidFormat(usage string) *ParseError {
	return &ParseError{Message: MessageInvalidFormat, Usage: usage}
}

// fromValue converts a scalar validation failure into a ParseError.
func fromValue(err error) *ParseError {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return &ParseError{Message: ve.Error()}
	}
	return &ParseError{Message: err.Error()}
}

func checkDuplicates(args Args, single ...Prefix) error {
	dups := args.Duplicates(single...)
	if len(dups) == 0 {
		return nil
	}
	names := make([]string, len(dups))
	for i, p := range dups {
		names[i] = string(p)
	}
	return &ParseError{Message: fmt.Sprintf(MessageDuplicatePrefixes, strings.Join(names, " "))}
}

func requirePrefixes(args Args, usage string, prefixes ...Prefix) error {
	for _, p := range prefixes {
		if !args.Has(p) {
			return &ParseError{Message: fmt.Sprintf(MessageMissingPrefix, p), Usage: usage}
		}
	}
	return nil
}
