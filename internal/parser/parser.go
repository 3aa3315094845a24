// Package parser turns one line of user input into a command.Command.
//
// Input is a command word, optionally followed by a sub-command word for the
// "project" and "remark" families, then arguments. Arguments are free text
// (the preamble) followed by prefix/value pairs such as "n/Alice Tan".
package parser

import (
	"strconv"
	"strings"

	"github.com/mmynk/projectbook/internal/command"
	"github.com/mmynk/projectbook/internal/models"
)

// Parse parses one line of input. Every failure is a *ParseError.
func Parse(input string) (command.Command, error) {
	word, rest := splitWord(strings.TrimSpace(input))
	switch strings.ToLower(word) {
	case "":
		return nil, &ParseError{Message: MessageInvalidFormat, Usage: UsageHelp}
	case "add":
		return parseAdd(rest)
	case "edit":
		return parseEdit(rest)
	case "delete":
		return parseDelete(rest)
	case "find":
		return parseFind(rest)
	case "list":
		return command.NewListPersons(), nil
	case "remark":
		return parseRemark(rest)
	case "project":
		return parseProject(rest)
	case "clear":
		return command.NewClear(), nil
	case "help":
		return command.NewHelp(), nil
	case "exit":
		return command.NewExit(), nil
	default:
		return nil, &ParseError{Message: MessageUnknownCommand}
	}
}

func splitWord(s string) (string, string) {
	i := strings.IndexFunc(s, func(r rune) bool { return r == ' ' || r == '\t' })
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

// parseIndex reads a one-based index.
func parseIndex(s, usage string) (command.Index, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return command.Index{}, &ParseError{Message: MessageInvalidIndex, Usage: usage}
	}
	i, err := command.IndexFromOne(n)
	if err != nil {
		return command.Index{}, &ParseError{Message: MessageInvalidIndex, Usage: usage}
	}
	return i, nil
}

// looksNumeric reports whether s is an integer, possibly signed.
func looksNumeric(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

func parsePersonRef(s, usage string) (command.PersonRef, error) {
	if s == "" {
		return command.PersonRef{}, invalidFormat(usage)
	}
	if looksNumeric(s) {
		i, err := parseIndex(s, usage)
		if err != nil {
			return command.PersonRef{}, err
		}
		return command.PersonAt(i), nil
	}
	name, err := models.NewName(s)
	if err != nil {
		return command.PersonRef{}, fromValue(err)
	}
	return command.PersonNamed(name), nil
}

func parseProjectRef(s, usage string) (command.ProjectRef, error) {
	if s == "" {
		return command.ProjectRef{}, invalidFormat(usage)
	}
	if looksNumeric(s) {
		i, err := parseIndex(s, usage)
		if err != nil {
			return command.ProjectRef{}, err
		}
		return command.ProjectAt(i), nil
	}
	return command.ProjectNamed(s), nil
}

func parseKeywords(s, usage string) ([]string, error) {
	keywords := strings.Fields(s)
	if len(keywords) == 0 {
		return nil, invalidFormat(usage)
	}
	return keywords, nil
}

func parseFind(rest string) (command.Command, error) {
	keywords, err := parseKeywords(rest, UsageFind)
	if err != nil {
		return nil, err
	}
	return command.NewFindPerson(keywords), nil
}

func parseDelete(rest string) (command.Command, error) {
	i, err := parseIndex(rest, UsageDelete)
	if err != nil {
		return nil, err
	}
	return command.NewDeletePerson(i), nil
}
