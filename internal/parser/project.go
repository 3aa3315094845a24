package parser

import (
	"strings"

	"github.com/mmynk/projectbook/internal/command"
	"github.com/mmynk/projectbook/internal/models"
)

func parseProject(rest string) (command.Command, error) {
	word, tail := splitWord(rest)
	switch strings.ToLower(word) {
	case "add":
		return parseProjectAdd(tail)
	case "edit":
		return parseProjectEdit(tail)
	case "assign":
		ref, name, err := parseMembership(tail, UsageProjectAssign)
		if err != nil {
			return nil, err
		}
		return command.NewAssignToProject(ref, name), nil
	case "remove":
		ref, name, err := parseMembership(tail, UsageProjectRemove)
		if err != nil {
			return nil, err
		}
		return command.NewRemoveFromProject(ref, name), nil
	case "delete":
		ref, err := parseProjectRef(tail, UsageProjectDelete)
		if err != nil {
			return nil, err
		}
		return command.NewDeleteProject(ref), nil
	case "view":
		ref, err := parseProjectRef(tail, UsageProjectView)
		if err != nil {
			return nil, err
		}
		return command.NewViewProject(ref), nil
	case "find":
		keywords, err := parseKeywords(tail, UsageProjectFind)
		if err != nil {
			return nil, err
		}
		return command.NewFindProject(keywords), nil
	case "list":
		return command.NewListProjects(), nil
	default:
		return nil, &ParseError{Message: MessageUnknownCommand}
	}
}

func parseProjectAdd(rest string) (command.Command, error) {
	args := Tokenize(rest, PrefixProject, PrefixDescription)
	if args.Preamble() != "" {
		return nil, invalidFormat(UsageProjectAdd)
	}
	if err := requirePrefixes(args, UsageProjectAdd, PrefixProject); err != nil {
		return nil, err
	}
	if err := checkDuplicates(args, PrefixProject, PrefixDescription); err != nil {
		return nil, err
	}
	name, err := models.NewProjectName(mustValue(args, PrefixProject))
	if err != nil {
		return nil, fromValue(err)
	}
	description, err := models.NewDescription(mustValue(args, PrefixDescription))
	if err != nil {
		return nil, fromValue(err)
	}
	return command.NewAddProject(name, description), nil
}

func parseProjectEdit(rest string) (command.Command, error) {
	args := Tokenize(rest, PrefixProject, PrefixDescription)
	ref, err := parseProjectRef(args.Preamble(), UsageProjectEdit)
	if err != nil {
		return nil, err
	}
	if err := checkDuplicates(args, PrefixProject, PrefixDescription); err != nil {
		return nil, err
	}
	name, err := optional(args, PrefixProject, models.NewProjectName)
	if err != nil {
		return nil, err
	}
	description, err := optional(args, PrefixDescription, models.NewDescription)
	if err != nil {
		return nil, err
	}
	return command.NewEditProject(ref, name, description), nil
}

func parseMembership(rest, usage string) (command.PersonRef, string, error) {
	args := Tokenize(rest, PrefixProject)
	if err := requirePrefixes(args, usage, PrefixProject); err != nil {
		return command.PersonRef{}, "", err
	}
	if err := checkDuplicates(args, PrefixProject); err != nil {
		return command.PersonRef{}, "", err
	}
	ref, err := parsePersonRef(args.Preamble(), usage)
	if err != nil {
		return command.PersonRef{}, "", err
	}
	name := mustValue(args, PrefixProject)
	if name == "" {
		return command.PersonRef{}, "", invalidFormat(usage)
	}
	return ref, name, nil
}
