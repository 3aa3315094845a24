package parser

import (
	"strings"

	"github.com/mmynk/projectbook/internal/command"
	"github.com/mmynk/projectbook/internal/models"
)

var personPrefixes = []Prefix{
	PrefixName, PrefixEmail, PrefixPhone, PrefixTelegram,
	PrefixCommittee, PrefixOrganisation, PrefixTag,
}

// singlePersonPrefixes are the person prefixes that take one value.
var singlePersonPrefixes = personPrefixes[:len(personPrefixes)-1]

func parseAdd(rest string) (command.Command, error) {
	args := Tokenize(rest, personPrefixes...)
	role, err := models.ParseRole(args.Preamble())
	if err != nil {
		return nil, invalidFormat(UsageAdd)
	}
	if err := requirePrefixes(args, UsageAdd, PrefixName, PrefixEmail); err != nil {
		return nil, err
	}
	if err := checkDuplicates(args, singlePersonPrefixes...); err != nil {
		return nil, err
	}

	f := models.PersonFields{Role: role}
	if f.Name, err = models.NewName(mustValue(args, PrefixName)); err != nil {
		return nil, fromValue(err)
	}
	if f.Email, err = models.NewEmail(mustValue(args, PrefixEmail)); err != nil {
		return nil, fromValue(err)
	}
	if f.Phone, err = optional(args, PrefixPhone, models.NewPhone); err != nil {
		return nil, err
	}
	if f.Telegram, err = optional(args, PrefixTelegram, models.NewTelegram); err != nil {
		return nil, err
	}
	if f.Committee, err = optional(args, PrefixCommittee, models.NewCommittee); err != nil {
		return nil, err
	}
	if f.Organisation, err = optional(args, PrefixOrganisation, models.NewOrganisation); err != nil {
		return nil, err
	}
	if f.Tags, err = parseTags(args.All(PrefixTag)); err != nil {
		return nil, err
	}

	p, err := models.NewPerson(f)
	if err != nil {
		return nil, &ParseError{Message: err.Error(), Usage: UsageAdd}
	}
	return command.NewAddPerson(p), nil
}

func parseEdit(rest string) (command.Command, error) {
	args := Tokenize(rest, personPrefixes...)
	i, err := parseIndex(args.Preamble(), UsageEdit)
	if err != nil {
		return nil, err
	}
	if err := checkDuplicates(args, singlePersonPrefixes...); err != nil {
		return nil, err
	}

	var d command.EditPersonDescriptor
	if d.Name, err = optional(args, PrefixName, models.NewName); err != nil {
		return nil, err
	}
	if d.Email, err = optional(args, PrefixEmail, models.NewEmail); err != nil {
		return nil, err
	}
	if v, ok := args.Value(PrefixPhone); ok && v == "" {
		d.ClearPhone = true
	} else if d.Phone, err = optional(args, PrefixPhone, models.NewPhone); err != nil {
		return nil, err
	}
	if v, ok := args.Value(PrefixTelegram); ok && v == "" {
		d.ClearTelegram = true
	} else if d.Telegram, err = optional(args, PrefixTelegram, models.NewTelegram); err != nil {
		return nil, err
	}
	if d.Committee, err = optional(args, PrefixCommittee, models.NewCommittee); err != nil {
		return nil, err
	}
	if d.Organisation, err = optional(args, PrefixOrganisation, models.NewOrganisation); err != nil {
		return nil, err
	}
	if tags := args.All(PrefixTag); len(tags) > 0 {
		d.TagsSet = true
		if !(len(tags) == 1 && tags[0] == "") {
			if d.Tags, err = parseTags(tags); err != nil {
				return nil, err
			}
		}
	}
	return command.NewEditPerson(i, d), nil
}

func parseRemark(rest string) (command.Command, error) {
	word, tail := splitWord(rest)
	switch strings.ToLower(word) {
	case "resolve":
		p, r, err := parseIndexPair(tail, UsageRemarkResolve)
		if err != nil {
			return nil, err
		}
		return command.NewResolveRemark(p, r), nil
	case "delete":
		p, r, err := parseIndexPair(tail, UsageRemarkDelete)
		if err != nil {
			return nil, err
		}
		return command.NewDeleteRemark(p, r), nil
	}

	args := Tokenize(rest, PrefixRemark)
	i, err := parseIndex(args.Preamble(), UsageRemark)
	if err != nil {
		return nil, err
	}
	if err := requirePrefixes(args, UsageRemark, PrefixRemark); err != nil {
		return nil, err
	}
	if err := checkDuplicates(args, PrefixRemark); err != nil {
		return nil, err
	}
	r, err := models.NewRemark(mustValue(args, PrefixRemark))
	if err != nil {
		return nil, fromValue(err)
	}
	return command.NewAddRemark(i, r), nil
}

func parseIndexPair(s, usage string) (command.Index, command.Index, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return command.Index{}, command.Index{}, invalidFormat(usage)
	}
	first, err := parseIndex(fields[0], usage)
	if err != nil {
		return command.Index{}, command.Index{}, err
	}
	second, err := parseIndex(fields[1], usage)
	if err != nil {
		return command.Index{}, command.Index{}, err
	}
	return first, second, nil
}

func parseTags(raw []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(raw))
	for _, r := range raw {
		t, err := models.NewTag(r)
		if err != nil {
			return nil, fromValue(err)
		}
		tags = append(tags, t)
	}
	return tags, nil
}

// optional parses the value of p with parse when p is present.
func optional[T any](args Args, p Prefix, parse func(string) (T, error)) (*T, error) {
	raw, ok := args.Value(p)
	if !ok {
		return nil, nil
	}
	v, err := parse(raw)
	if err != nil {
		return nil, fromValue(err)
	}
	return &v, nil
}

func mustValue(args Args, p Prefix) string {
	v, _ := args.Value(p)
	return v
}
