package models

import (
	"strings"
)

// Name is a person's display name.
type Name struct{ value string }

// NewName validates raw and returns the whitespace-collapsed name.
func NewName(raw string) (Name, error) {
	v := collapse(raw)
	if err := check("name", v, "required,max=100,pb_name",
		"names contain letters, digits, spaces and ' - . , and must not be blank"); err != nil {
		return Name{}, err
	}
	return Name{value: v}, nil
}

func (n Name) String() string { return n.value }

// EqualFold reports whether both names are the same ignoring case and spacing.
func (n Name) EqualFold(o Name) bool { return Normalize(n.value) == Normalize(o.value) }

// Words returns the name split on whitespace.
func (n Name) Words() []string { return strings.Fields(n.value) }

// Email is a required contact channel and the natural key of a person in storage.
type Email struct{ value string }

func NewEmail(raw string) (Email, error) {
	v := strings.TrimSpace(raw)
	if err := check("email", v, "required,max=254,email",
		"must be a valid address such as alice@example.com"); err != nil {
		return Email{}, err
	}
	return Email{value: v}, nil
}

func (e Email) String() string { return e.value }

// Key is the case-insensitive comparison form.
func (e Email) Key() string { return strings.ToLower(e.value) }

func (e Email) Equal(o Email) bool { return e.Key() == o.Key() }

// Phone holds digits with an optional leading plus sign.
type Phone struct{ value string }

func NewPhone(raw string) (Phone, error) {
	v := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(raw))
	if err := check("phone", v, "required,pb_phone",
		"phone numbers have 3 to 15 digits and an optional leading +"); err != nil {
		return Phone{}, err
	}
	return Phone{value: v}, nil
}

func (p Phone) String() string { return p.value }

func (p Phone) Equal(o Phone) bool { return p.value == o.value }

// Telegram is a Telegram handle including the leading @.
type Telegram struct{ value string }

func NewTelegram(raw string) (Telegram, error) {
	v := strings.TrimSpace(raw)
	if v != "" && !strings.HasPrefix(v, "@") {
		v = "@" + v
	}
	if err := check("telegram", v, "required,pb_telegram",
		"handles are 5 to 32 letters, digits or underscores"); err != nil {
		return Telegram{}, err
	}
	return Telegram{value: v}, nil
}

func (t Telegram) String() string { return t.value }

func (t Telegram) Equal(o Telegram) bool { return strings.EqualFold(t.value, o.value) }

// ProjectName is unique across a book by its normalised key.
type ProjectName struct{ value string }

func NewProjectName(raw string) (ProjectName, error) {
	v := collapse(raw)
	if err := check("project name", v, "required,max=80",
		"project names must not be blank and are at most 80 characters"); err != nil {
		return ProjectName{}, err
	}
	return ProjectName{value: v}, nil
}

func (n ProjectName) String() string { return n.value }

// Key is the normalised form used for uniqueness and lookup.
func (n ProjectName) Key() string { return Normalize(n.value) }

func (n ProjectName) Equal(o ProjectName) bool { return n.Key() == o.Key() }

// Description is free text and may be empty.
type Description struct{ value string }

func NewDescription(raw string) (Description, error) {
	v := strings.TrimSpace(raw)
	if err := check("description", v, "max=500",
		"descriptions are at most 500 characters"); err != nil {
		return Description{}, err
	}
	return Description{value: v}, nil
}

func (d Description) String() string { return d.value }

// Committee is the role payload of a team member.
type Committee struct{ value string }

func NewCommittee(raw string) (Committee, error) {
	v := collapse(raw)
	if err := check("committee", v, "required,max=60",
		"committees must not be blank and are at most 60 characters"); err != nil {
		return Committee{}, err
	}
	return Committee{value: v}, nil
}

func (c Committee) String() string { return c.value }

// Organisation is the role payload of an organisation member.
type Organisation struct{ value string }

func NewOrganisation(raw string) (Organisation, error) {
	v := collapse(raw)
	if err := check("organisation", v, "required,max=60",
		"organisations must not be blank and are at most 60 characters"); err != nil {
		return Organisation{}, err
	}
	return Organisation{value: v}, nil
}

func (o Organisation) String() string { return o.value }

// Tag is a short alphanumeric label.
type Tag struct{ value string }

func NewTag(raw string) (Tag, error) {
	v := strings.TrimSpace(raw)
	if err := check("tag", v, "required,max=30,pb_tag",
		"tags are alphanumeric (dashes allowed) and at most 30 characters"); err != nil {
		return Tag{}, err
	}
	return Tag{value: v}, nil
}

func (t Tag) String() string { return t.value }
