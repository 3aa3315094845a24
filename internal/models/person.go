package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// PersonID identifies a person across copy-on-write edits (UUID format).
type PersonID string

// NewPersonID returns a fresh random ID.
func NewPersonID() PersonID { return PersonID(uuid.New().String()) }

// PersonFields is the full editable state of a person. It is the single
// builder input for both new persons and edited copies.
type PersonFields struct {
	Role  Role
	Name  Name
	Email Email

	// Phone and Telegram are optional; nil means the channel is absent.
	Phone    *Phone
	Telegram *Telegram

	// Committee is set only for RoleTeamMember, Organisation only for RoleOrgMember.
	Committee    *Committee
	Organisation *Organisation

	Tags    []Tag
	Remarks []Remark
}

// Person is an immutable contact. Use With or one of the With* helpers to
// derive an edited copy that keeps the same ID.
type Person struct {
	id           PersonID
	role         Role
	name         Name
	email        Email
	phone        *Phone
	telegram     *Telegram
	committee    *Committee
	organisation *Organisation
	tags         []Tag
	remarks      []Remark
}

// NewPerson validates f and returns a person with a new ID.
func NewPerson(f PersonFields) (*Person, error) {
	return build(NewPersonID(), f)
}

// With returns a copy of p carrying the fields of f.
func (p *Person) With(f PersonFields) (*Person, error) {
	return build(p.id, f)
}

func build(id PersonID, f PersonFields) (*Person, error) {
	if f.Name == (Name{}) {
		return nil, errors.New("person requires a name")
	}
	if f.Email == (Email{}) {
		return nil, errors.New("person requires an email")
	}
	if err := checkRoleFields(f.Role, f.Committee, f.Organisation); err != nil {
		return nil, err
	}

	p := &Person{
		id:           id,
		role:         f.Role,
		name:         f.Name,
		email:        f.Email,
		phone:        clonePtr(f.Phone),
		telegram:     clonePtr(f.Telegram),
		committee:    clonePtr(f.Committee),
		organisation: clonePtr(f.Organisation),
		tags:         sortedTags(f.Tags),
	}
	for _, r := range f.Remarks {
		if p.HasRemark(r) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRemark, r.Content())
		}
		p.remarks = append(p.remarks, r)
	}
	return p, nil
}

// Fields returns a deep copy of p's state, suitable for editing and passing to With.
func (p *Person) Fields() PersonFields {
	return PersonFields{
		Role:         p.role,
		Name:         p.name,
		Email:        p.email,
		Phone:        clonePtr(p.phone),
		Telegram:     clonePtr(p.telegram),
		Committee:    clonePtr(p.committee),
		Organisation: clonePtr(p.organisation),
		Tags:         append([]Tag(nil), p.tags...),
		Remarks:      append([]Remark(nil), p.remarks...),
	}
}

func (p *Person) ID() PersonID { return p.id }
func (p *Person) Role() Role   { return p.role }
func (p *Person) Name() Name   { return p.name }
func (p *Person) Email() Email { return p.email }

func (p *Person) Phone() (Phone, bool) {
	if p.phone == nil {
		return Phone{}, false
	}
	return *p.phone, true
}

func (p *Person) Telegram() (Telegram, bool) {
	if p.telegram == nil {
		return Telegram{}, false
	}
	return *p.telegram, true
}

func (p *Person) Committee() (Committee, bool) {
	if p.committee == nil {
		return Committee{}, false
	}
	return *p.committee, true
}

func (p *Person) Organisation() (Organisation, bool) {
	if p.organisation == nil {
		return Organisation{}, false
	}
	return *p.organisation, true
}

// Tags returns the tags sorted by value.
func (p *Person) Tags() []Tag { return append([]Tag(nil), p.tags...) }

// Remarks returns the remarks in insertion order. Remark indices shown to
// users are positions in this slice.
func (p *Person) Remarks() []Remark { return append([]Remark(nil), p.remarks...) }

// RemarkAt returns the remark at zero-based position i.
func (p *Person) RemarkAt(i int) (Remark, bool) {
	if i < 0 || i >= len(p.remarks) {
		return Remark{}, false
	}
	return p.remarks[i], true
}

func (p *Person) HasRemark(r Remark) bool { return p.remarkIndex(r) >= 0 }

func (p *Person) remarkIndex(r Remark) int {
	for i, existing := range p.remarks {
		if existing.Equal(r) {
			return i
		}
	}
	return -1
}

// WithNewRemark returns a copy with r appended, or ErrDuplicateRemark when an
// equal remark is already present.
func (p *Person) WithNewRemark(r Remark) (*Person, error) {
	if p.HasRemark(r) {
		return nil, ErrDuplicateRemark
	}
	f := p.Fields()
	f.Remarks = append(f.Remarks, r)
	return p.With(f)
}

// WithResolvedRemark returns a copy where old is replaced in place by resolved.
func (p *Person) WithResolvedRemark(old, resolved Remark) (*Person, error) {
	i := p.remarkIndex(old)
	if i < 0 {
		return nil, ErrRemarkNotFound
	}
	f := p.Fields()
	f.Remarks[i] = resolved
	return p.With(f)
}

// WithRemarkRemoved returns a copy without r.
func (p *Person) WithRemarkRemoved(r Remark) (*Person, error) {
	i := p.remarkIndex(r)
	if i < 0 {
		return nil, ErrRemarkNotFound
	}
	f := p.Fields()
	f.Remarks = append(f.Remarks[:i], f.Remarks[i+1:]...)
	return p.With(f)
}

// IsSamePerson reports whether o is probably the same real person: any one
// shared contact channel (email, phone or telegram) is enough.
func (p *Person) IsSamePerson(o *Person) bool {
	if o == nil {
		return false
	}
	if p == o || p.id == o.id {
		return true
	}
	if p.email.Equal(o.email) {
		return true
	}
	if p.phone != nil && o.phone != nil && p.phone.Equal(*o.phone) {
		return true
	}
	return p.telegram != nil && o.telegram != nil && p.telegram.Equal(*o.telegram)
}

// Equal reports whether o has exactly the same stored fields as p. IDs are
// not compared.
func (p *Person) Equal(o *Person) bool {
	if o == nil {
		return false
	}
	if p == o {
		return true
	}
	return p.role == o.role &&
		p.name == o.name &&
		p.email == o.email &&
		equalPtr(p.phone, o.phone) &&
		equalPtr(p.telegram, o.telegram) &&
		equalPtr(p.committee, o.committee) &&
		equalPtr(p.organisation, o.organisation) &&
		equalTags(p.tags, o.tags) &&
		sameRemarks(p.remarks, o.remarks)
}

func (p *Person) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s); Email: %s", p.name, p.role.Title(), p.email)
	if p.phone != nil {
		fmt.Fprintf(&b, "; Phone: %s", p.phone)
	}
	if p.telegram != nil {
		fmt.Fprintf(&b, "; Telegram: %s", p.telegram)
	}
	if p.committee != nil {
		fmt.Fprintf(&b, "; Committee: %s", p.committee)
	}
	if p.organisation != nil {
		fmt.Fprintf(&b, "; Organisation: %s", p.organisation)
	}
	if len(p.tags) > 0 {
		b.WriteString("; Tags: ")
		for _, t := range p.tags {
			fmt.Fprintf(&b, "[%s]", t)
		}
	}
	return b.String()
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sortedTags(tags []Tag) []Tag {
	seen := make(map[Tag]bool, len(tags))
	var out []Tag
	for _, t := range tags {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].value < out[j].value })
	return out
}

func equalTags(a, b []Tag) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// sameRemarks compares remark sets: order is ignored, content and status are not.
func sameRemarks(a, b []Remark) bool {
	if len(a) != len(b) {
		return false
	}
	for _, r := range a {
		found := false
		for _, o := range b {
			if r.Equal(o) && r.status == o.status {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
