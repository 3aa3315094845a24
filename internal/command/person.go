package command

import (
	"github.com/mmynk/projectbook/internal/models"
	"github.com/mmynk/projectbook/internal/state"
)

// AddPerson adds a new volunteer, team member or organisation member.
type AddPerson struct {
	person *models.Person
}

func NewAddPerson(p *models.Person) *AddPerson { return &AddPerson{person: p} }

func (c *AddPerson) Name() string { return "add" }

func (c *AddPerson) Execute(m state.Model) (Result, error) {
	if m.HasPerson(c.person) {
		return Result{}, newError(KindDuplicate, MessageDuplicatePerson)
	}
	if err := m.AddPerson(c.person); err != nil {
		return Result{}, classify("add person", err)
	}
	return feedback(ViewPersons, MessageAddPersonSuccess, c.person), nil
}

// EditPersonDescriptor holds the fields to change. Nil pointers leave the
// field as it is.
type EditPersonDescriptor struct {
	Name     *models.Name
	Email    *models.Email
	Phone    *models.Phone
	Telegram *models.Telegram

	// ClearPhone and ClearTelegram remove the channel entirely.
	ClearPhone    bool
	ClearTelegram bool

	Committee    *models.Committee
	Organisation *models.Organisation

	// Tags replaces all tags when TagsSet is true; an empty slice removes them.
	Tags    []models.Tag
	TagsSet bool
}

// IsAnyFieldEdited reports whether d changes anything.
func (d EditPersonDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Email != nil || d.Phone != nil || d.Telegram != nil ||
		d.ClearPhone || d.ClearTelegram || d.Committee != nil || d.Organisation != nil || d.TagsSet
}

func (d EditPersonDescriptor) apply(f *models.PersonFields) {
	if d.Name != nil {
		f.Name = *d.Name
	}
	if d.Email != nil {
		f.Email = *d.Email
	}
	switch {
	case d.ClearPhone:
		f.Phone = nil
	case d.Phone != nil:
		f.Phone = d.Phone
	}
	switch {
	case d.ClearTelegram:
		f.Telegram = nil
	case d.Telegram != nil:
		f.Telegram = d.Telegram
	}
	if d.Committee != nil {
		f.Committee = d.Committee
	}
	if d.Organisation != nil {
		f.Organisation = d.Organisation
	}
	if d.TagsSet {
		f.Tags = append([]models.Tag(nil), d.Tags...)
	}
}

// checkRole rejects payload fields that the target's role cannot carry.
func (d EditPersonDescriptor) checkRole(role models.Role) error {
	switch role {
	case models.RoleVolunteer:
		if d.Committee != nil || d.Organisation != nil {
			return newError(KindRoleField, "Volunteers have no committee or organisation")
		}
	case models.RoleTeamMember:
		if d.Organisation != nil {
			return newError(KindRoleField, "Only organisation members have an organisation")
		}
	case models.RoleOrgMember:
		if d.Committee != nil {
			return newError(KindRoleField, "Only team members have a committee")
		}
	default:
		return newError(KindInternal, "unknown role %s", role)
	}
	return nil
}

// EditPerson changes fields of the person at a displayed index. The person
// keeps its ID, remarks and project memberships.
type EditPerson struct {
	index Index
	edits EditPersonDescriptor
}

func NewEditPerson(i Index, edits EditPersonDescriptor) *EditPerson {
	return &EditPerson{index: i, edits: edits}
}

func (c *EditPerson) Name() string { return "edit" }

func (c *EditPerson) Execute(m state.Model) (Result, error) {
	target, ok := pick(m.FilteredPersons(), c.index)
	if !ok {
		return Result{}, newError(KindInvalidIndex, MessageInvalidPersonIndex)
	}
	if !c.edits.IsAnyFieldEdited() {
		return Result{}, newError(KindNoFieldEdited, MessageNoFieldEdited)
	}
	if err := c.edits.checkRole(target.Role()); err != nil {
		return Result{}, err
	}

	f := target.Fields()
	c.edits.apply(&f)
	edited, err := target.With(f)
	if err != nil {
		return Result{}, classify("edit person", err)
	}
	if _, clash := m.FindSimilarPerson(edited, target.ID()); clash {
		return Result{}, newError(KindDuplicate, MessageDuplicatePerson)
	}
	if err := m.SetPerson(target, edited); err != nil {
		return Result{}, classify("edit person", err)
	}
	return feedback(ViewPersons, MessageEditPersonSuccess, edited), nil
}

// DeletePerson removes the person at a displayed index together with all of
// their memberships.
type DeletePerson struct {
	index Index
}

func NewDeletePerson(i Index) *DeletePerson { return &DeletePerson{index: i} }

func (c *DeletePerson) Name() string { return "delete" }

func (c *DeletePerson) Execute(m state.Model) (Result, error) {
	target, ok := pick(m.FilteredPersons(), c.index)
	if !ok {
		return Result{}, newError(KindInvalidIndex, MessageInvalidPersonIndex)
	}
	if err := m.DeletePerson(target); err != nil {
		return Result{}, classify("delete person", err)
	}
	return feedback(ViewPersons, MessageDeletePersonSuccess, target), nil
}
