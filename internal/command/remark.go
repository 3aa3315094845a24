package command

import (
	"github.com/mmynk/projectbook/internal/models"
	"github.com/mmynk/projectbook/internal/state"
)

// AddRemark attaches a pending remark to a person.
type AddRemark struct {
	index  Index
	remark models.Remark
}

func NewAddRemark(i Index, r models.Remark) *AddRemark {
	return &AddRemark{index: i, remark: r}
}

func (c *AddRemark) Name() string { return "remark" }

func (c *AddRemark) Execute(m state.Model) (Result, error) {
	target, ok := pick(m.FilteredPersons(), c.index)
	if !ok {
		return Result{}, newError(KindInvalidIndex, MessageInvalidPersonIndex)
	}
	if target.HasRemark(c.remark) {
		return Result{}, newError(KindDuplicate, MessageDuplicateRemark, target.Name())
	}
	edited, err := target.WithNewRemark(c.remark)
	if err != nil {
		return Result{}, classify("add remark", err)
	}
	if err := m.SetPerson(target, edited); err != nil {
		return Result{}, classify("add remark", err)
	}
	return feedback(ViewPersons, MessageAddRemarkSuccess, edited.Name(), c.remark.Content()), nil
}

// RemarkAction is what ChangeRemark does to the selected remark.
type RemarkAction int

const (
	RemarkResolve RemarkAction = iota + 1
	RemarkDelete
)

func (a RemarkAction) String() string {
	switch a {
	case RemarkResolve:
		return "resolve"
	case RemarkDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// ChangeRemark resolves or deletes one remark of a person. Remarks are
// addressed by their position in the person's remark list.
type ChangeRemark struct {
	action RemarkAction
	person Index
	remark Index
}

func NewResolveRemark(person, remark Index) *ChangeRemark {
	return &ChangeRemark{action: RemarkResolve, person: person, remark: remark}
}

func NewDeleteRemark(person, remark Index) *ChangeRemark {
	return &ChangeRemark{action: RemarkDelete, person: person, remark: remark}
}

func (c *ChangeRemark) Name() string { return "remark " + c.action.String() }

func (c *ChangeRemark) Execute(m state.Model) (Result, error) {
	target, ok := pick(m.FilteredPersons(), c.person)
	if !ok {
		return Result{}, newError(KindInvalidIndex, MessageInvalidPersonIndex)
	}
	r, ok := target.RemarkAt(c.remark.Zero())
	if !ok {
		return Result{}, newError(KindInvalidIndex, MessageInvalidRemarkIndex)
	}

	var (
		edited *models.Person
		err    error
		msg    string
	)
	switch c.action {
	case RemarkResolve:
		edited, err = target.WithResolvedRemark(r, r.Resolved())
		msg = MessageResolveRemarkSuccess
	case RemarkDelete:
		edited, err = target.WithRemarkRemoved(r)
		msg = MessageDeleteRemarkSuccess
	default:
		return Result{}, newError(KindInternal, "unknown remark action %d", int(c.action))
	}
	if err != nil {
		return Result{}, classify("change remark", err)
	}
	if err := m.SetPerson(target, edited); err != nil {
		return Result{}, classify("change remark", err)
	}
	return feedback(ViewPersons, msg, edited.Name(), r.Content()), nil
}
