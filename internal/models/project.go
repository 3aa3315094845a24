package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ProjectID identifies a project across renames (UUID format).
type ProjectID string

// NewProjectID returns a fresh random ID.
func NewProjectID() ProjectID { return ProjectID(uuid.New().String()) }

// ProjectUpdate is one entry of a project's update log.
type ProjectUpdate struct {
	Message string
	At      time.Time
}

func (u ProjectUpdate) String() string {
	return fmt.Sprintf("%s (%s)", u.Message, u.At.Format("2 Jan 2006 15:04"))
}

// Project is a named piece of work that persons can be assigned to.
// Membership itself is tracked by the book; a project only logs the changes.
type Project struct {
	id          ProjectID
	name        ProjectName
	description Description
	createdAt   time.Time
	updates     []ProjectUpdate
}

// NewProject returns a project created at createdAt with a new ID.
func NewProject(name ProjectName, description Description, createdAt time.Time) *Project {
	return &Project{
		id:          NewProjectID(),
		name:        name,
		description: description,
		createdAt:   createdAt,
	}
}

// RestoreProject rebuilds a project from persisted state.
func RestoreProject(name ProjectName, description Description, createdAt time.Time, updates []ProjectUpdate) *Project {
	p := NewProject(name, description, createdAt)
	p.updates = append([]ProjectUpdate(nil), updates...)
	return p
}

func (p *Project) ID() ProjectID            { return p.id }
func (p *Project) Name() ProjectName        { return p.name }
func (p *Project) Description() Description { return p.description }
func (p *Project) CreatedAt() time.Time     { return p.createdAt }

// Updates returns the update log, oldest first.
func (p *Project) Updates() []ProjectUpdate {
	return append([]ProjectUpdate(nil), p.updates...)
}

// LastUpdate returns the most recent log entry, if any.
func (p *Project) LastUpdate() (ProjectUpdate, bool) {
	if len(p.updates) == 0 {
		return ProjectUpdate{}, false
	}
	return p.updates[len(p.updates)-1], true
}

// Record appends an entry to the update log. Projects are mutated in place;
// callers must have validated the whole operation before recording.
func (p *Project) Record(message string, at time.Time) {
	p.updates = append(p.updates, ProjectUpdate{Message: message, At: at})
}

// WithDetails returns a copy carrying a new name and description. The ID,
// creation time and log are kept.
func (p *Project) WithDetails(name ProjectName, description Description) *Project {
	c := p.Clone()
	c.name = name
	c.description = description
	return c
}

// Clone returns a deep copy with the same ID.
func (p *Project) Clone() *Project {
	c := *p
	c.updates = append([]ProjectUpdate(nil), p.updates...)
	return &c
}

// IsSameProject reports whether o has the same normalised name.
func (p *Project) IsSameProject(o *Project) bool {
	return o != nil && p.name.Equal(o.name)
}

// Equal compares every stored field except the ID.
func (p *Project) Equal(o *Project) bool {
	if o == nil {
		return false
	}
	if p.name != o.name || p.description != o.description || !p.createdAt.Equal(o.createdAt) {
		return false
	}
	if len(p.updates) != len(o.updates) {
		return false
	}
	for i := range p.updates {
		if p.updates[i].Message != o.updates[i].Message || !p.updates[i].At.Equal(o.updates[i].At) {
			return false
		}
	}
	return true
}

func (p *Project) String() string {
	if p.description.String() == "" {
		return p.name.String()
	}
	return fmt.Sprintf("%s: %s", p.name, p.description)
}

// Membership binds one person to one project.
type Membership struct {
	ProjectID ProjectID
	PersonID  PersonID
}
