package command

import (
	"fmt"
	"strings"

	"github.com/mmynk/projectbook/internal/models"
	"github.com/mmynk/projectbook/internal/state"
)

// AddProject creates a project stamped with the model's clock.
type AddProject struct {
	name        models.ProjectName
	description models.Description
}

func NewAddProject(name models.ProjectName, description models.Description) *AddProject {
	return &AddProject{name: name, description: description}
}

func (c *AddProject) Name() string { return "project add" }

func (c *AddProject) Execute(m state.Model) (Result, error) {
	if _, exists := m.FindProject(c.name.String()); exists {
		return Result{}, newError(KindDuplicate, MessageDuplicateProject)
	}
	now := m.Now()
	p := models.NewProject(c.name, c.description, now)
	p.Record(UpdateProjectCreated, now)
	if err := m.AddProject(p); err != nil {
		return Result{}, classify("add project", err)
	}
	return feedback(ViewProjects, MessageAddProjectSuccess, p), nil
}

// EditProject renames a project or changes its description.
type EditProject struct {
	ref         ProjectRef
	name        *models.ProjectName
	description *models.Description
}

func NewEditProject(ref ProjectRef, name *models.ProjectName, description *models.Description) *EditProject {
	return &EditProject{ref: ref, name: name, description: description}
}

func (c *EditProject) Name() string { return "project edit" }

func (c *EditProject) Execute(m state.Model) (Result, error) {
	target, err := c.ref.resolve(m)
	if err != nil {
		return Result{}, err
	}
	if c.name == nil && c.description == nil {
		return Result{}, newError(KindNoFieldEdited, MessageNoFieldEdited)
	}

	name, description := target.Name(), target.Description()
	if c.name != nil {
		name = *c.name
		if other, ok := m.FindProject(name.String()); ok && other.ID() != target.ID() {
			return Result{}, newError(KindDuplicate, MessageDuplicateProject)
		}
	}
	if c.description != nil {
		description = *c.description
	}

	updated := target.WithDetails(name, description)
	updated.Record(UpdateProjectEdited, m.Now())
	if err := m.SetProject(updated); err != nil {
		return Result{}, classify("edit project", err)
	}
	return feedback(ViewProjects, MessageEditProjectSuccess, updated), nil
}

// AssignToProject makes a person a member of a project.
type AssignToProject struct {
	person  PersonRef
	project string
}

func NewAssignToProject(person PersonRef, project string) *AssignToProject {
	return &AssignToProject{person: person, project: project}
}

func (c *AssignToProject) Name() string { return "project assign" }

func (c *AssignToProject) Execute(m state.Model) (Result, error) {
	person, project, err := resolvePair(m, c.person, c.project)
	if err != nil {
		return Result{}, err
	}
	if m.IsMember(project, person) {
		return Result{}, newError(KindAlreadyMember, MessageAlreadyMember, person.Name(), project.Name())
	}
	if err := m.AssignToProject(project, person); err != nil {
		return Result{}, classify("assign to project", err)
	}
	return feedback(ViewUnchanged, MessageAssignSuccess, person.Name(), project.Name()), nil
}

// RemoveFromProject ends a person's membership of a project.
type RemoveFromProject struct {
	person  PersonRef
	project string
}

func NewRemoveFromProject(person PersonRef, project string) *RemoveFromProject {
	return &RemoveFromProject{person: person, project: project}
}

func (c *RemoveFromProject) Name() string { return "project remove" }

func (c *RemoveFromProject) Execute(m state.Model) (Result, error) {
	person, project, err := resolvePair(m, c.person, c.project)
	if err != nil {
		return Result{}, err
	}
	if !m.IsMember(project, person) {
		return Result{}, newError(KindNotMember, MessageNotMember, person.Name(), project.Name())
	}
	if err := m.RemoveFromProject(project, person); err != nil {
		return Result{}, classify("remove from project", err)
	}
	return feedback(ViewUnchanged, MessageUnassignSuccess, person.Name(), project.Name()), nil
}

func resolvePair(m state.Model, ref PersonRef, projectName string) (*models.Person, *models.Project, error) {
	person, err := ref.resolve(m)
	if err != nil {
		return nil, nil, err
	}
	project, err := ProjectNamed(projectName).resolve(m)
	if err != nil {
		return nil, nil, err
	}
	return person, project, nil
}

// DeleteProject removes a project and every membership in it.
type DeleteProject struct {
	ref ProjectRef
}

func NewDeleteProject(ref ProjectRef) *DeleteProject { return &DeleteProject{ref: ref} }

func (c *DeleteProject) Name() string { return "project delete" }

func (c *DeleteProject) Execute(m state.Model) (Result, error) {
	target, err := c.ref.resolve(m)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteProject(target); err != nil {
		return Result{}, classify("delete project", err)
	}
	return feedback(ViewProjects, MessageDeleteProjectSuccess, target.Name()), nil
}

// ViewProject describes one project and its members.
type ViewProject struct {
	ref ProjectRef
}

func NewViewProject(ref ProjectRef) *ViewProject { return &ViewProject{ref: ref} }

func (c *ViewProject) Name() string { return "project view" }

func (c *ViewProject) Execute(m state.Model) (Result, error) {
	p, err := c.ref.resolve(m)
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: DescribeProject(p, m.MembersOf(p)), View: ViewProjects}, nil
}

// DescribeProject renders a project with its members and latest update.
func DescribeProject(p *models.Project, members []*models.Person) string {
	var b strings.Builder
	b.WriteString(p.Name().String())
	if d := p.Description().String(); d != "" {
		fmt.Fprintf(&b, "\nDescription: %s", d)
	}
	fmt.Fprintf(&b, "\nCreated: %s", p.CreatedAt().Format("2 Jan 2006 15:04"))

	b.WriteString("\nMembers: ")
	if len(members) == 0 {
		b.WriteString("none")
	}
	for i, member := range members {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(member.Name().String())
	}

	if last, ok := p.LastUpdate(); ok {
		fmt.Fprintf(&b, "\nLast update: %s", last)
	}
	return b.String()
}
