// Package models defines the core domain models for the project book.
//
// # Entities
//
//   - Person: a contact in one of three roles (volunteer, team member, organisation member)
//   - Project: a named piece of work with a description and an update log
//   - Membership: the join fact that a person currently belongs to a project
//
// Scalars (Name, Email, Phone, Telegram, ProjectName, Description, Committee,
// Organisation, Tag) and Remark are immutable values that validate themselves
// on construction. A value of one of these types that was not built through its
// constructor is the zero value and is never accepted by an entity.
//
// # Design Principles
//
// 1. **Copy-on-write persons**: every edit of a Person returns a new instance that
// keeps the same PersonID, so holders of the old instance see no change until it is
// swapped into the book.
// 2. **IDs instead of pointers**: memberships reference persons and projects by ID;
// the relationship table itself lives in package book.
// 3. **Closed role set**: Role is a discriminant with exactly three values; every
// decision made on it is an exhaustive switch that rejects anything else.
// 4. **Two notions of sameness**: IsSamePerson (any shared contact channel) flags
// probable duplicates, Equal compares every stored field.
package models
