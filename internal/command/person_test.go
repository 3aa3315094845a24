package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/projectbook/internal/models"
	"github.com/mmynk/projectbook/internal/testutil"
)

func TestAddPerson(t *testing.T) {
	m := newModel(t)
	carol := testutil.OrgMember(t, "Carol Ng", "carol@x.com", "Red Cross")

	res, err := NewAddPerson(carol).Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "New person added: Carol Ng (Organisation member); Email: carol@x.com; Organisation: Red Cross", res.Feedback)
	assert.Equal(t, ViewPersons, res.View)
	assert.Len(t, m.Book().Persons(), 3)
}

func TestAddPersonDuplicate(t *testing.T) {
	tests := []struct {
		name   string
		person func(t *testing.T) *models.Person
	}{
		{"same email", func(t *testing.T) *models.Person {
			return testutil.Volunteer(t, "Alice Tan2", "alice@x.com")
		}},
		{"same email other case", func(t *testing.T) *models.Person {
			return testutil.Volunteer(t, "Someone Else", "ALICE@X.COM")
		}},
		{"same phone other role", func(t *testing.T) *models.Person {
			return testutil.TeamMember(t, "Someone Else", "else@x.com", "Ops", testutil.WithPhone("9123 4567"))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(t)
			assertFails(t, m, NewAddPerson(tt.person(t)), KindDuplicate)
			assert.Len(t, m.Book().Persons(), 2)
		})
	}
}

func TestAddVolunteerSameEmailKeepsOnePerson(t *testing.T) {
	m := newModel(t)
	require.NoError(t, m.DeletePerson(personAt(t, m, 2)))

	ce := assertFails(t, m, NewAddPerson(testutil.Volunteer(t, "Alice Tan2", "alice@x.com")), KindDuplicate)
	assert.Equal(t, MessageDuplicatePerson, ce.Message)
	assert.Len(t, m.Book().Persons(), 1)
}

func TestEditPerson(t *testing.T) {
	m := newModel(t)
	alice := personAt(t, m, 1)
	web := project(t, m, "Website Revamp")
	require.NoError(t, m.AssignToProject(web, alice))

	name := testutil.Name(t, "Alice Ong")
	tg, err := models.NewTelegram("alice_ong")
	require.NoError(t, err)
	tag, err := models.NewTag("design")
	require.NoError(t, err)

	res, err := NewEditPerson(MustIndex(1), EditPersonDescriptor{
		Name:       &name,
		Telegram:   &tg,
		ClearPhone: true,
		Tags:       []models.Tag{tag},
		TagsSet:    true,
	}).Execute(m)
	require.NoError(t, err)
	assert.Contains(t, res.Feedback, "Edited person: Alice Ong")

	edited := personAt(t, m, 1)
	assert.Equal(t, alice.ID(), edited.ID())
	assert.Equal(t, "Alice Ong", edited.Name().String())
	_, hasPhone := edited.Phone()
	assert.False(t, hasPhone)
	got, _ := edited.Telegram()
	assert.Equal(t, "@alice_ong", got.String())
	assert.Equal(t, []models.Tag{tag}, edited.Tags())
	assert.Equal(t, alice.Remarks(), edited.Remarks(), "remarks survive the edit")
	assert.Equal(t, []*models.Project{web}, m.ProjectsOf(edited), "memberships survive the edit")
	assertConsistent(t, m)

	// the old instance is untouched
	assert.Equal(t, "Alice Tan", alice.Name().String())
}

func TestEditPersonFailures(t *testing.T) {
	bobEmail, err := models.NewEmail("BOB@x.com")
	require.NoError(t, err)
	committee, err := models.NewCommittee("Outreach")
	require.NoError(t, err)
	org, err := models.NewOrganisation("Red Cross")
	require.NoError(t, err)

	tests := []struct {
		name  string
		index int
		edits EditPersonDescriptor
		kind  ErrorKind
	}{
		{"index out of range", 3, EditPersonDescriptor{Email: &bobEmail}, KindInvalidIndex},
		{"nothing edited", 1, EditPersonDescriptor{}, KindNoFieldEdited},
		{"committee on volunteer", 1, EditPersonDescriptor{Committee: &committee}, KindRoleField},
		{"organisation on team member", 2, EditPersonDescriptor{Organisation: &org}, KindRoleField},
		{"clash with another person", 1, EditPersonDescriptor{Email: &bobEmail}, KindDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(t)
			assertFails(t, m, NewEditPerson(MustIndex(tt.index), tt.edits), tt.kind)
		})
	}
}

func TestEditPersonIndexUsesFilteredList(t *testing.T) {
	m := newModel(t)
	m.UpdatePersonFilter(NameContainsKeywords([]string{"bob"}))
	committee, err := models.NewCommittee("Outreach")
	require.NoError(t, err)

	_, err = NewEditPerson(MustIndex(1), EditPersonDescriptor{Committee: &committee}).Execute(m)
	require.NoError(t, err)

	got, ok := personAt(t, m, 1).Committee()
	require.True(t, ok)
	assert.Equal(t, "Outreach", got.String())
}

func TestEditPersonKeepsOwnContacts(t *testing.T) {
	m := newModel(t)
	email, err := models.NewEmail("Alice@X.com")
	require.NoError(t, err)

	_, err = NewEditPerson(MustIndex(1), EditPersonDescriptor{Email: &email}).Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "Alice@X.com", personAt(t, m, 1).Email().String())
}

func TestDeletePerson(t *testing.T) {
	m := newModel(t)
	alice := personAt(t, m, 1)
	web := project(t, m, "Website Revamp")
	require.NoError(t, m.AssignToProject(web, alice))

	res, err := NewDeletePerson(MustIndex(1)).Execute(m)
	require.NoError(t, err)
	assert.Contains(t, res.Feedback, "Deleted person: Alice Tan")
	assert.Empty(t, m.MembersOf(web))
	last, _ := web.LastUpdate()
	assert.Equal(t, "Removed member: Alice Tan", last.Message)

	assertFails(t, m, NewDeletePerson(MustIndex(2)), KindInvalidIndex)
}
