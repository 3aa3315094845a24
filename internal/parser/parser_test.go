package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/projectbook/internal/book"
	"github.com/mmynk/projectbook/internal/command"
	"github.com/mmynk/projectbook/internal/config"
	"github.com/mmynk/projectbook/internal/models"
	"github.com/mmynk/projectbook/internal/state"
	"github.com/mmynk/projectbook/internal/testutil"
)

func mustParse(t *testing.T, input string) command.Command {
	t.Helper()
	cmd, err := Parse(input)
	require.NoError(t, err, "input %q", input)
	return cmd
}

func assertParseError(t *testing.T, input, message string) *ParseError {
	t.Helper()
	_, err := Parse(input)
	var pe *ParseError
	require.ErrorAs(t, err, &pe, "input %q", input)
	if message != "" {
		assert.Contains(t, pe.Message, message)
	}
	return pe
}

func TestParseSimpleCommands(t *testing.T) {
	tests := []struct {
		input string
		want  command.Command
	}{
		{"list", command.NewListPersons()},
		{"LIST extra words", command.NewListPersons()},
		{"clear", command.NewClear()},
		{"help", command.NewHelp()},
		{"exit", command.NewExit()},
		{"delete 2", command.NewDeletePerson(command.MustIndex(2))},
		{"find alice  bob", command.NewFindPerson([]string{"alice", "bob"})},
		{"remark 1 r/call back", command.NewAddRemark(command.MustIndex(1), testutil.Remark(t, "call back"))},
		{"remark resolve 1 2", command.NewResolveRemark(command.MustIndex(1), command.MustIndex(2))},
		{"remark delete 3 1", command.NewDeleteRemark(command.MustIndex(3), command.MustIndex(1))},
		{"project list", command.NewListProjects()},
		{"project find web", command.NewFindProject([]string{"web"})},
		{"project delete 2", command.NewDeleteProject(command.ProjectAt(command.MustIndex(2)))},
		{"project view Website Revamp", command.NewViewProject(command.ProjectNamed("Website Revamp"))},
		{"project assign 1 project/Website Revamp",
			command.NewAssignToProject(command.PersonAt(command.MustIndex(1)), "Website Revamp")},
		{"project remove Alice Tan project/Web",
			command.NewRemoveFromProject(command.PersonNamed(testutil.Name(t, "Alice Tan")), "Web")},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, mustParse(t, tt.input))
		})
	}
}

func TestParseProjectAdd(t *testing.T) {
	desc, err := models.NewDescription("new look")
	require.NoError(t, err)

	assert.Equal(t,
		command.NewAddProject(testutil.ProjectName(t, "Website Revamp"), desc),
		mustParse(t, "project add project/Website Revamp d/new look"))
	assert.Equal(t,
		command.NewAddProject(testutil.ProjectName(t, "Food Drive"), models.Description{}),
		mustParse(t, "project add project/Food Drive"))
}

func TestParseProjectEdit(t *testing.T) {
	name := testutil.ProjectName(t, "Rebuild")

	assert.Equal(t,
		command.NewEditProject(command.ProjectAt(command.MustIndex(1)), &name, nil),
		mustParse(t, "project edit 1 project/Rebuild"))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"empty", "   ", MessageInvalidFormat},
		{"unknown word", "frobnicate", MessageUnknownCommand},
		{"unknown project word", "project frob", MessageUnknownCommand},
		{"add without role", "add n/A e/a@x.com", MessageInvalidFormat},
		{"add unknown role", "add boss n/A e/a@x.com", MessageInvalidFormat},
		{"add without email", "add volunteer n/Alice", "Missing e/"},
		{"add duplicate name", "add volunteer n/A n/B e/a@x.com", "n/"},
		{"add bad email", "add volunteer n/Alice e/not-an-email", "invalid email"},
		{"add bad phone", "add volunteer n/Alice e/a@x.com p/12ab", "invalid phone"},
		{"add member without committee", "add member n/Alice e/a@x.com", "committee"},
		{"add volunteer with committee", "add volunteer n/Alice e/a@x.com c/Events", "committee"},
		{"edit zero index", "edit 0 n/Bob", MessageInvalidIndex},
		{"edit text index", "edit one n/Bob", MessageInvalidIndex},
		{"edit duplicate phone", "edit 1 p/123 p/456", "p/"},
		{"delete without index", "delete", MessageInvalidIndex},
		{"find without keywords", "find", MessageInvalidFormat},
		{"remark without text", "remark 1", "Missing r/"},
		{"remark blank text", "remark 1 r/  ", "invalid remark"},
		{"remark resolve one index", "remark resolve 1", MessageInvalidFormat},
		{"project add without name", "project add d/x", "Missing project/"},
		{"project add with preamble", "project add junk project/X", MessageInvalidFormat},
		{"project add duplicate name", "project add project/A project/B", "project/"},
		{"project assign without project", "project assign 1", "Missing project/"},
		{"project assign empty project", "project assign 1 project/", MessageInvalidFormat},
		{"project assign negative index", "project assign -1 project/X", MessageInvalidIndex},
		{"project assign without person", "project assign project/X", MessageInvalidFormat},
		{"project view without ref", "project view", MessageInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertParseError(t, tt.input, tt.message)
		})
	}
}

func TestParseErrorUsage(t *testing.T) {
	pe := assertParseError(t, "delete x", MessageInvalidIndex)
	assert.Equal(t, UsageDelete, pe.Usage)
	assert.Equal(t, MessageInvalidIndex+"\n"+UsageDelete, pe.Error())
}

func newModel(t *testing.T) *state.Manager {
	t.Helper()
	b := book.New()
	require.NoError(t, b.AddPerson(testutil.Volunteer(t, "Alice Tan", "alice@x.com", testutil.WithPhone("91234567"), testutil.WithTags("old"))))
	return state.NewManager(b, config.Default(), state.WithClock(testutil.Clock()))
}

func TestParseAddExecutes(t *testing.T) {
	m := newModel(t)
	cmd := mustParse(t, "add member n/Bob  Lee e/bob@x.com c/Events p/8123-4567 tg/boblee t/lead t/ops")
	assert.Equal(t, "add", cmd.Name())

	_, err := cmd.Execute(m)
	require.NoError(t, err)

	bob := m.FilteredPersons()[1]
	assert.Equal(t, models.RoleTeamMember, bob.Role())
	assert.Equal(t, "Bob Lee", bob.Name().String())
	phone, _ := bob.Phone()
	assert.Equal(t, "81234567", phone.String())
	tg, _ := bob.Telegram()
	assert.Equal(t, "@boblee", tg.String())
	committee, _ := bob.Committee()
	assert.Equal(t, "Events", committee.String())
	assert.Len(t, bob.Tags(), 2)
}

func TestParseEditClearsFields(t *testing.T) {
	m := newModel(t)

	_, err := mustParse(t, "edit 1 p/ t/").Execute(m)
	require.NoError(t, err)

	alice := m.FilteredPersons()[0]
	_, hasPhone := alice.Phone()
	assert.False(t, hasPhone)
	assert.Empty(t, alice.Tags())
}

func TestParseEditWithoutFields(t *testing.T) {
	m := newModel(t)

	_, err := mustParse(t, "edit 1").Execute(m)
	assert.True(t, command.IsKind(err, command.KindNoFieldEdited))
}

func TestHelpTextListsEveryCommand(t *testing.T) {
	text := HelpText()
	for _, word := range []string{"add ", "edit ", "delete ", "find ", "remark resolve", "project assign", "project view", "clear", "exit"} {
		assert.Contains(t, text, word)
	}
}
