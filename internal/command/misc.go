package command

import "github.com/mmynk/projectbook/internal/state"

// Clear removes every person and project.
type Clear struct{}

func NewClear() *Clear { return &Clear{} }

func (c *Clear) Name() string { return "clear" }

func (c *Clear) Execute(m state.Model) (Result, error) {
	m.ClearBook()
	m.UpdatePersonFilter(state.ShowAllPersons)
	m.UpdateProjectFilter(state.ShowAllProjects)
	return feedback(ViewPersons, MessageClearSuccess), nil
}

type Help struct{}

func NewHelp() *Help { return &Help{} }

func (c *Help) Name() string { return "help" }

func (c *Help) Execute(state.Model) (Result, error) {
	return Result{Feedback: MessageHelp, ShowHelp: true}, nil
}

type Exit struct{}

func NewExit() *Exit { return &Exit{} }

func (c *Exit) Name() string { return "exit" }

func (c *Exit) Execute(state.Model) (Result, error) {
	return Result{Feedback: MessageExit, Exit: true}, nil
}
