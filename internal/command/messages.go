package command

// User-facing messages.
const (
	MessageInvalidPersonIndex  = "The person index provided is invalid"
	MessageInvalidProjectIndex = "The project index provided is invalid"
	MessageInvalidRemarkIndex  = "The remark index provided is invalid"
	MessagePersonNotFound      = "No person named %q"
	MessageAmbiguousPerson     = "%d persons are named %q; refer to the person by index instead"
	MessageProjectNotFound     = "No project named %q"
	MessageDuplicatePerson     = "This person already exists in the project book"
	MessageDuplicateProject    = "This project already exists in the project book"
	MessageNoFieldEdited       = "At least one field to edit must be provided"

	MessageAddPersonSuccess    = "New person added: %s"
	MessageEditPersonSuccess   = "Edited person: %s"
	MessageDeletePersonSuccess = "Deleted person: %s"

	MessageAddRemarkSuccess     = "Added remark to %s: %s"
	MessageDuplicateRemark      = "%s already has this remark"
	MessageResolveRemarkSuccess = "Resolved remark of %s: %s"
	MessageDeleteRemarkSuccess  = "Deleted remark of %s: %s"

	MessageAddProjectSuccess    = "New project added: %s"
	MessageEditProjectSuccess   = "Edited project: %s"
	MessageDeleteProjectSuccess = "Deleted project: %s"
	MessageAssignSuccess        = "Assigned %s to %s"
	MessageUnassignSuccess      = "Removed %s from %s"
	MessageAlreadyMember        = "%s is already a member of %s"
	MessageNotMember            = "%s is not a member of %s"

	MessagePersonsListed  = "%d persons listed!"
	MessageAllPersons     = "Listed all persons"
	MessageProjectsListed = "%d projects listed!"
	MessageAllProjects    = "Listed all projects"

	MessageClearSuccess = "Project book has been cleared!"
	MessageHelp         = "Showing help."
	MessageExit         = "Exiting project book as requested ..."
)

// Update log entries written by project commands.
const (
	UpdateProjectCreated = "Project created"
	UpdateProjectEdited  = "Project edited"
)
