package parser

import "strings"

const (
	UsageAdd = "add volunteer|member|orgmember n/NAME e/EMAIL [c/COMMITTEE] [o/ORGANISATION] " +
		"[p/PHONE] [tg/TELEGRAM] [t/TAG]...\n" +
		"  member requires c/, orgmember requires o/\n" +
		"  Example: add member n/Alice Tan e/alice@x.com c/Outreach t/lead"
	UsageEdit = "edit INDEX [n/NAME] [e/EMAIL] [p/PHONE] [tg/TELEGRAM] [c/COMMITTEE] [o/ORGANISATION] [t/TAG]...\n" +
		"  An empty p/ or tg/ removes the field; an empty t/ removes all tags.\n" +
		"  Example: edit 1 p/91234567 tg/"
	UsageDelete        = "delete INDEX\n  Example: delete 2"
	UsageFind          = "find KEYWORD [MORE_KEYWORDS]...\n  Example: find alice bob"
	UsageList          = "list"
	UsageRemark        = "remark INDEX r/TEXT\n  Example: remark 1 r/call back on Monday"
	UsageRemarkResolve = "remark resolve PERSON_INDEX REMARK_INDEX\n  Example: remark resolve 1 2"
	UsageRemarkDelete  = "remark delete PERSON_INDEX REMARK_INDEX\n  Example: remark delete 1 2"

	UsageProjectAdd    = "project add project/NAME [d/DESCRIPTION]\n  Example: project add project/Website Revamp d/new look"
	UsageProjectEdit   = "project edit INDEX|NAME [project/NAME] [d/DESCRIPTION]\n  Example: project edit 1 d/phase two"
	UsageProjectAssign = "project assign INDEX|NAME project/PROJECT\n  Example: project assign Alice Tan project/Website Revamp"
	UsageProjectRemove = "project remove INDEX|NAME project/PROJECT\n  Example: project remove 1 project/Website Revamp"
	UsageProjectDelete = "project delete INDEX|NAME\n  Example: project delete Website Revamp"
	UsageProjectView   = "project view INDEX|NAME\n  Example: project view 1"
	UsageProjectFind   = "project find KEYWORD [MORE_KEYWORDS]...\n  Example: project find website"
	UsageProjectList   = "project list"

	UsageClear = "clear"
	UsageHelp  = "help"
	UsageExit  = "exit"
)

// HelpText lists the format of every command.
func HelpText() string {
	return strings.Join([]string{
		UsageAdd, UsageEdit, UsageDelete, UsageFind, UsageList,
		UsageRemark, UsageRemarkResolve, UsageRemarkDelete,
		UsageProjectAdd, UsageProjectEdit, UsageProjectAssign, UsageProjectRemove,
		UsageProjectDelete, UsageProjectView, UsageProjectFind, UsageProjectList,
		UsageClear, UsageHelp, UsageExit,
	}, "\n\n")
}
