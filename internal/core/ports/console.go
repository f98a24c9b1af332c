package ports

// Console defines where task output and command echoes are written.
//
//go:generate mockgen -source=console.go -destination=mocks/mock_console.go -package=mocks
type Console interface {
	// Print writes a line of task output.
	Print(text string)
	// Command echoes a command line before it is launched.
	Command(cmdline string)
	// Tasks lists the available task names.
	Tasks(names []string)
}
