package domain

// Variable is a named string value available to $(name) references.
type Variable struct {
	Name  string
	Value string
}

// BodyLine is one stored line of a task body. Text is kept unexpanded;
// references are resolved when the task runs.
type BodyLine struct {
	Line int
	Text string
}

// Task is a named, ordered sequence of body lines.
type Task struct {
	Name string
	// Line is the script line the task header was read from.
	Line int
	Body []BodyLine
}

// Command is a resolved command line ready to be handed to a launcher.
type Command struct {
	Line string
	// Shell is the argv prefix the line is appended to. An empty Shell runs
	// the line directly after splitting it into fields.
	Shell []string
	// Env holds variables merged over the inherited process environment.
	Env map[string]string
}

// LaunchResult reports what happened to a launched command.
type LaunchResult struct {
	Started  bool
	ExitCode int
}
