package domain

import "go.trai.ch/zerr"

var (
	// ErrNoScriptFile is returned when kmak is invoked without a script argument.
	ErrNoScriptFile = zerr.New("no input file provided")

	// ErrScriptOpenFailed is returned when the script file cannot be read.
	ErrScriptOpenFailed = zerr.New("couldn't open script file")

	// ErrParseFailed is returned when a script contains a structural error.
	ErrParseFailed = zerr.New("failed to parse script")

	// ErrMissingVariableName is returned when a definition line has nothing before '='.
	ErrMissingVariableName = zerr.New("variable definition is missing a name")

	// ErrMissingTaskName is returned when a task header has no name.
	ErrMissingTaskName = zerr.New("task header is missing a name")

	// ErrDuplicateTask is returned when a task name is declared twice.
	ErrDuplicateTask = zerr.New("task already defined")

	// ErrTooManyVariables is returned when the variable table reaches its configured limit.
	ErrTooManyVariables = zerr.New("too many variables")

	// ErrTooManyTasks is returned when the task registry reaches its configured limit.
	ErrTooManyTasks = zerr.New("too many tasks")

	// ErrTooManyTaskLines is returned when a task body reaches its configured limit.
	ErrTooManyTaskLines = zerr.New("too many lines in task")

	// ErrUnterminatedReference is returned when "$(" has no closing ')' on the same line.
	ErrUnterminatedReference = zerr.New("missing closing ')' in variable reference")

	// ErrUndefinedVariable is returned when a reference names a variable that is not defined.
	ErrUndefinedVariable = zerr.New("undefined variable")

	// ErrVariableNameTooLong is returned when a reference names a variable longer than MaxVariableNameLen.
	ErrVariableNameTooLong = zerr.New("variable name too long")

	// ErrInvalidDefine is returned when a command line override is not of the form NAME=VALUE.
	ErrInvalidDefine = zerr.New("invalid variable override, expected NAME=VALUE")

	// ErrTaskNotDefined is returned when the requested task is not in the registry.
	ErrTaskNotDefined = zerr.New("task isn't defined")

	// ErrTaskFailed is returned when a task stops before its last directive.
	ErrTaskFailed = zerr.New("task failed")

	// ErrCommandNotStarted is returned when a command process could not be created.
	ErrCommandNotStarted = zerr.New("command could not be started")

	// ErrCommandWaitFailed is returned when a started command could not be waited for.
	ErrCommandWaitFailed = zerr.New("failed waiting for command")

	// ErrCommandFailed is returned when a command exits with a nonzero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrEmptyCommand is returned when a cmd directive resolves to an empty command line.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidLogFormat is returned when the log format is neither "pretty" nor "json".
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'pretty' or 'json'")

	// ErrInvalidLogLevel is returned when the log level is not one of debug, info, warn or error.
	ErrInvalidLogLevel = zerr.New("invalid log level, expected 'debug', 'info', 'warn' or 'error'")

	// ErrInvalidLimit is returned when a configured limit is negative.
	ErrInvalidLimit = zerr.New("limits must not be negative")
)

// Tag wraps sentinel and attaches the given key/value pairs as metadata.
// The result still matches sentinel with errors.Is.
func Tag(sentinel error, keyvals ...any) error {
	err := zerr.Wrap(sentinel, "")
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		err = zerr.With(err, key, keyvals[i+1])
	}
	return err
}
