package interpreter

import (
	"fmt"
	"strings"

	"go.trai.ch/kmak/internal/core/domain"
	"go.trai.ch/kmak/internal/core/ports"
)

// Parser routes script lines into variable definitions and task bodies.
type Parser struct {
	logger    ports.Logger
	limits    domain.Limits
	overrides []domain.Variable
}

// NewParser creates a Parser. Overrides are defined before the script is
// read and cannot be redefined by it.
func NewParser(logger ports.Logger, limits domain.Limits, overrides ...domain.Variable) *Parser {
	return &Parser{
		logger:    logger,
		limits:    limits,
		overrides: overrides,
	}
}

// Parse reads text and returns the resulting state.
//
// A substitution error is reported and only skips the offending line.
// Structural errors stop parsing; no state is returned for them.
func (p *Parser) Parse(text string) (*State, error) {
	state := NewState(p.limits)

	for _, v := range p.overrides {
		if err := state.Variables.Pin(v.Name, v.Value); err != nil {
			return nil, err
		}
	}

	for line := range Lines(text) {
		if err := p.route(state, line); err != nil {
			return nil, domain.Tag(err, "line", line.Number)
		}
	}
	state.open = nil

	p.logger.Debug(fmt.Sprintf("parsed %d variables and %d tasks", state.Variables.Len(), state.Tasks.Len()))
	return state, nil
}

func (p *Parser) route(s *State, line Line) error {
	// Membership is decided on the raw line, so a comment at column 0 also
	// closes the task.
	if s.open != nil && !isIndented(line.Text) {
		s.open = nil
	}

	text := StripComment(line.Text)
	if isBlank(text) {
		return nil
	}
	text = trimLeft(text)

	if name, ok := taskHeader(text); ok {
		return p.openTask(s, line.Number, name)
	}

	if s.open != nil && isDirective(text) {
		return s.Tasks.Append(s.open, domain.BodyLine{Line: line.Number, Text: text})
	}

	def, ok, err := parseDefinition(text)
	if err != nil {
		return err
	}
	if ok {
		return p.define(s, line.Number, def)
	}

	if s.open != nil {
		return s.Tasks.Append(s.open, domain.BodyLine{Line: line.Number, Text: text})
	}

	p.logger.Warn(fmt.Sprintf("line %d: ignoring %q outside of a task", line.Number, text))
	return nil
}

func (p *Parser) openTask(s *State, number int, header string) error {
	s.open = nil

	name, err := Substitute(header, s.Variables.Lookup)
	if err != nil {
		p.report(number, err)
		return nil
	}

	name = strings.TrimRight(name, " \t")
	if name == "" {
		return domain.ErrMissingTaskName
	}

	task, err := s.Tasks.Open(name, number)
	if err != nil {
		return err
	}
	s.open = task
	return nil
}

func (p *Parser) define(s *State, number int, def domain.Variable) error {
	value, err := Substitute(def.Value, s.Variables.Lookup)
	if err != nil {
		p.report(number, err)
		return nil
	}

	result, err := s.Variables.Define(def.Name, value)
	if err != nil {
		return err
	}

	switch result {
	case Replaced:
		p.logger.Debug(fmt.Sprintf("line %d: redefining %s", number, def.Name))
	case Kept:
		p.logger.Debug(fmt.Sprintf("line %d: %s is set on the command line, ignoring definition", number, def.Name))
	case Added:
	}
	return nil
}

func (p *Parser) report(number int, err error) {
	p.logger.Error(domain.Tag(err, "line", number))
}

// taskHeader reports whether line is a "task <name>" header.
func taskHeader(line string) (string, bool) {
	rest, ok := cutKeyword(line, "task")
	if !ok || strings.HasPrefix(rest, "=") {
		return "", false
	}
	return rest, true
}

func isDirective(line string) bool {
	if _, ok := cutKeyword(line, "print"); ok {
		return true
	}
	_, ok := cutKeyword(line, "cmd")
	return ok
}
