/*
Package replay applies scripted deque operations and reports their results.
*/
package replay

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mgnsk/dlist"
)

var (
	// ErrUnknownOp indicates an operation name that is not supported.
	ErrUnknownOp = errors.New("unknown operation")
	// ErrBadArgs indicates an operation with a missing or unexpected argument.
	ErrBadArgs = errors.New("bad arguments")
	// ErrUnknownBackend indicates a script selecting an unsupported backend.
	ErrUnknownBackend = errors.New("unknown backend")
)

// Operation names.
const (
	OpPushBack  = "push_back"
	OpPushFront = "push_front"
	OpPopBack   = "pop_back"
	OpPopFront  = "pop_front"
	OpFront     = "front"
	OpBack      = "back"
	OpLen       = "len"
	OpPrint     = "print"
	OpReverse   = "reverse"
	OpClear     = "clear"
)

// takesArg reports for each operation whether it requires an argument.
var takesArg = map[string]bool{
	OpPushBack:  true,
	OpPushFront: true,
	OpPopBack:   false,
	OpPopFront:  false,
	OpFront:     false,
	OpBack:      false,
	OpLen:       false,
	OpPrint:     false,
	OpReverse:   false,
	OpClear:     false,
}

// Script is a sequence of operations applied to a deque of strings.
type Script struct {
	// Backend optionally selects the deque backend.
	Backend string `yaml:"backend"`
	// Values are the initial contents, front to back.
	Values []string `yaml:"values"`
	// Ops are the operations, one per line, such as "push_back x".
	Ops []string `yaml:"ops"`

	ops []Op
}

// Op is a parsed operation.
type Op struct {
	Name string
	Arg  string
}

func (op Op) String() string {
	if op.Arg == "" {
		return op.Name
	}
	return op.Name + " " + op.Arg
}

// ParseOp parses a single operation line.
func ParseOp(line string) (Op, error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	op := Op{Name: name, Arg: strings.TrimSpace(arg)}

	needsArg, ok := takesArg[op.Name]
	if !ok {
		return Op{}, ErrUnknownOp
	}
	if needsArg != (op.Arg != "") {
		return Op{}, ErrBadArgs
	}

	return op, nil
}

// Parse decodes and validates a YAML script.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	s := new(Script)
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty script")
		}
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}

	if err := s.compile(); err != nil {
		return nil, err
	}

	return s, nil
}

// Operations returns the parsed operations of s.
func (s *Script) Operations() ([]Op, error) {
	if err := s.compile(); err != nil {
		return nil, err
	}
	return s.ops, nil
}

func (s *Script) compile() error {
	if s.ops != nil {
		return nil
	}

	if s.Backend != "" && !slices.Contains(dlist.Backends(), s.Backend) {
		return fmt.Errorf("%w '%s'", ErrUnknownBackend, s.Backend)
	}

	ops := make([]Op, 0, len(s.Ops))
	for i, line := range s.Ops {
		op, err := ParseOp(line)
		if err != nil {
			return fmt.Errorf("op %d %q: %w", i+1, line, err)
		}
		ops = append(ops, op)
	}
	s.ops = ops

	return nil
}
