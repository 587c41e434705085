package replay

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"

	"go.uber.org/zap"

	"github.com/mgnsk/dlist"
	"github.com/mgnsk/dlist/internal/seqfmt"
)

const empty = "<empty>"

var nopLogger = zap.NewNop()

// NewDeque creates a deque holding the initial values of s.
// The script backend takes precedence over opts.
func NewDeque(s *Script, opts ...dlist.Option) (dlist.Deque[string], error) {
	if err := s.compile(); err != nil {
		return nil, err
	}
	if s.Backend != "" {
		opts = append(slices.Clone(opts), dlist.WithBackend(s.Backend))
	}
	return dlist.Collect(slices.Values(s.Values), opts...), nil
}

// Run applies the operations of s to d and writes one result line per operation to w.
func Run(ctx context.Context, d dlist.Deque[string], s *Script, w io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = nopLogger
	}

	ops, err := s.Operations()
	if err != nil {
		return err
	}

	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return err
		}

		result := apply(d, op)

		logger.Debug("applied operation",
			zap.Int("index", i+1),
			zap.Stringer("op", op),
			zap.String("result", result),
			zap.Int("len", d.Len()),
		)

		if _, err := fmt.Fprintf(w, "%s -> %s\n", op.Name, result); err != nil {
			return fmt.Errorf("failed to write result of op %d: %w", i+1, err)
		}
	}

	logger.Info("replay finished", zap.Int("ops", len(ops)), zap.Int("len", d.Len()))

	return nil
}

func apply(d dlist.Deque[string], op Op) string {
	switch op.Name {
	case OpPushBack:
		d.PushBack(op.Arg)
		return "ok"

	case OpPushFront:
		d.PushFront(op.Arg)
		return "ok"

	case OpPopBack:
		return valueOrEmpty(d.PopBack())

	case OpPopFront:
		return valueOrEmpty(d.PopFront())

	case OpFront:
		return valueOrEmpty(d.Front())

	case OpBack:
		return valueOrEmpty(d.Back())

	case OpLen:
		return strconv.Itoa(d.Len())

	case OpPrint:
		return d.String()

	case OpReverse:
		return seqfmt.Format(d.Backward())

	case OpClear:
		d.Clear()
		return "ok"

	default:
		panic("replay: unvalidated operation '" + op.Name + "'")
	}
}

func valueOrEmpty(v string, ok bool) string {
	if !ok {
		return empty
	}
	return v
}
