package convert

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rupor-github/gencfg"
	"go.uber.org/zap"

	"dtree/config"
	"dtree/dom"
)

// parseOp parses operation given on command line: "replace OLD NEW",
// "bold ROW", "remove TAG" or "add WORD TAG".
func parseOp(s string) (config.OperationConfig, error) {
	var op config.OperationConfig

	fields := strings.Fields(s)
	if len(fields) == 0 {
		return op, errors.New("empty operation")
	}
	kind, err := config.ParseOpKind(fields[0])
	if err != nil {
		return op, err
	}
	op.Kind = kind
	args := fields[1:]

	want := map[config.OpKind]int{
		config.OpKindReplace: 2,
		config.OpKindBold:    1,
		config.OpKindRemove:  1,
		config.OpKindAdd:     2,
	}[kind]
	if len(args) != want {
		return op, fmt.Errorf("operation %q expects %d argument(s), got %d", kind, want, len(args))
	}

	switch kind {
	case config.OpKindReplace:
		op.Old, op.New = args[0], args[1]
	case config.OpKindBold:
		if op.Row, err = strconv.Atoi(args[0]); err != nil {
			return op, fmt.Errorf("bad row number %q: %w", args[0], err)
		}
	case config.OpKindRemove:
		op.Tag = args[0]
	case config.OpKindAdd:
		op.Word, op.Tag = args[0], args[1]
	}
	if err := gencfg.Validate(&op); err != nil {
		return op, fmt.Errorf("invalid operation %q: %w", s, err)
	}
	return op, nil
}

// collectOps assembles operations in the order they are applied:
// configuration, script file, command line.
func collectOps(cfg []config.OperationConfig, script string, cmdline []string) ([]config.OperationConfig, error) {
	ops := append([]config.OperationConfig{}, cfg...)

	if len(script) > 0 {
		data, err := os.ReadFile(script)
		if err != nil {
			return nil, fmt.Errorf("unable to read operations script: %w", err)
		}
		scripted, err := config.ParseOperations(data)
		if err != nil {
			return nil, fmt.Errorf("unable to parse operations script '%s': %w", script, err)
		}
		ops = append(ops, scripted...)
	}

	for _, s := range cmdline {
		op, err := parseOp(s)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func describeOp(op config.OperationConfig) string {
	switch op.Kind {
	case config.OpKindReplace:
		return fmt.Sprintf("replace %s %s", op.Old, op.New)
	case config.OpKindBold:
		return fmt.Sprintf("bold %d", op.Row)
	case config.OpKindRemove:
		return fmt.Sprintf("remove %s", op.Tag)
	case config.OpKindAdd:
		return fmt.Sprintf("add %s %s", op.Word, op.Tag)
	}
	return op.Kind.String()
}

func applyOp(tree *dom.Tree, op config.OperationConfig) (int, error) {
	switch op.Kind {
	case config.OpKindReplace:
		return tree.ReplaceTag(op.Old, op.New)
	case config.OpKindBold:
		return tree.BoldRow(op.Row)
	case config.OpKindRemove:
		return tree.RemoveTag(op.Tag)
	case config.OpKindAdd:
		return tree.AddTag(op.Word, op.Tag)
	}
	return 0, fmt.Errorf("unsupported operation %s", op.Kind)
}

// applyOps edits the document in order. Processing stops on the first
// failed operation, tree is left as it is at that moment.
func (c *Content) applyOps(ops []config.OperationConfig, log *zap.Logger) error {
	for i, op := range ops {
		n, err := applyOp(c.tree, op)
		if err != nil {
			return fmt.Errorf("operation %d (%s): %w", i+1, describeOp(op), err)
		}
		c.counts = append(c.counts, n)
		log.Debug("Operation applied", zap.String("op", describeOp(op)), zap.Int("changed", n))
	}
	return nil
}
