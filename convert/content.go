package convert

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dtree/dom"
	"dtree/state"
)

// Content is a single document being processed.
type Content struct {
	srcName string
	id      uuid.UUID
	tree    *dom.Tree
	counts  []int
}

func (c *Content) Tree() *dom.Tree { return c.tree }

func (c *Content) ID() uuid.UUID { return c.id }

// reportName returns name for debug report entries of this document.
func (c *Content) reportName(suffix string) string {
	return path.Join(c.id.String(), filepath.Base(c.srcName)+suffix)
}

// prepareContent reads document from already decoded reader and builds the
// tree. With normalize set input is treated as ordinary HTML.
func prepareContent(ctx context.Context, r io.Reader, srcName string, normalize bool, log *zap.Logger) (*Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := state.EnvFromContext(ctx)

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("unable to generate document id: %w", err)
	}
	c := &Content{srcName: srcName, id: id}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read document: %w", err)
	}
	env.Rpt.StoreData(c.reportName(""), data)

	var lines []string
	if normalize {
		if lines, err = normalizeHTML(bytes.NewReader(data)); err != nil {
			return nil, err
		}
		env.Rpt.StoreData(c.reportName("_normalized"), []byte(strings.Join(lines, "\n")+"\n"))
		c.tree, err = dom.Build(lines)
	} else {
		c.tree, err = dom.Read(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("unable to build document tree: %w", err)
	}

	env.Rpt.StoreData(c.reportName("_parsed"), []byte(c.String()))
	log.Debug("Document tree ready", zap.Stringer("id", id), zap.Int("nodes", c.tree.Len()))
	return c, nil
}
