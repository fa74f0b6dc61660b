package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"beleg/internal/ast"
	"beleg/internal/diag"
	"beleg/internal/source"
)

// cacheSchemaVersion invalidates older payload layouts.
const cacheSchemaVersion uint16 = 1

// cacheKey is the sha256 of a file's content.
type cacheKey [sha256.Size]byte

func contentKey(content []byte) cacheKey {
	return sha256.Sum256(content)
}

// DiskCache stores per-file parse artifacts keyed by content hash.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache opens the cache under the user cache directory, e.g.
// ~/.cache/beleg/v1 on Linux.
func OpenDiskCache(app string) (*DiskCache, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(base, app, fmt.Sprintf("v%d", cacheSchemaVersion))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key cacheKey) string {
	return filepath.Join(c.dir, "parse", hex.EncodeToString(key[:])+".mp")
}

// put serializes a payload and writes it atomically.
func (c *DiskCache) put(key cacheKey, payload *parsePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// get reads a payload. Missing, corrupt and wrong-version entries all
// count as misses.
func (c *DiskCache) get(key cacheKey, out *parsePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, nil
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// parsePayload is the serialized form of one parsed file: the arena
// columns plus the file's diagnostics. All spans are stored local to
// the file, so a hit can be rebased to wherever the file lands in the
// next run's SourceMap.
type parsePayload struct {
	Schema uint16

	Kinds          []ast.NodeKind
	Spans          []source.Span
	ChildrenStarts []ast.NodeIndex
	Children       []ast.NodeIndex
	Root           ast.NodeIndex

	Diags      []diag.Diag
	TokenCount int
}

// newParsePayload captures a parse outcome with spans shifted from the
// global offset space down to file-local coordinates. Every real span
// of the file lies at or after base; the zero "no position" sentinel
// is stored as a reserved marker so a genuine zero-length span at the
// file's global start survives the round trip as local {0,0}.
func newParsePayload(tree *ast.Ast, diags []diag.Diag, tokenCount int, base uint32) *parsePayload {
	spans := make([]source.Span, len(tree.Spans()))
	for i, s := range tree.Spans() {
		spans[i] = localSpan(s, base)
	}
	ds := make([]diag.Diag, len(diags))
	for i, d := range diags {
		ds[i] = localDiag(d, base)
	}
	return &parsePayload{
		Schema:         cacheSchemaVersion,
		Kinds:          tree.Kinds(),
		Spans:          spans,
		ChildrenStarts: tree.ChildrenStarts(),
		Children:       tree.ChildrenBuffer(),
		Root:           tree.Root(),
		Diags:          ds,
		TokenCount:     tokenCount,
	}
}

// restore rebuilds the tree and diagnostics at the file's new global
// start offset.
func (p *parsePayload) restore(base uint32) (*ast.Ast, []diag.Diag, error) {
	spans := make([]source.Span, len(p.Spans))
	for i, s := range p.Spans {
		spans[i] = globalSpan(s, base)
	}
	tree, err := ast.FromRaw(p.Kinds, spans, p.ChildrenStarts, p.Children, p.Root)
	if err != nil {
		return nil, nil, err
	}
	diags := make([]diag.Diag, len(p.Diags))
	for i, d := range p.Diags {
		diags[i] = globalDiag(d, base)
	}
	return tree, diags, nil
}

// noPosition stands in for the zero "no position" span inside a stored
// payload. No real span can reach it: offsets are bounded by the total
// size of the loaded sources.
var noPosition = source.Span{Start: ^uint32(0), End: ^uint32(0)}

func localSpan(s source.Span, base uint32) source.Span {
	if s == (source.Span{}) {
		return noPosition
	}
	return source.Span{Start: s.Start - base, End: s.End - base}
}

func globalSpan(s source.Span, base uint32) source.Span {
	if s == noPosition {
		return source.Span{}
	}
	return s.WithOffset(base)
}

func localDiag(d diag.Diag, base uint32) diag.Diag {
	d.Primary = localSpan(d.Primary, base)
	d.Labels = shiftLabels(d.Labels, func(s source.Span) source.Span { return localSpan(s, base) })
	return d
}

func globalDiag(d diag.Diag, base uint32) diag.Diag {
	d.Primary = globalSpan(d.Primary, base)
	d.Labels = shiftLabels(d.Labels, func(s source.Span) source.Span { return globalSpan(s, base) })
	return d
}

func shiftLabels(labels []diag.Label, shift func(source.Span) source.Span) []diag.Label {
	if len(labels) == 0 {
		return labels
	}
	out := make([]diag.Label, len(labels))
	for i, l := range labels {
		l.Span = shift(l.Span)
		out[i] = l
	}
	return out
}
