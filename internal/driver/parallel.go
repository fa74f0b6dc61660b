package driver

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"beleg/internal/ast"
	"beleg/internal/diag"
	"beleg/internal/observ"
	"beleg/internal/source"
	"beleg/internal/vfs"
)

// FileResult is one file's outcome inside a DirResult.
type FileResult struct {
	Path       string
	Node       vfs.NodeID
	FileID     source.FileID
	Tree       *ast.Ast
	Diags      []diag.Diag
	TokenCount int
	Cached     bool
}

// HasErrors reports whether the file produced error diagnostics.
func (r *FileResult) HasErrors() bool {
	for _, d := range r.Diags {
		if d.Level >= diag.LevelError {
			return true
		}
	}
	return false
}

// DirResult is a whole-directory parse.
type DirResult struct {
	SourceMap *source.SourceMap
	Project   *vfs.Tree
	Files     []FileResult
	Timer     *observ.Timer
}

// Options configures ParseDir.
type Options struct {
	// Jobs caps worker goroutines; non-positive means GOMAXPROCS.
	Jobs int
	// Diag is the volume policy applied per worker and to the merge.
	Diag diag.Options
	// Progress receives per-file events; nil disables them.
	Progress ProgressSink
	// Cache holds parse artifacts between runs; nil disables caching.
	Cache *DiskCache
}

type dirFile struct {
	node vfs.NodeID
	path string
	abs  string
}

// sourceFiles collects the project's Beleg sources in sorted path
// order. Build output directories are not scanned.
func sourceFiles(t *vfs.Tree) []dirFile {
	var out []dirFile
	var walk func(id vfs.NodeID)
	walk = func(id vfs.NodeID) {
		children, ok := t.Children(id)
		if !ok {
			return
		}
		for _, childID := range children {
			child := t.Node(childID)
			switch child.Kind() {
			case vfs.NodeDir:
				if child.Dir().Kind == vfs.DirBuild {
					continue
				}
				walk(childID)
			case vfs.NodeFile:
				switch child.File().Kind {
				case vfs.FileMain, vfs.FileMod, vfs.FileNormal:
				default:
					continue
				}
				rel, _ := t.ProjectPath(childID)
				abs, _ := t.AbsolutePath(childID)
				out = append(out, dirFile{node: childID, path: rel, abs: abs})
			}
		}
	}
	walk(t.Root())

	sort.Slice(out, func(i, j int) bool { return out[i].path < out[j].path })
	return out
}

// SourcePaths returns the project-relative paths ParseDir would parse,
// in the same order. The progress UI seeds its file list from it.
func SourcePaths(root string) ([]string, error) {
	project, err := vfs.Scan(root)
	if err != nil {
		return nil, err
	}
	files := sourceFiles(project)
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.path
	}
	return paths, nil
}

// ParseDir scans root, parses every Beleg source in it concurrently and
// merges the diagnostics into run in file order. Parsed trees and file
// IDs are attached to the returned project tree.
func ParseDir(ctx context.Context, root string, run *diag.Context, opts Options) (*DirResult, error) {
	timer := observ.NewTimer()

	scanIdx := timer.Start("scan")
	project, err := vfs.Scan(root)
	if err != nil {
		return nil, err
	}
	files := sourceFiles(project)
	timer.Stop(scanIdx, fmt.Sprintf("%d files", len(files)))

	sm := source.NewSourceMap()
	res := &DirResult{
		SourceMap: sm,
		Project:   project,
		Files:     make([]FileResult, len(files)),
		Timer:     timer,
	}
	if len(files) == 0 {
		return res, nil
	}

	// Грузим содержимое последовательно: раскладка SourceMap должна
	// быть детерминированной, AddFile не потокобезопасен.
	loadIdx := timer.Start("load")
	fileIDs := make([]source.FileID, len(files))
	loadErrs := make([]error, len(files))
	for i, f := range files {
		content, err := os.ReadFile(f.abs)
		if err != nil {
			loadErrs[i] = err
			continue
		}
		fileIDs[i] = sm.AddFile(f.path, content)
	}
	timer.Stop(loadIdx, "")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	parseIdx := timer.Start("parse")

	// Слоты результатов по индексам, горутины не разделяют состояние
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, f := range files {
		g.Go(func(i int, f dirFile) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				emitProgress(opts.Progress, Event{Path: f.path, Status: StatusWorking})
				res.Files[i] = parseOne(sm, f, fileIDs[i], loadErrs[i], opts)

				status := StatusDone
				if res.Files[i].HasErrors() {
					status = StatusError
				}
				emitProgress(opts.Progress, Event{Path: f.path, Status: status, Cached: res.Files[i].Cached})
				return nil
			}
		}(i, f))
	}

	if err := g.Wait(); err != nil {
		return res, err
	}
	timer.Stop(parseIdx, fmt.Sprintf("%d jobs", min(jobs, len(files))))

	// Детерминированное слияние: файлы в порядке путей, внутри файла
	// диагностики уже отсортированы воркером.
	mergeIdx := timer.Start("merge")
	for i := range res.Files {
		r := &res.Files[i]
		if r.Tree != nil {
			project.SetSource(r.Node, r.FileID)
			project.SetAst(r.Node, r.Tree)
		}
		for _, d := range r.Diags {
			run.Emit(d)
		}
	}
	timer.Stop(mergeIdx, "")

	return res, nil
}

// parseOne lexes and parses a single file inside a worker, consulting
// the disk cache when enabled.
func parseOne(sm *source.SourceMap, f dirFile, fileID source.FileID, loadErr error, opts Options) FileResult {
	wctx := diag.NewContext(opts.Diag)
	collect := diag.NewCollectEmitter()
	wctx.AddEmitter(collect)

	if loadErr != nil {
		wctx.Build(diag.LevelError, "failed to load file: "+loadErr.Error(), source.Span{}).
			WithCode(diag.IOLoadFileError).
			Emit()
		return FileResult{Path: f.path, Node: f.node, Diags: collect.Diags()}
	}

	file := sm.GetFile(fileID)

	var key cacheKey
	if opts.Cache != nil {
		key = contentKey(file.Content)
		var payload parsePayload
		if ok, _ := opts.Cache.get(key, &payload); ok {
			if tree, diags, err := payload.restore(file.StartPos); err == nil {
				for _, d := range diags {
					wctx.Emit(d)
				}
				collect.Sort()
				return FileResult{
					Path:       f.path,
					Node:       f.node,
					FileID:     fileID,
					Tree:       tree,
					Diags:      collect.Diags(),
					TokenCount: payload.TokenCount,
					Cached:     true,
				}
			}
		}
	}

	pr := ParseFile(sm, f.path, file.Content, wctx)
	collect.Sort()
	if opts.Cache != nil {
		// Ошибка записи не мешает разбору, кэш просто не пополняется
		_ = opts.Cache.put(key, newParsePayload(pr.Tree, collect.Diags(), pr.TokenCount, file.StartPos))
	}
	return FileResult{
		Path:       f.path,
		Node:       f.node,
		FileID:     pr.FileID,
		Tree:       pr.Tree,
		Diags:      collect.Diags(),
		TokenCount: pr.TokenCount,
	}
}
