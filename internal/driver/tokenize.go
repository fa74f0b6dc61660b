// Package driver runs the front-end pipeline: load, lex, parse, and
// for directories the parallel fan-out with deterministic merging.
package driver

import (
	"fmt"

	"beleg/internal/lexer"
	"beleg/internal/observ"
	"beleg/internal/source"
	"beleg/internal/token"
)

// TokenizeResult holds one file's token stream. Spans are local to the
// file; the SourceMap resolves them to lines and columns.
type TokenizeResult struct {
	SourceMap *source.SourceMap
	FileID    source.FileID
	Tokens    []token.Token
	Timer     *observ.Timer
}

// Tokenize scans in-memory content registered under name.
func Tokenize(name string, content []byte) *TokenizeResult {
	sm := source.NewSourceMap()
	fileID := sm.AddFile(name, content)
	return tokenize(sm, fileID)
}

// TokenizeFile loads path from disk and scans it.
func TokenizeFile(path string) (*TokenizeResult, error) {
	sm := source.NewSourceMap()
	timer := observ.NewTimer()

	load := timer.Start("load")
	fileID, err := sm.LoadFile(path)
	if err != nil {
		return nil, err
	}
	timer.Stop(load, "")

	res := tokenize(sm, fileID)
	for _, p := range res.Timer.Phases() {
		timer.Add(p)
	}
	res.Timer = timer
	return res, nil
}

func tokenize(sm *source.SourceMap, fileID source.FileID) *TokenizeResult {
	timer := observ.NewTimer()
	file := sm.GetFile(fileID)

	lex := timer.Start("lex")
	tokens := lexer.Tokenize(file.Content)
	timer.Stop(lex, fmt.Sprintf("%d tokens", len(tokens)))

	return &TokenizeResult{
		SourceMap: sm,
		FileID:    fileID,
		Tokens:    tokens,
		Timer:     timer,
	}
}
