// Package snapshot converts a board to and from its on-disk state file, a
// human-diffable JSON document holding the 0/1 cell matrix plus the geometry
// needed to rebuild the grid.
package snapshot

import (
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/pkg/errors"

	"golife/internal/life"
)

// ErrMalformed marks a state file whose structure cannot rebuild a board:
// a missing field, a jagged cell matrix, or dimensions that disagree with the
// declared screen and cell sizes. Callers keep their current board on this
// error.
var ErrMalformed = stderrors.New("snapshot: malformed state file")

// Document mirrors the state file layout. Board rows are indexed by x. The
// format carries no version field; all three members are required.
type Document struct {
	Board      [][]int `json:"board"`
	CellSize   []int   `json:"cell_size"`
	ScreenSize []int   `json:"screen_size"`
}

// Encode captures the board's grid and geometry. Runtime state (run flag,
// accumulated step time) is deliberately not part of the document.
func Encode(b *life.Board) Document {
	cw, ch := b.CellSize()
	sw, sh := b.ScreenSize()
	return Document{
		Board:      b.Grid().Matrix(),
		CellSize:   []int{cw, ch},
		ScreenSize: []int{sw, sh},
	}
}

// Marshal renders the board's snapshot document as indented JSON.
func Marshal(b *life.Board) ([]byte, error) {
	data, err := json.MarshalIndent(Encode(b), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "snapshot: marshal state file")
	}
	return data, nil
}

// Decode rebuilds a board from state file bytes. The returned board always
// starts paused with a zero accumulator; period is supplied by the caller
// since it is runtime configuration, not persisted state.
func Decode(data []byte, period time.Duration) (*life.Board, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(ErrMalformed, "not valid JSON: %v", err)
	}
	return DecodeDocument(doc, period)
}

// DecodeDocument validates a parsed document and rebuilds its board.
func DecodeDocument(doc Document, period time.Duration) (*life.Board, error) {
	if len(doc.Board) == 0 {
		return nil, errors.Wrap(ErrMalformed, "missing board field")
	}
	if len(doc.CellSize) != 2 {
		return nil, errors.Wrap(ErrMalformed, "missing cell_size field")
	}
	if len(doc.ScreenSize) != 2 {
		return nil, errors.Wrap(ErrMalformed, "missing screen_size field")
	}
	cw, ch := doc.CellSize[0], doc.CellSize[1]
	sw, sh := doc.ScreenSize[0], doc.ScreenSize[1]
	if cw <= 0 || ch <= 0 || sw <= 0 || sh <= 0 {
		return nil, errors.Wrapf(ErrMalformed, "non-positive geometry %dx%d cells on %dx%d screen", cw, ch, sw, sh)
	}

	grid, err := life.FromMatrix(doc.Board)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "%v", err)
	}
	if grid.W != sw/cw || grid.H != sh/ch {
		return nil, errors.Wrapf(ErrMalformed, "board is %dx%d but screen_size/cell_size implies %dx%d",
			grid.W, grid.H, sw/cw, sh/ch)
	}

	return life.NewBoardWithGrid(grid, life.BoardConfig{
		ScreenW: sw, ScreenH: sh,
		CellW: cw, CellH: ch,
		Period: period,
	}), nil
}
