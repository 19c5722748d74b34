// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pointpair reads iX Matching Points Annotator output: a pair of
// companion-header lines followed by labeled per-point records holding
// fixed and moving voxel coordinates.
//
// Every record token carries a "Point_<index>-><field>=<value>" label. The
// reader parses labels structurally instead of by byte offset, so the
// zero-padding width of the point index (one to three digits) needs no
// special handling. A token whose label does not match the expected field
// fails the whole read; silently misaligned coordinates are worse than no
// coordinates.
package pointpair

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/landmark-converter/pkg/types"
)

// Record field names, in the order they appear per point. Each of the six
// numeric fields (axes 0-2, fixed then moving) may be followed by a
// "_SystemGuess" companion token, which is skipped rather than consumed.
const (
	fieldDistinct  = "Distinctiveness"
	fieldManual    = "ManuallyChosen"
	fieldSqDiff    = "SqDiffRegion"
	fieldUnsure    = "VeryUnsure"
	guessSuffix    = "_SystemGuess"
	correspSuffix  = "_Corresp"
	scanLinePrefix = "Scan_"
)

// Options control how a point-pair file is read.
type Options struct {
	// KeepAll keeps manually chosen points flagged "very unsure";
	// otherwise they are discarded.
	KeepAll bool

	// Remaps translate companion header path prefixes (e.g. Windows drive
	// letters) before the header is opened.
	Remaps []types.PathRemap
}

// Read parses the point-pair file at path, reads the fixed image's
// companion header for the affine grid, and returns the landmark set in
// physical coordinates. Point order in the result matches the order points
// appear in the file.
func Read(path string, opts Options) (*types.LandmarkSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening point pairs %s: %w", path, err)
	}
	defer f.Close()

	toks := newTokens(f)

	fixedHeaderPath, err := scanPath(toks, opts.Remaps)
	if err != nil {
		return nil, fmt.Errorf("%s: fixed image line: %w", path, err)
	}
	// The moving image's header is named but never opened: both scans are
	// assumed co-registered to the fixed image's grid.
	if _, err := scanPath(toks, opts.Remaps); err != nil {
		return nil, fmt.Errorf("%s: moving image line: %w", path, err)
	}

	var fixedVox, movingVox []float64
	for {
		rec, ok, err := readRecord(toks)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if !ok {
			break
		}
		if rec.keep(opts.KeepAll) {
			fixedVox = append(fixedVox, rec.fixed[:]...)
			movingVox = append(movingVox, rec.moving[:]...)
		}
	}
	if err := toks.scanErr(); err != nil {
		return nil, fmt.Errorf("reading point pairs %s: %w", path, err)
	}

	header, err := ReadMetaHeader(fixedHeaderPath)
	if err != nil {
		return nil, err
	}

	// Both point sets go through the fixed image's grid; see the geometry
	// package doc for the co-registration assumption.
	grid := header.Grid()
	grid.ApplyAll(fixedVox)
	grid.ApplyAll(movingVox)

	return &types.LandmarkSet{
		NumPoints: len(fixedVox) / types.NumDims,
		ImageDims: header.DimSize,
		Offset:    [3]float64{header.Offset.X, header.Offset.Y, header.Offset.Z},
		Spacing:   [3]float64{header.Spacing.X, header.Spacing.Y, header.Spacing.Z},
		Fixed:     fixedVox,
		Moving:    movingVox,
	}, nil
}

// record is one parsed point entry.
type record struct {
	index  string
	manual bool
	unsure bool
	fixed  [3]float64
	moving [3]float64
}

// keep applies the inclusion rule: automatically chosen points are always
// kept; manually chosen points are dropped only when flagged very unsure
// and keepAll is false.
func (r record) keep(keepAll bool) bool {
	if !r.manual {
		return true
	}
	return keepAll || !r.unsure
}

// readRecord parses the next point record. ok is false at a clean end of
// input.
func readRecord(toks *tokens) (rec record, ok bool, err error) {
	first, found := toks.nextData()
	if !found {
		return record{}, false, nil
	}

	lbl, err := splitLabel(first)
	if err != nil {
		return record{}, false, err
	}
	if lbl.field != fieldDistinct {
		return record{}, false, toks.mismatch(fieldDistinct, first)
	}
	rec.index = lbl.index

	manual, err := rec.expect(toks, fieldManual)
	if err != nil {
		return record{}, false, err
	}
	rec.manual = manual != "0"

	if _, err := rec.expect(toks, fieldSqDiff); err != nil {
		return record{}, false, err
	}

	// VeryUnsure always reads 0 for automatically chosen points; it is
	// only meaningful (and only required) for manual ones.
	if tok, found := toks.peekData(); found {
		if lbl, lerr := splitLabel(tok); lerr == nil && lbl.field == fieldUnsure {
			unsure, err := rec.expect(toks, fieldUnsure)
			if err != nil {
				return record{}, false, err
			}
			rec.unsure = unsure != "0"
		} else if rec.manual {
			return record{}, false, toks.mismatch(fieldUnsure, tok)
		}
	}

	for axis := 0; axis < types.NumDims; axis++ {
		name := strconv.Itoa(axis)
		if rec.fixed[axis], err = rec.expectFloat(toks, name); err != nil {
			return record{}, false, err
		}
		if rec.moving[axis], err = rec.expectFloat(toks, name+correspSuffix); err != nil {
			return record{}, false, err
		}
	}
	return rec, true, nil
}

// expect consumes the next data token, verifies its field name and point
// index, and returns the value.
func (r *record) expect(toks *tokens, field string) (string, error) {
	tok, found := toks.nextData()
	if !found {
		return "", fmt.Errorf("unexpected end of file, want field %s for point %s", field, r.index)
	}
	lbl, err := splitLabel(tok)
	if err != nil {
		return "", err
	}
	if lbl.field != field {
		return "", toks.mismatch(field, tok)
	}
	if lbl.index != r.index {
		return "", fmt.Errorf("token %d: %q belongs to point %s, want point %s",
			toks.count, tok, lbl.index, r.index)
	}
	return lbl.value, nil
}

// expectFloat is expect for the numeric coordinate fields.
func (r *record) expectFloat(toks *tokens, field string) (float64, error) {
	v, err := r.expect(toks, field)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("token %d: field %s: bad coordinate %q: %w", toks.count, field, v, err)
	}
	return f, nil
}

// label is a decomposed point token.
type label struct {
	index string // zero-padded point number, 1-3 digits
	field string
	value string
}

// splitLabel decomposes "Point_<index>-><field>=<value>".
func splitLabel(tok string) (label, error) {
	rest, ok := strings.CutPrefix(tok, "Point_")
	if !ok {
		return label{}, fmt.Errorf("token %q is not a point field", tok)
	}
	name, value, ok := strings.Cut(rest, "=")
	if !ok {
		return label{}, fmt.Errorf("token %q has no value", tok)
	}
	index, field, ok := strings.Cut(name, "->")
	if !ok {
		return label{}, fmt.Errorf("token %q has no field name", tok)
	}
	if len(index) < 1 || len(index) > 3 {
		return label{}, fmt.Errorf("token %q: point number %q out of range", tok, index)
	}
	for _, c := range index {
		if c < '0' || c > '9' {
			return label{}, fmt.Errorf("token %q: point number %q is not numeric", tok, index)
		}
	}
	return label{index: index, field: field, value: value}, nil
}

// scanPath reads one "Scan_N=<path>" line, applies the configured prefix
// remaps, and normalizes separators to forward slashes.
func scanPath(toks *tokens, remaps []types.PathRemap) (string, error) {
	tok, found := toks.next()
	if !found {
		return "", fmt.Errorf("unexpected end of file, want %sN=<path>", scanLinePrefix)
	}
	rest, ok := strings.CutPrefix(tok, scanLinePrefix)
	if !ok {
		return "", fmt.Errorf("token %q is not a scan path", tok)
	}
	_, p, ok := strings.Cut(rest, "=")
	if !ok {
		return "", fmt.Errorf("token %q has no path value", tok)
	}
	for _, rm := range remaps {
		if strings.HasPrefix(p, rm.Prefix) {
			p = rm.Replace + p[len(rm.Prefix):]
			break
		}
	}
	return strings.ReplaceAll(p, `\`, "/"), nil
}

// tokens scans whitespace-separated tokens with one token of lookahead.
type tokens struct {
	sc       *bufio.Scanner
	count    int // tokens consumed, for error positions
	buffered bool
	buf      string
}

func newTokens(f *os.File) *tokens {
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	return &tokens{sc: sc}
}

func (t *tokens) next() (string, bool) {
	if t.buffered {
		t.buffered = false
		t.count++
		return t.buf, true
	}
	if !t.sc.Scan() {
		return "", false
	}
	t.count++
	return t.sc.Text(), true
}

func (t *tokens) peek() (string, bool) {
	if !t.buffered {
		if !t.sc.Scan() {
			return "", false
		}
		t.buf = t.sc.Text()
		t.buffered = true
	}
	return t.buf, true
}

// nextData returns the next token that is not a system-guess companion.
func (t *tokens) nextData() (string, bool) {
	t.skipGuesses()
	return t.next()
}

// peekData looks ahead past any system-guess companions.
func (t *tokens) peekData() (string, bool) {
	t.skipGuesses()
	return t.peek()
}

// skipGuesses discards "_SystemGuess" companion tokens. They duplicate the
// annotator's automatic estimate next to the recorded value and carry no
// landmark data.
func (t *tokens) skipGuesses() {
	for {
		tok, found := t.peek()
		if !found {
			return
		}
		lbl, err := splitLabel(tok)
		if err != nil || !strings.HasSuffix(lbl.field, guessSuffix) {
			return
		}
		t.next()
	}
}

func (t *tokens) scanErr() error {
	return t.sc.Err()
}

// mismatch builds the hard parse error for an unexpected field label.
func (t *tokens) mismatch(want, got string) error {
	return fmt.Errorf("token %d: want field %s, got %q", t.count, want, got)
}
