// Package pagination turns start/end query parameters into a half-open
// index range over a list snapshot.
//
// Normalization happens in two passes. Extract sanitizes at parse time, so an
// inverted range is straightened out. Saturate runs later, once the caller
// knows the length of the list, and clamps the end to that length.
package pagination

import (
	"strconv"

	pkgerrors "qahub/pkg/errors"
)

const (
	// StartParam is the query key of the first index to return.
	StartParam = "start"
	// EndParam is the query key of the index after the last one to return.
	EndParam = "end"
)

// Pagination is the range [Start, End).
type Pagination struct {
	Start uint
	End   uint
}

// Extract reads start and end from params. Both must be present and parse
// as non-negative integers, optionally prefixed with '+'.
//
//	p, err := pagination.Extract(map[string]string{"start": "1", "end": "10"})
//	// p == Pagination{Start: 1, End: 10}
func Extract(params map[string]string) (Pagination, error) {
	rawStart, hasStart := params[StartParam]
	rawEnd, hasEnd := params[EndParam]
	if !hasStart || !hasEnd {
		return Pagination{}, pkgerrors.New(pkgerrors.MissingParameters)
	}

	start, err := parseIndex(StartParam, rawStart)
	if err != nil {
		return Pagination{}, err
	}
	end, err := parseIndex(EndParam, rawEnd)
	if err != nil {
		return Pagination{}, err
	}

	return Pagination{Start: start, End: end}.Sanitize(), nil
}

// parseIndex accepts one optional leading '+', as unsigned integer text
// commonly allows.
func parseIndex(name, raw string) (uint, error) {
	digits := raw
	if len(digits) > 1 && digits[0] == '+' {
		digits = digits[1:]
	}
	n, err := strconv.ParseUint(digits, 10, strconv.IntSize)
	if err != nil {
		return 0, pkgerrors.Wrapf(err, pkgerrors.ParseError, "%s: %v", pkgerrors.ParseError.Message(), err).
			WithDetail("param", name)
	}
	return uint(n), nil
}

// Sanitize swaps Start and End when Start is greater, so Start <= End holds.
func (p Pagination) Sanitize() Pagination {
	if p.Start > p.End {
		p.Start, p.End = p.End, p.Start
	}
	return p
}

// Saturate clamps End to maxLen. Start is never touched, so Start may still
// exceed End afterwards when Start itself is past maxLen.
func (p Pagination) Saturate(maxLen uint) Pagination {
	if p.End > maxLen {
		p.End = maxLen
	}
	return p
}

// Window returns items[p.Start:p.End]. A range outside
// 0 <= Start <= End <= len(items) yields PaginationOutOfRange.
func Window[T any](items []T, p Pagination) ([]T, error) {
	n := uint(len(items))
	if p.Start > p.End || p.End > n {
		return nil, pkgerrors.Newf(pkgerrors.PaginationOutOfRange, "%s: start %d end %d length %d",
			pkgerrors.PaginationOutOfRange.Message(), p.Start, p.End, n).
			WithDetail("start", p.Start).
			WithDetail("end", p.End).
			WithDetail("length", n)
	}
	return items[p.Start:p.End], nil
}
