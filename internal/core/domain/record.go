package domain

import (
	"regexp"

	"go.trai.ch/zerr"
)

// RecordFilter selects test records by their full name.
// The include pattern narrows the selection, the exclude pattern removes from
// it. Both are optional; the zero filter matches every record.
type RecordFilter struct {
	include *regexp.Regexp
	exclude *regexp.Regexp
}

// NewRecordFilter compiles a filter from the given regular expressions.
// Empty strings mean "no constraint".
func NewRecordFilter(include, exclude string) (RecordFilter, error) {
	var f RecordFilter
	var err error

	if include != "" {
		f.include, err = regexp.Compile(include)
		if err != nil {
			return RecordFilter{}, zerr.With(zerr.Wrap(err, "invalid include pattern"), "pattern", include)
		}
	}
	if exclude != "" {
		f.exclude, err = regexp.Compile(exclude)
		if err != nil {
			return RecordFilter{}, zerr.With(zerr.Wrap(err, "invalid exclude pattern"), "pattern", exclude)
		}
	}
	return f, nil
}

// Match reports whether a record with the given full name passes the filter.
func (f RecordFilter) Match(name string) bool {
	if f.include != nil && !f.include.MatchString(name) {
		return false
	}
	if f.exclude != nil && f.exclude.MatchString(name) {
		return false
	}
	return true
}
