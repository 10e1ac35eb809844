package search

import "github.com/pacsight/studyfind/internal/domain/study"

// paginate truncates the reconciled, sorted collection to one page. Fan-out
// can return up to len(specs)*limit raw records for the same page window, so
// the final page-size contract is enforced here. Every decomposed query
// carries the same offset; a record whose merged rank places it on this page
// may still be missing when it fell outside its own query's window. That
// approximation is inherent to the fan-out and is not corrected client-side.
func paginate(records []study.Study, size int) []study.Study {
	if len(records) <= size {
		return records
	}
	return records[:size]
}
