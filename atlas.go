// Package atlas provides an in-memory analytics engine over an immutable
// collection of country records. The collection is loaded once (see the
// repository package) and then queried through a catalogue of pure
// functions: filtering, grouping, partitioning, ranking, multi-key sorting,
// numeric summaries, and text analysis.
//
// Every query follows the same contract: a nil collection is rejected with
// an invalid-argument error, an empty collection is valid and yields the
// identity result (empty slice, zero count, absent optional), and the input
// is never mutated (queries that filter or sort always return a new slice).
package atlas

import (
	"github.com/paveg/atlas/internal/errors"
)

// requireCollection rejects a nil collection. Absent input is an argument
// error; an empty collection is not.
func requireCollection(op string, countries []Country) error {
	if countries == nil {
		return errors.NewNilCollectionError(op)
	}
	return nil
}

// requireCount rejects a negative n for top-N queries.
func requireCount(op string, n int) error {
	if n < 0 {
		return errors.NewNegativeCountError(op, n)
	}
	return nil
}
