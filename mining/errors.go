package mining

import "github.com/grailbio/base/errors"

// Parameter validation errors, reported before any mining work begins.

// errInvalidMinSupport reports minsup < 1.
func errInvalidMinSupport(minsup int) error {
	return errors.E(errors.Invalid, "minsup must be >= 1, got", minsup)
}

// errInvalidMaxElts reports maxElts < 1 for a maxElts-constrained run.
func errInvalidMaxElts(maxElts int) error {
	return errors.E(errors.Invalid, "maxElts must be >= 1, got", maxElts)
}

// errSink wraps an error returned by a DiscoverySink so callers can
// recognize mining calls aborted by sink failure rather than an internal
// fault.
func errSink(err error) error {
	return errors.E(err, "discovery sink")
}
