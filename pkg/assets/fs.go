// Package assets provides small, ready-made Asset.Ready predicates and
// Basic action helpers for the common case of a task whose state lives on
// disk or in a subprocess, so workflow authors rarely need to reach for
// os/exec or os themselves.
package assets

import (
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// FileExists returns a Ready predicate reporting whether path exists. It
// is side-effect free and safe to call repeatedly, per the Asset.Ready
// contract.
func FileExists(path string) func() bool {
	return func() bool {
		_, err := os.Stat(path)
		return err == nil
	}
}

// ChecksumFile returns a Ready predicate that reports true only once
// path's content hash matches want, letting a task's readiness track a
// specific content version rather than mere existence.
func ChecksumFile(path string, want uint64) func() bool {
	return func() bool {
		got, err := checksum(path)
		return err == nil && got == want
	}
}

// Checksum computes the xxhash of path's content, for producing a `want`
// value ahead of time (e.g. embedded in a task's own declaration).
func Checksum(path string) (uint64, error) {
	return checksum(path)
}

func checksum(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "open file"), "path", path)
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "hash file"), "path", path)
	}
	return h.Sum64(), nil
}
