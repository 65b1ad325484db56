// Package planstore is the content-addressed cache for parsed IR and
// emission plans. Keys are a sha256 digest of the source file's bytes
// combined with a digest of the generation flags that influenced the
// plan, so a flag change invalidates the cache without touching the file
// on disk.
package planstore

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"edlgen/internal/emitplan"
	"edlgen/internal/ir"
)

// Digest is a sha256 content digest.
type Digest [32]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// ComputeDigest hashes content followed by every flag part in order,
// mirroring combineDigest's H(content || dep1 || dep2 ...) shape.
func ComputeDigest(content []byte, flagParts ...string) Digest {
	h := sha256.New()
	h.Write(content)
	for _, part := range flagParts {
		h.Write([]byte{0}) // separator, so ("ab","c") != ("a","bc")
		h.Write([]byte(part))
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Store is a directory of msgpack-encoded {ir.Edl, emitplan.ModulePlan}
// pairs, one per digest.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. The directory is created lazily on
// first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(digest Digest, suffix string) string {
	return filepath.Join(s.dir, digest.String()+suffix)
}

// LoadEdl returns the cached IR for digest, if present.
func (s *Store) LoadEdl(digest Digest) (*ir.Edl, bool, error) {
	var edl ir.Edl
	ok, err := s.load(s.path(digest, ".edl.msgpack"), &edl)
	if !ok || err != nil {
		return nil, ok, err
	}
	return &edl, true, nil
}

// SaveEdl writes edl's cache entry for digest.
func (s *Store) SaveEdl(digest Digest, edl *ir.Edl) error {
	return s.save(s.path(digest, ".edl.msgpack"), edl)
}

// LoadPlan returns the cached emission plan for digest, if present.
func (s *Store) LoadPlan(digest Digest) (*emitplan.ModulePlan, bool, error) {
	var plan emitplan.ModulePlan
	ok, err := s.load(s.path(digest, ".plan.msgpack"), &plan)
	if !ok || err != nil {
		return nil, ok, err
	}
	return &plan, true, nil
}

// SavePlan writes plan's cache entry for digest.
func (s *Store) SavePlan(digest Digest, plan *emitplan.ModulePlan) error {
	return s.save(s.path(digest, ".plan.msgpack"), plan)
}

func (s *Store) load(path string, dst any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := msgpack.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) save(path string, src any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := msgpack.Marshal(src)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
