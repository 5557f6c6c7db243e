package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"qmlcheck/internal/diag"
	"qmlcheck/internal/project"
	"qmlcheck/internal/source"
)

// Bump when the payload format changes; stale entries then simply miss.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores per-file check results keyed by a digest of the file
// content, the snapshot, and the options. Thread-safe.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// cachedDiagnostic is one diagnostic with byte offsets instead of a
// FileID; the ID is rebound on load.
type cachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Start    uint32
	End      uint32
	Message  string
}

// diskPayload is the serialized form of one file's check outcome. The
// content hash is part of the key, not the payload.
type diskPayload struct {
	Schema      uint16
	Diagnostics []cachedDiagnostic
}

// OpenDiskCache initializes the cache at the standard location
// ($XDG_CACHE_HOME or ~/.cache).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes the cache at an explicit directory. Used
// by tests and by the --cache-dir flag.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "checks", hexKey+".mp")
}

// Put serializes and writes a payload. The write is atomic: temp file
// then rename.
func (c *DiskCache) Put(key project.Digest, payload *diskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload. A missing entry is a miss, not
// an error.
func (c *DiskCache) Get(key project.Digest, out *diskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey digests everything a check outcome depends on: the file's
// own content, the whole snapshot (cross-document component resolution
// makes every file's result depend on every other), and the options.
func cacheKey(contentHash [32]byte, snapshotDigest project.Digest, opts Options) project.Digest {
	h := sha256.New()
	h.Write([]byte{
		byte(diskCacheSchemaVersion >> 8), byte(diskCacheSchemaVersion),
		boolByte(opts.IgnoreUnknownTypes),
		boolByte(opts.CheckScriptBindings),
		byte(opts.maxDiagnostics() >> 8), byte(opts.maxDiagnostics()),
	})
	h.Write(contentHash[:])
	h.Write(snapshotDigest[:])
	var key project.Digest
	h.Sum(key[:0])
	return key
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// snapshotDigestOf combines the content hashes of every successfully
// loaded file in the run.
func snapshotDigestOf(fileSet *source.FileSet, results []CheckResult) project.Digest {
	digests := make([]project.Digest, 0, len(results))
	for i := range results {
		if results[i].Doc == nil {
			continue
		}
		digests = append(digests, project.Digest(fileSet.Get(results[i].FileID).Hash))
	}
	return project.CombineDigests(digests)
}

// loadCachedResult replaces the result's bag with cached diagnostics on
// a hit. Parse diagnostics are part of the cached set, so the fresh bag
// is discarded rather than merged.
func loadCachedResult(cache *DiskCache, key project.Digest, res *CheckResult) (bool, error) {
	if cache == nil {
		return false, nil
	}
	var payload diskPayload
	hit, err := cache.Get(key, &payload)
	if err != nil || !hit {
		return false, err
	}

	bag := diag.NewBag(max(len(payload.Diagnostics), 1))
	for _, cd := range payload.Diagnostics {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary: source.Span{
				File:  res.FileID,
				Start: cd.Start,
				End:   cd.End,
			},
		})
	}
	res.Bag = bag
	res.FromCache = true
	return true, nil
}

// storeCachedResult writes the result's diagnostics back to the cache.
// Failures are ignored; the cache is an optimization.
func storeCachedResult(cache *DiskCache, key project.Digest, res *CheckResult) {
	if cache == nil {
		return
	}
	payload := diskPayload{Schema: diskCacheSchemaVersion}
	for _, d := range res.Bag.Items() {
		payload.Diagnostics = append(payload.Diagnostics, cachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		})
	}
	_ = cache.Put(key, &payload)
}
