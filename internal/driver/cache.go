package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"scribe/internal/printer"
	"scribe/internal/srcmap"
)

// Cache schema version - increment when the payload format changes.
const cacheSchemaVersion uint16 = 1

// Key addresses one cached emission: a SHA-256 digest over the file
// content and the option fingerprint.
type Key [sha256.Size]byte

// EmitKey derives the cache key for content emitted under opts. Any option
// that changes the output text participates in the digest.
func EmitKey(content []byte, opts printer.Options) Key {
	h := sha256.New()
	h.Write(content)
	h.Write([]byte(opts.NewLine))

	var fp [8]byte
	binary.LittleEndian.PutUint32(fp[:4], uint32(opts.IndentWidth))
	if opts.UseTabs {
		fp[4] = 1
	}
	if opts.RemoveComments {
		fp[5] = 1
	}
	if opts.IsolatedModules {
		fp[6] = 1
	}
	h.Write(fp[:])

	var key Key
	h.Sum(key[:0])
	return key
}

func (k Key) IsZero() bool {
	var z Key
	return k == z
}

// cachePayload is the on-disk form of one emitted file.
type cachePayload struct {
	Schema   uint16
	Text     string
	Mappings []srcmap.Mapping
}

// Cache stores emitted output keyed by content digest on disk.
// Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// OpenCache initializes and returns a disk cache at the standard location.
func OpenCache(app string) (*Cache, error) {
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
	return &Cache{dir: dir}, nil
}

// OpenCacheAt initializes a disk cache rooted at dir.
func OpenCacheAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Key) string {
	hexKey := hex.EncodeToString(key[:])
	// A subdirectory keeps the cache root readable and easy to clear.
	return filepath.Join(c.dir, "emit", hexKey+".mp")
}

// Put serializes and writes one emission to the cache. The write goes
// through a temp file and an atomic rename, so readers never observe a
// partial payload.
func (c *Cache) Put(key Key, text string, mappings []srcmap.Mapping) error {
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

	payload := cachePayload{
		Schema:   cacheSchemaVersion,
		Text:     text,
		Mappings: mappings,
	}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return fmt.Errorf("cache put: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads one emission from the cache. A schema mismatch counts as a
// miss, not an error, so stale entries age out silently.
func (c *Cache) Get(key Key) (string, []srcmap.Mapping, bool, error) {
	if c == nil {
		return "", nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, false, nil
		}
		return "", nil, false, err
	}
	defer func() { _ = f.Close() }()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return "", nil, false, fmt.Errorf("cache get: %w", err)
	}
	if payload.Schema != cacheSchemaVersion {
		return "", nil, false, nil
	}
	return payload.Text, payload.Mappings, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *Cache) DropAll() error {
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
