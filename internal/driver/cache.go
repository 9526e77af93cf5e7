package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"stencil/internal/source"
	"stencil/internal/template"
	"stencil/internal/token"
)

// Current schema version - increment when cachePayload format changes
const cacheSchemaVersion uint16 = 1

// DiskCache хранит таблицы спанов по хешу содержимого шаблона на диске.
// Спаны — это смещения, не байты: при чтении таблица заново привязывается
// к свежезагруженному буферу. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// cachedSpan stores one span as offsets into the hashed buffer.
type cachedSpan struct {
	Kind      uint8
	Start     uint32
	End       uint32
	BodyStart uint32
	BodyEnd   uint32
	Line      uint32
}

// cachePayload stores a full span table for one buffer hash.
type cachePayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16
	Hash   [32]byte
	Spans  []cachedSpan
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
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

// OpenDiskCacheAt returns a disk cache rooted at an explicit directory,
// used by tests and the --cache-dir flag.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки — подкаталог "spans".
	return filepath.Join(c.dir, "spans", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key [32]byte, payload *cachePayload) error {
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
	defer func() {
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key [32]byte, out *cachePayload) (bool, error) {
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
	defer func() {
		_ = f.Close()
	}()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// lookup tries to rebuild a parsed template from the cached span table.
// Any mismatch (schema, hash, coverage) is treated as a miss.
func (c *DiskCache) lookup(file *source.File) (*template.ParsedTemplate, bool) {
	if c == nil {
		return nil, false
	}
	var payload cachePayload
	ok, err := c.Get(file.Hash, &payload)
	if err != nil || !ok {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion || payload.Hash != file.Hash {
		return nil, false
	}

	spans := make([]token.Token, len(payload.Spans))
	for i, cs := range payload.Spans {
		// Таблица может прийти битой: допускаем только виды, которые выдаёт
		// сканер. EOF/Invalid в записи — промах, не тихий пустой спан.
		kind := token.Kind(cs.Kind)
		if kind != token.Plain && !kind.IsTag() {
			return nil, false
		}
		if cs.BodyEnd < cs.BodyStart || int(cs.BodyEnd) > len(file.Content) {
			return nil, false
		}
		spans[i] = token.Token{
			Kind: kind,
			Span: source.Span{Start: cs.Start, End: cs.End},
			Line: cs.Line,
		}
		if spans[i].Kind.IsTag() {
			spans[i].Body = file.Content[cs.BodyStart:cs.BodyEnd]
		}
	}

	tmpl, err := template.FromSpans(file, spans)
	if err != nil {
		return nil, false
	}
	return tmpl, true
}

// store writes the span table of a successfully parsed template.
// Cache write failures are deliberately swallowed: кеш — оптимизация.
func (c *DiskCache) store(file *source.File, tmpl *template.ParsedTemplate) {
	if c == nil || tmpl == nil {
		return
	}
	payload := &cachePayload{
		Schema: cacheSchemaVersion,
		Hash:   file.Hash,
		Spans:  make([]cachedSpan, tmpl.Len()),
	}
	for i, sp := range tmpl.Spans() {
		cs := cachedSpan{
			Kind:  uint8(sp.Kind),
			Start: sp.Span.Start,
			End:   sp.Span.End,
			Line:  sp.Line,
		}
		if sp.Kind.IsTag() {
			off := bodyOffset(sp)
			cs.BodyStart = off
			cs.BodyEnd = off + uint32(len(sp.Body))
		}
		payload.Spans[i] = cs
	}
	_ = c.Put(file.Hash, payload)
}

// bodyOffset recovers the buffer offset of a tag's trimmed body by
// replaying the trim over the raw bytes between the delimiters.
func bodyOffset(sp token.Token) uint32 {
	opener, closer := sp.Kind.Opener(), sp.Kind.Closer()
	inner := sp.Raw[len(opener) : len(sp.Raw)-len(closer)]
	lo := 0
	for lo < len(inner) && token.IsASCIISpace(inner[lo]) {
		lo++
	}
	return sp.Span.Start + uint32(len(opener)+lo)
}
