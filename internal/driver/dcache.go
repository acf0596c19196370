package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"maplint/internal/diag"
	"maplint/internal/project"
	"maplint/internal/source"
)

// Bump when the payload layout changes; stale entries then read as misses.
const diskCacheSchemaVersion uint16 = 1

// DiskCache persists lint results keyed by input content hashes.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes a disk cache at the standard location
// ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt initializes a disk cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "runs", hexKey+".mp")
}

// DiskPayload is the serialized form of one lint run.
type DiskPayload struct {
	Schema uint16
	Diags  []DiagRecord
}

// DiagRecord mirrors diag.Diagnostic with plain wire-friendly fields.
type DiagRecord struct {
	Severity uint8
	Code     uint16
	Message  string
	File     uint32
	Start    uint32
	End      uint32
	Notes    []NoteRecord
	Fixes    []FixRecord
}

type NoteRecord struct {
	Message string
	File    uint32
	Start   uint32
	End     uint32
}

type FixRecord struct {
	ID            string
	Title         string
	Kind          uint8
	Applicability uint8
	IsPreferred   bool
	Edits         []EditRecord
}

type EditRecord struct {
	File    uint32
	Start   uint32
	End     uint32
	NewText string
	OldText string
}

func spanOf(file, start, end uint32) source.Span {
	return source.Span{File: source.FileID(file), Start: start, End: end}
}

func encodeDiagnostics(items []diag.Diagnostic) *DiskPayload {
	payload := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Diags:  make([]DiagRecord, 0, len(items)),
	}
	for _, d := range items {
		rec := DiagRecord{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			File:     uint32(d.Primary.File),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, n := range d.Notes {
			rec.Notes = append(rec.Notes, NoteRecord{
				Message: n.Msg,
				File:    uint32(n.Span.File),
				Start:   n.Span.Start,
				End:     n.Span.End,
			})
		}
		for _, f := range d.Fixes {
			fr := FixRecord{
				ID:            f.ID,
				Title:         f.Title,
				Kind:          uint8(f.Kind),
				Applicability: uint8(f.Applicability),
				IsPreferred:   f.IsPreferred,
			}
			for _, e := range f.Edits {
				fr.Edits = append(fr.Edits, EditRecord{
					File:    uint32(e.Span.File),
					Start:   e.Span.Start,
					End:     e.Span.End,
					NewText: e.NewText,
					OldText: e.OldText,
				})
			}
			rec.Fixes = append(rec.Fixes, fr)
		}
		payload.Diags = append(payload.Diags, rec)
	}
	return payload
}

// decode rebuilds diagnostics from the payload. Returns false on schema
// mismatch, which callers treat as a cache miss.
func (p *DiskPayload) decode() ([]diag.Diagnostic, bool) {
	if p == nil || p.Schema != diskCacheSchemaVersion {
		return nil, false
	}
	out := make([]diag.Diagnostic, 0, len(p.Diags))
	for _, rec := range p.Diags {
		d := diag.Diagnostic{
			Severity: diag.Severity(rec.Severity),
			Code:     diag.Code(rec.Code),
			Message:  rec.Message,
			Primary:  spanOf(rec.File, rec.Start, rec.End),
		}
		for _, n := range rec.Notes {
			d.Notes = append(d.Notes, diag.Note{
				Span: spanOf(n.File, n.Start, n.End),
				Msg:  n.Message,
			})
		}
		for _, f := range rec.Fixes {
			fix := diag.Fix{
				ID:            f.ID,
				Title:         f.Title,
				Kind:          diag.FixKind(f.Kind),
				Applicability: diag.FixApplicability(f.Applicability),
				IsPreferred:   f.IsPreferred,
			}
			for _, e := range f.Edits {
				fix.Edits = append(fix.Edits, diag.TextEdit{
					Span:    spanOf(e.File, e.Start, e.End),
					NewText: e.NewText,
					OldText: e.OldText,
				})
			}
			d.Fixes = append(d.Fixes, fix)
		}
		out = append(out, d)
	}
	return out, true
}

// Put serializes and writes a payload, replacing any previous entry
// atomically.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) error {
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
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, p)
}

// Get reads a payload. A missing entry is (false, nil).
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
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
	defer func() { _ = f.Close() }()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
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
