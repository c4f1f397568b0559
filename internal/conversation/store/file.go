package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"content-copilot/internal/model"
	pkgLog "content-copilot/pkg/log"
)

// File is a Store persisted as one JSON file per named collection
// (post-conversations, call-conversations). The in-memory map is
// authoritative for the running process; the file is a best-effort mirror,
// so a failed write degrades durability but never the current dialog.
type File struct {
	mu         sync.Mutex
	l          pkgLog.Logger
	cfg        Config
	collection string
	path       string
	sessions   map[string]model.ConversationSession
}

// NewFile creates a file-backed store for the given collection under dataDir.
// Existing persisted sessions are loaded eagerly; a missing or malformed
// file is treated as an empty collection.
func NewFile(l pkgLog.Logger, dataDir, collection string, cfg Config) *File {
	f := &File{
		l:          l,
		cfg:        cfg.withDefaults(),
		collection: collection,
		path:       filepath.Join(dataDir, collection+".json"),
		sessions:   make(map[string]model.ConversationSession),
	}

	ctx := context.Background()
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		f.l.Warnf(ctx, "store %s: cannot create data dir, running memory-only: %v", collection, err)
	}
	f.load(ctx)
	return f
}

func (f *File) Get(subjectID string) (model.ConversationSession, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[subjectID]
	if !ok {
		return model.ConversationSession{}, false
	}
	return s.Clone(), true
}

func (f *File) Upsert(session model.ConversationSession) model.ConversationSession {
	f.mu.Lock()
	defer f.mu.Unlock()

	session.LastUpdatedAt = time.Now()
	f.sessions[session.SubjectID] = session.Clone()
	evictOldest(f.sessions, f.cfg.MaxItems)
	f.persist()
	return session
}

func (f *File) Delete(subjectID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.sessions[subjectID]; !ok {
		return
	}
	delete(f.sessions, subjectID)
	f.persist()
}

func (f *File) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sessions = make(map[string]model.ConversationSession)
	f.persist()
}

func (f *File) List() []model.ConversationSession {
	f.mu.Lock()
	defer f.mu.Unlock()

	ordered := byOldestFirst(f.sessions)
	out := make([]model.ConversationSession, 0, len(ordered))
	for i := len(ordered) - 1; i >= 0; i-- {
		out = append(out, ordered[i].Clone())
	}
	return out
}

// load reads the collection file into memory. Reads never fail the caller:
// anything unreadable is an empty collection.
func (f *File) load(ctx context.Context) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			f.l.Warnf(ctx, "store %s: cannot read %s, starting empty: %v", f.collection, f.path, err)
		}
		return
	}

	var records []model.ConversationSession
	if err := json.Unmarshal(raw, &records); err != nil {
		f.l.Warnf(ctx, "store %s: malformed persisted data, starting empty: %v", f.collection, err)
		return
	}

	for _, s := range records {
		if s.SubjectID == "" {
			continue
		}
		f.sessions[s.SubjectID] = s
	}
	evictOldest(f.sessions, f.cfg.MaxItems)
}

// persist mirrors the in-memory set to disk. On a write failure the set is
// trimmed to the most-recent TrimTo sessions and the write retried once; a
// second failure is logged and swallowed. Callers hold f.mu.
func (f *File) persist() {
	ctx := context.Background()

	if err := f.write(); err != nil {
		f.l.Warnf(ctx, "store %s: write failed, trimming to %d and retrying: %v", f.collection, f.cfg.TrimTo, err)
		trimToNewest(f.sessions, f.cfg.TrimTo)
		if err := f.write(); err != nil {
			f.l.Errorf(ctx, "store %s: retry write failed, keeping in-memory copy only: %v", f.collection, err)
		}
	}
}

func (f *File) write() error {
	ordered := byOldestFirst(f.sessions)
	records := make([]model.ConversationSession, 0, len(ordered))
	for i := len(ordered) - 1; i >= 0; i-- {
		records = append(records, ordered[i])
	}

	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
