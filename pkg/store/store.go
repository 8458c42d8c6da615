// Package store serves named brick documents from a file system.
//
// Every *.json, *.yaml and *.yml file below the root is a document; its name
// is the slash-separated path without the extension ("cards/header" for
// cards/header.yaml). Decoded bricks are kept in a bounded LRU cache.
package store

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/wangshengjia/leego/pkg/brick"
	"github.com/wangshengjia/leego/pkg/codec"
	"github.com/wangshengjia/leego/pkg/config"
	"github.com/wangshengjia/leego/pkg/errors"
)

// DefaultCacheSize is the number of decoded bricks kept by default.
const DefaultCacheSize = 64

var extensions = map[string]codec.Format{
	".json": codec.FormatJSON,
	".yaml": codec.FormatYAML,
	".yml":  codec.FormatYAML,
}

type entry struct {
	path   string
	format codec.Format
}

// Store loads and caches brick documents.
type Store struct {
	fsys       fs.FS
	strict     bool
	minVersion string
	cacheSize  int
	logger     *slog.Logger
	decoder    *codec.Decoder

	mu    sync.RWMutex
	index map[string]entry
	cache *lru.Cache[string, brick.Brick]
}

// Option configures a Store.
type Option func(*Store)

// WithStrict validates every document against the schema before decoding.
func WithStrict(strict bool) Option { return func(s *Store) { s.strict = strict } }

// WithMinVersion rejects documents older than v.
func WithMinVersion(v string) Option { return func(s *Store) { s.minVersion = v } }

// WithCacheSize bounds the number of cached bricks.
func WithCacheSize(n int) Option { return func(s *Store) { s.cacheSize = n } }

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(s *Store) { s.logger = l } }

// New indexes the documents of fsys.
func New(fsys fs.FS, opts ...Option) (*Store, error) {
	s := &Store{fsys: fsys, cacheSize: DefaultCacheSize, minVersion: config.DefaultMinVersion}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default().With("component", "store")
	}
	s.decoder = codec.NewDecoder(codec.WithLogger(s.logger))

	cache, err := lru.New[string, brick.Brick](s.cacheSize)
	if err != nil {
		return nil, &errors.LeeGoError{Op: "store.New", Kind: errors.KindConfig, Err: err}
	}
	s.cache = cache

	if err := s.Rescan(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewFromConfig returns a store over fsys set up from a resolved
// configuration.
func NewFromConfig(cfg *config.Resolved, fsys fs.FS) (*Store, error) {
	return New(fsys,
		WithStrict(cfg.StoreStrict),
		WithMinVersion(cfg.MinVersion),
		WithLogger(cfg.Logger().With("component", "store")),
	)
}

// Rescan rebuilds the index from the file system and empties the cache.
// Two files that map to the same name are an error. A leego.yaml at the
// root is configuration, not a document.
func (s *Store) Rescan() error {
	index := make(map[string]entry)
	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || p == config.FileName {
			return nil
		}
		ext := path.Ext(p)
		format, ok := extensions[ext]
		if !ok {
			return nil
		}
		name := strings.TrimSuffix(p, ext)
		if prev, dup := index[name]; dup {
			return fmt.Errorf("document %q is defined by both %s and %s", name, prev.path, p)
		}
		index[name] = entry{path: p, format: format}
		return nil
	})
	if err != nil {
		return &errors.LeeGoError{Op: "store.Rescan", Kind: errors.KindConfig, Err: err}
	}

	s.mu.Lock()
	s.index = index
	s.mu.Unlock()
	s.cache.Purge()
	s.logger.Info("indexed brick documents", "count", len(index), "strict", s.strict)
	return nil
}

// Names returns the document names in lexical order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.index))
	for name := range s.index {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Get returns the brick of the named document. An unknown name returns
// false and no error.
func (s *Store) Get(name string) (brick.Brick, bool, error) {
	if b, ok := s.cache.Get(name); ok {
		return b, true, nil
	}
	doc, ok, err := s.Document(name)
	if !ok || err != nil {
		return brick.Brick{}, ok, err
	}
	s.cache.Add(name, doc.Brick)
	return doc.Brick, true, nil
}

// Document reads and decodes the named document, bypassing the cache.
func (s *Store) Document(name string) (codec.Document, bool, error) {
	s.mu.RLock()
	e, ok := s.index[name]
	s.mu.RUnlock()
	if !ok {
		return codec.Document{}, false, nil
	}

	data, err := fs.ReadFile(s.fsys, e.path)
	if err != nil {
		return codec.Document{}, true, &errors.LeeGoError{Op: "store.Document", Kind: errors.KindDecode, Brick: name, Err: err}
	}
	if s.strict {
		if err := codec.Validate(data, e.format); err != nil {
			return codec.Document{}, true, fmt.Errorf("%s: %w", e.path, err)
		}
	}
	doc, err := s.decoder.DecodeDocument(data, e.format, s.minVersion)
	if err != nil {
		return codec.Document{}, true, fmt.Errorf("%s: %w", e.path, err)
	}
	s.logger.Info("loaded brick document", "name", name, "path", e.path, "version", doc.Version)
	return doc, true, nil
}

// MustGet is Get for documents the program ships with: an unknown name or
// a document that does not decode is a contract violation.
func (s *Store) MustGet(name string) brick.Brick {
	b, ok, err := s.Get(name)
	if err != nil {
		errors.Violate("store.MustGet", "document %q: %v", name, err)
	}
	if !ok {
		errors.Violate("store.MustGet", "no document named %q", name)
	}
	return b
}

// Invalidate drops the cached brick of name.
func (s *Store) Invalidate(name string) { s.cache.Remove(name) }

// Cached returns the number of cached bricks.
func (s *Store) Cached() int { return s.cache.Len() }
