package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gocache "github.com/patrickmn/go-cache"
)

var (
	// ErrNotFound reports a dataset file missing at its resolved path.
	ErrNotFound = errors.New("dataset file not found")
	// ErrMalformed reports a dataset file that exists but is not valid JSON.
	ErrMalformed = errors.New("dataset file malformed")
)

// Canonical dataset filenames.
const (
	FlightsFile = "flights.json"
	HotelsFile  = "hotels.json"
	PlacesFile  = "places.json"
)

// wrapperKeys are the accepted object keys wrapping a record array.
var wrapperKeys = []string{"flights", "hotels", "places", "data"}

// Loader loads JSON record collections from a base path, caching each file
// after its first successful read. The cache is keyed by filename and never
// expires; Invalidate forces a reload.
type Loader struct {
	basePath string
	cache    *gocache.Cache
}

// NewLoader returns a Loader rooted at basePath.
func NewLoader(basePath string) *Loader {
	return &Loader{
		basePath: basePath,
		cache:    gocache.New(gocache.NoExpiration, 0),
	}
}

// BasePath returns the configured dataset directory.
func (l *Loader) BasePath() string {
	return l.basePath
}

// Load returns the records of a dataset file, reading it on first access.
// Accepted shapes: a bare array of record objects, or an object with one of
// the keys flights/hotels/places/data mapping to such an array. A single bare
// object is wrapped; any other shape yields an empty collection.
func (l *Loader) Load(filename string) ([]json.RawMessage, error) {
	if hit, ok := l.cache.Get(filename); ok {
		return hit.([]json.RawMessage), nil
	}
	records, err := l.read(filename)
	if err != nil {
		return nil, err
	}
	l.cache.Set(filename, records, gocache.NoExpiration)
	return records, nil
}

// Invalidate drops one filename from the cache.
func (l *Loader) Invalidate(filename string) {
	l.cache.Delete(filename)
}

// Reset drops the whole cache.
func (l *Loader) Reset() {
	l.cache.Flush()
}

func (l *Loader) read(filename string) ([]json.RawMessage, error) {
	path := filepath.Join(l.basePath, filename)
	bs, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	return normalize(path, bs)
}

func normalize(path string, bs []byte) ([]json.RawMessage, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(bs, &list); err == nil {
		return list, nil
	}
	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(bs, &wrapped); err != nil {
		if json.Valid(bs) {
			// valid JSON but neither array nor object, treat as empty
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	for _, key := range wrapperKeys {
		raw, ok := wrapped[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("%w: %s: key %q is not an array", ErrMalformed, path, key)
		}
		return list, nil
	}
	if len(wrapped) > 0 {
		// single record object, wrap it
		return []json.RawMessage{json.RawMessage(bs)}, nil
	}
	return nil, nil
}

// Decode unmarshals raw records into typed ones, preserving order.
func Decode[T any](records []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(records))
	for i, raw := range records {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
