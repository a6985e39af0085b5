package codec

import "sync"

// Registry is a concurrency-safe lookup table of codecs, keyed by both
// name and UID so callers can address a format either way (a human
// typing "PI" on a command line, or pi.Codec registering itself under
// its "pi-image/1" UID at init time).
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec // key can be either name or UID
}

var defaultRegistry = &Registry{
	codecs: make(map[string]Codec),
}

// Register adds codec to the process-wide default registry, under both
// its name and UID. Format packages call this from an init() function.
func Register(codec Codec) {
	defaultRegistry.Register(codec)
}

// Get looks up a codec in the default registry by name or UID.
func Get(nameOrUID string) (Codec, error) {
	return defaultRegistry.Get(nameOrUID)
}

// List returns every codec registered in the default registry.
func List() []Codec {
	return defaultRegistry.List()
}

// Register adds codec under both its name and UID.
func (r *Registry) Register(codec Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[codec.Name()] = codec
	r.codecs[codec.UID()] = codec
}

// Get looks up a codec by name or UID, returning ErrCodecNotFound if
// neither key is registered.
func (r *Registry) Get(nameOrUID string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codec, ok := r.codecs[nameOrUID]
	if !ok {
		return nil, ErrCodecNotFound
	}
	return codec, nil
}

// List returns the distinct registered codecs, collapsing the
// name/UID double-keying back down to one entry per codec.
func (r *Registry) List() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[Codec]bool)
	codecs := make([]Codec, 0)

	for _, codec := range r.codecs {
		if !seen[codec] {
			seen[codec] = true
			codecs = append(codecs, codec)
		}
	}

	return codecs
}
