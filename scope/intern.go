package scope

import "sync"

// interner hands out stable ids for path text. Id 0 is reserved for the
// empty path so the zero Path is Root. Entries are never removed: the set
// of distinct paths in a program is small and static, and keeping them
// makes every lookup a plain slice index.
type interner struct {
	mu    sync.RWMutex
	index map[string]uint32
	texts []string
}

var paths = &interner{
	index: map[string]uint32{"": 0},
	texts: []string{""},
}

func intern(text string) uint32 {
	paths.mu.RLock()
	id, ok := paths.index[text]
	paths.mu.RUnlock()
	if ok {
		return id
	}

	paths.mu.Lock()
	defer paths.mu.Unlock()

	// Re-check after acquiring write lock
	if id, ok := paths.index[text]; ok {
		return id
	}
	id = uint32(len(paths.texts))
	paths.texts = append(paths.texts, text)
	paths.index[text] = id
	return id
}

func lookup(id uint32) string {
	paths.mu.RLock()
	defer paths.mu.RUnlock()
	return paths.texts[id]
}
