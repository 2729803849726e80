package recording

import "github.com/gogpu/isovt"

// ResourcePool stores the paths referenced by recording commands.
// Each Add clones the path so the recording stays immutable.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths []*isovt.Path
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths: make([]*isovt.Path, 0, 16),
	}
}

// AddPath adds a clone of path to the pool and returns its reference.
// A nil path is stored as nil.
func (p *ResourcePool) AddPath(path *isovt.Path) PathRef {
	if path != nil {
		path = path.Clone()
	}
	p.paths = append(p.paths, path)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetPath(ref PathRef) *isovt.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}
