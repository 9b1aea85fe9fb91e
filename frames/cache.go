package frames

import (
	"image"
	"time"

	"github.com/gogpu/gg/cache"

	"github.com/gogpu/orb"
)

// Cache memoizes frames of one visual by frame index within its loop.
// Because the timing model is periodic, a render loop that runs for minutes
// keeps hitting the same few hundred frames.
type Cache struct {
	visual  *orb.Visual
	fps     int
	period  time.Duration
	entries *cache.ShardedCache[int, *image.RGBA]
}

// NewCache creates a frame cache for v sampled at fps. capacity is the
// per-shard entry limit; zero uses the cache package default.
func NewCache(v *orb.Visual, fps, capacity int) *Cache {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Cache{
		visual:  v,
		fps:     fps,
		period:  v.Period(),
		entries: cache.NewSharded[int, *image.RGBA](capacity, cache.IntHasher),
	}
}

// Index returns the cache slot for elapsed time t.
func (c *Cache) Index(t time.Duration) int {
	if c.period <= 0 {
		return 0
	}
	t %= c.period
	if t < 0 {
		t += c.period
	}
	return int(t * time.Duration(c.fps) / time.Second)
}

// At returns the frame shown at elapsed time t, rendering it on first use.
// Frames are shared between callers and must not be modified.
func (c *Cache) At(t time.Duration) (*image.RGBA, error) {
	idx := c.Index(t)
	if img, ok := c.entries.Get(idx); ok {
		return img, nil
	}
	at := time.Duration(idx) * time.Second / time.Duration(c.fps)
	img, err := c.visual.Frame(at)
	if err != nil {
		return nil, err
	}
	c.entries.Set(idx, img)
	return img, nil
}

// Len returns the number of cached frames.
func (c *Cache) Len() int {
	return c.entries.Len()
}
