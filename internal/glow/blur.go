package glow

import (
	"image"
	"sync"

	"github.com/gogpu/gg"
)

// Blur is a separable Gaussian blur.
// The horizontal and vertical passes run independently, so the cost is
// O(w*h*(kx+ky)) rather than O(w*h*kx*ky).
type Blur struct {
	// Sigma is the standard deviation in pixels, matching SVG's
	// feGaussianBlur stdDeviation.
	Sigma float64
}

// Apply blurs the region r of src into dst. Both passes read only inside r:
// samples beyond its edges repeat the nearest edge pixel of r. src and dst
// must have the same size; they may be the same pixmap.
func (b Blur) Apply(src, dst *gg.Pixmap, r image.Rectangle) {
	if src == nil || dst == nil {
		return
	}
	r = r.Intersect(image.Rect(0, 0, src.Width(), src.Height()))
	if r.Empty() {
		return
	}

	w, h := r.Dx(), r.Dy()
	temp := getTemp(w * h * 4)
	defer putTemp(temp)

	kernel := cachedKernel(b.Sigma)
	horizontal(src, temp, r, kernel)
	vertical(temp, dst, r, kernel)
}

// ExpandBounds grows r by the reach of the blur.
func (b Blur) ExpandBounds(r image.Rectangle) image.Rectangle {
	return r.Inset(-Reach(b.Sigma))
}

// Pixmap returns a blurred copy of src.
func (b Blur) Pixmap(src *gg.Pixmap) *gg.Pixmap {
	dst := gg.NewPixmap(src.Width(), src.Height())
	b.Apply(src, dst, image.Rect(0, 0, src.Width(), src.Height()))
	return dst
}

func horizontal(src *gg.Pixmap, temp []float32, r image.Rectangle, kernel []float32) {
	half := len(kernel) / 2
	sw := src.Width()
	data := src.Data()
	w := r.Dx()

	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := y * sw
		for x := r.Min.X; x < r.Max.X; x++ {
			var cr, cg, cb, ca float32
			for k, weight := range kernel {
				kx := clampInt(x+k-half, r.Min.X, r.Max.X-1)
				i := (row + kx) * 4
				cr += float32(data[i+0]) * weight
				cg += float32(data[i+1]) * weight
				cb += float32(data[i+2]) * weight
				ca += float32(data[i+3]) * weight
			}
			t := ((y-r.Min.Y)*w + (x - r.Min.X)) * 4
			temp[t+0] = cr
			temp[t+1] = cg
			temp[t+2] = cb
			temp[t+3] = ca
		}
	}
}

func vertical(temp []float32, dst *gg.Pixmap, r image.Rectangle, kernel []float32) {
	half := len(kernel) / 2
	dw := dst.Width()
	data := dst.Data()
	w, h := r.Dx(), r.Dy()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var cr, cg, cb, ca float32
			for k, weight := range kernel {
				ky := clampInt(y+k-half, 0, h-1)
				t := (ky*w + x) * 4
				cr += temp[t+0] * weight
				cg += temp[t+1] * weight
				cb += temp[t+2] * weight
				ca += temp[t+3] * weight
			}
			i := ((r.Min.Y+y)*dw + r.Min.X + x) * 4
			data[i+0] = clampUint8(cr)
			data[i+1] = clampUint8(cg)
			data[i+2] = clampUint8(cb)
			data[i+3] = clampUint8(ca)
		}
	}
}

// floatBuffer wraps a slice for sync.Pool.
type floatBuffer struct {
	data []float32
}

var tempPool = sync.Pool{
	New: func() any {
		return &floatBuffer{data: make([]float32, 256*256*4)}
	},
}

// getTemp returns a zeroed buffer of at least n elements.
func getTemp(n int) []float32 {
	buf := tempPool.Get().(*floatBuffer)
	if len(buf.data) < n {
		tempPool.Put(buf)
		return make([]float32, n)
	}
	clear(buf.data[:n])
	return buf.data[:n]
}

func putTemp(buf []float32) {
	if cap(buf) <= 1024*1024*4 {
		tempPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
