package raster

import (
	"math"

	"github.com/lixenwraith/blockworld/render"
	"github.com/lixenwraith/blockworld/vmath"
)

type commandKind uint8

const (
	cmdDraw commandKind = iota
	cmdBindTexture
	cmdEnableTexture
)

// command is one recorded display list entry
type command struct {
	kind commandKind
	mesh render.Mesh
	tex  int
	on   bool
}

// screenVert is a post-divide vertex with attributes pre-divided by w
type screenVert struct {
	x, y, z float32
	invW    float32
	u, v    float32
	r, g, b float32
}

// Rasterizer is a depth-buffered software implementation of render.Backend
// Pixels are square; Present packs two pixel rows into one terminal cell
type Rasterizer struct {
	width, height int
	color         []RGB
	depth         []float32

	textures *TextureCache

	proj, modl vmath.Mat4
	clip       vmath.Mat4

	lists     map[int][]command
	nextList  int
	compiling int

	texOn bool
	tex   int
	cur   [4]float32
	blend bool
	fog   bool
	cull  bool

	fogDensity float32
	fogColor   RGB

	selecting  bool
	names      []int32
	hits       []render.Hit
	hitPending bool
	hitMin     float32
	hitMax     float32

	polyA, polyB []clipVert
	screen       []screenVert

	// Quads is the number of quads that reached rasterization since the last Clear
	Quads int
}

var _ render.Backend = (*Rasterizer)(nil)

func New(textures *TextureCache, width, height int) *Rasterizer {
	if textures == nil {
		textures = NewTextureCache(nil)
	}
	r := &Rasterizer{
		textures:  textures,
		proj:      vmath.Identity(),
		modl:      vmath.Identity(),
		clip:      vmath.Identity(),
		lists:     make(map[int][]command),
		nextList:  1,
		compiling: -1,
		cur:       [4]float32{1, 1, 1, 1},
		polyA:     make([]clipVert, 0, 16),
		polyB:     make([]clipVert, 0, 16),
		screen:    make([]screenVert, 0, 16),
	}
	r.Resize(width, height)
	return r
}

// Resize reallocates the framebuffer; contents are undefined until the next Clear
func (r *Rasterizer) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	r.color = make([]RGB, width*height)
	r.depth = make([]float32, width*height)
}

func (r *Rasterizer) Size() (int, int) {
	return r.width, r.height
}

// Pixel returns the framebuffer color at (x, y), y growing downward
func (r *Rasterizer) Pixel(x, y int) RGB {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return RGB{}
	}
	return r.color[y*r.width+x]
}

// Depth returns the window depth at (x, y); 1 means nothing drawn
func (r *Rasterizer) Depth(x, y int) float32 {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return 1
	}
	return r.depth[y*r.width+x]
}

func (r *Rasterizer) Textures() *TextureCache {
	return r.textures
}

// --- render.Backend: frame ---

func (r *Rasterizer) Viewport() [4]int {
	return [4]int{0, 0, r.width, r.height}
}

func (r *Rasterizer) Clear(cr, cg, cb float32) {
	c := RGBFromFloat(cr, cg, cb)
	n := len(r.color)
	if n == 0 {
		return
	}
	// Copy-doubling fill
	r.color[0] = c
	r.depth[0] = 1
	for i := 1; i < n; i *= 2 {
		copy(r.color[i:], r.color[:i])
		copy(r.depth[i:], r.depth[:i])
	}
	r.Quads = 0
}

// --- render.Backend: lists ---

func (r *Rasterizer) GenLists(n int) int {
	id := r.nextList
	r.nextList += n
	return id
}

func (r *Rasterizer) NewList(list int) {
	r.compiling = list
	r.lists[list] = r.lists[list][:0]
}

func (r *Rasterizer) EndList() {
	r.compiling = -1
}

func (r *Rasterizer) CallList(list int) {
	for i := range r.lists[list] {
		c := &r.lists[list][i]
		switch c.kind {
		case cmdDraw:
			r.drawMesh(&c.mesh)
		case cmdBindTexture:
			r.tex = c.tex
		case cmdEnableTexture:
			r.texOn = c.on
		}
	}
}

func (r *Rasterizer) record(c command) bool {
	if r.compiling < 0 {
		return false
	}
	r.lists[r.compiling] = append(r.lists[r.compiling], c)
	return true
}

// --- render.Backend: state ---

func (r *Rasterizer) BindTexture(tex int) {
	if !r.record(command{kind: cmdBindTexture, tex: tex}) {
		r.tex = tex
	}
}

func (r *Rasterizer) EnableTexture(on bool) {
	if !r.record(command{kind: cmdEnableTexture, on: on}) {
		r.texOn = on
	}
}

func (r *Rasterizer) SetColor(cr, cg, cb, ca float32) {
	r.cur = [4]float32{cr, cg, cb, ca}
}

func (r *Rasterizer) SetBlend(on bool) { r.blend = on }
func (r *Rasterizer) SetFog(on bool)   { r.fog = on }
func (r *Rasterizer) SetCull(on bool)  { r.cull = on }

func (r *Rasterizer) SetFogParams(density, cr, cg, cb float32) {
	r.fogDensity = density
	r.fogColor = RGBFromFloat(cr, cg, cb)
}

func (r *Rasterizer) SetProjection(m vmath.Mat4) {
	r.proj = m
	r.clip = r.proj.Mul(r.modl)
}

func (r *Rasterizer) SetModelView(m vmath.Mat4) {
	r.modl = m
	r.clip = r.proj.Mul(r.modl)
}

func (r *Rasterizer) Projection() vmath.Mat4 { return r.proj }
func (r *Rasterizer) ModelView() vmath.Mat4  { return r.modl }

// --- render.Backend: selection ---

func (r *Rasterizer) BeginSelect() {
	r.selecting = true
	r.names = r.names[:0]
	r.hits = nil
	r.hitPending = false
}

// flushHit emits a record for the current name stack when something was hit since the last change
func (r *Rasterizer) flushHit() {
	if !r.selecting || !r.hitPending {
		return
	}
	r.hits = append(r.hits, render.Hit{
		Names: append([]int32(nil), r.names...),
		MinZ:  r.hitMin,
		MaxZ:  r.hitMax,
	})
	r.hitPending = false
}

func (r *Rasterizer) InitNames() {
	r.flushHit()
	r.names = r.names[:0]
}

func (r *Rasterizer) PushName(name int32) {
	r.flushHit()
	r.names = append(r.names, name)
}

func (r *Rasterizer) PopName() {
	r.flushHit()
	if len(r.names) > 0 {
		r.names = r.names[:len(r.names)-1]
	}
}

func (r *Rasterizer) EndSelect() []render.Hit {
	r.flushHit()
	r.selecting = false
	hits := r.hits
	r.hits = nil
	return hits
}

func (r *Rasterizer) registerHit(poly []screenVert) {
	for _, v := range poly {
		if !r.hitPending {
			r.hitMin, r.hitMax = v.z, v.z
			r.hitPending = true
			continue
		}
		r.hitMin = min(r.hitMin, v.z)
		r.hitMax = max(r.hitMax, v.z)
	}
}

// --- render.Backend: drawing ---

func (r *Rasterizer) DrawQuads(m *render.Mesh) {
	if r.record(command{kind: cmdDraw, mesh: m.Clone()}) {
		return
	}
	r.drawMesh(m)
}

func (r *Rasterizer) drawMesh(m *render.Mesh) {
	var tex *Texture
	if r.texOn && m.HasTexture {
		tex = r.textures.Get(r.tex)
	}
	vs := m.Vertices
	for i := 0; i+3 < len(vs); i += 4 {
		r.drawQuad(vs[i:i+4], m.HasColor, tex)
	}
}

func (r *Rasterizer) drawQuad(q []render.Vertex, hasColor bool, tex *Texture) {
	poly := r.polyA[:0]
	for _, v := range q {
		cv := clipVert{
			pos: r.clip.MulVec4(vmath.Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1}),
			u:   v.U,
			v:   v.V,
		}
		if hasColor {
			cv.r, cv.g, cv.b = v.R, v.G, v.B
		} else {
			cv.r, cv.g, cv.b = r.cur[0], r.cur[1], r.cur[2]
		}
		poly = append(poly, cv)
	}

	clipped := clipPolygon(poly, r.polyB[:0])
	if len(clipped) < 3 {
		return
	}

	// Perspective divide and viewport transform; y flips to grow downward
	sv := r.screen[:0]
	for _, c := range clipped {
		invW := 1 / c.pos.W
		sv = append(sv, screenVert{
			x:    (c.pos.X*invW + 1) * 0.5 * float32(r.width),
			y:    (1 - c.pos.Y*invW) * 0.5 * float32(r.height),
			z:    c.pos.Z*invW*0.5 + 0.5,
			invW: invW,
			u:    c.u * invW,
			v:    c.v * invW,
			r:    c.r * invW,
			g:    c.g * invW,
			b:    c.b * invW,
		})
	}
	r.screen = sv

	// Counter-clockwise in device space is front-facing, which is clockwise once y points down
	if r.cull && signedArea(sv) >= 0 {
		return
	}

	if r.selecting {
		r.registerHit(sv)
		return
	}

	r.Quads++
	for i := 1; i+1 < len(sv); i++ {
		r.fillTriangle(sv[0], sv[i], sv[i+1], tex)
	}
}

// signedArea is twice the polygon area in window coordinates
func signedArea(poly []screenVert) float32 {
	var a float32
	for i := range poly {
		p, q := &poly[i], &poly[(i+1)%len(poly)]
		a += p.x*q.y - q.x*p.y
	}
	return a
}

// edge is the signed area function of p against the directed edge a->b
func edge(a, b *screenVert, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// topLeft reports whether an edge owns pixels lying exactly on it
func topLeft(a, b *screenVert) bool {
	dx, dy := b.x-a.x, b.y-a.y
	return dy < 0 || (dy == 0 && dx > 0)
}

func (r *Rasterizer) fillTriangle(v0, v1, v2 screenVert, tex *Texture) {
	area := edge(&v0, &v1, v2.x, v2.y)
	if area == 0 {
		return
	}
	if area < 0 {
		v1, v2 = v2, v1
		area = -area
	}

	minX := max(0, int(math.Floor(float64(min(v0.x, v1.x, v2.x)))))
	maxX := min(r.width-1, int(math.Ceil(float64(max(v0.x, v1.x, v2.x)))))
	minY := max(0, int(math.Floor(float64(min(v0.y, v1.y, v2.y)))))
	maxY := min(r.height-1, int(math.Ceil(float64(max(v0.y, v1.y, v2.y)))))

	tl0, tl1, tl2 := topLeft(&v1, &v2), topLeft(&v2, &v0), topLeft(&v0, &v1)
	inv := 1 / area

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			w0 := edge(&v1, &v2, px, py)
			w1 := edge(&v2, &v0, px, py)
			w2 := edge(&v0, &v1, px, py)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			if (w0 == 0 && !tl0) || (w1 == 0 && !tl1) || (w2 == 0 && !tl2) {
				continue
			}
			l0, l1, l2 := w0*inv, w1*inv, w2*inv

			z := l0*v0.z + l1*v1.z + l2*v2.z
			idx := y*r.width + x
			if z > r.depth[idx] {
				continue
			}

			iw := l0*v0.invW + l1*v1.invW + l2*v2.invW
			if iw == 0 {
				continue
			}
			w := 1 / iw

			c := RGB{R: 255, G: 255, B: 255}
			if tex != nil {
				u := (l0*v0.u + l1*v1.u + l2*v2.u) * w
				v := (l0*v0.v + l1*v1.v + l2*v2.v) * w
				c = tex.Sample(u, v)
			}
			c = Modulate(c,
				(l0*v0.r+l1*v1.r+l2*v2.r)*w,
				(l0*v0.g+l1*v1.g+l2*v2.g)*w,
				(l0*v0.b+l1*v1.b+l2*v2.b)*w,
			)

			if r.fog {
				f := math.Exp(-float64(r.fogDensity) * math.Abs(float64(w)))
				c = Lerp(r.fogColor, c, f)
			}

			r.depth[idx] = z
			if r.blend {
				r.color[idx] = AddScaled(r.color[idx], c, r.cur[3])
			} else {
				r.color[idx] = c
			}
		}
	}
}
