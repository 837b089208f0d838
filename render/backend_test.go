package render

import (
	"github.com/lixenwraith/blockworld/vmath"
)

// selectDraw is one batch submitted while selecting
type selectDraw struct {
	names []int32
	quads int
}

// fakeBackend records everything the renderer asks of it
type fakeBackend struct {
	next      int
	lists     map[int][]Mesh
	compiling int
	calls     []int
	drawn     []Mesh

	proj, modl vmath.Mat4

	selecting bool
	names     []int32
	selected  []selectDraw

	tex           int
	texOn         bool
	blend         bool
	fog           bool
	cull          bool
	color         [4]float32
	blendedQuads  int
	texturedCalls int
	cleared       int
	fogDensity    float32
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		next:      1,
		lists:     make(map[int][]Mesh),
		compiling: -1,
		proj:      vmath.Identity(),
		modl:      vmath.Identity(),
	}
}

func (f *fakeBackend) DrawQuads(m *Mesh) {
	switch {
	case f.compiling >= 0:
		f.lists[f.compiling] = append(f.lists[f.compiling], m.Clone())
	case f.selecting:
		names := append([]int32(nil), f.names...)
		f.selected = append(f.selected, selectDraw{names: names, quads: m.Quads()})
	default:
		if f.blend {
			f.blendedQuads += m.Quads()
		}
		f.drawn = append(f.drawn, m.Clone())
	}
}

func (f *fakeBackend) GenLists(n int) int {
	id := f.next
	f.next += n
	return id
}

func (f *fakeBackend) NewList(list int) {
	f.compiling = list
	f.lists[list] = nil
}

func (f *fakeBackend) EndList()          { f.compiling = -1 }
func (f *fakeBackend) CallList(list int) { f.calls = append(f.calls, list) }

func (f *fakeBackend) BindTexture(tex int) { f.tex = tex }
func (f *fakeBackend) EnableTexture(on bool) {
	f.texOn = on
	if on {
		f.texturedCalls++
	}
}

func (f *fakeBackend) Viewport() [4]int      { return [4]int{0, 0, 64, 32} }
func (f *fakeBackend) Clear(r, g, b float32) { f.cleared++ }
func (f *fakeBackend) SetFogParams(d, r, g, b float32) {
	f.fogDensity = d
}

func (f *fakeBackend) SetColor(r, g, b, a float32) { f.color = [4]float32{r, g, b, a} }
func (f *fakeBackend) SetBlend(on bool)            { f.blend = on }
func (f *fakeBackend) SetFog(on bool)              { f.fog = on }
func (f *fakeBackend) SetCull(on bool)             { f.cull = on }

func (f *fakeBackend) SetProjection(m vmath.Mat4) { f.proj = m }
func (f *fakeBackend) SetModelView(m vmath.Mat4)  { f.modl = m }
func (f *fakeBackend) Projection() vmath.Mat4     { return f.proj }
func (f *fakeBackend) ModelView() vmath.Mat4      { return f.modl }

func (f *fakeBackend) BeginSelect() {
	f.selecting = true
	f.selected = nil
	f.names = nil
}

func (f *fakeBackend) InitNames()          { f.names = f.names[:0] }
func (f *fakeBackend) PushName(name int32) { f.names = append(f.names, name) }
func (f *fakeBackend) PopName()            { f.names = f.names[:len(f.names)-1] }

func (f *fakeBackend) EndSelect() []Hit {
	f.selecting = false
	hits := make([]Hit, 0, len(f.selected))
	for i, s := range f.selected {
		hits = append(hits, Hit{Names: s.names, MinZ: float32(len(f.selected)-i) / float32(len(f.selected)+1)})
	}
	return hits
}

// listQuads flattens the compiled quads of one list into groups of four vertices
func (f *fakeBackend) listQuads(list int) [][4]Vertex {
	var quads [][4]Vertex
	for _, m := range f.lists[list] {
		for i := 0; i+3 < len(m.Vertices); i += 4 {
			quads = append(quads, [4]Vertex{m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2], m.Vertices[i+3]})
		}
	}
	return quads
}

var _ Backend = (*fakeBackend)(nil)
