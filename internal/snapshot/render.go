package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"slices"

	"cube-of-cubes/internal/cube"
	"cube-of-cubes/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Options controls how Render frames the cube.
type Options struct {
	Width, Height int
	Yaw, Pitch    float32 // degrees
	Label         string
}

var (
	background = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	edgeColor  = color.RGBA{0x20, 0x20, 0x20, 0xff}
	labelColor = color.RGBA{0x10, 0x10, 0x10, 0xff}
	lightDir   = mgl32.Vec3{0.5, 1.0, 0.3}.Normalize()

	sideColors = [...]mgl32.Vec3{
		cube.Right: {0.85, 0.45, 0.35},
		cube.Left:  {0.85, 0.45, 0.35},
		cube.Up:    {0.40, 0.80, 0.40},
		cube.Down:  {0.40, 0.80, 0.40},
		cube.Front: {0.40, 0.55, 0.90},
		cube.Back:  {0.40, 0.55, 0.90},
	}

	quadCorners = [4]mgl32.Vec4{
		{-0.5, -0.5, 0, 1},
		{0.5, -0.5, 0, 1},
		{0.5, 0.5, 0, 1},
		{-0.5, 0.5, 0, 1},
	}
)

// Background is the colour Render clears to.
func Background() color.RGBA { return background }

type projected struct {
	pts   [4]mgl32.Vec2
	depth float32
	col   color.RGBA
}

// Render draws every live face facing the camera with an orthographic
// projection centred on the origin, farthest faces first.
func (r *Recorder) Render(opts Options) *image.RGBA {
	defer profiling.Track("snapshot.Render")()
	w, h := max(opts.Width, 1), max(opts.Height, 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = background.R, background.G, background.B, background.A
	}

	extent := float32(1)
	for _, f := range r.live {
		extent = max(extent, float32(f.Pos.Layer()+1))
	}
	extent *= float32(math.Sqrt(3))

	yaw := float64(mgl32.DegToRad(opts.Yaw))
	pitch := float64(mgl32.DegToRad(opts.Pitch))
	toEye := mgl32.Vec3{
		float32(math.Cos(pitch) * math.Sin(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Cos(yaw)),
	}
	eye := toEye.Mul(extent * 4)
	view := mgl32.LookAtV(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	aspect := float32(w) / float32(h)
	proj := mgl32.Ortho(-extent*aspect, extent*aspect, -extent, extent, 0.1, extent*10)
	viewProj := proj.Mul4(view)

	quads := make([]projected, 0, len(r.live))
	for _, f := range r.live {
		n := f.Side.Normal()
		if n.Dot(toEye) <= 0 {
			continue
		}
		model := f.Side.Transform(f.Pos)
		mvp := viewProj.Mul4(model)
		var q projected
		for i, c := range quadCorners {
			ndc := mvp.Mul4x1(c)
			q.pts[i] = mgl32.Vec2{(ndc.X() + 1) / 2 * float32(w), (1 - ndc.Y()) / 2 * float32(h)}
		}
		q.depth = view.Mul4(model).Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Z()
		q.col = shade(f.Side, n)
		quads = append(quads, q)
	}
	slices.SortFunc(quads, func(a, b projected) int {
		switch {
		case a.depth < b.depth:
			return -1
		case a.depth > b.depth:
			return 1
		}
		return 0
	})

	z := vector.NewRasterizer(w, h)
	for _, q := range quads {
		fillQuad(z, img, q.pts, edgeColor)
		fillQuad(z, img, inset(q.pts, 0.08), q.col)
	}

	if opts.Label != "" {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(labelColor),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(8, 18),
		}
		d.DrawString(opts.Label)
	}
	return img
}

func shade(s cube.Side, n mgl32.Vec3) color.RGBA {
	diff := max(n.Dot(lightDir), 0)
	c := sideColors[s].Mul(0.35 + 0.65*diff)
	return color.RGBA{to8(c.X()), to8(c.Y()), to8(c.Z()), 0xff}
}

func to8(v float32) uint8 {
	return uint8(mgl32.Clamp(v, 0, 1) * 255)
}

// inset pulls the corners of a quad towards its centre by frac.
func inset(pts [4]mgl32.Vec2, frac float32) [4]mgl32.Vec2 {
	var c mgl32.Vec2
	for _, p := range pts {
		c = c.Add(p.Mul(0.25))
	}
	for i, p := range pts {
		pts[i] = p.Add(c.Sub(p).Mul(frac))
	}
	return pts
}

func fillQuad(z *vector.Rasterizer, img *image.RGBA, pts [4]mgl32.Vec2, col color.RGBA) {
	b := img.Bounds()
	z.Reset(b.Dx(), b.Dy())
	z.MoveTo(pts[0].X(), pts[0].Y())
	for _, p := range pts[1:] {
		z.LineTo(p.X(), p.Y())
	}
	z.ClosePath()
	z.Draw(img, b, image.NewUniform(col), image.Point{})
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
