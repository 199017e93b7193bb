package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph describes one character's placement and metrics within the atlas.
type Glyph struct {
	// top-left of the glyph bitmap in the atlas, pixels
	AtlasX float32
	AtlasY float32
	Width  float32
	Height float32
	// offset from the pen position on the baseline
	BearingX float32
	BearingY float32
	Advance  int
}

// FontAtlas is a baked glyph sheet plus per-glyph metrics. TextureID is
// zero until Upload is called.
type FontAtlas struct {
	Image      *image.Alpha
	Glyphs     map[rune]Glyph
	LineHeight int
	TextureID  uint32
}

const atlasWidth = 512

// BakeFontAtlas rasterises printable ASCII from an OpenType/TrueType font
// at the given pixel size. It does not touch GL.
func BakeFontAtlas(fontData []byte, pixels int) (*FontAtlas, error) {
	f, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(pixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	const padding = 1

	// first pass: row-pack to find the atlas height
	offsetX, rowH, height := 0, 0, 0
	for r := rune(32); r <= 126; r++ {
		dr, mask, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || mask == nil || dr.Empty() {
			continue
		}
		if offsetX+dr.Dx() > atlasWidth {
			height += rowH + padding
			offsetX, rowH = 0, 0
		}
		offsetX += dr.Dx() + padding
		rowH = max(rowH, dr.Dy())
	}
	height += rowH + padding

	atlas := &FontAtlas{
		Image:      image.NewAlpha(image.Rect(0, 0, atlasWidth, height)),
		Glyphs:     make(map[rune]Glyph),
		LineHeight: face.Metrics().Height.Ceil(),
	}

	// second pass: draw
	offsetX, offsetY, rowH := 0, 0, 0
	for r := rune(32); r <= 126; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		g := Glyph{
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  int(math.Round(float64(advance) / 64.0)),
		}
		if mask == nil || dr.Empty() {
			// space: advance only
			atlas.Glyphs[r] = g
			continue
		}
		if offsetX+dr.Dx() > atlasWidth {
			offsetX = 0
			offsetY += rowH + padding
			rowH = 0
		}
		draw.Draw(atlas.Image, image.Rect(offsetX, offsetY, offsetX+dr.Dx(), offsetY+dr.Dy()), mask, maskp, draw.Src)

		g.AtlasX, g.AtlasY = float32(offsetX), float32(offsetY)
		g.Width, g.Height = float32(dr.Dx()), float32(dr.Dy())
		atlas.Glyphs[r] = g

		offsetX += dr.Dx() + padding
		rowH = max(rowH, dr.Dy())
	}
	return atlas, nil
}

// Measure returns the width and tallest glyph height of text in pixels.
func (a *FontAtlas) Measure(text string, scale float32) (float32, float32) {
	var w, h float32
	for _, r := range text {
		g, ok := a.Glyphs[r]
		if !ok {
			g = a.Glyphs[' ']
		}
		w += float32(g.Advance) * scale
		h = max(h, g.Height*scale)
	}
	return w, h
}

// Layout returns two triangles per drawable glyph as (x, y, u, v) vertices,
// with the pen starting on the baseline at (x, y). Unknown runes advance
// like a space.
func (a *FontAtlas) Layout(text string, x, y, scale float32) []float32 {
	bounds := a.Image.Bounds()
	aw, ah := float32(bounds.Dx()), float32(bounds.Dy())

	verts := make([]float32, 0, len(text)*6*4)
	for _, r := range text {
		g, ok := a.Glyphs[r]
		if !ok {
			x += float32(a.Glyphs[' '].Advance) * scale
			continue
		}
		if g.Width > 0 && g.Height > 0 {
			x0 := x + g.BearingX*scale
			y0 := y - g.BearingY*scale
			w, h := g.Width*scale, g.Height*scale
			u0, v0 := g.AtlasX/aw, g.AtlasY/ah
			u1, v1 := (g.AtlasX+g.Width)/aw, (g.AtlasY+g.Height)/ah
			verts = append(verts,
				x0, y0+h, u0, v1,
				x0, y0, u0, v0,
				x0+w, y0, u1, v0,
				x0, y0+h, u0, v1,
				x0+w, y0, u1, v0,
				x0+w, y0+h, u1, v1,
			)
		}
		x += float32(g.Advance) * scale
	}
	return verts
}

// Upload copies the atlas into a single-channel GL texture.
func (a *FontAtlas) Upload() {
	a.TextureID = UploadAlpha(a.Image, gl.LINEAR)
}

// Text shader locations
var (
	TextVertShader = filepath.Join(ShadersDir, "text", "text.vert")
	TextFragShader = filepath.Join(ShadersDir, "text", "text.frag")
)

// TextRenderer draws screen-space text in pixel coordinates (origin top-left).
type TextRenderer struct {
	atlas      *FontAtlas
	shader     *Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewTextRenderer uploads the atlas and compiles the text shader.
func NewTextRenderer(atlas *FontAtlas, width, height int) (*TextRenderer, error) {
	if atlas == nil || len(atlas.Glyphs) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := NewShader(TextVertShader, TextFragShader)
	if err != nil {
		return nil, err
	}
	if atlas.TextureID == 0 {
		atlas.Upload()
	}
	tr := &TextRenderer{atlas: atlas, shader: shader}
	tr.SetViewport(width, height)

	gl.GenVertexArrays(1, &tr.vao)
	gl.GenBuffers(1, &tr.vbo)
	gl.BindVertexArray(tr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return tr, nil
}

// SetViewport rebuilds the pixel-space orthographic projection.
func (tr *TextRenderer) SetViewport(width, height int) {
	tr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// Atlas returns the glyph atlas in use.
func (tr *TextRenderer) Atlas() *FontAtlas { return tr.atlas }

// RenderLines draws lines starting at baseline (x, y), lineStep pixels apart.
func (tr *TextRenderer) RenderLines(lines []string, x, y, lineStep, scale float32, color mgl32.Vec3) {
	var verts []float32
	for _, line := range lines {
		verts = append(verts, tr.atlas.Layout(line, x, y, scale)...)
		y += lineStep
	}
	if len(verts) == 0 {
		return
	}

	// y-down projection flips glyph winding
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	tr.shader.Use()
	tr.shader.SetVector3("textColor", color.X(), color.Y(), color.Z())
	tr.shader.SetMatrix4("projection", &tr.projection[0])
	tr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.atlas.TextureID)
	gl.BindVertexArray(tr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	// orphan then fill
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, nil, gl.STREAM_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

// Dispose frees GL resources.
func (tr *TextRenderer) Dispose() {
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
	}
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
	}
	DeleteTexture(&tr.atlas.TextureID)
	tr.shader.Delete()
}
