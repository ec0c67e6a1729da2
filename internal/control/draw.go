package control

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"honnef.co/go/lissajous"
)

// Panel geometry in unscaled pixels.
const (
	panelWidth = 340
	margin     = 12
	fontSize   = 14
	barHeight  = 6
	lineGap    = 4
)

var (
	panelColor    = color.RGBA{0x18, 0x18, 0x1C, 0xD8}
	headingColor  = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	textColor     = color.RGBA{0xC8, 0xC8, 0xC8, 0xFF}
	selectedColor = color.RGBA{0xFF, 0xD0, 0x40, 0xFF}
	trackColor    = color.RGBA{0x40, 0x40, 0x48, 0xFF}
	fillColor     = color.RGBA{0x90, 0x40, 0xC0, 0xFF}
)

const hint = "Up/Down select, Left/Right adjust, Shift for larger steps, Home/End for limits, R resets, H hides this panel."

type faceCache struct {
	font  *opentype.Font
	scale float64
	face  font.Face
}

func (fc *faceCache) get(scale float64) (font.Face, error) {
	if fc.face != nil && fc.scale == scale {
		return fc.face, nil
	}
	face, err := opentype.NewFace(fc.font, &opentype.FaceOptions{
		Size:    fontSize * scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("control: creating font face: %w", err)
	}
	if fc.face != nil {
		fc.face.Close()
	}
	fc.face, fc.scale = face, scale
	return face, nil
}

// NewPanel returns a panel with [DefaultSections] and the first slider
// selected.
func NewPanel() (*Panel, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("control: parsing font: %w", err)
	}
	return &Panel{
		Sections: DefaultSections(),
		face:     &faceCache{font: fnt},
	}, nil
}

// Width returns the width of the panel in pixels at the given scale.
func (p *Panel) Width(scale float64) int {
	return int(panelWidth*scale + 0.5)
}

// Draw draws the panel over the left edge of dst. scale is the number of
// device pixels per logical pixel. A hidden panel draws nothing.
func (p *Panel) Draw(dst draw.Image, params lissajous.Params, scale float64) error {
	if p.Hidden {
		return nil
	}
	if !(scale > 0) {
		scale = 1
	}
	face, err := p.face.get(scale)
	if err != nil {
		return err
	}

	b := dst.Bounds()
	w := p.Width(scale)
	draw.Draw(dst, image.Rect(b.Min.X, b.Min.Y, b.Min.X+w, b.Max.Y), image.NewUniform(panelColor), image.Point{}, draw.Over)

	px := func(v float64) int { return int(v*scale + 0.5) }
	tw := &textWriter{
		dst:    dst,
		face:   face,
		x:      b.Min.X + px(margin),
		width:  w - 2*px(margin),
		y:      b.Min.Y + px(margin),
		height: face.Metrics().Height.Ceil() + px(lineGap),
	}

	cur := -1
	if n := len(p.Sliders()); n > 0 {
		cur = p.selected(n)
	}
	sel := 0
	for i, sec := range p.Sections {
		if i > 0 {
			tw.y += px(lineGap)
			draw.Draw(dst, image.Rect(tw.x, tw.y, tw.x+tw.width, tw.y+max(px(1), 1)), image.NewUniform(trackColor), image.Point{}, draw.Src)
			tw.y += px(2 * lineGap)
		}
		if sec.Heading != "" {
			tw.write(sec.Heading, headingColor)
		}
		if sec.Note != "" {
			tw.write(sec.Note, textColor)
		}
		for _, sl := range sec.Sliders {
			c := textColor
			if sel == cur {
				c = selectedColor
			}
			tw.write(fmt.Sprintf("%s: %s", sl.Label, format(sl.ID, params.Get(sl.ID))), c)
			tw.bar(sl.ID.Range(), params.Get(sl.ID), px(barHeight), sel == cur)
			tw.y += px(lineGap)
			sel++
		}
	}
	tw.y += px(2 * lineGap)
	tw.write(hint, textColor)
	return nil
}

func format(id lissajous.ParamID, v float64) string {
	if id.IsInteger() {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

// textWriter lays out lines of text and bars from top to bottom.
type textWriter struct {
	dst    draw.Image
	face   font.Face
	x, y   int
	width  int
	height int
}

// write draws s, wrapped at word boundaries to the writer's width.
func (tw *textWriter) write(s string, c color.Color) {
	d := &font.Drawer{Dst: tw.dst, Src: image.NewUniform(c), Face: tw.face}
	ascent := tw.face.Metrics().Ascent.Ceil()
	for _, line := range wrap(tw.face, s, tw.width) {
		d.Dot = fixed.P(tw.x, tw.y+ascent)
		d.DrawString(line)
		tw.y += tw.height
	}
}

// bar draws a horizontal bar showing where v lies within r.
func (tw *textWriter) bar(r lissajous.Range, v float64, h int, selected bool) {
	track := image.Rect(tw.x, tw.y, tw.x+tw.width, tw.y+h)
	draw.Draw(tw.dst, track, image.NewUniform(trackColor), image.Point{}, draw.Src)
	frac := 0.0
	if r.Max > r.Min {
		frac = (r.Clamp(v) - r.Min) / (r.Max - r.Min)
	}
	c := fillColor
	if selected {
		c = selectedColor
	}
	filled := track
	filled.Max.X = track.Min.X + int(frac*float64(track.Dx())+0.5)
	draw.Draw(tw.dst, filled, image.NewUniform(c), image.Point{}, draw.Src)
	tw.y += h
}

// wrap splits s into lines no wider than width. Words wider than width get a
// line of their own.
func wrap(face font.Face, s string, width int) []string {
	var lines []string
	var cur strings.Builder
	limit := fixed.I(width)
	for _, word := range strings.Fields(s) {
		if cur.Len() == 0 {
			cur.WriteString(word)
			continue
		}
		if font.MeasureString(face, cur.String()+" "+word) > limit {
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
			continue
		}
		cur.WriteByte(' ')
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
