package display

import (
	"strconv"

	"github.com/dshills/nanox/internal/renderer/backend"
	"github.com/dshills/nanox/internal/renderer/core"
)

// penAttrs are the attributes the pen tracks.
const penAttrs = core.AttrBold | core.AttrUnderline | core.AttrReverse

// pen tracks the SGR state last sent to the terminal and emits the
// parameters needed to reach a new style.
type pen struct {
	fg, bg    core.Color
	attrs     core.Attribute
	trueColor bool
	params    []byte
}

// reset records that the terminal attributes were just reset.
func (p *pen) reset() {
	p.fg = core.ColorDefault
	p.bg = core.ColorDefault
	p.attrs = core.AttrNone
}

// resolve maps a color to one the terminal can show.
func (p *pen) resolve(c core.Color) core.Color {
	if c.IsRGB() && !p.trueColor {
		return c.To256()
	}
	return c
}

// apply moves the terminal to style st with a single SGR sequence, or
// none when nothing changes.
func (p *pen) apply(t backend.Terminal, st core.Style) {
	b := p.params[:0]
	attrs := st.Attributes & penAttrs
	if attrs != p.attrs {
		if attrs == core.AttrNone {
			b = append(b, '0')
			p.fg, p.bg = core.ColorDefault, core.ColorDefault
		} else {
			b = toggle(b, p.attrs, attrs, core.AttrBold, "1", "22")
			b = toggle(b, p.attrs, attrs, core.AttrUnderline, "4", "24")
			b = toggle(b, p.attrs, attrs, core.AttrReverse, "7", "27")
		}
		p.attrs = attrs
	}
	if fg := p.resolve(st.Foreground); fg != p.fg {
		b = colorParams(sep(b), fg, true)
		p.fg = fg
	}
	if bg := p.resolve(st.Background); bg != p.bg {
		b = colorParams(sep(b), bg, false)
		p.bg = bg
	}
	p.params = b
	if len(b) > 0 {
		t.SetAttribute(string(b))
	}
}

// background selects the color erase operations fill with.
func (p *pen) background(t backend.Terminal, bg core.Color) {
	bg = p.resolve(bg)
	if bg.IsDefault() {
		return
	}
	p.params = colorParams(p.params[:0], bg, false)
	p.bg = bg
	t.SetAttribute(string(p.params))
}

func toggle(b []byte, from, to, attr core.Attribute, on, off string) []byte {
	switch {
	case to.Has(attr) && !from.Has(attr):
		return append(sep(b), on...)
	case !to.Has(attr) && from.Has(attr):
		return append(sep(b), off...)
	}
	return b
}

func sep(b []byte) []byte {
	if len(b) > 0 {
		return append(b, ';')
	}
	return b
}

// colorParams appends the SGR parameters selecting c as the foreground or
// background color.
func colorParams(b []byte, c core.Color, fg bool) []byte {
	base := 30
	if !fg {
		base = 40
	}
	switch {
	case c.IsDefault():
		return strconv.AppendInt(b, int64(base+9), 10)
	case c.IsRGB():
		r, g, bl := c.RGB()
		b = strconv.AppendInt(b, int64(base+8), 10)
		b = append(b, ";2;"...)
		b = strconv.AppendInt(b, int64(r), 10)
		b = append(b, ';')
		b = strconv.AppendInt(b, int64(g), 10)
		b = append(b, ';')
		return strconv.AppendInt(b, int64(bl), 10)
	}
	n := int(c.Index())
	switch {
	case n < 8:
		return strconv.AppendInt(b, int64(base+n), 10)
	case n < 16:
		return strconv.AppendInt(b, int64(base+60+n-8), 10)
	}
	b = strconv.AppendInt(b, int64(base+8), 10)
	b = append(b, ";5;"...)
	return strconv.AppendInt(b, int64(n), 10)
}
