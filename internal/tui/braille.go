package tui

import (
	"strings"

	"zoomchart/internal/scene"
)

// noLayer marks a cell nothing was drawn into.
const noLayer scene.Layer = -1

type brailleBuf struct {
	w, h  int             // in cells
	m     [][]uint8       // per-cell 8-bit mask
	layer [][]scene.Layer // topmost layer per cell, for colour
	text  [][]rune        // label glyphs, drawn over the dots
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	layer := make([][]scene.Layer, h)
	text := make([][]rune, h)
	for i := range m {
		m[i] = make([]uint8, w)
		layer[i] = make([]scene.Layer, w)
		text[i] = make([]rune, w)
		for j := range layer[i] {
			layer[i][j] = noLayer
		}
	}
	return &brailleBuf{w: w, h: h, m: m, layer: layer, text: text}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, l scene.Layer) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	if l > b.layer[cy][cx] {
		b.layer[cy][cx] = l
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, l scene.Layer) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, l)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// putText writes s into cell row cy starting at column cx, clipped to the buffer.
func (b *brailleBuf) putText(cx, cy int, s string) {
	if cy < 0 || cy >= b.h {
		return
	}
	for _, ch := range s {
		if cx >= 0 && cx < b.w {
			b.text[cy][cx] = ch
			b.layer[cy][cx] = scene.LayerLabel
		}
		cx++
	}
}

// cell returns the glyph and layer at (x, y).
func (b *brailleBuf) cell(x, y int) (rune, scene.Layer) {
	if t := b.text[y][x]; t != 0 {
		return t, scene.LayerLabel
	}
	mask := b.m[y][x]
	if mask == 0 {
		return ' ', noLayer
	}
	return rune(0x2800 + int(mask)), b.layer[y][x]
}

// toLines renders each row, styling runs of cells that share a layer.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		var run []rune
		cur := noLayer
		flush := func() {
			if len(run) == 0 {
				return
			}
			if st, ok := layerStyles[cur]; ok {
				sb.WriteString(st.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			r, l := b.cell(x, y)
			if l != cur {
				flush()
				cur = l
			}
			run = append(run, r)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}
