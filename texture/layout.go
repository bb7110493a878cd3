package texture

import (
	"image"
	"image/draw"
)

// Typical PS2 framebuffer heights, tried first when a container does not
// declare a canvas height of its own.
var typicalHeights = []int{448, 480, 512, 384, 320, 256}

// Layout is a placement plan for the present pictures of a container: one
// position per non nil image, in input order, plus the canvas size.
type Layout struct {
	Positions []image.Point
	Width     int
	Height    int
}

// canPartition reports whether heights splits into consecutive runs each
// summing to exactly target.
func canPartition(heights []int, target int) bool {
	acc := 0
	for _, h := range heights {
		acc += h
		if acc == target {
			acc = 0
		} else if acc > target {
			return false
		}
	}
	return acc == 0
}

// inferHeight guesses the column height for a container that declares none.
// The first candidate that partitions the picture heights wins, trying
// typical screen heights before prefix sums of the leading heights; when
// nothing partitions, everything stacks into one column.
func inferHeight(heights []int) int {
	if len(heights) == 0 {
		return 0
	}

	candidates := append([]int(nil), typicalHeights...)
	sum := 0
	for i, h := range heights {
		if i == 6 {
			break
		}
		sum += h
		candidates = append(candidates, sum)
	}

	seen := make(map[int]struct{}, len(candidates))
	for _, target := range candidates {
		if target <= 0 {
			continue
		}
		if _, ok := seen[target]; ok {
			continue
		}
		seen[target] = struct{}{}
		if canPartition(heights, target) {
			return target
		}
	}

	total := 0
	for _, h := range heights {
		total += h
	}
	return total
}

// Layout places the present images of c into columns. Images stack top to
// bottom up to the declared canvas height, or an inferred one; an image
// that would overflow the current column starts the next one, and filling
// a column exactly also closes it. Skipped pictures take no space. The
// canvas is as wide as the declared size when both dimensions are given,
// otherwise as wide as the closed columns together.
func (c *Container) Layout(images []*image.RGBA) Layout {
	var heights []int
	for _, m := range images {
		if m != nil {
			heights = append(heights, m.Rect.Dy())
		}
	}

	target := c.TotalHeight
	if target <= 0 {
		target = inferHeight(heights)
	}

	var (
		positions     []image.Point
		widths        []int
		x, colY, colW int
	)
	closeColumn := func() {
		widths = append(widths, colW)
		x += colW
		colY, colW = 0, 0
	}
	for _, m := range images {
		if m == nil {
			continue
		}
		w, h := m.Rect.Dx(), m.Rect.Dy()
		if colY > 0 && colY+h > target {
			closeColumn()
		}
		positions = append(positions, image.Pt(x, colY))
		colY += h
		if w > colW {
			colW = w
		}
		if colY == target {
			closeColumn()
		}
	}
	if colY > 0 || (colW > 0 && len(widths) == 0) {
		closeColumn()
	}

	width := 0
	if c.TotalWidth > 0 && c.TotalHeight > 0 {
		width = c.TotalWidth
	} else {
		for _, w := range widths {
			width += w
		}
		if width == 0 {
			for _, m := range images {
				if m != nil && m.Rect.Dx() > width {
					width = m.Rect.Dx()
				}
			}
		}
	}

	return Layout{Positions: positions, Width: width, Height: target}
}

// Compose pastes the present images onto one transparent canvas, each at
// its own recorded position, replacing whatever is underneath.
func Compose(images []*image.RGBA, l Layout) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
	i := 0
	for _, m := range images {
		if m == nil {
			continue
		}
		if i == len(l.Positions) {
			break
		}
		r := image.Rectangle{Min: l.Positions[i], Max: l.Positions[i].Add(m.Rect.Size())}
		draw.Draw(canvas, r, m, m.Rect.Min, draw.Src)
		i++
	}
	return canvas
}
