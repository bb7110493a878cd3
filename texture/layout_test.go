package texture

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizedImage(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestLayoutColumns(t *testing.T) {
	c := &Container{TotalHeight: 200}
	images := []*image.RGBA{sizedImage(64, 100), sizedImage(80, 100), sizedImage(32, 100)}

	l := c.Layout(images)

	assert.Equal(t, []image.Point{image.Pt(0, 0), image.Pt(0, 100), image.Pt(80, 0)}, l.Positions)
	assert.Equal(t, 112, l.Width) // widest of column one, plus column two
	assert.Equal(t, 200, l.Height)
}

func TestLayoutSkipsAbsent(t *testing.T) {
	c := &Container{TotalHeight: 100}
	images := []*image.RGBA{nil, sizedImage(10, 100), nil, sizedImage(20, 40)}

	l := c.Layout(images)

	assert.Equal(t, []image.Point{image.Pt(0, 0), image.Pt(10, 0)}, l.Positions)
	assert.Equal(t, 30, l.Width)
	assert.Equal(t, 100, l.Height)
}

func TestLayoutDeclaredCanvas(t *testing.T) {
	c := &Container{TotalWidth: 640, TotalHeight: 448}
	images := []*image.RGBA{sizedImage(320, 448), sizedImage(320, 448)}

	l := c.Layout(images)

	assert.Equal(t, []image.Point{image.Pt(0, 0), image.Pt(320, 0)}, l.Positions)
	assert.Equal(t, 640, l.Width)
	assert.Equal(t, 448, l.Height)
}

func TestLayoutOversizePicture(t *testing.T) {
	c := &Container{TotalHeight: 100}
	images := []*image.RGBA{sizedImage(10, 150), sizedImage(10, 50)}

	l := c.Layout(images)

	// The oversize picture keeps a column of its own.
	assert.Equal(t, []image.Point{image.Pt(0, 0), image.Pt(10, 0)}, l.Positions)
	assert.Equal(t, 20, l.Width)
}

func TestInferHeight(t *testing.T) {
	tables := []struct {
		name    string
		heights []int
		want    int
	}{
		{"typical screen height", []int{448, 448}, 448},
		{"first prefix sum wins", []int{100, 100, 100}, 100},
		{"later prefix sum", []int{120, 80, 100, 100}, 200},
		{"single picture", []int{37}, 37},
		{"nothing partitions", []int{2, 3, 4, 5, 6, 7, 100}, 127},
		{"no pictures", nil, 0},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			assert.Equal(t, table.want, inferHeight(table.heights))
		})
	}
}

func TestCompose(t *testing.T) {
	a := sizedImage(2, 2)
	for i := range a.Pix {
		a.Pix[i] = 0x11
	}
	b := sizedImage(2, 2)
	for i := range b.Pix {
		b.Pix[i] = 0x22
	}

	c := &Container{TotalHeight: 2}
	images := []*image.RGBA{a, nil, b}

	l := c.Layout(images)
	m := Compose(images, l)

	require.Equal(t, image.Rect(0, 0, 4, 2), m.Bounds())
	assert.Equal(t, uint8(0x11), m.RGBAAt(0, 0).R)
	assert.Equal(t, uint8(0x11), m.RGBAAt(1, 1).R)
	assert.Equal(t, uint8(0x22), m.RGBAAt(2, 0).R)
	assert.Equal(t, uint8(0x22), m.RGBAAt(3, 1).R)
}

func TestComposeDeterministic(t *testing.T) {
	data := chainedFixture(0, 0,
		pictureFixture{colors: 16, format: 4, width: 2, height: 2, pixels: []byte{0x10, 0x32}, palette: flatPalette(16)},
		pictureFixture{colors: 0, format: 3, width: 2, height: 2, pixels: []byte{
			1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
		}},
	)

	render := func() *image.RGBA {
		c, err := Parse(data, ChainedShape)
		require.NoError(t, err)
		images, errs := c.Images()
		for i := range errs {
			require.NoError(t, errs[i], "picture %d", i)
		}
		return Compose(images, c.Layout(images))
	}

	assert.Equal(t, render().Pix, render().Pix)
}
