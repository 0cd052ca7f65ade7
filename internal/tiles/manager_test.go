package tiles

import (
	"image"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantTiles     int
	}{
		{"exact", 128, 64, 2},
		{"edge tiles", 100, 100, 4},
		{"single pixel", 1, 1, 1},
		{"zero", 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.width, tt.height)
			defer m.Close()
			if got := m.TileCount(); got != tt.wantTiles {
				t.Errorf("TileCount() = %d, want %d", got, tt.wantTiles)
			}
		})
	}
}

func TestManager_SetAt(t *testing.T) {
	m := New(100, 100)
	defer m.Close()

	points := []image.Point{{0, 0}, {63, 63}, {64, 64}, {99, 99}, {70, 5}}
	for i, p := range points {
		m.Set(p.X, p.Y, byte(i+1))
	}
	for i, p := range points {
		if got := m.At(p.X, p.Y); got != byte(i+1) {
			t.Errorf("At(%d, %d) = %d, want %d", p.X, p.Y, got, i+1)
		}
	}

	m.Set(-1, 0, 9)
	m.Set(100, 0, 9)
	if got := m.At(-1, 0); got != 0 {
		t.Errorf("At(-1, 0) = %d, want 0", got)
	}
}

func TestManager_Chunks(t *testing.T) {
	m := New(200, 150)
	defer m.Close()

	r := image.Rect(50, 40, 170, 130)
	covered := 0
	for c := range m.Chunks(r, false) {
		if !c.Rect().In(r) {
			t.Errorf("chunk %v escapes %v", c.Rect(), r)
		}
		if c.W > TileWidth || c.H > TileHeight {
			t.Errorf("chunk %v larger than a tile", c.Rect())
		}
		covered += c.W * c.H
	}
	if want := r.Dx() * r.Dy(); covered != want {
		t.Errorf("chunks cover %d pixels, want %d", covered, want)
	}

	// Sequences are restartable and clipped to the canvas.
	n := 0
	for range m.Chunks(image.Rect(-10, -10, 300, 300), false) {
		n++
	}
	if n != m.TileCount() {
		t.Errorf("full iteration yielded %d chunks, want %d", n, m.TileCount())
	}
}

func TestManager_ChunksWritable(t *testing.T) {
	m := New(100, 100)
	defer m.Close()

	for c := range m.Chunks(image.Rect(60, 60, 70, 70), true) {
		for i := range c.H {
			row := c.Row(i)
			for j := range row {
				row[j] = 7
			}
		}
	}
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			want := byte(0)
			if x >= 60 && x < 70 && y >= 60 && y < 70 {
				want = 7
			}
			if got := m.At(x, y); got != want {
				t.Fatalf("At(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
	if got := m.Dirty().Count(); got != 4 {
		t.Errorf("dirty tiles = %d, want 4", got)
	}
}

func TestManager_Fill(t *testing.T) {
	m := New(80, 80)
	defer m.Close()

	m.Fill(image.Rect(-5, 10, 20, 12), 200)
	if got := m.At(0, 10); got != 200 {
		t.Errorf("At(0, 10) = %d, want 200", got)
	}
	if got := m.At(19, 11); got != 200 {
		t.Errorf("At(19, 11) = %d, want 200", got)
	}
	if got := m.At(20, 11); got != 0 {
		t.Errorf("At(20, 11) = %d, want 0", got)
	}
}

func TestManager_RowCol(t *testing.T) {
	m := New(150, 150)
	defer m.Close()

	row := make([]byte, 100)
	for i := range row {
		row[i] = byte(i + 1)
	}
	m.SetRow(30, 70, row)

	got := make([]byte, 100)
	m.Row(30, 70, got)
	for i := range got {
		if got[i] != row[i] {
			t.Fatalf("Row()[%d] = %d, want %d", i, got[i], row[i])
		}
	}

	col := make([]byte, 90)
	for i := range col {
		col[i] = byte(200 - i)
	}
	m.SetCol(65, 20, col)
	gotCol := make([]byte, 90)
	m.Col(65, 20, gotCol)
	for i := range gotCol {
		if gotCol[i] != col[i] {
			t.Fatalf("Col()[%d] = %d, want %d", i, gotCol[i], col[i])
		}
	}
}

func TestManager_CloneCopyOnWrite(t *testing.T) {
	m := New(100, 100)
	defer m.Close()
	m.Set(10, 10, 50)
	m.ClearDirty()

	c := m.Clone()
	if !c.Equal(m) {
		t.Fatal("clone differs from original")
	}

	c.Set(10, 10, 99)
	if got := m.At(10, 10); got != 50 {
		t.Errorf("original At(10, 10) = %d after clone write, want 50", got)
	}
	if got := c.At(10, 10); got != 99 {
		t.Errorf("clone At(10, 10) = %d, want 99", got)
	}

	m.Set(90, 90, 1)
	if got := c.At(90, 90); got != 0 {
		t.Errorf("clone At(90, 90) = %d after original write, want 0", got)
	}

	c.Close()
	if got := m.At(10, 10); got != 50 {
		t.Errorf("original At(10, 10) = %d after clone Close, want 50", got)
	}
}

func TestCopyAndCrop(t *testing.T) {
	src := New(50, 50)
	defer src.Close()
	src.Fill(image.Rect(10, 10, 20, 20), 255)

	crop := src.Crop(image.Rect(5, 5, 25, 25))
	defer crop.Close()
	if crop.Width() != 20 || crop.Height() != 20 {
		t.Fatalf("Crop size = %dx%d, want 20x20", crop.Width(), crop.Height())
	}
	if got := crop.At(5, 5); got != 255 {
		t.Errorf("crop At(5, 5) = %d, want 255", got)
	}
	if got := crop.At(4, 4); got != 0 {
		t.Errorf("crop At(4, 4) = %d, want 0", got)
	}

	dst := New(30, 30)
	defer dst.Close()
	Copy(dst, image.Pt(25, 25), src, image.Rect(10, 10, 20, 20))
	if got := dst.At(29, 29); got != 255 {
		t.Errorf("dst At(29, 29) = %d, want 255", got)
	}
	if got := dst.At(24, 24); got != 0 {
		t.Errorf("dst At(24, 24) = %d, want 0", got)
	}
}

func TestManager_Equal(t *testing.T) {
	a := New(10, 10)
	b := New(10, 10)
	c := New(10, 11)
	defer a.Close()
	defer b.Close()
	defer c.Close()

	if !a.Equal(b) {
		t.Error("zeroed managers should be equal")
	}
	if a.Equal(c) {
		t.Error("managers of different size should differ")
	}
	b.Set(3, 3, 1)
	if a.Equal(b) {
		t.Error("managers with different pixels should differ")
	}
}
