package models

// The SpotLED matrix is a fixed 48x12 monochrome display.
const (
	GridWidth  = 48
	GridHeight = 12
)

// Frame is one still image of an animation: a GridHeight x GridWidth grid of
// on/off pixels. The zero value is a blank frame.
type Frame struct {
	px [GridHeight][GridWidth]bool
}

func NewFrame() *Frame {
	return &Frame{}
}

func (f *Frame) Get(x, y int) bool {
	if x < 0 || x >= GridWidth || y < 0 || y >= GridHeight {
		return false
	}
	return f.px[y][x]
}

// Set turns the pixel at (x, y) on or off. Out-of-grid coordinates are
// ignored. It reports whether the pixel actually changed.
func (f *Frame) Set(x, y int, on bool) bool {
	if x < 0 || x >= GridWidth || y < 0 || y >= GridHeight {
		return false
	}
	if f.px[y][x] == on {
		return false
	}
	f.px[y][x] = on
	return true
}

func (f *Frame) Clear() {
	f.px = [GridHeight][GridWidth]bool{}
}

func (f *Frame) Invert() {
	for y := 0; y < GridHeight; y++ {
		for x := 0; x < GridWidth; x++ {
			f.px[y][x] = !f.px[y][x]
		}
	}
}

func (f *Frame) MirrorHorizontal() {
	for y := 0; y < GridHeight; y++ {
		for x := 0; x < GridWidth/2; x++ {
			f.px[y][x], f.px[y][GridWidth-1-x] = f.px[y][GridWidth-1-x], f.px[y][x]
		}
	}
}

func (f *Frame) MirrorVertical() {
	for y := 0; y < GridHeight/2; y++ {
		f.px[y], f.px[GridHeight-1-y] = f.px[GridHeight-1-y], f.px[y]
	}
}

// Shift moves every pixel by (dx, dy). Pixels shifted past the edge are
// discarded, vacated cells become off.
func (f *Frame) Shift(dx, dy int) {
	var shifted [GridHeight][GridWidth]bool
	for y := 0; y < GridHeight; y++ {
		srcY := y - dy
		if srcY < 0 || srcY >= GridHeight {
			continue
		}
		for x := 0; x < GridWidth; x++ {
			srcX := x - dx
			if srcX >= 0 && srcX < GridWidth && f.px[srcY][srcX] {
				shifted[y][x] = true
			}
		}
	}
	f.px = shifted
}

// Blit overlays buf onto the frame with its top-left corner at
// (offsetX, offsetY). Cells covered by buf take its values, on and off
// alike; the parts of buf outside the grid are dropped.
func (f *Frame) Blit(buf *PixelBuffer, offsetX, offsetY int) {
	if buf == nil {
		return
	}
	for y := 0; y < buf.Height; y++ {
		gy := y + offsetY
		if gy < 0 || gy >= GridHeight {
			continue
		}
		for x := 0; x < buf.Width; x++ {
			gx := x + offsetX
			if gx < 0 || gx >= GridWidth {
				continue
			}
			f.px[gy][gx] = buf.Pixels[y][x]
		}
	}
}

func (f *Frame) Clone() *Frame {
	clone := &Frame{}
	clone.px = f.px
	return clone
}

func (f *Frame) Equal(other *Frame) bool {
	if other == nil {
		return false
	}
	return f.px == other.px
}

// Rows renders the frame as GridHeight strings of '1'/'0' runes, the
// representation used by the project file and the device bitmap packer.
func (f *Frame) Rows() []string {
	rows := make([]string, GridHeight)
	buf := make([]byte, GridWidth)
	for y := 0; y < GridHeight; y++ {
		for x := 0; x < GridWidth; x++ {
			if f.px[y][x] {
				buf[x] = '1'
			} else {
				buf[x] = '0'
			}
		}
		rows[y] = string(buf)
	}
	return rows
}

// FrameFromRows is the inverse of Rows. Every row must be exactly GridWidth
// characters and there must be exactly GridHeight rows.
func FrameFromRows(rows []string) (*Frame, error) {
	if len(rows) != GridHeight {
		return nil, &ValidationError{Field: "frames", Reason: "invalid frame height"}
	}
	f := &Frame{}
	for y, row := range rows {
		if len(row) != GridWidth {
			return nil, &ValidationError{Field: "frames", Reason: "invalid frame width"}
		}
		for x, c := range row {
			f.px[y][x] = c == '1'
		}
	}
	return f, nil
}

// PixelBuffer is a variable-size pixel grid, used for imported images and
// font glyphs before they are placed onto a Frame.
type PixelBuffer struct {
	Width  int
	Height int
	Pixels [][]bool
}

func NewPixelBuffer(width, height int) *PixelBuffer {
	px := make([][]bool, height)
	for y := range px {
		px[y] = make([]bool, width)
	}
	return &PixelBuffer{Width: width, Height: height, Pixels: px}
}
