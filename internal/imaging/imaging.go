// Package imaging converts raster images into on/off pixel buffers for the
// display grid.
package imaging

import (
	"fmt"
	"os"

	"gocv.io/x/gocv"

	"github.com/ordigital/spotled-gui/internal/models"
)

const (
	lightnessThreshold = 128
	alphaThreshold     = 128
)

// LoadFile decodes an image file and binarizes it: a pixel is lit when its
// HSL lightness reaches the threshold, and transparent pixels stay dark.
func LoadFile(path string) (*models.PixelBuffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return Decode(data)
}

// Decode binarizes encoded image bytes.
func Decode(data []byte) (*models.PixelBuffer, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadUnchanged)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	defer mat.Close()
	if mat.Empty() {
		return nil, fmt.Errorf("image contains no pixel data")
	}
	return binarize(mat)
}

func binarize(mat gocv.Mat) (*models.PixelBuffer, error) {
	channels := mat.Channels()
	if channels != 1 && channels != 3 && channels != 4 {
		return nil, fmt.Errorf("unsupported channel count %d", channels)
	}

	buf := models.NewPixelBuffer(mat.Cols(), mat.Rows())
	for y := 0; y < mat.Rows(); y++ {
		for x := 0; x < mat.Cols(); x++ {
			buf.Pixels[y][x] = pixelOn(mat, x, y, channels)
		}
	}
	return buf, nil
}

func pixelOn(mat gocv.Mat, x, y, channels int) bool {
	if channels == 1 {
		return mat.GetUCharAt(y, x) >= lightnessThreshold
	}

	vec := mat.GetVecbAt(y, x)
	if channels == 4 && vec[3] < alphaThreshold {
		return false
	}
	// OpenCV stores BGR; lightness is the HSL midpoint of the extremes.
	b, g, r := vec[0], vec[1], vec[2]
	return (int(maxByte(r, g, b))+int(minByte(r, g, b)))/2 >= lightnessThreshold
}

func maxByte(a, b, c uint8) uint8 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func minByte(a, b, c uint8) uint8 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
