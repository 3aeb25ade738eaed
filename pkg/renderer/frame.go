package renderer

import (
	"image"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// Frame is a dense row-major RGB pixel buffer, three bytes per pixel
type Frame struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// Bounds returns the pixel rectangle of the frame
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// PixOffset returns the index of the red byte of pixel (x, y)
func (f *Frame) PixOffset(x, y int) int {
	return (y*f.Width + x) * 3
}

// SetRGB stores one pixel
func (f *Frame) SetRGB(x, y int, rgb [3]uint8) {
	i := f.PixOffset(x, y)
	f.Pix[i] = rgb[0]
	f.Pix[i+1] = rgb[1]
	f.Pix[i+2] = rgb[2]
}

// RGB returns one pixel
func (f *Frame) RGB(x, y int) [3]uint8 {
	i := f.PixOffset(x, y)
	return [3]uint8{f.Pix[i], f.Pix[i+1], f.Pix[i+2]}
}

// ToneMap converts a linear color to display bytes: gamma correct, clamp to
// [0, 1], scale to 255 and truncate.
func ToneMap(color core.Vec3, gamma float64) [3]uint8 {
	corrected := color.GammaCorrect(gamma)
	return [3]uint8{
		channelByte(corrected.X),
		channelByte(corrected.Y),
		channelByte(corrected.Z),
	}
}

// channelByte truncates a gamma corrected channel to a byte. NaN, which
// negative input produces, maps to 0.
func channelByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of the
// frame's bytes, in [0, 1]
func CalculateAverageLuminance(f *Frame) float64 {
	pixels := f.Width * f.Height
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for i := 0; i+2 < len(f.Pix); i += 3 {
		r := float64(f.Pix[i]) / 255
		g := float64(f.Pix[i+1]) / 255
		b := float64(f.Pix[i+2]) / 255
		total += 0.2126*r + 0.7152*g + 0.0722*b
	}
	return total / float64(pixels)
}
