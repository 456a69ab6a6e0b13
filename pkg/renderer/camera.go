package renderer

import "github.com/df07/go-bounce-pathtracer/pkg/core"

// Camera is a pinhole at Eye looking down -Z through a screen plane at
// z = ScreenZ that spans [-1,1] x [-1,1].
type Camera struct {
	Eye     core.Vec3
	ScreenZ float64
}

// DefaultCamera returns the camera framing the 2x2x2 bounce box
func DefaultCamera() Camera {
	return Camera{
		Eye:     core.NewVec3(0, 0, 4.0),
		ScreenZ: 1.1,
	}
}

// GetRay returns the primary ray through screen point (x, y). The ray starts
// on the screen plane, not at the eye.
func (c Camera) GetRay(x, y float64) core.Ray {
	coord := core.NewVec3(x, y, c.ScreenZ)
	return core.NewRay(coord, coord.Subtract(c.Eye).Normalize())
}

// ScreenPoint maps pixel (col, row) of a width x height image to screen
// coordinates, row 0 at the top, with a sub-pixel jitter (ju, jv) in [0,1).
func ScreenPoint(col, row, width, height int, ju, jv float64) (float64, float64) {
	x := 2.0*float64(col)/float64(width) - 1.0
	y := 2.0*float64(height-row)/float64(height) - 1.0
	x += (ju - 0.5) / float64(width)
	y += (jv - 0.5) / float64(height)
	return x, y
}
