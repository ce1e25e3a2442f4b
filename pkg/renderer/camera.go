package renderer

import (
	"math"

	"github.com/arcweave/pathtracer/pkg/core"
)

// CameraConfig describes a thin-lens camera before it's built: where
// it looks from and at, its up vector, vertical field of view in
// degrees, the image aspect ratio, the lens aperture, the focus
// distance, and the shutter interval [Time0, Time1] used for motion
// blur.
type CameraConfig struct {
	LookFrom, LookAt, ViewUp core.Vec3
	VFov                     float64
	AspectRatio              float64
	Aperture                 float64
	FocusDistance            float64
	Time0, Time1             float64
}

// Validate reports the first invalid camera parameter, as a
// *core.ConfigurationError, or nil.
func (c CameraConfig) Validate() error {
	if c.VFov <= 0 || c.VFov >= 180 {
		return &core.ConfigurationError{Field: "VFov", Reason: "must be in (0, 180) degrees"}
	}
	if c.AspectRatio <= 0 {
		return &core.ConfigurationError{Field: "AspectRatio", Reason: "must be > 0"}
	}
	if c.Aperture < 0 {
		return &core.ConfigurationError{Field: "Aperture", Reason: "must be >= 0"}
	}
	if c.FocusDistance <= 0 {
		return &core.ConfigurationError{Field: "FocusDistance", Reason: "must be > 0"}
	}
	if c.Time1 < c.Time0 {
		return &core.ConfigurationError{Field: "Time1", Reason: "must be >= Time0"}
	}
	return nil
}

// Camera generates thin-lens rays, sampling the aperture for depth of
// field and the shutter interval for motion blur.
type Camera struct {
	origin                   core.Vec3
	lowerLeftCorner          core.Vec3
	horizontal, vertical     core.Vec3
	u, v, w                  core.Vec3
	lensRadius               float64
	time0, time1             float64
}

// NewCamera builds a Camera from a validated CameraConfig.
func NewCamera(cfg CameraConfig) (*Camera, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	theta := cfg.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2.0)
	viewportHeight := 2.0 * halfHeight
	viewportWidth := cfg.AspectRatio * viewportHeight

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.ViewUp.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(cfg.FocusDistance * viewportWidth)
	vertical := v.Multiply(cfg.FocusDistance * viewportHeight)
	lowerLeftCorner := cfg.LookFrom.
		Subtract(horizontal.Divide(2)).
		Subtract(vertical.Divide(2)).
		Subtract(w.Multiply(cfg.FocusDistance))

	return &Camera{
		origin:          cfg.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      cfg.Aperture / 2.0,
		time0:           cfg.Time0,
		time1:           cfg.Time1,
	}, nil
}

// GetRay generates a ray through screen coordinates (s, t) in [0, 1],
// sampling the lens disk for depth of field and the shutter interval
// for the ray's time. The returned direction is intentionally not
// normalized.
func (c *Camera) GetRay(s, t float64, random *core.RNG) core.Ray {
	rd := random.InUnitDisk().Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := random.FloatRange(c.time0, c.time1)
	return core.NewRayAtTime(origin, direction, time)
}
