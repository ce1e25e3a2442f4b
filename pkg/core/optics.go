package core

import "math"

// Reflect returns the reflection of v about a surface with normal n:
// r = v - 2*dot(v,n)*n. n must be unit length.
func Reflect(v, n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends uv (unit length, pointing into the surface) across a
// boundary with normal n (unit length, pointing against uv) using
// Snell's law, given etaRatio = eta_incident / eta_transmitted. Callers
// must have already ruled out total internal reflection.
func Refract(uv, n Vec3, etaRatio float64) Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}
