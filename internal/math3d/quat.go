package math3d

import "math"

// Quat is a rotation quaternion, W first.
type Quat struct {
	W, X, Y, Z float64
}

// QuatIdent returns the identity rotation.
func QuatIdent() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle returns the rotation of angle radians around axis.
// The axis does not need to be normalized.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	a := axis.Normalized()
	s, c := math.Sincos(angle / 2)
	return Quat{c, a.X * s, a.Y * s, a.Z * s}
}

// Mul returns the composition q·p: p applied first, then q.
func (q Quat) Mul(p Quat) Quat {
	return Quat{
		q.W*p.W - q.X*p.X - q.Y*p.Y - q.Z*p.Z,
		q.W*p.X + q.X*p.W + q.Y*p.Z - q.Z*p.Y,
		q.W*p.Y - q.X*p.Z + q.Y*p.W + q.Z*p.X,
		q.W*p.Z + q.X*p.Y - q.Y*p.X + q.Z*p.W,
	}
}

// Conjugate returns the conjugate of q. For unit quaternions this is the
// inverse rotation.
func (q Quat) Conjugate() Quat {
	return Quat{q.W, -q.X, -q.Y, -q.Z}
}

// Normalized returns q scaled to unit length. A degenerate quaternion
// normalizes to identity.
func (q Quat) Normalized() Quat {
	l := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if l < 1e-12 {
		return QuatIdent()
	}
	return Quat{q.W / l, q.X / l, q.Y / l, q.Z / l}
}

// Rotate applies the rotation q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	// q · (0,v) · q*
	u := Vec3{q.X, q.Y, q.Z}
	uv := u.Cross(v)
	uuv := u.Cross(uv)
	return v.Add(uv.Scale(2 * q.W)).Add(uuv.Scale(2))
}

// NearRotation reports whether q and p represent the same rotation within
// tol, ignoring the sign ambiguity of quaternions.
func (q Quat) NearRotation(p Quat, tol float64) bool {
	d := math.Abs(q.W*p.W + q.X*p.X + q.Y*p.Y + q.Z*p.Z)
	return 1-d <= tol
}

// Mat3 is a 3x3 rotation matrix, indexed [row][col].
type Mat3 [3][3]float64

// Mat3FromQuat converts a unit quaternion to its rotation matrix.
func Mat3FromQuat(q Quat) Mat3 {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	return Mat3{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	}
}

// QuatFromMat3 converts a rotation matrix to a unit quaternion using the
// Shepperd method, branching on the largest diagonal term for stability.
func QuatFromMat3(m Mat3) Quat {
	tr := m[0][0] + m[1][1] + m[2][2]
	var q Quat
	switch {
	case tr > 0:
		s := math.Sqrt(tr+1) * 2
		q = Quat{
			s / 4,
			(m[2][1] - m[1][2]) / s,
			(m[0][2] - m[2][0]) / s,
			(m[1][0] - m[0][1]) / s,
		}
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := math.Sqrt(1+m[0][0]-m[1][1]-m[2][2]) * 2
		q = Quat{
			(m[2][1] - m[1][2]) / s,
			s / 4,
			(m[0][1] + m[1][0]) / s,
			(m[0][2] + m[2][0]) / s,
		}
	case m[1][1] > m[2][2]:
		s := math.Sqrt(1+m[1][1]-m[0][0]-m[2][2]) * 2
		q = Quat{
			(m[0][2] - m[2][0]) / s,
			(m[0][1] + m[1][0]) / s,
			s / 4,
			(m[1][2] + m[2][1]) / s,
		}
	default:
		s := math.Sqrt(1+m[2][2]-m[0][0]-m[1][1]) * 2
		q = Quat{
			(m[1][0] - m[0][1]) / s,
			(m[0][2] + m[2][0]) / s,
			(m[1][2] + m[2][1]) / s,
			s / 4,
		}
	}
	return q.Normalized()
}

// TrackQuat returns the rotation whose local -Z axis points along forward,
// with the local Y axis kept as close to world +Z as the forward direction
// allows. This matches the track-to convention used for lights and cameras.
// A zero forward vector yields the identity rotation.
func TrackQuat(forward Vec3) Quat {
	f := forward.Normalized()
	if f.Len() < 1e-12 {
		return QuatIdent()
	}

	zAxis := f.Scale(-1)

	// Up hint: world +Z projected off the view axis. When looking straight
	// up or down that projection vanishes, fall back to world +Y.
	up := Vec3{0, 0, 1}
	yAxis := up.Sub(zAxis.Scale(up.Dot(zAxis)))
	if yAxis.Len() < 1e-6 {
		hint := Vec3{0, 1, 0}
		yAxis = hint.Sub(zAxis.Scale(hint.Dot(zAxis)))
	}
	yAxis = yAxis.Normalized()
	xAxis := yAxis.Cross(zAxis)

	return QuatFromMat3(Mat3{
		{xAxis.X, yAxis.X, zAxis.X},
		{xAxis.Y, yAxis.Y, zAxis.Y},
		{xAxis.Z, yAxis.Z, zAxis.Z},
	})
}
