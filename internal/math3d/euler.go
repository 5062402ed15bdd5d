package math3d

import "math"

// EulerOrder identifies one of the six Tait-Bryan rotation orders. Orders
// are extrinsic: OrderXYZ rotates about world X first, then Y, then Z.
type EulerOrder int

const (
	OrderXYZ EulerOrder = iota
	OrderXZY
	OrderYXZ
	OrderYZX
	OrderZXY
	OrderZYX
)

var orderNames = [...]string{"XYZ", "XZY", "YXZ", "YZX", "ZXY", "ZYX"}

func (o EulerOrder) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return "XYZ"
	}
	return orderNames[o]
}

// ParseEulerOrder returns the order named by s, defaulting to XYZ.
func ParseEulerOrder(s string) (EulerOrder, bool) {
	for i, n := range orderNames {
		if n == s {
			return EulerOrder(i), true
		}
	}
	return OrderXYZ, false
}

// axes returns the rotation axis indices in application order and the
// parity sign of the permutation (+1 for even, -1 for odd).
func (o EulerOrder) axes() (i, j, k int, eps float64) {
	switch o {
	case OrderXZY:
		return 0, 2, 1, -1
	case OrderYXZ:
		return 1, 0, 2, -1
	case OrderYZX:
		return 1, 2, 0, 1
	case OrderZXY:
		return 2, 0, 1, 1
	case OrderZYX:
		return 2, 1, 0, -1
	default:
		return 0, 1, 2, 1
	}
}

// Euler is a rotation expressed as angles (radians) about the world X, Y
// and Z axes, applied in Order.
type Euler struct {
	X     float64    `yaml:"x"`
	Y     float64    `yaml:"y"`
	Z     float64    `yaml:"z"`
	Order EulerOrder `yaml:"-"`
}

var axisVecs = [3]Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

func (e Euler) angle(axis int) float64 {
	switch axis {
	case 0:
		return e.X
	case 1:
		return e.Y
	default:
		return e.Z
	}
}

func (e *Euler) setAngle(axis int, v float64) {
	switch axis {
	case 0:
		e.X = v
	case 1:
		e.Y = v
	default:
		e.Z = v
	}
}

// ToQuat converts e to the equivalent quaternion.
func (e Euler) ToQuat() Quat {
	i, j, k, _ := e.Order.axes()
	q := QuatIdent()
	for _, axis := range [3]int{i, j, k} {
		q = QuatFromAxisAngle(axisVecs[axis], e.angle(axis)).Mul(q)
	}
	return q.Normalized()
}

// EulerFromQuat factors q into Tait-Bryan angles for the given order.
// At gimbal lock (middle angle ±90°) the third angle is fixed at zero.
func EulerFromQuat(q Quat, order EulerOrder) Euler {
	m := Mat3FromQuat(q.Normalized())
	i, j, k, eps := order.axes()

	e := Euler{Order: order}
	cy := math.Hypot(m[i][i], m[j][i])
	if cy > 1e-8 {
		e.setAngle(i, math.Atan2(eps*m[k][j], m[k][k]))
		e.setAngle(j, math.Atan2(-eps*m[k][i], cy))
		e.setAngle(k, math.Atan2(eps*m[j][i], m[i][i]))
	} else {
		e.setAngle(i, math.Atan2(-eps*m[j][k], m[j][j]))
		e.setAngle(j, math.Atan2(-eps*m[k][i], cy))
		e.setAngle(k, 0)
	}
	return e
}
