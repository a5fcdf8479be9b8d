// SPDX-License-Identifier: MIT

// Package lie - unit quaternion helpers over gonum num/quat.
//
// Storage order is [qx, qy, qz, qw]; gonum's quat.Number keeps the scalar
// part in Real.

package lie

import (
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/lietensor/matrix"
)

// loadQuat reads [x, y, z, w] from s.
func loadQuat(s []float64) quat.Number {
	return quat.Number{Real: s[3], Imag: s[0], Jmag: s[1], Kmag: s[2]}
}

// storeQuat writes q as [x, y, z, w] into dst.
func storeQuat(q quat.Number, dst []float64) {
	dst[0], dst[1], dst[2], dst[3] = q.Imag, q.Jmag, q.Kmag, q.Real
}

// quatVec returns the vector part of q.
func quatVec(q quat.Number) matrix.Vec3 { return matrix.Vec3{q.Imag, q.Jmag, q.Kmag} }

// quatFrom builds a quaternion from a vector part and a scalar part.
func quatFrom(v matrix.Vec3, w float64) quat.Number {
	return quat.Number{Real: w, Imag: v[0], Jmag: v[1], Kmag: v[2]}
}

// rotate returns q·v·q* for a unit quaternion q.
func rotate(q quat.Number, v matrix.Vec3) matrix.Vec3 {
	p := quat.Number{Imag: v[0], Jmag: v[1], Kmag: v[2]}
	return quatVec(quat.Mul(quat.Mul(q, p), quat.Conj(q)))
}

// rotateInv returns q*·v·q, the inverse rotation.
func rotateInv(q quat.Number, v matrix.Vec3) matrix.Vec3 { return rotate(quat.Conj(q), v) }

// rotationMatrix returns the 3×3 rotation matrix of a unit quaternion.
func rotationMatrix(q quat.Number) matrix.Mat3 {
	x, y, z, w := q.Imag, q.Jmag, q.Kmag, q.Real
	return matrix.Mat3{
		{1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w)},
		{2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w)},
		{2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y)},
	}
}
