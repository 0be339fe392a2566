package math

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ortho returns an orthographic projection matrix.
// left, right, bottom, top define the view frustum boundaries.
// near and far define the depth range.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	rl := 1.0 / (right - left)
	tb := 1.0 / (top - bottom)
	fn := 1.0 / (far - near)

	return Mat4{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	}
}

// ScreenOrtho maps pixel coordinates with the origin at the top-left corner
// and y pointing down onto clip space.
func ScreenOrtho(width, height float32) Mat4 {
	return Ortho(0, width, height, 0, -1, 1)
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			result[col*4+row] = sum
		}
	}
	return result
}

// TransformPoint2 transforms a 2D point (z=0, w=1) and returns x and y.
func (m Mat4) TransformPoint2(p Vec2) Vec2 {
	return Vec2{
		m[0]*p.X + m[4]*p.Y + m[12],
		m[1]*p.X + m[5]*p.Y + m[13],
	}
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}
