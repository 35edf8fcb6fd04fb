package sprig

// Matrix is a 2D affine matrix [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Matrix [6]float64

// IdentityMatrix leaves points unchanged.
var IdentityMatrix = Matrix{1, 0, 0, 1, 0, 0}

// ScaleTranslate builds the matrix for p' = p*scale + offset.
func ScaleTranslate(scale, offset Vec2) Matrix {
	return Matrix{scale.X, 0, 0, scale.Y, offset.X, offset.Y}
}

// Multiply returns m * c, the matrix that applies c first and then m.
func (m Matrix) Multiply(c Matrix) Matrix {
	return Matrix{
		m[0]*c[0] + m[2]*c[1],
		m[1]*c[0] + m[3]*c[1],
		m[0]*c[2] + m[2]*c[3],
		m[1]*c[2] + m[3]*c[3],
		m[0]*c[4] + m[2]*c[5] + m[4],
		m[1]*c[4] + m[3]*c[5] + m[5],
	}
}

// Invert computes the inverse of m.
// Returns the identity matrix if m is singular (determinant ≈ 0).
func (m Matrix) Invert() Matrix {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityMatrix
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms p by m.
func (m Matrix) Apply(p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// MatrixSpace is a Space whose ToParent is affine. Chains made only of
// MatrixSpaces under a MatrixRoot can be flattened into one matrix, which is
// how drawables convert long point lists.
type MatrixSpace interface {
	Space
	// ParentMatrix returns the matrix equivalent of ToParent.
	ParentMatrix() Matrix
}

// MatrixRoot is a root Frame whose ToPixel is affine.
type MatrixRoot interface {
	Frame
	PixelMatrix() Matrix
}

// PixelMatrix flattens the chain from f to the root into a single
// local-to-pixel matrix. It reports false if any link is not affine.
func PixelMatrix(f Frame) (Matrix, bool) {
	switch s := f.(type) {
	case MatrixSpace:
		parent := s.Parent()
		if parent == nil {
			return Matrix{}, false
		}
		pm, ok := PixelMatrix(parent)
		if !ok {
			return Matrix{}, false
		}
		return pm.Multiply(s.ParentMatrix()), true
	case MatrixRoot:
		return s.PixelMatrix(), true
	default:
		return Matrix{}, false
	}
}

// ToPixels converts every point in src from f's local space to pixels,
// writing into dst (grown as needed) and returning it. When the chain is
// affine the matrix is composed once; otherwise each point walks the chain.
func ToPixels(f Frame, src, dst []Vec2) []Vec2 {
	if cap(dst) < len(src) {
		dst = make([]Vec2, len(src))
	}
	dst = dst[:len(src)]
	if m, ok := PixelMatrix(f); ok {
		for i, p := range src {
			dst[i] = m.Apply(p)
		}
		return dst
	}
	for i, p := range src {
		dst[i] = f.ToPixel(p)
	}
	return dst
}
