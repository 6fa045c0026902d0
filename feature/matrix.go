package feature

// Matrix is a feature matrix laid out as [frame][channel].
type Matrix [][]float32

// Frames returns the length of the time axis.
func (m Matrix) Frames() int {
	return len(m)
}

// Channels returns the number of mel bands or coefficients per frame.
func (m Matrix) Channels() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Reverse flips the time axis in place.
func (m Matrix) Reverse() {
	for i, j := 0, len(m)-1; i < j; i, j = i+1, j-1 {
		m[i], m[j] = m[j], m[i]
	}
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]float32(nil), row...)
	}
	return out
}

// Flatten converts [T][C] to a flat row-major [T*C] slice.
func (m Matrix) Flatten() []float32 {
	if len(m) == 0 {
		return nil
	}
	cols := m.Channels()
	flat := make([]float32, len(m)*cols)
	for t, row := range m {
		copy(flat[t*cols:], row)
	}
	return flat
}

func toMatrix(buf [][]float64) Matrix {
	out := make(Matrix, len(buf))
	for i, row := range buf {
		out[i] = make([]float32, len(row))
		for j, v := range row {
			out[i][j] = float32(v)
		}
	}
	return out
}
