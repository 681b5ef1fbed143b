package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translate(V3(0, -0.2, -3))
	m2 := RotateY(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkTransformPoint(b *testing.B) {
	m := Translate(V3(0, -0.2, -3)).Mul(RotateY(0.5))
	v := V3(0.5, 0.6, -0.5)

	for b.Loop() {
		_ = m.TransformPoint(v)
	}
}

func BenchmarkMat4MulVec4(b *testing.B) {
	m := Translate(V3(0, -0.2, -3)).Mul(RotateY(0.5))
	v := V4(0.5, 0.6, -0.5, 1)

	for b.Loop() {
		_ = m.MulVec4(v)
	}
}

func BenchmarkPerspective(b *testing.B) {
	for b.Loop() {
		_ = Perspective(0.785, 1.333, 0.1, 100.0)
	}
}
