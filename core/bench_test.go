package core_test

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tholvien/hemesh/core"
)

func BenchmarkConnectPairs(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m, _ := buildOcta(b)
		for _, e := range m.Edges() {
			e.SetPair(core.EdgePtr{})
		}
		b.StartTimer()
		if err := core.ConnectPairs(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTriangulateFace(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m, _ := buildTetra(b)
		f := m.Faces()[0]
		b.StartTimer()
		if err := m.TriangulateFace(r3.Vec{X: 0, Y: -0.4, Z: 0.4}, f); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAttachPoint(b *testing.B) {
	point := r3.Vec{X: 0, Y: 0, Z: 3}
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m, _ := buildOcta(b)
		var visible []*core.Face
		for _, f := range m.Faces() {
			if f.CanSee(point) {
				visible = append(visible, f)
			}
		}
		b.StartTimer()
		if _, err := m.AttachPoint(point, visible); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVertAdjacentEdges(b *testing.B) {
	m, vs := buildOcta(b)
	_ = m
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range vs[1].AdjacentEdges() {
			n++
		}
		if n != 4 {
			b.Fatal("ring length", n)
		}
	}
}
