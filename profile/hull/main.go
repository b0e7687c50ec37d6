// Profiling:
// go build ./profile/hull
// go tool pprof -http=":8000" -nodefraction=0.001 ./hull cpu.pprof

package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/pkg/profile"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tholvien/hemesh/core"
	"github.com/tholvien/hemesh/hull"
)

func main() {
	n := flag.Int("n", 2000, "points in the cloud")
	rounds := flag.Int("rounds", 20, "hull builds per run")
	mode := flag.String("profile", "cpu", "profile mode: cpu or mem")
	flag.Parse()

	var p interface{ Stop() }
	switch *mode {
	case "cpu":
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		p = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		log.Fatalf("unknown profile mode %q", *mode)
	}
	m := run(*rounds, *n)
	p.Stop()

	fmt.Printf("hull of %d points: %d verts, %d half-edges, %d faces\n",
		*n, m.VertCount(), m.EdgeCount(), m.FaceCount())
}

func run(rounds, n int) (last *core.Mesh) {
	// Fixed seed keeps runs comparable. Points on a sphere force every
	// point onto the hull, the heaviest case for the attach path.
	rng := rand.New(rand.NewSource(1))
	pts := make([]r3.Vec, n)
	for i := range pts {
		pts[i] = r3.Unit(r3.Vec{
			X: rng.NormFloat64(),
			Y: rng.NormFloat64(),
			Z: rng.NormFloat64(),
		})
	}

	for range rounds {
		m, err := hull.Build(pts)
		if err != nil {
			log.Fatalf("hull build: %v", err)
		}
		last = m
	}

	return last
}
