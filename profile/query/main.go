// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query mem.prof

package main

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/dthelegend/archtable"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

func main() {
	// CPU Profiling
	f, _ := os.Create("cpu.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	count := 50
	iters := 10000
	rows := 100000
	run(count, iters, rows)

	// Memory Profiling
	memFile, _ := os.Create("mem.prof")
	defer memFile.Close()
	runtime.GC()
	_ = pprof.WriteHeapProfile(memFile)
}

// run exercises Archetype.Apply's column-projection path: build a dynamic
// three-component archetype of numRows rows once, then project down to two
// of the three columns every iteration. comp3 is never touched, the same
// way spec.md §8 scenario 8 leaves Rotation untouched.
func run(rounds, iters, numRows int) {
	for range rounds {
		b := archtable.NewArchetypeBuilder[archtable.Bundle3[comp1, comp2, comp3]]().BuildDynamic()
		archtable.ExtendDefault[archtable.Bundle3[comp1, comp2, comp3]](b.Table(), numRows)

		for range iters {
			archtable.Apply2(&b, func(c1 *comp1, c2 *comp2) {
				c1.V += c2.V
				c1.W += c2.W
			})
		}
	}
}
