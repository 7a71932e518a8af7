// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/dthelegend/archtable"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 10000
	rows := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, rows)
	p.Stop()
}

// run exercises Table's row churn: push numRows bundles, then pop them all
// back off, iters times, rounds times. This is the path RawTable.growExact
// and Table's put/take unchecked primitives are on, so it's what
// allocation-count profiling actually needs to see.
func run(rounds, iters, numRows int) {
	for range rounds {
		t := archtable.NewTableForBundle[archtable.Bundle2[comp1, comp2]]()
		for range iters {
			for i := 0; i < numRows; i++ {
				archtable.Push(&t, archtable.Bundle2[comp1, comp2]{
					F1: comp1{V: int64(i)},
					F2: comp2{V: int64(i)},
				})
			}
			for t.Len() > 0 {
				archtable.Pop[archtable.Bundle2[comp1, comp2]](&t)
			}
		}
		t.Close()
	}
}
