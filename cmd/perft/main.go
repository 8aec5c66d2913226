// Command perft counts legal move-tree leaf nodes from a FEN position,
// grounded on the teacher's cmd/perft/main.go flag-based driver.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	gm "chessgoose/goosemg"
)

func main() {
	fen := flag.String("fen", gm.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := gm.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		type kv struct {
			move gm.Move
			n    uint64
		}
		var arr []kv
		var sum uint64
		for _, m := range board.GenerateLegalMoves().Moves {
			if !board.PushMove(m) {
				continue
			}
			n := board.Perft(*depth - 1)
			board.PopMove()
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].move.String() < arr[j].move.String() })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.move.String(), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += board.Perft(*depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}
