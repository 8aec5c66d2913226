// Command uci is a line-oriented engine control front-end: it reads
// commands from stdin and writes protocol replies to stdout, grounded on
// the teacher's uci.go bufio.Scanner dispatch loop, reduced to the command
// table spec.md §6 names (no time-control parsing, no eval-weight tuning
// options).
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"chessgoose/engine"
	gm "chessgoose/goosemg"
)

const defaultDepth = 6

func main() {
	os.Exit(run())
}

func run() int {
	scanner := bufio.NewScanner(os.Stdin)
	board, err := gm.ParseFEN(gm.FENStartPos)
	if err != nil {
		log.Fatalf("uci: could not build initial position: %v", err)
	}
	eng := engine.NewEngine()
	depth := defaultDepth

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "uci":
			fmt.Println("id name chessgoose")
			fmt.Println("id author chessgoose")
			fmt.Println("option name Depth type spin default", defaultDepth, "min 1 max 64")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "setoption":
			if len(fields) < 2 {
				log.Println("uci: malformed setoption command:", line)
				continue
			}
			v, err := strconv.Atoi(fields[len(fields)-1])
			if err != nil || v <= 0 || v > 64 {
				log.Println("uci: setoption depth must be an integer from 1 to 64:", line)
				continue
			}
			depth = v
		case "ucinewgame":
			board, err = gm.ParseFEN(gm.FENStartPos)
			if err != nil {
				log.Fatalf("uci: could not reset to initial position: %v", err)
			}
			eng.Reset()
		case "position":
			b, err := parsePosition(fields)
			if err != nil {
				log.Println("uci:", err)
				continue
			}
			board = b
		case "go":
			result := eng.IterativeDeepening(board, depth)
			fmt.Println("bestmove", result.Best.String())
		case "stop":
			// No background search runs outside a "go" call, so there is
			// nothing to interrupt.
		case "quit":
			return 0
		default:
			log.Println("uci: unknown command:", line)
		}
	}
	return 0
}

// parsePosition handles "position startpos [moves ...]" and
// "position fen <fen fields> [moves ...]".
func parsePosition(fields []string) (*gm.Board, error) {
	if len(fields) < 2 {
		return nil, fmt.Errorf("malformed position command")
	}
	var board *gm.Board
	var rest []string

	switch fields[1] {
	case "startpos":
		b, err := gm.ParseFEN(gm.FENStartPos)
		if err != nil {
			return nil, err
		}
		board = b
		rest = fields[2:]
	case "fen":
		i := 2
		for i < len(fields) && fields[i] != "moves" {
			i++
		}
		if i == 2 {
			return nil, fmt.Errorf("malformed position fen command")
		}
		b, err := gm.ParseFEN(strings.Join(fields[2:i], " "))
		if err != nil {
			return nil, err
		}
		board = b
		rest = fields[i:]
	default:
		return nil, fmt.Errorf("invalid position subcommand: %s", fields[1])
	}

	if len(rest) > 0 && rest[0] == "moves" {
		for _, moveStr := range rest[1:] {
			m, err := gm.ParseMoveString(board, moveStr)
			if err != nil {
				return nil, err
			}
			if !board.PushMove(m) {
				return nil, fmt.Errorf("illegal move %q", moveStr)
			}
		}
	}
	return board, nil
}
