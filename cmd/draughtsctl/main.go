// Command draughtsctl is an interactive shell and one-shot CLI driver for
// the draughts engine, in the model's bufio.Scanner command-loop idiom.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"draughts100/board"
	"draughts100/book"
	"draughts100/search"
)

func main() {
	fenFlag := flag.String("fen", "", "position in C:W...:B... FEN-like notation; if set, run one search and exit")
	searchFlag := flag.String("search", "mtd", "search algorithm: mtd, pvf, or ab")
	nodesFlag := flag.Int("nodes", search.MaxNodesDefault, "node budget for the search")
	bookFlag := flag.String("book", "", "Badger directory for the opening book")
	flag.Parse()

	e := search.NewEngine()

	var bk *book.Store
	if *bookFlag != "" {
		var err error
		bk, err = book.Open(*bookFlag)
		if err != nil {
			log.Fatalf("draughtsctl: open book: %v", err)
		}
		defer bk.Close()
	}

	if *fenFlag != "" {
		pos, err := board.ParseFEN(*fenFlag)
		if err != nil {
			log.Fatalf("draughtsctl: %v", err)
		}
		runSearch(e, pos, *searchFlag, *nodesFlag)
		return
	}

	shell(e, bk)
}

func shell(e *search.Engine, bk *book.Store) {
	var pos board.Position
	havePos := false

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "quit":
			return
		case "position":
			p, moves, err := parsePositionCommand(fields[1:])
			if err != nil {
				fmt.Fprintln(os.Stderr, "draughtsctl:", err)
				continue
			}
			for _, tok := range moves {
				steps, err := board.ParseSteps(tok)
				if err != nil {
					fmt.Fprintln(os.Stderr, "draughtsctl:", err)
					break
				}
				m, ok := board.MatchMove(p, steps, e.Cache)
				if !ok {
					fmt.Fprintln(os.Stderr, "draughtsctl: illegal move", tok)
					break
				}
				p = p.DoMove(m)
			}
			pos, havePos = p, true
		case "go":
			if !havePos {
				fmt.Fprintln(os.Stderr, "draughtsctl: no position set")
				continue
			}
			algo, nodes := parseGoCommand(fields[1:])
			runSearch(e, pos, algo, nodes)
		case "book":
			handleBookCommand(bk, pos, havePos, e.Cache, fields[1:])
		default:
			fmt.Fprintln(os.Stderr, "draughtsctl: unknown command", fields[0])
		}
	}
}

func parsePositionCommand(fields []string) (board.Position, []string, error) {
	if len(fields) == 0 {
		return board.Position{}, nil, fmt.Errorf("position: missing board literal")
	}

	literal := fields[0]
	movesIdx := len(fields)
	for i, f := range fields {
		if f == "moves" {
			movesIdx = i
			literal = strings.Join(fields[:i], " ")
			break
		}
	}
	if movesIdx == len(fields) {
		literal = strings.Join(fields, " ")
	}

	var pos board.Position
	var err error
	if strings.Contains(literal, ":") {
		pos, err = board.ParseFEN(literal)
	} else {
		pos, err = board.ParseExtended(literal)
	}
	if err != nil {
		return board.Position{}, nil, err
	}

	var moves []string
	if movesIdx < len(fields) {
		moves = fields[movesIdx+1:]
	}
	return pos, moves, nil
}

func parseGoCommand(fields []string) (algo string, nodes int) {
	algo = "mtd"
	nodes = search.MaxNodesDefault
	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "mtd", "pvf", "ab":
			algo = fields[i]
		case "nodes":
			if i+1 < len(fields) {
				fmt.Sscanf(fields[i+1], "%d", &nodes)
				i++
			}
		}
	}
	return algo, nodes
}

func handleBookCommand(bk *book.Store, pos board.Position, havePos bool, cache *board.MoveCache, fields []string) {
	if bk == nil {
		fmt.Fprintln(os.Stderr, "draughtsctl: no book open (start with -book)")
		return
	}
	if len(fields) == 0 {
		fmt.Fprintln(os.Stderr, "draughtsctl: book: expected load|lookup")
		return
	}
	switch fields[0] {
	case "load":
		if len(fields) < 2 {
			fmt.Fprintln(os.Stderr, "draughtsctl: book load: missing path")
			return
		}
		if err := bk.LoadFile(fields[1], hashLineFromStart(cache)); err != nil {
			fmt.Fprintln(os.Stderr, "draughtsctl:", err)
		}
	case "lookup":
		if !havePos {
			fmt.Fprintln(os.Stderr, "draughtsctl: no position set")
			return
		}
		freq, ok := bk.Lookup(pos.Hash())
		if !ok {
			fmt.Println("not in book")
			return
		}
		fmt.Println("frequency", freq)
	default:
		fmt.Fprintln(os.Stderr, "draughtsctl: book: unknown subcommand", fields[0])
	}
}

// hashLineFromStart replays a book line's move tokens from the standard
// starting position and returns the resulting position's hash.
func hashLineFromStart(cache *board.MoveCache) func([]string) (uint64, error) {
	return func(moves []string) (uint64, error) {
		pos := startingPosition()
		for _, tok := range moves {
			steps, err := board.ParseSteps(tok)
			if err != nil {
				return 0, err
			}
			m, ok := board.MatchMove(pos, steps, cache)
			if !ok {
				return 0, fmt.Errorf("illegal move %q", tok)
			}
			pos = pos.DoMove(m)
		}
		return pos.Hash(), nil
	}
}

// startingPosition is the standard international draughts starting layout:
// White's 20 men on squares 31..50, Black's 20 men on squares 1..20, White
// to move.
func startingPosition() board.Position {
	var sb strings.Builder
	sb.WriteString("W:W31-50:B1-20")
	pos, err := board.ParseFEN(sb.String())
	if err != nil {
		panic(err) // unreachable: literal is well-formed
	}
	return pos
}

func runSearch(e *search.Engine, pos board.Position, algo string, nodes int) {
	var (
		best board.Move
		score int
		pv    []search.PVNode
	)
	switch algo {
	case "mtd":
		best, score, pv = e.SearchMTD(pos, nodes)
	case "pvf":
		best, score, pv = e.SearchPVF(pos, nodes)
	case "ab":
		best, score, pv = e.SearchAlphaBeta(pos, nodes)
	default:
		fmt.Fprintln(os.Stderr, "draughtsctl: unknown search", algo)
		return
	}

	fmt.Printf("info search %s nodes %d score %d bestmove %s\n", algo, e.Nodes, score, best)
	if len(pv) > 0 {
		var moves []string
		for _, node := range pv {
			moves = append(moves, node.Move.String())
		}
		fmt.Println("info pv", strings.Join(moves, " "))
	}
}
