// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// uci implements the UCI protocol which is described here
// http://wbec-ridderkerk.nl/html/UCIProtocol.html.

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/corvidchess/corvid/engine"
	"github.com/corvidchess/corvid/persist"
	"github.com/corvidchess/corvid/polyglot"
)

var errQuit = errors.New("quit")

const (
	startFEN          = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	defaultHashSizeMB = 64
)

// uciLogger formats search telemetry as UCI "info" lines on stdout.
type uciLogger struct {
	start time.Time
}

func (ul *uciLogger) BeginSearch() { ul.start = time.Now() }
func (ul *uciLogger) EndSearch()   {}

func (ul *uciLogger) Info(info engine.Info) {
	var b strings.Builder
	fmt.Fprintf(&b, "info depth %d", info.Depth)

	if info.Score >= engine.CheckmateMin {
		fmt.Fprintf(&b, " score mate %d", (engine.Checkmate-info.Score+1)/2)
	} else if info.Score <= -engine.CheckmateMin {
		fmt.Fprintf(&b, " score mate %d", -(engine.Checkmate+info.Score)/2)
	} else {
		fmt.Fprintf(&b, " score cp %d", info.Score)
	}

	millis := uint64(info.Time / time.Millisecond)
	fmt.Fprintf(&b, " nodes %d time %d nps %d hashfull %d", info.Nodes, millis, info.NPS, info.HashFull)

	if len(info.PV) > 0 {
		fmt.Fprintf(&b, " pv")
		for _, m := range info.PV {
			fmt.Fprintf(&b, " %s", m.UCI())
		}
	}
	fmt.Fprintln(os.Stdout, b.String())
}

// UCI dispatches UCI protocol commands to a Searcher sharing one
// transposition table across the life of the process, matching the
// engine-process-per-game-but-table-per-process lifetime UCI assumes.
type UCI struct {
	pos      *engine.Position
	tt       *engine.TranspositionTable
	searcher *engine.Searcher
	eval     engine.Evaluator
	logger   *uciLogger
	tc       *engine.TimeControl

	hashSizeMB int
	ownBook    bool
	book       *polyglot.Book
	bookFile   string
	hashFile   string
	store      *persist.Store

	// buffer of 1; filled while a search goroutine is running.
	idle chan struct{}
}

// NewUCI builds a UCI session over the standard starting position.
func NewUCI() *UCI {
	pos, err := engine.PositionFromFEN(startFEN)
	if err != nil {
		log.Fatal(err)
	}
	u := &UCI{
		pos:        pos,
		tt:         engine.NewTranspositionTable(defaultHashSizeMB),
		eval:       engine.MaterialEvaluator{},
		logger:     &uciLogger{},
		hashSizeMB: defaultHashSizeMB,
		idle:       make(chan struct{}, 1),
	}
	u.searcher = engine.NewSearcher(u.pos, u.tt, u.eval)
	return u
}

// Close releases any resources the session opened, flushing a hash
// snapshot to disk first if one was configured.
func (u *UCI) Close() {
	if u.store != nil {
		if err := u.store.SaveTable(u.tt); err != nil {
			log.Println("error saving hash file:", err)
		}
		u.store.Close()
	}
}

var reCmd = regexp.MustCompile(`^[[:word:]]+\b`)

// Execute parses and runs one line of UCI input.
func (u *UCI) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	cmd := reCmd.FindString(line)
	if cmd == "" {
		return fmt.Errorf("invalid command line")
	}

	switch cmd {
	case "isready":
		return u.isready(line)
	case "quit":
		return errQuit
	case "stop":
		return u.stop(line)
	case "uci":
		return u.uci(line)
	}

	u.idle <- struct{}{}
	<-u.idle

	switch cmd {
	case "ucinewgame":
		return u.ucinewgame(line)
	case "position":
		return u.position(line)
	case "go":
		return u.go_(line)
	case "setoption":
		return u.setoption(line)
	default:
		return fmt.Errorf("unhandled command %s", cmd)
	}
}

func (u *UCI) uci(line string) error {
	fmt.Printf("id name corvid %v\n", buildVersion)
	fmt.Printf("id author the corvid authors\n")
	fmt.Println()
	fmt.Printf("option name Hash type spin default %d min 1 max 65536\n", defaultHashSizeMB)
	fmt.Printf("option name Clear Hash type button\n")
	fmt.Printf("option name OwnBook type check default false\n")
	fmt.Printf("option name BookFile type string default <empty>\n")
	fmt.Printf("option name HashFile type string default <empty>\n")
	fmt.Println("uciok")
	return nil
}

func (u *UCI) isready(line string) error {
	fmt.Println("readyok")
	return nil
}

func (u *UCI) ucinewgame(line string) error {
	u.tt.Clear()
	return nil
}

func (u *UCI) position(line string) error {
	args := strings.Fields(line)[1:]
	if len(args) == 0 {
		return fmt.Errorf("expected argument for 'position'")
	}

	var pos *engine.Position
	var err error
	i := 0
	switch args[0] {
	case "startpos":
		pos, err = engine.PositionFromFEN(startFEN)
		i = 1
	case "fen":
		i = 1
		for i < len(args) && args[i] != "moves" {
			i++
		}
		pos, err = engine.PositionFromFEN(strings.Join(args[1:i], " "))
	default:
		err = fmt.Errorf("unknown position command: %s", args[0])
	}
	if err != nil {
		return err
	}

	if i < len(args) {
		if args[i] != "moves" {
			return fmt.Errorf("expected 'moves', got %q", args[i])
		}
		for _, s := range args[i+1:] {
			move, err := engine.ParseUCIMove(pos, s)
			if err != nil {
				return err
			}
			pos.MakeMove(move)
		}
	}

	u.pos = pos
	u.searcher = engine.NewSearcher(u.pos, u.tt, u.eval)
	return nil
}

var validGoCommands = map[string]bool{
	"searchmoves": true,
	"ponder":      true,
	"wtime":       true,
	"btime":       true,
	"winc":        true,
	"binc":        true,
	"movestogo":   true,
	"depth":       true,
	"nodes":       true,
	"mate":        true,
	"movetime":    true,
	"infinite":    true,
}

func (u *UCI) go_(line string) error {
	if u.ownBook && u.book != nil {
		if move, ok := u.book.Probe(u.pos); ok {
			fmt.Printf("bestmove %s\n", move.UCI())
			return nil
		}
	}

	tc := engine.NewTimeControl(u.pos)
	u.tc = tc
	spec := engine.SearchSpec{Logger: u.logger}

	args := strings.Fields(line)[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "searchmoves":
			for j := i + 1; j < len(args) && !validGoCommands[args[j]]; j++ {
				move, err := engine.ParseUCIMove(u.pos, args[j])
				if err != nil {
					return err
				}
				i++
				spec.SearchMoves = append(spec.SearchMoves, move)
			}
		case "ponder":
			// Accepted but not distinguished from a normal search.
		case "infinite":
			spec.Infinite = true
			tc.Infinite = true
		case "wtime":
			i++
			t, _ := strconv.Atoi(args[i])
			tc.WTime = time.Duration(t) * time.Millisecond
		case "winc":
			i++
			t, _ := strconv.Atoi(args[i])
			tc.WInc = time.Duration(t) * time.Millisecond
		case "btime":
			i++
			t, _ := strconv.Atoi(args[i])
			tc.BTime = time.Duration(t) * time.Millisecond
		case "binc":
			i++
			t, _ := strconv.Atoi(args[i])
			tc.BInc = time.Duration(t) * time.Millisecond
		case "movestogo":
			i++
			t, _ := strconv.Atoi(args[i])
			tc.MovesToGo = t
		case "movetime":
			i++
			t, _ := strconv.Atoi(args[i])
			tc.WTime, tc.WInc = time.Duration(t)*time.Millisecond, 0
			tc.BTime, tc.BInc = time.Duration(t)*time.Millisecond, 0
			tc.MovesToGo = 1
		case "depth":
			i++
			d, _ := strconv.Atoi(args[i])
			spec.MaxDepth = d
			tc.Depth = d
		case "nodes":
			i++
			n, _ := strconv.ParseUint(args[i], 10, 64)
			spec.MaxNodes = n
		case "mate":
			i++
			log.Println("mate search not implemented, ignoring")
		default:
			return fmt.Errorf("invalid go command %s", args[i])
		}
	}
	spec.TimeControl = tc

	u.idle <- struct{}{}
	go u.play(spec)
	return nil
}

// play runs the search in its own goroutine so Execute can keep
// servicing "stop" and "isready" while it's in flight.
func (u *UCI) play(spec engine.SearchSpec) {
	best := u.searcher.Search(spec)
	if best == engine.NullMove {
		fmt.Println("bestmove (none)")
	} else {
		fmt.Printf("bestmove %s\n", best.UCI())
	}
	<-u.idle
}

func (u *UCI) stop(line string) error {
	if u.tc != nil {
		u.tc.Stop()
	}
	// Wait for an in-flight play() goroutine to notice and return.
	u.idle <- struct{}{}
	<-u.idle
	return nil
}

var reOption = regexp.MustCompile(`^setoption\s+name\s+(.+?)(\s+value\s+(.*))?$`)

func (u *UCI) setoption(line string) error {
	option := reOption.FindStringSubmatch(line)
	if option == nil {
		return fmt.Errorf("invalid setoption arguments")
	}

	switch option[1] {
	case "Clear Hash":
		u.tt.Clear()
		return nil
	}

	if len(option) < 3 || option[3] == "" {
		return fmt.Errorf("missing setoption value")
	}
	value := option[3]

	switch option[1] {
	case "Hash":
		sizeMB, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		u.hashSizeMB = sizeMB
		u.tt = engine.NewTranspositionTable(sizeMB)
		u.searcher = engine.NewSearcher(u.pos, u.tt, u.eval)
		return nil
	case "OwnBook":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		if b {
			log.Println("warning: OwnBook enabled but polyglot.RandomTable is unpopulated (see polyglot package doc) — book probes will not match a real .bin book")
		}
		u.ownBook = b
		return nil
	case "BookFile":
		u.bookFile = value
		book, err := polyglot.Open(value)
		if err != nil {
			return err
		}
		log.Println("warning: loaded", value, "but polyglot.RandomTable is unpopulated — Hash() will not reproduce the book's real keys until it is filled in")
		u.book = book
		return nil
	case "HashFile":
		u.hashFile = value
		store, err := persist.Open(value)
		if err != nil {
			return err
		}
		u.store = store
		return store.LoadTable(u.tt)
	default:
		return fmt.Errorf("unhandled option %s", option[1])
	}
}
