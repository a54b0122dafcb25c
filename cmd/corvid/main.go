// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"
)

var (
	buildVersion = "(devel)"
	buildTime    = "(just now)"

	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	version    = flag.Bool("version", false, "only print version and exit")
	hashsizeMB = flag.Int("hashsize", defaultHashSizeMB, "transposition table size, in megabytes")
	hashfile   = flag.String("hashfile", "", "BadgerDB directory to load/save the transposition table from")
)

func main() {
	fmt.Printf("corvid %v, build with %v at %v, running on %v\n",
		buildVersion, runtime.Version(), buildTime, runtime.GOARCH)

	flag.Parse()
	if *version {
		return
	}
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	log.SetOutput(os.Stderr)
	log.SetPrefix("info string ")
	log.SetFlags(log.Lshortfile)

	bio := bufio.NewReader(os.Stdin)
	uci := NewUCI()
	defer uci.Close()
	if *hashsizeMB != defaultHashSizeMB {
		if err := uci.Execute("setoption name Hash value " + strconv.Itoa(*hashsizeMB)); err != nil {
			log.Fatal(err)
		}
	}
	if *hashfile != "" {
		if err := uci.Execute("setoption name HashFile value " + *hashfile); err != nil {
			log.Fatal(err)
		}
	}
	for {
		line, _, err := bio.ReadLine()
		if err != nil {
			log.Println("error:", err)
			break
		}
		if err := uci.Execute(string(line)); err != nil {
			if err != errQuit {
				log.Println("for line:", string(line))
				log.Println("error:", err)
			} else {
				break
			}
		}
	}
}
