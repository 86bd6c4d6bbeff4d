package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/sllist/sllist/log"
)

type config struct {
	Input  string // file to load the list from, empty to generate one
	Output string // file to save the final list to, empty to skip

	Size   int  // number of generated values
	Unique bool // generate a permutation of [0, Size) instead of ranged values
	Min    int
	Max    int
	Seed   uint64 // 0 selects a random seed

	Sort    bool
	Desc    bool
	Reverse bool
	Dedupe  bool
	Delete  []int
	Count   []int

	LogFilename string // empty writes to stderr
	LogLevel    log.LogLevel
}

type intsFlag []int

func (f *intsFlag) String() string { return fmt.Sprint([]int(*f)) }

func (f *intsFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*f = append(*f, v)
	return nil
}

func parseConfig(args []string, output io.Writer) (*config, error) {
	cfg := &config{}
	level := ""

	fs := flag.NewFlagSet("sllist", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Input, "input", "", "load the list from this file instead of generating it")
	fs.StringVar(&cfg.Output, "output", "", "save the final list to this file")
	fs.IntVar(&cfg.Size, "size", 100, "number of values to generate")
	fs.BoolVar(&cfg.Unique, "unique", true, "generate a shuffled permutation of 0..size-1")
	fs.IntVar(&cfg.Min, "min", 0, "lowest generated value when -unique=false")
	fs.IntVar(&cfg.Max, "max", 99, "highest generated value when -unique=false")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "seed of the value generator (0 for a random seed)")
	fs.BoolVar(&cfg.Sort, "sort", true, "sort the list")
	fs.BoolVar(&cfg.Desc, "desc", false, "sort in descending order")
	fs.BoolVar(&cfg.Reverse, "reverse", false, "reverse the list after sorting")
	fs.BoolVar(&cfg.Dedupe, "dedupe", false, "remove duplicate values")
	fs.Var((*intsFlag)(&cfg.Delete), "delete", "remove all nodes holding this value (repeatable)")
	fs.Var((*intsFlag)(&cfg.Count), "count", "report the occurrences of this value (repeatable)")
	fs.StringVar(&cfg.LogFilename, "log", "", "write diagnostics to this file instead of stderr")
	fs.StringVar(&level, "level", "info", "minimum level of diagnostics: debug, info, warning or error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	lv, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = lv
	return cfg, nil
}
