// Command sllist builds a linked list of integers, applies list operations to
// it, prints it, and optionally saves it to a file.
//
// By default the list holds a shuffled permutation of 0..99 and is sorted:
//
//	sllist -output sorted.txt
//	sllist -input sorted.txt -sort=false -reverse -count 42
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/sllist/sllist/compare"
	"github.com/sllist/sllist/list"
	"github.com/sllist/sllist/listfile"
	"github.com/sllist/sllist/log"
	"github.com/sllist/sllist/random"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := log.Init(cfg.LogFilename, cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Close()

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config, stdout io.Writer) error {
	l, err := build(cfg)
	if err != nil {
		return err
	}
	log.Debugf("built list of %d values", l.Len())

	for _, v := range cfg.Delete {
		n, err := l.DeleteMatch(v)
		if err != nil {
			log.Warningf("delete %d: %v", v, err)
			continue
		}
		log.Infof("deleted %d nodes holding %d", n, v)
	}

	if cfg.Dedupe {
		log.Infof("deleted %d duplicates", l.DeleteDuplicates())
	}

	if cfg.Sort {
		if cfg.Desc {
			l.SortFunc(compare.Reverse(compare.Function[int]))
		} else {
			l.Sort()
		}
	}

	if cfg.Reverse {
		l.Reverse()
	}

	if err := l.Fprint(stdout); err != nil {
		return err
	}

	for _, v := range cfg.Count {
		n, err := l.Count(v)
		if err != nil {
			log.Warningf("count %d: %v", v, err)
			continue
		}
		if _, err := fmt.Fprintf(stdout, "count(%d) = %d\n", v, n); err != nil {
			return err
		}
	}

	if cfg.Output != "" {
		if err := listfile.Save(l, cfg.Output); err != nil {
			log.Error(err)
		} else {
			log.Infof("saved %d values to %s", l.Len(), cfg.Output)
		}
	}

	if err := l.Destroy(); err != nil {
		log.Debugf("destroy: %v", err)
	}
	return nil
}

func build(cfg *config) (*list.List, error) {
	if cfg.Input != "" {
		return listfile.Load(cfg.Input)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Debugf("generating %d values with seed %d", cfg.Size, seed)

	g := random.NewGenerator(seed)
	if cfg.Unique {
		return list.FromSlice(g.Unique(cfg.Size)), nil
	}
	return list.FromSlice(g.Array(cfg.Size, cfg.Min, cfg.Max)), nil
}
