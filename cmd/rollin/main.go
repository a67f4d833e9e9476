package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		inname, verb, confname string
		echo, showlog, verbose bool
		seed                   int64
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.StringVar(&confname, "config", "", "YAML file of default settings")
	flag.Int64Var(&seed, "seed", 0, "seed for dice rolls (0 for unseeded)")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&showlog, "log", false, "print the session log, newest first, at the end")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := loadConfig(confname)
	if err != nil {
		log.Fatal().Err(err).Str("config", confname).Msg("loading config")
	}
	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fmt":
			cfg.Format = verb
		case "seed":
			cfg.Seed = seed
		case "echo":
			cfg.Echo = echo
		case "v":
			if verbose {
				cfg.LogLevel = "debug"
			}
		}
	})
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(level)

	var ins []io.Reader
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal().Err(err).Str("in", inname).Msg("opening input")
	}
	if f != nil {
		ins = append(ins, f)
	}

	s := newSession(cfg)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for _, arg := range flag.Args() {
		s.eval(out, arg)
	}
	for _, in := range ins {
		if err := s.run(out, in); err != nil {
			out.Flush()
			log.Fatal().Err(err).Msg("reading input")
		}
	}
	if showlog {
		s.writeLog(out)
	}
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, fmt.Errorf("couldn't open input: %w", err)
		}
		return f, nil
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
