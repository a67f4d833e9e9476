package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pheebcodes/rollin"
)

// entry is one evaluated expression in a session log.
type entry struct {
	src    string
	result string
}

// session evaluates expressions one at a time and remembers them for the
// length of the process.
type session struct {
	ctx  *rollin.Context
	verb string
	echo bool
	// log is newest first.
	log []entry
}

func newSession(cfg Config) *session {
	var opts []rollin.ContextOption
	if cfg.Seed != 0 {
		opts = append(opts, rollin.Seed(cfg.Seed))
	}
	return &session{
		ctx:  rollin.NewContext(opts...),
		verb: cfg.Format + "\n",
		echo: cfg.Echo,
	}
}

// eval evaluates one expression and writes its result or error to out. Empty
// expressions are ignored.
func (s *session) eval(out io.Writer, src string) {
	if src == "" {
		return
	}
	a, err := rollin.Parse(src)
	if err != nil {
		log.Debug().Err(err).Str("expr", src).Msg("invalid expression")
		fmt.Fprintln(out, err)
		s.log = append([]entry{{src: src, result: "Error"}}, s.log...)
		return
	}
	if s.echo {
		fmt.Fprintf(out, "%v : ", a)
	}
	r := s.ctx.Eval(a)
	log.Debug().Str("expr", src).Stringer("tree", a).Float64("result", r).Msg("evaluated")
	res := fmt.Sprintf(s.verb, r)
	io.WriteString(out, res)
	s.log = append([]entry{{src: src, result: strings.TrimSuffix(res, "\n")}}, s.log...)
}

// run evaluates each line of in as an expression.
func (s *session) run(out io.Writer, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		s.eval(out, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("couldn't read expressions: %w", err)
	}
	return nil
}

// writeLog writes the session log, newest first.
func (s *session) writeLog(out io.Writer) {
	for _, e := range s.log {
		fmt.Fprintf(out, "%s = %s\n", e.src, e.result)
	}
}
