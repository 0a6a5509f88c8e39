package cmd

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/denismitr/intset/calc"
	"github.com/denismitr/intset/history"
	"github.com/denismitr/intset/set"
	"github.com/denismitr/intset/workspace"
)

const sessionHelp = `statements:
  {1 2 3}            set literal
  a + b, a * b, a - b union, intersection, difference
  a <= b, a == b     subset and equality
  3 in a, #a         membership and cardinality
  a = ..., a += ...  bind a name, update in place (also *= and -=)
commands:
  :vars :nodes :history :del <name> :clear :help :quit`

// session evaluates statements and meta commands against one workspace.
type session struct {
	ev      *calc.Evaluator
	history *history.Ring[string]
}

func newSession(strict bool, historySize int) *session {
	return &session{
		ev:      calc.New(workspace.New(), calc.WithStrict(strict)),
		history: history.NewRing[string](historySize),
	}
}

func (s *session) workspace() *workspace.Workspace {
	return s.ev.Workspace()
}

// run handles one input line. quit is set when the user asked to leave.
func (s *session) run(line string) (output string, quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false, nil
	}

	if strings.HasPrefix(line, ":") {
		output, quit = s.command(line)
		return output, quit, nil
	}

	s.history.Push(line)

	result, err := s.ev.Eval(line)
	if err != nil {
		log.Debug().Err(err).Str("statement", line).Msg("evaluation failed")
		return "", false, err
	}
	defer result.Release()

	log.Debug().
		Str("statement", line).
		Int("live_nodes", s.workspace().Counter().Live()).
		Msg("evaluated")

	return result.String(), false, nil
}

func (s *session) command(line string) (string, bool) {
	fields := strings.Fields(line)
	ws := s.workspace()

	switch fields[0] {
	case ":quit", ":q":
		return "", true

	case ":help":
		return sessionHelp, false

	case ":vars":
		if ws.Len() == 0 {
			return "no sets defined", false
		}
		var b strings.Builder
		ws.ForEach(func(name string, st *set.SortedSet, order int) {
			if order > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%s = %s", name, st)
		})
		return b.String(), false

	case ":nodes":
		return fmt.Sprintf("live nodes: %d", ws.Counter().Live()), false

	case ":history":
		items := s.history.Items()
		lines := make([]string, 0, len(items))
		for i, item := range items {
			lines = append(lines, fmt.Sprintf("%3d  %s", i+1, item))
		}
		return strings.Join(lines, "\n"), false

	case ":del":
		if len(fields) != 2 {
			return "usage: :del <name>", false
		}
		if !ws.Remove(fields[1]) {
			return fmt.Sprintf("%s is not defined", fields[1]), false
		}
		return fmt.Sprintf("%s removed", fields[1]), false

	case ":clear":
		ws.Destroy()
		return "workspace cleared", false
	}

	return fmt.Sprintf("unknown command %s, try :help", fields[0]), false
}

func (s *session) close() {
	s.workspace().Destroy()
}
