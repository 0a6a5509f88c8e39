package cmd

import (
	"bufio"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	config "github.com/denismitr/intset/configs"
)

var evalCmd = &cobra.Command{
	Use:   "eval [statement...]",
	Short: "Evaluate statements given as arguments or read from stdin",
	Long: "Evaluate every statement in one shared workspace and print each result. " +
		"Without arguments statements are read from stdin, one per line.",
	RunE: RunEval,
}

func RunEval(cmd *cobra.Command, args []string) error {
	s := newSession(config.Cfg.Sets.Strict, config.Cfg.History.Size)
	defer s.close()

	out := cmd.OutOrStdout()
	failed := 0

	handle := func(line string) bool {
		output, quit, err := s.run(line)
		if err != nil {
			failed++
			log.Error().Err(err).Str("statement", line).Msg("statement failed")
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			return true
		}
		if output != "" {
			fmt.Fprintln(out, output)
		}
		return !quit
	}

	if len(args) > 0 {
		for _, arg := range args {
			if !handle(arg) {
				break
			}
		}
	} else {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			if !handle(scanner.Text()) {
				break
			}
		}
		if err := scanner.Err(); err != nil {
			return errors.Wrap(err, "could not read statements")
		}
	}

	log.Debug().Int("live_nodes", s.workspace().Counter().Live()).Msg("evaluation finished")

	if failed > 0 {
		return errors.Errorf("%d statements failed", failed)
	}
	return nil
}
