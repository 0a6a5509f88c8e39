package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"

	config "github.com/denismitr/intset/configs"
)

func InitLogger() {
	// overrides zerolog global logger
	log.Logger = NewLogger("intset")
}

func NewLogger(name string) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level := zerolog.WarnLevel
	if lvl, err := zerolog.ParseLevel(config.Cfg.Log.Level); err == nil && lvl != zerolog.NoLevel {
		level = lvl
	}
	zerolog.SetGlobalLevel(level)

	out, fileErr := output(config.Cfg.Log.File)

	logger := zerolog.New(out).With().Timestamp().Str("component", name).Logger()
	logger = logger.With().Caller().Logger()
	if config.Cfg.Log.Pretty {
		logger = logger.Output(zerolog.ConsoleWriter{Out: out, NoColor: out != os.Stderr})
	}

	if fileErr != nil {
		logger.Warn().Err(fileErr).Str("file", config.Cfg.Log.File).Msg("falling back to stderr")
	}
	return logger
}

func output(file string) (io.Writer, error) {
	if file == "" {
		return os.Stderr, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return os.Stderr, err
	}
	return f, nil
}

// Silence drops log output unless it goes to a file. Used while a full
// screen program owns the terminal.
func Silence() {
	if config.Cfg.Log.File == "" {
		log.Logger = log.Logger.Output(io.Discard)
	}
}
