package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"simplescan/internal/log"
	"simplescan/internal/ops"
	"simplescan/seqs"
)

var (
	ErrUnknownMode = errors.New("unknown mode (known: trace, trace2, diff)")
	ErrBadInput    = errors.New("input is not an integer")
)

const (
	configF    = "config"
	modeF      = "mode"
	opF        = "op"
	initF      = "init"
	verbosityF = "verbosity"

	defaultConfig = ""
	defaultMode   = "trace"
	defaultOp     = ""
	defaultInit   = int64(0)

	envPrefix = "SIMPLESCAN"

	configUsage = "The yaml configuration file."
	modeUsage   = `Adapter applied to the input. Options:
trace  = running state
trace2 = previous and running state
diff   = each number combined with the one before it`
	initUsage      = "Initial state for trace and trace2, or the seed standing in for the number before the first one in diff."
	verbosityUsage = "Verbosity of the logs (debug, info, warn, error)."
)

var opUsage = fmt.Sprintf("Combining function. trace/trace2: %s (default sum). diff: %s (default delta).",
	strings.Join(ops.FoldNames(), ", "), strings.Join(ops.DiffNames(), ", "))

type Config struct {
	Mode      string `mapstructure:"mode"`
	Op        string `mapstructure:"op"`
	Init      int64  `mapstructure:"init"`
	Verbosity string `mapstructure:"verbosity"`
}

func NewCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "simplescan [flags] [file]",
		Short: "Running folds and differences over a stream of integers.",
		Long: "simplescan reads whitespace separated integers from file, or stdin when no file is given,\n" +
			"and prints one result per number as soon as it is read.",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.Flags().StringVar(&cfgFile, configF, defaultConfig, configUsage)
	cmd.Flags().String(modeF, defaultMode, modeUsage)
	cmd.Flags().String(opF, defaultOp, opUsage)
	cmd.Flags().Int64(initF, defaultInit, initUsage)
	verbosity := log.Level{Level: zapcore.InfoLevel}
	cmd.Flags().Var(&verbosity, verbosityF, verbosityUsage)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		if cfgFile != "" {
			v.SetConfigType("yaml")
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return err
			}
		}
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()

		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		cfg := new(Config)
		if err := v.Unmarshal(cfg); err != nil {
			return err
		}

		logger, err := log.New(cfg.Verbosity, zapcore.AddSync(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		in := cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		return run(cfg, in, cmd.OutOrStdout(), logger)
	}

	return cmd
}

func run(cfg *Config, in io.Reader, out io.Writer, logger *zap.SugaredLogger) error {
	logger.Debugw("Starting scan", "mode", cfg.Mode, "op", cfg.Op, "init", cfg.Init)

	src := &intReader{r: in}
	w := &lineWriter{w: out}

	switch cfg.Mode {
	case "trace":
		f, err := ops.Fold[int64](opOrDefault(cfg.Op, "sum"))
		if err != nil {
			return err
		}
		for s := range seqs.Trace(src.All(), cfg.Init, f) {
			if !w.println(s) {
				break
			}
		}
	case "trace2":
		f, err := ops.Fold[int64](opOrDefault(cfg.Op, "sum"))
		if err != nil {
			return err
		}
		for prev, cur := range seqs.Trace2(src.All(), cfg.Init, f) {
			if !w.println(prev, cur) {
				break
			}
		}
	case "diff":
		f, err := ops.Diff[int64](opOrDefault(cfg.Op, "delta"))
		if err != nil {
			return err
		}
		for d := range seqs.Diff(src.All(), cfg.Init, f) {
			if !w.println(d) {
				break
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
	}

	if w.err != nil {
		return w.err
	}
	if src.err != nil {
		return src.err
	}
	if src.count == 0 {
		logger.Warnw("No input numbers")
	}
	logger.Debugw("Scan finished", "numbers", src.count)
	return nil
}

func opOrDefault(op, fallback string) string {
	if op == "" {
		return fallback
	}
	return op
}

// intReader lazily parses whitespace separated integers. Parsing stops at the
// first bad token and the error is kept in err.
type intReader struct {
	r     io.Reader
	err   error
	count int
}

func (ir *intReader) All() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		sc := bufio.NewScanner(ir.r)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			n, err := strconv.ParseInt(sc.Text(), 10, 64)
			if err != nil {
				ir.err = fmt.Errorf("%w: %q", ErrBadInput, sc.Text())
				return
			}
			ir.count++
			if !yield(n) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			ir.err = err
		}
	}
}

type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) println(a ...any) bool {
	if _, err := fmt.Fprintln(lw.w, a...); err != nil {
		lw.err = err
		return false
	}
	return true
}
