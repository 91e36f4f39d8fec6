package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/montanaflynn/stats"
	"github.com/realpoly/realpoly/polynomial"
	"github.com/realpoly/realpoly/utils/sampling"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli holds the state shared by the polycalc commands.
type cli struct {
	verbose    bool
	configPath string

	logger *zap.Logger
	config *Config
}

func newRootCmd() *cobra.Command {

	c := &cli{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "polycalc",
		Short: "Arithmetic over single-variable real polynomials",
		Long: `polycalc adds, subtracts, multiplies and evaluates polynomials with real coefficients.

Polynomials are comma-separated coefficients by increasing power of x:
"3,5,1" is 3 + 5x + x^2. Write "[-2,1]" or use "--" when the first
coefficient is negative. Without positional polynomials, the operands of
the --config file are used.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {

			config := zap.NewProductionConfig()
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			var err error
			if c.logger, err = config.Build(); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			if c.configPath != "" {
				if c.config, err = LoadConfig(c.configPath); err != nil {
					return err
				}
				c.logger.Debug("Loaded config",
					zap.String("path", c.configPath),
					zap.Int("operands", len(c.config.Operands)))
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML file with default operands")

	rootCmd.AddCommand(
		c.combinatorCmd("add", "Sum polynomials", polynomial.AddAll),
		c.combinatorCmd("sub", "Subtract the following polynomials from the first one", polynomial.SubtractAll),
		c.combinatorCmd("mul", "Multiply polynomials", polynomial.MultiplyAll),
		c.showCmd(),
		c.evalCmd(),
		c.tableCmd(),
		c.digestCmd(),
		c.randomCmd(),
	)

	return rootCmd
}

// operands parses the positional polynomials, or falls back to the
// operands of the config file.
func (c *cli) operands(args []string) (ops []*polynomial.Polynomial, err error) {

	if len(args) != 0 {
		ops = make([]*polynomial.Polynomial, len(args))
		for i := range args {
			if ops[i], err = parsePolynomial(args[i]); err != nil {
				return nil, err
			}
		}
		c.logger.Debug("Parsed operands", zap.Strings("args", args))
		return
	}

	if c.config != nil && len(c.config.Operands) != 0 {
		ops = make([]*polynomial.Polynomial, len(c.config.Operands))
		for i := range c.config.Operands {
			ops[i] = polynomial.NewPolynomial(c.config.Operands[i]...)
		}
		c.logger.Debug("Using config operands", zap.Int("count", len(ops)))
		return
	}

	return nil, fmt.Errorf("no polynomial given: pass operands as arguments or through --config")
}

func printPolynomial(w io.Writer, p *polynomial.Polynomial) {
	fmt.Fprintln(w, p)
	fmt.Fprintln(w, p.Coefficients())
}

func (c *cli) combinatorCmd(use, short string, f func(p0 *polynomial.Polynomial, ps ...*polynomial.Polynomial) *polynomial.Polynomial) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [polynomial...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := c.operands(args)
			if err != nil {
				return err
			}
			printPolynomial(cmd.OutOrStdout(), f(ops[0], ops[1:]...))
			return nil
		},
	}
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [polynomial]",
		Short: "Print a polynomial with its length and degree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := c.operands(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printPolynomial(out, ops[0])
			fmt.Fprintf(out, "length=%d degree=%d\n", ops[0].Len(), ops[0].Degree())
			return nil
		},
	}
}

func (c *cli) evalCmd() *cobra.Command {

	var at float64

	cmd := &cobra.Command{
		Use:   "eval [polynomial]",
		Short: "Evaluate a polynomial at a point",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := c.operands(args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("at") && c.config != nil && c.config.At != nil {
				at = *c.config.At
			}

			fmt.Fprintln(cmd.OutOrStdout(), ops[0].Evaluate(at))
			return nil
		},
	}

	cmd.Flags().Float64Var(&at, "at", 0, "evaluation point")

	return cmd
}

func (c *cli) tableCmd() *cobra.Command {

	var r TableRange

	cmd := &cobra.Command{
		Use:   "table [polynomial]",
		Short: "Tabulate a polynomial over a range and summarize its values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := c.operands(args)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if c.config != nil && c.config.Table != nil && !flags.Changed("from") && !flags.Changed("to") && !flags.Changed("step") {
				r = *c.config.Table
			}

			if err = r.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			var values []float64
			for i := 0; ; i++ {
				x := r.From + float64(i)*r.Step
				if x > r.To {
					break
				}
				y := ops[0].Evaluate(x)
				values = append(values, y)
				fmt.Fprintf(out, "%v\t%v\n", x, y)
			}

			c.logger.Debug("Tabulated", zap.Int("points", len(values)))

			return printSummary(out, values)
		},
	}

	cmd.Flags().Float64Var(&r.From, "from", -1, "first point")
	cmd.Flags().Float64Var(&r.To, "to", 1, "last point")
	cmd.Flags().Float64Var(&r.Step, "step", 0.5, "distance between points")

	return cmd
}

func printSummary(w io.Writer, values []float64) error {

	data := stats.Float64Data(values)

	lo, err := data.Min()
	if err != nil {
		return fmt.Errorf("stats.Min: %w", err)
	}

	hi, err := data.Max()
	if err != nil {
		return fmt.Errorf("stats.Max: %w", err)
	}

	mean, err := data.Mean()
	if err != nil {
		return fmt.Errorf("stats.Mean: %w", err)
	}

	median, err := data.Median()
	if err != nil {
		return fmt.Errorf("stats.Median: %w", err)
	}

	stddev, err := data.StandardDeviation()
	if err != nil {
		return fmt.Errorf("stats.StandardDeviation: %w", err)
	}

	fmt.Fprintf(w, "min=%v max=%v mean=%v median=%v stddev=%v\n", lo, hi, mean, median, stddev)

	return nil
}

func (c *cli) digestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest [polynomial...]",
		Short: "Print the blake3 digest of the binary encoding of polynomials",
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := c.operands(args)
			if err != nil {
				return err
			}
			for _, p := range ops {
				d, err := p.Digest()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(d[:]))
			}
			return nil
		},
	}
}

func (c *cli) randomCmd() *cobra.Command {

	var seed string
	var length int
	var bound uint64

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Sample a polynomial with integer coefficients in [-bound, bound]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			if length < 0 {
				return fmt.Errorf("invalid length: %d is negative", length)
			}

			if bound > polynomial.MaxSamplerBound {
				return fmt.Errorf("invalid bound: %d exceeds %d", bound, uint64(polynomial.MaxSamplerBound))
			}

			var prng sampling.PRNG
			var err error
			if seed != "" {
				prng, err = sampling.NewKeyedPRNG([]byte(seed))
			} else {
				prng, err = sampling.NewPRNG()
			}
			if err != nil {
				return fmt.Errorf("failed to initialize prng: %w", err)
			}

			c.logger.Debug("Sampling polynomial",
				zap.Bool("seeded", seed != ""),
				zap.Int("length", length),
				zap.Uint64("bound", bound))

			p, err := polynomial.NewUniformSampler(prng, bound).ReadNew(length)
			if err != nil {
				return err
			}

			printPolynomial(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "key of the deterministic PRNG, at most 64 bytes (random if empty)")
	cmd.Flags().IntVar(&length, "length", 4, "number of coefficients")
	cmd.Flags().Uint64Var(&bound, "bound", 10, "bound on the magnitude of the coefficients")

	return cmd
}
