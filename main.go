// Command rpg prints random passwords.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/FGasper/rpg/internal/alphabet"
	"github.com/FGasper/rpg/internal/lehmer"
	"github.com/FGasper/rpg/internal/sampler"
)

const (
	defaultLength = 12
	entropySeed   = -1
)

func main() {
	if err := run(context.Background(), os.Args, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var logger *slog.Logger

	flags := commandFlags()
	args, skipped := filterArgs(flags, args)

	cmd := &cli.Command{
		Name:                   "rpg",
		Usage:                  "generate random passwords",
		UseShortOptionHandling: true,
		Writer:                 stdout,
		ErrWriter:              stderr,
		Flags:                  flags,
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return err
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger = newLogger(cmd.ErrWriter, cmd.Bool("verbose"), cmd.Bool("no-color"))
			for _, arg := range skipped {
				logger.Warn("Skipping unknown input.", "arg", arg)
			}
			return ctx, nil
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return generate(cmd, logger)
		},
	}

	err := cmd.Run(ctx, args)
	if err != nil {
		if logger == nil {
			logger = newLogger(stderr, false, false)
		}
		logger.Error("Failed to generate password.", "error", err)
	}

	return err
}

func commandFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "length",
			Aliases: []string{"n"},
			Usage:   fmt.Sprintf("password length (0-%d)", sampler.MaxLength),
			Value:   defaultLength,
			Sources: cli.EnvVars("RPG_LENGTH"),
		},
		&cli.StringFlag{
			Name:    "forbidden",
			Aliases: []string{"f"},
			Usage:   "characters never to use",
			Sources: cli.EnvVars("RPG_FORBIDDEN"),
		},
		&cli.BoolFlag{Name: "digits", Aliases: []string{"d"}, Usage: classUsage(alphabet.Digits)},
		&cli.BoolFlag{Name: "lower", Aliases: []string{"l"}, Usage: classUsage(alphabet.Lower)},
		&cli.BoolFlag{Name: "upper", Aliases: []string{"u"}, Usage: classUsage(alphabet.Upper)},
		&cli.BoolFlag{Name: "special", Aliases: []string{"s"}, Usage: classUsage(alphabet.Special)},
		&cli.BoolFlag{Name: "more", Aliases: []string{"m"}, Usage: classUsage(alphabet.More)},
		&cli.BoolFlag{
			Name:    "reduce-confusion",
			Aliases: []string{"r"},
			Usage:   "leave out look-alike characters: 1 O l |",
		},
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"c"},
			Usage:   "number of passwords to print",
			Value:   1,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "generator seed; negative seeds from system entropy",
			Value: entropySeed,
		},
		&cli.IntFlag{
			Name:  "stream",
			Usage: fmt.Sprintf("generator stream (0-%d)", lehmer.Streams-1),
		},
		&cli.BoolFlag{Name: "list", Usage: "print the character classes and exit"},
		&cli.BoolFlag{Name: "crlf", Usage: "end lines with CRLF"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log debug output"},
		&cli.BoolFlag{Name: "no-color", Usage: "disable colored log output"},
	}
}

func generate(cmd *cli.Command, logger *slog.Logger) error {
	var out io.Writer = cmd.Writer
	if cmd.Bool("crlf") {
		out = CRLFWriter{Out: out}
	}

	sel := alphabet.Selection{
		Digits:          cmd.Bool("digits"),
		Upper:           cmd.Bool("upper"),
		Lower:           cmd.Bool("lower"),
		Special:         cmd.Bool("special"),
		More:            cmd.Bool("more"),
		ReduceConfusion: cmd.Bool("reduce-confusion"),
	}

	if cmd.Bool("list") {
		return listClasses(out, sel.ReduceConfusion)
	}

	count := cmd.Int("count")
	if count < 1 {
		return fmt.Errorf("count must be at least 1, not %d", count)
	}

	if sel.Empty() {
		logger.Debug("No character classes chosen; using all.")
		sel = sel.OrAll()
	}

	chars, err := alphabet.Build(sel, cmd.String("forbidden"))
	if err != nil {
		return err
	}

	seed := cmd.Int64("seed")
	rng := lehmer.New(seed)
	rng.Select(cmd.Int("stream"))

	length := cmd.Int("length")
	logger.Debug(
		"Generating.",
		"alphabetSize", chars.Len(),
		"length", length,
		"count", count,
		"entropySeeded", seed < 0,
	)

	passwords := make([]string, 0, count)
	for range count {
		pw, err := sampler.Sample(chars, length, rng)
		if err != nil {
			return err
		}
		passwords = append(passwords, pw)
	}

	_, err = io.WriteString(out, strings.Join(passwords, "\n")+"\n")
	return err
}

func listClasses(w io.Writer, reduce bool) error {
	width := lo.Max(lo.Map(alphabet.Classes(), func(c alphabet.Class, _ int) int {
		return len(c.Name)
	}))

	for _, c := range alphabet.Classes() {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width, c.Name, c.Chars(reduce)); err != nil {
			return err
		}
	}
	return nil
}

func classUsage(name alphabet.ClassName) string {
	for _, c := range alphabet.Classes() {
		if c.Name == name {
			return "include characters: " + c.Chars(false)
		}
	}
	return ""
}
