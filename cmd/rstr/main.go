// Command rstr applies encoding-aware string operations to its arguments or,
// when none are given, to every line of standard input.
//
//	rstr succ az zz a9        # ba, aaa, b0
//	rstr -e ISO-8859-1 chars < latin1.txt
//	rstr sub --regexp '0b([01]+)' 'binary \1' 0b1101
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KromDaniel/rstring/charset"
	"github.com/KromDaniel/rstring/internal/lines"
	"github.com/KromDaniel/rstring/internal/logger"
	"github.com/KromDaniel/rstring/pkg/rstring"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the state shared by all subcommands.
type app struct {
	encName string
	verbose bool

	enc *charset.Encoding
	log *logger.Logger
}

// operation turns one input string into one line of output.
type operation func(s *rstring.String) (string, error)

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "rstr",
		Short: "Encoding-aware string operations",
		Long: `rstr applies one string operation to each input.

Inputs are the trailing arguments of a command. Without any, every line of
standard input is an input. Inputs are read as bytes in the encoding chosen
with --encoding and must be valid in it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log = logger.New("rstr", a.verbose)
			a.log.SetOutput(cmd.ErrOrStderr())
			enc, err := charset.Resolve(a.encName)
			if err != nil {
				return err
			}
			a.enc = enc
			a.log.Log("input encoding %s", enc)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.encName, "encoding", "e", charset.UTF8.Name(), "encoding of the inputs")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "print diagnostics to stderr")

	root.AddCommand(
		a.simpleCmd("succ", "Print the successor of each input", func(s *rstring.String) (string, error) {
			return s.Succ().String(), nil
		}),
		a.simpleCmd("ord", "Print the first codepoint of each input", func(s *rstring.String) (string, error) {
			cp, err := s.Ord()
			if err != nil {
				return "", err
			}
			return fmt.Sprint(cp), nil
		}),
		a.simpleCmd("chars", "Print the characters of each input", func(s *rstring.String) (string, error) {
			return inspectAll(s.CharSlice()), nil
		}),
		a.simpleCmd("graphemes", "Print the grapheme clusters of each input", func(s *rstring.String) (string, error) {
			return inspectAll(s.GraphemeClusters()), nil
		}),
		a.simpleCmd("bytes", "Print the byte values of each input", func(s *rstring.String) (string, error) {
			b := s.Bytes()
			parts := make([]string, len(b))
			for i, c := range b {
				parts[i] = fmt.Sprint(c)
			}
			return strings.Join(parts, " "), nil
		}),
		a.simpleCmd("inspect", "Print each input as an escaped literal", func(s *rstring.String) (string, error) {
			return s.Inspect(), nil
		}),
		a.encodeCmd(),
		a.indexCmd(),
		a.subCmd(),
		a.splitCmd(),
		a.toICmd(),
		a.ljustCmd(),
		a.sliceCmd(),
	)
	return root
}

// simpleCmd builds a command whose arguments are all inputs.
func (a *app) simpleCmd(use, short string, fn operation) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [INPUT...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, fn)
		},
	}
}

// run applies fn to every input and writes one line per input.
func (a *app) run(cmd *cobra.Command, inputs []string, fn operation) error {
	a.log.Section(cmd.Name())
	apply := func(line []byte) ([]byte, error) {
		s, err := rstring.FromBytes(line, a.enc)
		if err != nil {
			return nil, err
		}
		out, err := fn(s)
		if err != nil {
			return nil, err
		}
		a.log.Log("%s -> %s", s.Inspect(), out)
		return []byte(out), nil
	}

	w := cmd.OutOrStdout()
	if len(inputs) == 0 {
		_, err := io.Copy(w, lines.Transform(cmd.InOrStdin(), apply))
		return err
	}
	for _, in := range inputs {
		out, err := apply([]byte(in))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", out); err != nil {
			return err
		}
	}
	return nil
}

func inspectAll(ss []*rstring.String) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = s.Inspect()
	}
	return strings.Join(parts, " ")
}
