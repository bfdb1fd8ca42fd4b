package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KromDaniel/rstring/charset"
	"github.com/KromDaniel/rstring/pattern"
	"github.com/KromDaniel/rstring/pkg/rstring"
)

// patternFlags selects how a PATTERN argument is interpreted.
type patternFlags struct {
	regexp     bool
	re2        bool
	ignoreCase bool
}

func (pf *patternFlags) register(cmd *cobra.Command, withRE2 bool) {
	cmd.Flags().BoolVarP(&pf.regexp, "regexp", "r", false, "treat the pattern as a regular expression")
	cmd.Flags().BoolVarP(&pf.ignoreCase, "ignore-case", "i", false, "match case-insensitively (with --regexp)")
	if withRE2 {
		cmd.Flags().BoolVar(&pf.re2, "re2", false, "treat the pattern as a linear-time RE2 expression")
		cmd.MarkFlagsMutuallyExclusive("regexp", "re2")
	}
}

// compile returns expr as a literal string or a compiled pattern.
func (pf *patternFlags) compile(expr string) (any, error) {
	switch {
	case pf.re2:
		if pf.ignoreCase {
			expr = "(?i)" + expr
		}
		return pattern.CompileRE2(expr)
	case pf.regexp:
		return pattern.CompileWith(expr, pattern.Options{IgnoreCase: pf.ignoreCase})
	case pf.ignoreCase:
		return nil, errors.New("--ignore-case needs --regexp or --re2")
	}
	return expr, nil
}

func (a *app) encodeCmd() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "encode --to NAME [INPUT...]",
		Short: "Transcode each input to another encoding",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := charset.Resolve(to)
			if err != nil {
				return err
			}
			a.log.Log("target encoding %s", enc)
			return a.run(cmd, args, func(s *rstring.String) (string, error) {
				out, err := s.Encode(enc)
				if err != nil {
					return "", err
				}
				return out.String(), nil
			})
		},
	}
	cmd.Flags().StringVarP(&to, "to", "t", "", "target encoding")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *app) indexCmd() *cobra.Command {
	var pf patternFlags
	var start int
	cmd := &cobra.Command{
		Use:   "index SUB [INPUT...]",
		Short: "Print the character index of the first occurrence of SUB",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := pf.compile(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, args[1:], func(s *rstring.String) (string, error) {
				i, ok, err := s.Index(sub, start)
				if err != nil || !ok {
					return "nil", err
				}
				return strconv.Itoa(i), nil
			})
		},
	}
	pf.register(cmd, true)
	cmd.Flags().IntVarP(&start, "start", "s", 0, "character index to start at; negative counts from the end")
	return cmd
}

func (a *app) subCmd() *cobra.Command {
	var pf patternFlags
	var global bool
	cmd := &cobra.Command{
		Use:   "sub PATTERN REPLACEMENT [INPUT...]",
		Short: "Replace the first match (or every match with --global)",
		Long: `Replace the first match of PATTERN in each input with REPLACEMENT.

REPLACEMENT may refer to the match: \0 or \& is the whole match, \1 to \9
are capture groups, \k<name> is a named group, ` + "\\`" + ` and \' are the text
before and after the match, and \\ is a backslash.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pat, err := pf.compile(args[0])
			if err != nil {
				return err
			}
			repl := args[1]
			return a.run(cmd, args[2:], func(s *rstring.String) (string, error) {
				var out *rstring.String
				if global {
					out, err = s.Gsub(pat, repl)
				} else {
					out, err = s.Sub(pat, repl)
				}
				if err != nil {
					return "", err
				}
				return out.String(), nil
			})
		},
	}
	pf.register(cmd, true)
	cmd.Flags().BoolVarP(&global, "global", "g", false, "replace every match")
	return cmd
}

func (a *app) splitCmd() *cobra.Command {
	var pf patternFlags
	var limit int
	cmd := &cobra.Command{
		Use:   "split SEP [INPUT...]",
		Short: "Split each input around SEP",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sep, err := pf.compile(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, args[1:], func(s *rstring.String) (string, error) {
				fields, err := s.SplitN(sep, limit)
				if err != nil {
					return "", err
				}
				return inspectAll(fields), nil
			})
		},
	}
	pf.register(cmd, true)
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "maximum number of fields; negative keeps trailing empty fields")
	return cmd
}

func (a *app) toICmd() *cobra.Command {
	var base int
	cmd := &cobra.Command{
		Use:   "to-i [INPUT...]",
		Short: "Parse the leading integer of each input",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, func(s *rstring.String) (string, error) {
				n, err := s.ToBigInt(base)
				if err != nil {
					return "", err
				}
				return n.String(), nil
			})
		},
	}
	cmd.Flags().IntVarP(&base, "base", "b", 10, "radix between 2 and 36")
	return cmd
}

func (a *app) ljustCmd() *cobra.Command {
	var pad string
	var right, center bool
	cmd := &cobra.Command{
		Use:   "ljust WIDTH [INPUT...]",
		Short: "Pad each input to WIDTH characters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid width %q: %w", args[0], err)
			}
			return a.run(cmd, args[1:], func(s *rstring.String) (string, error) {
				var out *rstring.String
				switch {
				case center:
					out, err = s.CenterWith(width, pad)
				case right:
					out, err = s.RightJustifyWith(width, pad)
				default:
					out, err = s.LeftJustifyWith(width, pad)
				}
				if err != nil {
					return "", err
				}
				return out.String(), nil
			})
		},
	}
	cmd.Flags().StringVarP(&pad, "pad", "p", " ", "padding, repeated as needed")
	cmd.Flags().BoolVar(&right, "right", false, "pad on the left instead")
	cmd.Flags().BoolVar(&center, "center", false, "pad on both sides")
	cmd.MarkFlagsMutuallyExclusive("right", "center")
	return cmd
}

func (a *app) sliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slice LO HI [INPUT...]",
		Short: "Print characters LO through HI of each input",
		Long: `Print characters LO through HI (inclusive) of each input. Negative indices
count from the end; put -- before them. Prints nil when LO is outside the
input.

	rstr slice -- 1 -1 hello`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}
			hi, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[1], err)
			}
			return a.run(cmd, args[2:], func(s *rstring.String) (string, error) {
				out, ok := s.Slice(lo, hi)
				if !ok {
					return "nil", nil
				}
				return out.String(), nil
			})
		},
	}
}
