// Command enctables generates the built-in encoding table of package charset
// from a YAML description.
//
//	enctables --in encodings.yaml --out tables.go --package charset
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/KromDaniel/rstring/internal/codegen"
	"github.com/KromDaniel/rstring/internal/logger"
)

type entry struct {
	Name    string   `yaml:"name"`
	Var     string   `yaml:"var"`
	Doc     string   `yaml:"doc"`
	Kind    string   `yaml:"kind"`
	Charmap string   `yaml:"charmap"`
	Aliases []string `yaml:"aliases"`
}

type tableFile struct {
	Encodings []entry `yaml:"encodings"`
}

func main() {
	in := pflag.StringP("in", "i", "encodings.yaml", "YAML encoding table")
	out := pflag.StringP("out", "o", "tables.go", "Go file to write")
	pkg := pflag.StringP("package", "p", "charset", "package name of the generated file")
	verbose := pflag.BoolP("verbose", "v", false, "print what is generated")
	pflag.Parse()

	log := logger.New("enctables", *verbose)
	if err := run(*in, *out, *pkg, log); err != nil {
		fmt.Fprintf(os.Stderr, "enctables: %v\n", err)
		os.Exit(1)
	}
}

func run(in, out, pkg string, log *logger.Logger) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	entries, err := load(f)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	log.Log("loaded %d encodings from %s", len(entries), in)

	file, err := render(pkg, filepath.Base(in), entries, log)
	if err != nil {
		return err
	}
	if err := file.Save(out); err != nil {
		return err
	}
	log.Log("wrote %s", out)
	return nil
}

// load decodes and validates the encoding table. Missing variable names of
// non code page entries are derived from the encoding name.
func load(r io.Reader) ([]entry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var tf tableFile
	if err := dec.Decode(&tf); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if len(tf.Encodings) == 0 {
		return nil, errors.New("no encodings defined")
	}

	seen := make(map[string]string)
	for i := range tf.Encodings {
		e := &tf.Encodings[i]
		if e.Name == "" {
			return nil, fmt.Errorf("encoding %d: missing name", i)
		}
		if _, err := codegen.KindIdent(e.Kind); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}

		isCharmap := strings.EqualFold(e.Kind, "charmap")
		switch {
		case isCharmap && e.Charmap == "":
			return nil, fmt.Errorf("%s: kind charmap needs a charmap variable", e.Name)
		case !isCharmap && e.Charmap != "":
			return nil, fmt.Errorf("%s: charmap set for kind %s", e.Name, e.Kind)
		case !isCharmap && e.Var == "":
			e.Var = codegen.VarName(e.Name)
		}
		if e.Var != "" && !codegen.IsExported(e.Var) {
			return nil, fmt.Errorf("%s: %q is not an exported identifier", e.Name, e.Var)
		}

		for _, n := range append([]string{e.Name}, e.Aliases...) {
			key := strings.ToUpper(n)
			if prev, ok := seen[key]; ok {
				return nil, fmt.Errorf("%s: name %q already used by %s", e.Name, n, prev)
			}
			seen[key] = e.Name
		}
	}
	return tf.Encodings, nil
}

// render builds the generated file: a var block with the named encodings,
// followed by the table listing every encoding in order.
func render(pkg, source string, entries []entry, log *logger.Logger) (*jen.File, error) {
	file := jen.NewFile(pkg)
	file.HeaderComment(fmt.Sprintf("Code generated by enctables from %s. DO NOT EDIT.", source))

	var named []jen.Code
	items := make([]jen.Code, 0, len(entries))
	for _, e := range entries {
		value, err := encodingValue(e)
		if err != nil {
			return nil, err
		}
		if e.Var == "" {
			items = append(items, value)
			log.Log("%-14s charmap.%s", e.Name, e.Charmap)
			continue
		}
		if len(named) > 0 {
			named = append(named, jen.Line())
		}
		named = append(named,
			jen.Comment(codegen.DocComment(e.Var, e.Doc)),
			jen.Id(e.Var).Op("=").Add(value),
		)
		items = append(items, jen.Id(e.Var))
		log.Log("%-14s var %s", e.Name, e.Var)
	}

	if len(named) > 0 {
		file.Var().Defs(named...)
	}
	file.Var().Id(codegen.TableName).Op("=").Index().Op("*").Id(codegen.EncodingType).Custom(jen.Options{
		Open:      "{",
		Close:     "}",
		Separator: ",",
		Multi:     true,
	}, items...)
	return file, nil
}

func encodingValue(e entry) (*jen.Statement, error) {
	kind, err := codegen.KindIdent(e.Kind)
	if err != nil {
		return nil, err
	}
	fields := jen.Dict{
		jen.Id("name"): jen.Lit(e.Name),
		jen.Id("kind"): jen.Id(kind),
	}
	if len(e.Aliases) > 0 {
		fields[jen.Id("aliases")] = jen.Index().String().ValuesFunc(func(g *jen.Group) {
			for _, a := range e.Aliases {
				g.Lit(a)
			}
		})
	}
	if e.Charmap != "" {
		fields[jen.Id("charmap")] = jen.Qual(codegen.CharmapPath, e.Charmap)
	}
	return jen.Op("&").Id(codegen.EncodingType).Values(fields), nil
}
