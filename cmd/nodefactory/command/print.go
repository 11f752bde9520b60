package command

import (
	"context"
	"fmt"
	"io"

	"github.com/bblfsh/sdk/v3/uast/nodes"
	"github.com/bblfsh/sdk/v3/uast/nodes/nodesproto"
	"github.com/bblfsh/sdk/v3/uast/uastyaml"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"github.com/src-d/nodefactory/ast"
	"github.com/src-d/nodefactory/internal/astlib"
	errors "gopkg.in/src-d/go-errors.v1"
)

const (
	PrintDescription = "Builds an example tree and prints it"
	PrintHelp        = PrintDescription + "\n\n" +
		"The tree is built through the facade of the given library\n" +
		"generation and printed as that generation would print it. With\n" +
		"--uast the tree is written in its UAST form instead."
)

// ErrUnknownExample is returned when no example has the given name.
var ErrUnknownExample = errors.NewKind("unknown example %q")

// Print represents the `print` command of nodefactory cli tool.
type Print struct {
	Common

	Library string `short:"l" long:"library" default:"5.0" description:"Library generation the tree is built with"`
	Example string `short:"e" long:"example" default:"const" choice:"const" choice:"class" choice:"static-block" choice:"imports" choice:"satisfies" description:"Tree to build"`
	UAST    string `long:"uast" choice:"yaml" choice:"proto" description:"Writes the UAST of the tree in the given encoding"`
	CRLF    bool   `long:"crlf" description:"Separates lines with CRLF"`

	out io.Writer
}

// Execute prints the example tree, it honors the go-flags.Commander
// interface.
func (c *Print) Execute(args []string) error {
	closer, err := c.setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	build, ok := examples[c.Example]
	if !ok {
		return ErrUnknownExample.New(c.Example)
	}

	span, ctx := opentracing.StartSpanFromContext(context.Background(), "nodefactory.print",
		opentracing.Tag{Key: "example", Value: c.Example},
	)
	defer span.Finish()

	lib, f, err := facade(ctx, c.Library)
	if err != nil {
		return err
	}

	statements := build(f)
	logrus.WithFields(logrus.Fields{
		"library":    c.Library,
		"example":    c.Example,
		"statements": len(statements),
	}).Debug("example built")

	w := output(c.out)
	switch c.UAST {
	case "yaml":
		data, err := uastyaml.Marshal(toUAST(statements))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "proto":
		return nodesproto.WriteTo(w, toUAST(statements))
	}

	opts := astlib.PrinterOptions{}
	if c.CRLF {
		opts.NewLine = astlib.NewLineCRLF
	}

	_, err = fmt.Fprint(w, astlib.NewPrinter(lib, opts).PrintStatements(statements))
	return err
}

func toUAST(statements []*ast.Node) nodes.Node {
	arr := make(nodes.Array, 0, len(statements))
	for _, n := range statements {
		arr = append(arr, ast.ToUAST(n))
	}
	return arr
}
