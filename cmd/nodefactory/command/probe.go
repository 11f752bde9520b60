package command

import (
	"context"
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/src-d/nodefactory"
	"github.com/src-d/nodefactory/internal/astlib"
	"github.com/src-d/nodefactory/internal/format"
)

const (
	ProbeDescription = "Reports the capabilities of library generations"
	ProbeHelp        = ProbeDescription + "\n\n" +
		"Every generation is probed unless --library is given. With\n" +
		"--bindings the operations a facade does not pass through to the\n" +
		"library are reported instead, or all of them with --all-operations."
)

// Probe represents the `probe` command of nodefactory cli tool.
type Probe struct {
	Common

	Libraries     []string `short:"l" long:"library" description:"Library generation to probe, can be given multiple times"`
	Format        string   `short:"f" long:"format" default:"pretty" choice:"pretty" choice:"csv" choice:"json" choice:"yaml" description:"Output format"`
	Bindings      bool     `short:"b" long:"bindings" description:"Report operation bindings instead of capabilities"`
	AllOperations bool     `long:"all-operations" description:"Report passthrough bindings too"`

	out io.Writer
}

// Execute prints the report, it honors the go-flags.Commander interface.
func (c *Probe) Execute(args []string) error {
	closer, err := c.setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	span, ctx := opentracing.StartSpanFromContext(context.Background(), "nodefactory.probe")
	defer span.Finish()

	versions := c.Libraries
	if len(versions) == 0 {
		versions = astlib.Versions()
	}

	f, err := format.NewFormat(c.Format, output(c.out))
	if err != nil {
		return err
	}

	if c.Bindings {
		err = c.writeBindings(ctx, f, versions)
	} else {
		err = c.writeCapabilities(f, versions)
	}
	if err != nil {
		return err
	}

	return f.Close()
}

func (c *Probe) writeCapabilities(f format.Format, versions []string) error {
	if err := f.WriteHeader([]string{"library", "capability", "value"}); err != nil {
		return err
	}

	for _, v := range versions {
		lib, err := astlib.Load(v)
		if err != nil {
			return err
		}

		caps, err := nodefactory.Probe(lib)
		if err != nil {
			return err
		}

		for _, flag := range caps.Flags() {
			if err := f.Write([]interface{}{v, flag.Name, flag.Value}); err != nil {
				return err
			}
		}
	}

	return nil
}

func (c *Probe) writeBindings(ctx context.Context, f format.Format, versions []string) error {
	if err := f.WriteHeader([]string{"library", "operation", "mode", "shape"}); err != nil {
		return err
	}

	for _, v := range versions {
		_, fc, err := facade(ctx, v)
		if err != nil {
			return err
		}

		for _, b := range nodefactory.Bindings(fc) {
			if b.Mode == nodefactory.Passthrough && !c.AllOperations {
				continue
			}

			if err := f.Write([]interface{}{v, b.Operation, b.Mode, b.Shape}); err != nil {
				return err
			}
		}
	}

	return nil
}
