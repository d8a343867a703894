package cmd

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/compile"
	"github.com/csforge/csforge/generator"
	"github.com/csforge/csforge/internal/logger"
	"github.com/csforge/csforge/internal/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRenderCmd() *cobra.Command {
	var (
		out        string
		references []string
	)

	cmd := &cobra.Command{
		Use:   "render <file.yaml>",
		Short: "render the C# types described in a YAML file",
		Long: `Render every type of a YAML type description to standard output, or with
--out as one file per type. With --compiler the types are also compiled into a
library by a csc compatible compiler.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := schema.LoadFile(args[0])
			if err != nil {
				return err
			}

			if c := viper.GetString(compilerKey); c != "" {
				if err := compileSchema(cmd, f, args[0], c, references); err != nil {
					return err
				}
			}

			rendered, err := f.Render()
			if err != nil {
				return err
			}
			if out == "" {
				for _, r := range rendered {
					cmd.Print(r.Text)
				}
				return nil
			}

			files := make([]generator.File, len(rendered))
			for i, r := range rendered {
				files[i] = generator.File{Path: r.Name + ".cs", Type: r.Name, Text: r.Text}
			}
			return generator.WriteFiles(out, files)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write one file per type to this directory")
	cmd.Flags().String("compiler", "", "csc compatible compiler command")
	bindFlagToConfig(cmd.Flags().Lookup("compiler"), compilerKey)
	cmd.Flags().StringSliceVarP(&references, "reference", "r", nil, "assembly referenced when compiling")

	return cmd
}

func compileSchema(cmd *cobra.Command, f *schema.File, path, command string, references []string) error {
	builders, err := f.Builders()
	if err != nil {
		return err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	asm := compile.NewAssembly(name).WithReference(references...)
	for _, b := range builders {
		asm.AddType(b)
	}

	artifact, err := asm.Compile(cmd.Context(), compile.ExecCompiler{Command: command})
	if err != nil {
		var failed *compile.CompilationFailedError
		if errors.As(err, &failed) {
			return errors.WithHintf(err, "%d error(s) reported by %s", len(failed.Errors()), command)
		}
		return err
	}
	for _, w := range artifact.Warnings {
		logger.Logger.Warnw("compiler warning", "diagnostic", w.String(), "file", w.File, "line", w.Line)
	}
	logger.Logger.Infow("compiled", "assembly", artifact.Path)
	return nil
}
