package cmd

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/generator"
	"github.com/csforge/csforge/internal/comment"
	"github.com/csforge/csforge/internal/logger"
	"github.com/csforge/csforge/transform"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultPackagePattern = "./..."
	defaultOutputDir      = "csharp"
)

func newGenerateCmd() *cobra.Command {
	var packagePath string

	cmd := &cobra.Command{
		Use:   "generate [patterns...]",
		Short: "generate C# types from Go packages",
		Long: `Generate one C# file per exported struct and integer enum of the Go packages
matching the patterns (default: ./...) below --path.

With --diff nothing is written; the changes against --out are collected in a
unified diff instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd, packagePath, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&packagePath, "path", "", "directory of the Go module to read")
	cobra.CheckErr(cmd.MarkFlagRequired("path"))

	flags.String("namespace", "", "namespace prefix of every generated type")
	bindFlagToConfig(flags.Lookup("namespace"), namespaceKey)
	flags.String("out", "", "output directory (default <path>/"+defaultOutputDir+")")
	bindFlagToConfig(flags.Lookup("out"), outKey)
	flags.String("diff", "", "write a .diff file instead of the sources")
	bindFlagToConfig(flags.Lookup("diff"), diffKey)
	cobra.CheckErr(cmd.MarkFlagFilename("diff", "diff"))
	flags.Bool("value-semantics", false, "generate immutable classes with Equals and GetHashCode")
	bindFlagToConfig(flags.Lookup("value-semantics"), valueSemanticsKey)
	flags.Bool("to-string", false, "also generate ToString, implies --value-semantics")
	bindFlagToConfig(flags.Lookup("to-string"), toStringKey)
	flags.String("indent", defaultIndent, "indentation of one nesting level")
	bindFlagToConfig(flags.Lookup("indent"), indentKey)
	flags.Bool("property-spacing", false, "separate properties by a blank line")
	bindFlagToConfig(flags.Lookup("property-spacing"), propertySpacingKey)
	flags.Int("concurrency", 0, "maximum number of files rendered at once, 0 for no limit")
	bindFlagToConfig(flags.Lookup("concurrency"), concurrencyKey)

	return cmd
}

// validateOutputFile checks that the diff file has the right extension and
// that its directory exists.
func validateOutputFile(path string) error {
	if filepath.Ext(path) != ".diff" {
		return errors.New("output file must have a .diff extension")
	}
	if _, err := os.Stat(filepath.Dir(path)); errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "output file directory does not exist")
	}
	return nil
}

// outputDir returns the configured output directory, defaulting to a
// directory below the package path.
func outputDir(packagePath string) string {
	if out := viper.GetString(outKey); out != "" {
		return out
	}
	return filepath.Join(packagePath, defaultOutputDir)
}

func generate(cmd *cobra.Command, packagePath string, patterns []string) error {
	if _, err := os.Stat(packagePath); err != nil {
		return errors.Wrapf(err, "--path %q is invalid", packagePath)
	}
	diffFile := viper.GetString(diffKey)
	if diffFile != "" {
		if err := validateOutputFile(diffFile); err != nil {
			return err
		}
	}
	if len(patterns) == 0 {
		patterns = []string{defaultPackagePattern}
	}

	comment.EnableConsolePrinter(filepath.Base(packagePath))
	comment.SetOutput(cmd.ErrOrStderr())
	defer comment.WriteAll()

	ctx := cmd.Context()
	pkgs, err := generator.Load(ctx, packagePath, patterns...)
	if err != nil {
		return err
	}
	opts := generator.Options{
		Namespace:      viper.GetString(namespaceKey),
		ValueSemantics: viper.GetBool(valueSemanticsKey),
		ToString:       viper.GetBool(toStringKey),
		Normalizer: transform.Normalizer{
			Indent:                     viper.GetString(indentKey),
			BlankLineBetweenProperties: viper.GetBool(propertySpacingKey),
		},
		Concurrency: viper.GetInt(concurrencyKey),
	}
	files, err := generator.NewManager(pkgs, packagePath, opts).Generate(ctx)
	if err != nil {
		return err
	}
	logger.Logger.Infow("generated", "packages", len(pkgs), "files", len(files))

	out := outputDir(packagePath)
	if diffFile != "" {
		return generator.WriteDiff(out, diffFile, files)
	}
	return generator.WriteFiles(out, files)
}
