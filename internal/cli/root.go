// Package cli recipeconv 命令列工具
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"recipe-converter/internal/client"
	"recipe-converter/internal/core/conversion"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

type options struct {
	from    string
	to      string
	text    string
	server  string
	json    bool
	timeout time.Duration
}

// Execute 執行命令列並以結束碼離開
func Execute() {
	os.Exit(runCLI(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func runCLI(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := &options{}
	root := newRootCmd(opts)
	root.SetArgs(args)
	root.SetIn(stdin)
	setCommandIO(root, stdout, stderr)

	// 非終端輸出時自動改用 JSON
	if !isTTY(stdout) {
		opts.json = true
	}

	if err := root.Execute(); err != nil {
		cliErr := classifyCLIError(err)
		fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
		return cliErr.ExitCode
	}
	return ExitSuccess
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "recipeconv [file|-]",
		Short: "Convert recipe ingredient lines between metric, US and UK units",
		Long: "Parses one ingredient per line and converts the amounts between measurement systems.\n" +
			"Input comes from --text, a file argument, or stdin (\"-\" or no argument).",
		Example: `  recipeconv --from us --to metric recipe.txt
  echo "1 cup sugar" | recipeconv --to metric
  recipeconv --from metric --to us --text "バター 50g"
  recipeconv --server http://localhost:8080 recipe.txt
  recipeconv ingredients`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.server, "server", "", "Convert through a running API server instead of locally")
	pf.BoolVar(&opts.json, "json", false, "Output as JSON")
	pf.DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout for --server")

	registerConvertFlags(root.Flags(), opts)
	root.AddCommand(newIngredientsCmd(opts))
	return root
}

func registerConvertFlags(f *pflag.FlagSet, opts *options) {
	f.StringVarP(&opts.from, "from", "f", string(conversion.SystemUS), "Source unit system (metric, us, uk)")
	f.StringVarP(&opts.to, "to", "t", string(conversion.SystemMetric), "Destination unit system (metric, us, uk)")
	f.StringVar(&opts.text, "text", "", "Recipe text to convert (newline separated)")
}

func runConvert(cmd *cobra.Command, opts *options, args []string) error {
	from, err := parseSystemFlag("from", opts.from)
	if err != nil {
		return err
	}
	to, err := parseSystemFlag("to", opts.to)
	if err != nil {
		return err
	}

	text, err := readInput(cmd, opts, args)
	if err != nil {
		return err
	}

	var records []conversion.Record
	if opts.server != "" {
		ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
		defer cancel()
		res, err := client.New(opts.server, opts.timeout).Convert(ctx, text, from, to)
		if err != nil {
			return upstreamError("conversion request failed", err)
		}
		records = res.ConvertedRecipe
	} else {
		records = conversion.NewConverter(nil, conversion.DefaultOptions()).ConvertRecipe(text, from, to)
	}

	if opts.json {
		return printRecordsJSON(cmd.OutOrStdout(), records)
	}
	printRecords(cmd.OutOrStdout(), records, from, to)
	return nil
}

func newIngredientsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ingredients",
		Short: "List known ingredients with their form and unit systems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := loadProfiles(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if opts.json {
				return printIngredientsJSON(cmd.OutOrStdout(), profiles)
			}
			printIngredients(cmd.OutOrStdout(), profiles)
			return nil
		},
	}
}

func loadProfiles(ctx context.Context, opts *options) (map[string]conversion.Profile, error) {
	if opts.server != "" {
		ctx, cancel := context.WithTimeout(ctx, opts.timeout)
		defer cancel()
		profiles, err := client.New(opts.server, opts.timeout).Ingredients(ctx)
		if err != nil {
			return nil, upstreamError("ingredient table request failed", err)
		}
		return profiles, nil
	}

	tables := conversion.DefaultTables()
	profiles := make(map[string]conversion.Profile)
	for _, key := range tables.ProfileKeys() {
		if p, ok := tables.Profile(key); ok {
			profiles[key] = p
		}
	}
	return profiles, nil
}

// readInput 依序採用 --text、檔案參數、標準輸入
func readInput(cmd *cobra.Command, opts *options, args []string) (string, error) {
	if opts.text != "" {
		if len(args) > 0 {
			return "", invalidArgsError("use either --text or a file argument, not both", "recipeconv --text \"1 cup sugar\"")
		}
		return opts.text, nil
	}

	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return "", invalidArgsError(fmt.Sprintf("cannot read input: %v", err), "recipeconv path/to/recipe.txt")
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", invalidArgsError("no recipe text given", "echo \"1 cup sugar\" | recipeconv --to metric")
	}
	return string(data), nil
}

func parseSystemFlag(name, value string) (conversion.System, error) {
	sys, ok := conversion.ParseSystem(value)
	if !ok {
		return "", invalidArgsError(
			fmt.Sprintf("invalid value %q for --%s (use metric, us or uk)", value, name),
			"recipeconv --from us --to metric",
		)
	}
	return sys, nil
}

func setCommandIO(cmd *cobra.Command, stdout, stderr io.Writer) {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	for _, child := range cmd.Commands() {
		setCommandIO(child, stdout, stderr)
	}
}

func isTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
