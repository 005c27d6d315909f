package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/3leaps/gostratus/internal/observability"
	"github.com/3leaps/gostratus/pkg/wire"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Render and parse object tag documents",
}

var tagsRenderCmd = &cobra.Command{
	Use:   "render key=value [key=value ...]",
	Short: "Render tags into a wire document",
	Long: `Render key=value tag pairs into the XML tagging document for the
selected dialect. With --from-json, tags are read as a JSON object from a
file (or stdin with "-") instead of arguments.

Examples:
  gostratus tags render env=prod team=storage
  gostratus tags render --dialect azure env=prod
  echo '{"env":"prod"}' | gostratus tags render --from-json -`,
	Args: cobra.ArbitraryArgs,
	RunE: runTagsRender,
}

var tagsParseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a tag document into key=value pairs",
	Long: `Parse an XML tagging document (either dialect root is accepted)
and print its tags as sorted key=value lines, or as YAML with --output yaml.

Reads from stdin when no file is given.

Examples:
  gostratus tags parse tagging.xml
  curl -s "$URL?tagging" | gostratus tags parse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTagsParse,
}

var (
	tagsParseOutput    string
	tagsRenderFromJSON string
)

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.AddCommand(tagsRenderCmd)
	tagsCmd.AddCommand(tagsParseCmd)

	tagsRenderCmd.Flags().StringVar(&tagsRenderFromJSON, "from-json", "", "Read tags as a JSON object from this file (\"-\" for stdin)")
	tagsParseCmd.Flags().StringVar(&tagsParseOutput, "output", "text", "Output format (text|yaml)")
}

func runTagsRender(cmd *cobra.Command, args []string) error {
	dialect, err := wire.ParseDialect(flagDialect)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid dialect", err)
	}

	tags, err := renderInputTags(args)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid tag input", err)
	}

	doc, err := wire.NewTagging(tags).Render(dialect)
	if err != nil {
		observability.CLILogger.Error("Failed to render tag document", zap.Error(err))
		return exitError(foundry.ExitFileWriteError, "Failed to render tag document", err)
	}

	cmd.Println(doc)
	return nil
}

// renderInputTags resolves the tag mapping from either key=value
// arguments or a JSON object document.
func renderInputTags(args []string) (map[string]string, error) {
	if tagsRenderFromJSON == "" {
		if len(args) == 0 {
			return nil, errors.New("no tags given: pass key=value arguments or --from-json")
		}
		return parseTagArgs(args)
	}
	if len(args) > 0 {
		return nil, errors.New("--from-json cannot be combined with key=value arguments")
	}

	doc, err := readDocument(tagsRenderFromJSON)
	if err != nil {
		return nil, err
	}
	var tags map[string]string
	if err := json.Unmarshal(doc, &tags); err != nil {
		return nil, fmt.Errorf("decoding tag object: %w", err)
	}
	return tags, nil
}

func runTagsParse(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}

	doc, err := readDocument(name)
	if err != nil {
		return exitError(foundry.ExitFileReadError, "Failed to read tag document", err)
	}

	tagging, err := wire.ParseTagging(doc)
	if err != nil {
		observability.CLILogger.Error("Failed to parse tag document", zap.Error(err))
		return exitError(foundry.ExitInvalidArgument, "Failed to parse tag document", err)
	}

	tags := tagging.ToMap()
	if tagsParseOutput == "yaml" {
		out, err := yaml.Marshal(tags)
		if err != nil {
			return exitError(foundry.ExitFileWriteError, "Failed to encode tags", err)
		}
		cmd.Print(string(out))
		return nil
	}

	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cmd.Printf("%s=%s\n", k, tags[k])
	}
	return nil
}
