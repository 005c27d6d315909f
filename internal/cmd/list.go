package cmd

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"text/tabwriter"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/3leaps/gostratus/internal/observability"
	"github.com/3leaps/gostratus/pkg/match"
	"github.com/3leaps/gostratus/pkg/object"
	"github.com/3leaps/gostratus/pkg/output"
	"github.com/3leaps/gostratus/pkg/wire"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Translate listing payloads",
}

var listTranslateCmd = &cobra.Command{
	Use:   "translate [file]",
	Short: "Translate a captured listing payload",
	Long: `Translate a captured listing response (ListObjectsV2 XML, or the
equivalent JSON with --json) into provider-neutral records.

Reads from stdin when no file is given. Object keys are validated during
translation; a payload with any malformed key fails as a whole.

Examples:
  gostratus list translate listing.xml
  gostratus list translate --include '**/*.parquet' listing.xml
  aws s3api list-objects-v2 ... | gostratus list translate --json --output table`,
	Args: cobra.MaximumNArgs(1),
	RunE: runListTranslate,
}

var (
	listJSONInput bool
	listIncludes  []string
	listExcludes  []string
	listOutput    string
	listJobID     string
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listTranslateCmd)

	listTranslateCmd.Flags().BoolVar(&listJSONInput, "json", false, "Input payload is JSON instead of XML")
	listTranslateCmd.Flags().StringArrayVar(&listIncludes, "include", nil, "Include glob pattern (repeatable)")
	listTranslateCmd.Flags().StringArrayVar(&listExcludes, "exclude", nil, "Exclude glob pattern (repeatable)")
	listTranslateCmd.Flags().StringVar(&listOutput, "output", "jsonl", "Output format (jsonl|yaml|table)")
	listTranslateCmd.Flags().StringVar(&listJobID, "job-id", "", "Correlation ID for output records (default: random UUID)")
}

func runListTranslate(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}

	doc, err := readDocument(name)
	if err != nil {
		return exitError(foundry.ExitFileReadError, "Failed to read listing payload", err)
	}

	var resp wire.ListResponse
	if listJSONInput {
		err = json.Unmarshal(doc, &resp)
	} else {
		err = xml.Unmarshal(doc, &resp)
	}
	if err != nil {
		observability.CLILogger.Error("Failed to decode listing payload", zap.Error(err))
		return exitError(foundry.ExitInvalidArgument, "Failed to decode listing payload", err)
	}

	result, err := resp.Translate()
	if err != nil {
		observability.CLILogger.Error("Failed to translate listing payload", zap.Error(err))
		return exitError(foundry.ExitInvalidArgument, "Failed to translate listing payload", err)
	}

	matcher, err := match.New(match.Config{Includes: listIncludes, Excludes: listExcludes})
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid glob pattern", err)
	}
	filtered := matcher.FilterResult(result)

	switch listOutput {
	case "jsonl":
		return outputListJSONL(cmd, result, filtered, resp.NextContinuationToken)
	case "yaml":
		return outputListYAML(cmd, filtered, resp.NextContinuationToken)
	case "table":
		return outputListTable(cmd, filtered)
	default:
		return exitError(foundry.ExitInvalidArgument, "Invalid output format",
			fmt.Errorf("unknown format %q (expected jsonl, yaml, or table)", listOutput))
	}
}

func outputListJSONL(cmd *cobra.Command, full, filtered *object.ListResult, token *string) error {
	jobID := listJobID
	if jobID == "" {
		jobID = uuid.New().String()
	}

	w := output.NewJSONLWriter(cmd.OutOrStdout(), jobID, flagDialect)
	defer func() { _ = w.Close() }()

	ctx := cmd.Context()
	var bytesTotal int64
	for _, meta := range filtered.Objects {
		if err := w.WriteObject(ctx, output.NewObjectRecord(meta)); err != nil {
			return exitError(foundry.ExitFileWriteError, "Failed to write record", err)
		}
		bytesTotal += meta.Size
	}
	for _, p := range filtered.CommonPrefixes {
		if err := w.WritePrefix(ctx, &output.PrefixRecord{Prefix: p.String()}); err != nil {
			return exitError(foundry.ExitFileWriteError, "Failed to write record", err)
		}
	}

	summary := &output.SummaryRecord{
		Objects:           int64(len(full.Objects)),
		ObjectsMatched:    int64(len(filtered.Objects)),
		Prefixes:          int64(len(filtered.CommonPrefixes)),
		BytesTotal:        bytesTotal,
		ContinuationToken: token,
	}
	if err := w.WriteSummary(ctx, summary); err != nil {
		return exitError(foundry.ExitFileWriteError, "Failed to write summary", err)
	}
	return nil
}

// listDocument is the YAML output shape.
type listDocument struct {
	Objects           []*output.ObjectRecord `yaml:"objects"`
	Prefixes          []string               `yaml:"prefixes"`
	ContinuationToken *string                `yaml:"continuation_token,omitempty"`
}

func outputListYAML(cmd *cobra.Command, result *object.ListResult, token *string) error {
	doc := listDocument{
		Objects:           make([]*output.ObjectRecord, 0, len(result.Objects)),
		Prefixes:          make([]string, 0, len(result.CommonPrefixes)),
		ContinuationToken: token,
	}
	for _, meta := range result.Objects {
		doc.Objects = append(doc.Objects, output.NewObjectRecord(meta))
	}
	for _, p := range result.CommonPrefixes {
		doc.Prefixes = append(doc.Prefixes, p.String())
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return exitError(foundry.ExitFileWriteError, "Failed to encode result", err)
	}
	cmd.Print(string(out))
	return nil
}

func outputListTable(cmd *cobra.Command, result *object.ListResult) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tSIZE\tLAST-MODIFIED\tETAG")
	for _, meta := range result.Objects {
		etag := "-"
		if meta.ETag != nil {
			etag = *meta.ETag
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
			meta.Location.String(), meta.Size,
			meta.LastModified.Format("2006-01-02 15:04:05"), etag)
	}
	for _, p := range result.CommonPrefixes {
		fmt.Fprintf(tw, "%s/\t-\t-\t-\n", p.String())
	}
	return tw.Flush()
}
