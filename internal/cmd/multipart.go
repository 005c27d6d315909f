package cmd

import (
	"encoding/xml"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"

	"github.com/3leaps/gostratus/internal/observability"
	"github.com/3leaps/gostratus/pkg/object"
	"github.com/3leaps/gostratus/pkg/wire"
	"go.uber.org/zap"
)

var multipartCmd = &cobra.Command{
	Use:   "multipart",
	Short: "Build and inspect multipart upload documents",
}

var multipartCompleteCmd = &cobra.Command{
	Use:   "complete [etag ...]",
	Short: "Render a multipart completion document",
	Long: `Assemble part identifiers into the CompleteMultipartUpload request
document. Parts are numbered from 1 in input order. Without arguments,
identifiers are read from stdin, one per line.

Examples:
  gostratus multipart complete '"etag-a"' '"etag-b"'
  grep -o '"[a-f0-9]*"' etags.txt | gostratus multipart complete`,
	Args: cobra.ArbitraryArgs,
	RunE: runMultipartComplete,
}

var multipartInitParseCmd = &cobra.Command{
	Use:   "init-parse [file]",
	Short: "Extract the upload ID from an initiate response",
	Long: `Parse an InitiateMultipartUpload response document and print the
upload ID. Reads from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMultipartInitParse,
}

func init() {
	rootCmd.AddCommand(multipartCmd)
	multipartCmd.AddCommand(multipartCompleteCmd)
	multipartCmd.AddCommand(multipartInitParseCmd)
}

func runMultipartComplete(cmd *cobra.Command, args []string) error {
	ids := args
	if len(ids) == 0 {
		var err error
		ids, err = readLines(cmd.InOrStdin())
		if err != nil {
			return exitError(foundry.ExitFileReadError, "Failed to read part identifiers", err)
		}
	}

	parts := make([]object.PartID, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, object.PartID{ContentID: id})
	}

	doc, err := wire.NewCompleteMultipartUpload(parts).Render()
	if err != nil {
		observability.CLILogger.Error("Failed to render completion document", zap.Error(err))
		return exitError(foundry.ExitFileWriteError, "Failed to render completion document", err)
	}

	cmd.Println(doc)
	return nil
}

func runMultipartInitParse(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}

	doc, err := readDocument(name)
	if err != nil {
		return exitError(foundry.ExitFileReadError, "Failed to read initiate response", err)
	}

	var result wire.InitiateMultipartUploadResult
	if err := xml.Unmarshal(doc, &result); err != nil {
		return exitError(foundry.ExitInvalidArgument, "Failed to parse initiate response", err)
	}

	cmd.Println(result.UploadID)
	return nil
}
