package voyage

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soundprediction/go-voyage/pkg/config"
	"github.com/soundprediction/go-voyage/pkg/utils"
)

var (
	searchDocs []string
	searchTopK int
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Rank documents against a query by embedding similarity",
	Long: `Search embeds the given documents and a query, then ranks the
documents by cosine similarity to the query vector. This is a console
demonstration of plugging the embedding client into a retrieval flow.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringArrayVar(&searchDocs, "doc", nil, "document to rank (repeatable)")
	searchCmd.Flags().IntVar(&searchTopK, "top", 3, "number of results to print")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(searchDocs) == 0 {
		return fmt.Errorf("at least one --doc is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := setupLogger(cfg.Log)
	ctx := context.Background()

	// Documents and queries use different input-type hints so the model
	// can optimize vector geometry for retrieval.
	docCfg := *cfg
	docCfg.Embedding.InputType = "document"
	docClient, err := newEmbedderClient(&docCfg, logger)
	if err != nil {
		return err
	}
	defer docClient.Close()

	docVectors, err := docClient.Embed(ctx, searchDocs)
	if err != nil {
		return fmt.Errorf("embedding documents: %w", err)
	}

	queryCfg := *cfg
	queryCfg.Embedding.InputType = "query"
	queryClient, err := newEmbedderClient(&queryCfg, logger)
	if err != nil {
		return err
	}
	defer queryClient.Close()

	queryVector, err := queryClient.EmbedSingle(ctx, args[0])
	if err != nil {
		return fmt.Errorf("embedding query: %w", err)
	}

	matches := utils.TopK(queryVector, docVectors, searchTopK)
	fmt.Printf("Query: %q\n\n", args[0])
	for rank, m := range matches {
		fmt.Printf("%d. [%.4f] %s\n", rank+1, m.Score, searchDocs[m.Index])
	}
	return nil
}
