package voyage

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soundprediction/go-voyage/pkg/config"
	"github.com/soundprediction/go-voyage/pkg/embedder"
)

var (
	embedInputType string
	embedDimension int
	embedFull      bool
)

var embedCmd = &cobra.Command{
	Use:   "embed [text]...",
	Short: "Generate embedding vectors for one or more texts",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEmbed,
}

func init() {
	embedCmd.Flags().StringVar(&embedInputType, "input-type", "", "input type hint (query, document)")
	embedCmd.Flags().IntVar(&embedDimension, "dimension", 0, "output dimension (0 uses the model default)")
	embedCmd.Flags().BoolVar(&embedFull, "full", false, "print full vectors instead of a preview")
	rootCmd.AddCommand(embedCmd)
}

func runEmbed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if embedInputType != "" {
		cfg.Embedding.InputType = embedInputType
	}
	if embedDimension > 0 {
		cfg.Embedding.OutputDimension = embedDimension
	}

	logger := setupLogger(cfg.Log)
	client, err := newEmbedderClient(cfg, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := context.Background()

	// The Voyage provider also reports token usage; use it when available.
	if voyageClient, ok := client.(*embedder.VoyageEmbedder); ok {
		vectors, usage, err := voyageClient.EmbedWithUsage(ctx, args)
		if err != nil {
			return err
		}
		printVectors(args, vectors)
		fmt.Printf("\nTokens used: %d\n", usage.TotalTokens)
		return nil
	}

	vectors, err := client.Embed(ctx, args)
	if err != nil {
		return err
	}
	printVectors(args, vectors)
	return nil
}

func printVectors(texts []string, vectors [][]float32) {
	for i, vec := range vectors {
		fmt.Printf("%q -> %d dimensions\n", texts[i], len(vec))
		if embedFull {
			fmt.Printf("  %v\n", vec)
			continue
		}
		preview := vec
		if len(preview) > 8 {
			preview = preview[:8]
		}
		fmt.Printf("  %v ...\n", preview)
	}
}
