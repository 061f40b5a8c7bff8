package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"overcue/internal/subtitle"
	"overcue/internal/translate"
)

var translateCmd = &cobra.Command{
	Use:   "translate [subtitle_file]",
	Short: "Translate a subtitle file to another language using AI",
	Long: `Translate a subtitle file to another language before overlaying it.

The --overlay flag produces bilingual captions with the translated text
first, followed by the original text on the next line.

Examples:
  overcue translate movie.srt --target-language japanese
  overcue translate movie.vtt -t spanish --overlay
  overcue translate movie.srt -t french --provider openai -o movie.fr.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().
		StringP("target-language", "t", "", "Target language for translation (required)")
	translateCmd.Flags().
		Bool("overlay", false, "Keep the original text below the translation (bilingual captions)")
	translateCmd.Flags().
		StringP("api-key", "k", "", "API key (or set ANTHROPIC_API_KEY/OPENAI_API_KEY env var)")
	translateCmd.Flags().
		String("model", "", "Model to use for translation (provider-specific default when unset)")
	translateCmd.Flags().
		String("provider", "anthropic", "Translation provider (anthropic, openai)")
	translateCmd.Flags().
		Int("concurrency", 3, "Number of parallel translation workers")
	translateCmd.Flags().
		Int("batch-size", translate.DefaultBatchSize, "Number of cues per API request")

	_ = translateCmd.MarkFlagRequired("target-language")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	ctx := context.Background()

	targetLang, _ := cmd.Flags().GetString("target-language")
	overlay, _ := cmd.Flags().GetBool("overlay")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	providerStr, _ := cmd.Flags().GetString("provider")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	outputPath, _ := cmd.Flags().GetString("output")
	inputLang, _ := cmd.Flags().GetString("language")

	if inputLang != "" &&
		strings.EqualFold(
			strings.TrimSpace(inputLang),
			strings.TrimSpace(targetLang),
		) {
		return fmt.Errorf(
			"input language %q and target language %q cannot be the same",
			inputLang,
			targetLang,
		)
	}

	provider := translate.Provider(providerStr)

	if apiKey == "" {
		switch provider {
		case translate.ProviderAnthropic:
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		case translate.ProviderOpenAI:
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
	}
	if apiKey == "" {
		var envVar string
		switch provider {
		case translate.ProviderAnthropic:
			envVar = "ANTHROPIC_API_KEY"
		case translate.ProviderOpenAI:
			envVar = "OPENAI_API_KEY"
		default:
			envVar = "API_KEY"
		}
		return fmt.Errorf(
			"API key is required: use --api-key flag or set %s environment variable",
			envVar,
		)
	}

	if concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}
	if batchSize <= 0 {
		return fmt.Errorf("batch-size must be positive, got %d", batchSize)
	}

	track, err := subtitle.Open(subtitlePath)
	if err != nil {
		return err
	}
	if len(track.Cues) == 0 {
		return fmt.Errorf("subtitle file contains no usable cues")
	}

	ext := filepath.Ext(subtitlePath)
	if outputPath == "" {
		base := strings.TrimSuffix(subtitlePath, ext)
		if overlay {
			outputPath = fmt.Sprintf("%s.%s.overlay%s", base, targetLang, ext)
		} else {
			outputPath = fmt.Sprintf("%s.%s%s", base, targetLang, ext)
		}
	}

	logger.Infow("Starting subtitle translation",
		"input", subtitlePath,
		"output", outputPath,
		"target_language", targetLang,
		"provider", providerStr,
		"cues", len(track.Cues),
	)

	opts := translate.Options{
		InputLanguage:  inputLang,
		TargetLanguage: targetLang,
		Model:          model,
		BatchSize:      batchSize,
	}

	translator, err := translate.Factory(ctx, provider, apiKey, opts)
	if err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}

	items := make([]translate.TranslationItem, len(track.Cues))
	for i, cue := range track.Cues {
		items[i] = translate.TranslationItem{Index: i, Text: cue.Text}
	}

	var results []translate.TranslationResult
	if concurrent, ok := translator.(translate.ConcurrentTranslator); ok {
		results, err = concurrent.TranslateWithConcurrency(
			ctx,
			items,
			concurrency,
		)
	} else {
		results, err = translator.Translate(ctx, items)
	}
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	logger.Infow("Translation complete", "results", len(results))

	for _, result := range results {
		if result.Index < 0 || result.Index >= len(track.Cues) {
			logger.Warnw("Skipping invalid result index",
				"index", result.Index,
				"max", len(track.Cues)-1,
			)
			continue
		}
		if overlay {
			// translated + newline + original
			track.Cues[result.Index].Text = result.Text +
				"\n" + track.Cues[result.Index].Text
		} else {
			track.Cues[result.Index].Text = result.Text
		}
	}

	writer, err := subtitle.NewWriter(
		subtitle.WriterFormatFromExtension(outputPath),
	)
	if err != nil {
		return err
	}
	if err := writer.Write(track, outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles translated successfully: %s\n", absOutput)
	fmt.Printf("  Cues: %d\n", len(track.Cues))
	fmt.Printf("  Target language: %s\n", targetLang)
	if overlay {
		fmt.Printf("  Mode: bilingual overlay\n")
	}

	return nil
}
