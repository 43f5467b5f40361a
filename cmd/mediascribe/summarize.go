package main

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/mediascribe/internal/summarizer"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [FILE]",
	Short: "Turn a transcript into a blog post or a wiki article",
	Example: `  # Summarize the transcript written by the last run
  mediascribe summarize

  # Dense article with a custom context and a .docx copy
  mediascribe summarize transcript.txt --output-type article --context "a lecture on transformers" --docx`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("output-type") {
			cfg.Summary.OutputType, _ = flags.GetString("output-type")
		}
		if flags.Changed("general-context") {
			cfg.Summary.GeneralContext, _ = flags.GetString("general-context")
		}
		if flags.Changed("context") {
			cfg.Summary.Context, _ = flags.GetString("context")
		}
		if flags.Changed("docx") {
			cfg.Summary.Docx, _ = flags.GetBool("docx")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		sourcePath := cfg.Paths.Transcript
		if len(args) == 1 {
			sourcePath = args[0]
		}

		llm, err := summarizer.NewLLM(cfg, log)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		out, err := summarizer.New(cfg, llm, log).Summarize(ctx, sourcePath, summarizer.Prompt{
			OutputType:     cfg.Summary.OutputType,
			GeneralContext: cfg.Summary.GeneralContext,
			Context:        cfg.Summary.Context,
		})
		if err != nil {
			return err
		}

		log.Info(ctx, "Summarized %s in %d step(s) -> %s", sourcePath, len(out.Steps), cfg.Paths.Summary)
		return nil
	},
}

func init() {
	summarizeCmd.Flags().String("output-type", "", "blog or article")
	summarizeCmd.Flags().String("general-context", "", "Sentence prepended to every prompt")
	summarizeCmd.Flags().String("context", "", "What the transcript was generated from")
	summarizeCmd.Flags().Bool("docx", false, "Also write a .docx copy of the summary")
	rootCmd.AddCommand(summarizeCmd)
}
