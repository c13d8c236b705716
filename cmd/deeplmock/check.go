package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/deeplmock/internal/deepl"
)

func newCheckCommand() *cobra.Command {
	var (
		baseURL string
		authKey string
		tier    string
	)
	command := &cobra.Command{
		Use:   "check",
		Short: "Run smoke checks against a running server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := deepl.NewClient(baseURL, authKey, deepl.Tier(tier), 3)
			defer func() {
				_ = client.Close()
			}()

			return runChecks(cmd.Context(), client, cmd.OutOrStdout())
		},
	}
	command.Flags().StringVar(&baseURL, "base-url", "http://localhost:8000", "base URL of the server to check")
	command.Flags().StringVar(&authKey, "auth-key", "smoke-test-key", "auth key to send")
	command.Flags().StringVar(&tier, "tier", string(deepl.TierFree), "API tier to check (free or pro)")

	return command
}

type smokeCheck struct {
	name string
	run  func(ctx context.Context, api deepl.API) error
}

func runChecks(ctx context.Context, api deepl.API, out io.Writer) error {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	failed := 0
	for _, check := range smokeChecks() {
		if err := check.run(ctx, api); err != nil {
			failed++
			red.Fprintf(out, "✗ %s: %v\n", check.name, err)
			continue
		}
		green.Fprintf(out, "✓ %s\n", check.name)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(smokeChecks()))
	}
	return nil
}

func smokeChecks() []smokeCheck {
	return []smokeCheck{
		{
			name: "health",
			run: func(ctx context.Context, api deepl.API) error {
				message, err := api.Health(ctx)
				if err != nil {
					return err
				}
				if message == "" {
					return fmt.Errorf("empty health message")
				}
				return nil
			},
		},
		{
			name: "translate",
			run: func(ctx context.Context, api deepl.API) error {
				texts, err := api.Translate(ctx, deepl.TranslateRequest{
					TargetLang: "ja",
					Texts:      []string{"Hello"},
				})
				if err != nil {
					return err
				}
				if len(texts) != 1 {
					return fmt.Errorf("expected 1 translation, got %d", len(texts))
				}
				return nil
			},
		},
		{
			name: "identity translate",
			run: func(ctx context.Context, api deepl.API) error {
				texts, err := api.Translate(ctx, deepl.TranslateRequest{
					SourceLang: "en",
					TargetLang: "en",
					Texts:      []string{"Hello"},
				})
				if err != nil {
					return err
				}
				if len(texts) != 1 || texts[0] != "Hello" {
					return fmt.Errorf("expected the input back, got %v", texts)
				}
				return nil
			},
		},
		{
			name: "usage",
			run: func(ctx context.Context, api deepl.API) error {
				usage, err := api.Usage(ctx)
				if err != nil {
					return err
				}
				if usage.CharacterLimit <= 0 {
					return fmt.Errorf("non-positive character limit %d", usage.CharacterLimit)
				}
				return nil
			},
		},
		{
			name: "languages",
			run: func(ctx context.Context, api deepl.API) error {
				languages, err := api.Languages(ctx, "target")
				if err != nil {
					return err
				}
				if len(languages) == 0 {
					return fmt.Errorf("no target languages")
				}
				return nil
			},
		},
		{
			name: "glossaries",
			run: func(ctx context.Context, api deepl.API) error {
				created, err := api.CreateGlossary(ctx, deepl.GlossaryRequest{
					Name: "smoke check",
					Dictionaries: []deepl.DictionaryEntries{
						{
							SourceLang:    "EN",
							TargetLang:    "JA",
							Entries:       "Hello\tこんにちは",
							EntriesFormat: "tsv",
						},
					},
				})
				if err != nil {
					return err
				}
				if err := api.PatchGlossary(ctx, created.GlossaryID, deepl.GlossaryRequest{
					Name: "smoke check renamed",
				}); err != nil {
					return err
				}
				return api.DeleteGlossary(ctx, created.GlossaryID)
			},
		},
	}
}
