// Command scribe runs the generation pipeline once, without a server:
// outline, draft, optional improvement and SEO metadata, then an exported
// file. Useful for scripting and for trying prompts against a local model.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/content"
	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/export"
	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/keyring"
	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/provider"
	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/seo"
)

// CLI defines the scribe command structure.
type CLI struct {
	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate an article and export it"`
	SetKey   SetKeyCmd   `cmd:"" help:"Store a provider API key in the system keychain"`
}

// GenerateCmd runs the full pipeline for one topic.
type GenerateCmd struct {
	Topic    string `arg:"" help:"Article topic"`
	Audience string `flag:"" default:"general readers" help:"Intended audience"`
	Tone     string `flag:"" default:"Informative" help:"Writing tone"`
	Keywords string `flag:"" optional:"" help:"Comma-separated keywords"`
	Words    int    `flag:"" default:"900" help:"Target word count"`

	Improve bool   `flag:"" help:"Run an improvement pass on the draft"`
	SEO     bool   `flag:"" help:"Generate SEO metadata and print the checklist"`
	Format  string `flag:"" default:"markdown" enum:"markdown,pdf" help:"Export format"`
	Output  string `flag:"" default:"." help:"Output directory"`

	Provider        string        `flag:"" env:"PROVIDER" default:"ollama" help:"Completion provider: openai, anthropic, or ollama"`
	OpenAIAPIKey    string        `flag:"" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	OpenAIModel     string        `flag:"" env:"OPENAI_MODEL" default:"gpt-4o-mini" help:"OpenAI model"`
	AnthropicAPIKey string        `flag:"" env:"ANTHROPIC_API_KEY" help:"Anthropic API key"`
	AnthropicModel  string        `flag:"" env:"ANTHROPIC_MODEL" default:"claude-sonnet-4-5-20250929" help:"Anthropic model"`
	OllamaBaseURL   string        `flag:"" env:"OLLAMA_BASE_URL" default:"http://localhost:11434" help:"Ollama base URL"`
	OllamaModel     string        `flag:"" env:"OLLAMA_MODEL" default:"llama3" help:"Ollama model"`
	Temperature     float64       `flag:"" env:"TEMPERATURE" default:"0.5" help:"Sampling temperature"`
	Timeout         time.Duration `flag:"" env:"GENERATE_TIMEOUT" default:"120s" help:"Per-call completion timeout"`
	Wkhtmltopdf     string        `flag:"" env:"WKHTMLTOPDF_PATH" default:"wkhtmltopdf" help:"Path to wkhtmltopdf for PDF export"`
}

// Run executes the generate command.
func (c *GenerateCmd) Run() error {
	gen, err := c.buildProvider()
	if err != nil {
		return err
	}

	req := content.Request{
		Topic:       c.Topic,
		Audience:    c.Audience,
		Tone:        c.Tone,
		Keywords:    content.ParseKeywords(c.Keywords),
		TargetWords: c.Words,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	ctx := context.Background()

	fmt.Fprintln(os.Stderr, "Generating outline...")
	outline, err := c.generate(ctx, gen, content.ModeOutline, req, "")
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "Drafting article...")
	body, err := c.generate(ctx, gen, content.ModeDraft, req, outline)
	if err != nil {
		return err
	}

	if c.Improve {
		fmt.Fprintln(os.Stderr, "Improving draft...")
		body, err = c.generate(ctx, gen, content.ModeImprove, req, body)
		if err != nil {
			return err
		}
	}

	draft := content.Draft{Title: content.ExtractTitle(body), Body: body}

	if c.SEO {
		fmt.Fprintln(os.Stderr, "Generating SEO metadata...")
		raw, err := c.generate(ctx, gen, content.ModeSEOMetadata, req, body)
		if err != nil {
			return err
		}
		meta := content.ParseMetadata(raw)
		if meta.Title != "" {
			draft.Title = meta.Title
		}
		draft.MetaDescription = meta.Description
		draft.Slug = meta.Slug

		printChecklist(seo.Evaluate(draft, req.Keywords, req.TargetWords))
	}

	return c.export(ctx, draft, req.Topic)
}

// generate runs one bounded completion call.
func (c *GenerateCmd) generate(
	ctx context.Context,
	gen provider.Generator,
	mode content.Mode,
	req content.Request,
	text string,
) (string, error) {
	prompt, err := content.BuildPrompt(mode, req, text)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	return gen.Generate(ctx, prompt, c.Temperature)
}

// buildProvider constructs the selected provider, falling back to the system
// keychain for API keys not supplied via flags or environment.
func (c *GenerateCmd) buildProvider() (provider.Generator, error) {
	switch c.Provider {
	case "openai":
		key := c.OpenAIAPIKey
		if key == "" {
			if secret, err := keyring.Get(keyring.OpenAI); err == nil {
				key = secret
			} else {
				slog.Debug("keychain lookup failed", "key", "openai", "error", err)
			}
		}
		return provider.NewOpenAI(key, c.OpenAIModel, "")
	case "anthropic":
		key := c.AnthropicAPIKey
		if key == "" {
			if secret, err := keyring.Get(keyring.Anthropic); err == nil {
				key = secret
			} else {
				slog.Debug("keychain lookup failed", "key", "anthropic", "error", err)
			}
		}
		return provider.NewAnthropic(key, c.AnthropicModel)
	case "ollama":
		return provider.NewOllama(c.OllamaBaseURL, c.OllamaModel)
	default:
		return nil, fmt.Errorf("unknown provider %q: must be openai, anthropic, or ollama", c.Provider)
	}
}

// export writes the artifact to the output directory and prints its path.
func (c *GenerateCmd) export(ctx context.Context, draft content.Draft, topic string) error {
	var artifact export.Artifact
	var err error

	switch export.Format(c.Format) {
	case export.FormatPDF:
		renderer := export.NewPDFRenderer(c.Wkhtmltopdf)
		artifact, err = renderer.PDF(ctx, draft, topic)
		if err != nil {
			return err
		}
	default:
		artifact = export.Markdown(draft, topic)
	}

	path := filepath.Join(c.Output, artifact.Filename)
	if err := os.WriteFile(path, artifact.Bytes, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Println(path)
	return nil
}

func printChecklist(checklist seo.Checklist) {
	fmt.Fprintln(os.Stderr, "SEO checklist:")
	for _, item := range checklist.Items {
		mark := "PASS"
		if !item.Passed {
			mark = "FAIL"
		}
		fmt.Fprintf(os.Stderr, "  [%s] %s: %s\n", mark, item.Rule, item.Detail)
	}
}

// SetKeyCmd stores a provider API key in the keychain.
type SetKeyCmd struct {
	Provider string `arg:"" enum:"openai,anthropic" help:"Provider name"`
	Key      string `arg:"" help:"API key value"`
}

// Run executes the set-key command.
func (c *SetKeyCmd) Run() error {
	entry, err := keyring.ForProvider(c.Provider)
	if err != nil {
		return err
	}

	if err := keyring.Set(entry, c.Key); err != nil {
		return err
	}

	fmt.Printf("Stored %s API key in keychain\n", c.Provider)
	return nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("scribe"),
		kong.Description("One-shot AI content generation and export"),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
