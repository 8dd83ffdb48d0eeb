// Command agentdemo runs a local agent that drives A2UI surfaces.
//
// It connects an Anthropic model to a surface registry through a single
// send_a2ui_message tool: the model emits protocol envelopes as tool
// calls, the registry applies them, and the resulting surface lifecycle
// is printed to stdout. The component catalog document is placed in the
// system prompt so the model knows which component types it may use.
//
// Configuration is via environment variables:
//
//	ANTHROPIC_API_KEY - Anthropic API key (required)
//	A2UI_DEMO_MODEL   - Model override (default: claude-sonnet-4-5)
//
// Usage:
//
//	ANTHROPIC_API_KEY=... go run ./cmd/agentdemo
//	> show me a login form
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/joho/godotenv"

	"github.com/surfacekit/a2ui/catalog"
	"github.com/surfacekit/a2ui/surface"
)

const defaultModel = "claude-sonnet-4-5"

func main() {
	godotenv.Load()

	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "ANTHROPIC_API_KEY is required")
		os.Exit(1)
	}
	model := os.Getenv("A2UI_DEMO_MODEL")
	if model == "" {
		model = defaultModel
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	cat := catalog.Core()
	reg := surface.NewRegistry(logger)
	defer reg.Close()

	go printLifecycle(reg)

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	systemPrompt, err := buildSystemPrompt(cat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build system prompt: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("a2ui agent demo - describe the UI you want, ctrl-d to quit")
	ctx := context.Background()
	var history []anthropic.MessageParam

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			fmt.Print("> ")
			continue
		}
		history = append(history, anthropic.NewUserMessage(anthropic.NewTextBlock(line)))

		history, err = runTurn(ctx, &client, reg, model, systemPrompt, history)
		if err != nil {
			fmt.Fprintf(os.Stderr, "turn failed: %v\n", err)
		}
		fmt.Print("> ")
	}
	fmt.Println()
}

// runTurn sends the conversation and applies every envelope the model
// emits, looping until the model stops calling the tool.
func runTurn(ctx context.Context, client *anthropic.Client, reg *surface.Registry, model, systemPrompt string, history []anthropic.MessageParam) ([]anthropic.MessageParam, error) {
	for {
		resp, err := client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     anthropic.Model(model),
			MaxTokens: 4096,
			System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
			Messages:  history,
			Tools:     []anthropic.ToolUnionParam{envelopeTool()},
		})
		if err != nil {
			return history, err
		}

		var assistantBlocks []anthropic.ContentBlockParamUnion
		var toolResults []anthropic.ContentBlockParamUnion
		for _, block := range resp.Content {
			switch block.Type {
			case "text":
				fmt.Println(block.Text)
				assistantBlocks = append(assistantBlocks, anthropic.NewTextBlock(block.Text))
			case "tool_use":
				var input any
				json.Unmarshal(block.Input, &input)
				assistantBlocks = append(assistantBlocks, anthropic.NewToolUseBlock(block.ID, input, block.Name))

				result, isError := applyEnvelope(reg, block.Input)
				toolResults = append(toolResults, anthropic.NewToolResultBlock(block.ID, result, isError))
			}
		}
		if len(assistantBlocks) > 0 {
			history = append(history, anthropic.MessageParam{
				Role:    anthropic.MessageParamRoleAssistant,
				Content: assistantBlocks,
			})
		}
		if len(toolResults) == 0 {
			return history, nil
		}
		history = append(history, anthropic.MessageParam{
			Role:    anthropic.MessageParamRoleUser,
			Content: toolResults,
		})
	}
}

// applyEnvelope feeds one tool-call envelope into the registry.
func applyEnvelope(reg *surface.Registry, input json.RawMessage) (result string, isError bool) {
	var payload map[string]any
	if err := json.Unmarshal(input, &payload); err != nil {
		return fmt.Sprintf("invalid envelope JSON: %v", err), true
	}
	if err := reg.HandleMessage(payload); err != nil {
		return err.Error(), true
	}
	return "applied", false
}

// printLifecycle echoes surface lifecycle to stdout.
func printLifecycle(reg *surface.Registry) {
	events, stop := reg.Events()
	defer stop()
	for ev := range events {
		switch ev.Kind {
		case surface.SurfaceAdded:
			fmt.Printf("[surface %s] added, root=%s, %d components\n",
				ev.SurfaceID, ev.Definition.RootComponentID, len(ev.Definition.Components))
		case surface.SurfaceUpdated:
			fmt.Printf("[surface %s] updated, %d components\n",
				ev.SurfaceID, len(ev.Definition.Components))
		case surface.SurfaceRemoved:
			fmt.Printf("[surface %s] removed\n", ev.SurfaceID)
		}
	}
}
