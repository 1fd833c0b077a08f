package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/ScienHAC/ventspace/internal/config"
	"github.com/ScienHAC/ventspace/internal/model/chat"
)

// arkGenerator runs replies through an Ark-hosted chat model using a
// compiled eino chain.
type arkGenerator struct {
	chain compose.Runnable[map[string]any, *schema.Message]
}

func newArkGenerator(ctx context.Context, cfg config.AIConfig) (*arkGenerator, error) {
	chatModel, err := cfg.NewArkChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &arkGenerator{chain: runnable}, nil
}

func (g *arkGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	history := make([]*schema.Message, 0, len(req.History))
	for _, turn := range req.History {
		switch turn.Sender {
		case chat.SenderUser:
			history = append(history, schema.UserMessage(turn.Text))
		case chat.SenderAssistant:
			history = append(history, schema.AssistantMessage(turn.Text, nil))
		}
	}

	input := map[string]any{
		"system":  buildSystemPrompt(req.Assessment),
		"history": history,
		"query":   req.Message,
	}

	response, err := g.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run AI chain: %w", err)
	}
	if response == nil {
		return "", fmt.Errorf("AI chain returned no message")
	}

	return strings.TrimSpace(response.Content), nil
}
