package llm

import (
	"FlowHub/config"
	"FlowHub/pkg/log"
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

var ErrNotConfigured = errors.New("llm api key not configured")

// Client OpenAI 兼容的对话补全客户端
type Client struct {
	client  openai.Client
	model   string
	enabled bool
}

func NewClient(conf *config.Config) *Client {
	opts := []option.RequestOption{option.WithAPIKey(conf.AI.APIKey)}
	if conf.AI.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(conf.AI.BaseURL))
	}
	return &Client{
		client:  openai.NewClient(opts...),
		model:   conf.AI.Model,
		enabled: conf.AI.APIKey != "",
	}
}

// Complete 单轮对话，model 为空时使用配置的默认模型
func (c *Client) Complete(ctx context.Context, model, system, prompt string) (string, error) {
	if !c.enabled {
		return "", ErrNotConfigured
	}
	if model == "" {
		model = c.model
	}
	startTime := time.Now()
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
	}
	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		log.L.Error("chat completion failed", zap.String("model", model), zap.Error(err))
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty completion")
	}
	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	log.L.Info("chat completion", zap.String("model", model), zap.Duration("cost", time.Since(startTime)))
	return content, nil
}

var tagPattern = regexp.MustCompile(`#[^\s#]+`)

// ParseTags 提取 #标签 形式的输出
func ParseTags(input string) []string {
	matches := tagPattern.FindAllString(input, -1)

	tags := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, tag := range matches {
		cleanTag := strings.TrimPrefix(tag, "#")
		if _, ok := seen[cleanTag]; ok {
			continue
		}
		seen[cleanTag] = struct{}{}
		tags = append(tags, cleanTag)
	}
	return tags
}
