package service

import (
	"FlowHub/pkg/log"
	"context"
	"fmt"

	"go.uber.org/zap"
)

const defaultTargetLanguage = "en"

// Translator 机器翻译后端
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

var _ ITranslateService = (*TranslateService)(nil)

type ITranslateService interface {
	// Translate 依次尝试 Google 翻译、大模型，全部失败时原文返回
	Translate(ctx context.Context, text, target string) string
}

type TranslateService struct {
	Google Translator
	LLM    Completer
}

func (s *TranslateService) Translate(ctx context.Context, text, target string) string {
	if target == "" {
		target = defaultTargetLanguage
	}

	out, err := s.Google.Translate(ctx, text, target)
	if err == nil && out != "" {
		return out
	}
	log.L.Debug("google translate unavailable", zap.Error(err))

	system := fmt.Sprintf("Translate the user's text into the language with code %q. Output only the translation.", target)
	out, err = s.LLM.Complete(ctx, "", system, text)
	if err == nil && out != "" {
		return out
	}
	log.L.Warn("translate failed, return original text", zap.String("target", target), zap.Error(err))
	return text
}
