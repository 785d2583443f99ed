package translate

import (
	"FlowHub/config"
	"context"
	"errors"

	"golang.org/x/net/html"
	"google.golang.org/api/option"
	gtranslate "google.golang.org/api/translate/v2"
)

var ErrNotConfigured = errors.New("google translate api key not configured")

// GoogleTranslator Cloud Translation v2，使用 API Key 鉴权
type GoogleTranslator struct {
	apiKey string
}

func NewGoogleTranslator(conf *config.Config) *GoogleTranslator {
	return &GoogleTranslator{apiKey: conf.Translate.GoogleAPIKey}
}

func (g *GoogleTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	if g.apiKey == "" {
		return "", ErrNotConfigured
	}
	svc, err := gtranslate.NewService(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", err
	}
	resp, err := svc.Translations.List([]string{text}, target).Format("text").Context(ctx).Do()
	if err != nil {
		return "", err
	}
	if len(resp.Translations) == 0 {
		return "", errors.New("empty translation")
	}
	return html.UnescapeString(resp.Translations[0].TranslatedText), nil
}
