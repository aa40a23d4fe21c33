// Package fallback produces free-text replies for utterances no intent covers.
package fallback

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nadzzz/lingodesk/internal/interpreter"
)

// Temperature is the sampling temperature for generated replies.
const Temperature = 0.7

// Persona is the system instruction sent with every generated reply.
const Persona = `You are a helpful customer support agent. Provide a helpful and friendly response in the same language the customer is using.
Your responses should be concise but complete.
You should be polite and professional at all times.
If you don't know something, be honest about it.
Do not make up information.`

var apologies = map[string]string{
	"en": "I apologize, but I'm having trouble generating a response. Please try again later.",
	"es": "Me disculpo, pero estoy teniendo problemas para generar una respuesta. Por favor, inténtelo de nuevo más tarde.",
	"fr": "Je m'excuse, mais j'ai des difficultés à générer une réponse. Veuillez réessayer plus tard.",
	"de": "Ich entschuldige mich, aber ich habe Schwierigkeiten, eine Antwort zu generieren. Bitte versuchen Sie es später noch einmal.",
	"zh": "很抱歉，我在生成回复时遇到了问题。请稍后再试。",
	"ja": "申し訳ありませんが、応答の生成に問題があります。後でもう一度お試しください。",
	"ko": "죄송합니다만, 응답을 생성하는 데 문제가 있습니다. 나중에 다시 시도해 주세요.",
	"ru": "Приношу извинения, но у меня возникли проблемы с генерацией ответа. Пожалуйста, повторите попытку позже.",
	"pt": "Peço desculpas, mas estou tendo problemas para gerar uma resposta. Por favor, tente novamente mais tarde.",
	"it": "Mi scuso, ma sto avendo problemi a generare una risposta. Per favore riprova più tardi.",
}

// Apology returns the apology for lang, or the English one.
func Apology(lang string) string {
	if msg, ok := apologies[lang]; ok {
		return msg
	}
	return apologies["en"]
}

// Generator asks the completion backend for a support reply.
type Generator struct {
	completer interpreter.Completer
	model     string
}

// New creates a Generator. model may be empty to use the backend default.
func New(c interpreter.Completer, model string) *Generator {
	return &Generator{completer: c, model: model}
}

// Generate returns the model's reply to text. The boolean is false when the
// returned string is the apology for lang instead.
func (g *Generator) Generate(ctx context.Context, text, lang string) (string, bool) {
	reply, err := g.completer.Complete(ctx, interpreter.Request{
		Model:       g.model,
		System:      Persona,
		Prompt:      text,
		Temperature: Temperature,
	})
	if err != nil {
		slog.Warn("generative reply failed, returning apology", "language", lang, "error", err)
		return Apology(lang), false
	}
	if strings.TrimSpace(reply) == "" {
		slog.Warn("generative reply was empty, returning apology", "language", lang)
		return Apology(lang), false
	}
	return reply, true
}
