package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"github.com/PreranaYekkele/CalmBot/internal/domain"
)

const classifyInstructions = `You label short chat messages with exactly one emotion.
Allowed labels: anxiety, depression, anger, general.
Reply with the single label only, lowercase, no punctuation.
Use "general" when no clear emotion is present.`

// OpenAIClassifier is the model-backed EmotionClassifier variant. It
// is never the default; the rule-based classifier fully satisfies the
// contract without it.
type OpenAIClassifier struct {
	client *openai.Client
	model  string
}

// NewOpenAIClassifier builds the classifier. model is required; the
// API key comes from the argument or, when empty, the client's
// OPENAI_API_KEY environment lookup.
func NewOpenAIClassifier(apiKey, model string) (*OpenAIClassifier, error) {
	if model == "" {
		return nil, fmt.Errorf("%w: openai model is empty", domain.ErrInvalidConfig)
	}

	var opts []option.RequestOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	client := openai.NewClient(opts...)

	return &OpenAIClassifier{
		client: &client,
		model:  model,
	}, nil
}

// Classify implements domain.EmotionClassifier. On transport or parse
// failure it returns general along with the error; the engine treats
// that as the soft no-match path.
func (c *OpenAIClassifier) Classify(ctx context.Context, text string) (domain.Emotion, error) {
	params := responses.ResponseNewParams{
		Model:           c.model,
		MaxOutputTokens: openai.Int(8),
		Instructions:    openai.String(classifyInstructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(text, responses.EasyInputMessageRoleUser),
			},
		},
	}

	resp, err := c.client.Responses.New(ctx, params)
	if err != nil {
		return domain.EmotionGeneral, fmt.Errorf("openai classify: %w", err)
	}

	return ParseLabel(resp.OutputText()), nil
}

// ParseLabel normalizes a model reply into an emotion, falling back to
// general for anything outside the taxonomy.
func ParseLabel(raw string) domain.Emotion {
	label := strings.ToLower(strings.TrimSpace(raw))
	label = strings.Trim(label, `."'`)

	switch domain.Emotion(label) {
	case domain.EmotionAnxiety, domain.EmotionDepression, domain.EmotionAnger:
		return domain.Emotion(label)
	default:
		return domain.EmotionGeneral
	}
}
