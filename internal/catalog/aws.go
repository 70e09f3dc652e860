package catalog

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	bedrocktypes "github.com/aws/aws-sdk-go-v2/service/bedrock/types"
	"github.com/aws/aws-sdk-go-v2/service/translate"
)

// maxLanguages is the largest page Amazon Translate accepts, so the full
// language list arrives in one call.
const maxLanguages = 500

// TranslateAPI is the subset of the Amazon Translate client used here.
type TranslateAPI interface {
	ListLanguages(ctx context.Context, params *translate.ListLanguagesInput, optFns ...func(*translate.Options)) (*translate.ListLanguagesOutput, error)
}

// BedrockAPI is the subset of the Bedrock control-plane client used here.
type BedrockAPI interface {
	ListFoundationModels(ctx context.Context, params *bedrock.ListFoundationModelsInput, optFns ...func(*bedrock.Options)) (*bedrock.ListFoundationModelsOutput, error)
}

// AWSLanguages lists the languages supported by Amazon Translate.
type AWSLanguages struct {
	client TranslateAPI
}

func NewAWSLanguages(client TranslateAPI) *AWSLanguages {
	return &AWSLanguages{client: client}
}

func (s *AWSLanguages) ListLanguages(ctx context.Context) ([]Entry, error) {
	out, err := s.client.ListLanguages(ctx, &translate.ListLanguagesInput{
		MaxResults: aws.Int32(maxLanguages),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(out.Languages))
	for _, l := range out.Languages {
		entries = append(entries, Entry{
			Code: aws.ToString(l.LanguageCode),
			Name: aws.ToString(l.LanguageName),
		})
	}
	return entries, nil
}

// AWSModels lists the on-demand Anthropic text models available on Bedrock.
type AWSModels struct {
	client   BedrockAPI
	provider string
}

// NewAWSModels creates a model lister. An empty provider selects Anthropic,
// the only provider whose request format the translator speaks.
func NewAWSModels(client BedrockAPI, provider string) *AWSModels {
	if provider == "" {
		provider = "Anthropic"
	}
	return &AWSModels{client: client, provider: provider}
}

func (s *AWSModels) ListModels(ctx context.Context) ([]Entry, error) {
	out, err := s.client.ListFoundationModels(ctx, &bedrock.ListFoundationModelsInput{
		ByProvider:       aws.String(s.provider),
		ByOutputModality: bedrocktypes.ModelModalityText,
		ByInferenceType:  bedrocktypes.InferenceTypeOnDemand,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(out.ModelSummaries))
	for _, m := range out.ModelSummaries {
		entries = append(entries, Entry{
			Code: aws.ToString(m.ModelId),
			Name: aws.ToString(m.ModelName),
		})
	}
	return entries, nil
}
