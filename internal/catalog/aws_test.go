package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	bedrocktypes "github.com/aws/aws-sdk-go-v2/service/bedrock/types"
	"github.com/aws/aws-sdk-go-v2/service/translate"
	translatetypes "github.com/aws/aws-sdk-go-v2/service/translate/types"
)

type fakeTranslateAPI struct {
	input *translate.ListLanguagesInput
	out   *translate.ListLanguagesOutput
	err   error
}

func (f *fakeTranslateAPI) ListLanguages(ctx context.Context, params *translate.ListLanguagesInput, optFns ...func(*translate.Options)) (*translate.ListLanguagesOutput, error) {
	f.input = params
	return f.out, f.err
}

type fakeBedrockAPI struct {
	input *bedrock.ListFoundationModelsInput
	out   *bedrock.ListFoundationModelsOutput
	err   error
}

func (f *fakeBedrockAPI) ListFoundationModels(ctx context.Context, params *bedrock.ListFoundationModelsInput, optFns ...func(*bedrock.Options)) (*bedrock.ListFoundationModelsOutput, error) {
	f.input = params
	return f.out, f.err
}

func TestAWSLanguages_ListLanguages(t *testing.T) {
	api := &fakeTranslateAPI{out: &translate.ListLanguagesOutput{
		Languages: []translatetypes.Language{
			{LanguageCode: aws.String("en"), LanguageName: aws.String("English")},
			{LanguageCode: aws.String("vi"), LanguageName: aws.String("Vietnamese")},
		},
	}}

	got, err := NewAWSLanguages(api).ListLanguages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[1] != (Entry{Code: "vi", Name: "Vietnamese"}) {
		t.Errorf("unexpected entries: %v", got)
	}
	if aws.ToInt32(api.input.MaxResults) != maxLanguages {
		t.Errorf("expected MaxResults %d, got %d", maxLanguages, aws.ToInt32(api.input.MaxResults))
	}
}

func TestAWSLanguages_Error(t *testing.T) {
	api := &fakeTranslateAPI{err: errors.New("denied")}

	if _, err := NewAWSLanguages(api).ListLanguages(context.Background()); err == nil {
		t.Error("expected error")
	}
}

func TestAWSModels_ListModels(t *testing.T) {
	api := &fakeBedrockAPI{out: &bedrock.ListFoundationModelsOutput{
		ModelSummaries: []bedrocktypes.FoundationModelSummary{
			{ModelId: aws.String("anthropic.claude-3-5-sonnet-20240620-v1:0"), ModelName: aws.String("Claude 3.5 Sonnet")},
		},
	}}

	got, err := NewAWSModels(api, "").ListModels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Code != "anthropic.claude-3-5-sonnet-20240620-v1:0" || got[0].Name != "Claude 3.5 Sonnet" {
		t.Errorf("unexpected entries: %v", got)
	}

	if aws.ToString(api.input.ByProvider) != "Anthropic" {
		t.Errorf("expected Anthropic provider filter, got %q", aws.ToString(api.input.ByProvider))
	}
	if api.input.ByOutputModality != bedrocktypes.ModelModalityText {
		t.Errorf("expected TEXT modality, got %q", api.input.ByOutputModality)
	}
	if api.input.ByInferenceType != bedrocktypes.InferenceTypeOnDemand {
		t.Errorf("expected ON_DEMAND inference type, got %q", api.input.ByInferenceType)
	}
}

func TestAWSModels_Error(t *testing.T) {
	api := &fakeBedrockAPI{err: errors.New("denied")}

	if _, err := NewAWSModels(api, "Anthropic").ListModels(context.Background()); err == nil {
		t.Error("expected error")
	}
}
