package openai

import "github.com/BaconStrps/go-gpt/core"

// Model constants for OpenAI models.
const (
	// Chat models
	ModelGPT35Turbo     core.ModelID = "gpt-3.5-turbo"
	ModelGPT35Turbo0301 core.ModelID = "gpt-3.5-turbo-0301"

	// Completion models
	ModelTextDavinci003 core.ModelID = "text-davinci-003"
	ModelTextDavinci002 core.ModelID = "text-davinci-002"
	ModelCodeDavinci002 core.ModelID = "code-davinci-002"
)

// models is the static list of supported models.
var models = []core.ModelInfo{
	{
		ID:           ModelGPT35Turbo,
		DisplayName:  "GPT-3.5 Turbo",
		Capabilities: []core.Feature{core.FeatureChat},
	},
	{
		ID:           ModelGPT35Turbo0301,
		DisplayName:  "GPT-3.5 Turbo (2023-03-01)",
		Capabilities: []core.Feature{core.FeatureChat},
	},
	{
		ID:           ModelTextDavinci003,
		DisplayName:  "Text Davinci 003",
		Capabilities: []core.Feature{core.FeatureCompletion},
	},
	{
		ID:           ModelTextDavinci002,
		DisplayName:  "Text Davinci 002",
		Capabilities: []core.Feature{core.FeatureCompletion},
	},
	{
		ID:           ModelCodeDavinci002,
		DisplayName:  "Code Davinci 002",
		Capabilities: []core.Feature{core.FeatureCompletion},
	},
}
