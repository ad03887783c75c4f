package openai

import (
	"github.com/BaconStrps/go-gpt/core"
	"github.com/BaconStrps/go-gpt/providers"
)

func init() {
	providers.Register("openai", func(apiKey string) core.Provider {
		return New(apiKey)
	})
}
