package utils

import (
	"github.com/pkoukk/tiktoken-go"
)

// EstimateTokens returns a rough token count for a prompt. The encoding is an
// approximation for non-OpenAI models; it is only used for debug logging.
func EstimateTokens(text string) (int, error) {
	tkm, err := tiktoken.EncodingForModel("gpt-4-0613")
	if err != nil {
		return 0, err
	}

	return len(tkm.Encode(text, nil, nil)), nil
}
