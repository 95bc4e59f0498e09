package assistant

import (
	"github.com/pkoukk/tiktoken-go"
)

// CountTokens estimates how many tokens a prompt costs for the given model.
// OpenRouter model IDs are unknown to tiktoken, so unknown models fall back
// to the cl100k_base encoding, which is close enough for showing the user
// how much of their max-tokens budget a prompt eats.
func CountTokens(model, text string) int {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			// Rough chars-per-token heuristic when the encodings are missing.
			return len(text) / 4
		}
	}
	return len(enc.Encode(text, nil, nil))
}
