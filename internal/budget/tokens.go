package budget

// Token estimation uses a fixed characters-per-token heuristic rather than a
// real tokenizer. All budget math downstream is defined in terms of this
// exact approximation, so the divisor must not change.

// CharsPerToken is the heuristic divisor used by Estimate and by truncation
// when converting a token allowance back into a character count.
const CharsPerToken = 4

// Estimate approximates the number of tokens in text as the rune count
// divided by four, rounded down. Empty text estimates to zero.
func Estimate(text string) int {
	if text == "" {
		return 0
	}
	return len([]rune(text)) / CharsPerToken
}
