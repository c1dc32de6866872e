package ai

import "fmt"

const summaryPrompt = `
You are an AI that summarizes YouTube transcripts.
Provide a concise summary with key points, highlights, and insights.

Transcript: %s
`

// BuildSummaryPrompt embeds the transcript text verbatim into the summary template.
// The text is not truncated.
func BuildSummaryPrompt(transcriptText string) string {
	return fmt.Sprintf(summaryPrompt, transcriptText)
}
