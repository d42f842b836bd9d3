package narration

import "fmt"

const narrationPrompt = `Write the voice-over for a 50 second vertical short video about "%s".

Audience: people in India who want practical legal guidance, plus law students and young lawyers.

Rules:
- Plain spoken English, 90 to 120 words, short sentences that end with a period, question mark or exclamation mark
- Open with a surprising fact or a direct question
- Give concrete steps, the relevant Indian law or portal, and any time limits
- Close with one line asking viewers to follow for a daily legal tip
- No emojis, no hashtags, no markdown, no stage directions, no disclaimers
- Output only the narration text`

func buildPrompt(topic string) string {
	return fmt.Sprintf(narrationPrompt, topic)
}
