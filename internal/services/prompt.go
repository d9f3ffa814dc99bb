package services

import (
	"fmt"
	"strings"
)

// PersonaName is the person replies are drafted for.
const PersonaName = "Ivan Grebenshchikov"

// CVSummary grounds the reply in Ivan's experience. It is fixed and never
// derived from the request.
const CVSummary = `Ivan Grebenshchikov is a Senior Software Engineer with 6+ years of experience in web and backend development.

Key Skills (strong expertise):
- Python (Django, FastAPI, Flask)
- JavaScript/TypeScript (React, Vue.js)
- SQL Databases (especially PostgreSQL)
- Web Technologies (REST, HTTP)
- Git, Docker

Additional Experience (familiar but not expert):
- Redis, Celery, RabbitMQ
- MongoDB
- Cloud Platforms (Azure, AWS, GCP)
- Rust, C++, Java, C#, PHP`

// ReplyDirective is the user turn sent next to the system prompt.
const ReplyDirective = "Generate a reply to the recruiter's last message."

const (
	replyMaxTokens   = 300
	replyTemperature = 0.7
)

var replyGuidelines = []string{
	"Write a short, natural, and friendly reply (2-4 sentences max).",
	"Use the same language as the recruiter.",
	"Keep it informal but professional.",
	"Add explicit newline characters between sentences to make the text look natural and easy to read.",
	"Return only the reply text, no additional commentary.",
	"Never use the em dash symbol (—). Always use a regular hyphen surrounded by spaces ( - ) instead.",
	"Do not use any text formatting like markdown bold (**text**). Respond with plain regular text only.",
	"Do NOT add a greeting if the recruiter's last message already contains one.",
}

// FewShotReplies show the expected tone and layout.
var FewShotReplies = []string{
	`Hi, Artiom!

Thank you for the offer. Yes, I worked a lot with client-server architecture.

And yes, I would like to talk about it in more detail.

Do you have time today or on Friday? I'm in UTC+2 timezone.

Hope to hear from you soon!`,
	`Hi Luc,

Thank you for the opportunity. It sounds amazing!

I like the full-stack role, and I'm thrilled by your company's mission.

So, yes - I'd really like to discuss this in detail.

Would you have time tomorrow between 2:30 and 4:30 PM (UTC+2)?`,
	`Hi, Kevin!

Sounds interesting for me.

I am full-stack engineer and I developed customer services. I didn't work with AI directly, but I'm interested in this and understand the value of this topic.

So yes, I would like to talk to you today or next week.

I will have quite busy Mon and Tue, but starting from Wed it's fine.

Does it suit you?

All the best, Ivan`,
}

// BuildReplyPrompt assembles the system prompt around an already formatted
// transcript.
func BuildReplyPrompt(transcript string) string {
	var b strings.Builder

	// Persona
	b.WriteString(fmt.Sprintf("You are helping %s reply to recruiters on LinkedIn.\n", PersonaName))
	b.WriteString(fmt.Sprintf("Here is %s's CV summary for context:\n\n", firstName(PersonaName)))

	// Background
	b.WriteString(CVSummary)
	b.WriteString("\n\n")

	// Guidelines
	b.WriteString("Guidelines for the reply:\n")
	for i, g := range replyGuidelines {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, g))
	}
	b.WriteString("\n")

	// Examples
	b.WriteString("Examples of good replies:\n---\n")
	for i, ex := range FewShotReplies {
		b.WriteString(fmt.Sprintf("Example %d:\n", i+1))
		b.WriteString(ex)
		b.WriteString("\n---\n\n")
	}

	// Conversation
	b.WriteString("Current conversation:\n")
	b.WriteString(transcript)
	b.WriteString("\n---\n")
	b.WriteString("Now generate a reply to the recruiter's last message.\n")

	return b.String()
}

func firstName(fullName string) string {
	if i := strings.IndexByte(fullName, ' '); i > 0 {
		return fullName[:i]
	}
	return fullName
}
