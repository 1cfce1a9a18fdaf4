package ai

import (
	"fmt"
	"strings"

	"github.com/zhouzirui/solace/backend/internal/analysis/distress"
	"github.com/zhouzirui/solace/backend/internal/model/language"
)

// PromptTemplate holds the fixed parts of the system instruction.
type PromptTemplate struct {
	Role          string
	StyleRules    []string
	CrisisRules   []string
	ElevatedRules []string
	ReassureRules []string
}

// PromptBuilder renders the language-aware system instruction.
type PromptBuilder struct {
	languages language.Store
	template  PromptTemplate
}

// NewPromptBuilder creates a builder with the default template.
func NewPromptBuilder(languages language.Store) *PromptBuilder {
	return &PromptBuilder{languages: languages, template: defaultTemplate()}
}

// Build creates the system prompt for a reply in lang.
func (pb *PromptBuilder) Build(lang string, assessment distress.Assessment) string {
	name := language.NameOf(pb.languages, lang)

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf(`%s

Language:
- Respond exclusively in %s, whatever language the instructions are written in.
- Do not translate the user's words back to them or mix in other languages.

Style:
- %s`,
		pb.template.Role,
		name,
		strings.Join(pb.template.StyleRules, "\n- "),
	))

	builder.WriteString("\n\nGuidance:\n- ")
	switch assessment.Level {
	case distress.Crisis:
		builder.WriteString(strings.Join(pb.template.CrisisRules, "\n- "))
	case distress.Elevated:
		builder.WriteString(strings.Join(pb.template.ElevatedRules, "\n- "))
	default:
		builder.WriteString(strings.Join(pb.template.ReassureRules, "\n- "))
	}

	return builder.String()
}

func defaultTemplate() PromptTemplate {
	return PromptTemplate{
		Role: `You are Solace, a compassionate peer supporter in an anonymous mental-health chat. You are not a therapist. You listen, reflect feelings back and help the person feel less alone.`,
		StyleRules: []string{
			"Be empathetic, warm and non-judgmental",
			"Use a natural conversational tone, two to four sentences",
			"Avoid clinical, diagnostic or robotic phrasing",
			"Validate the feeling before offering anything else",
			"End with a gentle open question that invites the person to share more",
		},
		CrisisRules: []string{
			"The message may describe thoughts of suicide or self-harm",
			"Acknowledge the pain directly and calmly, without panic or lecturing",
			"Clearly encourage contacting a crisis line, emergency services or a trusted person right now",
			"Ask whether they are safe at this moment",
		},
		ElevatedRules: []string{
			"The person sounds distressed, lonely or anxious",
			"Offer one small, concrete coping idea such as slow breathing or reaching out to someone they trust",
			"Do not suggest professional help unless they ask for it",
		},
		ReassureRules: []string{
			"Offer validation and, if it fits, a simple coping strategy",
			"Do not suggest professional help for everyday worries",
		},
	}
}
