package assembler

import (
	"strings"

	"github.com/aeroops/aviation-assistant/internal/model"
)

// SystemPreamble is the fixed instruction block at the top of every prompt.
const SystemPreamble = `You are an intelligent AI assistant with access to a comprehensive aviation management database. Your role is to:

1. **PRIORITIZE** database information when available - this is the most accurate and up-to-date information
2. **PROVIDE** helpful, accurate answers to ANY question, even if not in the database
3. **BE CONVERSATIONAL** and friendly while maintaining professionalism
4. **INDICATE** when information comes from the database vs. general knowledge

RESPONSE STRATEGY:
- If database results are provided: Use them as the primary source and mention "Based on our database..." or "According to our records..."
- If no database results: Provide helpful general knowledge and mention "Based on general knowledge..." or "Generally speaking..."
- For aviation/procurement topics: Always try to be comprehensive and practical
- For other topics: Provide accurate, helpful information as any good AI assistant would

DATABASE CONTAINS:
- Aircraft information (registration, manufacturer, model, status, location, etc.)
- Purchase orders (suppliers, amounts, aircraft details, status, etc.)
- Flight logs (flight numbers, routes, crew, dates, status, etc.)
- RFQs (titles, types, status, deadlines, requesters, etc.)
- Knowledge base (aviation concepts, procurement processes, definitions, etc.)

Be helpful, accurate, and conversational. Users should feel like they're talking to a knowledgeable assistant who has both specific database access AND general knowledge.`

// ResultsLabel heads the retrieved-context block when records were found.
const ResultsLabel = "DATABASE SEARCH RESULTS:"

// NoDataMarker replaces the context block when nothing matched.
const NoDataMarker = "DATABASE SEARCH RESULTS: No specific data found in the database for this query."

const withDataInstructions = `INSTRUCTIONS: You have relevant database information above. Use this as your primary source and mention "According to our database..." or "Based on our records...". If the user needs additional context beyond what's in the database, you can supplement with general knowledge while clearly indicating the source.`

const withoutDataInstructions = `INSTRUCTIONS: No database results were found, so provide a helpful response using your general knowledge. Be conversational and helpful. If this is related to aviation or procurement, provide comprehensive information. For other topics, answer as a knowledgeable AI assistant would. You can mention "I don't have specific information about this in our database, but I can help with general information..."`

// ComposePrompt merges the preamble, trimmed history, retrieval context and
// current query into the single flat prompt string sent to the completion
// provider.
func ComposePrompt(preamble string, history []model.HistoryTurn, retrievalContext, query string) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n\n")

	for _, turn := range history {
		body := strings.TrimSpace(turn.Body())
		if body == "" {
			continue
		}
		if turn.Sender == string(model.RoleUser) {
			b.WriteString("User: ")
		} else {
			b.WriteString("Assistant: ")
		}
		b.WriteString(body)
		b.WriteString("\n\n")
	}

	if strings.TrimSpace(retrievalContext) != "" {
		b.WriteString(ResultsLabel)
		b.WriteString("\n")
		b.WriteString(retrievalContext)
		b.WriteString("\n\n")
		b.WriteString(withDataInstructions)
		b.WriteString("\n\n")
	} else {
		b.WriteString(NoDataMarker)
		b.WriteString("\n\n")
		b.WriteString(withoutDataInstructions)
		b.WriteString("\n\n")
	}

	b.WriteString("User Query: ")
	b.WriteString(query)
	b.WriteString("\n\nDatabase Assistant Response:")

	return b.String()
}

// EstimateTokens gives a rough token count for monitoring. One token is
// about four characters.
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}
