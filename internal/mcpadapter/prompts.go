package mcpadapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AddPrompts registers prompt templates guiding a client through common
// search workflows. Prompts take no dependencies; they only shape text.
func AddPrompts(server *mcp.Server) {
	server.AddPrompt(&mcp.Prompt{
		Name:        "search_prompt",
		Description: "Generate a document search prompt for a topic",
		Arguments: []*mcp.PromptArgument{
			{Name: "topic", Description: "The topic to search for", Required: true},
			{Name: "focus", Description: "Specific focus area (default: general)"},
		},
	}, searchPrompt)

	server.AddPrompt(&mcp.Prompt{
		Name:        "filter_search_prompt",
		Description: "Generate a filtered search prompt with metadata constraints",
		Arguments: []*mcp.PromptArgument{
			{Name: "query", Description: "The search query", Required: true},
			{Name: "author", Description: "Filter by author"},
			{Name: "language", Description: "Filter by language"},
			{Name: "date_range", Description: "Date range for filtering"},
		},
	}, filterSearchPrompt)

	server.AddPrompt(&mcp.Prompt{
		Name:        "analyze_collection_prompt",
		Description: "Generate a prompt for analyzing a collection's contents",
		Arguments: []*mcp.PromptArgument{
			{Name: "collection_name", Description: "Name of the collection to analyze", Required: true},
		},
	}, analyzeCollectionPrompt)
}

func searchPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic := req.Params.Arguments["topic"]
	if topic == "" {
		return nil, fmt.Errorf("argument 'topic' is required")
	}
	focus := req.Params.Arguments["focus"]
	if focus == "" {
		focus = "general"
	}

	text := fmt.Sprintf("Search the indexed collections for information about %s, focusing on %s aspects.", topic, focus)
	return promptResult(text), nil
}

func filterSearchPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	query := req.Params.Arguments["query"]
	if query == "" {
		return nil, fmt.Errorf("argument 'query' is required")
	}

	var filters []string
	if author := req.Params.Arguments["author"]; author != "" {
		filters = append(filters, "author: "+author)
	}
	if language := req.Params.Arguments["language"]; language != "" {
		filters = append(filters, "language: "+language)
	}
	if dateRange := req.Params.Arguments["date_range"]; dateRange != "" {
		filters = append(filters, "date range: "+dateRange)
	}

	filterStr := ""
	if len(filters) > 0 {
		filterStr = " with filters: " + strings.Join(filters, ", ")
	}

	text := fmt.Sprintf(`Search for: %s%s

Please perform a filtered search and:
1. Apply the specified metadata filters
2. Rank results by relevance
3. Include document metadata in the response
4. Highlight the matching criteria`, query, filterStr)
	return promptResult(text), nil
}

func analyzeCollectionPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	collection := req.Params.Arguments["collection_name"]
	if collection == "" {
		return nil, fmt.Errorf("argument 'collection_name' is required")
	}

	text := fmt.Sprintf(`Please analyze the '%s' collection:

1. Get the collection status to understand document counts
2. List a sample of documents to understand the content types
3. Identify common metadata patterns
4. Suggest optimal search strategies for this collection
5. Recommend any maintenance or optimization actions

Provide a comprehensive overview of the collection's structure and contents.`, collection)
	return promptResult(text), nil
}

func promptResult(text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: text},
			},
		},
	}
}
