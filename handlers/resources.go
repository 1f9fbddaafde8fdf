package handlers

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
)

func GetIDTypes(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	content, err := os.ReadFile("./docs/id-types.md")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:  "docs://id-types",
			Text: string(content),
		},
	}, nil
}
