package resources

import "github.com/mark3labs/mcp-go/mcp"

func IDTypesResource() mcp.Resource {
	return mcp.NewResource(
		"docs://id-types",
		"Lark Identifier Types",
		mcp.WithResourceDescription("Reference for the open_id/union_id/user_id identifier types and the receive_id variants the tools accept"),
		mcp.WithMIMEType("text/markdown"),
	)
}
