package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/driveagent/internal/tool"
)

// Resource URIs for the tool descriptors.
const (
	DriveDescriptorURI = "tool://google-drive/descriptor"
	HashDescriptorURI  = "tool://hash/descriptor"
)

// RegisterDescriptorResources registers the static tool descriptors as
// MCP resources so clients can fetch the schemas without invoking the
// tools.
func RegisterDescriptorResources(s *mcpserver.MCPServer) error {
	driveResource := mcp.NewResource(
		DriveDescriptorURI,
		"Google Drive Tool Descriptor",
		mcp.WithResourceDescription("Input schema and description of the google_drive tool"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(driveResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return descriptorContents(request.Params.URI, tool.DriveDescriptor())
	})

	hashResource := mcp.NewResource(
		HashDescriptorURI,
		"Hashing Tool Descriptor",
		mcp.WithResourceDescription("Input schema and description of the hash_string tool"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(hashResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return descriptorContents(request.Params.URI, tool.HashDescriptor())
	})

	return nil
}

// descriptorContents renders a descriptor as a JSON resource payload.
func descriptorContents(uri string, desc tool.Descriptor) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal descriptor: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
