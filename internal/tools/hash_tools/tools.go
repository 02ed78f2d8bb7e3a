package hash_tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/driveagent/internal/server"
	"github.com/teemow/driveagent/internal/tool"
	"github.com/teemow/driveagent/internal/tools/common"
)

// ToolName is the MCP name of the hashing tool.
const ToolName = "hash_string"

// RegisterHashTools registers the hashing tool with the MCP server.
func RegisterHashTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	desc := tool.HashDescriptor()

	hashTool := mcp.NewTool(ToolName,
		mcp.WithDescription(desc.Description),
		mcp.WithString(tool.FieldPayload,
			mcp.Required(),
			mcp.Description(desc.InputSchema.Properties[tool.FieldPayload].Description),
		),
	)

	s.AddTool(hashTool, common.InstrumentedToolHandler(ToolName, sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := tool.InvokeHash(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(string(out)), nil
	}))

	return nil
}
