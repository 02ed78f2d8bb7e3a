package drive_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/driveagent/internal/server"
	"github.com/teemow/driveagent/internal/tool"
	"github.com/teemow/driveagent/internal/tools/common"
)

// ToolName is the MCP name of the Google Drive tool.
const ToolName = "google_drive"

// RegisterDriveTools registers the Google Drive tool with the MCP server.
// The tool schema is derived from the dispatcher's descriptor.
func RegisterDriveTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	desc := tool.DriveDescriptor()
	props := desc.InputSchema.Properties

	driveTool := mcp.NewTool(ToolName,
		mcp.WithDescription(desc.Description),
		mcp.WithString(tool.FieldAction,
			mcp.Required(),
			mcp.Description(props[tool.FieldAction].Description),
			mcp.Enum(props[tool.FieldAction].Enum...),
		),
		mcp.WithString(tool.FieldQuery,
			mcp.Description(props[tool.FieldQuery].Description),
		),
		mcp.WithString(tool.FieldFileID,
			mcp.Description(props[tool.FieldFileID].Description),
		),
		mcp.WithString(tool.FieldMimeType,
			mcp.Description(props[tool.FieldMimeType].Description),
		),
		mcp.WithString(tool.FieldFolderID,
			mcp.Description(props[tool.FieldFolderID].Description),
		),
		mcp.WithString(tool.FieldFilePath,
			mcp.Description(props[tool.FieldFilePath].Description),
		),
		mcp.WithNumber(tool.FieldPageSize,
			mcp.Description(props[tool.FieldPageSize].Description),
			mcp.DefaultNumber(float64(tool.DefaultPageSize)),
		),
	)

	s.AddTool(driveTool, common.InstrumentedToolHandler(ToolName, sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		req, err := tool.ParseRequest(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dispatcher, err := sc.Dispatcher()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		env, err := dispatcher.Invoke(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		out, err := env.JSON()
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(out), nil
	}))

	return nil
}
