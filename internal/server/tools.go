package server

import (
	"github.com/ironsheep/fotoflex-mcp/internal/operation"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// toolPrefix is prepended to catalog names to form tool names.
const toolPrefix = "image_"

// GetToolDefinitions returns all available tools: document tools first, then
// one tool per catalog operation in toolbar order.
func GetToolDefinitions() []Tool {
	tools := []Tool{
		// Document
		{
			Name:        "image_open",
			Description: "Open an image file (PNG, JPEG, GIF, BMP, TIFF, WebP) as the current document. Discards the previous document and its undo history. Omitting path cancels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the image file",
					},
				},
			},
		},
		{
			Name:        "image_save",
			Description: "Save the current image. The format follows the extension (.png, .jpg, .jpeg, .gif, .bmp, .tif, .tiff); a path without extension gets .png, an unknown extension is written as PNG. Omitting path cancels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Destination path",
					},
				},
			},
		},
		{
			Name:        "image_undo",
			Description: "Undo the last edit, restoring the previous image.",
			InputSchema: emptySchema(),
		},
		{
			Name:        "image_info",
			Description: "Describe the current image (dimensions, color mode, alpha) and the undo history depth.",
			InputSchema: emptySchema(),
		},
		{
			Name:        "image_preview",
			Description: "Render the current image as a PNG preview fitted to the viewport, optionally with a coordinate grid labelled in image pixels (useful for picking crop bounds).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"grid": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw a coordinate grid",
						"default":     false,
					},
					"grid_spacing": map[string]interface{}{
						"type":        "integer",
						"description": "Image pixels between grid lines (default 50)",
						"default":     50,
					},
					"show_coordinates": map[string]interface{}{
						"type":        "boolean",
						"description": "Label grid intersections with coordinates (default true)",
						"default":     true,
					},
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Grid line color as hex (default #FF000080 - semi-transparent red)",
						"default":     "#FF000080",
					},
				},
			},
		},

		// Inspection
		{
			Name:        "image_sample_color",
			Description: "Get the exact color of the current image at a pixel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Get the colors of the current image at multiple pixels in a single call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Array of points to sample",
					},
				},
				"required": []string{"points"},
			},
		},
	}

	for _, spec := range operation.Specs() {
		tools = append(tools, operationTool(spec))
	}
	return tools
}

// operationTool builds the tool definition for a catalog entry. Parameters are
// not marked required: leaving one out cancels the edit.
func operationTool(spec operation.Spec) Tool {
	props := map[string]interface{}{}
	for _, p := range spec.Params {
		prop := map[string]interface{}{
			"type":        string(p.Type),
			"description": p.Description,
		}
		if p.Bounded {
			prop["minimum"] = p.Min
			prop["maximum"] = p.Max
		}
		props[p.Name] = prop
	}

	desc := spec.Description
	if len(spec.Params) > 0 {
		desc += " Omitting any parameter cancels the edit."
	}
	return Tool{
		Name:        toolPrefix + spec.Name,
		Description: desc,
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": props,
		},
	}
}

func emptySchema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
