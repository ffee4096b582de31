package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ironsheep/fotoflex-mcp/internal/document"
	"github.com/ironsheep/fotoflex-mcp/internal/imaging"
	"github.com/ironsheep/fotoflex-mcp/internal/operation"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_open", "image_crop").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// toolResult is what a tool handler produces: a JSON-serialisable payload and,
// for tools that change or show the image, a rendered preview.
type toolResult struct {
	data    interface{}
	preview *imaging.PreviewResult
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [
//	    {"type": "text", "text": "<JSON result>"},
//	    {"type": "image", "data": "<base64 PNG>", "mimeType": "image/png"}
//	  ]
//	}
//
// The image block is only present when the tool rendered a preview. Tool
// errors return a JSON-RPC error response with code -32000 whose message names
// the error class.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.debugf("tool %s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, -32000, errorMessage(err), err.Error())
	}

	content := []map[string]interface{}{
		{
			"type": "text",
			"text": mustMarshalJSON(result.data),
		},
	}
	if result.preview != nil {
		content = append(content, map[string]interface{}{
			"type":     "image",
			"data":     result.preview.ImageBase64,
			"mimeType": result.preview.MimeType,
		})
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": content,
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
// Names not matched by a document or inspection tool are looked up in the
// operation catalog.
func (s *Server) executeTool(name string, args json.RawMessage) (*toolResult, error) {
	switch name {
	// Document
	case "image_open":
		return s.handleImageOpen(args)
	case "image_save":
		return s.handleImageSave(args)
	case "image_undo":
		return s.handleImageUndo()
	case "image_info":
		return s.handleImageInfo()
	case "image_preview":
		return s.handleImagePreview(args)

	// Inspection
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	}

	if strings.HasPrefix(name, toolPrefix) {
		if kind, ok := operation.Lookup(strings.TrimPrefix(name, toolPrefix)); ok {
			return s.handleEdit(kind, args)
		}
	}
	return nil, fmt.Errorf("unknown tool: %s", name)
}

// errorMessage names the class of err for the JSON-RPC error message.
func errorMessage(err error) string {
	var (
		validationErr *imaging.ValidationError
		decodeErr     *document.DecodeError
		ioErr         *document.IOError
	)
	switch {
	case errors.As(err, &validationErr):
		return "Validation error"
	case errors.Is(err, document.ErrNoImageLoaded):
		return "No image loaded"
	case errors.Is(err, document.ErrNothingToUndo):
		return "Nothing to undo"
	case errors.As(err, &decodeErr):
		return "Decode error"
	case errors.As(err, &ioErr):
		return "I/O error"
	default:
		return "Tool execution failed"
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// editResult reports the document state after open, edit or undo.
type editResult struct {
	Action       string `json:"action"`
	Cancelled    bool   `json:"cancelled,omitempty"`
	DisplayError string `json:"display_error,omitempty"`
	*document.Info
}

// changed re-renders the display after the document changed and reports the
// new state. A display failure does not undo the change.
func (s *Server) changed(action string) (*toolResult, error) {
	info, err := s.doc.Info()
	if err != nil {
		return nil, err
	}
	res := &editResult{Action: action, Info: info}

	preview, err := s.display.Render(s.doc.Current())
	if err != nil {
		log.Printf("Failed to render %s result: %v", action, err)
		res.DisplayError = err.Error()
	}
	return &toolResult{data: res, preview: preview}, nil
}

// cancelled reports an action the user backed out of. The document is untouched.
func (s *Server) cancelled(action string) (*toolResult, error) {
	res := &editResult{Action: action, Cancelled: true}
	if info, err := s.doc.Info(); err == nil {
		res.Info = info
	}
	return &toolResult{data: res}, nil
}

// === Document Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func parseArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	return json.Unmarshal(args, v)
}

func (s *Server) handleImageOpen(args json.RawMessage) (*toolResult, error) {
	var a imagePathArgs
	if err := parseArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return s.cancelled("open")
	}
	if _, err := s.doc.Open(a.Path); err != nil {
		return nil, err
	}
	s.debugf("opened %s (history reset)", a.Path)
	return s.changed("open")
}

type saveResult struct {
	Action    string `json:"action"`
	Cancelled bool   `json:"cancelled,omitempty"`
	Path      string `json:"path,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
}

func (s *Server) handleImageSave(args json.RawMessage) (*toolResult, error) {
	var a imagePathArgs
	if err := parseArgs(args, &a); err != nil {
		return nil, err
	}
	if !s.doc.HasImage() {
		return nil, document.ErrNoImageLoaded
	}
	if a.Path == "" {
		return &toolResult{data: &saveResult{Action: "save", Cancelled: true}}, nil
	}

	written, err := s.doc.Save(a.Path)
	if err != nil {
		return nil, err
	}
	s.debugf("saved %s", written)

	b := s.doc.Current().Bounds()
	return &toolResult{data: &saveResult{
		Action: "save",
		Path:   written,
		Width:  b.Dx(),
		Height: b.Dy(),
	}}, nil
}

func (s *Server) handleImageUndo() (*toolResult, error) {
	if _, err := s.doc.Undo(); err != nil {
		return nil, err
	}
	return s.changed("undo")
}

func (s *Server) handleImageInfo() (*toolResult, error) {
	info, err := s.doc.Info()
	if err != nil {
		return nil, err
	}
	return &toolResult{data: info}, nil
}

type imagePreviewArgs struct {
	Grid            bool   `json:"grid"`
	GridSpacing     int    `json:"grid_spacing"`
	ShowCoordinates *bool  `json:"show_coordinates"`
	GridColor       string `json:"grid_color"`
}

func (s *Server) handleImagePreview(args json.RawMessage) (*toolResult, error) {
	var a imagePreviewArgs
	if err := parseArgs(args, &a); err != nil {
		return nil, err
	}
	if !s.doc.HasImage() {
		return nil, document.ErrNoImageLoaded
	}

	opts := imaging.PreviewOptions{
		MaxWidth:  s.cfg.PreviewMaxWidth,
		MaxHeight: s.cfg.PreviewMaxHeight,
	}
	if a.Grid || a.GridSpacing != 0 {
		if a.GridSpacing == 0 {
			a.GridSpacing = 50
		}
		if a.GridColor == "" {
			a.GridColor = imaging.DefaultGridColor
		}
		showCoordinates := true
		if a.ShowCoordinates != nil {
			showCoordinates = *a.ShowCoordinates
		}
		opts.Grid = &imaging.GridOptions{
			Spacing:         a.GridSpacing,
			ShowCoordinates: showCoordinates,
			Color:           a.GridColor,
		}
	}

	preview, err := imaging.RenderPreview(s.doc.Current(), opts)
	if err != nil {
		return nil, err
	}
	return &toolResult{data: preview, preview: preview}, nil
}

// handleEdit collects the parameters for kind from the call arguments and
// applies the resulting operation. A missing parameter cancels the edit.
func (s *Server) handleEdit(kind operation.Kind, args json.RawMessage) (*toolResult, error) {
	if !s.doc.HasImage() {
		return nil, document.ErrNoImageLoaded
	}

	prompter, err := newArgsPrompter(kind.String(), args)
	if err != nil {
		return nil, err
	}
	op, ok, err := operation.Collect(kind, prompter)
	if err != nil {
		return nil, err
	}
	if !ok {
		return s.cancelled(kind.String())
	}

	if _, err := s.doc.Apply(op); err != nil {
		return nil, err
	}
	s.debugf("applied %s (history depth %d)", kind, s.doc.Depth())
	return s.changed(kind.String())
}

// === Inspection Handlers ===

type imageSampleColorArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (*toolResult, error) {
	var a imageSampleColorArgs
	if err := parseArgs(args, &a); err != nil {
		return nil, err
	}
	if !s.doc.HasImage() {
		return nil, document.ErrNoImageLoaded
	}
	c, err := imaging.SampleColor(s.doc.Current(), a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return &toolResult{data: c}, nil
}

type imageSampleColorsMultiArgs struct {
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (*toolResult, error) {
	var a imageSampleColorsMultiArgs
	if err := parseArgs(args, &a); err != nil {
		return nil, err
	}
	if !s.doc.HasImage() {
		return nil, document.ErrNoImageLoaded
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	result, err := imaging.SampleColorsMulti(s.doc.Current(), points)
	if err != nil {
		return nil, err
	}
	return &toolResult{data: result}, nil
}
