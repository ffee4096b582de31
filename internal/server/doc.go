// Package server implements the MCP (Model Context Protocol) front end of the
// image editor.
//
// The server is the editor's controller: it owns the one open document,
// turns tool calls into open, edit, undo and save actions, and re-renders the
// display after every change.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Requests are handled strictly one at a time, so the document is never
// accessed concurrently.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Document:
//   - image_open: Open a file, resetting the undo history
//   - image_save: Write the current image (format from extension)
//   - image_undo: Restore the previous image
//   - image_info: Dimensions, mode and history depth
//   - image_preview: Render the current image, optionally with a grid
//
// Inspection:
//   - image_sample_color, image_sample_colors_multi: Read pixel colors
//
// Edits, one per catalog operation:
//   - image_rotate, image_flip_horizontal, image_flip_vertical,
//     image_grayscale, image_crop, image_resize, image_brightness,
//     image_contrast, image_blur, image_contour, image_detail, image_sharpen
//
// Edit parameters are optional in the schema: leaving one out is the same as
// cancelling a prompt, and the document is left untouched. Successful open,
// edit and undo calls return the new document state together with an image
// content block holding the rendered preview.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: The error class: "I/O error", "Decode error", "No image loaded",
//     "Nothing to undo", "Validation error" or "Tool execution failed"
//   - data: The Go error string
//
// A failed tool call never changes the document.
package server
