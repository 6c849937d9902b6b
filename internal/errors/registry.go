package errors

import "slices"

// Registered error codes.
const (
	CodeVoidContent = "E100"
	CodeTreeSyntax  = "E200"
	CodeTreeNode    = "E201"
	CodeTreeRef     = "E202"
	CodeConfig      = "E300"
	CodePublish     = "E400"
	CodeNotFound    = "E500"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	CodeVoidContent: {
		Category: CategoryValidation,
		Message:  "Content assigned to a void element",
		Detail:   "Void elements such as br, img and input are rendered without content or a closing tag.",
	},
	CodeTreeSyntax: {
		Category: CategoryTreefile,
		Message:  "Invalid tree document",
	},
	CodeTreeNode: {
		Category: CategoryTreefile,
		Message:  "Malformed tree node",
	},
	CodeTreeRef: {
		Category: CategoryTreefile,
		Message:  "Unknown clone reference",
		Detail:   "A node can only clone a node declared earlier in the document.",
	},
	CodeConfig: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},
	CodePublish: {
		Category: CategoryPublish,
		Message:  "Upload failed",
	},
	CodeNotFound: {
		Category: CategoryCLI,
		Message:  "Tree document not found",
	},
}

// GetAllCodes returns all registered error codes in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
