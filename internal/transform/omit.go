package transform

import "jsxc/internal/htmltags"

// OmitInfo is the position of an element inside its template.
type OmitInfo struct {
	Tag       string
	ParentTag string // "" when the parent is not an element
	// Root: the element starts its own template.
	Root bool
	// Last: no non-empty sibling follows the element.
	Last bool
	// Rightmost: the element and all its ancestors up to the template root
	// are last children.
	Rightmost bool
	// InlineAncestorNeedsClose: some inline ancestor keeps its closing tag.
	InlineAncestorNeedsClose bool
}

// CanOmitEndTag reports whether the closing tag of an element may be left
// out of its template string without changing how the browser parses it.
// Void tags are never closed and are not handled here.
func CanOmitEndTag(in OmitInfo) bool {
	if in.Root {
		return true
	}
	if htmltags.IsAlwaysCloseTag(in.Tag) && !in.Rightmost {
		return false
	}
	if htmltags.IsFormattingTag(in.Tag) || (in.ParentTag != "" && in.Tag == in.ParentTag) {
		return in.Rightmost
	}
	// блочный тег внутри незакрытого inline-предка парсер закроет сам
	if htmltags.IsBlockTag(in.Tag) && in.InlineAncestorNeedsClose {
		return false
	}
	return in.Last
}
