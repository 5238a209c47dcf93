package htmltags

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

var headings = set("h1", "h2", "h3", "h4", "h5", "h6")

// onlyValidChildren: родитель допускает только эти дочерние теги.
var onlyValidChildren = map[string]map[string]bool{
	"head":     set("base", "basefront", "bgsound", "link", "meta", "title", "noscript", "noframes", "style", "script", "template"),
	"optgroup": set("option"),
	"select":   set("optgroup", "option", "hr"),
	"table":    set("caption", "colgroup", "tbody", "tfoot", "thead"),
	"tr":       set("td", "th"),
	"colgroup": set("col"),
	"tbody":    set("tr"),
	"thead":    set("tr"),
	"tfoot":    set("tr"),
	"script":   set(),
	"iframe":   set(),
	"option":   set(),
	"textarea": set(),
	"style":    set(),
	"title":    set(),
}

// onlyValidParents: тег допустим только внутри этих родителей.
var onlyValidParents = map[string]map[string]bool{
	"html":       set(),
	"body":       set("html"),
	"head":       set("html"),
	"td":         set("tr"),
	"colgroup":   set("table"),
	"caption":    set("table"),
	"tbody":      set("table"),
	"tfoot":      set("table"),
	"col":        set("colgroup"),
	"th":         set("tr"),
	"thead":      set("table"),
	"tr":         set("tbody", "thead", "tfoot"),
	"dd":         set("dl", "div"),
	"dt":         set("dl", "div"),
	"figcaption": set("figure"),
	"summary":    set("details"),
	"area":       set("map"),
}

var knownInvalidChildren = map[string]map[string]bool{
	"p": set("address", "article", "aside", "blockquote", "center", "details", "dialog", "dir",
		"div", "dl", "fieldset", "figure", "footer", "form", "h1", "h2", "h3", "h4", "h5", "h6",
		"header", "hgroup", "hr", "li", "main", "nav", "menu", "ol", "p", "pre", "section",
		"table", "ul"),
	"svg": set("b", "blockquote", "br", "code", "dd", "div", "dl", "dt", "em", "embed",
		"h1", "h2", "h3", "h4", "h5", "h6", "hr", "i", "img", "li", "menu", "meta", "ol", "p",
		"pre", "ruby", "s", "small", "span", "strong", "sub", "sup", "table", "u", "ul", "var"),
}

var knownInvalidParents = map[string]map[string]bool{
	"a":      set("a"),
	"button": set("button"),
	"dd":     set("dd", "dt"),
	"dt":     set("dd", "dt"),
	"form":   set("form"),
	"li":     set("li"),
	"h1":     headings,
	"h2":     headings,
	"h3":     headings,
	"h4":     headings,
	"h5":     headings,
	"h6":     headings,
}

// IsValidNesting reports whether the HTML parser keeps child inside parent.
// Children that fail the check cannot live in the parent's template string
// and must be inserted at runtime.
func IsValidNesting(parent, child string) bool {
	if parent == "template" {
		return true
	}
	if allowed, ok := onlyValidChildren[parent]; ok {
		return allowed[child]
	}
	if allowed, ok := onlyValidParents[child]; ok {
		return allowed[parent]
	}
	if invalid, ok := knownInvalidChildren[parent]; ok && invalid[child] {
		return false
	}
	if invalid, ok := knownInvalidParents[child]; ok && invalid[parent] {
		return false
	}
	return true
}
