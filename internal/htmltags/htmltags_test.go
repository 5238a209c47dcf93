package htmltags

import "testing"

func TestTagClasses(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) bool
		yes  []string
		no   []string
	}{
		{"html", IsHTMLTag, []string{"div", "span", "button", "search", "hgroup"}, []string{"Comp", "circle", "my-el"}},
		{"svg", IsSVGTag, []string{"svg", "circle", "foreignObject", "clipPath"}, []string{"div", "clippath"}},
		{"mathml", IsMathMLTag, []string{"math", "mi", "annotation-xml"}, []string{"div"}},
		{"void", IsVoidTag, []string{"br", "img", "input"}, []string{"div", "button"}},
		{"always close", IsAlwaysCloseTag, []string{"button", "table", "form"}, []string{"div", "span"}},
		{"formatting", IsFormattingTag, []string{"a", "b", "strong"}, []string{"div"}},
		{"block", IsBlockTag, []string{"div", "p", "ul"}, []string{"span"}},
		{"inline", IsInlineTag, []string{"span", "a", "button"}, []string{"div"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, tag := range tt.yes {
				if !tt.fn(tag) {
					t.Errorf("%s: want true", tag)
				}
			}
			for _, tag := range tt.no {
				if tt.fn(tag) {
					t.Errorf("%s: want false", tag)
				}
			}
		})
	}
}

func TestNamespaceOf(t *testing.T) {
	tests := map[string]Namespace{
		"div":    NamespaceHTML,
		"svg":    NamespaceSVG,
		"circle": NamespaceSVG,
		"title":  NamespaceHTML,
		"math":   NamespaceMathML,
	}
	for tag, want := range tests {
		if got := NamespaceOf(tag); got != want {
			t.Errorf("NamespaceOf(%q) = %d, want %d", tag, got, want)
		}
	}
}

func TestIsValidNesting(t *testing.T) {
	tests := []struct {
		parent, child string
		want          bool
	}{
		{"div", "div", true},
		{"p", "div", false},
		{"a", "a", false},
		{"table", "tr", false},
		{"tbody", "tr", true},
		{"ul", "li", true},
		{"li", "li", false},
		{"template", "td", true},
		{"select", "option", true},
		{"select", "div", false},
		{"h1", "h2", false},
	}
	for _, tt := range tests {
		if got := IsValidNesting(tt.parent, tt.child); got != tt.want {
			t.Errorf("IsValidNesting(%s, %s) = %v, want %v", tt.parent, tt.child, got, tt.want)
		}
	}
}

func TestPropHelper(t *testing.T) {
	tests := []struct {
		tag, key string
		mod      byte
		helper   string
		needKey  bool
	}{
		{"div", "class", 0, "setClass", false},
		{"div", "style", 0, "setStyle", false},
		{"input", "value", 0, "setValue", false},
		{"progress", "value", 0, "setProp", true},
		{"div", "id", 0, "setProp", true},
		{"div", "data-id", 0, "setAttr", true},
		{"circle", "cx", 0, "setAttr", true},
		{"img", "width", 0, "setAttr", true},
		{"div", "ariaLabel", 0, "setDOMProp", true},
		{"div", "foo", '.', "setDOMProp", true},
		{"div", "foo", '^', "setAttr", true},
		{"div", "innerHTML", 0, "setHtml", false},
		{"div", "textContent", 0, "setText", false},
	}
	for _, tt := range tests {
		helper, needKey := PropHelper(tt.tag, tt.key, tt.mod)
		if helper != tt.helper || needKey != tt.needKey {
			t.Errorf("PropHelper(%s, %s, %q) = %s %v, want %s %v", tt.tag, tt.key, tt.mod, helper, needKey, tt.helper, tt.needKey)
		}
	}
}

func TestDirectiveAndEventNames(t *testing.T) {
	if name, ok := DirectiveName("v-model"); !ok || name != "model" {
		t.Fatalf("v-model -> %q %v", name, ok)
	}
	if name, ok := DirectiveName("vElseIf"); !ok || name != "else-if" {
		t.Fatalf("vElseIf -> %q %v", name, ok)
	}
	if _, ok := DirectiveName("value"); ok {
		t.Fatal("value is not a directive")
	}
	if !IsEventName("onClick") || IsEventName("once") || IsEventName("on") {
		t.Fatal("event name shape")
	}
	if !IsDelegatedEvent("click") || IsDelegatedEvent("scroll") {
		t.Fatal("delegated events")
	}
}

func TestEscapeText(t *testing.T) {
	if got := EscapeText(`a < b & "c" 'd'`); got != "a &lt; b &amp; &quot;c&quot; &#39;d&#39;" {
		t.Fatalf("got %q", got)
	}
	if got := EscapeText("plain"); got != "plain" {
		t.Fatalf("got %q", got)
	}
}
