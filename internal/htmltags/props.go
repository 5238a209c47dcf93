package htmltags

import (
	"strings"
	"unicode"
)

var delegatedEvents = set("beforeinput", "click", "dblclick", "contextmenu", "focusin", "focusout",
	"input", "keydown", "keyup", "mousedown", "mousemove", "mouseout", "mouseover", "mouseup",
	"pointerdown", "pointermove", "pointerout", "pointerover", "pointerup", "touchend",
	"touchmove", "touchstart")

// IsDelegatedEvent reports events handled by the document-level dispatcher.
func IsDelegatedEvent(name string) bool { return delegatedEvents[name] }

var reservedProps = set("key", "ref", "ref_for", "ref_key",
	"onVnodeBeforeMount", "onVnodeMounted", "onVnodeBeforeUpdate", "onVnodeUpdated",
	"onVnodeBeforeUnmount", "onVnodeUnmounted")

// IsReservedProp reports attributes that never reach the element as props.
func IsReservedProp(name string) bool { return reservedProps[name] }

var builtinDirectives = set("bind", "cloak", "else-if", "else", "for", "html", "if", "model",
	"on", "once", "pre", "show", "slot", "text", "memo")

// IsBuiltinDirective reports directive names the compiler handles itself.
func IsBuiltinDirective(name string) bool { return builtinDirectives[name] }

// DirectiveName returns the directive name for `v-name` and `vName` attributes.
func DirectiveName(attr string) (string, bool) {
	if rest, ok := strings.CutPrefix(attr, "v-"); ok && rest != "" {
		return rest, true
	}
	if len(attr) > 1 && attr[0] == 'v' && attr[1] >= 'A' && attr[1] <= 'Z' {
		return camelToKebab(attr[1:]), true
	}
	return "", false
}

// IsEventName reports `on` followed by an upper-case letter, like onClick.
func IsEventName(attr string) bool {
	return len(attr) > 2 && strings.HasPrefix(attr, "on") && attr[2] >= 'A' && attr[2] <= 'Z'
}

func camelToKebab(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// PropHelper names the runtime helper that applies prop key on tag.
// modifier is '.' for a forced DOM property, '^' for a forced attribute, 0 otherwise.
func PropHelper(tag, key string, modifier byte) (helper string, needKey bool) {
	upper := strings.ToUpper(tag)
	switch modifier {
	case '.':
		if h := specialHelper(key, upper); h != "" {
			return h, false
		}
		return "setDOMProp", true
	case '^':
		return "setAttr", true
	}
	if h := specialHelper(key, upper); h != "" {
		return h, false
	}
	if isAriaProp(key) {
		return "setDOMProp", true
	}
	if IsSVGTag(tag) {
		return "setAttr", true
	}
	if shouldSetAsAttr(upper, key) || strings.Contains(key, "-") {
		return "setAttr", true
	}
	return "setProp", true
}

func specialHelper(key, upperTag string) string {
	switch key {
	case "value":
		if canSetValueDirectly(upperTag) {
			return "setValue"
		}
	case "class":
		return "setClass"
	case "style":
		return "setStyle"
	case "innerHTML":
		return "setHtml"
	case "textContent":
		return "setText"
	}
	return ""
}

func canSetValueDirectly(upperTag string) bool {
	return upperTag != "PROGRESS" && !strings.Contains(upperTag, "-")
}

// ariaX, где X — заглавная: DOM-свойства, общие для всех элементов
func isAriaProp(key string) bool {
	return len(key) > 4 && strings.HasPrefix(key, "aria") && key[4] >= 'A' && key[4] <= 'Z'
}

func shouldSetAsAttr(upperTag, key string) bool {
	switch key {
	case "spellcheck", "draggable", "translate", "autocorrect", "form":
		return true
	case "list":
		return upperTag == "INPUT"
	case "type":
		return upperTag == "TEXTAREA"
	case "width", "height":
		switch upperTag {
		case "IMG", "VIDEO", "CANVAS", "SOURCE":
			return true
		}
	}
	return false
}

// IsBooleanAttr reports attributes whose presence alone means true.
func IsBooleanAttr(key string) bool { return booleanAttrs[key] }

var booleanAttrs = set("allowfullscreen", "async", "autofocus", "autoplay", "checked", "controls",
	"default", "defer", "disabled", "formnovalidate", "hidden", "inert", "ismap", "itemscope",
	"loop", "multiple", "muted", "nomodule", "novalidate", "open", "playsinline", "readonly",
	"required", "reversed", "selected")
