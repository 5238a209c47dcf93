// Package htmltags classifies tag and attribute names for the template
// compiler: known HTML/SVG/MathML elements, void and always-closed tags,
// block/inline categories used by closing-tag omission, HTML nesting rules,
// delegatable events and the runtime helper that sets a given prop.
package htmltags

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// tagSet хранит имена, известные x/net/html, как atom; остальные — строками.
type tagSet struct {
	atoms map[atom.Atom]struct{}
	names map[string]struct{}
}

func newTagSet(list string) tagSet {
	s := tagSet{atoms: map[atom.Atom]struct{}{}, names: map[string]struct{}{}}
	for _, name := range strings.Split(list, ",") {
		if a := atom.Lookup([]byte(name)); a != 0 && a.String() == name {
			s.atoms[a] = struct{}{}
			continue
		}
		s.names[name] = struct{}{}
	}
	return s
}

func (s tagSet) has(name string) bool {
	if a := atom.Lookup([]byte(name)); a != 0 {
		if _, ok := s.atoms[a]; ok {
			return true
		}
	}
	_, ok := s.names[name]
	return ok
}

var (
	htmlTags = newTagSet("html,body,base,head,link,meta,style,title,address,article,aside,footer," +
		"header,hgroup,h1,h2,h3,h4,h5,h6,nav,section,div,dd,dl,dt,figcaption," +
		"figure,picture,hr,img,li,main,ol,p,pre,ul,a,b,abbr,bdi,bdo,br,cite,code," +
		"data,dfn,em,i,kbd,mark,q,rp,rt,ruby,s,samp,small,span,strong,sub,sup," +
		"time,u,var,wbr,area,audio,map,track,video,embed,object,param,source," +
		"canvas,script,noscript,del,ins,caption,col,colgroup,table,thead,tbody,td," +
		"th,tr,button,datalist,fieldset,form,input,label,legend,meter,optgroup," +
		"option,output,progress,select,textarea,details,dialog,menu," +
		"summary,template,blockquote,iframe,tfoot,search")

	svgTags = newTagSet("svg,animate,animateMotion,animateTransform,circle,clipPath," +
		"color-profile,defs,desc,discard,ellipse,feBlend,feColorMatrix,feComponentTransfer," +
		"feComposite,feConvolveMatrix,feDiffuseLighting,feDisplacementMap,feDistantLight," +
		"feDropShadow,feFlood,feFuncA,feFuncB,feFuncG,feFuncR,feGaussianBlur,feImage," +
		"feMerge,feMergeNode,feMorphology,feOffset,fePointLight,feSpecularLighting," +
		"feSpotLight,feTile,feTurbulence,filter,foreignObject,g,hatch,hatchpath,image," +
		"line,linearGradient,marker,mask,mesh,meshgradient,meshpatch,meshrow," +
		"metadata,mpath,path,pattern,polygon,polyline,radialGradient,rect,set," +
		"solidcolor,stop,switch,symbol,text,textPath,title,tspan,unknown,use,view")

	mathTags = newTagSet("annotation,annotation-xml,maction,maligngroup,malignmark,math," +
		"menclose,merror,mfenced,mfrac,mfraction,mglyph,mi,mlabeledtr,mlongdiv," +
		"mmultiscripts,mn,mo,mover,mpadded,mphantom,mprescripts,mroot,mrow,ms," +
		"mscarries,mscarry,msgroup,msline,mspace,msqrt,msrow,mstack,mstyle,msub," +
		"msubsup,msup,mtable,mtd,mtext,mtr,munder,munderover,none,semantics")

	voidTags = newTagSet("area,base,br,col,embed,hr,img,input,link,meta,param,source,track,wbr")

	alwaysCloseTags = newTagSet("form,select,table,textarea,template,script,button")

	formattingTags = newTagSet("a,b,big,code,em,font,i,nobr,s,small,strike,strong,tt,u")

	blockTags = newTagSet("address,article,aside,blockquote,dd,details,dialog,div,dl,dt," +
		"fieldset,figcaption,figure,footer,form,h1,h2,h3,h4,h5,h6,header,hgroup,hr,li," +
		"main,menu,nav,ol,p,pre,section,table,ul")

	inlineTags = newTagSet("a,abbr,acronym,b,bdi,bdo,big,br,button,canvas,cite,code,data," +
		"datalist,del,dfn,em,embed,i,iframe,img,input,ins,kbd,label,map,mark,meter," +
		"noscript,object,output,picture,progress,q,ruby,s,samp,script,select,small," +
		"span,strong,sub,sup,svg,template,textarea,time,tt,u,var,video,wbr")
)

func IsHTMLTag(tag string) bool { return htmlTags.has(tag) }
func IsSVGTag(tag string) bool { return svgTags.has(tag) }
func IsMathMLTag(tag string) bool { return mathTags.has(tag) }
func IsVoidTag(tag string) bool { return voidTags.has(tag) }
func IsBlockTag(tag string) bool { return blockTags.has(tag) }
func IsInlineTag(tag string) bool { return inlineTags.has(tag) }
func IsFormattingTag(tag string) bool { return formattingTags.has(tag) }

// IsAlwaysCloseTag reports tags whose closing tag changes parsing when omitted.
func IsAlwaysCloseTag(tag string) bool { return alwaysCloseTags.has(tag) }

// IsNativeTag reports whether tag is a known HTML, SVG or MathML element.
func IsNativeTag(tag string) bool {
	return IsHTMLTag(tag) || IsSVGTag(tag) || IsMathMLTag(tag)
}

// Namespace of an element inside a template.
type Namespace uint8

const (
	NamespaceHTML Namespace = iota
	NamespaceSVG
	NamespaceMathML
)

// NamespaceOf returns the namespace a root template starting with tag parses in.
func NamespaceOf(tag string) Namespace {
	switch {
	case tag == "svg" || (IsSVGTag(tag) && !IsHTMLTag(tag)):
		return NamespaceSVG
	case tag == "math" || (IsMathMLTag(tag) && !IsHTMLTag(tag)):
		return NamespaceMathML
	}
	return NamespaceHTML
}
