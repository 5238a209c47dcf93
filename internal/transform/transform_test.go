package transform

import (
	"reflect"
	"testing"

	"jsxc/internal/diag"
	"jsxc/internal/ir"
	"jsxc/internal/jsast"
	"jsxc/internal/parser"
	"jsxc/internal/source"
)

type result struct {
	root  *ir.Root
	prog  *ir.Program
	codes []diag.Code
}

func run(t *testing.T, src string, abbreviate bool) result {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.jsx", []byte(src))
	bag := diag.NewBag(0)
	e, errs := parser.ParseExpression(fs.Get(id), parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if errs != 0 {
		t.Fatalf("parse %q: %v", src, bag.Items())
	}
	var r result
	r.root = ir.NewRoot()
	r.prog = Transform(e, r.root, Options{
		Abbreviate: abbreviate,
		Reporter: diag.FuncReporter(func(code diag.Code, _ source.Span) {
			r.codes = append(r.codes, code)
		}),
	})
	return r
}

func (r result) templates() []string {
	var out []string
	for _, tpl := range r.root.Templates.All() {
		out = append(out, tpl.Content)
	}
	return out
}

func (r result) has(code diag.Code) bool {
	for _, c := range r.codes {
		if c == code {
			return true
		}
	}
	return false
}

func TestTemplateDedup(t *testing.T) {
	r := run(t, `<><div>hello</div><div>hello</div></>`, true)
	if got := r.templates(); !reflect.DeepEqual(got, []string{"<div>hello"}) {
		t.Fatalf("templates = %q", got)
	}
	if !r.root.Templates.All()[0].Root {
		t.Fatal("block-level template must be marked root")
	}
	if got := r.prog.Block.Returns; !reflect.DeepEqual(got, []int{0, 1}) {
		t.Fatalf("returns = %v", got)
	}
}

func TestAbbreviation(t *testing.T) {
	tests := []struct {
		src  string
		full string
		abbr string
	}{
		{`<div><span>a</span><span>b</span></div>`, `<div><span>a</span><span>b</span></div>`, `<div><span>a</span><span>b`},
		{`<div><div>a</div><div>b</div></div>`, `<div><div>a</div><div>b</div></div>`, `<div><div>a</div><div>b`},
		{`<div><b>x</b><p>y</p></div>`, `<div><b>x</b><p>y</p></div>`, `<div><b>x</b><p>y`},
		{`<div><span><div>x</div></span><p/></div>`, `<div><span><div>x</div></span><p></p></div>`, `<div><span><div>x</div></span><p>`},
		{`<div><form></form><span/></div>`, `<div><form></form><span></span></div>`, `<div><form></form><span>`},
		{`<form><input/></form>`, `<form><input></form>`, `<form><input>`},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := run(t, tt.src, false).templates(); len(got) != 1 || got[0] != tt.full {
				t.Errorf("full = %q, want %q", got, tt.full)
			}
			if got := run(t, tt.src, true).templates(); len(got) != 1 || got[0] != tt.abbr {
				t.Errorf("abbreviated = %q, want %q", got, tt.abbr)
			}
		})
	}
}

func TestInsertionAnchor(t *testing.T) {
	r := run(t, `<div><div/><Comp/><div/><div v-if={true}/></div>`, true)
	want := []string{"<div>", "<div><div></div><!><div></div>"}
	if got := r.templates(); !reflect.DeepEqual(got, want) {
		t.Fatalf("templates = %q, want %q", got, want)
	}

	root := r.prog.Block.Dynamic.Children[0]
	if root.ID != 4 {
		t.Fatalf("root id = %d, want 4", root.ID)
	}
	comp, cond := root.Children[1], root.Children[3]
	if comp.ID != 0 || comp.Anchor != 3 || comp.Has(ir.FlagNonTemplate) {
		t.Fatalf("component: id=%d anchor=%d flags=%b", comp.ID, comp.Anchor, comp.Flags)
	}
	ins := comp.Operation.Insertion()
	if !ins.Set || ins.Parent != 4 || ins.Anchor != 3 || ins.Append {
		t.Fatalf("component insertion = %+v", *ins)
	}

	op, ok := cond.Operation.(*ir.If)
	if !ok {
		t.Fatalf("v-if operation = %T", cond.Operation)
	}
	if op.ID != 1 || !op.Once {
		t.Fatalf("if id=%d once=%v", op.ID, op.Once)
	}
	ins = op.Insertion()
	if !ins.Append || !ins.Last || ins.LogicalIndex != 3 || ins.Parent != 4 {
		t.Fatalf("if insertion = %+v", *ins)
	}
	if got := op.Positive.Returns; !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("branch returns = %v", got)
	}
}

func TestPrependInsertion(t *testing.T) {
	r := run(t, `<div><Comp/><span/></div>`, false)
	comp := r.prog.Block.Dynamic.Children[0].Children[0]
	ins := comp.Operation.Insertion()
	if ins.Anchor != ir.AnchorPrepend || ins.Append {
		t.Fatalf("insertion = %+v", *ins)
	}
	if got := r.templates(); got[0] != "<div><span></span></div>" {
		t.Fatalf("template = %q", got[0])
	}
}

func TestIdsAreDeterministic(t *testing.T) {
	src := `<div><p v-if={a}>{b}</p><Comp v-else/><ul><li v-for={x in xs}>{x}</li></ul></div>`
	first, second := run(t, src, true), run(t, src, true)
	if !reflect.DeepEqual(first.templates(), second.templates()) {
		t.Fatalf("templates differ: %q vs %q", first.templates(), second.templates())
	}
	if first.prog.Block.Dynamic.Children[0].ID != second.prog.Block.Dynamic.Children[0].ID {
		t.Fatal("root ids differ")
	}
}

func TestIfChain(t *testing.T) {
	r := run(t, `<div><a v-if={x}/><b v-else-if={y}/><i v-else/></div>`, false)
	if len(r.codes) != 0 {
		t.Fatalf("codes = %v", r.codes)
	}
	kids := r.prog.Block.Dynamic.Children[0].Children
	head, ok := kids[0].Operation.(*ir.If)
	if !ok {
		t.Fatalf("head = %T", kids[0].Operation)
	}
	if head.Once || head.NegativeIf == nil || head.NegativeIf.Negative == nil {
		t.Fatalf("chain = %+v", head)
	}
	for _, k := range kids[1:] {
		if k.ID != ir.NoNode || !k.Has(ir.FlagNonTemplate) || k.Has(ir.FlagInsert) {
			t.Fatalf("else branch: id=%d flags=%b", k.ID, k.Flags)
		}
	}
	if got := r.templates(); got[len(got)-1] != "<div></div>" {
		t.Fatalf("parent template = %q", got[len(got)-1])
	}
}

func TestElseWithoutIf(t *testing.T) {
	r := run(t, `<div><p v-else/><span v-else-if={a}/></div>`, false)
	if len(r.codes) != 2 || r.codes[0] != diag.TplVElseNoAdjacentIf || r.codes[1] != diag.TplVElseNoAdjacentIf {
		t.Fatalf("codes = %v", r.codes)
	}
	if got := r.templates(); len(got) != 1 || got[0] != "<div><p></p><span></span></div>" {
		t.Fatalf("templates = %q", got)
	}
}

func TestMissingIfExpression(t *testing.T) {
	r := run(t, `<div><p v-if/></div>`, false)
	if !r.has(diag.TplVIfNoExpression) {
		t.Fatalf("codes = %v", r.codes)
	}
	if got := r.templates(); got[0] != "<div><p></p></div>" {
		t.Fatalf("template = %q", got[0])
	}
}

func TestTextChild(t *testing.T) {
	r := run(t, `<div>hello {count + 1}</div>`, false)
	if got := r.templates(); got[0] != "<div> </div>" {
		t.Fatalf("template = %q", got[0])
	}
	ops := r.prog.Block.Operations
	if len(ops) != 1 {
		t.Fatalf("operations = %d", len(ops))
	}
	if _, ok := ops[0].(*ir.GetTextChild); !ok {
		t.Fatalf("op = %T", ops[0])
	}
	eff := r.prog.Block.Effects
	if len(eff) != 1 {
		t.Fatalf("effects = %d", len(eff))
	}
	st, ok := eff[0].Operations[0].(*ir.SetText)
	if !ok || !st.Child || len(st.Values) != 2 {
		t.Fatalf("set text = %+v", eff[0].Operations[0])
	}
	if s, ok := st.Values[0].(*jsast.StringLit); !ok || s.Value != "hello " {
		t.Fatalf("first value = %#v", st.Values[0])
	}
}

func TestStaticText(t *testing.T) {
	r := run(t, `<p>
		a &amp; {"b"} {1}
	</p>`, false)
	if got := r.templates(); got[0] != "<p>a &amp; b 1</p>" {
		t.Fatalf("template = %q", got[0])
	}
	if len(r.prog.Block.Operations)+len(r.prog.Block.Effects) != 0 {
		t.Fatal("static text must not create operations")
	}
}

func TestSingleSpaceBetweenChildren(t *testing.T) {
	r := run(t, `<p><span/> <span/></p>`, false)
	if got := r.templates(); got[0] != "<p><span></span> <span></span></p>" {
		t.Fatalf("template = %q", got[0])
	}

	r = run(t, `<p>{a} {b}</p>`, false)
	ops := r.prog.Block.Operations
	if len(ops) != 1 {
		t.Fatalf("ops = %d", len(ops))
	}
	op, ok := ops[0].(*ir.SetNodes)
	if !ok || len(op.Values) != 3 {
		t.Fatalf("op = %+v", ops[0])
	}
	if s, ok := op.Values[1].(*jsast.StringLit); !ok || s.Value != " " {
		t.Fatalf("separator = %#v", op.Values[1])
	}
}

func TestNodesChildren(t *testing.T) {
	r := run(t, `<div>{list}</div>`, false)
	ops := r.prog.Block.Operations
	if len(ops) != 1 {
		t.Fatalf("ops = %d", len(ops))
	}
	if op, ok := ops[0].(*ir.SetNodes); !ok || op.Once {
		t.Fatalf("op = %#v", ops[0])
	}

	r = run(t, `<div><span/>{list}</div>`, false)
	d := r.prog.Block.Dynamic.Children[0].Children[1]
	if _, ok := d.Operation.(*ir.CreateNodes); !ok {
		t.Fatalf("op = %T", d.Operation)
	}
}

func TestConditionalExpressionChild(t *testing.T) {
	r := run(t, `<div>{ok ? <A/> : cond ? <b/> : null}</div>`, false)
	d := r.prog.Block.Dynamic.Children[0].Children[0]
	op, ok := d.Operation.(*ir.If)
	if !ok {
		t.Fatalf("op = %T", d.Operation)
	}
	if op.NegativeIf == nil || op.NegativeIf.Negative != nil {
		t.Fatalf("chain = %+v", op)
	}
}

func TestStaticProps(t *testing.T) {
	r := run(t, `<input disabled type="text" checked={false} className="a" value={x}/>`, false)
	if got := r.templates(); got[0] != `<input disabled type="text" class="a">` {
		t.Fatalf("template = %q", got[0])
	}
	eff := r.prog.Block.Effects
	if len(eff) != 1 {
		t.Fatalf("effects = %d", len(eff))
	}
	if sp, ok := eff[0].Operations[0].(*ir.SetProp); !ok || sp.Prop.Key != "value" || !sp.Root {
		t.Fatalf("op = %#v", eff[0].Operations[0])
	}
}

func TestMergedClass(t *testing.T) {
	r := run(t, `<div class="a" className={b}/>`, false)
	eff := r.prog.Block.Effects
	if len(eff) != 1 {
		t.Fatalf("effects = %d", len(eff))
	}
	sp := eff[0].Operations[0].(*ir.SetProp)
	if sp.Prop.Key != "class" || len(sp.Prop.Values) != 2 {
		t.Fatalf("prop = %+v", sp.Prop)
	}
}

func TestHoistedConstant(t *testing.T) {
	r := run(t, `<div style={{ color: "red" }}/>`, false)
	if r.root.Hoists.Len() != 1 {
		t.Fatalf("hoists = %d", r.root.Hoists.Len())
	}
	if len(r.prog.Block.Effects) != 0 || len(r.prog.Block.Operations) != 1 {
		t.Fatal("hoisted value must be applied once")
	}
	sp := r.prog.Block.Operations[0].(*ir.SetProp)
	if id, ok := sp.Prop.Values[0].(*jsast.Ident); !ok || id.Name != "_hoisted_0" {
		t.Fatalf("value = %#v", sp.Prop.Values[0])
	}
}

func TestSpreadMakesDynamicProps(t *testing.T) {
	r := run(t, `<div id="a" {...rest} title={t}/>`, false)
	if got := r.templates(); got[0] != "<div></div>" {
		t.Fatalf("template = %q", got[0])
	}
	op := r.prog.Block.Effects[0].Operations[0].(*ir.SetDynamicProps)
	if len(op.Props) != 3 || op.Props[1].Spread == nil {
		t.Fatalf("sources = %+v", op.Props)
	}
}

func TestEvents(t *testing.T) {
	r := run(t, `<button onClick={go} onKeyup_once={k} onClick_right={menu}/>`, false)
	if got := r.root.Delegates.Names(); !reflect.DeepEqual(got, []string{"click", "contextmenu"}) {
		t.Fatalf("delegates = %v", got)
	}
	var keys []string
	for _, op := range r.prog.Block.Operations {
		ev := op.(*ir.SetEvent)
		keys = append(keys, ev.Key)
		if ev.Key == "keyup" && ev.Delegate {
			t.Fatal("listener options must disable delegation")
		}
	}
	if !reflect.DeepEqual(keys, []string{"click", "keyup", "contextmenu"}) {
		t.Fatalf("keys = %v", keys)
	}
}

func TestFor(t *testing.T) {
	r := run(t, `<ul><li v-for={({ id }, i) in items} key={id}>{i}</li></ul>`, false)
	d := r.prog.Block.Dynamic.Children[0].Children[0]
	op, ok := d.Operation.(*ir.For)
	if !ok {
		t.Fatalf("op = %T", d.Operation)
	}
	if _, ok := op.Value.(*jsast.ObjectPattern); !ok {
		t.Fatalf("value = %T", op.Value)
	}
	if op.Key == nil || op.Index != nil || op.KeyProp == nil || !op.OnlyChild || op.Once {
		t.Fatalf("for = %+v", op)
	}
	if got := r.templates(); !reflect.DeepEqual(got, []string{"<li></li>", "<ul></ul>"}) {
		t.Fatalf("templates = %q", got)
	}
}

func TestForErrors(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
	}{
		{`<div v-for={items}/>`, diag.TplVForMalformed},
		{`<div v-for={(a, b, c, d) in items}/>`, diag.TplVForMalformed},
		{`<div v-for={a + 1 in items}/>`, diag.TplVForMalformed},
		{`<div v-for/>`, diag.TplVForNoExpression},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			r := run(t, tt.src, false)
			if !r.has(tt.code) {
				t.Fatalf("codes = %v, want %v", r.codes, tt.code)
			}
			if got := r.templates(); len(got) != 1 || got[0] != "<div></div>" {
				t.Fatalf("element must still render: %q", got)
			}
		})
	}
}

func TestModelErrors(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
	}{
		{`<input v-model/>`, diag.TplVModelNoExpression},
		{`<input v-model={a + b}/>`, diag.TplVModelMalformed},
		{`<div v-model={x}/>`, diag.TplVModelOnInvalidElement},
		{`<input type="file" v-model={x}/>`, diag.TplVModelOnFileInput},
		{`<input v-model={x} value="1"/>`, diag.TplVModelUnnecessaryValue},
		{`<input v-model:foo={x}/>`, diag.TplVModelArgOnElement},
		{`<ul><li v-for={item in list}><input v-model={item}/></li></ul>`, diag.TplVModelOnScopeVariable},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if r := run(t, tt.src, false); !r.has(tt.code) {
				t.Fatalf("codes = %v, want %v", r.codes, tt.code)
			}
		})
	}
}

func TestModelHelper(t *testing.T) {
	tests := []struct {
		src    string
		helper string
	}{
		{`<input v-model={x}/>`, "applyTextModel"},
		{`<input type="checkbox" v-model={x}/>`, "applyCheckboxModel"},
		{`<input type="radio" v-model={x}/>`, "applyRadioModel"},
		{`<input type={t} v-model={x}/>`, "applyDynamicModel"},
		{`<input {...p} v-model={x}/>`, "applyDynamicModel"},
		{`<select v-model={x}/>`, "applySelectModel"},
		{`<textarea v-model={x}/>`, "applyTextModel"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			r := run(t, tt.src, false)
			for _, op := range r.prog.Block.Operations {
				if d, ok := op.(*ir.Directive); ok && d.Name == "model" {
					if d.ModelType != tt.helper {
						t.Fatalf("helper = %s, want %s", d.ModelType, tt.helper)
					}
					return
				}
			}
			t.Fatal("no model directive")
		})
	}
}

func TestSlots(t *testing.T) {
	r := run(t, `<Comp><template v-slot:header={{ title }}>{title}</template>body</Comp>`, false)
	if len(r.codes) != 0 {
		t.Fatalf("codes = %v", r.codes)
	}
	op := r.prog.Block.Dynamic.Children[0].Operation.(*ir.CreateComponent)
	if len(op.Slots) != 1 || op.Slots[0].Kind != ir.SlotStatic {
		t.Fatalf("slots = %+v", op.Slots)
	}
	named := op.Slots[0].Static
	if len(named) != 2 || named[0].Name != "header" || named[1].Name != "default" {
		t.Fatalf("named = %+v", named)
	}
	if _, ok := named[0].Block.Props.(*jsast.ObjectPattern); !ok {
		t.Fatalf("slot props = %T", named[0].Block.Props)
	}
	if !op.Root {
		t.Fatal("single root component must be marked root")
	}
}

func TestSlotErrors(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
	}{
		{`<Comp><template v-slot:a>x</template><template v-slot:a>y</template></Comp>`, diag.TplVSlotDuplicateNames},
		{`<Comp v-slot={p}><template v-slot:a>x</template></Comp>`, diag.TplVSlotMixedUsage},
		{`<div v-slot:a/>`, diag.TplVSlotMisplaced},
		{`<Comp><template v-slot:default>x</template>y</Comp>`, diag.TplVSlotExtraneousDefault},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if r := run(t, tt.src, false); !r.has(tt.code) {
				t.Fatalf("codes = %v, want %v", r.codes, tt.code)
			}
		})
	}
}

func TestConditionalSlots(t *testing.T) {
	r := run(t, `<Comp><template v-slot:a v-if={x}>a</template><template v-slot:b v-else>b</template></Comp>`, false)
	if len(r.codes) != 0 {
		t.Fatalf("codes = %v", r.codes)
	}
	op := r.prog.Block.Dynamic.Children[0].Operation.(*ir.CreateComponent)
	if len(op.Slots) != 1 || op.Slots[0].Kind != ir.SlotConditional || op.Slots[0].Negative == nil {
		t.Fatalf("slots = %+v", op.Slots)
	}
}

func TestComponentProps(t *testing.T) {
	r := run(t, `<Comp a="1" onClick_stop={h} {...rest} v-model={v}/>`, false)
	op := r.prog.Block.Dynamic.Children[0].Operation.(*ir.CreateComponent)
	if len(op.Props) != 3 {
		t.Fatalf("sources = %+v", op.Props)
	}
	first := op.Props[0].Props
	if len(first) != 2 || first[1].Key != "onClick" || !first[1].Handler {
		t.Fatalf("first group = %+v", first)
	}
	last := op.Props[2].Props
	if len(last) != 2 || last[0].Key != "modelValue" || last[1].Key != "onUpdate:modelValue" {
		t.Fatalf("model group = %+v", last)
	}
}

func TestAssetComponent(t *testing.T) {
	r := run(t, `<div><my-comp/></div>`, false)
	if got := r.prog.Components.Names(); !reflect.DeepEqual(got, []string{"my-comp"}) {
		t.Fatalf("components = %v", got)
	}
}

func TestTemplateRef(t *testing.T) {
	r := run(t, `<div ref={el}><span ref={cond ? a : b}/></div>`, false)
	if !r.prog.HasTemplateRef {
		t.Fatal("template ref not recorded")
	}
	var declared int
	for _, op := range r.prog.Block.Operations {
		if _, ok := op.(*ir.DeclareOldRef); ok {
			declared++
		}
	}
	if declared != 1 || len(r.prog.Block.Effects) != 1 {
		t.Fatalf("declared=%d effects=%d", declared, len(r.prog.Block.Effects))
	}
}

func TestMemo(t *testing.T) {
	r := run(t, `<div><p v-memo={[a]}>{a}</p></div>`, false)
	d := r.prog.Block.Dynamic.Children[0].Children[0]
	op, ok := d.Operation.(*ir.Key)
	if !ok {
		t.Fatalf("op = %T", d.Operation)
	}
	if len(op.Block.Effects) != 0 {
		t.Fatal("memo content must render once")
	}
}

func TestHtmlWithChildren(t *testing.T) {
	r := run(t, `<div v-html={h}><span/></div>`, false)
	if !r.has(diag.TplVHtmlWithChildren) {
		t.Fatalf("codes = %v", r.codes)
	}
	if got := r.templates(); got[0] != "<div></div>" {
		t.Fatalf("template = %q", got[0])
	}
}

func TestInvalidNesting(t *testing.T) {
	r := run(t, `<p><div>x</div></p>`, false)
	child := r.prog.Block.Dynamic.Children[0].Children[0]
	if child.Template == ir.NoNode || !child.Has(ir.FlagInsert) {
		t.Fatalf("child = %+v", child)
	}
	var insert *ir.InsertNode
	for _, op := range r.prog.Block.Operations {
		if in, ok := op.(*ir.InsertNode); ok {
			insert = in
		}
	}
	if insert == nil || insert.Elements[0] != child.ID {
		t.Fatalf("insert = %+v", insert)
	}
}

func TestEnterBlockUnwind(t *testing.T) {
	outer := ir.NewBlock(nil)
	c := &Context{st: &state{scopeVars: map[string]int{}}, block: outer, dynamic: outer.Dynamic, template: "<a>"}
	c.enterBlock(ir.NewBlock(nil), true)
	if c.block == outer || c.inVFor != 1 || c.template != "" {
		t.Fatal("block not entered")
	}
	c.unwind()
	if c.block != outer || c.dynamic != outer.Dynamic || c.inVFor != 0 || c.template != "<a>" {
		t.Fatal("outer block not restored")
	}
}

func TestCanOmitEndTag(t *testing.T) {
	tests := []struct {
		name string
		in   OmitInfo
		want bool
	}{
		{"root", OmitInfo{Tag: "div", Root: true}, true},
		{"always close", OmitInfo{Tag: "table", Last: true}, false},
		{"always close rightmost", OmitInfo{Tag: "table", Last: true, Rightmost: true}, true},
		{"formatting", OmitInfo{Tag: "b", Last: true}, false},
		{"same as parent", OmitInfo{Tag: "div", ParentTag: "div", Last: true, Rightmost: true}, true},
		{"block in open inline", OmitInfo{Tag: "div", ParentTag: "span", Last: true, InlineAncestorNeedsClose: true}, false},
		{"last", OmitInfo{Tag: "span", ParentTag: "div", Last: true}, true},
		{"not last", OmitInfo{Tag: "span", ParentTag: "div"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanOmitEndTag(tt.in); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDroppedSlotsRegisterNoTemplates(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
	}{
		{`<Comp><template v-slot:a>1</template><template v-slot:a>2</template></Comp>`, diag.TplVSlotDuplicateNames},
		{`<Comp v-slot={p}><template v-slot:a>3</template></Comp>`, diag.TplVSlotMixedUsage},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			r := run(t, tt.src, false)
			if !r.has(tt.code) {
				t.Fatalf("codes = %v, want %v", r.codes, tt.code)
			}
			for _, tpl := range r.templates() {
				if tpl == "2" || tpl == "3" {
					t.Fatalf("template %q of a dropped slot was registered", tpl)
				}
			}
		})
	}
}

func TestCleanJSXText(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  a  ", "  a  "},
		{"\n  a\n  b  \n", "a b"},
		{"\n   \n", ""},
		{"a\t\n\tb", "a b"},
		{"a \r\n b", "a b"},
		{" ", " "},
		{"\t", " "},
		{"a\n \nb", "a b"},
	}
	for _, tt := range tests {
		if got := cleanJSXText(tt.in); got != tt.want {
			t.Errorf("cleanJSXText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsConstant(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"1 + 2", true},
		{"`a${1}`", true},
		{"Math.PI * 2", true},
		{"[1, { a: 'b' }]", true},
		{"undefined", true},
		{"x", false},
		{"f()", false},
		{"({ [k]: 1 })", false},
		{"({ m() {} })", false},
		{"true ? 1 : y", false},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			fs := source.NewFileSet()
			id := fs.AddVirtual("e.js", []byte(tt.src))
			e, errs := parser.ParseExpression(fs.Get(id), parser.Options{})
			if errs != 0 {
				t.Fatalf("parse errors: %d", errs)
			}
			if got := IsConstant(e); got != tt.want {
				t.Fatalf("IsConstant = %v, want %v", got, tt.want)
			}
		})
	}
}
