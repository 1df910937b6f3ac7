package javadts

import "strings"

// DefaultLookupName is the name of the generated lookup interface.
const DefaultLookupName = "Java"

// Member is one line of a declaration block with its doc comment.
type Member struct {
	Doc  string
	Text string

	// SpacedDoc closes the doc comment with " */" instead of "*/".
	SpacedDoc bool
}

// Block is a named interface declaration.
type Block struct {
	Name    string
	Extends []string
	Members []Member
}

// Lookup maps a discriminator string to a generated type name, e.g.
// "type(type: 'org.bukkit.Material'): Materials".
type Lookup struct {
	Key    string
	Target string
}

// Declaration is the TypeScript output for one documentation page.
type Declaration struct {
	// Name is the declared type name.
	Name string

	// LookupName names the interface holding Lookup.
	LookupName string
	Lookup     *Lookup

	// Companion holds enum constants ("<Name>s") or constructors
	// ("<Name>Constructor"). Nil when the page has neither.
	Companion *Block

	Primary Block

	// Indent prefixes every member line.
	Indent string
}

// String renders the declaration as TypeScript source.
func (d *Declaration) String() string {
	indent := d.Indent
	if indent == "" {
		indent = "\t"
	}

	var blocks []string
	if d.Lookup != nil {
		blocks = append(blocks, "interface "+d.LookupName+"{\n"+
			indent+"type(type: '"+d.Lookup.Key+"'): "+d.Lookup.Target+"\n}")
	}
	if d.Companion != nil {
		blocks = append(blocks, renderBlock(d.Companion, indent))
	}
	blocks = append(blocks, renderBlock(&d.Primary, indent))

	return strings.Join(blocks, "\n\n") + "\n"
}

func renderBlock(b *Block, indent string) string {
	var sb strings.Builder
	sb.WriteString("interface ")
	sb.WriteString(b.Name)
	if len(b.Extends) > 0 {
		sb.WriteString(" extends ")
		sb.WriteString(strings.Join(b.Extends, ", "))
	}
	sb.WriteString(" {\n")
	for _, m := range b.Members {
		if m.Doc != "" {
			closing := "*/"
			if m.SpacedDoc {
				closing = " */"
			}
			sb.WriteString(indent + "/** " + strings.ReplaceAll(m.Doc, "*/", "*\\/") + closing + "\n")
		}
		sb.WriteString(indent + m.Text + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// Emitter assembles declarations from extracted pages.
// An Emitter holds no per-page state and is safe for concurrent use.
type Emitter struct {
	Types *TypeMap

	// LookupName defaults to DefaultLookupName.
	LookupName string

	// Indent defaults to a tab.
	Indent string

	// SkipUnnamedMethods drops method lines whose name column was a
	// placeholder. By default they are emitted with an empty name.
	SkipUnnamedMethods bool
}

// NewEmitter returns an Emitter with default settings.
func NewEmitter(types *TypeMap) *Emitter {
	return &Emitter{
		Types:      types,
		LookupName: DefaultLookupName,
		Indent:     "\t",
	}
}

// Generate builds records from a page and emits its declaration.
// A malformed signature on any row fails the whole page.
func (e *Emitter) Generate(page *Page) (*Declaration, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	records, err := BuildRecords(page, e.types())
	if err != nil {
		return nil, err
	}
	return e.Emit(page.Identity, page.Extends, records)
}

// Emit assembles a declaration from identity, supertypes and records.
//
// At most one companion is produced: enum constants win over
// constructors. Without either, a lookup pointing at the type itself is
// emitted when the identity has a key. Enum constants carry "/** desc */"
// comments and constructors carry none. Nil records emit an empty
// primary block.
func (e *Emitter) Emit(id Identity, extends []string, records *Records) (*Declaration, error) {
	if records == nil {
		records = &Records{}
	}
	types := e.types()
	name := id.Name

	d := &Declaration{
		Name:       name,
		LookupName: e.LookupName,
		Indent:     e.Indent,
	}
	if d.LookupName == "" {
		d.LookupName = DefaultLookupName
	}

	switch {
	case len(records.EnumConstants) > 0:
		companion := &Block{Name: name + "s"}
		for _, c := range records.EnumConstants {
			companion.Members = append(companion.Members, Member{
				Doc:       c.Description,
				Text:      c.Name + ": " + name,
				SpacedDoc: true,
			})
		}
		d.Lookup = &Lookup{Key: id.Key, Target: companion.Name}
		d.Companion = companion
	case len(records.Constructors) > 0:
		companion := &Block{Name: name + "Constructor"}
		for _, c := range records.Constructors {
			companion.Members = append(companion.Members, Member{Text: c.Signature + ": " + name})
		}
		d.Lookup = &Lookup{Key: id.Key, Target: companion.Name}
		d.Companion = companion
	case id.Key != "":
		d.Lookup = &Lookup{Key: id.Key, Target: name}
	}

	d.Primary = Block{Name: name, Extends: extends}
	for _, f := range records.Fields {
		d.Primary.Members = append(d.Primary.Members, Member{
			Doc:  f.Description,
			Text: f.Name + ": " + types.Map(f.Type),
		})
	}
	for _, m := range records.Methods {
		if m.Signature == "" && e.SkipUnnamedMethods {
			continue
		}
		sig := m.Signature
		if sig != "" {
			var err error
			if sig, err = types.NormalizeSignature(sig); err != nil {
				return nil, err
			}
		}
		d.Primary.Members = append(d.Primary.Members, Member{
			Doc:  m.Description,
			Text: sig + ": " + types.Map(m.ReturnType),
		})
	}

	return d, nil
}

func (e *Emitter) types() *TypeMap {
	if e.Types == nil {
		return DefaultTypeMap()
	}
	return e.Types
}
