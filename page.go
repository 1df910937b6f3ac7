package javadts

// Kind identifies what a documentation page declares.
type Kind string

// Kind values derived from the page title prefix.
const (
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
	KindEnum      Kind = "enum"
)

// Identity describes the type a documentation page declares.
type Identity struct {
	// Key is the last inheritance breadcrumb node with newlines removed,
	// usually the fully qualified name (e.g., "org.bukkit.Material").
	// Empty for pages without a breadcrumb.
	Key string

	// Name is the declared type name with the documentation generator
	// prefix ("Interface ", "Enum ", "Class ") removed.
	Name string

	Kind Kind
}

// Row holds the cell texts of one member summary table row.
type Row struct {
	First  string // .colFirst
	Second string // .colSecond
	Last   string // .colLast, the description column
	Code   string // code text of .colConstructorName
}

// Page is the structural extraction of one documentation page.
type Page struct {
	URL      string
	Identity Identity

	// Extends lists supertypes in document order, excluding the page's own
	// type, "Enum" and annotation tokens.
	Extends []string

	// Rows of the four member summary tables. A table missing from the
	// page yields a nil slice.
	Constructors  []Row
	EnumConstants []Row
	Fields        []Row
	Methods       []Row
}

// Validate returns an error if the page cannot produce a declaration.
func (p *Page) Validate() error {
	if p.Identity.Name == "" {
		return Errorf(EINVALID, "page declared name required")
	}
	return nil
}
