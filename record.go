package javadts

import "strings"

// sentinel is the description column text of a table header row.
const sentinel = "Description"

// ConstructorRecord is one row of the constructor summary.
type ConstructorRecord struct {
	// Signature is the normalized "new(...)" signature.
	Signature   string
	Description string
}

// EnumConstantRecord is one row of the enum constant summary.
type EnumConstantRecord struct {
	Name        string
	Description string
}

// FieldRecord is one row of the field summary.
type FieldRecord struct {
	// Type is the Java type with "static" removed, not yet mapped.
	Type        string
	Name        string
	Description string
}

// MethodRecord is one row of the method summary.
type MethodRecord struct {
	// Signature is the rendered Java signature, or empty for placeholder
	// rows whose method column reads "Method", "Class" or nothing.
	Signature   string
	ReturnType  string
	Description string
}

// Records holds the member records built from a page's summary tables.
type Records struct {
	Constructors  []ConstructorRecord
	EnumConstants []EnumConstantRecord
	Fields        []FieldRecord
	Methods       []MethodRecord
}

// BuildRecords builds the records for all four member tables of a page.
func BuildRecords(page *Page, types *TypeMap) (*Records, error) {
	ctors, err := BuildConstructors(page.Constructors, types)
	if err != nil {
		return nil, err
	}
	return &Records{
		Constructors:  ctors,
		EnumConstants: BuildEnumConstants(page.EnumConstants),
		Fields:        BuildFields(page.Fields),
		Methods:       BuildMethods(page.Methods),
	}, nil
}

// BuildConstructors builds constructor records, normalizing each signature.
// Header rows and rows without code are dropped.
func BuildConstructors(rows []Row, types *TypeMap) ([]ConstructorRecord, error) {
	var records []ConstructorRecord
	for _, row := range rows {
		description := cleanDescription(row.Last)
		code := strings.TrimSpace(row.Code)
		if description == sentinel || code == "" {
			continue
		}
		sig, err := types.ConstructorSignature(code)
		if err != nil {
			return nil, err
		}
		records = append(records, ConstructorRecord{Signature: sig, Description: description})
	}
	return records, nil
}

// BuildEnumConstants builds enum constant records. Header rows are dropped.
func BuildEnumConstants(rows []Row) []EnumConstantRecord {
	var records []EnumConstantRecord
	for _, row := range rows {
		description := cleanDescription(row.Last)
		if description == sentinel {
			continue
		}
		records = append(records, EnumConstantRecord{
			Name:        cleanCell(row.First),
			Description: description,
		})
	}
	return records
}

// BuildFields builds field records. Header rows are dropped.
func BuildFields(rows []Row) []FieldRecord {
	var records []FieldRecord
	for _, row := range rows {
		description := cleanDescription(row.Last)
		if description == sentinel {
			continue
		}
		records = append(records, FieldRecord{
			Type:        strings.TrimSpace(strings.Replace(cleanCell(row.First), "static", "", 1)),
			Name:        cleanCell(row.Second),
			Description: description,
		})
	}
	return records
}

// BuildMethods builds method records. Header rows are dropped.
func BuildMethods(rows []Row) []MethodRecord {
	var records []MethodRecord
	for _, row := range rows {
		description := cleanDescription(row.Last)
		if description == sentinel {
			continue
		}
		sig := cleanCell(row.Second)
		switch sig {
		case "Method", "Class":
			sig = ""
		}
		records = append(records, MethodRecord{
			Signature:   sig,
			ReturnType:  cleanCell(row.First),
			Description: description,
		})
	}
	return records
}

// cleanDescription collapses line breaks and runs of whitespace in a
// description column.
func cleanDescription(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, zwsp, "")), " ")
}

// cleanCell removes zero-width spaces and surrounding whitespace.
func cleanCell(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, zwsp, ""))
}
