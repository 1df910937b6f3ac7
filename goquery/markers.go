package goquery

import "github.com/fwojciec/javadts"

// CSS markers of the Javadoc 9-11 page layout.
const (
	inheritanceSelector   = ".inheritance"
	titleSelector         = ".header .title"
	typeNameLabelSelector = ".typeNameLabel"
	memberSummarySelector = ".memberSummary"

	colFirst           = ".colFirst"
	colSecond          = ".colSecond"
	colLast            = ".colLast"
	colConstructorName = ".colConstructorName"
)

// Values of the summary attribute that identify each member table.
const (
	ConstructorSummary  = "Constructor Summary table, listing constructors, and an explanation"
	EnumConstantSummary = "Enum Constant Summary table, listing enum constants, and an explanation"
	FieldSummary        = "Field Summary table, listing fields, and an explanation"
	MethodSummary       = "Method Summary table, listing methods, and an explanation"
)

// titlePrefixes maps the title prefix of each page kind, in match order.
var titlePrefixes = []struct {
	prefix string
	kind   javadts.Kind
}{
	{"Interface ", javadts.KindInterface},
	{"Annotation Type ", javadts.KindInterface},
	{"Enum ", javadts.KindEnum},
	{"Class ", javadts.KindClass},
}
