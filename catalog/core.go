package catalog

import "github.com/surfacekit/a2ui/schema"

// CoreCatalogID identifies the standard component set.
const CoreCatalogID = "a2ui.core"

// bindable describes a property that accepts either a literal string or
// a data-model path binding (a "/"-prefixed path).
func bindable(desc string) *schema.StringBuilder {
	return schema.String().Desc(desc + ". A leading \"/\" binds the property to a data-model path instead of a literal.")
}

// childList is a list of child component ids.
func childList(desc string) *schema.ArrayBuilder {
	return schema.Array(schema.String().Desc("Child component id")).Desc(desc)
}

// Core returns the standard component catalog: the baseline vocabulary a
// conforming A2UI client renders.
func Core() *Catalog {
	c := New(CoreCatalogID)

	c.MustRegister(ComponentType{
		Name:        "Text",
		Description: "A block of text.",
		Properties: schema.Object().
			Field("text", bindable("Text to display").Required()).
			MustBuild(),
	})

	c.MustRegister(ComponentType{
		Name:        "Image",
		Description: "An image loaded from a URL.",
		Properties: schema.Object().
			Field("url", bindable("Image URL").Required()).
			Field("fit", schema.String().Desc("How the image fills its box").
				Enum("contain", "cover", "fill")).
			MustBuild(),
	})

	c.MustRegister(ComponentType{
		Name:        "Button",
		Description: "A pressable button that reports a user action.",
		Properties: schema.Object().
			Field("label", bindable("Button label").Required()).
			Field("action", schema.String().Desc("Action name reported when pressed").Required()).
			Field("primary", schema.Bool().Desc("Whether this is the primary action")).
			MustBuild(),
	})

	c.MustRegister(ComponentType{
		Name:        "Row",
		Description: "Lays out children horizontally.",
		Properties: schema.Object().
			Field("children", childList("Component ids laid out left to right").Required()).
			Field("alignment", schema.String().Enum("start", "center", "end", "spaceBetween")).
			MustBuild(),
	})

	c.MustRegister(ComponentType{
		Name:        "Column",
		Description: "Lays out children vertically.",
		Properties: schema.Object().
			Field("children", childList("Component ids laid out top to bottom").Required()).
			Field("alignment", schema.String().Enum("start", "center", "end", "spaceBetween")).
			MustBuild(),
	})

	c.MustRegister(ComponentType{
		Name:        "List",
		Description: "Renders a template component once per element of a bound list.",
		Properties: schema.Object().
			Field("items", schema.String().Desc("Data-model path of the list to iterate").Required()).
			Field("template", schema.String().Desc("Component id rendered per element, scoped to the element's path").Required()).
			MustBuild(),
	})

	c.MustRegister(ComponentType{
		Name:        "Card",
		Description: "A framed container around one child.",
		Properties: schema.Object().
			Field("child", schema.String().Desc("Child component id").Required()).
			MustBuild(),
	})

	c.MustRegister(ComponentType{
		Name:        "TextField",
		Description: "A single-line text input bound to the data model.",
		Properties: schema.Object().
			Field("label", bindable("Field label")).
			Field("text", schema.String().Desc("Data-model path the input writes to").Required()).
			Field("validationRegexp", schema.String().Desc("Regex the input must match")).
			MustBuild(),
	})

	c.MustRegister(ComponentType{
		Name:        "CheckBox",
		Description: "A boolean toggle bound to the data model.",
		Properties: schema.Object().
			Field("label", bindable("Toggle label").Required()).
			Field("value", schema.String().Desc("Data-model path of the boolean value").Required()).
			MustBuild(),
	})

	return c
}
