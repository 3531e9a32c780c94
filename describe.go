package gfxdemo

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// descriptionText holds the English and Spanish description of each example.
var descriptionText = [NumExamples][2]string{
	{"Drawing lines", "Ejemplo de como dibujar lineas"},
	{"Drawing a circle", "Ejemplo de como dibujar un circulo"},
	{"Drawing a filled circle", "Ejemplo de como dibujar un circulo y rellenarlo"},
	{"Drawing a translucent filled rectangle", "Ejemplo de como dibujar un rectangulo y rellenarlo traslucido"},
	{"Drawing a rhombus", "Ejemplo de como dibujar un rombo"},
	{"Drawing a triangle", "Ejemplo de como dibujar un triangulo"},
	{"Drawing a filled ellipse", "Ejemplo de como dibujar una elipse y rellenarla"},
}

// descriptions is the message catalog for Describe. English is the fallback.
var descriptions = newDescriptionCatalog()

func newDescriptionCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for i, text := range descriptionText {
		key := Example(i).String()
		if err := b.SetString(language.English, key, text[0]); err != nil {
			panic(err)
		}
		if err := b.SetString(language.Spanish, key, text[1]); err != nil {
			panic(err)
		}
	}
	return b
}

// Languages lists the languages Describe has translations for.
func Languages() []language.Tag {
	return descriptions.Languages()
}

// Describe returns a one-line description of e in the language closest to
// tag. Unknown languages fall back to English.
func (e Example) Describe(tag language.Tag) string {
	if !e.Valid() {
		return e.String()
	}
	p := message.NewPrinter(tag, message.Catalog(descriptions))
	return p.Sprintf(message.Key(e.String(), descriptionText[e][0]))
}
