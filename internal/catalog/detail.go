package catalog

import (
	"github.com/tidwall/gjson"
)

// Detail is the full payload shown on the detail view and consumed by the
// minigames. It is extracted from the raw JSON document stored per creature.
type Detail struct {
	ID         int
	Name       string
	NameEN     string
	Category   string
	Types      []string
	Stats      map[string]int
	CatchRate  int
	Height     string
	Weight     string
	Evolutions []string
	Raw        []byte
}

const defaultType = "Normal"

// ParseDetail extracts a Detail from a stored document. Unknown or missing
// fields keep their zero value; a creature without types is "Normal".
func ParseDetail(id int, raw []byte) Detail {
	doc := gjson.ParseBytes(raw)
	d := Detail{
		ID:        id,
		Name:      doc.Get("name.fr").String(),
		NameEN:    doc.Get("name.en").String(),
		Category:  doc.Get("category").String(),
		CatchRate: int(doc.Get("catch_rate").Int()),
		Height:    doc.Get("height").String(),
		Weight:    doc.Get("weight").String(),
		Stats:     map[string]int{},
		Raw:       raw,
	}
	if d.Name == "" {
		d.Name = doc.Get("name").String()
	}

	doc.Get("types").ForEach(func(_, t gjson.Result) bool {
		if name := t.Get("name").String(); name != "" {
			d.Types = append(d.Types, name)
		}
		return true
	})
	if len(d.Types) == 0 {
		d.Types = []string{defaultType}
	}

	doc.Get("stats").ForEach(func(k, v gjson.Result) bool {
		d.Stats[k.String()] = int(v.Int())
		return true
	})

	for _, path := range []string{"evolution.pre", "evolution.next"} {
		doc.Get(path).ForEach(func(_, e gjson.Result) bool {
			if name := e.Get("name").String(); name != "" {
				d.Evolutions = append(d.Evolutions, name)
			}
			return true
		})
	}
	return d
}
