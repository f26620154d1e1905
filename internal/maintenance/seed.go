package maintenance

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/appengine-ltd/pokedex/internal/catalog"
	"github.com/appengine-ltd/pokedex/internal/catalog/sqlite"
)

// ParseSeeds reads a JSON array of creature documents. Each document is
// stored whole as the creature's raw detail payload.
func ParseSeeds(data []byte) ([]sqlite.Seed, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("seed file is not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, errors.New("seed file must hold a JSON array")
	}

	var seeds []sqlite.Seed
	var err error
	doc.ForEach(func(key, item gjson.Result) bool {
		id := int(item.Get("pokedex_id").Int())
		if id == 0 {
			id = int(item.Get("id").Int())
		}
		if id <= 0 {
			err = fmt.Errorf("seed entry %d: missing pokedex_id", key.Int())
			return false
		}
		name := item.Get("name.fr").String()
		if name == "" {
			name = item.Get("name").String()
		}
		seeds = append(seeds, sqlite.Seed{
			Creature: catalog.Creature{
				ID:           id,
				Name:         name,
				NameEN:       item.Get("name.en").String(),
				SpriteNormal: item.Get("sprites.regular").String(),
				SpriteShiny:  item.Get("sprites.shiny").String(),
			},
			RawJSON: item.Raw,
		})
		return true
	})
	if err != nil {
		return nil, err
	}
	return seeds, nil
}
