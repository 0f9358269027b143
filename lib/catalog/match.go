package catalog

import (
	"fmt"

	"carhunt/lib/textutil"

	"github.com/antzucaro/matchr"
)

// names rarely differ by more than a typo or spacing, anything below this
// is treated as "not in the catalog"
const minSimilarity = 0.85

// Resolve maps user-supplied maker/model names to the catalog record
// holding their search codes. Exact matches (ignoring case and spacing)
// win, otherwise the most Jaro-Winkler-similar maker is picked first and
// the most similar model within that maker second.
func Resolve(records []Record, maker, model string) (Record, error) {
	makerKey := textutil.NormalizeName(maker)
	modelKey := textutil.NormalizeName(model)

	var bestMaker string
	var bestMakerSim float64
	for _, r := range records {
		key := textutil.NormalizeName(r.Maker)
		if key == makerKey {
			bestMaker = r.Maker
			bestMakerSim = 1
			break
		}
		sim := matchr.JaroWinkler(makerKey, key, false)
		if sim > bestMakerSim {
			bestMakerSim = sim
			bestMaker = r.Maker
		}
	}
	if bestMakerSim < minSimilarity {
		return Record{}, fmt.Errorf("no maker in the catalog matches %q", maker)
	}

	var best Record
	var bestSim float64
	for _, r := range records {
		if r.Maker != bestMaker {
			continue
		}
		key := textutil.NormalizeName(r.Model)
		if key == modelKey {
			return r, nil
		}
		sim := matchr.JaroWinkler(modelKey, key, false)
		if sim > bestSim {
			bestSim = sim
			best = r
		}
	}
	if bestSim < minSimilarity {
		return Record{}, fmt.Errorf("maker %q has no model matching %q", bestMaker, model)
	}
	return best, nil
}
