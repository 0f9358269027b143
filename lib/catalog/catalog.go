// Package catalog turns the nested cars.com maker/model dataset into a
// flat CSV reference store and provides lookups over it.
package catalog

import (
	"encoding/json"
	"os"
	"strings"

	"carhunt/lib/textutil"
)

type DatasetModel struct {
	Name string `json:"nm"`
	Code string `json:"id"`
}

type DatasetMaker struct {
	Name   string         `json:"nm"`
	Code   string         `json:"id"`
	Models []DatasetModel `json:"md"`
}

// Dataset mirrors the cars_com_make_model.json layout: a single "all" key
// holding an ordered list of makers, each with an ordered list of models.
type Dataset struct {
	All []DatasetMaker `json:"all"`
}

// Record is one maker/model pair with the catalog codes cars.com uses in
// its search urls.
type Record struct {
	Maker     string
	Model     string
	MakerCode string
	ModelCode string
}

func ReadDataset(path string) (Dataset, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, err
	}
	var ds Dataset
	err = json.Unmarshal(contents, &ds)
	if err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// Extract flattens the dataset into one record per (maker, model) pair,
// preserving dataset order. Names are trimmed and model names lose any
// leading hyphen the dataset uses to mark sub-models.
func Extract(ds Dataset) []Record {
	var records []Record
	for _, maker := range ds.All {
		name := strings.TrimSpace(maker.Name)
		for _, model := range maker.Models {
			records = append(records, Record{
				Maker:     name,
				Model:     textutil.CleanModelName(model.Name),
				MakerCode: maker.Code,
				ModelCode: model.Code,
			})
		}
	}
	return records
}

// Index holds the lookup structures the quiz needs, built by a single
// scan over the store.
type Index struct {
	// distinct maker names in first-seen order
	Brands []string
	// model name -> maker name. when two makers share a model name the
	// later row wins, matching how the store has always been read.
	ModelBrand map[string]string
}

func BuildIndex(records []Record) Index {
	idx := Index{
		ModelBrand: make(map[string]string, len(records)),
	}
	seen := make(map[string]struct{})
	for _, r := range records {
		if _, ok := seen[r.Maker]; !ok {
			seen[r.Maker] = struct{}{}
			idx.Brands = append(idx.Brands, r.Maker)
		}
		idx.ModelBrand[r.Model] = r.Maker
	}
	return idx
}
