package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var testDataset = Dataset{
	All: []DatasetMaker{
		{
			Name: " Honda ",
			Code: "20017",
			Models: []DatasetModel{
				{Name: "Accord", Code: "20823"},
				{Name: "- Accord Crosstour", Code: "30991"},
				{Name: "Civic", Code: "20858"},
			},
		},
		{
			Name: "Toyota",
			Code: "20088",
			Models: []DatasetModel{
				{Name: "Camry", Code: "20856"},
			},
		},
	},
}

func TestExtract(t *testing.T) {
	records := Extract(testDataset)

	expected := []Record{
		{Maker: "Honda", Model: "Accord", MakerCode: "20017", ModelCode: "20823"},
		{Maker: "Honda", Model: "Accord Crosstour", MakerCode: "20017", ModelCode: "30991"},
		{Maker: "Honda", Model: "Civic", MakerCode: "20017", ModelCode: "20858"},
		{Maker: "Toyota", Model: "Camry", MakerCode: "20088", ModelCode: "20856"},
	}
	if diff := cmp.Diff(expected, records); diff != "" {
		t.Fatalf("extracted records mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractRowCount(t *testing.T) {
	records := Extract(testDataset)

	var modelCount int
	for _, maker := range testDataset.All {
		modelCount += len(maker.Models)
	}
	require.Len(t, records, modelCount)
}

func TestReadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cars_com_make_model.json")
	err := os.WriteFile(path, []byte(`{
		"all": [
			{"nm": "Honda", "id": "20017", "md": [
				{"nm": "Accord", "id": "20823"},
				{"nm": "- Accord Crosstour", "id": "30991"}
			]}
		]
	}`), 0600)
	if err != nil {
		t.Fatal(err)
	}

	ds, err := ReadDataset(path)
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, ds.All, 1)
	require.Equal(t, "Honda", ds.All[0].Name)
	require.Len(t, ds.All[0].Models, 2)
	require.Equal(t, "30991", ds.All[0].Models[1].Code)
}

func TestWriteStoreDeletesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model_codes_carscom.csv")

	err := WriteStore(path, []Record{
		{Maker: "Stale", Model: "Stale Model", MakerCode: "1", ModelCode: "2"},
	})
	if err != nil {
		t.Fatal(err)
	}

	err = WriteStore(path, Extract(testDataset))
	if err != nil {
		t.Fatal(err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	require.NotContains(t, string(contents), "Stale Model")
	require.True(t, strings.HasPrefix(string(contents), "maker,model,maker code,model code\n"))
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model_codes_carscom.csv")
	records := Extract(testDataset)

	err := WriteStore(path, records)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := ReadStore(path)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, records, loaded)
}

func TestReadStoreRejectsBadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	err := os.WriteFile(path, []byte("maker,model\nHonda,Accord\n"), 0600)
	if err != nil {
		t.Fatal(err)
	}

	_, err = ReadStore(path)
	require.Error(t, err)
}

func TestBuildOrLoad(t *testing.T) {
	dir := t.TempDir()
	datasetPath := filepath.Join(dir, "cars_com_make_model.json")
	storePath := filepath.Join(dir, "model_codes_carscom.csv")

	err := os.WriteFile(datasetPath, []byte(`{
		"all": [
			{"nm": "Honda", "id": "20017", "md": [{"nm": "Accord", "id": "20823"}]},
			{"nm": "Toyota", "id": "20088", "md": [{"nm": "Camry", "id": "20856"}]}
		]
	}`), 0600)
	if err != nil {
		t.Fatal(err)
	}

	records, err := BuildOrLoad(storePath, datasetPath)
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, records, 2)
	require.FileExists(t, storePath)

	// an existing store is trusted blindly, even when the dataset is gone
	err = os.Remove(datasetPath)
	if err != nil {
		t.Fatal(err)
	}
	again, err := BuildOrLoad(storePath, datasetPath)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, records, again)
}

func TestBuildIndexLastRowWins(t *testing.T) {
	idx := BuildIndex([]Record{
		{Maker: "Chevrolet", Model: "Malibu", MakerCode: "1", ModelCode: "10"},
		{Maker: "Honda", Model: "Passport", MakerCode: "2", ModelCode: "20"},
		{Maker: "Isuzu", Model: "Passport", MakerCode: "3", ModelCode: "30"},
	})

	require.Equal(t, []string{"Chevrolet", "Honda", "Isuzu"}, idx.Brands)
	require.Equal(t, "Isuzu", idx.ModelBrand["Passport"])
	require.Equal(t, "Chevrolet", idx.ModelBrand["Malibu"])
}
