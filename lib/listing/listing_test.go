package listing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFilename(t *testing.T) {
	testCases := []struct {
		name     string
		expected CarInfo
	}{
		{
			name:     "honda-accord-2019-used.csv",
			expected: CarInfo{Maker: "HONDA", Model: "ACCORD", Condition: "USED"},
		},
		{
			name:     "./data/toyota-camry-53715-25-new.csv",
			expected: CarInfo{Maker: "TOYOTA", Model: "CAMRY", Condition: "NEW"},
		},
		{
			name:     "ford-mustang-used.csv",
			expected: CarInfo{Maker: "FORD", Model: "MUSTANG", Condition: "USED"},
		},
	}
	for _, test := range testCases {
		info, err := ParseFilename(test.name)
		if err != nil {
			t.Fatal(err)
		}
		require.Equal(t, test.expected, info, "filename %q", test.name)
	}
}

func TestParseFilenameTooFewSegments(t *testing.T) {
	_, err := ParseFilename("accord.csv")
	require.Error(t, err)
}

func TestFilenameRoundTrip(t *testing.T) {
	q := Query{Maker: "Honda", Model: "Accord", Zip: 53715, Radius: 25, Condition: "used"}

	name := Filename(q)
	require.Equal(t, "honda-accord-53715-25-used.csv", name)

	info, err := ParseFilename(name)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, CarInfo{Maker: "HONDA", Model: "ACCORD", Condition: "USED"}, info)
}

func TestWriteCSVDeletesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "honda-accord-53715-25-used.csv")

	err := WriteCSV(path, []Listing{
		{Title: "Old Listing", Price: 1, Mileage: 2, Dealer: "Old Dealer", Url: "https://old"},
	})
	if err != nil {
		t.Fatal(err)
	}

	err = WriteCSV(path, []Listing{
		{Title: "2019 Honda Accord Sport", Price: 24995, Mileage: 30123, Dealer: "Zimbrick Honda", Url: "https://www.cars.com/vehicledetail/abc/"},
	})
	if err != nil {
		t.Fatal(err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	require.NotContains(t, string(contents), "Old Listing")
	require.True(t, strings.HasPrefix(string(contents), "title,price,mileage,dealer,url\n"))
	require.Contains(t, string(contents), "2019 Honda Accord Sport,24995,30123,Zimbrick Honda,https://www.cars.com/vehicledetail/abc/")
}

func TestParseQuery(t *testing.T) {
	q, err := ParseQuery([]string{"Honda", "Accord", "53715", "25", "used", "./data/cars_com_make_model.json", "./data/"})
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, Query{
		Maker:       "Honda",
		Model:       "Accord",
		Zip:         53715,
		Radius:      25,
		Condition:   "used",
		DatasetPath: "./data/cars_com_make_model.json",
		OutputDir:   "./data/",
	}, q)
}

func TestParseQueryErrors(t *testing.T) {
	testCases := [][]string{
		{},
		{"Honda", "Accord", "53715", "25", "used", "x.json"},
		{"Honda", "Accord", "53715", "25", "used", "x.json", "./data/", "extra"},
		{"Honda", "Accord", "zip", "25", "used", "x.json", "./data/"},
		{"Honda", "Accord", "53715", "far", "used", "x.json", "./data/"},
		{"Honda", "Accord", "53715", "25", "leased", "x.json", "./data/"},
	}
	for _, args := range testCases {
		_, err := ParseQuery(args)
		require.Error(t, err, "args %v", args)
	}
}
