package listing

import (
	"fmt"
	"strconv"
)

// Query is a validated car listings search.
type Query struct {
	Maker       string
	Model       string
	Zip         int
	Radius      int
	Condition   string
	DatasetPath string
	OutputDir   string
}

// ParseQuery validates the search command's positional arguments:
// <maker> <model> <zip> <radius> <used or new> <json or keyfile> <output_dir>.
// Anything other than exactly 7 arguments is an arity error, zip and
// radius must be integers and the condition must be "used" or "new".
func ParseQuery(args []string) (Query, error) {
	if len(args) != 7 {
		return Query{}, fmt.Errorf("expected 7 arguments, got %d", len(args))
	}

	zip, err := strconv.Atoi(args[2])
	if err != nil {
		return Query{}, fmt.Errorf("zip %q is not an integer", args[2])
	}
	radius, err := strconv.Atoi(args[3])
	if err != nil {
		return Query{}, fmt.Errorf("radius %q is not an integer", args[3])
	}
	condition := args[4]
	if condition != "used" && condition != "new" {
		return Query{}, fmt.Errorf("condition %q must be either \"used\" or \"new\"", condition)
	}

	return Query{
		Maker:       args[0],
		Model:       args[1],
		Zip:         zip,
		Radius:      radius,
		Condition:   condition,
		DatasetPath: args[5],
		OutputDir:   args[6],
	}, nil
}
