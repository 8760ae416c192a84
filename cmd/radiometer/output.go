package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/ja7ad/radiometer/pkg/numeric"
)

type result struct {
	Quantity string  `json:"quantity"`
	Value    float64 `json:"-"`
	Unit     string  `json:"unit,omitempty"`
	Human    string  `json:"-"`
}

// MarshalJSON writes non-finite values as strings, which encoding/json
// refuses to encode as numbers.
func (r result) MarshalJSON() ([]byte, error) {
	type alias result
	var v any = r.Value
	if !numeric.AllFinite(r.Value) {
		v = fmt.Sprint(r.Value)
	}
	return json.Marshal(struct {
		alias
		Value any `json:"value"`
	}{alias(r), v})
}

type report struct {
	Operation string   `json:"operation"`
	Results   []result `json:"results"`
}

func (a *app) report(op string, rows ...result) error {
	for _, r := range rows {
		if !numeric.AllFinite(r.Value) {
			slog.Warn("non-finite result", "op", op, "quantity", r.Quantity, "value", r.Value)
		}
	}

	if a.jsonOut {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(report{Operation: op, Results: rows})
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "QUANTITY\tVALUE\tUNIT\tHUMAN")
	fmt.Fprintln(tw, "--------\t-----\t----\t-----")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.6g\t%s\t%s\n", r.Quantity, r.Value, r.Unit, r.Human)
	}
	return tw.Flush()
}
