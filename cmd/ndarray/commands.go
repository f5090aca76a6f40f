package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/urfave/cli.v1"

	"github.com/born-ml/ndarray/internal/array"
	"github.com/born-ml/ndarray/internal/ndarray"
)

var binaryOps = map[string]func(a, b float64) float64{
	"add": func(a, b float64) float64 { return a + b },
	"sub": func(a, b float64) float64 { return a - b },
	"mul": func(a, b float64) float64 { return a * b },
	"div": func(a, b float64) float64 { return a / b },
	"min": math.Min,
	"max": math.Max,
	"pow": math.Pow,
}

func showVersion(_ *cli.Context) error {
	fmt.Printf("ndarray %s\n", version)
	return nil
}

func listDataTypes(_ *cli.Context) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Tag", "Bytes", "Accessor Array"})
	for _, row := range dataTypeRows() {
		table.Append(row)
	}
	table.Render()
	return nil
}

// dataTypeRows describes every data type tag for the dtypes table.
func dataTypeRows() [][]string {
	accessorBacked := map[array.DataType]string{
		array.Complex128: "Complex128Array",
		array.Complex64:  "Complex64Array",
		array.Bool:       "BoolArray",
		array.Generic:    "any Accessor",
	}
	var rows [][]string
	for _, dt := range array.DataTypes() {
		acc := accessorBacked[dt]
		if acc == "" {
			acc = "-"
		}
		rows = append(rows, []string{dt.String(), strconv.Itoa(dt.Size()), acc})
	}
	return rows
}

func broadcastShapes(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("broadcast: at least one shape required")
	}
	shapes := make([]ndarray.Shape, ctx.NArg())
	for i, arg := range ctx.Args() {
		s, err := parseShape(arg)
		if err != nil {
			return err
		}
		shapes[i] = s
	}
	out, err := ndarray.BroadcastShapes(shapes...)
	if err != nil {
		return err
	}
	fmt.Println(formatShape(out))
	return nil
}

func evalBinary(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return fmt.Errorf("eval: expected 2 arrays, got %d", ctx.NArg())
	}
	cfg := defaultConfig()
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return err
		}
	}
	result, err := evaluate(ctx.String(opFlag.Name), ctx.Args().Get(0), ctx.Args().Get(1), cfg)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

// evaluate applies the named operation to two JSON arrays and returns the
// JSON encoding of the broadcast result.
func evaluate(op, xs, ys string, cfg ndarrayConfig) (string, error) {
	f, ok := binaryOps[op]
	if !ok {
		return "", fmt.Errorf("eval: unknown operation %q", op)
	}
	x, err := parseArray(xs)
	if err != nil {
		return "", fmt.Errorf("eval: first array: %w", err)
	}
	y, err := parseArray(ys)
	if err != nil {
		return "", fmt.Errorf("eval: second array: %w", err)
	}

	rank := max(x.Rank(), y.Rank())
	if x, err = ndarray.FromSlice(x.ToSlice(), x.Shape().Pad(rank)); err != nil {
		return "", err
	}
	if y, err = ndarray.FromSlice(y.ToSlice(), y.Shape().Pad(rank)); err != nil {
		return "", err
	}

	out, err := ndarray.MapBinary(x, y, f, ndarray.WithParallel(cfg.Parallel))
	if err != nil {
		return "", fmt.Errorf("eval: %w", err)
	}
	enc, err := json.Marshal(out.ToNested())
	if err != nil {
		// JSON has no encoding for NaN or infinities.
		return "", fmt.Errorf("eval: %s result is not representable as JSON: %w", op, err)
	}
	return string(enc), nil
}

func parseArray(s string) (*ndarray.Array[float64], error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return ndarray.FromNested[float64](v)
}

// parseShape parses comma separated sizes. The empty string is rank 0.
func parseShape(s string) (ndarray.Shape, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ndarray.Shape{}, nil
	}
	parts := strings.Split(s, ",")
	shape := make(ndarray.Shape, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", s, err)
		}
		shape[i] = n
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("shape %q: %w", s, err)
	}
	return shape, nil
}

func formatShape(s ndarray.Shape) string {
	parts := make([]string, len(s))
	for i, n := range s {
		parts[i] = strconv.Itoa(n)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
