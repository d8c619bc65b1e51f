package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/meenmo/bondcalc/bond"
	"github.com/meenmo/bondcalc/tvm"
	"github.com/meenmo/bondcalc/utils"
)

type bondInput struct {
	TaskID          string  `json:"task_id,omitempty"`
	FaceValue       float64 `json:"face_value"`
	CouponRate      float64 `json:"coupon_rate"`
	YieldToMaturity float64 `json:"yield_to_maturity"`
	MaturityYears   int     `json:"maturity_years"`
	PaymentsPerYear int     `json:"payments_per_year"`
	DeltaYield      float64 `json:"delta_yield"`
}

type bondOutput struct {
	TaskID           string  `json:"task_id,omitempty"`
	Price            float64 `json:"price"`
	MacaulayDuration float64 `json:"macaulay_duration"`
	ModifiedDuration float64 `json:"modified_duration"`
	Convexity        float64 `json:"convexity"`
	DeltaYield       float64 `json:"delta_yield,omitempty"`
	PriceChangePct   float64 `json:"price_change_pct,omitempty"`
	Error            string  `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	table := flag.Bool("table", false, "Render the cashflow schedule and analytics as tables")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: bondcalc [-table] -input <path>")
		fmt.Fprintln(os.Stderr, "Compute fixed-coupon bond price, duration, and convexity.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: bondcalc [-table] -input <path>")
			os.Exit(2)
		}
	}

	raw, err := readInput(path)
	if err != nil {
		exitError(fmt.Sprintf("read input: %v", err))
	}

	inputs, isArray, err := parseInputs(raw)
	if err != nil {
		exitError(fmt.Sprintf("parse JSON: %v", err))
	}

	hadError := false
	outputs := make([]bondOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			outputs = append(outputs, bondOutput{TaskID: in.TaskID, Error: err.Error()})
			continue
		}
		outputs = append(outputs, *out)
	}

	if *table {
		for i, in := range inputs {
			renderTables(in, outputs[i])
		}
	} else if isArray {
		b, _ := json.Marshal(outputs)
		fmt.Println(string(b))
	} else {
		b, _ := json.Marshal(outputs[0])
		fmt.Println(string(b))
	}

	if hadError {
		os.Exit(1)
	}
}

func process(in bondInput) (*bondOutput, error) {
	b := bond.New(bond.Terms{
		FaceValue:       in.FaceValue,
		CouponRate:      in.CouponRate,
		YieldToMaturity: in.YieldToMaturity,
		MaturityYears:   in.MaturityYears,
		PaymentsPerYear: in.PaymentsPerYear,
	})

	a, err := b.Analytics()
	if err != nil {
		return nil, err
	}

	out := &bondOutput{
		TaskID:           in.TaskID,
		Price:            a.Price,
		MacaulayDuration: a.MacaulayDuration,
		ModifiedDuration: a.ModifiedDuration,
		Convexity:        a.Convexity,
	}

	if in.DeltaYield != 0 {
		change, err := b.PricePercentageChange(in.DeltaYield)
		if err != nil {
			return nil, err
		}
		out.DeltaYield = in.DeltaYield
		out.PriceChangePct = change * 100.0
	}
	return out, nil
}

func renderTables(in bondInput, out bondOutput) {
	if out.Error != "" {
		fmt.Printf("%s: %s\n", in.TaskID, out.Error)
		return
	}

	b := bond.New(bond.Terms{
		FaceValue:       in.FaceValue,
		CouponRate:      in.CouponRate,
		YieldToMaturity: in.YieldToMaturity,
		MaturityYears:   in.MaturityYears,
		PaymentsPerYear: in.PaymentsPerYear,
	})

	schedule := tablewriter.NewWriter(os.Stdout)
	schedule.SetHeader([]string{"Period", "Coupon", "Principal", "Amount", "PV"})
	for _, cf := range b.Cashflows() {
		pv, err := tvm.PresentValue(cf.Amount(), b.PeriodicYield, float64(cf.Period))
		if err != nil {
			fmt.Printf("%s: %s\n", in.TaskID, err)
			return
		}
		schedule.Append([]string{
			strconv.Itoa(cf.Period),
			money(cf.Coupon),
			money(cf.Principal),
			money(cf.Amount()),
			money(pv),
		})
	}
	schedule.Render()

	summary := tablewriter.NewWriter(os.Stdout)
	summary.SetHeader([]string{"Price", "Macaulay (y)", "Modified (y)", "Convexity (y^2)"})
	summary.Append([]string{
		money(out.Price),
		fmt.Sprintf("%.4f", out.MacaulayDuration),
		fmt.Sprintf("%.4f", out.ModifiedDuration),
		fmt.Sprintf("%.4f", out.Convexity),
	})
	summary.Render()

	if out.DeltaYield != 0 {
		fmt.Printf("Price change for %+.2f%% yield shift: %.2f%%\n", out.DeltaYield*100, out.PriceChangePct)
	}
}

func money(v float64) string {
	return strconv.FormatFloat(utils.RoundTo(v, 2), 'f', 2, 64)
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]bondInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []bondInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input bondInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []bondInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(bondOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
