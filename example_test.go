package varstars_test

import (
	"context"
	"fmt"
	"os"

	"github.com/agentstation/varstars"
	"github.com/agentstation/varstars/pkg/logging"
	"github.com/agentstation/varstars/pkg/records"
)

// Example converts the sample catalogs and lists the merged eclipsing binaries.
func Example() {
	conv, err := varstars.New(varstars.WithLogger(logging.NewNopLogger()))
	if err != nil {
		panic(err)
	}

	gcvs, err := os.Open("testdata/gcvs_sample.txt")
	if err != nil {
		panic(err)
	}
	defer gcvs.Close()

	krakow, err := os.Open("testdata/krakow_sample.txt")
	if err != nil {
		panic(err)
	}
	defer krakow.Close()

	result, err := conv.Convert(context.Background(), gcvs, krakow)
	if err != nil {
		panic(err)
	}

	for _, star := range result.Eclipsing {
		if name, ok := star.KrakowName(); ok {
			fmt.Printf("%s (%s) period %g\n", star.GCVSName(), name, star.Period)
			continue
		}
		fmt.Printf("%s period %g\n", star.GCVSName(), star.Period)
	}
	fmt.Println("unmatched:", result.Stats.UnmatchedNames)
	// Output:
	// RT And (AND RT) period 0.628929
	// V0344 Cyg period 2.5
	// bet Per (PER BET) period 2.8673285
	// unmatched: [CYG V1500]
}

// Example_hooks reports rejected catalog lines through a hook.
func Example_hooks() {
	conv, err := varstars.New(varstars.WithLogger(logging.NewNopLogger()))
	if err != nil {
		panic(err)
	}
	conv.OnRecordRejected(func(d records.Diagnostic) {
		fmt.Printf("line %d: %s rejected (%s)\n", d.Line, d.Star, d.Err.Field)
	})

	gcvs, err := os.Open("testdata/gcvs_sample.txt")
	if err != nil {
		panic(err)
	}
	defer gcvs.Close()

	krakow, err := os.Open("testdata/krakow_sample.txt")
	if err != nil {
		panic(err)
	}
	defer krakow.Close()

	result, err := conv.Convert(context.Background(), gcvs, krakow)
	if err != nil {
		panic(err)
	}
	fmt.Println("pulsating:", len(result.Pulsating))
	// Output:
	// line 9: XX Cyg rejected (period)
	// line 10: X Tst rejected (position)
	// pulsating: 2
}
