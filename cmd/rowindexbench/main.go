package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/fulldump/goconfig"
	jsonv2 "github.com/go-json-experiment/json"
	"github.com/google/uuid"

	"github.com/fulldump/rowindex"
	"github.com/fulldump/rowindex/predicate"
	"github.com/fulldump/rowindex/rowstore"
)

// Config is a handful of usage-tagged fields goconfig turns into CLI
// flags and environment variables.
type Config struct {
	Test string `usage:"which benchmark to run: FILTER | MERGE | PREDICATE | COMPACT"`
	N    int64  `usage:"number of rows"`
	Json bool   `usage:"print the report as JSON"`
}

type report struct {
	RunID    string `json:"run_id"`
	Test     string `json:"test"`
	Rows     int64  `json:"rows"`
	Selected int64  `json:"selected"`
	Elapsed  string `json:"elapsed"`
}

func main() {
	c := Config{
		Test: "FILTER",
		N:    10_000_000,
	}
	goconfig.Read(&c)

	runID := uuid.New().String()

	switch strings.ToUpper(c.Test) {
	case "FILTER":
		benchFilter(runID, c.N, c.Json)
	case "MERGE":
		benchMerge(runID, c.N, c.Json)
	case "PREDICATE":
		benchPredicate(runID, c.N, c.Json)
	case "COMPACT":
		benchCompact(runID, c.N, c.Json)
	default:
		log.Fatalf("unknown test %s", c.Test)
	}
}

func benchFilter(runID string, n int64, asJSON bool) {
	start := time.Now()

	ri, err := rowindex.FromFilterFunc32(oddRows, n)
	if err != nil {
		log.Fatalf("build: %s", err)
	}

	printReport(report{
		RunID:    runID,
		Test:     "FILTER",
		Rows:     n,
		Selected: ri.Len(),
		Elapsed:  time.Since(start).String(),
	}, asJSON)
}

func benchMerge(runID string, n int64, asJSON bool) {
	start := time.Now()

	ab, err := rowindex.FromSlice(0, n, 2)
	if err != nil {
		log.Fatalf("build ab: %s", err)
	}
	bc, err := rowindex.FromFilterFunc32(oddRows, n)
	if err != nil {
		log.Fatalf("build bc: %s", err)
	}

	ac := rowindex.Merge(ab, bc)

	printReport(report{
		RunID:    runID,
		Test:     "MERGE",
		Rows:     n,
		Selected: ac.Len(),
		Elapsed:  time.Since(start).String(),
	}, asJSON)
}

// benchPredicate fills a rowstore.Table with synthetic JSON documents,
// then times building a RowIndex from a connor filter evaluated through
// the predicate package — the realistic end-to-end path, as opposed to
// benchFilter/benchMerge which exercise the core engine directly with a
// hand-rolled FilterFunc.
func benchPredicate(runID string, n int64, asJSON bool) {
	tbl := rowstore.NewTable[[]byte]()
	for i := int64(0); i < n; i++ {
		status := "closed"
		if i%3 == 0 {
			status = "open"
		}
		tbl.Insert([]byte(`{"status":"` + status + `","seq":` + strconv.FormatInt(i, 10) + `}`))
	}

	rows := make([][]byte, tbl.Len())
	for i := int64(0); i < tbl.Len(); i++ {
		rows[i], _ = tbl.Get(i)
	}

	start := time.Now()

	col, err := predicate.Build(rows, map[string]interface{}{"status": "open"})
	if err != nil {
		log.Fatalf("build predicate column: %s", err)
	}
	ri, err := rowindex.FromBooleanColumn(col, tbl.Len())
	if err != nil {
		log.Fatalf("build: %s", err)
	}

	printReport(report{
		RunID:    runID,
		Test:     "PREDICATE",
		Rows:     n,
		Selected: ri.Len(),
		Elapsed:  time.Since(start).String(),
	}, asJSON)
}

// benchCompact simulates churn (every tenth row deleted after insertion)
// and then builds a RowIndex of the surviving rows straight from
// tbl.AliveColumn — no predicate, no rescan of slot state, just the
// liveness column the table already maintains incrementally.
func benchCompact(runID string, n int64, asJSON bool) {
	tbl := rowstore.NewTable[int64]()
	for i := int64(0); i < n; i++ {
		id := tbl.Insert(i)
		if i%10 == 9 {
			tbl.Delete(id)
		}
	}

	start := time.Now()

	col := rowindex.NewBoolColumn(tbl.AliveColumn())
	ri, err := rowindex.FromBooleanColumn(col, tbl.Len())
	if err != nil {
		log.Fatalf("build: %s", err)
	}

	printReport(report{
		RunID:    runID,
		Test:     "COMPACT",
		Rows:     n,
		Selected: ri.Len(),
		Elapsed:  time.Since(start).String(),
	}, asJSON)
}

// oddRows is a rowindex.FilterFunc selecting odd row numbers, used as a
// stand-in predicate until a real boolean column is wired in (see the
// predicate package for that).
func oddRows(row0, row1 int64, out []int32) int32 {
	var count int32
	start := row0
	if start%2 == 0 {
		start++
	}
	for r := start; r < row1; r += 2 {
		out[count] = int32(r)
		count++
	}
	return count
}

func printReport(r report, asJSON bool) {
	if !asJSON {
		fmt.Printf("run=%s test=%s rows=%d selected=%d elapsed=%s\n",
			r.RunID, r.Test, r.Rows, r.Selected, r.Elapsed)
		return
	}
	b, err := jsonv2.Marshal(r)
	if err != nil {
		log.Fatalf("marshal report: %s", err)
	}
	fmt.Println(string(b))
}
