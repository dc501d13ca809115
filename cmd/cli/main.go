package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"bloomkit/internal/common"
	"bloomkit/internal/filter"
)

var seedWords = []string{
	"apple", "banana", "cherry", "durian", "elderberry", "fig",
	"grapefruit", "honeydew", "imbe", "jackfruit", "kiwi", "lime",
	"mango", "nectarine", "orange", "peach", "quince", "raspberry",
	"strawberry", "tangerine", "ugni", "voavanga", "watermelon",
	"ximenia", "yuzu", "zarzamora",
}

func main() {
	fmt.Println("bloomkit - probabilistic membership filter")
	fmt.Println("commands: create <expected> <fprate> | add <element> | lookup <element> | info | accuracy <elements> | save <path> | load <path> | seed <x> | bench <expected> | exit")

	history, err := newHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open history: %v\n", err)
		os.Exit(1)
	}
	defer history.save()

	var f filter.Filter
	seedIndex := 0

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		history.add(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "create":
			if len(parts) != 3 {
				fmt.Println("usage: create <expected> <fprate>")
				continue
			}
			expected, err := strconv.ParseUint(parts[1], 10, 64)
			if err != nil {
				fmt.Println("create: expected must be a positive integer")
				continue
			}
			fpRate, err := strconv.ParseFloat(parts[2], 64)
			if err != nil {
				fmt.Println("create: fprate must be a number in (0, 1)")
				continue
			}
			f, err = filter.New(expected, fpRate)
			if err != nil {
				fmt.Printf("create error: %v\n", err)
				continue
			}
			seedIndex = 0
			fmt.Printf("created filter: %d bits, %d hashes, %s\n", f.Size(), f.HashCount(), f.ByteSizeHuman())
		case "add":
			if len(parts) < 2 {
				fmt.Println("usage: add <element>")
				continue
			}
			if f == nil {
				fmt.Println("no filter: create or load one first")
				continue
			}
			f.Add([]byte(strings.Join(parts[1:], " ")))
			fmt.Println("ok")
		case "lookup":
			if len(parts) < 2 {
				fmt.Println("usage: lookup <element>")
				continue
			}
			if f == nil {
				fmt.Println("no filter: create or load one first")
				continue
			}
			if f.Lookup([]byte(strings.Join(parts[1:], " "))) {
				fmt.Println("maybe present")
			} else {
				fmt.Println("definitely absent")
			}
		case "info":
			if f == nil {
				fmt.Println("no filter: create or load one first")
				continue
			}
			fmt.Printf("size:      %d bits\n", f.Size())
			fmt.Printf("hashcount: %d\n", f.HashCount())
			fmt.Printf("bytes:     %d (%s)\n", f.ByteSize(), f.ByteSizeHuman())
		case "accuracy":
			if len(parts) != 2 {
				fmt.Println("usage: accuracy <elements>")
				continue
			}
			if f == nil {
				fmt.Println("no filter: create or load one first")
				continue
			}
			elements, err := strconv.ParseUint(parts[1], 10, 64)
			if err != nil {
				fmt.Println("accuracy: elements must be a positive integer")
				continue
			}
			fmt.Printf("%.4f%% at %d elements\n", filter.Accuracy(f.Size(), f.HashCount(), elements), elements)
		case "save":
			if len(parts) != 2 {
				fmt.Println("usage: save <path>")
				continue
			}
			if f == nil {
				fmt.Println("no filter: create or load one first")
				continue
			}
			if err := filter.Save(f, parts[1]); err != nil {
				fmt.Printf("save error: %v\n", err)
				continue
			}
			fmt.Printf("saved %d bytes to %s\n", 32+f.ByteSize(), parts[1])
		case "load":
			if len(parts) != 2 {
				fmt.Println("usage: load <path>")
				continue
			}
			loaded, err := filter.Load(parts[1])
			if err != nil {
				fmt.Printf("load error: %v\n", err)
				continue
			}
			f = loaded
			fmt.Printf("loaded filter: %d bits, %d hashes, %s\n", f.Size(), f.HashCount(), f.ByteSizeHuman())
		case "seed":
			if len(parts) != 2 {
				fmt.Println("usage: seed <x>")
				continue
			}
			if f == nil {
				fmt.Println("no filter: create or load one first")
				continue
			}
			x, err := strconv.Atoi(parts[1])
			if err != nil || x < 1 {
				fmt.Println("seed: x must be a positive integer")
				continue
			}
			start := time.Now()
			count := 0
			for _, word := range seedWords {
				for i := 0; i < x; i++ {
					f.Add([]byte(fmt.Sprintf("%s%d", word, seedIndex+i)))
					count++
				}
			}
			seedIndex += x
			common.LogDuration(start, "seeded %d elements (%d * %d)", count, len(seedWords), x)
		case "bench":
			if len(parts) != 2 {
				fmt.Println("usage: bench <expected>")
				continue
			}
			expected, err := strconv.ParseUint(parts[1], 10, 64)
			if err != nil || expected < 1 {
				fmt.Println("bench: expected must be a positive integer")
				continue
			}
			runBench(expected)
		case "exit", "quit":
			return
		default:
			fmt.Println("unknown command")
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "input error: %v\n", err)
	}
}

// benchProbes is the number of never-inserted elements each bench filter is
// probed with.
const benchProbes = 10000

type benchResult struct {
	fpRate    float64
	size      uint64
	hashCount uint32
	predicted float64
	observed  float64
}

// runBench builds one filter per target false positive rate, fills each to
// its design capacity, and compares predicted accuracy with the rate
// observed on never-inserted probes. Each goroutine owns its filter
// exclusively, so no locking is needed.
func runBench(expected uint64) {
	rates := []float64{0.1, 0.05, 0.01, 0.001}
	results := make([]benchResult, len(rates))

	start := time.Now()
	var g errgroup.Group
	for i, rate := range rates {
		i, rate := i, rate
		g.Go(func() error {
			f, err := filter.New(expected, rate)
			if err != nil {
				return err
			}
			for j := uint64(0); j < expected; j++ {
				f.Add([]byte(fmt.Sprintf("member-%d", j)))
			}
			falsePositives := 0
			for j := 0; j < benchProbes; j++ {
				if f.Lookup([]byte(fmt.Sprintf("absent-%d", j))) {
					falsePositives++
				}
			}
			results[i] = benchResult{
				fpRate:    rate,
				size:      f.Size(),
				hashCount: f.HashCount(),
				predicted: filter.Accuracy(f.Size(), f.HashCount(), expected),
				observed:  100 - 100*float64(falsePositives)/float64(benchProbes),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Printf("bench error: %v\n", err)
		return
	}

	fmt.Printf("%-10s %-12s %-6s %-12s %-12s\n", "fprate", "bits", "k", "predicted", "observed")
	for _, r := range results {
		fmt.Printf("%-10g %-12d %-6d %-12.4f %-12.4f\n", r.fpRate, r.size, r.hashCount, r.predicted, r.observed)
	}
	common.LogDuration(start, "bench of %d rates at %d elements", len(rates), expected)
}
