// Command convstack demonstrates a rate-1/n convolutional encoder, a
// binary-symmetric channel simulator, and a stack-algorithm sequential
// decoder: it encodes a sample input, perturbs it with noise, decodes
// it back, and reports whether the round trip succeeded.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kb9vcn/convstack/internal/channel"
	"github.com/kb9vcn/convstack/internal/config"
	"github.com/kb9vcn/convstack/internal/decoder"
	"github.com/kb9vcn/convstack/internal/gencode"
	"github.com/kb9vcn/convstack/internal/parse"
	"github.com/kb9vcn/convstack/internal/store"
)

const (
	VERSION = "1.0.0"

	HEADER1 = "convstack demonstrates a convolutional encoder and"
	HEADER2 = "a Fano-metric stack decoder over a binary symmetric channel."
	HEADER3 = "Educational use only."
)

func getDefaultConfig() string {
	return "convstack.conf"
}

func main() {
	var (
		configFile = flag.String("config", getDefaultConfig(), "Configuration file path")
		input      = flag.String("input", "", "Input bit string to encode (1011 when empty)")
		generators = flag.String("generators", "", "Comma-separated generator rows, overrides config")
		p          = flag.Float64("p", 0, "Crossover probability, overrides config (0 means use config)")
		trace      = flag.Bool("trace", false, "Persist the decode trace to the configured database")
		dbPath     = flag.String("db", "", "Trace database path, overrides config")
		version    = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *version {
		fmt.Printf("convstack v%s\n", VERSION)
		fmt.Println(HEADER1)
		fmt.Println(HEADER2)
		fmt.Println(HEADER3)
		return
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.NewConfig(*configFile)
	if _, err := os.Stat(*configFile); err == nil {
		if err := cfg.Load(); err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	genString := cfg.Generators()
	if *generators != "" {
		genString = *generators
	}

	g, err := parse.ParseGenerators(genString)
	if err != nil {
		log.Fatalf("invalid generators %q: %v", genString, err)
	}

	inputString := *input
	if inputString == "" {
		inputString = "1011"
	}
	x, err := parse.ParseBits(inputString)
	if err != nil {
		log.Fatalf("invalid input bits %q: %v", inputString, err)
	}

	prob := cfg.Probability()
	if *p != 0 {
		prob = *p
	}
	if err := gencode.ValidateProbability(prob, gencode.ProbabilityRangeDecode); err != nil {
		log.Fatalf("invalid probability %v: %v", prob, err)
	}

	log.Printf("convstack v%s starting: n=%d m=%d p=%v input=%v", VERSION, g.N, g.M, prob, x)

	y := gencode.Encode(x, g)
	log.Printf("encoded %d bits into %d bits", len(x), len(y))

	r, err := channel.CreateNoise(y, prob)
	if err != nil {
		log.Fatalf("noise generation failed: %v", err)
	}

	flipped := 0
	for i := range y {
		if y[i] != r[i] {
			flipped++
		}
	}
	log.Printf("channel introduced %d bit errors out of %d", flipped, len(y))

	tracePersist := cfg.TraceEnabled() || *trace
	persistPath := cfg.DatabasePath()
	if *dbPath != "" {
		persistPath = *dbPath
	}

	var decoded []int
	var terminalMu float64

	if tracePersist {
		db, err := store.NewDB(store.Config{Path: persistPath}, log.Default())
		if err != nil {
			log.Fatalf("failed to open trace database: %v", err)
		}
		defer db.Close()

		repo := store.NewDecodeRunRepository(db.GetDB())
		runID := fmt.Sprintf("run-%s-%v", genString, prob)
		if err := repo.CreateRun(&store.DecodeRun{ID: runID, Generators: genString, Probability: prob}); err != nil {
			log.Fatalf("failed to create trace run: %v", err)
		}

		terminal, _, err := decoder.DecodeTrace(r, g, prob, repo, runID)
		if err != nil {
			log.Fatalf("decode failed: %v", err)
		}
		decoded = terminal.Path[:len(x)]
		terminalMu = terminal.Mu
		log.Printf("decode trace persisted under run id %s", runID)
	} else {
		terminal, err := decoder.Decode(r, g, prob)
		if err != nil {
			log.Fatalf("decode failed: %v", err)
		}
		decoded = terminal
	}

	match := len(decoded) == len(x)
	if match {
		for i := range x {
			if decoded[i] != x[i] {
				match = false
				break
			}
		}
	}

	fmt.Printf("input:    %v\n", x)
	fmt.Printf("decoded:  %v\n", decoded)
	fmt.Printf("match:    %v\n", match)
	if tracePersist {
		fmt.Printf("terminal mu: %v\n", terminalMu)
	}

	if !match {
		os.Exit(1)
	}
}
