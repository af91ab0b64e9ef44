package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/rs/zerolog"

	"github.com/paveg/atlas"
	"github.com/paveg/atlas/columnar"
	"github.com/paveg/atlas/internal/version"
	"github.com/paveg/atlas/repository"
)

func customUsage() {
	fmt.Fprintf(os.Stderr, "Atlas country analytics CLI (version %s)\n\n", version.Version)
	fmt.Fprintf(os.Stderr, "Usage: atlas-cli [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "  --data PATH\n\t\tCountry JSON document to load (default: countries.json)\n")
	fmt.Fprintf(os.Stderr, "  --config PATH\n\t\tOptional JSON/YAML config file\n")
	fmt.Fprintf(os.Stderr, "  --arrow\n\t\tAlso export the collection as an Arrow record batch\n")
	fmt.Fprintf(os.Stderr, "  --verbose\n\t\tEnable load logging\n")
	fmt.Fprintf(os.Stderr, "  -v, --version\n\t\tPrint version information and exit\n")
	fmt.Fprintf(os.Stderr, "  -h, --help\n\t\tShow this help message and exit\n")
}

func main() {
	versionFlag := flag.Bool("v", false, "Print version and exit")
	flag.BoolVar(versionFlag, "version", false, "Print version and exit") // alias
	dataFlag := flag.String("data", "", "Country JSON document to load")
	configFlag := flag.String("config", "", "Optional config file")
	arrowFlag := flag.Bool("arrow", false, "Export the collection as Arrow")
	verboseFlag := flag.Bool("verbose", false, "Enable load logging")

	flag.Usage = customUsage
	flag.Parse()

	if *versionFlag {
		fmt.Println(version.String())
		return
	}

	cfg := repository.NewConfig()
	if *configFlag != "" {
		loaded, err := repository.LoadConfigFromFile(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "atlas-cli: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *dataFlag != "" {
		cfg.Path = *dataFlag
	}

	logger := zerolog.Nop()
	if *verboseFlag {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	repo := repository.New(cfg, repository.WithLogger(logger))
	countries, err := repo.Load(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "atlas-cli: %v\n", err)
		os.Exit(1)
	}

	if err := printReport(countries); err != nil {
		fmt.Fprintf(os.Stderr, "atlas-cli: %v\n", err)
		os.Exit(1)
	}

	if *arrowFlag {
		record, err := columnar.FromCountries(countries, memory.NewGoAllocator())
		if err != nil {
			fmt.Fprintf(os.Stderr, "atlas-cli: %v\n", err)
			os.Exit(1)
		}
		defer record.Release()
		fmt.Printf("\nArrow export: %d rows x %d columns (snapshot %x)\n",
			record.NumRows(), record.NumCols(), repo.Checksum())
	}
}

func printReport(countries []atlas.Country) error {
	summary, err := atlas.PopulationSummary(countries)
	if err != nil {
		return err
	}
	fmt.Printf("Countries loaded: %d\n", len(countries))
	if mean, ok := summary.Mean(); ok {
		maxPop, _ := summary.Max()
		fmt.Printf("Population: total %d, mean %.0f, max %d\n", summary.Sum, mean, maxPop)
	}

	counts, err := atlas.CountByRegion(countries)
	if err != nil {
		return err
	}
	fmt.Println("Countries by region:")
	for _, region := range []atlas.Region{
		atlas.RegionAfrica, atlas.RegionAmericas, atlas.RegionAntarctic,
		atlas.RegionAsia, atlas.RegionEurope, atlas.RegionOceania,
		atlas.RegionUnspecified,
	} {
		if n, ok := counts[region]; ok {
			fmt.Printf("  %-12s %d\n", region, n)
		}
	}

	if most, err := atlas.MostPopulous(countries); err == nil && most != nil {
		fmt.Printf("Most populous: %s (%d)\n", most.Name, most.Population)
	}
	if largest, err := atlas.Largest(countries); err == nil && largest != nil {
		fmt.Printf("Largest by area: %s (%.0f km2)\n", largest.Name, *largest.Area)
	}
	if zones, err := atlas.DistinctTimezoneCount(countries); err == nil {
		fmt.Printf("Distinct timezones: %d\n", zones)
	}
	if missing, err := atlas.CountMissingTranslation(countries, "es"); err == nil {
		fmt.Printf("Missing Spanish translation: %d\n", missing)
	}
	return nil
}
