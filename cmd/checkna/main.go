package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"checkna/internal/config"
	"checkna/internal/dataprocessing"
	"checkna/internal/exporter"
	"checkna/internal/files"
	"checkna/internal/infrastructure"
	"checkna/internal/validation"
	"checkna/pkg/contracts"
	"checkna/pkg/contracts/domain"
)

func main() {
	dataDir := flag.String("data", "", "input directory for .xlsx tables (defaults to data/ relative to executable)")
	outDir := flag.String("out", "", "output directory for processed workbooks (defaults to output/ relative to executable)")
	kabCode := flag.Int("kab", 0, "kabupaten code, e.g. 7205 (prompted when omitted)")
	refTable := flag.String("ref", "", "reference table identifier, e.g. 6_06 (prompted when omitted)")
	derivedTable := flag.String("derived", "", "derived table identifier, e.g. 6_30 (prompted when omitted)")
	keywords := flag.String("keywords", "", "comma-separated derived-column keywords, e.g. rerata (prompted when omitted)")
	flag.Parse()

	// Initialize paths first to get default directories
	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *dataDir == "" {
		*dataDir = paths.DataDir
	}
	if *outDir == "" {
		*outDir = paths.OutputDir
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{
				Level:    "info",
				Format:   "json",
				Output:   "both",
				FilePath: paths.GetLogPath("checkna.log"),
			},
			Processing: config.ProcessingConfig{
				DefaultKabCode:      config.DefaultKabCode,
				DefaultRefTable:     config.DefaultRefTable,
				DefaultDerivedTable: config.DefaultDerivedTable,
			},
		}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())
	logger = infrastructure.LoggerWithContext(ctx)

	logger.Info("Starting BPS table processing",
		slog.String("version", contracts.GetFullVersionString()),
		slog.String("input_dir", *dataDir),
		slog.String("output_dir", *outDir),
		slog.String("executable_dir", paths.ExecutableDir))

	fileValidator := validation.NewFileValidator(logger)
	if err := fileValidator.ValidateInputDirectory(*dataDir, "*.xlsx"); err != nil {
		logger.Error("Input directory validation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := fileValidator.ValidateOutputDirectory(*outDir); err != nil {
		logger.Error("Output directory validation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	params := collectParams(cfg, *kabCode, *refTable, *derivedTable, *keywords, logger)

	if err := run(ctx, logger, params, *dataDir, *outDir, paths); err != nil {
		logger.Error("Processing failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run executes one region-processing pass. Missing input files are reported
// and end the run cleanly without producing an output artifact; data-shape
// failures propagate to main.
func run(ctx context.Context, logger *slog.Logger, params domain.RunParams, dataDir, outDir string, paths *config.Paths) error {
	discovery := files.NewDiscovery(dataDir)

	refFile, refErr := discovery.FindTableFile(dataDir, params.RefTable)
	derivedFile, derivedErr := discovery.FindTableFile(dataDir, params.DerivedTable)

	if refErr != nil || derivedErr != nil {
		logger.Error("Missing input files",
			slog.String("input_dir", dataDir),
			slog.String("ref_table", params.RefTable),
			slog.String("derived_table", params.DerivedTable))
		if refErr != nil {
			logger.Error("Reference table not found", slog.String("error", refErr.Error()))
		}
		if derivedErr != nil {
			logger.Error("Derived table not found", slog.String("error", derivedErr.Error()))
		}
		// Absent inputs abort the run without an error exit; the missing
		// output file is the signal.
		return nil
	}

	logger.Info("Input files resolved",
		slog.String("ref_file", refFile.Name),
		slog.String("derived_file", derivedFile.Name))

	refTable, err := dataprocessing.ParseTableSheet(refFile.Path, dataprocessing.KecSheetName(params.RefTable))
	if err != nil {
		return err
	}
	derivedTable, err := dataprocessing.ParseTableSheet(derivedFile.Path, dataprocessing.KecSheetName(params.DerivedTable))
	if err != nil {
		return err
	}

	// Region label comes from the unfiltered reference table
	regionLabel := dataprocessing.RegionLabel(refTable, params.KabCode)

	refFiltered, err := dataprocessing.FilterRegion(refTable, params.KabCode)
	if err != nil {
		return err
	}
	derivedFiltered, err := dataprocessing.FilterRegion(derivedTable, params.KabCode)
	if err != nil {
		return err
	}

	if refFiltered.RowCount() == 0 {
		logger.Warn("No reference rows match kabupaten code",
			slog.Int("kab_code", params.KabCode))
	}
	if derivedFiltered.RowCount() == 0 {
		logger.Warn("No derived rows match kabupaten code",
			slog.Int("kab_code", params.KabCode))
	}

	template, err := dataprocessing.BuildTemplate(ctx, refFiltered, derivedFiltered, params.Keywords)
	if err != nil {
		return err
	}

	outputName := exporter.OutputFileName(derivedFile.Name, regionLabel)
	writer := exporter.NewWorkbookWriter(paths)

	sheets := []exporter.Sheet{
		{Name: config.AcuanSheetName, Table: refFiltered},
		{Name: config.RiilSheetName, Table: derivedFiltered},
		{Name: config.TemplateSheetName, Table: template},
	}
	if err := writer.Write(outputName, sheets); err != nil {
		return err
	}

	logger.Info("Processed data saved",
		slog.String("output_file", outputName),
		slog.String("region_label", regionLabel),
		slog.Int("reference_rows", refFiltered.RowCount()),
		slog.Int("derived_rows", derivedFiltered.RowCount()))

	return nil
}

// collectParams assembles run parameters from flags, prompting interactively
// for anything missing. Invalid values re-prompt rather than abort.
func collectParams(cfg *config.Config, kabCode int, refTable, derivedTable, keywordList string, logger *slog.Logger) domain.RunParams {
	reader := bufio.NewReader(os.Stdin)
	paramsValidator := validation.NewParamsValidator()

	for {
		params := domain.RunParams{
			KabCode:      kabCode,
			RefTable:     refTable,
			DerivedTable: derivedTable,
			Keywords:     parseKeywords(keywordList),
		}

		if params.KabCode == 0 {
			params.KabCode = promptInt(reader, "Masukkan kode kabupaten (contoh: 7205)", cfg.Processing.DefaultKabCode)
		}
		if params.RefTable == "" {
			params.RefTable = promptWithDefault(reader, "Masukkan kode tabel acuan (contoh: 6_06)", cfg.Processing.DefaultRefTable)
		}
		if params.DerivedTable == "" {
			params.DerivedTable = promptWithDefault(reader, "Masukkan kode tabel turunan (contoh: 6_30)", cfg.Processing.DefaultDerivedTable)
		}
		if keywordList == "" {
			params.Keywords = promptKeywords(reader)
		}

		if err := paramsValidator.Validate(params); err != nil {
			logger.Warn("Rejected run parameters", slog.String("error", err.Error()))
			fmt.Println("Invalid parameters, please try again.")
			// Clear everything so the next pass prompts from scratch
			kabCode, refTable, derivedTable, keywordList = 0, "", "", ""
			continue
		}

		return params
	}
}

// promptWithDefault reads a line from stdin, falling back to the default on
// empty input
func promptWithDefault(reader *bufio.Reader, prompt, defaultValue string) string {
	fmt.Printf("%s (default: %s): ", prompt, defaultValue)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue
	}
	return line
}

// promptInt is promptWithDefault for integers; malformed input re-prompts
func promptInt(reader *bufio.Reader, prompt string, defaultValue int) int {
	for {
		raw := promptWithDefault(reader, prompt, strconv.Itoa(defaultValue))
		value, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Println("Invalid input. Please enter a valid integer.")
			continue
		}
		return value
	}
}

// promptKeywords presents the keyword preset menu of the original workflow
func promptKeywords(reader *bufio.Reader) []string {
	fmt.Println("Enter keywords for columns in derived table:")
	fmt.Println("1. rerata")
	fmt.Println("2. populasi")
	fmt.Println("3. Other (specify)")

	choice := promptWithDefault(reader, "Choose option (1/2/3)", "1")

	switch choice {
	case "1":
		return domain.KeywordsRerata
	case "2":
		return domain.KeywordsPopulasi
	case "3":
		custom := promptWithDefault(reader, "Enter custom keywords (comma-separated)", "")
		return parseKeywords(custom)
	default:
		fmt.Println("Invalid choice. Using default 'rerata'.")
		return domain.KeywordsRerata
	}
}

// parseKeywords splits a comma-separated keyword list, lower-casing entries
func parseKeywords(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	var keywords []string
	for _, keyword := range strings.Split(list, ",") {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword != "" {
			keywords = append(keywords, keyword)
		}
	}
	return keywords
}
