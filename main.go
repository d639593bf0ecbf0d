package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Yamlte/ExcelFilter/config"
	"github.com/Yamlte/ExcelFilter/domain"
	"github.com/Yamlte/ExcelFilter/processor"
	"github.com/Yamlte/ExcelFilter/skeleton"
	"github.com/Yamlte/ExcelFilter/template"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		slog.Error("fill failed", "error", err)
		os.Exit(1)
	}
}

func run(output io.Writer, args []string) error {
	flags := flag.NewFlagSet("excelfilter", flag.ContinueOnError)
	flags.SetOutput(output)

	formFile := flags.String("form", "", "path to the YAML form definition (default: built-in payment certificate)")
	templatePath := flags.String("template", "", "path to the template Excel file (overrides the form)")
	outputPath := flags.String("output", "", "path to the output Excel file (overrides the form)")
	dataFile := flags.String("data-file", "", "path to a YAML file with values per sheet (overrides the form)")
	demo := flags.Bool("demo", false, "fill the first sheet with generated applicant values")
	initTemplate := flags.Bool("init", false, "write a blank template with the form's sheets to -template and exit")
	verbose := flags.Bool("verbose", false, "log debug diagnostics")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Step 1: load the form layout and its values.
	form, err := loadForm(logger, *formFile, *dataFile, *demo)
	if err != nil {
		return err
	}
	if *templatePath != "" {
		form.Template = *templatePath
	}
	if *outputPath != "" {
		form.Output = *outputPath
	}
	if form.Template == "" {
		return errors.New("template path is required")
	}

	// Optional: produce a blank template for the form instead of filling one.
	if *initTemplate {
		return writeSkeleton(logger, form)
	}

	if form.Output == "" {
		return errors.New("output path is required")
	}

	// Step 2: fill every sheet and save the result.
	logger.Info("filling template", "template", form.Template, "sheets", len(form.Sheets))
	p := processor.New(template.NewFiller(template.WithLogger(logger)), logger)
	if err := p.ProcessFile(form.Template, form.Output, form.Jobs()); err != nil {
		return err
	}

	logger.Info("done", "output", form.Output)
	return nil
}

func loadForm(logger *slog.Logger, formFile, dataFile string, demo bool) (*config.Form, error) {
	var (
		form *config.Form
		err  error
	)
	if formFile == "" {
		logger.Info("using built-in payment certificate form")
		form, err = config.PaymentCertificate()
	} else {
		logger.Info("loading form", "file", formFile)
		form, err = config.Load(formFile)
	}
	if err != nil {
		return nil, err
	}

	if dataFile != "" {
		logger.Info("loading data", "file", dataFile)
		data, err := config.LoadData(dataFile)
		if err != nil {
			return nil, err
		}
		if err := form.ApplyData(data); err != nil {
			return nil, fmt.Errorf("%s: %w", dataFile, err)
		}
	}

	if demo {
		logger.Info("generating demo applicant", "sheet", form.Sheets[0].Name)
		form.Sheets[0].Values = config.NewValues(domain.GenerateApplicant())
	}

	return form, nil
}

func writeSkeleton(logger *slog.Logger, form *config.Form) error {
	if err := os.MkdirAll(filepath.Dir(form.Template), 0o755); err != nil {
		return fmt.Errorf("create template dir: %w", err)
	}
	if err := skeleton.WriteToFile(form.SheetNames(), form.Template); err != nil {
		return fmt.Errorf("init template: %w", err)
	}
	logger.Info("blank template written", "template", form.Template)
	return nil
}
