package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"flowstate/internal/logging"
	"flowstate/internal/services"
)

// DataCmd manages the stored session log as a whole
type DataCmd struct {
	Export DataExportCmd `cmd:"export" help:"Write all stored categories as one JSON object"`
	Import DataImportCmd `cmd:"import" help:"Replace stored categories from an export file"`
	Clear  DataClearCmd  `cmd:"clear" help:"Delete all stored data"`
}

// DataExportCmd exports every stored category
type DataExportCmd struct {
	Format string `help:"Output format (json or yaml; only json can be imported)" default:"json" enum:"json,yaml"`
	Output string `help:"Write to this file instead of stdout" short:"o" type:"path"`
}

// Run executes the export command
func (d *DataExportCmd) Run(container *Container) error {
	if d.Output == "" {
		return container.TransferService.Export(context.Background(), os.Stdout, services.ExportFormat(d.Format))
	}

	if err := exportToFile(container.TransferService, d.Output, services.ExportFormat(d.Format)); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Exported to %s\n", d.Output)
	return nil
}

// exportToFile writes the export to path. A failed export removes the partial file.
func exportToFile(transfer *services.TransferService, path string, format services.ExportFormat) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to write %s: %w", path, closeErr)
		}
		if err != nil {
			if removeErr := os.Remove(path); removeErr != nil {
				logging.Logger.Warn("Failed to remove partial export", "path", path, "error", removeErr)
			}
		}
	}()

	return transfer.Export(context.Background(), f, format)
}

// DataImportCmd imports an export file
type DataImportCmd struct {
	File string `arg:"" help:"Export file to import, or - for stdin"`
}

// Run executes the import command
func (d *DataImportCmd) Run(container *Container) error {
	var r io.Reader = os.Stdin
	if d.File != "-" {
		f, err := os.Open(d.File)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", d.File, err)
		}
		defer f.Close()
		r = f
	}

	result, err := container.TransferService.Import(context.Background(), r)
	if err != nil {
		return err
	}

	imported := make([]string, len(result.Imported))
	for i, c := range result.Imported {
		imported[i] = string(c)
	}
	fmt.Printf("Imported %d categories: %s\n", len(imported), strings.Join(imported, ", "))
	if len(result.Ignored) > 0 {
		fmt.Printf("Ignored unknown keys: %s\n", strings.Join(result.Ignored, ", "))
	}
	return nil
}

// DataClearCmd deletes every stored category
type DataClearCmd struct {
	Force bool `help:"Skip confirmation prompt" short:"f"`
}

// Run executes the clear command
func (d *DataClearCmd) Run(container *Container) error {
	if !d.Force && !d.confirm() {
		return nil
	}

	if err := container.TransferService.Clear(context.Background()); err != nil {
		return err
	}
	fmt.Println("All FlowState data cleared.")
	return nil
}

func (d *DataClearCmd) confirm() bool {
	fmt.Println("This deletes all focus sessions, activity sessions, breaks, timer settings and your profile.")
	fmt.Print("\nContinue? (y/N): ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		logging.Logger.Info("User cancelled data clear")
		fmt.Println("Cancelled")
		return false
	}
	logging.Logger.Info("User confirmed data clear")
	return true
}
