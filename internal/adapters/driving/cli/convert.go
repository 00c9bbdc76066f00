package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/petzku/qc2md/internal/adapters/driven/config"
	"github.com/petzku/qc2md/internal/adapters/driven/gitrev"
	"github.com/petzku/qc2md/internal/adapters/driven/mpvqc"
	"github.com/petzku/qc2md/internal/adapters/driven/subtitles"
	"github.com/petzku/qc2md/internal/adapters/driving/tui/picker"
	"github.com/petzku/qc2md/internal/core/domain"
	"github.com/petzku/qc2md/internal/core/ports/driving"
	"github.com/petzku/qc2md/internal/core/services"
	"github.com/petzku/qc2md/internal/logger"
)

func runConvert(cmd *cobra.Command, args []string) error {
	applyConfigDefaults(cmd)
	logger.SetVerbose(verboseFlag)

	format, err := domain.ParseRefFormat(refFormatFlag)
	if err != nil {
		return err
	}

	reportPath := args[0]
	report, err := mpvqc.New().Load(reportPath)
	if err != nil {
		return err
	}

	// Absence of a git hash only drops the header line.
	commit, err := gitrev.New().Head(reportPath)
	if err != nil {
		logger.Info("no git hash available: %v", err)
		commit = ""
	}

	// Without a terminal on stdin there is nobody to answer the picker;
	// fall back to emitting every candidate.
	pick := pickRefsFlag
	if pick && !term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Info("stdin is not a terminal, disabling the reference picker")
		pick = false
	}

	converter := services.NewConvertService(subtitles.New(), picker.New())
	document, err := converter.Convert(report, commit, driving.Options{
		Refs:     refsFlag,
		Collapse: chronoFlag,
		Format:   format,
		Pick:     pick,
		Dialogue: dialogueFlag,
	})
	if err != nil {
		return err
	}

	outPath := strings.TrimSuffix(reportPath, filepath.Ext(reportPath)) + ".md"
	if err := os.WriteFile(outPath, []byte(document), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	cmd.Printf("Wrote %s\n", outPath)
	return nil
}

// applyConfigDefaults fills in flags the user did not set from the
// user-level config file. Explicit flags always win.
func applyConfigDefaults(cmd *cobra.Command) {
	store, err := config.NewStore("")
	if err != nil {
		logger.Warn("config file unavailable: %v", err)
		return
	}

	flags := cmd.Flags()
	if !flags.Changed("refs") {
		if v, ok := store.GetBool("refs"); ok {
			refsFlag = v
		}
	}
	if !flags.Changed("chrono") {
		if v, ok := store.GetBool("chrono"); ok {
			chronoFlag = v
		}
	}
	if !flags.Changed("pick-refs") {
		if v, ok := store.GetBool("pick_refs"); ok {
			pickRefsFlag = v
		}
	}
	if !flags.Changed("ref-format") {
		if v := store.GetString("ref_format"); v != "" {
			refFormatFlag = v
		}
	}
	if !flags.Changed("verbose") {
		if v, ok := store.GetBool("verbose"); ok {
			verboseFlag = v
		}
	}
}
