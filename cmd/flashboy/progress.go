package main

import (
	"github.com/pterm/pterm"

	"github.com/moffa90/go-flashboy/programmer"
)

// progressUI renders programmer progress: a spinner while erasing and a
// bar while programming on a terminal, plain lines otherwise.
type progressUI struct {
	interactive bool
	quiet       bool

	spinner *pterm.SpinnerPrinter
	bar     *pterm.ProgressbarPrinter
	shown   int
}

func newProgressUI(interactive, quiet bool) *progressUI {
	return &progressUI{interactive: interactive && !quiet, quiet: quiet}
}

// update is the programmer.ProgressCallback.
func (ui *progressUI) update(p programmer.Progress) {
	if ui.quiet {
		return
	}

	switch p.Phase {
	case programmer.PhaseErasing:
		if !ui.interactive {
			pterm.Println("Erasing device...")
			return
		}
		ui.spinner, _ = pterm.DefaultSpinner.Start("Erasing device...")

	case programmer.PhaseProgramming:
		if p.CurrentPacket == 0 {
			ui.startBar(p.TotalPackets)
			return
		}
		if ui.bar != nil {
			ui.bar.Add(p.CurrentPacket - ui.shown)
		}
		ui.shown = p.CurrentPacket

	case programmer.PhaseComplete:
		if ui.bar != nil {
			_, _ = ui.bar.Stop()
			ui.bar = nil
		}
	}
}

func (ui *progressUI) startBar(total int) {
	if ui.spinner != nil {
		ui.spinner.Success("Erased")
		ui.spinner = nil
	}
	if !ui.interactive {
		pterm.Println("Flashing...")
		return
	}
	ui.bar, _ = pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Flashing").
		Start()
}

// abort clears any live spinner or bar after a failure.
func (ui *progressUI) abort() {
	if ui.spinner != nil {
		ui.spinner.Fail("Erase failed")
		ui.spinner = nil
	}
	if ui.bar != nil {
		_, _ = ui.bar.Stop()
		ui.bar = nil
	}
}
