// Package main simulates a form load against an in-memory form graph.
//
// It registers a sample handler, runs the bind pass, fires a few
// events, and prints the resulting binding table and timing totals.
// Useful for eyeballing dispatch behavior without a host runtime.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/SofianeGUEZZAR/d365-event-decorators/binding"
	"github.com/SofianeGUEZZAR/d365-event-decorators/config"
	"github.com/SofianeGUEZZAR/d365-event-decorators/dispatch"
	"github.com/SofianeGUEZZAR/d365-event-decorators/event"
	"github.com/SofianeGUEZZAR/d365-event-decorators/handler"
	"github.com/SofianeGUEZZAR/d365-event-decorators/xrm"
	"github.com/SofianeGUEZZAR/d365-event-decorators/xrm/xrmtest"
)

// contactForm mimics a handler for a contact main form.
type contactForm struct {
	handler.Base

	loads   int
	saves   int
	changes int
	expands int
}

func (h *contactForm) OnLoad(ctx xrm.EventContext)          { h.loads++ }
func (h *contactForm) OnSave(ctx xrm.EventContext)          { h.saves++ }
func (h *contactForm) NameChanged(ctx xrm.EventContext)     { h.changes++ }
func (h *contactForm) DetailsExpanded(ctx xrm.EventContext) { h.expands++ }

func init() {
	c := binding.For[*contactForm]()
	c.Method("OnLoad").On(event.Load)
	c.Method("OnSave").On(event.Save, event.PostSave).
		Modes(xrm.ModeCreate, xrm.ModeUpdate)
	// "nickname" is not on the simulated form; it demonstrates the
	// unresolved-component warning.
	c.Method("NameChanged").
		OnComponents(event.AttributeChange, "firstname", "lastname", "nickname")
	c.Method("DetailsExpanded").OnComponents(event.TabExpand, "details")
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a TOML diagnostics config")
	modeName := flag.String("mode", "update", "simulated form mode")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if *verbose {
		cfg.Logging.Level = "debug"
	}
	cfg.Logging.Console = true
	cfg.Apply()

	form := xrmtest.NewForm(xrm.ParseFormMode(*modeName))
	form.AddAttribute("firstname")
	form.AddAttribute("lastname")
	details := form.AddTab("details", xrm.StateCollapsed)

	h := &contactForm{}
	err = handler.Init(h, form.Context(),
		handler.WithDispatcher(dispatch.New(
			dispatch.WithMissingMethodWarnings(cfg.Warnings.MissingMethod),
		)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: bind pass failed: %v\n", err)
		return 1
	}

	form.FireLoad()
	form.FireSave()
	form.Attributes("firstname")[0].(*xrmtest.Attribute).FireChange()
	details.SetDisplayState(xrm.StateExpanded)
	details.SetDisplayState(xrm.StateCollapsed)

	fmt.Printf("form mode: %s\n", h.FormMode())
	fmt.Printf("invocations: load=%d save=%d change=%d expand=%d\n",
		h.loads, h.saves, h.changes, h.expands)

	fmt.Println("bindings:")
	for _, mb := range handler.Bindings(h) {
		for _, eb := range mb.Bindings {
			fmt.Printf("  %-16s %-20s %v modes=%v\n", mb.Method, eb.Kind, eb.Components, mb.Modes)
		}
	}
	fmt.Printf("total bind time: %s\n", handler.TotalBindTime())
	return 0
}
