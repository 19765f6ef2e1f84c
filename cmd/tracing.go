package cmd

import (
	"fmt"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// trace keys of the engine packages
var traceKeys = []string{"gorebar.shapecode", "gorebar.schedule"}

// setupTracing routes engine traces to the Go logger. Only errors are traced
// unless verbose is set.
func setupTracing(verbose bool) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	level := "Error"
	if verbose {
		level = "Debug"
	}
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
