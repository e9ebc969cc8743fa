package main

import (
	"golang.org/x/tools/go/analysis"

	"github.com/jacksonlmp/taskflow/tools/linters/rolevalidator"
)

type AnalyzerPlugin struct{}

func (*AnalyzerPlugin) GetAnalyzers() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		rolevalidator.Analyzer,
	}
}

func New(conf any) ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{rolevalidator.Analyzer}, nil
}

// main is required for the package to compile as package main; it is
// never invoked when the file is built with -buildmode=plugin.
func main() {}
