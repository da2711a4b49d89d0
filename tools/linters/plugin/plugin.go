package plugin

import (
	"golang.org/x/tools/go/analysis"

	"github.com/mcandidier/workflow/tools/linters/feedkind"
)

type AnalyzerPlugin struct{}

func (*AnalyzerPlugin) GetAnalyzers() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		feedkind.Analyzer,
	}
}

func New(conf any) ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{feedkind.Analyzer}, nil
}
