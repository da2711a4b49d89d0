package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mcandidier/workflow/tools/linters/feedkind"
)

func main() {
	singlechecker.Main(feedkind.Analyzer)
}
