package main

import (
	"github.com/jacksonlmp/taskflow/tools/linters/rolevalidator"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(rolevalidator.Analyzer)
}
